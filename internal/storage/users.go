package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrUserExists is returned when the username or email is already taken.
var ErrUserExists = errors.New("user already exists")

// CreateUser inserts a user plus an empty preferences row.
func (s *Store) CreateUser(username, email, passwordHash string) (*User, error) {
	var count int64
	if err := s.DB.Model(&User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	user := User{
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Create(&UserPreference{UserID: user.ID}).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail returns nil when no user matches.
func (s *Store) FindUserByEmail(email string) (*User, error) {
	var user User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns nil when no user matches.
func (s *Store) FindUserByID(id uint) (*User, error) {
	var user User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Preferences returns the user's category flags, or nil when the row is
// missing (legacy accounts).
func (s *Store) Preferences(userID uint) (*UserPreference, error) {
	var prefs UserPreference
	err := s.DB.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences overwrites all category flags for the user, creating the
// row if it was missing.
func (s *Store) UpdatePreferences(userID uint, prefs UserPreference) error {
	prefs.UserID = userID

	var existing UserPreference
	err := s.DB.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&prefs).Error
	}
	if err != nil {
		return err
	}
	prefs.ID = existing.ID
	return s.DB.Save(&prefs).Error
}

// AllUsers lists users newest first, for the admin dashboard.
func (s *Store) AllUsers() ([]User, error) {
	var users []User
	err := s.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}
