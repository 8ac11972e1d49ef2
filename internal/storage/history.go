package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AddReadingHistory appends one read event.
func (s *Store) AddReadingHistory(userID uint, title, url string) error {
	entry := ReadingHistory{
		UserID:       userID,
		ArticleTitle: title,
		ArticleURL:   url,
		ReadAt:       time.Now(),
	}
	return s.DB.Create(&entry).Error
}

// RecentHistory lists the user's read events, newest first.
func (s *Store) RecentHistory(userID uint, limit int) ([]ReadingHistory, error) {
	var out []ReadingHistory
	err := s.DB.Where("user_id = ?", userID).
		Order("read_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CachedArticleByURL returns the scraped copy of url, or nil when the page
// has not been read before.
func (s *Store) CachedArticleByURL(url string) (*CachedArticle, error) {
	var cached CachedArticle
	err := s.DB.Where("url = ?", url).First(&cached).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// StoreCachedArticle persists a freshly scraped page.
func (s *Store) StoreCachedArticle(article *CachedArticle) error {
	if article.CachedAt.IsZero() {
		article.CachedAt = time.Now()
	}
	return s.DB.Create(article).Error
}

// AddChatMessage appends one chat exchange to the user's conversation log.
func (s *Store) AddChatMessage(userID uint, message, response string) error {
	entry := ChatMessage{
		UserID:    userID,
		Message:   message,
		Response:  response,
		CreatedAt: time.Now(),
	}
	return s.DB.Create(&entry).Error
}

// RecentChatMessages returns the user's last exchanges in chronological
// order (the query walks backwards, the result is reversed for display).
func (s *Store) RecentChatMessages(userID uint, limit int) ([]ChatMessage, error) {
	var out []ChatMessage
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
