package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Toggle actions reported back to the client.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
	ActionSaved   = "saved"
	ActionUnsaved = "unsaved"
)

type urlCount struct {
	URL   string
	Count int64
}

// LikeCountsByURL returns like counts for the given URLs in one GROUP BY.
func (s *Store) LikeCountsByURL(urls []string) (map[string]int64, error) {
	if len(urls) == 0 {
		return map[string]int64{}, nil
	}
	var rows []urlCount
	err := s.DB.Model(&ArticleLike{}).
		Select("article_url AS url, COUNT(*) AS count").
		Where("article_url IN ?", urls).
		Group("article_url").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}

// SaveCountsByURL returns save counts for the given URLs in one GROUP BY.
func (s *Store) SaveCountsByURL(urls []string) (map[string]int64, error) {
	if len(urls) == 0 {
		return map[string]int64{}, nil
	}
	var rows []urlCount
	err := s.DB.Model(&SavedArticle{}).
		Select("url, COUNT(*) AS count").
		Where("url IN ?", urls).
		Group("url").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}

func countsToMap(rows []urlCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.URL] = r.Count
	}
	return m
}

// LikedURLs returns which of the given URLs the user has liked, as one
// membership query.
func (s *Store) LikedURLs(userID uint, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	var out []string
	err := s.DB.Model(&ArticleLike{}).
		Where("user_id = ? AND article_url IN ?", userID, urls).
		Pluck("article_url", &out).Error
	return out, err
}

// SavedURLs returns which of the given URLs the user has saved.
func (s *Store) SavedURLs(userID uint, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	var out []string
	err := s.DB.Model(&SavedArticle{}).
		Where("user_id = ? AND url IN ?", userID, urls).
		Pluck("url", &out).Error
	return out, err
}

// ToggleLike removes the like row if one exists, otherwise inserts one.
// Check-then-act without isolation: concurrent identical requests may race,
// which is accepted for this feature.
func (s *Store) ToggleLike(userID uint, url string) (string, error) {
	var existing ArticleLike
	err := s.DB.Where("user_id = ? AND article_url = ?", userID, url).First(&existing).Error
	if err == nil {
		if err := s.DB.Delete(&existing).Error; err != nil {
			return "", err
		}
		return ActionUnliked, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	like := ArticleLike{UserID: userID, ArticleURL: url, CreatedAt: time.Now()}
	if err := s.DB.Create(&like).Error; err != nil {
		return "", err
	}
	return ActionLiked, nil
}

// ToggleSave mirrors ToggleLike for saved articles.
func (s *Store) ToggleSave(userID uint, title, url string) (string, error) {
	var existing SavedArticle
	err := s.DB.Where("user_id = ? AND url = ?", userID, url).First(&existing).Error
	if err == nil {
		if err := s.DB.Delete(&existing).Error; err != nil {
			return "", err
		}
		return ActionUnsaved, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	saved := SavedArticle{UserID: userID, Title: title, URL: url, SavedAt: time.Now()}
	if err := s.DB.Create(&saved).Error; err != nil {
		return "", err
	}
	return ActionSaved, nil
}

// SaveArticle is the non-toggle save: it reports when the article was
// already saved instead of removing it.
func (s *Store) SaveArticle(userID uint, title, url string) (alreadySaved bool, err error) {
	var existing SavedArticle
	err = s.DB.Where("user_id = ? AND url = ?", userID, url).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	saved := SavedArticle{UserID: userID, Title: title, URL: url, SavedAt: time.Now()}
	return false, s.DB.Create(&saved).Error
}

// IsSaved reports whether the user has saved the URL.
func (s *Store) IsSaved(userID uint, url string) (bool, error) {
	var count int64
	err := s.DB.Model(&SavedArticle{}).
		Where("user_id = ? AND url = ?", userID, url).
		Count(&count).Error
	return count > 0, err
}

// SavedArticles lists the user's saved articles, newest first.
func (s *Store) SavedArticles(userID uint) ([]SavedArticle, error) {
	var out []SavedArticle
	err := s.DB.Where("user_id = ?", userID).Order("saved_at DESC").Find(&out).Error
	return out, err
}

// DeleteSaved removes one saved article owned by the user. Returns false
// when no matching row existed.
func (s *Store) DeleteSaved(userID, articleID uint) (bool, error) {
	res := s.DB.Where("id = ? AND user_id = ?", articleID, userID).Delete(&SavedArticle{})
	return res.RowsAffected > 0, res.Error
}

// UserStats returns the user's saved and liked totals.
func (s *Store) UserStats(userID uint) (saved, liked int64, err error) {
	if err = s.DB.Model(&SavedArticle{}).Where("user_id = ?", userID).Count(&saved).Error; err != nil {
		return 0, 0, err
	}
	if err = s.DB.Model(&ArticleLike{}).Where("user_id = ?", userID).Count(&liked).Error; err != nil {
		return 0, 0, err
	}
	return saved, liked, nil
}
