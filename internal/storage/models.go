package storage

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex" json:"username"`
	Email    string `gorm:"size:256;uniqueIndex" json:"email"`
	Password string `gorm:"size:256" json:"-"` // bcrypt hash
	IsAdmin  bool   `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
}

// UserPreference holds one boolean per feed category, keyed by user. A row is
// created at registration with everything off.
type UserPreference struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"userId"`

	Politics      bool `json:"politics"`
	Business      bool `json:"business"`
	Technology    bool `json:"technology"`
	Sports        bool `json:"sports"`
	Entertainment bool `json:"entertainment"`
	Health        bool `json:"health"`
	Education     bool `json:"education"`
	Environment   bool `json:"environment"`
	Crime         bool `json:"crime"`
	Weather       bool `json:"weather"`
	Lifestyle     bool `json:"lifestyle"`
	Food          bool `json:"food"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleLike is one like row. Toggling removes the row; at most one row per
// (user, URL) under sequential use.
type ArticleLike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"userId"`
	ArticleURL string    `gorm:"size:1024;index" json:"articleUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SavedArticle struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"index" json:"userId"`
	Title   string    `gorm:"size:512" json:"title"`
	URL     string    `gorm:"size:1024;index" json:"url"`
	SavedAt time.Time `json:"savedAt"`
}

type ReadingHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"userId"`
	ArticleTitle string    `gorm:"size:512" json:"articleTitle"`
	ArticleURL   string    `gorm:"size:1024" json:"articleUrl"`
	ReadAt       time.Time `gorm:"index" json:"readAt"`
}

func (ReadingHistory) TableName() string { return "reading_history" }

// CachedArticle stores the scraped full text of a page the first time a user
// opens it in the reader.
type CachedArticle struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	URL      string            `gorm:"size:1024;uniqueIndex" json:"url"`
	Title    string            `gorm:"size:512" json:"title"`
	Content  string            `gorm:"type:text" json:"content"`
	ImageURL string            `gorm:"size:1024" json:"imageUrl"`
	Category string            `gorm:"size:32" json:"category"`
	Extra    datatypes.JSONMap `gorm:"type:jsonb" json:"extra"`
	CachedAt time.Time         `json:"cachedAt"`
}

func (CachedArticle) TableName() string { return "article_cache" }

// FakeNewsReport is append-only: a user may report the same URL repeatedly
// and every submission keeps its own row.
type FakeNewsReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index" json:"userId"`
	ArticleURL      string    `gorm:"size:1024" json:"articleUrl"`
	ArticleTitle    string    `gorm:"size:512" json:"articleTitle"`
	SourceURL       string    `gorm:"size:1024" json:"sourceUrl"`
	DetectionLabel  string    `gorm:"size:16" json:"detectionLabel"`
	ConfidenceScore int       `json:"confidenceScore"`
	AIScore         float64   `json:"aiScore"`
	Reasons         string    `gorm:"size:1024" json:"reasons"` // semicolon-joined
	ReportedAt      time.Time `gorm:"index" json:"reportedAt"`
}

// FakeNewsSource aggregates reports per domain with a running average
// confidence. Created lazily on the first report for a domain.
type FakeNewsSource struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Domain          string    `gorm:"size:256;uniqueIndex" json:"domain"`
	SourceURL       string    `gorm:"size:1024" json:"sourceUrl"`
	ReportCount     int       `gorm:"index" json:"reportCount"`
	TotalConfidence int       `json:"totalConfidence"`
	AvgConfidence   float64   `json:"avgConfidence"`
	LastReported    time.Time `json:"lastReported"`
	IsBlacklisted   bool      `json:"isBlacklisted"`
}

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	Message   string    `gorm:"size:2048" json:"message"`
	Response  string    `gorm:"size:4096" json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}
