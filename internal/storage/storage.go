package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
)

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&User{}, &UserPreference{},
		&ArticleLike{}, &SavedArticle{}, &ReadingHistory{},
		&CachedArticle{},
		&FakeNewsReport{}, &FakeNewsSource{},
		&ChatMessage{},
	); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// feedCacheTTL keeps NewsAPI responses hot between prewarm runs without
// serving stale headlines for long.
const feedCacheTTL = 5 * time.Minute

// CachedFeed returns a cached NewsAPI result set for key, if present.
func (s *Store) CachedFeed(key string) ([]newsapi.Article, bool) {
	if s.Redis == nil {
		return nil, false
	}
	ctx := context.Background()
	bs, err := s.Redis.Get(ctx, "feed:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []newsapi.Article
	if err := json.Unmarshal(bs, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

// StoreFeed caches a NewsAPI result set under key with a short TTL.
func (s *Store) StoreFeed(key string, articles []newsapi.Article) {
	if s.Redis == nil || len(articles) == 0 {
		return
	}
	bs, err := json.Marshal(articles)
	if err != nil {
		return
	}
	ctx := context.Background()
	_ = s.Redis.Set(ctx, "feed:"+key, bs, feedCacheTTL).Err()
}
