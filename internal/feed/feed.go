// Package feed composes the NewsAPI client, the Philippine relevance filter,
// the enrichment pipeline, the Redis feed cache, and the social annotator
// into the result sets the HTTP routes return.
package feed

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/RonaldMark17/TrueBayan/internal/classify"
	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
	"github.com/RonaldMark17/TrueBayan/internal/processor"
	"github.com/RonaldMark17/TrueBayan/internal/social"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
	"github.com/RonaldMark17/TrueBayan/internal/translate"
)

// PerPage is the fixed page size of paginated feeds.
const PerPage = 9

type Service struct {
	news       *newsapi.Client
	store      *storage.Store
	annotator  *social.Annotator
	translator *translate.Translator
}

func NewService(news *newsapi.Client, store *storage.Store, annotator *social.Annotator, translator *translate.Translator) *Service {
	return &Service{
		news:       news,
		store:      store,
		annotator:  annotator,
		translator: translator,
	}
}

// search runs one NewsAPI query through the Redis cache and the Philippine
// filter. NewsAPI failures degrade to an empty set; the cache stores the
// unfiltered response so filter changes take effect immediately.
func (s *Service) search(ctx context.Context, q newsapi.Query) []newsapi.Article {
	key := feedCacheKey(q)

	articles, ok := s.store.CachedFeed(key)
	if !ok {
		var err error
		articles, err = s.news.SearchEverything(ctx, q)
		if err != nil {
			log.Printf("feed: newsapi query failed: %v", err)
			return nil
		}
		s.store.StoreFeed(key, articles)
	}

	return classify.FilterPhilippineNews(articles)
}

func feedCacheKey(q newsapi.Query) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s|%d", q.Q, q.Language, q.SortBy, q.PageSize)
	return hex.EncodeToString(h.Sum(nil))
}

// annotate attaches social data, logging rather than failing the feed when
// the store is unavailable.
func (s *Service) annotate(articles []*processor.Enriched, viewerID uint) []*processor.Enriched {
	if err := s.annotator.Annotate(articles, viewerID); err != nil {
		log.Printf("feed: annotate failed: %v", err)
	}
	return articles
}

// Latest is the short "latest news" rail: six newest Philippine articles
// with summaries.
func (s *Service) Latest(ctx context.Context, viewerID uint) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: queryLatest, Language: "en", SortBy: "publishedAt", PageSize: 12})
	articles = truncate(articles, 6)
	out := processor.Enrich(articles, processor.Options{WithSummary: true})
	return s.annotate(out, viewerID)
}

// Recommended is the generic recommendation rail, also the fallback when a
// personalized fetch fails.
func (s *Service) Recommended(ctx context.Context, viewerID uint) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: queryTopics, Language: "en", SortBy: "publishedAt", PageSize: 12})
	articles = truncate(articles, 6)
	out := processor.Enrich(articles, processor.Options{WithSummary: true})
	return s.annotate(out, viewerID)
}

// Personalized builds a query from the user's category preferences. Missing
// preferences or a failed fetch fall back to Recommended.
func (s *Service) Personalized(ctx context.Context, userID uint) []*processor.Enriched {
	prefs, err := s.store.Preferences(userID)
	if err != nil {
		log.Printf("feed: load preferences: %v", err)
		return s.Recommended(ctx, userID)
	}
	if prefs == nil {
		return s.Recommended(ctx, userID)
	}

	articles := s.search(ctx, newsapi.Query{Q: personalizedQuery(prefs), Language: "en", SortBy: "publishedAt", PageSize: 18})
	if len(articles) == 0 {
		return s.Recommended(ctx, userID)
	}
	articles = truncate(articles, 9)

	out := processor.Enrich(articles, processor.Options{WithSummary: true, WithLabel: true, WithCategory: true})
	return s.annotate(out, userID)
}

// LandingHeadlines feeds the public landing page: labels only, anonymous
// social counts.
func (s *Service) LandingHeadlines(ctx context.Context) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: queryLanding, Language: "en", SortBy: "publishedAt", PageSize: 12})
	articles = truncate(articles, 6)
	out := processor.Enrich(articles, processor.Options{WithLabel: true})
	return s.annotate(out, 0)
}

// DashboardHeadlines returns the dashboard's headline block, optionally
// narrowed to a category chip.
func (s *Service) DashboardHeadlines(ctx context.Context, viewerID uint, category string) []*processor.Enriched {
	q := queryDashboard
	if category != "" {
		q = categoryQuery(category)
	}
	articles := s.search(ctx, newsapi.Query{Q: q, Language: "en", SortBy: "publishedAt", PageSize: 18})
	articles = truncate(articles, 9)
	out := processor.Enrich(articles, processor.Options{WithLabel: true, WithCategory: true})
	return s.annotate(out, viewerID)
}

// LatestPaginated is the dashboard's full latest feed before pagination.
func (s *Service) LatestPaginated(ctx context.Context, viewerID uint) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: queryLatest, Language: "en", SortBy: "publishedAt", PageSize: 50})
	out := processor.Enrich(articles, processor.Options{WithSummary: true, WithLabel: true, WithCategory: true})
	return s.annotate(out, viewerID)
}

// Search runs a keyword search anchored to Philippine coverage, with the
// full enrichment set including the Filipino translation.
func (s *Service) Search(ctx context.Context, viewerID uint, keyword string) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: searchQuery(keyword), Language: "en", SortBy: "relevancy", PageSize: 50})
	out := processor.Enrich(articles, processor.Options{
		WithSummary:  true,
		WithLabel:    true,
		WithCategory: true,
		WithFilipino: true,
		Translate: func(text string) string {
			return s.translator.Translate(text, translate.TargetFilipino)
		},
	})
	return s.annotate(out, viewerID)
}

// APINews is the public JSON feed: ten articles with anonymous social counts.
func (s *Service) APINews(ctx context.Context) []*processor.Enriched {
	articles := s.search(ctx, newsapi.Query{Q: queryAPINews, Language: "en", SortBy: "publishedAt", PageSize: 15})
	articles = truncate(articles, 10)
	out := processor.Enrich(articles, processor.Options{})
	return s.annotate(out, 0)
}

// Prewarm fetches the default feeds so their NewsAPI responses sit in the
// Redis cache before users ask for them.
func (s *Service) Prewarm(ctx context.Context) {
	queries := []newsapi.Query{
		{Q: queryLatest, Language: "en", SortBy: "publishedAt", PageSize: 12},
		{Q: queryLatest, Language: "en", SortBy: "publishedAt", PageSize: 50},
		{Q: queryDashboard, Language: "en", SortBy: "publishedAt", PageSize: 18},
		{Q: queryLanding, Language: "en", SortBy: "publishedAt", PageSize: 12},
		{Q: queryTopics, Language: "en", SortBy: "publishedAt", PageSize: 12},
	}
	for _, q := range queries {
		s.search(ctx, q)
	}
}

// Page slices one page out of items. Pages are 1-based; out-of-range pages
// return an empty slice.
func Page(items []*processor.Enriched, page int) (paged []*processor.Enriched, totalPages int) {
	if page < 1 {
		page = 1
	}
	totalPages = (len(items) + PerPage - 1) / PerPage

	start := (page - 1) * PerPage
	if start >= len(items) {
		return []*processor.Enriched{}, totalPages
	}
	end := start + PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

func truncate(articles []newsapi.Article, n int) []newsapi.Article {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}
