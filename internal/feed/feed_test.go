package feed

import (
	"strings"
	"testing"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
	"github.com/RonaldMark17/TrueBayan/internal/processor"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
)

func TestPersonalizedQueryNoPreferencesFallsBack(t *testing.T) {
	q := personalizedQuery(&storage.UserPreference{})
	if q != queryFallback {
		t.Fatalf("personalizedQuery(empty) = %q, want fallback", q)
	}
}

func TestPersonalizedQueryJoinsEnabledCategories(t *testing.T) {
	prefs := &storage.UserPreference{Politics: true, Sports: true}
	q := personalizedQuery(prefs)

	if !strings.Contains(q, "politics OR government") {
		t.Fatalf("query missing politics group: %q", q)
	}
	if !strings.Contains(q, "basketball OR boxing") {
		t.Fatalf("query missing sports group: %q", q)
	}
	if strings.Contains(q, "showbiz") {
		t.Fatalf("query contains disabled category: %q", q)
	}
	if !strings.Contains(q, ") OR (") {
		t.Fatalf("groups not ORed together: %q", q)
	}
}

func TestCategoryQueryAnchorsToPhilippines(t *testing.T) {
	q := categoryQuery("Politics")
	if !strings.Contains(q, "AND (Philippines OR Manila)") {
		t.Fatalf("category query not anchored: %q", q)
	}
}

func TestCategoryQueryWorldSkipsAnchor(t *testing.T) {
	q := categoryQuery("World")
	if strings.Contains(q, "Philippines") {
		t.Fatalf("world query should not be anchored: %q", q)
	}
}

func TestCategoryQueryUnknownUsesName(t *testing.T) {
	q := categoryQuery("Agriculture")
	if !strings.Contains(q, "Agriculture") {
		t.Fatalf("unknown category query = %q", q)
	}
}

func TestSearchQueryWrapsKeyword(t *testing.T) {
	q := searchQuery("jeepney modernization")
	if !strings.HasPrefix(q, "(jeepney modernization) AND") {
		t.Fatalf("search query = %q", q)
	}
}

func TestFeedCacheKeyDistinguishesQueries(t *testing.T) {
	a := feedCacheKey(newsapi.Query{Q: "x", PageSize: 12})
	b := feedCacheKey(newsapi.Query{Q: "x", PageSize: 50})
	c := feedCacheKey(newsapi.Query{Q: "x", PageSize: 12})
	if a == b {
		t.Fatalf("cache key ignores page size")
	}
	if a != c {
		t.Fatalf("cache key not deterministic")
	}
}

func TestPageSlicing(t *testing.T) {
	items := make([]*processor.Enriched, 20)
	for i := range items {
		items[i] = &processor.Enriched{}
	}

	first, total := Page(items, 1)
	if len(first) != PerPage || total != 3 {
		t.Fatalf("page 1: len=%d total=%d", len(first), total)
	}

	last, _ := Page(items, 3)
	if len(last) != 2 {
		t.Fatalf("page 3: len=%d, want 2", len(last))
	}

	beyond, _ := Page(items, 9)
	if len(beyond) != 0 {
		t.Fatalf("page 9: len=%d, want 0", len(beyond))
	}

	zero, total := Page(nil, 1)
	if len(zero) != 0 || total != 0 {
		t.Fatalf("empty input: len=%d total=%d", len(zero), total)
	}
}
