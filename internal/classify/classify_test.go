package classify

import (
	"testing"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
)

func TestIsPhilippineNewsMatchesAnyField(t *testing.T) {
	cases := []struct {
		name string
		a    newsapi.Article
		want bool
	}{
		{"title", newsapi.Article{Title: "Manila traffic worsens"}, true},
		{"description", newsapi.Article{Title: "Storm update", Description: "PAGASA tracks typhoon near Cebu"}, true},
		{"content", newsapi.Article{Title: "Sports roundup", Content: "Gilas wins again"}, true},
		{"case insensitive", newsapi.Article{Title: "PHILIPPINES economy grows"}, true},
		{"unrelated", newsapi.Article{Title: "Local election in Norway", Description: "Oslo votes"}, false},
	}

	for _, tc := range cases {
		if got := IsPhilippineNews(tc.a); got != tc.want {
			t.Fatalf("%s: IsPhilippineNews = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterPhilippineNewsDropsEntirely(t *testing.T) {
	in := []newsapi.Article{
		{URL: "a", Title: "Davao opens new port"},
		{URL: "b", Title: "Berlin tech fair"},
		{URL: "c", Title: "Senate passes budget"},
	}
	out := FilterPhilippineNews(in)
	if len(out) != 2 {
		t.Fatalf("filtered length = %d, want 2", len(out))
	}
	if out[0].URL != "a" || out[1].URL != "c" {
		t.Fatalf("filter changed order or kept wrong items: %+v", out)
	}
}

func TestDetectCategoryFirstMatchWins(t *testing.T) {
	// "weather" belongs to both Environment and Weather; Environment is
	// earlier in the table and must win.
	if got := DetectCategory("Weather advisory issued", ""); got != "Environment" {
		t.Fatalf("category = %q, want Environment", got)
	}

	// "food" appears under Lifestyle before Food.
	if got := DetectCategory("Street food festival", ""); got != "Lifestyle" {
		t.Fatalf("category = %q, want Lifestyle", got)
	}
}

func TestDetectCategoryDefault(t *testing.T) {
	if got := DetectCategory("Untitled", "nothing matches here"); got != DefaultCategory {
		t.Fatalf("category = %q, want %q", got, DefaultCategory)
	}
}

func TestDetectCategoryIdempotent(t *testing.T) {
	first := DetectCategory("Senate election heats up", "president campaigns")
	second := DetectCategory("Senate election heats up", "president campaigns")
	if first != second {
		t.Fatalf("category not stable: %q vs %q", first, second)
	}
	if first != "Politics" {
		t.Fatalf("category = %q, want Politics", first)
	}
}
