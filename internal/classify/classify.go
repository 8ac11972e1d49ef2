// Package classify holds the Philippine-relevance filter and the keyword
// category table used across the feed and reader paths.
package classify

import (
	"strings"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
)

var philippineKeywords = []string{
	"philippines", "philippine", "manila", "filipino", "filipina",
	"cebu", "davao", "mindanao", "luzon", "visayas",
	"duterte", "marcos", "quezon", "makati", "pasig",
	"senate", "congress", "doh", "dilg", "pnp",
	"abs-cbn", "gma", "pba", "gilas", "pacquiao",
}

// Category pairs a name with its keyword set. The table is an ordered slice
// on purpose: some keywords appear under more than one category (e.g.
// "weather" under both Environment and Weather) and the first match wins.
type Category struct {
	Name     string
	Keywords []string
}

var categories = []Category{
	{"Politics", []string{"politics", "government", "election", "senate", "congress", "president", "mayor", "duterte", "marcos"}},
	{"Business", []string{"business", "economy", "stock", "market", "company", "trade", "investment", "peso", "gdp"}},
	{"Technology", []string{"technology", "tech", "smartphone", "app", "software", "internet", "digital", "AI", "gadget"}},
	{"Sports", []string{"sports", "basketball", "boxing", "football", "pba", "gilas", "pacquiao", "athlete", "game"}},
	{"Entertainment", []string{"entertainment", "movie", "celebrity", "showbiz", "abs-cbn", "gma", "actor", "actress"}},
	{"Health", []string{"health", "medical", "hospital", "doctor", "covid", "vaccine", "disease", "doh", "wellness"}},
	{"Education", []string{"education", "school", "university", "student", "teacher", "deped", "ched", "learning"}},
	{"Environment", []string{"environment", "climate", "weather", "typhoon", "flood", "pollution", "pagasa", "nature"}},
	{"Crime", []string{"crime", "police", "arrest", "murder", "theft", "pnp", "investigation", "suspect"}},
	{"Weather", []string{"weather", "typhoon", "rain", "storm", "pagasa", "forecast", "temperature"}},
	{"Lifestyle", []string{"lifestyle", "fashion", "travel", "culture", "art", "tourism", "food"}},
	{"Food", []string{"food", "restaurant", "cuisine", "recipe", "chef", "cooking", "dining"}},
}

const DefaultCategory = "General"

// CategoryNames returns the canonical category ordering, for the preferences
// surface.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// IsPhilippineNews reports whether the article mentions any Philippine
// keyword in its title, description, or content. Articles failing this check
// are dropped from every feed, not down-ranked.
func IsPhilippineNews(a newsapi.Article) bool {
	text := strings.ToLower(a.Title + " " + a.Description + " " + a.Content)
	for _, kw := range philippineKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FilterPhilippineNews keeps only Philippine-related articles.
func FilterPhilippineNews(articles []newsapi.Article) []newsapi.Article {
	out := make([]newsapi.Article, 0, len(articles))
	for _, a := range articles {
		if IsPhilippineNews(a) {
			out = append(out, a)
		}
	}
	return out
}

// DetectCategory returns the first category whose keyword set intersects the
// lowercased title+description, or DefaultCategory when none match.
func DetectCategory(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				return c.Name
			}
		}
	}
	return DefaultCategory
}
