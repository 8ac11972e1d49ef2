package feed

import (
	"strings"

	"github.com/RonaldMark17/TrueBayan/internal/storage"
)

// Canonical NewsAPI query strings. Every feed stays anchored to Philippine
// terms; the hard relevance filter still runs on the results afterwards.
const (
	queryLatest    = `Philippines OR Manila OR Cebu OR Davao OR Duterte OR Marcos OR Philippine`
	queryTopics    = `(Philippines OR Manila OR Cebu OR Davao OR Mindanao OR Luzon OR Visayas OR "Philippine government" OR "Filipino" OR Quezon OR Makati OR Pasig)`
	queryLanding   = `Philippines OR Manila OR "Philippine news" OR Duterte OR Marcos`
	queryDashboard = `Philippines OR Manila OR "Philippine news" OR "Metro Manila" OR Cebu OR Davao`
	queryAPINews   = `Philippines OR Manila OR "Philippine news"`
	queryFallback  = `Philippines OR Manila OR "Philippine news"`
)

// categoryQueries back the dashboard category chips. "World" deliberately
// skips the Philippines clause.
var categoryQueries = map[string]string{
	"Politics":      "politics OR government OR election OR senate OR congress",
	"Business":      "business OR economy OR market OR trade",
	"Technology":    "technology OR tech OR digital OR cyber",
	"Sports":        "sports OR basketball OR PBA OR boxing",
	"Entertainment": "entertainment OR showbiz OR celebrity",
	"Health":        "health OR covid OR medical OR virus",
	"World":         "world news",
}

// categoryQuery builds the dashboard query for a category chip. Unknown
// categories search for their own name.
func categoryQuery(category string) string {
	keywords, ok := categoryQueries[category]
	if !ok {
		keywords = category
	}
	if category == "World" {
		return "(" + keywords + ")"
	}
	return "(" + keywords + ") AND (Philippines OR Manila)"
}

// searchQuery anchors a user keyword search to Philippine coverage.
func searchQuery(keyword string) string {
	return "(" + keyword + `) AND (Philippines OR Manila OR Filipino OR "Philippine news")`
}

// interest query fragments, one per preference category.
var interestFragments = []struct {
	enabled  func(p *storage.UserPreference) bool
	fragment string
}{
	{func(p *storage.UserPreference) bool { return p.Politics }, "(politics OR government OR election OR senate OR congress) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Business }, "(business OR economy OR trade OR investment OR company) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Technology }, "(technology OR tech OR startup OR digital OR IT) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Sports }, "(sports OR basketball OR boxing OR PBA OR Gilas OR Pacquiao) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Entertainment }, "(entertainment OR celebrity OR movie OR showbiz OR ABS-CBN OR GMA) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Health }, "(health OR medical OR hospital OR COVID OR DOH) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Education }, "(education OR school OR university OR DepEd OR CHED) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Environment }, "(environment OR climate OR typhoon OR PAGASA) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Crime }, "(crime OR police OR PNP OR investigation) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Weather }, "(weather OR typhoon OR storm OR PAGASA OR forecast) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Lifestyle }, "(lifestyle OR fashion OR travel OR culture OR tourism) AND Philippines"},
	{func(p *storage.UserPreference) bool { return p.Food }, "(food OR restaurant OR cuisine OR Filipino food) AND Philippines"},
}

// personalizedQuery ORs together a query group per enabled category. With no
// preferences enabled it falls back to the generic Philippine query.
func personalizedQuery(prefs *storage.UserPreference) string {
	var interests []string
	for _, f := range interestFragments {
		if f.enabled(prefs) {
			interests = append(interests, "("+f.fragment+")")
		}
	}
	if len(interests) == 0 {
		return queryFallback
	}
	return strings.Join(interests, " OR ")
}
