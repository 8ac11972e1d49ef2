// Package processor turns raw NewsAPI articles into the enriched shape the
// feed endpoints return. Derived fields live beside the source article rather
// than overwriting it, so provenance stays clear.
package processor

import (
	"strings"

	"github.com/RonaldMark17/TrueBayan/internal/classify"
	"github.com/RonaldMark17/TrueBayan/internal/credibility"
	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
)

// Social carries the community counts and viewer state attached by the
// social annotator.
type Social struct {
	Likes     int64 `json:"likes"`
	Saves     int64 `json:"saves"`
	UserLiked bool  `json:"userLiked"`
	UserSaved bool  `json:"userSaved"`
}

// Enriched is one display-ready article: the original payload plus whatever
// derived fields the route asked for.
type Enriched struct {
	newsapi.Article
	Summary  string `json:"summary,omitempty"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
	Filipino string `json:"filipino,omitempty"`
	Social   Social `json:"social"`
}

// Options selects which derived fields Enrich computes. Translate is only
// consulted when WithFilipino is set.
type Options struct {
	WithSummary  bool
	WithLabel    bool
	WithCategory bool
	WithFilipino bool
	Translate    func(text string) string
}

// Enrich wraps each article with the requested derived fields. The label and
// Filipino translation are computed over the description, matching what the
// feed cards display.
func Enrich(articles []newsapi.Article, opts Options) []*Enriched {
	out := make([]*Enriched, 0, len(articles))
	for _, a := range articles {
		e := &Enriched{Article: a}
		desc := a.Description

		if opts.WithSummary {
			e.Summary = Summarize(desc)
		}
		if opts.WithLabel {
			e.Label = credibility.Label(desc, "")
		}
		if opts.WithCategory {
			e.Category = classify.DetectCategory(a.Title, desc)
		}
		if opts.WithFilipino && opts.Translate != nil {
			e.Filipino = opts.Translate(desc)
		}
		out = append(out, e)
	}
	return out
}

// Summarize keeps the first three period-separated sentences of text, or the
// whole text when it has three or fewer.
func Summarize(text string) string {
	if text == "" {
		return ""
	}
	sentences := strings.Split(text, ".")
	if len(sentences) <= 3 {
		return text
	}
	return strings.Join(sentences[:3], ".") + "."
}

// SummarizeAdvanced collapses whitespace, splits on sentence-ending
// punctuation, and keeps the first count sentences.
func SummarizeAdvanced(text string, count int) string {
	text = strings.Join(strings.Fields(text), " ")
	sentences := splitSentences(text)
	if len(sentences) <= count {
		return text
	}
	return strings.Join(sentences[:count], " ")
}

// splitSentences breaks after '.', '!' or '?' followed by a space.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text)-1; i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && text[i+1] == ' ' {
			out = append(out, text[start:i+1])
			i++
			for i < len(text)-1 && text[i+1] == ' ' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
