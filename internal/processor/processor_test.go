package processor

import (
	"testing"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
)

func TestSummarizeKeepsFirstThreeSentences(t *testing.T) {
	text := "One. Two. Three. Four. Five."
	got := Summarize(text)
	if got != "One. Two. Three." {
		t.Fatalf("Summarize = %q", got)
	}
}

func TestSummarizeShortTextUnchanged(t *testing.T) {
	text := "One. Two."
	if got := Summarize(text); got != text {
		t.Fatalf("Summarize = %q, want unchanged", got)
	}
	if got := Summarize(""); got != "" {
		t.Fatalf("Summarize(\"\") = %q, want empty", got)
	}
}

func TestSummarizeAdvancedHandlesMixedPunctuation(t *testing.T) {
	text := "Is it true? It is!   The senate   confirmed it today. More detail follows. And more."
	got := SummarizeAdvanced(text, 3)
	want := "Is it true? It is! The senate confirmed it today."
	if got != want {
		t.Fatalf("SummarizeAdvanced = %q, want %q", got, want)
	}
}

func TestSummarizeAdvancedFewSentencesUnchanged(t *testing.T) {
	text := "Only one sentence here."
	if got := SummarizeAdvanced(text, 3); got != text {
		t.Fatalf("SummarizeAdvanced = %q, want unchanged", got)
	}
}

func TestEnrichAttachesRequestedFields(t *testing.T) {
	articles := []newsapi.Article{
		{
			Title:       "Senate election heats up",
			Description: "The president campaigns in Manila. Rallies continue. Turnout is high. More next week.",
			URL:         "https://example.com/a",
		},
	}

	out := Enrich(articles, Options{WithSummary: true, WithLabel: true, WithCategory: true})
	if len(out) != 1 {
		t.Fatalf("Enrich returned %d items, want 1", len(out))
	}
	e := out[0]
	if e.Summary == "" {
		t.Fatalf("summary not attached")
	}
	if e.Label == "" {
		t.Fatalf("label not attached")
	}
	if e.Category != "Politics" {
		t.Fatalf("category = %q, want Politics", e.Category)
	}
	if e.Filipino != "" {
		t.Fatalf("filipino attached without option: %q", e.Filipino)
	}
	// source payload untouched
	if e.Article.Title != articles[0].Title || e.Article.Description != articles[0].Description {
		t.Fatalf("enrichment mutated the source article: %+v", e.Article)
	}
}

func TestEnrichUsesTranslator(t *testing.T) {
	articles := []newsapi.Article{{Description: "hello"}}
	out := Enrich(articles, Options{WithFilipino: true, Translate: func(s string) string { return "tl:" + s }})
	if out[0].Filipino != "tl:hello" {
		t.Fatalf("filipino = %q", out[0].Filipino)
	}
}
