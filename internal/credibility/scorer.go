// Package credibility scores article text with a deterministic rule-based
// heuristic: a trusted-domain list, lexicon sentiment thresholds, and two
// keyword lists combine into a 0-100 risk score, which maps to a label, a
// 0-10 display score, and a confidence percentage.
package credibility

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/RonaldMark17/TrueBayan/internal/sentiment"
)

const (
	LabelFake       = "FAKE"
	LabelSuspicious = "SUSPICIOUS"
	LabelVerify     = "VERIFY"
	LabelCredible   = "CREDIBLE"
)

// Result of a credibility analysis. Score is the displayed 0-10 risk rating
// (high = likely fake); Confidence is 0-100.
type Result struct {
	Label      string   `json:"label"`
	Confidence int      `json:"confidence"`
	Score      float64  `json:"ai_score"`
	Reasons    []string `json:"reasons"`
}

// trustedDomains short-circuits most of the risk for established outlets.
// Matching is a case-insensitive substring test against the full URL.
var trustedDomains = []string{
	"rappler.com", "inquirer.net", "abs-cbn.com", "gma.network", "philstar.com",
	"cnnphilippines.com", "manilabulletin.com", "bworldonline.com", "pna.gov.ph",
	"bbc.com", "reuters.com", "apnews.com", "nytimes.com", "yugatech.com",
	"spot.ph", "spin.ph", "pep.ph", "gmanetwork.com",
}

// Keyword order matters: the first match is the one echoed in the reasons.
var highRiskKeywords = []string{
	"hoax", "conspiracy", "exposed", "secret", "shocking",
	"censored", "mainstream media", "government lies", "debunked",
	"miracle cure", "bioweapon", "deep state", "wake up", "plot",
}

var clickbaitKeywords = []string{
	"you won't believe", "shocking truth", "viral", "mind blowing",
	"this will change everything", "urgent", "breaking news", "omg",
}

// Score analyzes text from sourceURL. Never fails: text below 100 characters
// returns a fixed low-confidence VERIFY result.
func Score(text, sourceURL string) Result {
	// Length gates count characters, not bytes.
	if utf8.RuneCountInString(text) < 100 {
		return Result{
			Label:      LabelVerify,
			Confidence: 0,
			Score:      5.0,
			Reasons:    []string{"Content too short for accurate analysis"},
		}
	}

	s := sentiment.Analyze(text)
	reasons := []string{}

	// Neutral prior; everything below shifts it.
	risk := 50

	if sourceURL != "" && matchesTrustedDomain(sourceURL) {
		risk -= 40
		reasons = append(reasons, "Source is Verified & Trusted")
	} else {
		risk += 10
		reasons = append(reasons, "Source unverified (Proceed with caution)")
	}

	if s.Subjectivity > 0.6 {
		if s.Polarity < -0.2 {
			risk += 20
			reasons = append(reasons, "High Subjectivity + Negativity Detected")
		} else {
			risk += 10
			reasons = append(reasons, "Opinionated Content Detected")
		}
	} else if s.Subjectivity < 0.3 {
		risk -= 10
		reasons = append(reasons, "Objective/Factual Writing Style")
	}

	// Fires independently of the subjectivity branch.
	if math.Abs(s.Polarity) > 0.8 {
		risk += 15
		reasons = append(reasons, "Extreme Emotional Language")
	}

	textLower := strings.ToLower(text)

	if w := firstKeyword(textLower, highRiskKeywords); w != "" {
		risk += 25
		reasons = append(reasons, "Suspicious keyword: '"+w+"'")
	}
	if w := firstKeyword(textLower, clickbaitKeywords); w != "" {
		risk += 10
		reasons = append(reasons, "Clickbait style: '"+w+"'")
	}

	finalRisk := clamp(risk, 0, 100)
	// Risk is integral, so one decimal place is exact here.
	aiScore := float64(finalRisk) / 10

	confidence := abs(finalRisk-50) * 2
	if utf8.RuneCountInString(text) > 1000 {
		confidence = min(100, confidence+10)
	}

	var label string
	switch {
	case finalRisk >= 80:
		label = LabelFake
	case finalRisk >= 70:
		label = LabelSuspicious
	case finalRisk >= 50:
		label = LabelVerify
	default:
		label = LabelCredible
	}

	return Result{
		Label:      label,
		Confidence: confidence,
		Score:      aiScore,
		Reasons:    reasons,
	}
}

// Label is the label-only shorthand used when scoring feed descriptions.
func Label(text, sourceURL string) string {
	return Score(text, sourceURL).Label
}

func matchesTrustedDomain(sourceURL string) bool {
	u := strings.ToLower(sourceURL)
	for _, d := range trustedDomains {
		if strings.Contains(u, d) {
			return true
		}
	}
	return false
}

func firstKeyword(textLower string, keywords []string) string {
	for _, w := range keywords {
		if strings.Contains(textLower, w) {
			return w
		}
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
