package credibility

import (
	"strings"
	"testing"
)

const factualSentence = "The department said the figures were reported and confirmed by officials according to the ministry. "

func TestScoreShortTextReturnsFixedVerify(t *testing.T) {
	r := Score("too short", "https://example.com")
	if r.Label != LabelVerify {
		t.Fatalf("label = %q, want %q", r.Label, LabelVerify)
	}
	if r.Confidence != 0 {
		t.Fatalf("confidence = %d, want 0", r.Confidence)
	}
	if r.Score != 5.0 {
		t.Fatalf("score = %v, want 5.0", r.Score)
	}
	if len(r.Reasons) != 1 {
		t.Fatalf("reasons = %v, want exactly one", r.Reasons)
	}
}

func TestScoreShortTextGateCountsCharactersNotBytes(t *testing.T) {
	// 60 characters but 120 bytes: still below the 100-character gate.
	text := strings.Repeat("ñ", 60)
	r := Score(text, "https://reuters.com/world/story")

	if r.Label != LabelVerify {
		t.Fatalf("label = %q, want %q", r.Label, LabelVerify)
	}
	if r.Confidence != 0 {
		t.Fatalf("confidence = %d, want 0", r.Confidence)
	}
	if r.Score != 5.0 {
		t.Fatalf("score = %v, want 5.0", r.Score)
	}
}

func TestScoreLongTextBoostCountsCharactersNotBytes(t *testing.T) {
	// Unknown source (+10) and objective style (-10) pin risk at 50 and
	// confidence at 0. The multibyte padding takes the byte length past
	// 1000 while the character count stays at 800, so the long-text boost
	// must not fire.
	text := strings.Repeat(factualSentence, 2) + strings.Repeat("ñ", 600)
	r := Score(text, "https://some-random-site.biz/a")

	if r.Confidence != 0 {
		t.Fatalf("confidence = %d, want 0 (no long-text boost)", r.Confidence)
	}
}

func TestScoreConspiracyClickbaitIsFake(t *testing.T) {
	text := "BREAKING: shocking conspiracy exposed by a secret insider! You won't believe this! " +
		"Share before it gets censored by the mainstream media everywhere."
	r := Score(text, "https://unknownblog.biz/post/1")

	if r.Label != LabelFake {
		t.Fatalf("label = %q, want %q", r.Label, LabelFake)
	}
	if r.Score < 8.5 {
		t.Fatalf("score = %v, want >= 8.5", r.Score)
	}

	// The high-risk list order decides which keyword is echoed, and
	// "conspiracy" comes before "exposed", "secret" and "shocking".
	if !hasReason(r.Reasons, "Suspicious keyword: 'conspiracy'") {
		t.Fatalf("reasons = %v, want conspiracy keyword reason", r.Reasons)
	}
	if !hasReason(r.Reasons, "Clickbait style: 'you won't believe'") {
		t.Fatalf("reasons = %v, want clickbait reason", r.Reasons)
	}
}

func TestScoreObjectiveTrustedSourceIsCredible(t *testing.T) {
	text := strings.Repeat(factualSentence, 15) // ~1500 chars, objective register
	r := Score(text, "https://reuters.com/world/asia-pacific/story")

	if r.Label != LabelCredible {
		t.Fatalf("label = %q, want %q", r.Label, LabelCredible)
	}
	// risk = 50 - 40 (trusted) - 10 (objective) = 0
	if r.Score != 0.0 {
		t.Fatalf("score = %v, want 0.0", r.Score)
	}
	// |0-50|*2 = 100, long-text boost stays clamped at 100
	if r.Confidence != 100 {
		t.Fatalf("confidence = %d, want 100", r.Confidence)
	}
}

func TestScoreRiskExactly50IsVerify(t *testing.T) {
	// Unknown source (+10) with objective style (-10) lands exactly on the
	// inclusive VERIFY boundary.
	text := strings.Repeat(factualSentence, 2)
	r := Score(text, "https://some-random-site.biz/a")

	if r.Label != LabelVerify {
		t.Fatalf("label = %q, want %q", r.Label, LabelVerify)
	}
	if r.Score != 5.0 {
		t.Fatalf("score = %v, want 5.0", r.Score)
	}
	if r.Confidence != 0 {
		t.Fatalf("confidence = %d, want 0", r.Confidence)
	}
}

func TestScoreKeywordEchoFollowsListOrder(t *testing.T) {
	// "secret" appears first in the text but "hoax" comes first in the
	// keyword list, so "hoax" is the one named.
	text := strings.Repeat(factualSentence, 2) + "A secret memo proves the whole thing was a hoax."
	r := Score(text, "https://some-random-site.biz/a")

	if !hasReason(r.Reasons, "Suspicious keyword: 'hoax'") {
		t.Fatalf("reasons = %v, want hoax echoed", r.Reasons)
	}
}

func TestScoreSubjectivityAndExtremeEmotionBothFire(t *testing.T) {
	text := "An amazing wonderful fantastic incredible announcement that thrilled the whole barangay community today for sure."
	r := Score(text, "https://some-random-site.biz/a")

	if !hasReason(r.Reasons, "Opinionated Content Detected") {
		t.Fatalf("reasons = %v, want opinionated reason", r.Reasons)
	}
	if !hasReason(r.Reasons, "Extreme Emotional Language") {
		t.Fatalf("reasons = %v, want extreme emotion reason", r.Reasons)
	}
	// 50 + 10 (unknown) + 10 (opinionated) + 15 (extreme) = 85
	if r.Label != LabelFake {
		t.Fatalf("label = %q, want %q", r.Label, LabelFake)
	}
	if r.Confidence != 70 {
		t.Fatalf("confidence = %d, want 70", r.Confidence)
	}
}

func TestLabelShorthand(t *testing.T) {
	if got := Label("x", ""); got != LabelVerify {
		t.Fatalf("Label short text = %q, want %q", got, LabelVerify)
	}
}

func hasReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
