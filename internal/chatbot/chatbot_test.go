package chatbot

import (
	"strings"
	"testing"
)

func TestReplyGreeting(t *testing.T) {
	for _, msg := range []string{"hello", "Hi there", "kumusta po"} {
		if got := Reply(msg); !strings.Contains(got, "True Bayan AI Assistant") {
			t.Fatalf("Reply(%q) = %q, want greeting", msg, got)
		}
	}
}

func TestReplyFirstRuleWins(t *testing.T) {
	// "check" (fake-news rule) appears before "save"; the earlier rule
	// must answer even when both trigger.
	got := Reply("how do I check a saved article")
	if !strings.Contains(got, "Fake News Tracker") {
		t.Fatalf("Reply = %q, want fake-news answer", got)
	}
}

func TestReplyCaseInsensitive(t *testing.T) {
	if got := Reply("SALAMAT"); !strings.Contains(got, "welcome") {
		t.Fatalf("Reply = %q, want thanks answer", got)
	}
}

func TestReplyFallback(t *testing.T) {
	if got := Reply("xyzzy"); got != fallbackResponse {
		t.Fatalf("Reply = %q, want fallback", got)
	}
}
