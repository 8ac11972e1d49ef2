package sentiment

import "testing"

func TestAnalyzeNeutralTextIsObjective(t *testing.T) {
	s := Analyze("The department released the quarterly budget on Tuesday according to the ministry.")
	if s.Subjectivity >= 0.3 {
		t.Fatalf("factual text subjectivity = %v, want < 0.3", s.Subjectivity)
	}
	if s.Polarity < -0.1 || s.Polarity > 0.1 {
		t.Fatalf("factual text polarity = %v, want near 0", s.Polarity)
	}
}

func TestAnalyzeUnknownWordsScoreZero(t *testing.T) {
	s := Analyze("qwzx blorp frabjous")
	if s.Polarity != 0 || s.Subjectivity != 0 {
		t.Fatalf("unknown-only text = %+v, want zero score", s)
	}
}

func TestAnalyzeNegativeSubjectiveText(t *testing.T) {
	s := Analyze("This horrible outrageous scandal is terrible and shocking")
	if s.Polarity >= -0.2 {
		t.Fatalf("polarity = %v, want < -0.2", s.Polarity)
	}
	if s.Subjectivity <= 0.6 {
		t.Fatalf("subjectivity = %v, want > 0.6", s.Subjectivity)
	}
}

func TestAnalyzePositiveText(t *testing.T) {
	s := Analyze("An amazing wonderful fantastic win")
	if s.Polarity <= 0.5 {
		t.Fatalf("polarity = %v, want > 0.5", s.Polarity)
	}
}

func TestNegatorFlipsPolarity(t *testing.T) {
	plain := Analyze("good")
	negated := Analyze("not good")
	if plain.Polarity <= 0 {
		t.Fatalf("plain polarity = %v, want > 0", plain.Polarity)
	}
	if negated.Polarity >= 0 {
		t.Fatalf("negated polarity = %v, want < 0", negated.Polarity)
	}
}

func TestTokenizeSplitsOnPunctuation(t *testing.T) {
	words := tokenize("BREAKING: You won't believe this!")
	want := []string{"breaking", "you", "won", "t", "believe", "this"}
	if len(words) != len(want) {
		t.Fatalf("tokenize returned %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, words[i], want[i])
		}
	}
}
