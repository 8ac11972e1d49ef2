// Package sentiment implements a small lexicon-based analyzer in the style of
// pattern-type sentiment lexicons: each known word carries a polarity in
// [-1, 1] and a subjectivity in [0, 1], and a text scores as the average over
// its known words. Unknown-only text scores as fully neutral and objective.
package sentiment

import "strings"

type Score struct {
	Polarity     float64 // -1 (negative) .. 1 (positive)
	Subjectivity float64 // 0 (objective) .. 1 (subjective)
}

// negators flip and dampen the polarity of the following lexicon word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true,
	"nobody": true, "nothing": true, "cannot": true,
}

// Analyze scores text by averaging the lexicon entries of its words. A word
// directly preceded by a negator contributes -0.5x its polarity.
func Analyze(text string) Score {
	var (
		polaritySum     float64
		subjectivitySum float64
		matched         int
		negated         bool
	)

	for _, word := range tokenize(text) {
		if negators[word] {
			negated = true
			continue
		}
		entry, ok := lexicon[word]
		if !ok {
			negated = false
			continue
		}
		p := entry.polarity
		if negated {
			p *= -0.5
			negated = false
		}
		polaritySum += p
		subjectivitySum += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return Score{}
	}
	return Score{
		Polarity:     polaritySum / float64(matched),
		Subjectivity: subjectivitySum / float64(matched),
	}
}

// tokenize lowercases and splits on any non-letter rune. Hyphenated and
// apostrophized forms therefore split into their parts, which is what the
// lexicon expects.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isLetter(r)
	})
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
