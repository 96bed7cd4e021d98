// apps/go-scorer/internal/wordle/state.go
//
// LetterState is the per-letter verdict produced by Score.

package wordle

import "strings"

// LetterState represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":   letter matches the answer at the same position.
//   - "misplaced": letter exists in the answer, elsewhere, within unmatched supply.
//   - "incorrect": letter is absent from the answer or its supply is used up.
type LetterState string

const (
	Correct   LetterState = "correct"
	Misplaced LetterState = "misplaced"
	Incorrect LetterState = "incorrect"
)

// Solved reports whether every state is Correct. An empty result is not solved.
func Solved(states []LetterState) bool {
	if len(states) == 0 {
		return false
	}
	for _, s := range states {
		if s != Correct {
			return false
		}
	}
	return true
}

// Pattern renders states as one char per letter: G correct, Y misplaced, . incorrect.
func Pattern(states []LetterState) string {
	var b strings.Builder
	b.Grow(len(states))
	for _, s := range states {
		switch s {
		case Correct:
			b.WriteByte('G')
		case Misplaced:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
