// apps/go-scorer/internal/daily/daily.go
//
// Daily puzzle selection and verification.
//
// The answer for a date is HMAC(salt, YYYY-MM-DD) over the answer pool, so every
// instance with the same salt and list agrees without coordination. The server
// keeps no game state: a finished game is verified by replaying the client's
// guesses through the scorer.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/wordle"
)

var (
	ErrNotSolved       = errors.New("daily: puzzle not solved")
	ErrTooManyGuesses  = errors.New("daily: too many guesses")
	ErrGuessAfterSolve = errors.New("daily: guesses continue after the solving guess")
	ErrBadDate         = errors.New("daily: invalid date")
)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight UTC.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Answers is the pool a Picker draws from.
type Answers interface {
	Len() int
	At(i int) string
}

// Puzzle is the daily word for one date.
type Puzzle struct {
	Date      string
	WordIndex int
	Answer    string
}

// Length is the answer length in letters.
func (p Puzzle) Length() int { return len([]rune(p.Answer)) }

// Picker chooses the daily answer.
type Picker struct {
	Words Answers
	Salt  string
}

// For returns the puzzle of t's UTC date.
func (pk Picker) For(t time.Time) Puzzle {
	idx := WordIndex(t, pk.Salt, pk.Words.Len())
	return Puzzle{Date: DateKey(t), WordIndex: idx, Answer: pk.Words.At(idx)}
}

// Play is a verified daily game. Solved is false for a game that used every
// allowed guess without finding the answer.
type Play struct {
	Guesses  int
	Patterns []string // one wordle.Pattern per guess
	Solved   bool
}

// Verify replays guesses against the puzzle. The last guess must be the first
// solving one, and at most maxGuesses guesses are allowed (0 means no limit).
// Exactly maxGuesses guesses without a solve is a lost game, not an error;
// fewer is an unfinished game and returns ErrNotSolved.
func Verify(p Puzzle, guesses []string, maxGuesses int) (Play, error) {
	if maxGuesses > 0 && len(guesses) > maxGuesses {
		return Play{}, fmt.Errorf("%w: %d > %d", ErrTooManyGuesses, len(guesses), maxGuesses)
	}
	patterns := make([]string, 0, len(guesses))
	for i, g := range guesses {
		states, err := wordle.Check(g, p.Answer)
		if err != nil {
			return Play{}, fmt.Errorf("guess %d: %w", i+1, err)
		}
		patterns = append(patterns, wordle.Pattern(states))
		if wordle.Solved(states) {
			if i != len(guesses)-1 {
				return Play{}, ErrGuessAfterSolve
			}
			return Play{Guesses: i + 1, Patterns: patterns, Solved: true}, nil
		}
	}
	if maxGuesses > 0 && len(guesses) == maxGuesses {
		return Play{Guesses: len(guesses), Patterns: patterns}, nil
	}
	return Play{}, ErrNotSolved
}
