// apps/go-scorer/internal/wordle/score.go
//
// Wordle scoring with duplicate-letter disambiguation.
//
// Score is pure: it keeps no state between calls and is safe for concurrent use.
// Letters are runes, so multi-byte letters count as one position.

package wordle

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	// ErrEmptyWord is returned by Check when the guess or the answer is empty.
	ErrEmptyWord = errors.New("wordle: empty word")

	// ErrLengthMismatch is returned by Check when guess and answer differ in length.
	ErrLengthMismatch = errors.New("wordle: guess and answer lengths differ")
)

// Check validates that guess and answer are non-empty and of equal length
// (counted in letters), then scores the guess.
func Check(guess, answer string) ([]LetterState, error) {
	gl, al := utf8.RuneCountInString(guess), utf8.RuneCountInString(answer)
	if gl == 0 || al == 0 {
		return nil, ErrEmptyWord
	}
	if gl != al {
		return nil, fmt.Errorf("%w: guess has %d letters, answer has %d", ErrLengthMismatch, gl, al)
	}
	return Score(guess, answer), nil
}

// Score classifies every letter of guess against answer.
//
// Pass 1:
//   - Exact matches are Correct and consume that letter from both words.
//   - Letters that never occur in the answer are Incorrect.
//
// Pass 2:
//   - Remaining guess letters, by letter then by position, are Misplaced while
//     the answer still has an unconsumed occurrence of the letter; each one
//     consumes an occurrence. Once supply runs out the rest are Incorrect.
//
// Score does not validate its input. Callers should use Check unless the
// lengths are already known to match.
func Score(guess, answer string) []LetterState {
	g, a := []rune(guess), []rune(answer)
	res := make([]LetterState, len(g))

	guessIdx := indexLetters(g)
	answerIdx := indexLetters(a)
	inAnswer := make(map[rune]bool, len(answerIdx))
	for r := range answerIdx {
		inAnswer[r] = true
	}

	for i, r := range g {
		switch {
		case i < len(a) && r == a[i]:
			res[i] = Correct
			guessIdx.remove(r, i)
			answerIdx.remove(r, i)
		case !inAnswer[r]:
			res[i] = Incorrect
			guessIdx.remove(r, i)
		}
	}

	letters := make([]rune, 0, len(guessIdx))
	for r := range guessIdx {
		letters = append(letters, r)
	}
	slices.Sort(letters)

	for _, r := range letters {
		for _, i := range guessIdx[r] {
			if _, ok := answerIdx[r]; ok {
				res[i] = Misplaced
				answerIdx.remove(r, -1)
			} else {
				res[i] = Incorrect
			}
		}
	}
	return res
}

// letterIndex maps a letter to the ascending positions where it still occurs.
// A letter with no positions left is deleted.
type letterIndex map[rune][]int

func indexLetters(word []rune) letterIndex {
	idx := make(letterIndex, len(word))
	for i, r := range word {
		idx[r] = append(idx[r], i)
	}
	return idx
}

// remove drops position pos of letter r. A negative pos drops the leftmost one.
func (idx letterIndex) remove(r rune, pos int) {
	positions, ok := idx[r]
	if !ok {
		return
	}
	if pos < 0 {
		positions = positions[1:]
	} else {
		for k, p := range positions {
			if p == pos {
				positions = append(positions[:k:k], positions[k+1:]...)
				break
			}
		}
	}
	if len(positions) == 0 {
		delete(idx, r)
		return
	}
	idx[r] = positions
}
