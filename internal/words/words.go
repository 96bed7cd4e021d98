// apps/go-scorer/internal/words/words.go
//
// Answer pool for the daily puzzle.
//
// Word lists:
//   - WORDS_ANSWERS_FILE=/path/to/answers.txt overrides the embedded default.
//   - One word per line; blank lines and lines starting with '#' are ignored.
//   - Words are trimmed and lowercased; lines that are not all letters are skipped.
//   - Duplicates keep their first occurrence, so indices stay stable.
//
// Guesses are never checked against this list.

package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/robalobadob/wordle/apps/go-scorer/assets"
)

// ErrEmptyList is returned when a source yields no usable word.
var ErrEmptyList = errors.New("words: answers list is empty")

// List is an ordered, de-duplicated set of answers. It is read-only after Load.
type List struct {
	words []string
}

// Load reads answers from path, or from the embedded default when path is empty.
func Load(path string) (*List, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if path == "" {
		f, err = assets.Answers()
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds a List from one-word-per-line text.
func Parse(r io.Reader) (*List, error) {
	l := &List{}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Len returns the number of answers.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th answer.
func (l *List) At(i int) string { return l.words[i] }

// isLetters reports whether s consists only of letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
