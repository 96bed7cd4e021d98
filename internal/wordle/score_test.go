package wordle

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	C = Correct
	M = Misplaced
	I = Incorrect
)

func TestScore_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []LetterState
	}{
		{"correct guess", "tabouret", "tabouret", []LetterState{C, C, C, C, C, C, C, C}},
		{"correct and incorrect", "taboules", "tabouret", []LetterState{C, C, C, C, C, I, C, I}},
		{"misplaced letters", "tableaux", "tabouret", []LetterState{C, C, C, I, M, I, M, I}},
		{"exact match consumes supply", "tabexxex", "tabouret", []LetterState{C, C, C, I, I, I, C, I}},
		{"misplaced beside exact", "tabexxux", "tabouret", []LetterState{C, C, C, M, I, I, M, I}},
		{"duplicate guess letter", "abouleuh", "tabouret", []LetterState{M, M, M, M, I, M, I, I}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.guess, tc.answer))
		})
	}
}

func TestScore_ClassicDuplicates(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          string
	}{
		{"speed", "abide", "..Y.Y"},
		{"speed", "erase", "Y.YY."},
		{"eerie", "there", "Y.Y.G"},
		{"llama", "hello", "YY..."},
		{"allot", "hello", ".YGY."},
		{"robot", "floor", "YY.G."},
	}

	for _, tc := range tests {
		got := Pattern(Score(tc.guess, tc.answer))
		assert.Equal(t, tc.want, got, "Score(%q, %q)", tc.guess, tc.answer)
	}
}

func TestScore_Properties(t *testing.T) {
	words := []string{"tabouret", "taboules", "tableaux", "tabexxex", "abouleuh", "tttttttt", "aabbccdd", "retuobat"}

	for _, answer := range words {
		for _, guess := range words {
			res := Score(guess, answer)
			require.Len(t, res, len(guess))

			supply := map[rune]int{}
			for _, r := range answer {
				supply[r]++
			}
			used := map[rune]int{}
			for i, r := range guess {
				if !strings.ContainsRune(answer, r) {
					assert.Equal(t, Incorrect, res[i], "absent letter %q in %q vs %q", r, guess, answer)
				}
				if res[i] != Incorrect {
					used[r]++
				}
			}
			for r, n := range used {
				assert.LessOrEqual(t, n, supply[r], "supply of %q exceeded in %q vs %q", r, guess, answer)
			}
		}
		assert.True(t, Solved(Score(answer, answer)), "identity for %q", answer)
	}
}

func TestScore_LeftmostPriority(t *testing.T) {
	// One "e" in the answer: the first unresolved "e" takes it.
	assert.Equal(t, []LetterState{I, M, I, I, I}, Score("xexex", "eabcd"))
	assert.Equal(t, []LetterState{M, I, I, I, I}, Score("aaxyz", "bcdea"))

	// The exact match at the end wins over the earlier copies.
	assert.Equal(t, []LetterState{I, I, I, I, C}, Score("eeeee", "abcde"))
}

func TestScore_Runes(t *testing.T) {
	got := Score("été", "thé")
	assert.Equal(t, []LetterState{I, M, C}, got)
}

func TestScore_UnequalLengthsDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Len(t, Score("tabourets", "tabouret"), 9)
		assert.Len(t, Score("tab", "tabouret"), 3)
		assert.Empty(t, Score("", "tabouret"))
	})
	assert.Equal(t, []LetterState{C, C, C, I}, Score("tabz", "tab"))
}

func TestScore_Concurrent(t *testing.T) {
	want := []LetterState{M, M, M, M, I, M, I, I}
	var wg sync.WaitGroup
	for n := 0; n < 32; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Score("abouleuh", "tabouret"))
		}()
	}
	wg.Wait()
}

func TestCheck(t *testing.T) {
	res, err := Check("tableaux", "tabouret")
	require.NoError(t, err)
	assert.Equal(t, "GGG.Y.Y.", Pattern(res))

	_, err = Check("tab", "tabouret")
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	assert.Contains(t, err.Error(), "guess has 3 letters, answer has 8")

	_, err = Check("", "tabouret")
	assert.ErrorIs(t, err, ErrEmptyWord)
	_, err = Check("tabouret", "")
	assert.ErrorIs(t, err, ErrEmptyWord)

	// Length is counted in letters, not bytes.
	_, err = Check("été", "thé")
	assert.NoError(t, err)
}

func TestSolved(t *testing.T) {
	assert.True(t, Solved([]LetterState{C, C}))
	assert.False(t, Solved([]LetterState{C, M}))
	assert.False(t, Solved(nil))
}

func TestLetterIndex_Remove(t *testing.T) {
	idx := indexLetters([]rune("tabouret"))
	assert.Equal(t, []int{0, 7}, idx['t'])

	idx.remove('t', 7)
	assert.Equal(t, []int{0}, idx['t'])

	idx.remove('t', -1)
	_, ok := idx['t']
	assert.False(t, ok, "empty position list must be deleted")

	idx.remove('z', 0)
	assert.NotContains(t, idx, 'z')
}
