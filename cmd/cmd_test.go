package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/daily"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/wordle"
)

func TestRunScore(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScore(&out, "TABEXXUX", " tabouret", false))
	assert.Equal(t, "t correct\na correct\nb correct\ne misplaced\nx incorrect\nx incorrect\nu misplaced\nx incorrect\nGGGY..Y.\n", out.String())

	out.Reset()
	require.NoError(t, runScore(&out, "taboules", "tabouret", true))
	assert.JSONEq(t, `["correct","correct","correct","correct","correct","incorrect","correct","incorrect"]`, out.String())

	err := runScore(&out, "tab", "tabouret", false)
	assert.ErrorIs(t, err, wordle.ErrLengthMismatch)
}

func TestScoreCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"score", "abouleuh", "tabouret"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "YYYY.Y..")
}

func TestPrintPuzzle(t *testing.T) {
	var out bytes.Buffer
	p := daily.Puzzle{Date: "2024-03-01", Answer: "tabouret"}

	printPuzzle(&out, p, false)
	assert.Equal(t, "date:    2024-03-01\nletters: 8\n", out.String())

	out.Reset()
	printPuzzle(&out, p, true)
	assert.Contains(t, out.String(), "answer:  tabouret")
}
