package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/wordle"
)

var scoreCmd = &cobra.Command{
	Use:   "score GUESS ANSWER",
	Short: "Score a guess against an answer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runScore(cmd.OutOrStdout(), args[0], args[1], asJSON)
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the letter states as a JSON array")
}

func runScore(out io.Writer, guess, answer string, asJSON bool) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	answer = strings.ToLower(strings.TrimSpace(answer))

	states, err := wordle.Check(guess, answer)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(out).Encode(states)
	}
	for i, r := range []rune(guess) {
		fmt.Fprintf(out, "%c %s\n", r, states[i])
	}
	fmt.Fprintln(out, wordle.Pattern(states))
	return nil
}
