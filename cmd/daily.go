package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/daily"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/words"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily puzzle for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		reveal, _ := cmd.Flags().GetBool("reveal")

		day := time.Now()
		if date != "" {
			var err error
			if day, err = daily.ParseDateKey(date); err != nil {
				return err
			}
		}
		answers, err := words.Load(cfg.AnswersFile)
		if err != nil {
			return err
		}
		printPuzzle(cmd.OutOrStdout(), daily.Picker{Words: answers, Salt: cfg.DailySalt}.For(day), reveal)
		return nil
	},
}

func init() {
	dailyCmd.Flags().String("date", "", "Date as YYYY-MM-DD (default today, UTC)")
	dailyCmd.Flags().Bool("reveal", false, "Also print the answer")
}

func printPuzzle(out io.Writer, p daily.Puzzle, reveal bool) {
	fmt.Fprintf(out, "date:    %s\nletters: %d\n", p.Date, p.Length())
	if reveal {
		fmt.Fprintf(out, "answer:  %s\n", p.Answer)
	}
}
