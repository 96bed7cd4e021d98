package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/db"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP scoring service",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := words.Load(cfg.AnswersFile)
		if err != nil {
			return err
		}
		log.Info().Int("answers", answers.Len()).Str("source", sourceName(cfg.AnswersFile)).Msg("answers loaded")

		conn, err := db.OpenMigrated(cfg.DBPath)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := httpserver.New(cfg, conn, answers)
		log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting scorer")
		return srv.Start(ctx, ":"+cfg.Port)
	},
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
