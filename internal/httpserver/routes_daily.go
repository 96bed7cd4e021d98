// apps/go-scorer/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes four endpoints under /daily:
//   - GET  /daily             → today's date key, answer length and guess limit
//   - POST /daily/guess       → score one guess against today's answer
//   - POST /daily/submit      → verify a finished (won or lost) game by replaying its guesses
//   - GET  /daily/leaderboard → top 20 results for today (or a given date)
//
// Each player (user or anonymous cookie) gets one stored result per day,
// enforced by UNIQUE(user_id, date). No in-progress state is kept.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/daily"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/wordle"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/guess", s.handleDailyGuess)
		r.Post("/submit", s.handleDailySubmit)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// today returns the current puzzle.
func (s *Server) today() daily.Puzzle {
	return s.picker.For(s.now())
}

// -----------------------------------------------------------------------------
// /daily

type dailyInfoRes struct {
	Date       string `json:"date"`
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	p := s.today()
	writeJSON(w, http.StatusOK, dailyInfoRes{Date: p.Date, Length: p.Length(), MaxGuesses: s.cfg.MaxGuesses})
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	Guess string `json:"guess" validate:"required"`
}

type dailyGuessRes struct {
	Date string `json:"date"`
	scoreRes
}

// handleDailyGuess scores one guess against today's answer. The answer itself is never returned.
func (s *Server) handleDailyGuess(w http.ResponseWriter, r *http.Request) {
	var req dailyGuessReq
	if !s.decode(w, r, &req) {
		return
	}
	p := s.today()
	states, err := wordle.Check(normalizeWord(req.Guess), p.Answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, checkErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, dailyGuessRes{Date: p.Date, scoreRes: newScoreRes(states)})
}

// -----------------------------------------------------------------------------
// /daily/submit

type submitReq struct {
	Guesses   []string `json:"guesses" validate:"required,min=1,dive,required"`
	ElapsedMs int      `json:"elapsedMs" validate:"gte=0"`
}

type submitRes struct {
	Date      string   `json:"date"`
	Guesses   int      `json:"guesses"`
	ElapsedMs int      `json:"elapsedMs"`
	Patterns  []string `json:"patterns"`
	Solved    bool     `json:"solved"`
}

// handleDailySubmit verifies and stores a finished daily game.
//   - 409 if the player already has a result for today.
//   - 400 if a guess is empty or has the wrong length.
//   - 422 if the game is unfinished, too long, or continues after the solve.
//   - A game that used every guess without solving is stored as lost (solved=false).
//   - Authenticated players also get their stats bumped, in the same transaction.
func (s *Server) handleDailySubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if !s.decode(w, r, &req) {
		return
	}
	ctx := r.Context()
	uid, me := s.playerID(w, r)
	p := s.today()

	played, err := s.results.AlreadyPlayed(ctx, uid, p.Date)
	if err != nil {
		log.Error().Err(err).Msg("check daily result")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if played {
		writeError(w, http.StatusConflict, "already_played")
		return
	}

	guesses := make([]string, len(req.Guesses))
	for i, g := range req.Guesses {
		guesses[i] = normalizeWord(g)
	}
	play, err := daily.Verify(p, guesses, s.cfg.MaxGuesses)
	if err != nil {
		switch {
		case errors.Is(err, daily.ErrNotSolved):
			writeError(w, http.StatusUnprocessableEntity, "not_solved")
		case errors.Is(err, daily.ErrTooManyGuesses):
			writeError(w, http.StatusUnprocessableEntity, "too_many_guesses")
		case errors.Is(err, daily.ErrGuessAfterSolve):
			writeError(w, http.StatusUnprocessableEntity, "guess_after_solve")
		default:
			writeError(w, http.StatusBadRequest, checkErrorCode(err))
		}
		return
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	defer func() { _ = tx.Rollback() }()

	inserted, err := s.results.WithTx(tx).InsertResult(ctx, daily.Result{
		UserID:    uid,
		Date:      p.Date,
		WordIndex: p.WordIndex,
		Guesses:   play.Guesses,
		ElapsedMs: req.ElapsedMs,
		Patterns:  play.Patterns,
		Solved:    play.Solved,
	})
	if err != nil {
		log.Error().Err(err).Str("player", uid).Msg("insert daily result")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !inserted {
		writeError(w, http.StatusConflict, "already_played")
		return
	}
	if me != nil {
		if err := s.users.WithTx(tx).RecordDaily(ctx, me.ID, play.Solved); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("commit daily result")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	log.Info().Str("date", p.Date).Str("player", uid).Int("guesses", play.Guesses).Bool("solved", play.Solved).Msg("daily finished")
	writeJSON(w, http.StatusOK, submitRes{Date: p.Date, Guesses: play.Guesses, ElapsedMs: req.ElapsedMs, Patterns: play.Patterns, Solved: play.Solved})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.today().Date
	} else if _, err := daily.ParseDateKey(date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := s.results.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
