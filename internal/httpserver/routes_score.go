package httpserver

import (
	"errors"
	"net/http"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/wordle"
)

// scoreReq is the request payload for POST /score.
type scoreReq struct {
	Guess  string `json:"guess" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

// scoreRes carries the per-letter verdicts of one guess.
type scoreRes struct {
	States  []wordle.LetterState `json:"states"`
	Pattern string               `json:"pattern"` // G correct, Y misplaced, . incorrect
	Solved  bool                 `json:"solved"`
}

func newScoreRes(states []wordle.LetterState) scoreRes {
	return scoreRes{States: states, Pattern: wordle.Pattern(states), Solved: wordle.Solved(states)}
}

// handleScore scores an arbitrary guess against a caller-supplied answer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if !s.decode(w, r, &req) {
		return
	}
	states, err := wordle.Check(normalizeWord(req.Guess), normalizeWord(req.Answer))
	if err != nil {
		writeError(w, http.StatusBadRequest, checkErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, newScoreRes(states))
}

// checkErrorCode maps wordle.Check failures to API error codes.
func checkErrorCode(err error) string {
	switch {
	case errors.Is(err, wordle.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, wordle.ErrEmptyWord):
		return "empty_word"
	default:
		return "invalid_guess"
	}
}
