package daily

import (
	"context"
	"strings"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/db"
)

// Result is one verified daily game.
type Result struct {
	UserID    string   `json:"userId"`
	Date      string   `json:"date"`
	WordIndex int      `json:"wordIndex"`
	Guesses   int      `json:"guesses"`
	ElapsedMs int      `json:"elapsedMs"`
	Patterns  []string `json:"patterns,omitempty"`
	Solved    bool     `json:"solved"`
}

// Store persists daily results. UNIQUE(user_id, date) allows one result per player and day.
type Store struct{ db db.DBTX }

func NewStore(conn db.DBTX) *Store { return &Store{db: conn} }

// WithTx returns a Store bound to tx.
func (s *Store) WithTx(tx db.DBTX) *Store { return &Store{db: tx} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r unless the player already has a result for that date.
// Lost games are stored too, so the day counts as played. It reports whether a
// row was written.
func (s *Store) InsertResult(ctx context.Context, r Result) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, word_index, guesses, elapsed_ms, patterns, solved)
		 VALUES(?,?,?,?,?,?,?)`,
		r.UserID, r.Date, r.WordIndex, r.Guesses, r.ElapsedMs, strings.Join(r.Patterns, "\n"), r.Solved,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LBRow is one leaderboard line. Username is empty for anonymous players.
type LBRow struct {
	UserID    string `json:"userId"`
	Username  string `json:"username,omitempty"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the fastest solved results for date: elapsed time, then
// guesses, then submission order. A non-positive limit means 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.user_id, COALESCE(u.username, ''), d.guesses, d.elapsed_ms
		 FROM daily_results d
		 LEFT JOIN users u ON u.id = d.user_id
		 WHERE d.date=? AND d.solved=1
		 ORDER BY d.elapsed_ms ASC, d.guesses ASC, d.created_at ASC, d.rowid ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Username, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
