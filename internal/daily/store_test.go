package daily

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenMigrated(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestStore_InsertOncePerDay(t *testing.T) {
	ctx := context.Background()
	st := NewStore(openTestDB(t))

	played, err := st.AlreadyPlayed(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.False(t, played)

	ok, err := st.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-01", Guesses: 3, ElapsedMs: 900, Patterns: []string{"G....", "GGGGG"}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-01", Guesses: 1, ElapsedMs: 10})
	require.NoError(t, err)
	assert.False(t, ok, "second result for the same day is ignored")

	played, err = st.AlreadyPlayed(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, played)

	ok, err = st.InsertResult(ctx, Result{UserID: "u2", Date: "2024-03-01", Guesses: 6, ElapsedMs: 40})
	require.NoError(t, err)
	assert.True(t, ok)
	played, err = st.AlreadyPlayed(ctx, "u2", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, played, "a lost game also uses up the day")
}

func TestStore_LeaderboardOrder(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	st := NewStore(conn)

	_, err := conn.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u2', 'bob', 'x', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	for _, r := range []Result{
		{UserID: "u1", Date: "2024-03-01", Guesses: 4, ElapsedMs: 500, Solved: true},
		{UserID: "u2", Date: "2024-03-01", Guesses: 2, ElapsedMs: 500, Solved: true},
		{UserID: "u3", Date: "2024-03-01", Guesses: 6, ElapsedMs: 100, Solved: true},
		{UserID: "u4", Date: "2024-03-02", Guesses: 1, ElapsedMs: 1, Solved: true},
		{UserID: "u5", Date: "2024-03-01", Guesses: 6, ElapsedMs: 50},
	} {
		_, err := st.InsertResult(ctx, r)
		require.NoError(t, err)
	}

	rows, err := st.Leaderboard(ctx, "2024-03-01", 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "u3", rows[0].UserID)
	assert.Equal(t, "u2", rows[1].UserID)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, "u1", rows[2].UserID)
	assert.Empty(t, rows[2].Username)

	rows, err = st.Leaderboard(ctx, "2024-03-01", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStore_WithTxRollback(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	st := NewStore(conn)

	tx, err := conn.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = st.WithTx(tx).InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-01", Guesses: 2, ElapsedMs: 5})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	played, err := st.AlreadyPlayed(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.False(t, played)
}
