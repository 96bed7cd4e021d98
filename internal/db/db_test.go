package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigrated_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.db")

	db, err := OpenMigrated(path)
	require.NoError(t, err)
	defer db.Close()

	// A second run must skip everything already recorded.
	require.NoError(t, Migrate(db))

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 3, applied)

	for _, table := range []string{"users", "daily_results"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}

	_, err = db.Exec(`INSERT INTO daily_results (user_id, date, word_index, guesses, elapsed_ms, patterns)
	                  VALUES ('u', '2024-01-01', 0, 3, 100, 'GGGGG')`)
	assert.NoError(t, err)
}

func TestMigrateFS_FailedFileIsNotRecorded(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/001_ok.sql":  {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"m/002_bad.sql": {Data: []byte(`CREATE TABLE oops (`)},
	}
	err = migrateFS(db, fsys, "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_bad.sql")

	var names []string
	rows, err := db.Query(`SELECT name FROM _migrations ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	assert.Equal(t, []string{"001_ok.sql"}, names)
}

func TestOpen_RejectsQueryInPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "app.db?mode=ro"))
	assert.ErrorIs(t, err, ErrBadPath)

	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
