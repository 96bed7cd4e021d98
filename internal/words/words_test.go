package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 50)
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, strings.ToLower(l.At(i)), l.At(i))
	}
}

func TestParse_Normalizes(t *testing.T) {
	src := strings.Join([]string{
		"# comment",
		"  Tabouret ",
		"",
		"tabouret",
		"café",
		"two words",
		"abc1",
		"Été",
	}, "\n")

	l, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "tabouret", l.At(0))
	assert.Equal(t, "café", l.At(1))
	assert.Equal(t, "été", l.At(2))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, os.WriteFile(path, []byte("tabouret\ntableaux\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing\n\n123\n"))
	assert.ErrorIs(t, err, ErrEmptyList)
}
