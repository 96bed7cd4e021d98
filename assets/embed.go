// Package assets holds files compiled into the binary.
package assets

import (
	"embed"
	"io"
)

// answers.txt is the fallback answer pool used when WORDS_ANSWERS_FILE is unset.
//
//go:embed answers.txt
var FS embed.FS

// Answers opens the embedded answer list. The caller closes it.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}
