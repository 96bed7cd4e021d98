package main

import (
	"os"

	"github.com/robalobadob/wordle/apps/go-scorer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
