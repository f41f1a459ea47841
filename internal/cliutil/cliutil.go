// Package cliutil contains small helpers shared by the commands.
package cliutil

import (
	"os"

	"golang.org/x/term"
)

// IsTty reports whether f is attached to a terminal
func IsTty(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
