package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
