package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal. Color output is
// dropped when it isn't, so piping to a file or another program yields
// plain text.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
