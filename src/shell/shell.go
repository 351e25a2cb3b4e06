package shell

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var tty bool = isatty.IsTerminal(os.Stdout.Fd())

const (
	Normal      = ""
	Reset       = "\033[m"
	Bold        = "\033[1m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Magenta     = "\033[35m"
	Cyan        = "\033[36m"
	BoldRed     = "\033[1;31m"
	FaintYellow = "\033[2;33m"
	Faint       = "\033[2m"
)

// Colorize shell output with provided colorcodes if os.Stdout is a shell
func Colorize(msg string, colorCodes ...string) string {
	if tty {
		return Wrap(msg, colorCodes...)
	}
	return msg
}

// Wrap msg in colorCodes unconditionally.
func Wrap(msg string, colorCodes ...string) string {
	if len(colorCodes) == 0 {
		return msg
	}
	return strings.Join(colorCodes, "") + msg + Reset
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
