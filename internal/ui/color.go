package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	Dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var (
	forceColor   bool
	disableColor bool

	// Out and Err are where OK and Fail write.
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// C wraps s in color when stdout is a terminal (or color is forced).
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY(os.Stdout) {
		return color + s + reset
	}
	return s
}

func OK(msg string)   { fmt.Fprintln(Out, C(current.Success, current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, C(current.Error, current.SymCross+" "+msg)) }

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) { fmt.Fprintln(Err, C(current.Muted, "Hint: "+msg)) }
