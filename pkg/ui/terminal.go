package ui

import (
	"os"

	"golang.org/x/term"
)

// ANSI styles used for progress output. Empty when stdout is not a terminal.
var (
	Green  = colorIfTerminal("\x1b[32m")
	Yellow = colorIfTerminal("\x1b[33m")
	Red    = colorIfTerminal("\x1b[31m")
	Reset  = colorIfTerminal("\x1b[0m")
)

func colorIfTerminal(code string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return code
	}
	return ""
}

// Successf prints a green-highlighted progress line.
func Successf(format string, args ...any) {
	Out().Printf(Green+format+Reset+"\n", args...)
}

// Warnf prints a yellow-highlighted warning line.
func Warnf(format string, args ...any) {
	Out().Printf(Yellow+format+Reset+"\n", args...)
}

// Errorf prints a red-highlighted error line.
func Errorf(format string, args ...any) {
	Out().Printf(Red+format+Reset+"\n", args...)
}
