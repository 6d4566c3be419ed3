package cli

import (
	"fmt"
	"io"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Errorf prints an error line for the user.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Error: "+format+"\n", args...)
}

// Warnf prints a warning line for the user.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
