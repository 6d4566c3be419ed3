package common

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard backend exists.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard writes text to the system clipboard with a macOS pbcopy fallback.
func CopyToClipboard(text string) error {
	// pbcopy works in more macOS environments than the library backend.
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboardWrite(text)
}
