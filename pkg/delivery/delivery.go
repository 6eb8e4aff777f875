// Package delivery turns an accepted commit header into the final shell
// command and hands it to the platform clipboard. Clipboard trouble is never
// worth failing the run over; callers downgrade it to a warning.
package delivery

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/dlnilsson/gitmsg/pkg/text"
)

// FormatSuggestedCommand wraps the message as a double-quoted git commit
// command with shell-special characters escaped.
func FormatSuggestedCommand(message string) string {
	return `git commit -m "` + text.EscapeForDoubleQuotes(message) + `"`
}

// CopyToClipboard writes the command to the system clipboard: pbcopy on
// macOS, clip on Windows, wl-copy falling back to xclip on Linux. Anything
// else is an unsupported platform.
func CopyToClipboard(command string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipeTo(command, "pbcopy")
	case "windows":
		return pipeTo(command, "clip")
	case "linux":
		if err := pipeTo(command, "wl-copy"); err == nil {
			return nil
		}
		return pipeTo(command, "xclip", "-selection", "clipboard")
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}

func pipeTo(input, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
