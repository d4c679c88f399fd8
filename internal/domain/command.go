package domain

import (
	"runtime"
	"strings"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// DefaultBrowserCommand returns the platform's URL opener.
func DefaultBrowserCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// OpenURLCommand builds the command that opens url with the configured opener.
// The opener may carry its own arguments (e.g. "firefox --new-tab").
// Returns nil if browserCmd is blank.
func OpenURLCommand(browserCmd, url string) *ExecCommand {
	fields := strings.Fields(browserCmd)
	if len(fields) == 0 {
		return nil
	}
	args := make([]string, 0, len(fields))
	args = append(args, fields[1:]...)
	args = append(args, url)
	return &ExecCommand{Program: fields[0], Args: args}
}
