// Package tui provides the terminal user interface for issue-browser.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeBrowse Mode = iota // Issue browser for one repository
	ModePrompt             // Repository prompt with recent repositories
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModePrompt:
		return true
	case ModeBrowse:
		return false
	}
	return false
}
