package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issue-browser/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Issue state colors
	Open   lipgloss.Color
	Closed lipgloss.Color

	// Label text on light and dark badges
	LabelDark  lipgloss.Color
	LabelLight lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Open:   lipgloss.Color("#00B894"), // Green
	Closed: lipgloss.Color("#A29BFE"), // Lavender

	LabelDark:  lipgloss.Color("#2D3436"),
	LabelLight: lipgloss.Color("#FFFFFF"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderText  lipgloss.Style
	HeaderOwner lipgloss.Style
	HeaderDesc  lipgloss.Style
	BackHint    lipgloss.Style

	// Filter selector
	FilterOption   lipgloss.Style
	FilterSelected lipgloss.Style

	// Issue list
	IssueList          lipgloss.Style
	IssueNumber        lipgloss.Style
	IssueTitle         lipgloss.Style
	IssueTitleSelected lipgloss.Style
	IssueAuthor        lipgloss.Style
	IssueOpen          lipgloss.Style
	IssueClosed        lipgloss.Style
	CursorSelected     lipgloss.Style
	Label              lipgloss.Style
	EmptyState         lipgloss.Style

	// Pagination
	PageEnabled  lipgloss.Style
	PageDisabled lipgloss.Style
	PageCurrent  lipgloss.Style

	// Loading placeholder
	Spinner lipgloss.Style
	Loading lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Recent repositories
	RecentItem     lipgloss.Style
	RecentSelected lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderOwner: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		HeaderDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		BackHint: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterOption: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		FilterSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Background(Colors.Primary).
			Padding(0, 1),

		IssueList: lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1),

		IssueNumber: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		IssueTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		IssueTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		IssueAuthor: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		IssueOpen: lipgloss.NewStyle().
			Foreground(Colors.Open),

		IssueClosed: lipgloss.NewStyle().
			Foreground(Colors.Closed),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Label: lipgloss.NewStyle().
			Padding(0, 1),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		PageEnabled: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		PageDisabled: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Faint(true),

		PageCurrent: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Spinner: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		Loading: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		RecentItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		RecentSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StateStyle returns the style for an issue state marker.
func (s Styles) StateStyle(issue domain.Issue) lipgloss.Style {
	if issue.IsOpen() {
		return s.IssueOpen
	}
	return s.IssueClosed
}

// StateIcon returns an icon for an issue state.
func StateIcon(issue domain.Issue) string {
	if issue.IsOpen() {
		return "○"
	}
	return "✓"
}

// LabelStyle returns the badge style for a label.
// The background is the label's own hex color; text is dark or light
// depending on its luminance. Invalid colors fall back to the muted color.
func (s Styles) LabelStyle(label domain.Label) lipgloss.Style {
	hex, ok := normalizeHex(label.Color)
	if !ok {
		return s.Label.Foreground(Colors.LabelLight).Background(Colors.Muted)
	}
	fg := Colors.LabelLight
	if isLight(hex) {
		fg = Colors.LabelDark
	}
	return s.Label.Foreground(fg).Background(lipgloss.Color("#" + hex))
}

func normalizeHex(color string) (string, bool) {
	hex := strings.TrimPrefix(strings.ToLower(color), "#")
	if len(hex) != 6 {
		return "", false
	}
	for _, c := range hex {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", false
		}
	}
	return hex, true
}

// isLight uses the perceived brightness formula (ITU-R BT.601).
func isLight(hex string) bool {
	r := hexByte(hex[0:2])
	g := hexByte(hex[2:4])
	b := hexByte(hex[4:6])
	return r*299+g*587+b*114 > 150*1000
}

func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
