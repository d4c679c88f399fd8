package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the issue browser.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	// Filter
	FilterNext   key.Binding
	FilterPrev   key.Binding
	FilterOpen   key.Binding
	FilterClosed key.Binding
	FilterAll    key.Binding

	// Actions
	Open    key.Binding // Open issue in browser
	Refresh key.Binding // Refetch current page
	Back    key.Binding // Go back to repositories

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		FilterNext: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "next filter"),
		),
		FilterPrev: key.NewBinding(
			key.WithKeys("F", "shift+tab"),
			key.WithHelp("F", "prev filter"),
		),
		FilterOpen: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "open"),
		),
		FilterClosed: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "closed"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "all"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open in browser"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "repositories"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.FilterNext, k.Open, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.FilterNext, k.FilterPrev, k.FilterOpen, k.FilterClosed, k.FilterAll},
		{k.Open, k.Refresh, k.Back, k.Help, k.Quit},
	}
}

// PromptKeyMap defines the keybindings of the repository prompt.
type PromptKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultPromptKeyMap returns the default prompt keybindings.
// Letters are left to the text input.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "prev recent"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next recent"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "browse"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Cancel, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
