package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// launchTUI runs the issue browser until the user quits.
// A zero repo opens the repository prompt. Canceling ctx stops the program
// and every fetch in flight.
func launchTUI(ctx context.Context, c *app.Container, repo domain.RepoIdentifier) error {
	m := tui.New(ctx, c, repo)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
