package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/issue-browser/internal/domain"
)

// errorDisplayDuration is how long a MsgError stays on the status line.
const errorDisplayDuration = 5 * time.Second

func clearErrorAfter(err error, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{Err: err}
	})
}

// Update handles messages and updates the model.
// After every message the fetch effect is re-evaluated, so any change of
// repository, filter or page issues exactly one new fetch.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.syncFetch())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-4, 0) // inside the app padding
		m.repoInput.Width = max(msg.Width-12, 20)
		m.issueList.SetWidth(m.contentWidth())
		m.recentList.SetWidth(m.contentWidth())
		return nil

	case spinner.TickMsg:
		if !m.loading || m.mode != ModeBrowse {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case MsgPageLoaded:
		return m.applyPage(msg)

	case MsgFetchFailed:
		m.applyFailure(msg)
		return nil

	case MsgRecentLoaded:
		cmd := m.recentList.SetItems(recentItems(msg.Repos))
		m.recentList.SetHeight(max(len(msg.Repos), 1))
		return cmd

	case MsgError:
		m.err = msg.Err
		return clearErrorAfter(msg.Err, errorDisplayDuration)

	case MsgClearError:
		if m.err == msg.Err {
			m.err = nil
		}
		return nil
	}

	// Forward everything else (cursor blink) to the input while prompting.
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.repoInput, cmd = m.repoInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModePrompt:
		return m.handlePromptMode(msg)
	case ModeBrowse:
		return m.handleBrowseMode(msg)
	}
	return nil
}

func (m *Model) handleBrowseMode(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelFetch()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.Back):
		m.enterPrompt()
		return tea.Batch(m.loadRecent(), m.repoInput.Focus())

	case key.Matches(msg, m.keys.FilterNext):
		m.setFilter(m.filter.Next())
		return nil

	case key.Matches(msg, m.keys.FilterPrev):
		m.setFilter(m.filter.Prev())
		return nil

	case key.Matches(msg, m.keys.FilterOpen):
		m.setFilter(domain.FilterOpen)
		return nil

	case key.Matches(msg, m.keys.FilterClosed):
		m.setFilter(domain.FilterClosed)
		return nil

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(domain.FilterAll)
		return nil

	case key.Matches(msg, m.keys.PrevPage):
		m.paginate(false)
		return nil

	case key.Matches(msg, m.keys.NextPage):
		m.paginate(true)
		return nil

	case key.Matches(msg, m.keys.Refresh):
		return m.issueFetch(m.currentKey())
	}

	// Issue navigation needs a loaded page.
	if m.loading {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.issueList.CursorUp()
		return nil

	case key.Matches(msg, m.keys.Down):
		m.issueList.CursorDown()
		return nil

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}

	return nil
}

func (m *Model) handlePromptMode(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.promptKeys.Quit):
		return tea.Quit

	case key.Matches(msg, m.promptKeys.Cancel):
		if m.repoInput.Value() != "" {
			m.repoInput.Reset()
			m.err = nil
			return nil
		}
		return tea.Quit

	case key.Matches(msg, m.promptKeys.Up):
		m.recentList.CursorUp()
		return nil

	case key.Matches(msg, m.promptKeys.Down):
		m.recentList.CursorDown()
		return nil

	case key.Matches(msg, m.promptKeys.Submit):
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.repoInput, cmd = m.repoInput.Update(msg)
	return cmd
}

// submitPrompt mounts a fresh browser for the typed repository, or for the
// selected recent one when nothing is typed.
func (m *Model) submitPrompt() tea.Cmd {
	var repo domain.RepoIdentifier
	if raw := strings.TrimSpace(m.repoInput.Value()); raw != "" {
		parsed, err := domain.ParseRepoIdentifier(raw)
		if err != nil {
			m.err = err
			return nil
		}
		repo = parsed
	} else if item, ok := m.recentList.SelectedItem().(recentItem); ok {
		repo = item.repo
	} else {
		return nil
	}

	m.mount(repo)
	return m.spinner.Tick
}
