package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issue-browser/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case ModePrompt:
		content = m.viewPrompt()
	case ModeBrowse:
		if m.loading {
			content = m.viewLoading()
		} else {
			content = m.viewBrowser()
		}
	}
	return m.styles.App.Render(content)
}

// defaultContentWidth is used until the terminal reports a usable size.
const defaultContentWidth = 80

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = defaultContentWidth
	}
	return w
}

// viewLoading renders the placeholder shown until the first page arrives.
// No repository or issue data is rendered here.
func (m *Model) viewLoading() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.styles.Loading.Render("Loading " + m.repo.String() + "..."))
	b.WriteString("\n")
	b.WriteString(m.viewError())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewBrowser renders the loaded repository and its current page.
func (m *Model) viewBrowser() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilterSelector())
	b.WriteString("\n")
	b.WriteString(m.viewIssueList())
	b.WriteString(m.viewPagination())
	b.WriteString("\n")
	b.WriteString(m.viewError())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// viewHeader renders owner, repository name, description and the back hint.
func (m *Model) viewHeader() string {
	repo := m.repository
	if repo == nil {
		return m.styles.Header.Render(m.styles.HeaderText.Render(m.repo.String()))
	}

	owner := link(m.hyperlinks, repo.Owner.AvatarURL, m.styles.HeaderOwner.Render("◉")) + " " +
		m.styles.HeaderOwner.Render("@"+repo.Owner.Login)
	name := repo.Name
	if name == "" {
		name = m.repo.Name
	}
	title := owner + " / " + link(m.hyperlinks, repo.HTMLURL, m.styles.HeaderText.Render(name))

	back := m.styles.BackHint.Render("← " + m.keys.Back.Help().Key + " repositories")
	spacing := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(back)
	if spacing < 2 {
		spacing = 2
	}

	lines := []string{title + strings.Repeat(" ", spacing) + back}
	if repo.Description != "" {
		lines = append(lines, m.styles.HeaderDesc.Render(truncate(escapeNewlines(repo.Description), m.contentWidth())))
	}
	return m.styles.Header.Render(strings.Join(lines, "\n"))
}

// viewFilterSelector renders all filter options with the current one highlighted.
func (m *Model) viewFilterSelector() string {
	options := make([]string, 0, 3)
	for _, opt := range domain.FilterOptions() {
		style := m.styles.FilterOption
		if opt == m.filter {
			style = m.styles.FilterSelected
		}
		options = append(options, style.Render(opt.Display()))
	}
	return m.styles.InputPrompt.Render("Filter ") + strings.Join(options, " ")
}

// viewIssueList renders the current page of issues in API order.
func (m *Model) viewIssueList() string {
	if len(m.issues) == 0 {
		return m.styles.IssueList.Render(m.styles.EmptyState.Render("  No issues on this page"))
	}

	return m.styles.IssueList.Render(m.issueList.View())
}

// viewPagination renders "< Previous  Page N  Next >".
// Previous is disabled at page 1; Next is disabled after an empty page.
func (m *Model) viewPagination() string {
	prev := m.styles.PageEnabled
	if !m.page.HasPrev() {
		prev = m.styles.PageDisabled
	}
	next := m.styles.PageEnabled
	if m.nextDisabled {
		next = m.styles.PageDisabled
	}
	current := m.styles.PageCurrent.Render(fmt.Sprintf("Page %d", m.page.Int()))
	return prev.Render("< Previous") + "  " + current + "  " + next.Render("Next >")
}

// viewError renders the status line for the last failure, if any.
func (m *Model) viewError() string {
	if m.err == nil {
		return ""
	}
	return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
}

// viewPrompt renders the repository prompt with the recent repositories.
func (m *Model) viewPrompt() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(m.styles.HeaderText.Render("Browse issues")))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.repoInput.View()))
	b.WriteString("\n")

	if len(m.recentList.Items()) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("Recent repositories"))
		b.WriteString("\n")
		b.WriteString(m.recentList.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.viewError())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.promptKeys))
	return b.String()
}
