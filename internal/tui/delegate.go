package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/runoshun/issue-browser/internal/domain"
)

type issueItem struct {
	issue domain.Issue
}

func (i issueItem) FilterValue() string {
	return i.issue.Title
}

type recentItem struct {
	repo domain.RepoIdentifier
}

func (r recentItem) FilterValue() string {
	return r.repo.String()
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// link wraps text in an OSC 8 hyperlink when enabled.
func link(enabled bool, url, text string) string {
	if !enabled || url == "" {
		return text
	}
	return termenv.Hyperlink(url, text)
}

// issueDelegate renders one issue as two lines:
//
//	> #123   ○ Title of the issue
//	          ◉ @author  bug  help wanted
type issueDelegate struct {
	styles     Styles
	hyperlinks bool
}

func newIssueDelegate(styles Styles, hyperlinks bool) issueDelegate {
	return issueDelegate{styles: styles, hyperlinks: hyperlinks}
}

func (d issueDelegate) Height() int {
	return 2
}

func (d issueDelegate) Spacing() int {
	return 1
}

func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ii, ok := item.(issueItem)
	if !ok {
		return
	}
	issue := ii.issue
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = d.styles.CursorSelected.Render(">")
	}

	number := fmt.Sprintf("#%-5d", issue.Number)
	prefix := indicator + " " + d.styles.IssueNumber.Render(number) + " " +
		d.styles.StateStyle(issue).Render(StateIcon(issue)) + " "

	// 2 (indicator) + 7 (number) + 2 (state icon)
	title := truncate(escapeNewlines(issue.Title), m.Width()-11)
	titleStyle := d.styles.IssueTitle
	if selected {
		titleStyle = d.styles.IssueTitleSelected
	}
	_, _ = fmt.Fprintln(w, prefix+link(d.hyperlinks, issue.HTMLURL, titleStyle.Render(title)))

	meta := strings.Repeat(" ", 10) + d.avatar(issue.User) + " " +
		d.styles.IssueAuthor.Render("@"+issue.User.Login)
	if badges := d.labels(issue.Labels); badges != "" {
		meta += "  " + badges
	}
	_, _ = fmt.Fprint(w, meta)
}

func (d issueDelegate) avatar(user domain.User) string {
	return link(d.hyperlinks, user.AvatarURL, d.styles.IssueAuthor.Render("◉"))
}

// labels renders the badges in API order.
func (d issueDelegate) labels(labels []domain.Label) string {
	if len(labels) == 0 {
		return ""
	}
	badges := make([]string, 0, len(labels))
	for _, l := range labels {
		badges = append(badges, d.styles.LabelStyle(l).Render(escapeNewlines(l.Name)))
	}
	return strings.Join(badges, " ")
}

// recentDelegate renders one recently browsed repository per line.
type recentDelegate struct {
	styles Styles
}

func (d recentDelegate) Height() int {
	return 1
}

func (d recentDelegate) Spacing() int {
	return 0
}

func (d recentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d recentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recentItem)
	if !ok {
		return
	}
	name := truncate(ri.repo.String(), m.Width()-2)
	if index == m.Index() {
		_, _ = fmt.Fprint(w, d.styles.CursorSelected.Render("> ")+d.styles.RecentSelected.Render(name))
		return
	}
	_, _ = fmt.Fprint(w, "  "+d.styles.RecentItem.Render(name))
}

// issueListHeight fits one full page of issues.
const issueListHeight = domain.PerPage * 3

// newIssueList creates the issue list. Paging and ordering belong to the
// API, so the list's own filtering and pagination are turned off.
func newIssueList(styles Styles) list.Model {
	l := list.New([]list.Item{}, newIssueDelegate(styles, true), defaultContentWidth, issueListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newRecentList(styles Styles) list.Model {
	l := list.New([]list.Item{}, recentDelegate{styles: styles}, defaultContentWidth, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.InfiniteScrolling = true
	return l
}

func issueItems(issues []domain.Issue) []list.Item {
	items := make([]list.Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, issueItem{issue: issue})
	}
	return items
}

func recentItems(repos []domain.RepoIdentifier) []list.Item {
	items := make([]list.Item, 0, len(repos))
	for _, repo := range repos {
		items = append(items, recentItem{repo: repo})
	}
	return items
}
