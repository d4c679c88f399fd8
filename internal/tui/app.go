package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/usecase"
)

// fetchKey is the dependency set of the fetch effect.
// A fetch is issued whenever the current key differs from the last one fetched.
type fetchKey struct {
	Repo   domain.RepoIdentifier
	Filter domain.FilterOption
	Page   domain.Page
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container  *app.Container
	ctx        context.Context // parent of every fetch context
	err        error
	cancel     context.CancelFunc
	repository *domain.RepositoryInfo

	// State (slices - contain pointers)
	issues []domain.Issue

	// Components (structs with pointers)
	keys       KeyMap
	promptKeys PromptKeyMap
	styles     Styles
	help       help.Model
	issueList  list.Model
	recentList list.Model
	spinner    spinner.Model
	repoInput  textinput.Model

	// Fetch effect
	repo    domain.RepoIdentifier
	filter  domain.FilterOption
	lastKey fetchKey
	page    domain.Page
	seq     uint64

	// Numeric state (smaller types last)
	mode         Mode
	width        int
	height       int
	loading      bool
	fetched      bool // lastKey is valid
	nextDisabled bool
	recorded     bool // visit recorded for the current mount
	hyperlinks   bool
}

// New creates a new TUI Model with the given container.
// A zero repo starts at the repository prompt. Canceling ctx cancels any
// fetch in flight.
func New(ctx context.Context, c *app.Container, repo domain.RepoIdentifier) *Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "owner/repo"
	ti.CharLimit = 200
	ti.Prompt = "› "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles()
	m := &Model{
		container:  c,
		ctx:        ctx,
		keys:       DefaultKeyMap(),
		promptKeys: DefaultPromptKeyMap(),
		styles:     styles,
		help:       help.New(),
		issueList:  newIssueList(styles),
		recentList: newRecentList(styles),
		spinner:    sp,
		repoInput:  ti,
		hyperlinks: true,
	}
	m.spinner.Style = m.styles.Spinner

	if repo.IsZero() {
		m.enterPrompt()
	} else {
		m.mount(repo)
	}
	return m
}

// Init initializes the model and returns the initial command.
// In browse mode this runs the fetch effect for the initial key.
func (m *Model) Init() tea.Cmd {
	if m.mode == ModePrompt {
		return tea.Batch(textinput.Blink, m.loadRecent())
	}
	return tea.Batch(m.spinner.Tick, m.syncFetch())
}

// mount resets the browser to its initial state for repo.
// Loading is asserted here and nowhere else.
func (m *Model) mount(repo domain.RepoIdentifier) {
	m.cancelFetch()
	m.mode = ModeBrowse
	m.repo = repo
	m.repository = nil
	m.issues = []domain.Issue{}
	m.issueList.SetItems(nil)
	m.issueList.ResetSelected()
	m.loading = true
	m.filter = domain.FilterOpen
	m.page = domain.FirstPage
	m.nextDisabled = false
	m.recorded = false
	m.fetched = false
	m.lastKey = fetchKey{}
	m.err = nil
	m.repoInput.Blur()
}

// enterPrompt switches to the repository prompt.
func (m *Model) enterPrompt() {
	m.cancelFetch()
	m.seq++ // results still in flight are no longer the latest
	m.mode = ModePrompt
	m.recentList.ResetSelected()
	m.repoInput.Reset()
	m.repoInput.Focus()
}

// currentKey returns the key the fetch effect depends on.
func (m *Model) currentKey() fetchKey {
	return fetchKey{Repo: m.repo, Filter: m.filter, Page: m.page}
}

// syncFetch issues a fetch if the effect key changed since the last fetch.
func (m *Model) syncFetch() tea.Cmd {
	if m.mode != ModeBrowse || m.repo.IsZero() {
		return nil
	}
	key := m.currentKey()
	if m.fetched && key == m.lastKey {
		return nil
	}
	return m.issueFetch(key)
}

// issueFetch starts a fetch for key, superseding any fetch in flight.
func (m *Model) issueFetch(key fetchKey) tea.Cmd {
	m.cancelFetch()
	m.seq++
	m.lastKey = key
	m.fetched = true

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	seq := m.seq
	uc := m.container.FetchPageUseCase()

	return func() tea.Msg {
		out, err := uc.Execute(ctx, usecase.FetchPageInput{
			Repo:   key.Repo,
			Filter: key.Filter,
			Page:   key.Page,
		})
		if err != nil {
			return MsgFetchFailed{Seq: seq, Key: key, Err: err}
		}
		return MsgPageLoaded{
			Seq:        seq,
			Key:        key,
			Repository: out.Repository,
			Issues:     out.Issues,
		}
	}
}

func (m *Model) cancelFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// applyPage merges a fetch result into state in one step.
func (m *Model) applyPage(msg MsgPageLoaded) tea.Cmd {
	if msg.Seq != m.seq {
		m.logger().Debug(msg.Key.Repo.String(), "tui", fmt.Sprintf("discard stale page seq=%d latest=%d", msg.Seq, m.seq))
		return nil
	}
	m.cancel = nil

	m.repository = msg.Repository
	m.setIssues(msg.Issues)
	m.loading = false
	m.err = nil

	// An empty page means every later page is empty too.
	m.nextDisabled = len(m.issues) == 0

	if m.recorded {
		return nil
	}
	m.recorded = true
	return m.recordVisit(msg.Key.Repo)
}

// applyFailure keeps the state as it is and surfaces the error.
func (m *Model) applyFailure(msg MsgFetchFailed) {
	if msg.Seq != m.seq || errors.Is(msg.Err, context.Canceled) {
		m.logger().Debug(msg.Key.Repo.String(), "tui", fmt.Sprintf("discard failed fetch seq=%d latest=%d", msg.Seq, m.seq))
		return
	}
	m.cancel = nil
	m.err = msg.Err
}

// setIssues replaces the listed issues, keeping the selection on the same
// issue if it is still on the page.
func (m *Model) setIssues(issues []domain.Issue) {
	if issues == nil {
		issues = []domain.Issue{}
	}
	var selectedKey string
	if issue := m.SelectedIssue(); issue != nil {
		selectedKey = issue.Key()
	}
	index := m.issueList.Index()

	m.issues = issues
	m.issueList.SetItems(issueItems(issues))

	if selectedKey != "" {
		for i, issue := range issues {
			if issue.Key() == selectedKey {
				m.issueList.Select(i)
				return
			}
		}
	}
	m.issueList.Select(max(min(index, len(issues)-1), 0))
}

// SelectedIssue returns the issue under the cursor, or nil if none.
func (m *Model) SelectedIssue() *domain.Issue {
	item, ok := m.issueList.SelectedItem().(issueItem)
	if !ok {
		return nil
	}
	return &item.issue
}

// IssueKeys returns the render keys of the listed issues in order.
func (m *Model) IssueKeys() []string {
	keys := make([]string, 0, len(m.issues))
	for _, issue := range m.issues {
		keys = append(keys, issue.Key())
	}
	return keys
}

// setFilter changes the filter. The page number is kept.
func (m *Model) setFilter(option domain.FilterOption) {
	if option == m.filter {
		return
	}
	m.filter = option
	m.nextDisabled = false
}

// paginate moves one page back or forward.
func (m *Model) paginate(forward bool) {
	if forward {
		if m.nextDisabled {
			return
		}
		m.page = m.page.Next()
		return
	}
	if !m.page.HasPrev() {
		return
	}
	m.page = m.page.Prev()
	m.nextDisabled = false
}

// recordVisit returns a command that remembers repo in the recent list.
func (m *Model) recordVisit(repo domain.RepoIdentifier) tea.Cmd {
	uc := m.container.RecordVisitUseCase()
	if uc == nil {
		return nil
	}
	return func() tea.Msg {
		// Failures are logged by the use case and are not worth a status line.
		_ = uc.Execute(usecase.RecordVisitInput{Repo: repo})
		return nil
	}
}

// loadRecent returns a command that loads the recent repositories.
func (m *Model) loadRecent() tea.Cmd {
	uc := m.container.ListRecentUseCase()
	if uc == nil {
		return nil
	}
	limit := m.container.RecentLimit()
	return func() tea.Msg {
		out, err := uc.Execute(usecase.ListRecentInput{Limit: limit})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRecentLoaded{Repos: out.Repos}
	}
}

// openSelected returns a command that opens the selected issue in the browser.
func (m *Model) openSelected() tea.Cmd {
	issue := m.SelectedIssue()
	if issue == nil || issue.HTMLURL == "" {
		return nil
	}
	uc := m.container.OpenURLUseCase()
	input := usecase.OpenURLInput{URL: issue.HTMLURL, Scope: m.repo.String()}
	return func() tea.Msg {
		if err := uc.Execute(input); err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

func (m *Model) logger() domain.Logger {
	if m.container == nil || m.container.Logger == nil {
		return domain.NopLogger{}
	}
	return m.container.Logger
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Loading reports whether the browser is waiting for its first page.
func (m *Model) Loading() bool {
	return m.loading
}

// Page returns the current page number.
func (m *Model) Page() domain.Page {
	return m.page
}

// Filter returns the current filter option.
func (m *Model) Filter() domain.FilterOption {
	return m.filter
}

// Repo returns the repository being browsed.
func (m *Model) Repo() domain.RepoIdentifier {
	return m.repo
}

// Err returns the error shown on the status line, if any.
func (m *Model) Err() error {
	return m.err
}

// RecentRepos returns the repositories listed at the prompt.
func (m *Model) RecentRepos() []domain.RepoIdentifier {
	items := m.recentList.Items()
	repos := make([]domain.RepoIdentifier, 0, len(items))
	for _, item := range items {
		if ri, ok := item.(recentItem); ok {
			repos = append(repos, ri.repo)
		}
	}
	return repos
}

// SetHyperlinks enables or disables OSC 8 links in issue titles.
func (m *Model) SetHyperlinks(enabled bool) {
	m.hyperlinks = enabled
	m.issueList.SetDelegate(newIssueDelegate(m.styles, enabled))
}
