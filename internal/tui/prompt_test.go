package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/testutil"
)

func recentMsg(t *testing.T, cmd tea.Cmd) MsgRecentLoaded {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if loaded, ok := msg.(MsgRecentLoaded); ok {
			return loaded
		}
	}
	t.Fatal("no MsgRecentLoaded produced")
	return MsgRecentLoaded{}
}

func newPromptEnv() *testEnv {
	env := newTestEnv(testutil.NewMockIssueSource(reactRepo, makeIssues(1, 5, "open")))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	env.recent.File.Repos = []domain.RecentRepo{
		{Name: "golang/go", LastOpened: base},
		{Name: "cli/cli", LastOpened: base.Add(time.Hour)},
	}
	return env
}

func TestPrompt_StartsWithoutRepository(t *testing.T) {
	env := newPromptEnv()
	m := env.newModel(domain.RepoIdentifier{})

	assert.Equal(t, ModePrompt, m.Mode())
	assert.True(t, m.Mode().IsInputMode())

	loaded := recentMsg(t, m.Init())
	m.Update(loaded)

	assert.Empty(t, env.source.RepoCalls, "the prompt never fetches")
	require.Len(t, m.RecentRepos(), 2)
	assert.Equal(t, "cli/cli", m.RecentRepos()[0].String())

	view := m.View()
	assert.Contains(t, view, "Browse issues")
	assert.Contains(t, view, "Recent repositories")
	assert.Contains(t, view, "golang/go")
}

func TestPrompt_SubmitTypedRepository(t *testing.T) {
	env := newPromptEnv()
	m := env.newModel(domain.RepoIdentifier{})
	m.Init()

	press(m, "facebook%2Freact")
	cmd := pressType(m, tea.KeyEnter)

	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, reactID, m.Repo())
	assert.True(t, m.Loading())

	deliver(t, m, cmd)
	call, ok := env.source.LastIssueCall()
	require.True(t, ok)
	assert.Equal(t, reactID, call.Repo)
	assert.Equal(t, domain.NewIssueQuery(domain.FilterOpen, 1), call.Query)
	assert.False(t, m.Loading())
}

func TestPrompt_InvalidRepository(t *testing.T) {
	env := newPromptEnv()
	m := env.newModel(domain.RepoIdentifier{})
	m.Init()

	press(m, "not a repo")
	assert.Nil(t, pressType(m, tea.KeyEnter))

	assert.Equal(t, ModePrompt, m.Mode())
	assert.ErrorIs(t, m.Err(), domain.ErrInvalidRepoIdentifier)
	assert.Contains(t, m.View(), "Error:")
}

func TestPrompt_SelectRecent(t *testing.T) {
	env := newPromptEnv()
	m := env.newModel(domain.RepoIdentifier{})
	m.Update(recentMsg(t, m.Init()))

	assert.Equal(t, 0, m.recentList.Index(), "most recent is preselected")
	pressType(m, tea.KeyDown)
	assert.Equal(t, 1, m.recentList.Index())
	pressType(m, tea.KeyDown)
	assert.Equal(t, 0, m.recentList.Index(), "wraps past the end")
	pressType(m, tea.KeyUp)
	assert.Equal(t, 1, m.recentList.Index(), "wraps past the start")
	assert.Contains(t, m.View(), "> ")

	cmd := pressType(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, "golang/go", m.Repo().String())
	deliver(t, m, cmd)
	assert.False(t, m.Loading())
}

func TestPrompt_EscClearsThenQuits(t *testing.T) {
	env := newPromptEnv()
	m := env.newModel(domain.RepoIdentifier{})
	m.Init()

	press(m, "abc")
	assert.Nil(t, pressType(m, tea.KeyEsc))
	assert.Empty(t, m.repoInput.Value())

	cmd := pressType(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBack_RemountsFreshBrowser(t *testing.T) {
	env := newPromptEnv()
	m := loadedModel(t, env)

	deliver(t, m, press(m, "3"))
	deliver(t, m, press(m, "l"))
	require.Equal(t, domain.FilterAll, m.Filter())
	require.Equal(t, domain.Page(2), m.Page())

	cmd := press(m, "b")
	assert.Equal(t, ModePrompt, m.Mode())
	m.Update(recentMsg(t, cmd))
	assert.Contains(t, m.View(), "facebook/react", "the visited repository is listed")

	calls := len(env.source.IssueCalls)
	press(m, "facebook/react")
	cmd = pressType(m, tea.KeyEnter)

	// Same repository, but a new mount: initial state and a new fetch.
	assert.True(t, m.Loading())
	assert.Equal(t, domain.FilterOpen, m.Filter())
	assert.Equal(t, domain.FirstPage, m.Page())
	assert.Nil(t, m.repository)
	assert.Empty(t, m.issues)
	assert.Contains(t, m.View(), "Loading facebook/react")

	deliver(t, m, cmd)
	require.Len(t, env.source.IssueCalls, calls+1)
	assert.Equal(t, domain.NewIssueQuery(domain.FilterOpen, 1), env.source.IssueCalls[calls].Query)
}

func TestBack_CancelsInFlightFetch(t *testing.T) {
	env := newTestEnv(testutil.NewMockIssueSource(reactRepo, makeIssues(1, 5, "open")))
	m := loadedModel(t, env)

	pending := press(m, "l")
	pressType(m, tea.KeyEsc)
	require.Equal(t, ModePrompt, m.Mode())

	// Whatever the pending fetch returns, it is no longer the latest.
	for _, msg := range fetchMsgs(pending) {
		m.Update(msg)
	}
	assert.Equal(t, ModePrompt, m.Mode())
	assert.True(t, hasLogMsg(env.logger, "discard"))
}

func TestPrompt_NoRecentStore(t *testing.T) {
	env := newTestEnv(testutil.NewMockIssueSource(reactRepo, nil))
	env.container.Recent = nil
	m := env.newModel(domain.RepoIdentifier{})

	for _, msg := range runCmd(m.Init()) {
		_, isRecent := msg.(MsgRecentLoaded)
		assert.False(t, isRecent)
	}
	assert.NotContains(t, m.View(), "Recent repositories")
}
