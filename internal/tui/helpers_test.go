package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/testutil"
)

var reactID = domain.RepoIdentifier{Owner: "facebook", Name: "react"}

var reactRepo = &domain.RepositoryInfo{
	FullName:    "facebook/react",
	Name:        "react",
	Description: "The library for web and native user interfaces.",
	Owner:       domain.User{Login: "facebook", AvatarURL: "https://avatars.example/facebook"},
	HTMLURL:     "https://github.com/facebook/react",
}

func makeIssues(start, n int, state string) []domain.Issue {
	issues := make([]domain.Issue, 0, n)
	for i := start; i < start+n; i++ {
		issues = append(issues, domain.Issue{
			ID:      int64(1000 + i),
			Number:  i,
			Title:   fmt.Sprintf("Issue %d", i),
			HTMLURL: fmt.Sprintf("https://github.com/facebook/react/issues/%d", i),
			User:    domain.User{Login: fmt.Sprintf("user%d", i)},
			State:   state,
		})
	}
	return issues
}

type testEnv struct {
	source    *testutil.MockIssueSource
	recent    *testutil.MockRecentRepository
	executor  *testutil.MockCommandExecutor
	logger    *testutil.MockLogger
	container *app.Container
}

func newTestEnv(source *testutil.MockIssueSource) *testEnv {
	env := &testEnv{
		source:   source,
		recent:   testutil.NewMockRecentRepository(),
		executor: &testutil.MockCommandExecutor{},
		logger:   &testutil.MockLogger{},
	}
	clock := &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	env.container = app.NewWithDeps(app.Config{}, source, env.recent, clock, env.logger)
	env.container.Executor = env.executor
	return env
}

// newModel creates a model with a spinner that never sleeps and plain titles.
func (e *testEnv) newModel(repo domain.RepoIdentifier) *Model {
	return e.newModelWithContext(context.Background(), repo)
}

func (e *testEnv) newModelWithContext(ctx context.Context, repo domain.RepoIdentifier) *Model {
	m := New(ctx, e.container, repo)
	m.spinner.Spinner = spinner.Spinner{Frames: []string{"."}, FPS: time.Millisecond}
	m.SetHyperlinks(false)
	return m
}

// runCmd executes cmd, flattening batches, and returns the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// fetchMsgs executes cmd and keeps only fetch results.
func fetchMsgs(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case MsgPageLoaded, MsgFetchFailed:
			out = append(out, msg)
		}
	}
	return out
}

// deliver feeds fetch results produced by cmd back into the model and runs
// the follow-up commands (visit recording) for their side effects.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range fetchMsgs(cmd) {
		_, next := m.Update(msg)
		runCmd(next)
	}
}

func press(m *Model, keys string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return cmd
}

func pressType(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}
