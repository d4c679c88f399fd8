package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/testutil"
)

var reactRepo = &domain.RepositoryInfo{
	FullName:    "facebook/react",
	Name:        "react",
	Description: "The library for web and native user interfaces.",
	Owner:       domain.User{Login: "facebook"},
}

func reactIssues() []domain.Issue {
	return []domain.Issue{
		{ID: 11, Number: 101, Title: "Hooks crash", State: "open", User: domain.User{Login: "alice"},
			Labels: []domain.Label{{ID: 1, Name: "bug", Color: "d73a4a"}}},
		{ID: 12, Number: 102, Title: "Docs typo", State: "open", User: domain.User{Login: "bob"}},
	}
}

// testCLI wires a root command to a container with mock ports.
type testCLI struct {
	source  *testutil.MockIssueSource
	recent  *testutil.MockRecentRepository
	opts    []app.Options
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	root      *cobra.Command
	workDir   string
	globalDir string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	tc := &testCLI{
		source:    testutil.NewMockIssueSource(reactRepo, reactIssues()),
		recent:    testutil.NewMockRecentRepository(),
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		workDir:   t.TempDir(),
		globalDir: t.TempDir(),
	}
	factory := func(opts app.Options) (*app.Container, error) {
		tc.opts = append(tc.opts, opts)
		return app.NewWithDeps(app.Config{WorkDir: tc.workDir, GlobalDir: tc.globalDir},
			tc.source, tc.recent, domain.RealClock{}, nil), nil
	}
	tc.root = NewRootCommand(factory, "test-version")
	tc.root.SetOut(tc.stdout)
	tc.root.SetErr(tc.stderr)
	return tc
}

func (tc *testCLI) run(args ...string) error {
	tc.root.SetArgs(args)
	return tc.root.Execute()
}

// stubTUI replaces launchTUIFunc for the duration of the test.
func stubTUI(t *testing.T) *[]domain.RepoIdentifier {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	var launched []domain.RepoIdentifier
	launchTUIFunc = func(_ context.Context, _ *app.Container, repo domain.RepoIdentifier) error {
		launched = append(launched, repo)
		return nil
	}
	return &launched
}

func TestNewRootCommand_WithRepo_LaunchesTUI(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run("facebook/react"))

	require.Len(t, *launched, 1)
	assert.Equal(t, "facebook/react", (*launched)[0].String())
}

func TestNewRootCommand_URLEncodedRepo(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run("facebook%2Freact"))

	require.Len(t, *launched, 1)
	assert.Equal(t, domain.RepoIdentifier{Owner: "facebook", Name: "react"}, (*launched)[0])
}

func TestNewRootCommand_NoArgs_LaunchesPrompt(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run())

	// No origin resolver in the test container: the TUI starts at the prompt
	require.Len(t, *launched, 1)
	assert.True(t, (*launched)[0].IsZero())
}

func TestNewRootCommand_InvalidRepo(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	err := tc.run("not-a-repo")

	assert.ErrorIs(t, err, domain.ErrInvalidRepoIdentifier)
	assert.Empty(t, *launched)
}

func TestNewRootCommand_TooManyArgs(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	assert.Error(t, tc.run("a/b", "c/d"))
	assert.Empty(t, *launched)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	launched := stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run("--help"))

	assert.Empty(t, *launched, "launchTUIFunc should NOT be called when --help is provided")
	assert.Empty(t, tc.opts, "container should not be built for --help")
	assert.Contains(t, tc.stdout.String(), "issues [owner/repo]")
	assert.Contains(t, tc.stdout.String(), "page")
	assert.Contains(t, tc.stdout.String(), "recent")
}

func TestNewRootCommand_Version(t *testing.T) {
	stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run("--version"))

	assert.Contains(t, tc.stdout.String(), "test-version")
}

func TestNewRootCommand_APIURLFlag(t *testing.T) {
	stubTUI(t)
	tc := newTestCLI(t)

	require.NoError(t, tc.run("--api-url", "http://localhost:9999", "facebook/react"))

	require.Len(t, tc.opts, 1)
	assert.Equal(t, "http://localhost:9999", tc.opts[0].APIURL)
	assert.Equal(t, "test-version", tc.opts[0].Version)
}

func TestNewRootCommand_FactoryError(t *testing.T) {
	launched := stubTUI(t)
	root := NewRootCommand(func(app.Options) (*app.Container, error) {
		return nil, errors.New("load config: broken")
	}, "v")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"facebook/react"})

	assert.EqualError(t, root.Execute(), "load config: broken")
	assert.Empty(t, *launched)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	stubTUI(t)
	var stderr bytes.Buffer
	root := NewRootCommand(func(app.Options) (*app.Container, error) {
		c := app.NewWithDeps(app.Config{}, testutil.NewMockIssueSource(nil, nil), nil, domain.RealClock{}, nil)
		c.AppConfig.Warnings = []string{"unknown section: agents"}
		return c, nil
	}, "v")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"facebook/react"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown section: agents")
}

type ctxKey struct{}

func TestNewRootCommand_PassesCommandContextToTUI(t *testing.T) {
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	var got context.Context
	launchTUIFunc = func(ctx context.Context, _ *app.Container, _ domain.RepoIdentifier) error {
		got = ctx
		return nil
	}

	tc := newTestCLI(t)
	tc.root.SetArgs([]string{"facebook/react"})
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "issues"))
	defer cancel()
	require.NoError(t, tc.root.ExecuteContext(ctx))

	require.NotNil(t, got)
	assert.Equal(t, "issues", got.Value(ctxKey{}))
	cancel()
	assert.ErrorIs(t, got.Err(), context.Canceled)
}
