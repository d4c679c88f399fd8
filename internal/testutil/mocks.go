// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/issue-browser/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// IssueCall records one ListIssues call.
type IssueCall struct {
	Repo  domain.RepoIdentifier
	Query domain.IssueQuery
}

// MockIssueSource is a test double for domain.IssueSource.
// It is safe for concurrent use, as FetchPage calls both methods in parallel.
// Fields are ordered to minimize memory padding.
type MockIssueSource struct {
	Repository *domain.RepositoryInfo
	Pages      map[domain.IssueQuery][]domain.Issue // Issues per query; missing = Issues
	RepoErr    error
	IssuesErr  error
	RepoCalls  []domain.RepoIdentifier
	IssueCalls []IssueCall
	Issues     []domain.Issue
	mu         sync.Mutex
}

// NewMockIssueSource creates a MockIssueSource returning repo and issues.
func NewMockIssueSource(repo *domain.RepositoryInfo, issues []domain.Issue) *MockIssueSource {
	return &MockIssueSource{
		Repository: repo,
		Issues:     issues,
		Pages:      make(map[domain.IssueQuery][]domain.Issue),
	}
}

// GetRepository returns the configured repository.
func (m *MockIssueSource) GetRepository(_ context.Context, repo domain.RepoIdentifier) (*domain.RepositoryInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RepoCalls = append(m.RepoCalls, repo)
	if m.RepoErr != nil {
		return nil, m.RepoErr
	}
	return m.Repository, nil
}

// ListIssues returns the configured issues.
func (m *MockIssueSource) ListIssues(_ context.Context, repo domain.RepoIdentifier, q domain.IssueQuery) ([]domain.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IssueCalls = append(m.IssueCalls, IssueCall{Repo: repo, Query: q})
	if m.IssuesErr != nil {
		return nil, m.IssuesErr
	}
	if issues, ok := m.Pages[q]; ok {
		return issues, nil
	}
	return m.Issues, nil
}

// LastIssueCall returns the most recent ListIssues call.
func (m *MockIssueSource) LastIssueCall() (IssueCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.IssueCalls) == 0 {
		return IssueCall{}, false
	}
	return m.IssueCalls[len(m.IssueCalls)-1], true
}

// MockRecentRepository is a test double for domain.RecentRepository.
type MockRecentRepository struct {
	File     *domain.RecentFile
	LoadErr  error
	TouchErr error
}

// NewMockRecentRepository creates an empty MockRecentRepository.
func NewMockRecentRepository() *MockRecentRepository {
	return &MockRecentRepository{File: &domain.RecentFile{Version: 1}}
}

// Load returns the in-memory file.
func (m *MockRecentRepository) Load() (*domain.RecentFile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.File, nil
}

// Touch upserts name with the given time.
func (m *MockRecentRepository) Touch(name string, at time.Time) error {
	if m.TouchErr != nil {
		return m.TouchErr
	}
	for i := range m.File.Repos {
		if m.File.Repos[i].Name == name {
			m.File.Repos[i].LastOpened = at
			return nil
		}
	}
	m.File.Repos = append(m.File.Repos, domain.RecentRepo{Name: name, LastOpened: at})
	return nil
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteErr    error
	ExecutedCmds  []*domain.ExecCommand
	ExecuteOutput []byte
}

// Execute records the command.
func (m *MockCommandExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	m.ExecutedCmds = append(m.ExecutedCmds, cmd)
	return m.ExecuteOutput, m.ExecuteErr
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LogEntry is one recorded log line.
type LogEntry struct {
	Level    string
	Scope    string
	Category string
	Msg      string
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] [%s] %s", e.Level, e.Scope, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, scope, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Scope: scope, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(scope, category, msg string) { m.add("DEBUG", scope, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(scope, category, msg string) { m.add("INFO", scope, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(scope, category, msg string) { m.add("WARN", scope, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(scope, category, msg string) { m.add("ERROR", scope, category, msg) }

// HasLevel reports whether an entry with level was recorded.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockOriginResolver is a test double for domain.OriginResolver.
type MockOriginResolver struct {
	Err  error
	Dirs []string
	Repo domain.RepoIdentifier
}

// Origin returns the configured identifier.
func (m *MockOriginResolver) Origin(dir string) (domain.RepoIdentifier, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.Err != nil {
		return domain.RepoIdentifier{}, m.Err
	}
	return m.Repo, nil
}
