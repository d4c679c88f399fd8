package domain

import (
	"context"
	"time"
)

// IssueSource reads repository data from the remote API.
type IssueSource interface {
	// GetRepository fetches repository details.
	GetRepository(ctx context.Context, repo RepoIdentifier) (*RepositoryInfo, error)

	// ListIssues fetches one page of issues.
	ListIssues(ctx context.Context, repo RepoIdentifier, query IssueQuery) ([]Issue, error)
}

// RecentRepository persists recently browsed repositories.
type RecentRepository interface {
	// Load reads the file. Returns an empty file if it doesn't exist.
	Load() (*RecentFile, error)

	// Touch records a visit of name at the given time.
	Touch(name string, at time.Time) error
}

// OriginResolver finds the repository a local git checkout points at.
type OriginResolver interface {
	// Origin returns the identifier of the origin remote of the repository containing dir.
	Origin(dir string) (RepoIdentifier, error)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// Logger writes diagnostic logs. An empty scope means a global entry;
// otherwise scope is the owner/repo the entry belongs to.
type Logger interface {
	Debug(scope, category, msg string)
	Info(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
