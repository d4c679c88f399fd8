package domain

import "errors"

// Domain errors.
var (
	ErrInvalidRepoIdentifier = errors.New("invalid repository identifier (expected owner/repo)")
	ErrInvalidFilter         = errors.New("invalid issue filter (expected open, closed or all)")
	ErrInvalidPage           = errors.New("page number must be at least 1")
	ErrNotFound              = errors.New("not found")
	ErrRateLimited           = errors.New("API rate limit exceeded")
	ErrNoOriginRemote        = errors.New("no origin remote pointing at a repository")
	ErrNotGitRepository      = errors.New("not a git repository (or any of the parent directories)")
	ErrRecentFileCorrupted   = errors.New("recent repositories file is corrupted")
)
