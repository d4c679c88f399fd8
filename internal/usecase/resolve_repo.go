package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/issue-browser/internal/domain"
)

// ResolveRepoInput contains the sources a repository can come from.
type ResolveRepoInput struct {
	Arg string // Positional argument, may be URL-encoded
	Dir string // Working directory for origin detection
}

// ResolveRepoOutput contains the resolved repository.
// Repo is zero when nothing was given and no origin was found.
type ResolveRepoOutput struct {
	Repo       domain.RepoIdentifier
	FromOrigin bool
}

// ResolveRepo is the use case for choosing the repository to browse.
type ResolveRepo struct {
	origin domain.OriginResolver
	logger domain.Logger
}

// NewResolveRepo creates a new ResolveRepo use case.
func NewResolveRepo(origin domain.OriginResolver, logger domain.Logger) *ResolveRepo {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ResolveRepo{origin: origin, logger: logger}
}

// Execute parses the argument if present, otherwise asks the origin resolver.
// A missing origin is not an error: the caller falls back to the repository prompt.
func (uc *ResolveRepo) Execute(in ResolveRepoInput) (*ResolveRepoOutput, error) {
	if arg := strings.TrimSpace(in.Arg); arg != "" {
		repo, err := domain.ParseRepoIdentifier(arg)
		if err != nil {
			return nil, err
		}
		return &ResolveRepoOutput{Repo: repo}, nil
	}

	if uc.origin == nil || in.Dir == "" {
		return &ResolveRepoOutput{}, nil
	}

	repo, err := uc.origin.Origin(in.Dir)
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) || errors.Is(err, domain.ErrNoOriginRemote) {
			uc.logger.Debug("", "resolve", fmt.Sprintf("no origin in %s: %v", in.Dir, err))
			return &ResolveRepoOutput{}, nil
		}
		return nil, fmt.Errorf("detect origin: %w", err)
	}

	uc.logger.Debug(repo.String(), "resolve", "using origin remote")
	return &ResolveRepoOutput{Repo: repo, FromOrigin: true}, nil
}
