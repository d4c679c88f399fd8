// Package gitremote finds the GitHub repository a local checkout points at.
package gitremote

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/issue-browser/internal/domain"
)

// Ensure Resolver implements domain.OriginResolver.
var _ domain.OriginResolver = (*Resolver)(nil)

// RemoteName is the remote consulted for the default repository.
const RemoteName = "origin"

// Resolver reads remotes with go-git, without shelling out to git.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Origin returns the owner/repo of the origin remote of the repository containing dir.
func (r *Resolver) Origin(dir string) (domain.RepoIdentifier, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return domain.RepoIdentifier{}, domain.ErrNotGitRepository
		}
		return domain.RepoIdentifier{}, fmt.Errorf("open git repository: %w", err)
	}

	remote, err := repo.Remote(RemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return domain.RepoIdentifier{}, domain.ErrNoOriginRemote
		}
		return domain.RepoIdentifier{}, fmt.Errorf("read remote %s: %w", RemoteName, err)
	}

	for _, raw := range remote.Config().URLs {
		path, err := ProjectPath(raw)
		if err != nil {
			continue
		}
		if id, err := domain.ParseRepoIdentifier(path); err == nil {
			return id, nil
		}
	}
	return domain.RepoIdentifier{}, domain.ErrNoOriginRemote
}

// ProjectPath extracts "owner/repo" from a remote URL. Both URL forms
// (https://host/owner/repo.git, ssh://git@host/owner/repo) and scp-like
// forms (git@host:owner/repo.git) are accepted.
func ProjectPath(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("remote URL is empty")
	}

	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("parse remote URL: %w", err)
		}
		path := normalizeProjectPath(parsed.Path)
		if parsed.Hostname() == "" && parsed.Scheme != "file" || path == "" {
			return "", fmt.Errorf("remote URL missing host or project path")
		}
		return path, nil
	}

	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", fmt.Errorf("unsupported remote URL format")
	}
	path := normalizeProjectPath(parts[1])
	if path == "" {
		return "", fmt.Errorf("remote URL missing project path")
	}
	return path, nil
}

func normalizeProjectPath(path string) string {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimSuffix(p, "/")
	return strings.TrimSuffix(p, ".git")
}
