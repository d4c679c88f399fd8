package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RepoIdentifier names a repository as owner/repo.
type RepoIdentifier struct {
	Owner string
	Name  string
}

// ParseRepoIdentifier decodes an "owner/repo" string. URL-encoded input
// such as "facebook%2Freact" is accepted.
func ParseRepoIdentifier(raw string) (RepoIdentifier, error) {
	decoded, err := url.PathUnescape(strings.TrimSpace(raw))
	if err != nil {
		return RepoIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepoIdentifier, raw)
	}
	decoded = strings.TrimSuffix(strings.Trim(decoded, "/"), ".git")

	parts := strings.Split(decoded, "/")
	if len(parts) != 2 {
		return RepoIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepoIdentifier, raw)
	}
	owner, name := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if owner == "" || name == "" || strings.ContainsAny(decoded, " \t?#") {
		return RepoIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidRepoIdentifier, raw)
	}
	return RepoIdentifier{Owner: owner, Name: name}, nil
}

// String returns owner/repo.
func (r RepoIdentifier) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether r is unset.
func (r RepoIdentifier) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}
