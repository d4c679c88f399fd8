package domain

import "time"

// RecentRepo is a repository the user browsed before.
//
//nolint:govet // Field order follows TOML convention for readability
type RecentRepo struct {
	Name       string    `toml:"name"`                 // owner/repo
	LastOpened time.Time `toml:"last_opened,omitzero"` // Last successful load
}

// RecentFile represents the recent.toml file structure.
// Fields are ordered to minimize memory padding.
type RecentFile struct {
	Repos   []RecentRepo `toml:"repos"`
	Version int          `toml:"version"` // File format version (currently 1)
}

// Identifier parses the stored name. Entries written by hand may be invalid.
func (r RecentRepo) Identifier() (RepoIdentifier, error) {
	return ParseRepoIdentifier(r.Name)
}
