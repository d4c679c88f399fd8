// Package recent persists the list of recently browsed repositories.
package recent

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/issue-browser/internal/domain"
)

// Ensure Store implements domain.RecentRepository.
var _ domain.RecentRepository = (*Store)(nil)

// maxEntries bounds the file; older entries are dropped on save.
const maxEntries = 50

// Store implements RecentRepository for file-based persistence.
type Store struct {
	filePath string
}

// NewStore creates a new store in globalDir (typically ~/.config/issue-browser).
func NewStore(globalDir string) *Store {
	return &Store{
		filePath: domain.RecentFilePath(globalDir),
	}
}

// Load reads the recent file.
// Returns an empty file with version 1 if the file doesn't exist.
func (s *Store) Load() (*domain.RecentFile, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.RecentFile{
				Version: 1,
				Repos:   []domain.RecentRepo{},
			}, nil
		}
		return nil, err
	}

	var file domain.RecentFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, domain.ErrRecentFileCorrupted
	}

	file.Repos = deduplicate(file.Repos)
	return &file, nil
}

// Save writes the recent file, most recent first.
func (s *Store) Save(file *domain.RecentFile) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o700); err != nil {
		return err
	}

	sortByLastOpened(file.Repos)
	if len(file.Repos) > maxEntries {
		file.Repos = file.Repos[:maxEntries]
	}
	if file.Version == 0 {
		file.Version = 1
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0o600)
}

// Touch records a visit of name at the given time, adding it if needed.
// A corrupted file is replaced by a fresh one.
func (s *Store) Touch(name string, at time.Time) error {
	file, err := s.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrRecentFileCorrupted) {
			return err
		}
		file = &domain.RecentFile{Version: 1}
	}

	found := false
	for i := range file.Repos {
		if file.Repos[i].Name == name {
			file.Repos[i].LastOpened = at
			found = true
			break
		}
	}
	if !found {
		file.Repos = append(file.Repos, domain.RecentRepo{Name: name, LastOpened: at})
	}

	return s.Save(file)
}

// deduplicate removes duplicate entries by name, keeping the first occurrence.
func deduplicate(repos []domain.RecentRepo) []domain.RecentRepo {
	seen := make(map[string]bool)
	result := make([]domain.RecentRepo, 0, len(repos))
	for _, repo := range repos {
		if !seen[repo.Name] {
			seen[repo.Name] = true
			result = append(result, repo)
		}
	}
	return result
}

// sortByLastOpened sorts by last_opened desc, then name asc.
func sortByLastOpened(repos []domain.RecentRepo) {
	sort.SliceStable(repos, func(i, j int) bool {
		if !repos[i].LastOpened.Equal(repos[j].LastOpened) {
			return repos[i].LastOpened.After(repos[j].LastOpened)
		}
		return repos[i].Name < repos[j].Name
	})
}
