package recent

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-browser/internal/domain"
)

func TestStore_LoadEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	file, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, file.Version)
	assert.Empty(t, file.Repos)
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	err := store.Save(&domain.RecentFile{
		Version: 1,
		Repos: []domain.RecentRepo{
			{Name: "golang/go", LastOpened: base},
			{Name: "facebook/react", LastOpened: base.Add(time.Hour)},
		},
	})
	require.NoError(t, err)

	info, err := os.Stat(domain.RecentFilePath(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Repos, 2)
	assert.Equal(t, "facebook/react", loaded.Repos[0].Name)
	assert.True(t, loaded.Repos[0].LastOpened.Equal(base.Add(time.Hour)))
	assert.Equal(t, "golang/go", loaded.Repos[1].Name)
}

func TestStore_Touch_AddsAndUpdates(t *testing.T) {
	store := NewStore(t.TempDir())
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	require.NoError(t, store.Touch("facebook/react", t1))
	require.NoError(t, store.Touch("golang/go", t1.Add(time.Minute)))
	require.NoError(t, store.Touch("facebook/react", t2))

	file, err := store.Load()
	require.NoError(t, err)
	require.Len(t, file.Repos, 2)
	assert.Equal(t, "facebook/react", file.Repos[0].Name)
	assert.True(t, file.Repos[0].LastOpened.Equal(t2))
}

func TestStore_Load_Corrupted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.RecentFilePath(dir), []byte("repos = [[[["), 0o600))

	_, err := NewStore(dir).Load()
	assert.ErrorIs(t, err, domain.ErrRecentFileCorrupted)
}

func TestStore_Touch_ReplacesCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.RecentFilePath(dir), []byte("not toml ]]"), 0o600))
	store := NewStore(dir)

	require.NoError(t, store.Touch("cli/cli", time.Now()))

	file, err := store.Load()
	require.NoError(t, err)
	require.Len(t, file.Repos, 1)
	assert.Equal(t, "cli/cli", file.Repos[0].Name)
}

func TestStore_Load_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	content := `version = 1

[[repos]]
name = "a/b"

[[repos]]
name = "a/b"

[[repos]]
name = "c/d"
`
	require.NoError(t, os.WriteFile(domain.RecentFilePath(dir), []byte(content), 0o600))

	file, err := NewStore(dir).Load()
	require.NoError(t, err)
	assert.Len(t, file.Repos, 2)
}

func TestStore_Save_Truncates(t *testing.T) {
	store := NewStore(t.TempDir())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	file := &domain.RecentFile{}
	for i := 0; i < maxEntries+5; i++ {
		file.Repos = append(file.Repos, domain.RecentRepo{
			Name:       fmt.Sprintf("owner/repo%d", i),
			LastOpened: base.Add(time.Duration(i) * time.Minute),
		})
	}
	require.NoError(t, store.Save(file))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Repos, maxEntries)
	assert.Equal(t, 1, loaded.Version)
}
