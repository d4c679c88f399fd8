package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-browser/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[api]
base_url = "https://ghe.example.com/api/v3"
timeout = "10s"

[browser]
command = "firefox"

[recent]
limit = 3

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "firefox", cfg.Browser.Command)
	assert.Equal(t, 3, cfg.Recent.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[api]
base_url = "https://global.example.com"
timeout = "10s"

[log]
level = "warn"
`)
	writeFile(t, filepath.Join(localDir, domain.LocalConfigFileName), `
[api]
base_url = "https://local.example.com"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "https://local.example.com", cfg.API.BaseURL) // Overridden by local
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)               // From global
	assert.Equal(t, "warn", cfg.Log.Level)                         // From global
	assert.Equal(t, domain.DefaultRecentLimit, cfg.Recent.Limit)   // Default
}

func TestLoader_Load_Warnings(t *testing.T) {
	localDir := t.TempDir()

	writeFile(t, filepath.Join(localDir, domain.LocalConfigFileName), `
theme = "dark"

[api]
timeout = "soon"
token = "secret"

[recent]
limit = -1

[workers]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, domain.DefaultRecentLimit, cfg.Recent.Limit)
	assert.Equal(t, []string{
		`invalid [api].timeout "soon", using default`,
		"invalid [recent].limit, using default",
		"unknown key in [api]: token",
		"unknown key: theme",
		"unknown section: workers",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, filepath.Join(localDir, domain.LocalConfigFileName), `[api`)

	_, err := NewLoaderWithGlobalDir(localDir, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.LocalConfigFileName)
}

func TestDefaultGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "issue-browser"), DefaultGlobalConfigDir())
}
