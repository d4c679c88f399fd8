// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/issue-browser/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding .issue-browser.toml (usually cwd)
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-browser)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalConfigDir returns the directory the loader reads the global file from.
func (l *Loader) GlobalConfigDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	var global, local *domain.Config
	var err error

	if l.globalConfDir != "" {
		global, err = l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if l.localDir != "" {
		local, err = l.loadFile(filepath.Join(l.localDir, domain.LocalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Zero values mean "not set" and are skipped when merging.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "api":
			for k, v := range m {
				switch k {
				case "base_url":
					if s, ok := v.(string); ok {
						res.API.BaseURL = s
					}
				case "timeout":
					s, _ := v.(string)
					d, err := time.ParseDuration(s)
					if err != nil || d <= 0 {
						warnings = append(warnings, fmt.Sprintf("invalid [api].timeout %q, using default", s))
						continue
					}
					res.API.Timeout = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [api]: %s", k))
				}
			}
		case "browser":
			for k, v := range m {
				switch k {
				case "command":
					if s, ok := v.(string); ok {
						res.Browser.Command = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [browser]: %s", k))
				}
			}
		case "recent":
			for k, v := range m {
				switch k {
				case "limit":
					// go-toml decodes integers into int64
					if n, ok := v.(int64); ok && n > 0 {
						res.Recent.Limit = int(n)
					} else {
						warnings = append(warnings, "invalid [recent].limit, using default")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [recent]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.API.BaseURL != "" {
		result.API.BaseURL = override.API.BaseURL
	}
	if override.API.Timeout > 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.Browser.Command != "" {
		result.Browser.Command = override.Browser.Command
	}
	if override.Recent.Limit > 0 {
		result.Recent.Limit = override.Recent.Limit
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}
