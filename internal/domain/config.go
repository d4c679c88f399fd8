package domain

import "time"

// Defaults.
const (
	DefaultAPIBaseURL  = "https://api.github.com"
	DefaultAPITimeout  = 30 * time.Second
	DefaultRecentLimit = 10
	DefaultLogLevel    = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string
	API      APIConfig
	Browser  BrowserConfig
	Log      LogConfig
	Recent   RecentConfig
}

// APIConfig holds settings from the [api] section.
type APIConfig struct {
	BaseURL string        // REST API root
	Timeout time.Duration // Per-request timeout of the HTTP client
}

// BrowserConfig holds settings from the [browser] section.
type BrowserConfig struct {
	Command string // URL opener, e.g. "xdg-open"
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// RecentConfig holds settings from the [recent] section.
type RecentConfig struct {
	Limit int // Maximum entries shown
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Browser: BrowserConfig{Command: DefaultBrowserCommand()},
		Log:     LogConfig{Level: DefaultLogLevel},
		Recent:  RecentConfig{Limit: DefaultRecentLimit},
	}
}
