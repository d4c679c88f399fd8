package domain

import "path/filepath"

// AppName is used for config and state directory names.
const AppName = "issue-browser"

// File names.
const (
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".issue-browser.toml"
	RecentFileName      = "recent.toml"
)

// GlobalConfigDir returns the application's directory under configHome
// (typically $XDG_CONFIG_HOME).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// LogPath returns the path to the log file under the state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", "issues.log")
}

// RecentFilePath returns the path to the recent repositories file.
func RecentFilePath(globalDir string) string {
	return filepath.Join(globalDir, RecentFileName)
}
