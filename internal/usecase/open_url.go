package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/issue-browser/internal/domain"
)

// ErrNoBrowserCommand is returned when no URL opener is configured.
var ErrNoBrowserCommand = errors.New("no browser command configured")

// OpenURLInput contains the URL to open.
type OpenURLInput struct {
	URL   string
	Scope string // owner/repo, for logging
}

// OpenURL is the use case for opening an issue in the user's browser.
type OpenURL struct {
	executor   domain.CommandExecutor
	logger     domain.Logger
	browserCmd string
}

// NewOpenURL creates a new OpenURL use case.
// An empty browserCmd falls back to the platform default.
func NewOpenURL(executor domain.CommandExecutor, browserCmd string, logger domain.Logger) *OpenURL {
	if strings.TrimSpace(browserCmd) == "" {
		browserCmd = domain.DefaultBrowserCommand()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &OpenURL{executor: executor, browserCmd: browserCmd, logger: logger}
}

// Execute runs the opener with the URL appended.
func (uc *OpenURL) Execute(in OpenURLInput) error {
	if in.URL == "" {
		return fmt.Errorf("open url: empty url")
	}
	cmd := domain.OpenURLCommand(uc.browserCmd, in.URL)
	if cmd == nil {
		return ErrNoBrowserCommand
	}

	uc.logger.Debug(in.Scope, "open", fmt.Sprintf("%s %s", cmd.Program, in.URL))
	out, err := uc.executor.Execute(cmd)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		uc.logger.Error(in.Scope, "open", err.Error())
		return fmt.Errorf("open %s: %w", in.URL, err)
	}
	return nil
}
