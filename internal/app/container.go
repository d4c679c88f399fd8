// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"

	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/infra/config"
	"github.com/runoshun/issue-browser/internal/infra/executor"
	"github.com/runoshun/issue-browser/internal/infra/github"
	"github.com/runoshun/issue-browser/internal/infra/gitremote"
	"github.com/runoshun/issue-browser/internal/infra/logging"
	"github.com/runoshun/issue-browser/internal/infra/recent"
	"github.com/runoshun/issue-browser/internal/usecase"
)

// Options are the command-line overrides applied on top of the config files.
type Options struct {
	APIURL   string // Overrides [api].base_url when non-empty
	Version  string // Reported in the User-Agent header
	StateDir string // Log directory; empty = default state dir
}

// Config holds the application paths.
type Config struct {
	WorkDir   string // Directory the command was started in
	GlobalDir string // Global config directory (also holds recent.toml)
	StateDir  string // Directory holding logs/
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Source       domain.IssueSource
	Recent       domain.RecentRepository
	Origin       domain.OriginResolver
	Executor     domain.CommandExecutor
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger
	Clock        domain.Clock

	// Loaded configuration (defaults when nothing is configured)
	AppConfig *domain.Config

	closer io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string, opts Options) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		appConfig.API.BaseURL = opts.APIURL
	}

	cfg := Config{
		WorkDir:   dir,
		GlobalDir: configLoader.GlobalConfigDir(),
		StateDir:  opts.StateDir,
	}
	if cfg.StateDir == "" {
		cfg.StateDir = logging.DefaultStateDir()
	}

	logger := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level))

	userAgent := domain.AppName
	if opts.Version != "" {
		userAgent += "/" + opts.Version
	}
	source := github.NewClient(
		github.WithBaseURL(appConfig.API.BaseURL),
		github.WithTimeout(appConfig.API.Timeout),
		github.WithUserAgent(userAgent),
	)

	var recentStore domain.RecentRepository
	if cfg.GlobalDir != "" {
		recentStore = recent.NewStore(cfg.GlobalDir)
	}

	return &Container{
		Source:       source,
		Recent:       recentStore,
		Origin:       gitremote.NewResolver(),
		Executor:     executor.NewClient(),
		ConfigLoader: configLoader,
		Logger:       logger,
		Clock:        domain.RealClock{},
		AppConfig:    appConfig,
		closer:       logger,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, source domain.IssueSource, recentStore domain.RecentRepository, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Source:    source,
		Recent:    recentStore,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// FetchPageUseCase returns a new FetchPage use case.
func (c *Container) FetchPageUseCase() *usecase.FetchPage {
	return usecase.NewFetchPage(c.Source, c.Logger)
}

// ListRecentUseCase returns a new ListRecent use case, or nil when there is no recent store.
func (c *Container) ListRecentUseCase() *usecase.ListRecent {
	if c.Recent == nil {
		return nil
	}
	return usecase.NewListRecent(c.Recent)
}

// RecordVisitUseCase returns a new RecordVisit use case, or nil when there is no recent store.
func (c *Container) RecordVisitUseCase() *usecase.RecordVisit {
	if c.Recent == nil {
		return nil
	}
	return usecase.NewRecordVisit(c.Recent, c.Clock, c.Logger)
}

// ResolveRepoUseCase returns a new ResolveRepo use case.
func (c *Container) ResolveRepoUseCase() *usecase.ResolveRepo {
	return usecase.NewResolveRepo(c.Origin, c.Logger)
}

// OpenURLUseCase returns a new OpenURL use case using the configured browser command.
func (c *Container) OpenURLUseCase() *usecase.OpenURL {
	return usecase.NewOpenURL(c.Executor, c.AppConfig.Browser.Command, c.Logger)
}

// RecentLimit returns the configured number of recent repositories to show.
func (c *Container) RecentLimit() int {
	return c.AppConfig.Recent.Limit
}
