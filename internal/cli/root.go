// Package cli provides the command-line interface for issue-browser.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/usecase"
)

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// deps holds the container shared by all commands of one invocation.
type deps struct {
	factory   ContainerFactory
	container *app.Container
	apiURL    string
	version   string
}

// get returns the container, building it on first use.
func (d *deps) get() (*app.Container, error) {
	if d.container != nil {
		return d.container, nil
	}
	if d.factory == nil {
		return nil, errors.New("no container factory")
	}
	c, err := d.factory(app.Options{APIURL: d.apiURL, Version: d.version})
	if err != nil {
		return nil, err
	}
	d.container = c
	return c, nil
}

func (d *deps) close() {
	if d.container != nil {
		_ = d.container.Close()
	}
}

// NewRootCommand creates the root command for issue-browser.
// It receives the container factory for dependency injection and version for display.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	d := &deps{factory: factory, version: version}

	root := &cobra.Command{
		Use:   "issues [owner/repo]",
		Short: "Browse GitHub issues in the terminal",
		Long: `issue-browser shows the issues of a GitHub repository five at a time,
filtered by state (open, closed, all) with previous/next pagination.

The repository is taken from the argument (URL-encoded "owner%2Frepo" is
accepted), else from the origin remote of the current git repository,
else it is asked for interactively.`,
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.get()
			if err != nil {
				return err
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			d.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := d.get()
			if err != nil {
				return err
			}

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			out, err := c.ResolveRepoUseCase().Execute(usecase.ResolveRepoInput{
				Arg: arg,
				Dir: c.Config.WorkDir,
			})
			if err != nil {
				return err
			}
			return launchTUIFunc(cmd.Context(), c, out.Repo)
		},
	}

	root.PersistentFlags().StringVar(&d.apiURL, "api-url", "", "GitHub REST API base URL (overrides [api].base_url)")

	root.AddCommand(
		newPageCommand(d),
		newRecentCommand(d),
		newConfigCommand(d),
	)

	return root
}
