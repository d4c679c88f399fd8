package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/issue-browser/internal/domain"
)

// configFile mirrors the TOML layout read by the config loader.
type configFile struct {
	API struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"api"`
	Browser struct {
		Command string `toml:"command"`
	} `toml:"browser"`
	Recent struct {
		Limit int `toml:"limit"`
	} `toml:"recent"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func toConfigFile(cfg *domain.Config) configFile {
	var f configFile
	f.API.BaseURL = cfg.API.BaseURL
	f.API.Timeout = cfg.API.Timeout.String()
	f.Browser.Command = cfg.Browser.Command
	f.Recent.Limit = cfg.Recent.Limit
	f.Log.Level = cfg.Log.Level
	return f
}

// newConfigCommand creates the config command.
func newConfigCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage issue-browser configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(d))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(d))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were looked up and the final merged configuration,
including the --api-url override.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.get()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if c.Config.GlobalDir != "" {
				printConfigSource(w, filepath.Join(c.Config.GlobalDir, domain.ConfigFileName))
			}
			if c.Config.WorkDir != "" {
				printConfigSource(w, filepath.Join(c.Config.WorkDir, domain.LocalConfigFileName))
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, c.AppConfig)
		},
	}
}

func printConfigSource(w io.Writer, path string) {
	if _, err := os.Stat(path); err != nil {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s\n", path)
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(toConfigFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file holding the default values to stdout.

It does not read existing configuration files, so it works even if they are broken.`,
		Args: cobra.NoArgs,
		// Overrides the root pre-run: no container is needed
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return formatEffectiveConfig(cmd.OutOrStdout(), domain.NewDefaultConfig())
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(d *deps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the global config file",
		Long: `Write the configuration template to the global config file.

Fails if the file already exists unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.get()
			if err != nil {
				return err
			}
			if c.Config.GlobalDir == "" {
				return errors.New("no global config directory (home directory unknown)")
			}
			path := filepath.Join(c.Config.GlobalDir, domain.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := toml.Marshal(toConfigFile(domain.NewDefaultConfig()))
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			if err := os.MkdirAll(c.Config.GlobalDir, 0o750); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
