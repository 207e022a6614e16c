// Package cli implements the collurgy command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/collurgy/collurgy/internal/config"
	"github.com/collurgy/collurgy/internal/logging"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile        string
	themeFile      string
	jsonOutput     bool
	noColor        bool
	nonInteractive bool
	noProgress     bool
	logLevel       string
	logFormat      string

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "collurgy",
	Short:         "Generate and export terminal color palettes",
	Long:          "Collurgy derives a 16-color terminal palette from a few perceptual parameters and renders it through exporter templates.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/collurgy/config.yaml)")
	flags.StringVar(&themeFile, "theme", "", "theme document (.toml, .json or .yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output as JSON")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; assume defaults")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"theme":          "theme",
		"logging.level":  "log-level",
		"logging.format": "log-format",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		NoColor: noColor,
		Output:  cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.Component("cli")
	logger.Debug().Str("theme", cfg.Theme).Str("library", cfg.LibraryPath).Msg("config loaded")
	return nil
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.DefaultConfig()
}

// loadTheme reads the configured theme. A missing default theme falls back
// to the built-in one; a missing explicit --theme is an error.
func loadTheme() (*theme.Theme, string, error) {
	path := currentConfig().Theme
	t, err := theme.Load(path)
	if err == nil {
		return t, path, nil
	}
	if errors.Is(err, os.ErrNotExist) && themeFile == "" {
		logger.Debug().Str("path", path).Msg("no theme file, using default theme")
		return theme.Default(), "", nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", &PreflightError{
			Message:  fmt.Sprintf("theme file %s does not exist", path),
			Hint:     "Create one from the default theme",
			NextStep: "collurgy theme init " + path,
		}
	}
	return nil, "", err
}
