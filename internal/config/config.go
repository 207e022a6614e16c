// Package config loads Collurgy settings from a YAML file, the environment
// and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/collurgy/collurgy/internal/logging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. COLLURGY_LOGGING_LEVEL.
const EnvPrefix = "COLLURGY"

// Config is the resolved application configuration.
type Config struct {
	// Theme is the default theme document path.
	Theme string `mapstructure:"theme"`
	// ExporterDirs are searched after the built-in locations.
	ExporterDirs []string `mapstructure:"exporter_dirs"`
	// LibraryPath is the SQLite file holding saved themes.
	LibraryPath string        `mapstructure:"library_path"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Preview     PreviewConfig `mapstructure:"preview"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PreviewConfig tunes terminal previews.
type PreviewConfig struct {
	Marker  string `mapstructure:"marker"` // hex color for out-of-gamut cells
	Columns int    `mapstructure:"columns"`
	Rows    int    `mapstructure:"rows"`
}

// Dir returns the user configuration directory for Collurgy, honoring
// XDG_CONFIG_HOME.
func Dir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "collurgy")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "collurgy")
	}
	return filepath.Join(".config", "collurgy")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Theme:        filepath.Join(dir, "theme.toml"),
		ExporterDirs: []string{},
		LibraryPath:  filepath.Join(dir, "library.db"),
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		Preview: PreviewConfig{
			Marker:  "808080",
			Columns: 48,
			Rows:    12,
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("exporter_dirs", cfg.ExporterDirs)
	v.SetDefault("library_path", cfg.LibraryPath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("preview.marker", cfg.Preview.Marker)
	v.SetDefault("preview.columns", cfg.Preview.Columns)
	v.SetDefault("preview.rows", cfg.Preview.Rows)
}

// Load resolves configuration into a Config. v may carry flag bindings; nil
// uses a fresh instance. An explicit path must exist; otherwise config.yaml
// in Dir is read when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Theme = ExpandPath(cfg.Theme)
	cfg.LibraryPath = ExpandPath(cfg.LibraryPath)
	for i, dir := range cfg.ExporterDirs {
		cfg.ExporterDirs[i] = ExpandPath(dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, err := c.Preview.MarkerColor(); err != nil {
		return err
	}
	if c.Preview.Columns <= 0 || c.Preview.Rows <= 0 {
		return fmt.Errorf("preview: columns and rows must be positive")
	}
	return nil
}

// MarkerColor parses Marker, with or without a leading '#'.
func (p PreviewConfig) MarkerColor() (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(p.Marker), "#")
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("preview.marker: %w", err)
	}
	return c, nil
}

// ExpandPath expands a leading "~" and environment variables.
func ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}
