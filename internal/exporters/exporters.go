// Package exporters renders computed palettes through declarative text
// templates and manages the catalog of available exporters.
package exporters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrExporterNameRequired is returned when a record has no name.
	ErrExporterNameRequired = errors.New("exporter name is required")
	// ErrExporterFormatterRequired is returned when a record has no template.
	ErrExporterFormatterRequired = errors.New("exporter formatter is required")
	// ErrExporterNotFound is returned when a catalog lookup misses.
	ErrExporterNotFound = errors.New("exporter not found")
)

// Exporter is a named template that turns a palette into target text.
type Exporter struct {
	Name        string         `toml:"name" json:"name" yaml:"name"`
	Description string         `toml:"description,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
	Formatter   string         `toml:"formatter" json:"formatter" yaml:"formatter"`
	Path        string         `toml:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	Extras      map[string]int `toml:"extras,omitempty" json:"extras,omitempty" yaml:"extras,omitempty"`
	Source      string         `toml:"-" json:"-" yaml:"-"` // file path or "builtin"
}

// Validate checks that the record can be rendered.
func (e *Exporter) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrExporterNameRequired
	}
	if e.Formatter == "" {
		return ErrExporterFormatterRequired
	}
	return nil
}

// OutputPath expands the exporter's path hint. A leading "~" resolves to the
// user's home directory. It returns "" when no hint is set.
func (e *Exporter) OutputPath() (string, error) {
	path := strings.TrimSpace(e.Path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home for %s: %w", e.Name, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(os.ExpandEnv(path)), nil
}
