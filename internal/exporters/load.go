package exporters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// documentFormat returns the decoder name for an exporter file, or "" when
// the extension is not an exporter document.
func documentFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}

// LoadExporter reads a single exporter definition from disk.
func LoadExporter(path string) (*Exporter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("exporter path is required")
	}

	format := documentFormat(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported exporter file %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exporter %s: %w", path, err)
	}

	exp, err := parseExporter(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse exporter %s: %w", path, err)
	}
	exp.Source = path
	return exp, nil
}

// LoadExportersFromDir loads every exporter document in dir, in file name
// order. A missing directory yields no exporters. Documents that fail to
// parse are skipped and reported together in the returned error.
func LoadExportersFromDir(dir string) ([]*Exporter, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Exporter{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Exporter{}, nil
		}
		return nil, fmt.Errorf("read exporters dir %s: %w", dir, err)
	}

	exporters := make([]*Exporter, 0, len(entries))
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || documentFormat(entry.Name()) == "" {
			continue
		}
		exp, err := LoadExporter(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		exporters = append(exporters, exp)
	}

	return exporters, errors.Join(errs...)
}

func parseExporter(data []byte, format string) (*Exporter, error) {
	var exp Exporter

	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &exp)
	case "yaml":
		err = yaml.Unmarshal(data, &exp)
	case "json":
		err = json.Unmarshal(data, &exp)
	default:
		err = fmt.Errorf("unsupported exporter format %q", format)
	}
	if err != nil {
		return nil, err
	}

	exp.Name = strings.TrimSpace(exp.Name)
	exp.Description = strings.TrimSpace(exp.Description)
	if err := exp.Validate(); err != nil {
		return nil, err
	}

	return &exp, nil
}
