package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a persisted document syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported document format.
func Formats() []Format {
	return []Format{FormatTOML, FormatJSON, FormatYAML}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported theme file extension %q", filepath.Ext(path))
	}
}

// Marshal encodes t in the given format.
func Marshal(t *Theme, format Format) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(t)
	case FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported theme format %q", format)
	}
}

// Unmarshal decodes a theme document. Fields absent from the document keep
// their Default values, so documents written before model and high2023
// existed load as CIELCH without compensation.
func Unmarshal(data []byte, format Format) (*Theme, error) {
	t := Default()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, t)
	case FormatJSON:
		err = json.Unmarshal(data, t)
	case FormatYAML:
		err = yaml.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("unsupported theme format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidTheme, format, err)
	}

	if t.Extras == nil {
		t.Extras = map[string]map[string]int{}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a theme document, choosing the format from the extension.
func Load(path string) (*Theme, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	t, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// Save writes t to path in the format implied by its extension.
func Save(path string, t *Theme) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(t, format)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}
	return nil
}
