package exporters

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// ExporterSearchPaths returns exporter directories in increasing precedence:
// the system share directory, the user's config directory, then extra.
func ExporterSearchPaths(configDir string, extra ...string) []string {
	paths := make([]string, 0, 2+len(extra))
	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "collurgy", "exporters"))
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "exporters"))
	}
	for _, dir := range extra {
		if dir != "" {
			paths = append(paths, dir)
		}
	}
	return paths
}

// LoadCatalog builds a catalog from the built-in exporters followed by every
// search directory. Later definitions replace earlier ones with the same
// name. Unreadable user documents are logged and skipped.
func LoadCatalog(paths []string, logger zerolog.Logger) (*Catalog, error) {
	builtin, err := Builtins()
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog()
	catalog.Add(builtin...)

	for _, dir := range paths {
		loaded, err := LoadExportersFromDir(dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("skipping invalid exporter definitions")
		}
		for _, exp := range loaded {
			if prev, ok := catalog.byName[exp.Name]; ok {
				logger.Debug().
					Str("exporter", exp.Name).
					Str("source", exp.Source).
					Str("replaces", prev.Source).
					Msg("exporter overridden")
			}
			catalog.Add(exp)
		}
	}

	logger.Debug().Int("count", catalog.Len()).Msg("exporter catalog loaded")
	return catalog, nil
}
