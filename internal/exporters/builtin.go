package exporters

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// LoadBuiltinExporters returns the exporters bundled with Collurgy.
func LoadBuiltinExporters() ([]*Exporter, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin exporters: %w", err)
	}

	exporters := make([]*Exporter, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin exporter %s: %w", entry.Name(), err)
		}
		exp, err := parseExporter(data, "toml")
		if err != nil {
			return nil, fmt.Errorf("parse builtin exporter %s: %w", entry.Name(), err)
		}
		exp.Source = "builtin"
		exporters = append(exporters, exp)
	}

	sort.Slice(exporters, func(i, j int) bool {
		return exporters[i].Name < exporters[j].Name
	})

	return exporters, nil
}

// builtins parses the embedded set once per process.
var builtins = sync.OnceValues(LoadBuiltinExporters)

// Builtins returns a fresh copy of the embedded exporters.
func Builtins() ([]*Exporter, error) {
	exporters, err := builtins()
	if err != nil {
		return nil, err
	}
	out := make([]*Exporter, len(exporters))
	for i, exp := range exporters {
		clone := *exp
		clone.Extras = make(map[string]int, len(exp.Extras))
		for name, slot := range exp.Extras {
			clone.Extras[name] = slot
		}
		out[i] = &clone
	}
	return out, nil
}
