package exporters

import (
	"fmt"
	"sort"
)

// Catalog maps exporter names to records. It is not mutated after loading
// and may be shared across concurrent renders.
type Catalog struct {
	byName map[string]*Exporter
}

// NewCatalog returns a catalog holding exporters; later entries win.
func NewCatalog(exporters ...*Exporter) *Catalog {
	c := &Catalog{byName: make(map[string]*Exporter, len(exporters))}
	c.Add(exporters...)
	return c
}

// Add inserts exporters, replacing any existing record with the same name.
func (c *Catalog) Add(exporters ...*Exporter) {
	for _, exp := range exporters {
		if exp == nil {
			continue
		}
		c.byName[exp.Name] = exp
	}
}

// Get returns the exporter registered under name.
func (c *Catalog) Get(name string) (*Exporter, error) {
	exp, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExporterNotFound, name)
	}
	return exp, nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the exporters sorted by name.
func (c *Catalog) List() []*Exporter {
	names := c.Names()
	out := make([]*Exporter, 0, len(names))
	for _, name := range names {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of exporters.
func (c *Catalog) Len() int {
	return len(c.byName)
}
