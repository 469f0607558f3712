package catalog

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/nfrund/iconkit/internal/icons"
)

// Initialize applies the built-in catalog and then every overlay, in order,
// to reg. It is safe to call more than once: re-applying the same catalogs
// leaves the table unchanged, and a sealed registry is left alone.
func Initialize(reg *icons.Registry, overlays ...*Catalog) error {
	if reg.Sealed() {
		slog.Debug("Icon registry already sealed, skipping initialization")
		return nil
	}

	base, err := Builtin()
	if err != nil {
		return fmt.Errorf("failed to load built-in icon catalog: %w", err)
	}

	catalogs := append([]*Catalog{base}, overlays...)
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if err := c.Apply(reg); err != nil {
			return fmt.Errorf("failed to apply icon catalog: %w", err)
		}
		slog.Debug("Applied icon catalog", "source", c.Source, "icons", len(c.Entries))
	}

	slog.Info("Icon registry initialized", "icons", reg.Len(), "aliases", len(reg.Aliases()), "overlays", len(overlays))
	return nil
}

// LoadOverlay reads an additional catalog from fsys. Overlays are applied
// once, at startup, after the built-in catalog.
func LoadOverlay(fsys afero.Fs, path string) (*Catalog, error) {
	src, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon overlay %s: %w", path, err)
	}
	return Parse(src, path)
}
