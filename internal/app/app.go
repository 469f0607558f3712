// Package app wires the application's services together.
package app

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/iconkit/internal/catalog"
	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/config"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/render"
	"github.com/nfrund/iconkit/internal/rendering"
	"github.com/nfrund/iconkit/internal/server"
)

// NewInjector returns an injector that builds every service lazily from cfg.
// fsys is where the overlay catalog, if configured, is read from.
func NewInjector(cfg config.Provider, fsys afero.Fs) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fsys)
	do.Provide(i, provideRegistry)
	do.Provide(i, provideComponents)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideServer)
	return i
}

// provideRegistry loads the built-in catalog and the optional overlay, then
// seals the registry so nothing registers after startup.
func provideRegistry(i do.Injector) (*icons.Registry, error) {
	cfg := do.MustInvoke[config.Provider](i)

	var overlays []*catalog.Catalog
	if path := cfg.GetOverlayPath(); path != "" {
		overlay, err := catalog.LoadOverlay(do.MustInvoke[afero.Fs](i), path)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, overlay)
	}

	reg := icons.NewRegistry()
	if err := catalog.Initialize(reg, overlays...); err != nil {
		return nil, fmt.Errorf("failed to initialize icon registry: %w", err)
	}
	reg.Seal()
	return reg, nil
}

func provideComponents(i do.Injector) (*components.Registry, error) {
	reg, err := do.Invoke[*icons.Registry](i)
	if err != nil {
		return nil, err
	}
	comps := components.NewRegistry()
	if err := render.Register(comps, reg); err != nil {
		return nil, err
	}
	slog.Debug("Component namespace ready", "tags", comps.Tags())
	return comps, nil
}

func provideRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	reg, err := do.Invoke[*icons.Registry](i)
	if err != nil {
		return nil, err
	}
	comps, err := do.Invoke[*components.Registry](i)
	if err != nil {
		return nil, err
	}
	return server.New(
		do.MustInvoke[config.Provider](i),
		reg,
		comps,
		do.MustInvoke[*rendering.UniversalRenderer](i),
	), nil
}

// Registry returns the initialized, sealed icon registry.
func Registry(i do.Injector) (*icons.Registry, error) {
	return do.Invoke[*icons.Registry](i)
}

// Server returns the HTTP server with routes registered.
func Server(i do.Injector) (*server.Server, error) {
	return do.Invoke[*server.Server](i)
}
