package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/middleware"
	"github.com/nfrund/iconkit/internal/render"
	"github.com/nfrund/iconkit/internal/rendering"
	"github.com/nfrund/iconkit/web/src/templates/pages"
)

// Catalog is the read side of the icon registry the handlers need.
type Catalog interface {
	Resolve(name string) (icons.Glyph, bool)
	Entries() []icons.Entry
	Aliases() map[string]string
	Len() int
}

// IconHandler serves the gallery, standalone SVGs, component fragments and
// the JSON API.
type IconHandler struct {
	catalog    Catalog
	components *components.Registry
	renderer   rendering.Renderer
}

// NewIconHandler creates a new IconHandler.
func NewIconHandler(catalog Catalog, comps *components.Registry, renderer rendering.Renderer) *IconHandler {
	return &IconHandler{
		catalog:    catalog,
		components: comps,
		renderer:   renderer,
	}
}

// GalleryGet renders the gallery page.
func (h *IconHandler) GalleryGet(c echo.Context) error {
	page := pages.Gallery(pages.GalleryData{
		Resolver: h.catalog,
		Entries:  h.catalog.Entries(),
		Aliases:  h.catalog.Aliases(),
	})
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// SVGGet serves /icons/:name.svg as a standalone image.
func (h *IconHandler) SVGGet(c echo.Context) error {
	name, ok := strings.CutSuffix(c.Param("name"), ".svg")
	if !ok || name == "" {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	glyph, ok := h.catalog.Resolve(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "icon not found: "+name)
	}

	var buf bytes.Buffer
	if err := render.SVG(name, glyph).Render(&buf); err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// ComponentGet renders one component from the namespace as an HTML fragment.
// Query parameters become the component's props.
func (h *IconHandler) ComponentGet(c echo.Context) error {
	tag := c.Param("tag")
	props := components.Props{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			props[key] = values[0]
		}
	}

	node, err := h.components.Build(tag, props)
	switch {
	case errors.Is(err, components.ErrUnknownTag):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, render.ErrMissingName):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	middleware.FromContext(c.Request().Context()).Debug("Rendering component", "tag", tag, "props", len(props))
	return h.renderer.RenderPage(c, http.StatusOK, node)
}

// ListAPI returns every registered icon, sorted by name.
func (h *IconHandler) ListAPI(c echo.Context) error {
	aliases := h.catalog.Aliases()
	entries := h.catalog.Entries()
	resp := make([]*IconResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, NewIconResponse(e.Name, e.Glyph, aliases, false))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAPI returns one icon, resolving aliases. The response is named after
// the requested name.
func (h *IconHandler) GetAPI(c echo.Context) error {
	name := c.Param("name")
	glyph, ok := h.catalog.Resolve(name)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "icon_not_found",
			Message: "no icon registered as " + name,
		})
	}
	return c.JSON(http.StatusOK, NewIconResponse(name, glyph, h.catalog.Aliases(), true))
}

// HealthGet reports liveness along with the catalog size.
func (h *IconHandler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"icons":  h.catalog.Len(),
	})
}
