package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/handlers"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/render"
	"github.com/nfrund/iconkit/internal/rendering"
)

func setup(t *testing.T) *echo.Echo {
	t.Helper()

	reg := icons.NewRegistry()
	require.NoError(t, reg.RegisterAll([]icons.Entry{
		{Name: "times", Glyph: icons.Glyph{Name: "times", Family: icons.Solid, Width: 352, Height: 512, Path: "M1 1z", Aliases: []string{"close"}}},
		{Name: "sticky-note", Glyph: icons.Glyph{Name: "sticky-note", Family: icons.Solid, Width: 448, Height: 512, Path: "M2 2z"}},
		{Name: "sticky-note", Glyph: icons.Glyph{Name: "sticky-note", Family: icons.Regular, Width: 448, Height: 512, Path: "M3 3z"}},
	}))

	comps := components.NewRegistry()
	require.NoError(t, render.Register(comps, reg))

	h := handlers.NewIconHandler(reg, comps, rendering.NewUniversalRenderer())
	e := echo.New()
	e.GET("/icons", h.GalleryGet)
	e.GET("/icons/:name", h.SVGGet)
	e.GET("/components/:tag", h.ComponentGet)
	e.GET("/api/icons", h.ListAPI)
	e.GET("/api/icons/:name", h.GetAPI)
	e.GET("/health", h.HealthGet)
	return e
}

func do(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGalleryGet(t *testing.T) {
	rec := do(setup(t), "/icons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "2 icons registered.")
	assert.Contains(t, rec.Body.String(), `href="/icons/times.svg"`)
}

func TestSVGGet(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{"registered name", "/icons/times.svg", http.StatusOK, `d="M1 1z"`},
		{"last write wins", "/icons/sticky-note.svg", http.StatusOK, `d="M3 3z"`},
		{"alias", "/icons/close.svg", http.StatusOK, `data-icon="close"`},
		{"unknown", "/icons/nope.svg", http.StatusNotFound, ""},
		{"missing extension", "/icons/times", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
				assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
				assert.Contains(t, rec.Body.String(), `xmlns="http://www.w3.org/2000/svg"`)
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestComponentGet(t *testing.T) {
	e := setup(t)

	t.Run("icon with props", func(t *testing.T) {
		rec := do(e, "/components/icon?name=times&size=5x&spin=")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="icon icon-times icon-5x icon-spin"`)
	})

	t.Run("unknown icon renders empty", func(t *testing.T) {
		rec := do(e, "/components/icon?name=nope")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		rec := do(e, "/components/icon")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown tag", func(t *testing.T) {
		rec := do(e, "/components/button?name=times")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListAPI(t *testing.T) {
	rec := do(setup(t), "/api/icons")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []handlers.IconResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "sticky-note", got[0].Name)
	assert.Equal(t, "Sticky Note", got[0].Label)
	assert.Equal(t, "regular", got[0].Family)
	assert.Empty(t, got[0].Path)

	assert.Equal(t, "times", got[1].Name)
	assert.Equal(t, []string{"close"}, got[1].Aliases)
	assert.Equal(t, "/icons/times.svg", got[1].SVGURL)
}

func TestGetAPI(t *testing.T) {
	e := setup(t)

	t.Run("found", func(t *testing.T) {
		rec := do(e, "/api/icons/times")
		require.Equal(t, http.StatusOK, rec.Code)

		var got handlers.IconResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "0 0 352 512", got.ViewBox)
		assert.Equal(t, "M1 1z", got.Path)
	})

	t.Run("not found", func(t *testing.T) {
		rec := do(e, "/api/icons/nope")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var got handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "icon_not_found", got.Code)
	})
}

func TestHealthGet(t *testing.T) {
	rec := do(setup(t), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","icons":2}`, rec.Body.String())
}
