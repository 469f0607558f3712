package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/config"
	"github.com/nfrund/iconkit/internal/handlers"
	"github.com/nfrund/iconkit/internal/middleware"
	"github.com/nfrund/iconkit/internal/rendering"
	"github.com/nfrund/iconkit/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         config.Provider
	iconHandler *handlers.IconHandler
}

// New creates a new Server. The catalog should be fully initialized before
// it is passed in; the server only reads from it.
func New(cfg config.Provider, catalog handlers.Catalog, comps *components.Registry, renderer *rendering.UniversalRenderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:           e,
		Cfg:         cfg,
		iconHandler: handlers.NewIconHandler(catalog, comps, renderer),
	}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling logs unhandled errors with a stack trace. API routes
// get a JSON error body, everything else plain text.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			respErr = c.JSON(code, handlers.ErrorResponse{
				Code:    strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"),
				Message: message,
			})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}
