package layouts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/iconkit/web/src/templates/layouts"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Icons - iconkit", layouts.CalculateTitle("Icons"))
	assert.Equal(t, "iconkit", layouts.CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, layouts.Base("Icons", g.Text("body text")).Render(&buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Icons - iconkit</title>")
	assert.Contains(t, html, `href="/static/icons.css"`)
	assert.Contains(t, html, "htmx.org")
	assert.Contains(t, html, "body text")
}
