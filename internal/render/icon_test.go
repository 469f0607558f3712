package render_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/render"
)

const checkPath = "M32 288l64-64 96 96 224-224 64 64-288 288z"

func newRegistry(t *testing.T) *icons.Registry {
	t.Helper()
	reg := icons.NewRegistry()
	require.NoError(t, reg.Register("check", icons.Glyph{Name: "check", Family: icons.Solid, Width: 512, Height: 512, Path: checkPath}))
	require.NoError(t, reg.Register("sticky-note", icons.Glyph{Name: "sticky-note", Family: icons.Regular, Width: 448, Height: 512, Path: "M1 1z"}))
	return reg
}

func renderNode(t *testing.T, node g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestIconNode(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		name        string
		icon        string
		opts        []render.Option
		contains    []string
		notContains []string
	}{
		{
			name: "plain icon",
			icon: "check",
			contains: []string{
				`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512" class="icon icon-check"`,
				`data-icon="check"`,
				`data-prefix="solid"`,
				`<path fill="currentColor" d="` + checkPath + `"></path></svg>`,
			},
			notContains: []string{"style="},
		},
		{
			name:     "presentation options",
			icon:     "check",
			opts:     []render.Option{render.WithSize("2x"), render.WithFixedWidth(), render.WithSpin(), render.WithRotation(90), render.WithClass("text-green")},
			contains: []string{`class="icon icon-check icon-2x icon-fw icon-spin icon-rotate-90 text-green"`},
		},
		{
			name:     "color",
			icon:     "check",
			opts:     []render.Option{render.WithColor("#ff0000")},
			contains: []string{`style="color: #ff0000"`},
		},
		{
			name:        "invalid options are ignored",
			icon:        "check",
			opts:        []render.Option{render.WithSize("huge"), render.WithRotation(45), render.WithColor("red;background:url(x)"), render.WithClass(`"><script>`)},
			contains:    []string{`class="icon icon-check"`},
			notContains: []string{"huge", "rotate", "style=", "script"},
		},
		{
			name:     "viewbox follows glyph size",
			icon:     "sticky-note",
			contains: []string{`viewBox="0 0 448 512"`, `data-prefix="regular"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderNode(t, render.IconNode(reg, tt.icon, tt.opts...))

			for _, expected := range tt.contains {
				assert.Contains(t, html, expected)
			}
			for _, unexpected := range tt.notContains {
				assert.NotContains(t, html, unexpected)
			}
		})
	}
}

func TestIconNodeUnknown(t *testing.T) {
	reg := newRegistry(t)

	t.Run("renders nothing", func(t *testing.T) {
		assert.Empty(t, renderNode(t, render.IconNode(reg, "does-not-exist")))
	})

	t.Run("renders placeholder", func(t *testing.T) {
		html := renderNode(t, render.IconNode(reg, "does-not-exist", render.WithPlaceholder(), render.WithSize("lg")))
		assert.Equal(t, `<span class="icon icon-lg icon-missing" data-icon="does-not-exist" aria-hidden="true"></span>`, html)
	})

	t.Run("nil resolver", func(t *testing.T) {
		assert.Empty(t, renderNode(t, render.IconNode(nil, "check")))
	})
}

func TestIconNodeResolvesAtRenderTime(t *testing.T) {
	reg := icons.NewRegistry()
	node := render.IconNode(reg, "check")
	assert.Empty(t, renderNode(t, node))

	require.NoError(t, reg.Register("check", icons.Glyph{Name: "check", Family: icons.Solid, Width: 512, Height: 512, Path: checkPath}))
	assert.Contains(t, renderNode(t, node), checkPath)
}

func TestIconNodeConcurrentRender(t *testing.T) {
	reg := newRegistry(t)
	reg.Seal()
	node := render.IconNode(reg, "check", render.WithSize("lg"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf strings.Builder
			if err := node.Render(&buf); err != nil {
				t.Errorf("render failed: %v", err)
				return
			}
			if !strings.Contains(buf.String(), checkPath) {
				t.Errorf("unexpected output: %s", buf.String())
			}
		}()
	}
	wg.Wait()
}

func TestIconTemplComponent(t *testing.T) {
	reg := newRegistry(t)

	var buf strings.Builder
	err := render.Icon(reg, "check", render.WithSize("sm")).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `class="icon icon-check icon-sm"`)
}

func TestRegister(t *testing.T) {
	reg := newRegistry(t)
	namespace := components.NewRegistry()
	require.NoError(t, render.Register(namespace, reg))
	assert.Equal(t, []string{render.Tag}, namespace.Tags())

	t.Run("props are passed through", func(t *testing.T) {
		var buf strings.Builder
		err := namespace.Render(&buf, "icon", components.Props{"name": "check", "size": "lg", "spin": "", "fixed-width": "true", "rotation": "180"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `class="icon icon-check icon-lg icon-fw icon-spin icon-rotate-180"`)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := namespace.Build("icon", components.Props{"size": "lg"})
		assert.ErrorIs(t, err, render.ErrMissingName)
	})

	t.Run("unknown name degrades", func(t *testing.T) {
		var buf strings.Builder
		err := namespace.Render(&buf, "icon", components.Props{"name": "nope", "placeholder": "1"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "icon-missing")
	})

	t.Run("false flags", func(t *testing.T) {
		var buf strings.Builder
		err := namespace.Render(&buf, "icon", components.Props{"name": "check", "spin": "false", "fixed-width": "nope"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `class="icon icon-check"`)
	})
}
