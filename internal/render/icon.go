// Package render provides the icon rendering primitive.
//
// IconNode resolves an icon name against a registry when the node is
// rendered, not when it is built, and writes an inline SVG element. An
// unknown name renders nothing, or an empty placeholder box when asked to,
// so a missing icon never breaks the surrounding view.
package render

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/iconkit/internal/components"
	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/view"
)

// Tag is the component namespace tag the icon primitive is registered under.
const Tag = "icon"

// ErrMissingName is returned when the icon component is invoked without a name.
var ErrMissingName = errors.New("icon component requires a name")

// Resolver looks up glyphs by name. *icons.Registry satisfies it.
type Resolver interface {
	Resolve(name string) (icons.Glyph, bool)
}

// IconNode returns a node that draws the named icon.
func IconNode(res Resolver, name string, opts ...Option) g.Node {
	o := newOptions(opts)
	return g.NodeFunc(func(w io.Writer) error {
		var (
			glyph icons.Glyph
			ok    bool
		)
		if res != nil {
			glyph, ok = res.Resolve(name)
		}
		if !ok {
			slog.Debug("Icon not found", "name", name)
			if !o.placeholder {
				return nil
			}
			return placeholder(name, o).Render(w)
		}
		return svg(name, glyph, o).Render(w)
	})
}

// Icon is IconNode adapted to templ layouts.
func Icon(res Resolver, name string, opts ...Option) templ.Component {
	return view.AdaptGomponentToTempl(IconNode(res, name, opts...))
}

// SVG draws an already resolved glyph as a standalone SVG element.
func SVG(name string, glyph icons.Glyph, opts ...Option) g.Node {
	return svg(name, glyph, newOptions(opts))
}

func svg(name string, glyph icons.Glyph, o options) g.Node {
	style := o.style()
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", glyph.ViewBox()),
		h.Class(o.classList(name)),
		g.Attr("data-icon", name),
		g.Attr("data-prefix", string(glyph.Family)),
		g.Attr("aria-hidden", "true"),
		g.Attr("focusable", "false"),
		g.If(style != "", g.Attr("style", style)),
		g.El("path",
			g.Attr("fill", "currentColor"),
			g.Attr("d", glyph.Path),
		),
	)
}

func placeholder(name string, o options) g.Node {
	return h.Span(
		h.Class(o.classList("")+" icon-missing"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// Register installs the icon primitive in the component namespace under Tag.
// The name prop is required; every other prop is presentation only.
func Register(reg *components.Registry, res Resolver) error {
	return reg.Register(Tag, func(props components.Props) (g.Node, error) {
		name := strings.TrimSpace(props["name"])
		if name == "" {
			return nil, ErrMissingName
		}
		return IconNode(res, name, OptionsFromProps(props)...), nil
	})
}
