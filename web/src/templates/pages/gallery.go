package pages

import (
	"net/url"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/iconkit/internal/icons"
	"github.com/nfrund/iconkit/internal/render"
	"github.com/nfrund/iconkit/web/src/templates/layouts"
)

// GalleryData is what the gallery page needs to list the catalog.
type GalleryData struct {
	Resolver render.Resolver
	Entries  []icons.Entry
	// Aliases maps alias -> target, as returned by icons.Registry.Aliases.
	Aliases map[string]string
}

// Gallery renders every registered icon as a tile. Clicking a tile loads a
// large preview through the icon component endpoint.
func Gallery(data GalleryData) g.Node {
	byTarget := make(map[string][]string)
	for alias, target := range data.Aliases {
		byTarget[target] = append(byTarget[target], alias)
	}
	for _, names := range byTarget {
		sort.Strings(names)
	}

	return layouts.Base("Icons",
		h.Main(h.Class("gallery"),
			h.H1(g.Text("Icons")),
			h.P(g.Textf("%d icons registered.", len(data.Entries))),
			h.Div(h.ID("preview"), h.Class("preview")),
			h.Ul(h.Class("icon-grid"),
				g.Map(data.Entries, func(e icons.Entry) g.Node {
					return iconTile(data.Resolver, e, byTarget[e.Name])
				}),
			),
		),
	)
}

func iconTile(res render.Resolver, e icons.Entry, aliases []string) g.Node {
	return h.Li(h.Class("icon-tile"),
		g.Attr("data-family", string(e.Glyph.Family)),
		hx.Get(PreviewURL(e.Name)),
		hx.Target("#preview"),
		hx.Trigger("click"),
		render.IconNode(res, e.Name, render.WithSize("2x"), render.WithFixedWidth()),
		h.A(h.Href("/icons/"+url.PathEscape(e.Name)+".svg"), g.Text(e.Name)),
		h.Span(g.Text(icons.Label(e.Name))),
		g.If(len(aliases) > 0, h.Small(g.Text(strings.Join(aliases, ", ")))),
	)
}

// PreviewURL is the component endpoint a tile loads its preview from.
func PreviewURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("size", "5x")
	return "/components/" + render.Tag + "?" + q.Encode()
}
