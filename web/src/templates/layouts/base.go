package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is the htmx build the gallery previews are written against.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML5 document shell.
func Base(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/icons.css")),
			h.Script(h.Src(htmxSrc), g.Attr("defer")),
		},
		Body: body,
	})
}
