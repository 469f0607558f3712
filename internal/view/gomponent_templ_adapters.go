package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// GomponentToTemplAdapter lets a gomponents node be used wherever a
// templ.Component is expected, e.g. inside a templ layout.
type GomponentToTemplAdapter struct {
	Node g.Node
}

// Render implements templ.Component. The context is not forwarded because
// gomponents nodes render from their own state.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}
