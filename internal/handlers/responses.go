package handlers

import (
	"sort"

	"github.com/nfrund/iconkit/internal/icons"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IconResponse is the API view of one registered icon.
type IconResponse struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Family  string   `json:"family"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	ViewBox string   `json:"view_box"`
	Path    string   `json:"path,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	SVGURL  string   `json:"svg_url"`
}

// NewIconResponse builds the response for name. aliases maps alias -> target
// for the whole registry; only the ones pointing at name are kept.
func NewIconResponse(name string, glyph icons.Glyph, aliases map[string]string, withPath bool) *IconResponse {
	resp := &IconResponse{
		Name:    name,
		Label:   icons.Label(name),
		Family:  string(glyph.Family),
		Width:   glyph.Width,
		Height:  glyph.Height,
		ViewBox: glyph.ViewBox(),
		SVGURL:  "/icons/" + name + ".svg",
	}
	if withPath {
		resp.Path = glyph.Path
	}
	for alias, target := range aliases {
		if target == name {
			resp.Aliases = append(resp.Aliases, alias)
		}
	}
	sort.Strings(resp.Aliases)
	return resp
}
