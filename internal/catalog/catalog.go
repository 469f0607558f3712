// Package catalog loads icon catalogs and initializes icon registries from them.
//
// Catalogs are HCL documents made of three block types:
//
//	icon "sticky-note" {
//	  family  = "regular"            # optional, defaults to "solid"
//	  width   = 448
//	  height  = 512
//	  path    = "M448 348.106V80..."
//	  aliases = ["note"]             # optional
//	}
//
//	alias "settings" {
//	  target = "cog"
//	}
//
//	prefer "sticky-note" {
//	  family = "regular"
//	}
//
// Icon blocks are registered in document order, so a later block with the
// same name replaces an earlier one. The built-in catalog is embedded in the
// binary and mirrors the editor's icon set.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/nfrund/iconkit/internal/icons"
)

//go:embed catalog.hcl
var builtinSource []byte

const builtinFilename = "catalog.hcl"

type iconBlock struct {
	Name    string   `hcl:"name,label"`
	Family  string   `hcl:"family,optional"`
	Width   int      `hcl:"width"`
	Height  int      `hcl:"height"`
	Path    string   `hcl:"path"`
	Aliases []string `hcl:"aliases,optional"`
}

type aliasBlock struct {
	Name   string `hcl:"name,label"`
	Target string `hcl:"target"`
}

type preferBlock struct {
	Name   string `hcl:"name,label"`
	Family string `hcl:"family"`
}

type document struct {
	Icons   []iconBlock   `hcl:"icon,block"`
	Aliases []aliasBlock  `hcl:"alias,block"`
	Prefer  []preferBlock `hcl:"prefer,block"`
}

// Alias is an explicit alias declared by a catalog.
type Alias struct {
	Name   string
	Target string
}

// Preference pins a short name to a family.
type Preference struct {
	Name   string
	Family icons.Family
}

// Catalog is a parsed icon catalog, ready to be applied to a registry.
type Catalog struct {
	Source      string
	Entries     []icons.Entry
	Aliases     []Alias
	Preferences []Preference
}

// Parse decodes an HCL catalog. Every glyph is validated, so a broken
// catalog fails here instead of at render time.
func Parse(src []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse icon catalog %s: %w", filename, diags)
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode icon catalog %s: %w", filename, diags)
	}

	c := &Catalog{
		Source:  filename,
		Entries: make([]icons.Entry, 0, len(doc.Icons)),
	}
	for _, block := range doc.Icons {
		family := icons.Family(strings.TrimSpace(block.Family))
		if family == "" {
			family = icons.Solid
		}
		g := icons.Glyph{
			Name:    block.Name,
			Family:  family,
			Width:   block.Width,
			Height:  block.Height,
			Path:    strings.TrimSpace(block.Path),
			Aliases: block.Aliases,
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("%s: icon %q: %w", filename, block.Name, err)
		}
		c.Entries = append(c.Entries, icons.Entry{Name: block.Name, Glyph: g})
	}
	for _, block := range doc.Aliases {
		c.Aliases = append(c.Aliases, Alias{Name: block.Name, Target: block.Target})
	}
	for _, block := range doc.Prefer {
		family := icons.Family(block.Family)
		if !family.Valid() {
			return nil, fmt.Errorf("%s: prefer %q: %w: %q", filename, block.Name, icons.ErrUnknownFamily, block.Family)
		}
		c.Preferences = append(c.Preferences, Preference{Name: block.Name, Family: family})
	}
	return c, nil
}

var builtin = sync.OnceValues(func() (*Catalog, error) {
	return Parse(builtinSource, builtinFilename)
})

// Builtin returns the embedded catalog. It is parsed once per process.
func Builtin() (*Catalog, error) {
	return builtin()
}

// Apply registers the catalog's icons, aliases and preferences on reg.
// Applying the same catalog twice leaves the registry unchanged.
func (c *Catalog) Apply(reg *icons.Registry) error {
	if err := reg.RegisterAll(c.Entries); err != nil {
		return fmt.Errorf("%s: %w", c.Source, err)
	}
	for _, a := range c.Aliases {
		if err := reg.Alias(a.Name, a.Target); err != nil {
			return fmt.Errorf("%s: alias %q: %w", c.Source, a.Name, err)
		}
	}
	for _, p := range c.Preferences {
		if err := reg.Prefer(p.Name, p.Family); err != nil {
			return fmt.Errorf("%s: prefer %q: %w", c.Source, p.Name, err)
		}
	}
	return nil
}

// Markdown renders the icons currently resolvable in reg as a markdown table.
func Markdown(reg *icons.Registry) string {
	aliases := make(map[string][]string)
	for alias, target := range reg.Aliases() {
		aliases[target] = append(aliases[target], alias)
	}

	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `iconkit markdown`.\n\n")
	builder.WriteString("| Icon | Label | Family | Size | Aliases |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range reg.Entries() {
		names := aliases[e.Name]
		sort.Strings(names)
		fmt.Fprintf(&builder, "| %s | %s | %s | %dx%d | %s |\n",
			e.Name, icons.Label(e.Name), e.Glyph.Family, e.Glyph.Width, e.Glyph.Height, strings.Join(names, ", "))
	}
	return builder.String()
}
