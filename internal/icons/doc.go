// Package icons holds the icon registry used by the rendering layer.
//
// A Registry maps symbolic icon names to glyph definitions. Registration is
// expected to happen once at startup; a later registration of the same name
// replaces the earlier one without error. Families ("solid", "regular", ...)
// qualify a name, so "regular/sticky-note" always resolves to the regular
// glyph while the short name "sticky-note" resolves to whichever glyph was
// registered last, unless a preference pins it to a family.
//
// Every write builds a new table and publishes it through an atomic pointer.
// Readers load the current table and never lock, so Resolve is safe to call
// from any number of goroutines at any time.
package icons
