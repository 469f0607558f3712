package icons

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family is the style namespace a glyph belongs to.
type Family string

const (
	Solid   Family = "solid"
	Regular Family = "regular"
	Brands  Family = "brands"
)

// Families lists the families the registry accepts.
var Families = []Family{Solid, Regular, Brands}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	for _, known := range Families {
		if f == known {
			return true
		}
	}
	return false
}

// Glyph is a drawable icon definition. The registry does not interpret the
// path data; it only checks that the definition is complete.
type Glyph struct {
	Name    string   `json:"name" validate:"required,iconname"`
	Family  Family   `json:"family" validate:"required,oneof=solid regular brands"`
	Width   int      `json:"width" validate:"gt=0"`
	Height  int      `json:"height" validate:"gt=0"`
	Path    string   `json:"path" validate:"required"`
	Aliases []string `json:"aliases,omitempty" validate:"omitempty,dive,iconname"`
}

// Key returns the family qualified identity of the glyph.
func (g Glyph) Key() Key {
	return Key{Family: g.Family, Name: g.Name}
}

// ViewBox returns the SVG viewBox attribute value for the glyph.
func (g Glyph) ViewBox() string {
	return fmt.Sprintf("0 0 %d %d", g.Width, g.Height)
}

// Entry pairs a registration name with its glyph.
type Entry struct {
	Name  string
	Glyph Glyph
}

// Key identifies a glyph within a family.
type Key struct {
	Family Family
	Name   string
}

func (k Key) String() string {
	return string(k.Family) + "/" + k.Name
}

// ParseKey splits a "family/name" reference. Names without a family return ok=false.
func ParseKey(ref string) (Key, bool) {
	family, name, found := strings.Cut(ref, "/")
	if !found || name == "" {
		return Key{}, false
	}
	return Key{Family: Family(family), Name: name}, true
}

var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidName reports whether name is a lowercase, dash separated icon name.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("iconname", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("icons: register iconname validation: %v", err))
	}
	return v
}

// Validate checks that the glyph carries an identity and drawable path data.
func (g Glyph) Validate() error {
	if err := validate.Struct(g); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidGlyph, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidGlyph, err)
	}
	return nil
}

// Label converts an icon name into a display label, e.g. "sticky-note" becomes "Sticky Note".
func Label(name string) string {
	if name == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
