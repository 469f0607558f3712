package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nfrund/iconkit/internal/components"
)

// Sizes lists the size keywords the icon stylesheet understands.
var Sizes = []string{"xs", "sm", "lg", "1x", "2x", "3x", "4x", "5x", "6x", "7x", "8x", "9x", "10x"}

var (
	colorRegex = regexp.MustCompile(`^[#a-zA-Z0-9(),.% ]+$`)
	classRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// options are presentation parameters. They are passed through to the
// markup and never influence which glyph is resolved.
type options struct {
	size        string
	color       string
	classes     []string
	spin        bool
	fixedWidth  bool
	rotation    int
	placeholder bool
}

// Option configures how an icon is drawn.
type Option func(*options)

// WithSize sets one of the Sizes keywords. Unknown sizes are ignored.
func WithSize(size string) Option {
	return func(o *options) {
		for _, known := range Sizes {
			if size == known {
				o.size = size
				return
			}
		}
	}
}

// WithColor sets the CSS color the glyph is painted with.
func WithColor(color string) Option {
	return func(o *options) {
		if colorRegex.MatchString(color) {
			o.color = color
		}
	}
}

// WithClass appends extra CSS classes.
func WithClass(classes ...string) Option {
	return func(o *options) {
		for _, class := range classes {
			for _, c := range strings.Fields(class) {
				if classRegex.MatchString(c) {
					o.classes = append(o.classes, c)
				}
			}
		}
	}
}

// WithSpin animates the icon.
func WithSpin() Option {
	return func(o *options) { o.spin = true }
}

// WithFixedWidth renders the icon in a fixed width box.
func WithFixedWidth() Option {
	return func(o *options) { o.fixedWidth = true }
}

// WithRotation rotates the icon by 90, 180 or 270 degrees.
func WithRotation(degrees int) Option {
	return func(o *options) {
		switch degrees {
		case 90, 180, 270:
			o.rotation = degrees
		}
	}
}

// WithPlaceholder draws an empty box when the icon name cannot be resolved.
func WithPlaceholder() Option {
	return func(o *options) { o.placeholder = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) classList(name string) string {
	classes := []string{"icon"}
	if name != "" && classRegex.MatchString(name) {
		classes = append(classes, "icon-"+name)
	}
	if o.size != "" {
		classes = append(classes, "icon-"+o.size)
	}
	if o.fixedWidth {
		classes = append(classes, "icon-fw")
	}
	if o.spin {
		classes = append(classes, "icon-spin")
	}
	if o.rotation != 0 {
		classes = append(classes, "icon-rotate-"+strconv.Itoa(o.rotation))
	}
	classes = append(classes, o.classes...)
	return strings.Join(classes, " ")
}

func (o options) style() string {
	if o.color == "" {
		return ""
	}
	return "color: " + o.color
}

// OptionsFromProps converts component props into options. Recognized keys
// are size, color, class, spin, fixed-width, rotation and placeholder.
func OptionsFromProps(props components.Props) []Option {
	var opts []Option
	if v := props["size"]; v != "" {
		opts = append(opts, WithSize(v))
	}
	if v := props["color"]; v != "" {
		opts = append(opts, WithColor(v))
	}
	if v := props["class"]; v != "" {
		opts = append(opts, WithClass(v))
	}
	if flag(props, "spin") {
		opts = append(opts, WithSpin())
	}
	if flag(props, "fixed-width") {
		opts = append(opts, WithFixedWidth())
	}
	if flag(props, "placeholder") {
		opts = append(opts, WithPlaceholder())
	}
	if v := props["rotation"]; v != "" {
		if degrees, err := strconv.Atoi(v); err == nil {
			opts = append(opts, WithRotation(degrees))
		}
	}
	return opts
}

// flag treats a present but empty value as true, like an HTML boolean attribute.
func flag(props components.Props, key string) bool {
	v, ok := props[key]
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
