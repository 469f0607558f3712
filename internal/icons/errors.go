package icons

import "errors"

var (
	// ErrEmptyName is returned when a registration has no name.
	ErrEmptyName = errors.New("icon name must not be empty")

	// ErrInvalidName is returned when a name is not lowercase and dash separated.
	ErrInvalidName = errors.New("icon name must be lowercase with dashes, e.g. 'sticky-note'")

	// ErrInvalidGlyph is returned when a glyph definition is incomplete.
	ErrInvalidGlyph = errors.New("invalid glyph definition")

	// ErrUnknownFamily is returned when a preference names a family the registry does not know.
	ErrUnknownFamily = errors.New("unknown icon family")

	// ErrInvalidAlias is returned for self referencing or cyclic aliases.
	ErrInvalidAlias = errors.New("invalid icon alias")

	// ErrRegistrationClosed is returned by incremental writes after Seal.
	ErrRegistrationClosed = errors.New("icon registration is closed")
)
