package font

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by font parsing and atlas construction.
// Wrap-aware: check with errors.Is.
var (
	// ErrInvalidData indicates the font bytes could not be parsed.
	ErrInvalidData = errors.New("font: invalid font data")

	// ErrNoGlyphs indicates that no glyph in the charset could be
	// rasterized, so no atlas could be built.
	ErrNoGlyphs = errors.New("font: no glyphs could be rasterized")
)

// BuildError describes an atlas construction failure for a specific font.
type BuildError struct {
	// Family is the font family name, when known.
	Family string

	// Size is the requested nominal pixel size.
	Size float32

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("font: building atlas for %q at size %g: %v", e.Family, e.Size, e.Err)
	}
	return fmt.Sprintf("font: building atlas at size %g: %v", e.Size, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }
