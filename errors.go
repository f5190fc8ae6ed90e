package overlay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the overlay package.
var (
	// ErrNoFontOnStack is returned when a text primitive needs the current
	// font but the font stack is empty. Text is never silently dropped or
	// rendered with an unrequested default.
	ErrNoFontOnStack = errors.New("overlay: no font on the font stack")

	// ErrFontNotFound is returned when a font id is not registered.
	ErrFontNotFound = errors.New("overlay: font id not registered")

	// ErrNoDevice is returned when the Overlay was constructed without a
	// render device and a GPU operation is requested.
	ErrNoDevice = errors.New("overlay: no render device configured")
)

// AssetError reports a failure to load a font or texture asset. The load is
// aborted and no partial resource is registered.
type AssetError struct {
	// Resource is the asset kind, "font" or "texture".
	Resource string

	// Name identifies the asset (file path or caller-supplied label).
	Name string

	// Err is the underlying cause (file not found, decode failure, ...).
	Err error
}

func (e *AssetError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("overlay: load %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("overlay: load %s %q: %v", e.Resource, e.Name, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }
