package render

import (
	"errors"
	"fmt"
)

// Draw submission errors. Backends wrap their native failures in one of
// these so callers can distinguish resource creation problems from draw
// failures without depending on a concrete backend.
var (
	// ErrBufferCreation is returned when a vertex or uniform buffer
	// cannot be created or uploaded.
	ErrBufferCreation = errors.New("render: buffer creation failed")

	// ErrTextureBind is returned when a run's texture cannot be bound.
	ErrTextureBind = errors.New("render: texture bind failed")

	// ErrShaderCompile is returned when a backend shader fails to compile.
	ErrShaderCompile = errors.New("render: shader compilation failed")

	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or cannot initialize.
	ErrBackendNotAvailable = errors.New("render: backend not available")
)

// BackendError wraps a backend-native draw failure. The frame that caused
// it is left un-submitted; the caller decides whether to retry or abort.
type BackendError struct {
	// Backend is the name of the device that failed.
	Backend string

	// Op is the operation that failed (e.g. "begin render pass", "submit").
	Op string

	// Err is the underlying backend error.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("render: %s backend: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
