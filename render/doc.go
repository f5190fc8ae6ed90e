// Package render defines the contract between the overlay core and its GPU
// backends.
//
// The core produces texture-keyed vertex runs; a backend consumes them. A
// backend implements [Device]: texture creation plus a Draw method that
// binds one texture per run and issues one draw call per run. Backends
// register themselves with [Register] (typically from an init function) and
// hosts pick one via [Get] or [Default].
//
// The package deliberately knows nothing about primitives, fonts, or
// batching; it sees only encoded vertex bytes and texture handles.
package render
