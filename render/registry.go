package render

import (
	"log/slog"
	"sync"
)

// Backend names known to the registry. Additional backends may register
// under their own names.
const (
	// BackendWGPU is the WebGPU backend (render/wgpu).
	BackendWGPU = "wgpu"

	// BackendNull is the no-op backend used for tests and headless runs.
	BackendNull = "null"
)

// DeviceFactory creates a new device instance. A factory returning a nil
// device or an error indicates the backend cannot run in this environment.
type DeviceFactory func() (Device, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]DeviceFactory)

	// Priority order for backend selection (first available wins).
	priority = []string{BackendWGPU, BackendNull}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// Get returns a device from the named backend.
// Returns ErrBackendNotAvailable if the backend is not registered or its
// factory fails.
func Get(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrBackendNotAvailable
	}
	return factory()
}

// Default returns a device from the best available backend in priority
// order (wgpu before null). Returns ErrBackendNotAvailable if no backend
// can produce a device.
func Default() (Device, error) {
	registryMu.RLock()
	order := make([]string, len(priority))
	copy(order, priority)
	registryMu.RUnlock()

	for _, name := range order {
		dev, err := Get(name)
		if err != nil {
			continue
		}
		Logger().Info("render: backend selected", slog.String("backend", name))
		return dev, nil
	}
	return nil, ErrBackendNotAvailable
}
