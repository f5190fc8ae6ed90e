package render

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	dev, err := Get(BackendNull)
	if err != nil {
		t.Fatalf("Get(null) failed: %v", err)
	}
	defer dev.Close()
	if dev.Name() != BackendNull {
		t.Errorf("Name() = %q, want %q", dev.Name(), BackendNull)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	if _, err := Get("vulkan-direct"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get(unknown) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	Register("fake", func() (Device, error) { return NewNullDevice(), nil })
	defer Unregister("fake")

	if !slices.Contains(Available(), "fake") {
		t.Fatal("registered backend not listed")
	}

	dev, err := Get("fake")
	if err != nil {
		t.Fatalf("Get(fake) failed: %v", err)
	}
	dev.Close()

	Unregister("fake")
	if _, err := Get("fake"); err == nil {
		t.Error("unregistered backend still resolvable")
	}
}

func TestRegistryDefaultFallsBack(t *testing.T) {
	// wgpu is not linked into this test binary, so Default lands on null.
	dev, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	defer dev.Close()
	if dev.Name() != BackendNull {
		t.Errorf("Default backend = %q, want %q", dev.Name(), BackendNull)
	}
}
