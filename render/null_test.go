package render

import "testing"

func TestNullDeviceCreateTexture(t *testing.T) {
	dev := NewNullDevice()
	defer dev.Close()

	tex, err := dev.CreateTexture(DefaultTextureDescriptor("t", 4, 2), make([]byte, 4*2*4))
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 2 {
		t.Errorf("texture size = %dx%d, want 4x2", tex.Width(), tex.Height())
	}

	if _, err := dev.CreateTexture(DefaultTextureDescriptor("t", 4, 2), make([]byte, 7)); err == nil {
		t.Error("CreateTexture accepted a short pixel buffer")
	}
}

func TestNullDeviceDrawValidation(t *testing.T) {
	tests := []struct {
		name    string
		run     Run
		wantErr bool
	}{
		{"valid triangle list", Run{Data: make([]byte, 6*VertexStride), VertexCount: 6}, false},
		{"data length mismatch", Run{Data: make([]byte, 100), VertexCount: 3}, true},
		{"not a triangle list", Run{Data: make([]byte, 4*VertexStride), VertexCount: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := NewNullDevice()
			defer dev.Close()

			err := dev.Draw(NullTarget{W: 10, H: 10}, [16]float32{}, []Run{tt.run})
			if (err != nil) != tt.wantErr {
				t.Errorf("Draw error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNullDeviceRecordsDraws(t *testing.T) {
	dev := NewNullDevice()
	defer dev.Close()

	runs := []Run{{Data: make([]byte, 3*VertexStride), VertexCount: 3}}
	if err := dev.Draw(NullTarget{W: 1, H: 1}, [16]float32{}, runs); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if err := dev.Draw(NullTarget{W: 1, H: 1}, [16]float32{}, nil); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if len(dev.DrawCalls) != 2 {
		t.Fatalf("recorded %d draw calls, want 2", len(dev.DrawCalls))
	}
	if len(dev.DrawCalls[0]) != 1 || dev.DrawCalls[0][0].VertexCount != 3 {
		t.Error("first draw call not recorded faithfully")
	}
}

func TestNullDeviceClosed(t *testing.T) {
	dev := NewNullDevice()
	dev.Close()
	if err := dev.Draw(NullTarget{W: 1, H: 1}, [16]float32{}, nil); err == nil {
		t.Error("closed device accepted a draw")
	}
}
