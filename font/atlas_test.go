package font

import (
	"errors"
	"image"
	"testing"
)

func TestStripLayout(t *testing.T) {
	tests := []struct {
		name       string
		sizes      []image.Point
		wantWidth  int
		wantHeight int
		wantXs     []int
	}{
		{
			name:       "empty",
			sizes:      nil,
			wantWidth:  0,
			wantHeight: 0,
			wantXs:     []int{},
		},
		{
			name:       "single glyph",
			sizes:      []image.Point{{X: 8, Y: 12}},
			wantWidth:  9,
			wantHeight: 12,
			wantXs:     []int{0},
		},
		{
			name:       "mixed sizes",
			sizes:      []image.Point{{X: 4, Y: 7}, {X: 0, Y: 0}, {X: 10, Y: 3}},
			wantWidth:  17, // (4+1) + (0+1) + (10+1)
			wantHeight: 7,
			wantXs:     []int{0, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height, xs := stripLayout(tt.sizes)
			if width != tt.wantWidth {
				t.Errorf("width = %d, want %d", width, tt.wantWidth)
			}
			if height != tt.wantHeight {
				t.Errorf("height = %d, want %d", height, tt.wantHeight)
			}
			if len(xs) != len(tt.wantXs) {
				t.Fatalf("len(xs) = %d, want %d", len(xs), len(tt.wantXs))
			}
			for i := range xs {
				if xs[i] != tt.wantXs[i] {
					t.Errorf("xs[%d] = %d, want %d", i, xs[i], tt.wantXs[i])
				}
			}
		})
	}
}

func TestStripLayoutOffsetsMonotonic(t *testing.T) {
	sizes := []image.Point{{X: 3, Y: 5}, {X: 7, Y: 2}, {X: 1, Y: 9}, {X: 0, Y: 0}}
	width, _, xs := stripLayout(sizes)

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Errorf("xs[%d] = %d not greater than xs[%d] = %d", i, xs[i], i-1, xs[i-1])
		}
	}
	// Every slot plus its bitmap and padding stays inside the strip.
	for i, sz := range sizes {
		if xs[i]+sz.X+1 > width {
			t.Errorf("glyph %d overflows strip: x=%d w=%d strip=%d", i, xs[i], sz.X, width)
		}
	}
}

func TestAtlasGlyphLookup(t *testing.T) {
	a := &Atlas{
		Width:       16,
		Height:      8,
		NominalSize: 12,
		Glyphs: map[rune]Glyph{
			'A': {AdvanceX: 7, BitmapWidth: 6, BitmapHeight: 8, AtlasU: 0.25},
		},
	}

	g, ok := a.Glyph('A')
	if !ok {
		t.Fatal("Glyph('A') not found")
	}
	if g.AdvanceX != 7 || g.AtlasU != 0.25 {
		t.Errorf("Glyph('A') = %+v", g)
	}

	if _, ok := a.Glyph('驼'); ok {
		t.Error("Glyph lookup for unpacked rune succeeded")
	}
}

func TestAtlasRGBA(t *testing.T) {
	a := &Atlas{Width: 2, Height: 1, Pixels: []byte{0, 200}}
	got := a.RGBA()
	want := []byte{0, 0, 0, 0, 200, 200, 200, 200}
	if len(got) != len(want) {
		t.Fatalf("RGBA length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RGBA[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNewRasterizerInvalidData(t *testing.T) {
	_, err := NewRasterizer([]byte("not a font"))
	if err == nil {
		t.Fatal("NewRasterizer accepted garbage data")
	}
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("error = %v, want ErrInvalidData", err)
	}
}

func TestBuildErrorUnwrap(t *testing.T) {
	err := &BuildError{Family: "Mono", Size: 14, Err: ErrNoGlyphs}
	if !errors.Is(err, ErrNoGlyphs) {
		t.Error("BuildError does not unwrap to ErrNoGlyphs")
	}
	if err.Error() == "" {
		t.Error("BuildError message is empty")
	}
}
