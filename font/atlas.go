package font

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/math/fixed"
)

// charsetSize bounds the runes packed into an atlas: code points 0
// through charsetSize-1.
const charsetSize = 128

// Atlas is a single-channel glyph strip plus per-glyph metrics. The
// strip packs all rasterized bitmaps side by side on a shared baseline
// row, one pixel of padding between neighbors.
type Atlas struct {
	// Width and Height are the strip dimensions in pixels.
	Width  uint32
	Height uint32

	// NominalSize is the pixel size the glyphs were rasterized at.
	// Text drawn at other sizes scales metrics by size/NominalSize.
	NominalSize float32

	// Glyphs maps each packed rune to its metrics.
	Glyphs map[rune]Glyph

	// Pixels is the alpha coverage buffer, Width*Height bytes,
	// row-major from the top.
	Pixels []byte
}

// Glyph returns the metrics for r, and whether the atlas contains it.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.Glyphs[r]
	return g, ok
}

// RGBA expands the single-channel coverage buffer to premultiplied
// RGBA8: each texel becomes (v, v, v, v), white ink scaled by coverage.
// Vertex color applied at draw time tints the result.
func (a *Atlas) RGBA() []byte {
	out := make([]byte, len(a.Pixels)*4)
	for i, v := range a.Pixels {
		out[i*4+0] = v
		out[i*4+1] = v
		out[i*4+2] = v
		out[i*4+3] = v
	}
	return out
}

// stripLayout places glyph bitmaps of the given sizes in a horizontal
// strip with one pixel of padding after each, returning the strip
// dimensions and the x offset of each bitmap.
func stripLayout(sizes []image.Point) (width, height int, xs []int) {
	xs = make([]int, len(sizes))
	for i, sz := range sizes {
		xs[i] = width
		width += sz.X + 1
		if sz.Y > height {
			height = sz.Y
		}
	}
	return width, height, xs
}

// BuildAtlas rasterizes the charset at the given pixel size and packs
// the bitmaps into a strip. Runes the font does not cover are omitted;
// runes that fail to rasterize are logged and skipped. ErrNoGlyphs is
// returned (wrapped in a BuildError) only when nothing could be packed.
func (r *Rasterizer) BuildAtlas(size float32) (*Atlas, error) {
	face, err := r.face(size)
	if err != nil {
		return nil, &BuildError{Family: r.family, Size: size, Err: err}
	}
	defer face.Close()

	// First pass: measure every glyph so the strip can be allocated in
	// one piece.
	var (
		runes  []rune
		sizes  []image.Point
		glyphs []Glyph
	)
	origin := fixed.Point26_6{}
	for ch := rune(0); ch < charsetSize; ch++ {
		if !r.covers(ch) {
			continue
		}
		dr, _, _, advance, ok := face.Glyph(origin, ch)
		if !ok {
			Logger().Warn("font: glyph rasterization failed, skipping",
				slog.String("family", r.family),
				slog.Int("rune", int(ch)))
			continue
		}
		runes = append(runes, ch)
		sizes = append(sizes, image.Pt(dr.Dx(), dr.Dy()))
		glyphs = append(glyphs, Glyph{
			AdvanceX:     float32(advance) / 64,
			BitmapWidth:  float32(dr.Dx()),
			BitmapHeight: float32(dr.Dy()),
			BitmapLeft:   float32(dr.Min.X),
			BitmapTop:    float32(-dr.Min.Y),
		})
	}
	if len(runes) == 0 {
		return nil, &BuildError{Family: r.family, Size: size, Err: ErrNoGlyphs}
	}

	width, height, xs := stripLayout(sizes)
	if height == 0 {
		height = 1
	}

	atlas := &Atlas{
		Width:       uint32(width),
		Height:      uint32(height),
		NominalSize: size,
		Glyphs:      make(map[rune]Glyph, len(runes)),
		Pixels:      make([]byte, width*height),
	}

	// Second pass: rasterize again and blit each bitmap at its slot.
	for i, ch := range runes {
		dr, mask, maskp, _, ok := face.Glyph(origin, ch)
		if !ok {
			continue
		}
		blit(atlas.Pixels, width, xs[i], dr, mask, maskp)

		g := glyphs[i]
		g.AtlasU = float32(xs[i]) / float32(width)
		atlas.Glyphs[ch] = g
	}

	Logger().Debug("font: atlas built",
		slog.String("family", r.family),
		slog.Int("glyphs", len(atlas.Glyphs)),
		slog.Int("width", width),
		slog.Int("height", height))
	return atlas, nil
}

// BuildAtlas parses font data and builds an atlas at the given pixel
// size in one step.
func BuildAtlas(data []byte, size float32) (*Atlas, error) {
	r, err := NewRasterizer(data)
	if err != nil {
		return nil, err
	}
	return r.BuildAtlas(size)
}

// blit copies a glyph mask into the strip at column x0, top-aligned.
func blit(dst []byte, stride, x0 int, dr image.Rectangle, mask image.Image, maskp image.Point) {
	alpha, _ := mask.(*image.Alpha)
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			var v byte
			if alpha != nil {
				v = alpha.AlphaAt(maskp.X+x, maskp.Y+y).A
			} else {
				v = color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha).A
			}
			dst[y*stride+x0+x] = v
		}
	}
}
