package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Rasterizer parses a font once and produces scaled faces for atlas
// construction. It is not safe for concurrent use; build atlases from a
// single goroutine and share the resulting Atlas instead.
type Rasterizer struct {
	font   *opentype.Font
	cover  *gotext.Face
	family string
}

// NewRasterizer parses font data (TTF or OTF). The data must stay valid
// for the lifetime of the Rasterizer.
func NewRasterizer(data []byte) (*Rasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	// ParseTTF returns a *Face embedding the thread-safe *Font; the cmap
	// it exposes decides which runes enter the atlas.
	cover, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	r := &Rasterizer{font: f, cover: cover}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		r.family = name
	}
	return r, nil
}

// Family returns the font family name, or "" if the font does not
// carry one.
func (r *Rasterizer) Family() string { return r.family }

// covers reports whether the font maps the rune to a glyph.
func (r *Rasterizer) covers(ch rune) bool {
	_, ok := r.cover.NominalGlyph(ch)
	return ok
}

// face returns a rasterizing face at the given pixel size.
func (r *Rasterizer) face(size float32) (xfont.Face, error) {
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return f, nil
}
