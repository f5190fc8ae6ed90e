package overlay

import (
	"log/slog"
	"os"

	"github.com/gogpu/overlay/font"
	"github.com/gogpu/overlay/render"
)

// Font pairs a glyph atlas with its uploaded GPU texture. Fonts are
// created through Overlay.LoadFont and referenced by the integer id
// they were loaded under.
type Font struct {
	atlas   *font.Atlas
	texture render.Texture
	family  string
}

// Family returns the font family name, or "" if unknown.
func (f *Font) Family() string { return f.family }

// Atlas returns the glyph atlas backing the font.
func (f *Font) Atlas() *font.Atlas { return f.atlas }

// Size returns the nominal pixel size the atlas was built at.
func (f *Font) Size() float32 { return f.atlas.NominalSize }

// LoadFont builds an atlas from font data at the given pixel size,
// uploads it, and registers the font under id. Loading a second font
// under an existing id replaces it; the old texture is destroyed.
func (o *Overlay) LoadFont(data []byte, size float32, id int) (*Font, error) {
	ras, err := font.NewRasterizer(data)
	if err != nil {
		return nil, &AssetError{Resource: "font", Name: "memory", Err: err}
	}
	return o.registerFont(ras, size, id, ras.Family())
}

// LoadFontFromPath reads a font file and registers it under id, as
// LoadFont does for in-memory data.
func (o *Overlay) LoadFontFromPath(path string, size float32, id int) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetError{Resource: "font", Name: path, Err: err}
	}
	ras, err := font.NewRasterizer(data)
	if err != nil {
		return nil, &AssetError{Resource: "font", Name: path, Err: err}
	}
	return o.registerFont(ras, size, id, path)
}

func (o *Overlay) registerFont(ras *font.Rasterizer, size float32, id int, name string) (*Font, error) {
	atlas, err := ras.BuildAtlas(size)
	if err != nil {
		return nil, &AssetError{Resource: "font", Name: name, Err: err}
	}

	desc := render.DefaultTextureDescriptor("font atlas "+ras.Family(), atlas.Width, atlas.Height)
	tex, err := o.device.CreateTexture(desc, atlas.RGBA())
	if err != nil {
		return nil, &AssetError{Resource: "font", Name: name, Err: err}
	}

	f := &Font{atlas: atlas, texture: tex, family: ras.Family()}
	if old, ok := o.fonts[id]; ok {
		old.texture.Destroy()
	}
	o.fonts[id] = f

	// The first font loaded becomes the current font.
	if len(o.fontStack) == 0 {
		o.fontStack = append(o.fontStack, id)
	}

	Logger().Info("overlay: font loaded",
		slog.Int("id", id),
		slog.String("family", f.family),
		slog.Float64("size", float64(size)),
		slog.Int("glyphs", len(atlas.Glyphs)))
	return f, nil
}

// Font returns the font registered under id.
func (o *Overlay) Font(id int) (*Font, error) {
	f, ok := o.fonts[id]
	if !ok {
		return nil, ErrFontNotFound
	}
	return f, nil
}

// PushFont makes the font registered under id the current font for
// text drawn without an explicit font.
func (o *Overlay) PushFont(id int) error {
	if _, ok := o.fonts[id]; !ok {
		return ErrFontNotFound
	}
	o.fontStack = append(o.fontStack, id)
	return nil
}

// PopFont removes the top of the font stack and returns its id.
// Returns false if the stack is empty.
func (o *Overlay) PopFont() (int, bool) {
	if len(o.fontStack) == 0 {
		return 0, false
	}
	id := o.fontStack[len(o.fontStack)-1]
	o.fontStack = o.fontStack[:len(o.fontStack)-1]
	return id, true
}

// CurrentFont returns the font on top of the font stack.
// Returns ErrNoFontOnStack if the stack is empty, ErrFontNotFound if
// the top id no longer resolves to a loaded font.
func (o *Overlay) CurrentFont() (*Font, error) {
	if len(o.fontStack) == 0 {
		return nil, ErrNoFontOnStack
	}
	return o.Font(o.fontStack[len(o.fontStack)-1])
}
