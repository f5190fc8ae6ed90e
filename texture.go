package overlay

import (
	"bytes"
	"image"
	"image/draw"
	"log/slog"
	"os"

	// Decoders for the common overlay asset formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/overlay/render"
)

// Texture is an image uploaded to the render device, drawable via
// Rectangle.Texture. Textures are owned by the Overlay that loaded them
// and are destroyed on Close.
type Texture struct {
	handle render.Texture
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.handle.Width() }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.handle.Height() }

// handleOrNil returns the device texture, tolerating a nil receiver so
// untextured rectangles fall through to the flat pipeline.
func (t *Texture) handleOrNil() render.Texture {
	if t == nil {
		return nil
	}
	return t.handle
}

// LoadTexture decodes PNG or JPEG data and uploads it.
func (o *Overlay) LoadTexture(data []byte) (*Texture, error) {
	return o.loadTexture(data, "memory", false)
}

// LoadTextureFlipped decodes PNG or JPEG data and uploads it with the
// row order reversed, for sources with a bottom-up origin.
func (o *Overlay) LoadTextureFlipped(data []byte) (*Texture, error) {
	return o.loadTexture(data, "memory", true)
}

// LoadTextureFromPath reads an image file and uploads it.
func (o *Overlay) LoadTextureFromPath(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetError{Resource: "texture", Name: path, Err: err}
	}
	return o.loadTexture(data, path, false)
}

// LoadTextureFromPathFlipped reads an image file and uploads it with
// the row order reversed.
func (o *Overlay) LoadTextureFromPathFlipped(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetError{Resource: "texture", Name: path, Err: err}
	}
	return o.loadTexture(data, path, true)
}

func (o *Overlay) loadTexture(data []byte, name string, flip bool) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Resource: "texture", Name: name, Err: err}
	}

	pixels, w, h := rgbaPixels(img, flip)
	desc := render.DefaultTextureDescriptor("texture "+name, w, h)
	handle, err := o.device.CreateTexture(desc, pixels)
	if err != nil {
		return nil, &AssetError{Resource: "texture", Name: name, Err: err}
	}

	t := &Texture{handle: handle}
	o.textures = append(o.textures, t)

	Logger().Debug("overlay: texture loaded",
		slog.String("name", name),
		slog.Int("width", int(w)),
		slog.Int("height", int(h)),
		slog.Bool("flipped", flip))
	return t, nil
}

// rgbaPixels converts a decoded image to tightly packed premultiplied
// RGBA rows, top-down, optionally reversing the row order.
func rgbaPixels(img image.Image, flip bool) (pixels []byte, w, h uint32) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	w, h = uint32(b.Dx()), uint32(b.Dy())
	if !flip {
		return rgba.Pix, w, h
	}

	rowLen := int(w) * 4
	flipped := make([]byte, len(rgba.Pix))
	for y := 0; y < int(h); y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		copy(flipped[(int(h)-1-y)*rowLen:], src)
	}
	return flipped, w, h
}
