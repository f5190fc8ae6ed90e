package overlay

// Text draws a string of glyphs from a font atlas. The position is the
// baseline origin of the first glyph; Offset shifts the finished block
// by a fraction of its bounding box, so Offset (0.5, 0.5) centers the
// text on Position.
//
// Runes outside the atlas are skipped without advancing the pen. Glyphs
// with no ink (such as space) advance the pen but emit no geometry.
type Text struct {
	Content  string
	Size     float32
	Position Point

	// Font selects the atlas to draw from. When nil, the overlay's
	// current font (the top of the font stack) is used.
	Font *Font

	Color Color

	// Shadow, when non-nil, draws the text a second time underneath,
	// displaced by its thickness in both axes.
	Shadow *Outline

	// Offset is the anchor within the text's bounding box, as a
	// fraction of its size. Zero anchors the top-left of the block at
	// the pen start; (0.5, 0.5) centers it.
	Offset Point
}

// NewText returns white text at size 12.
func NewText(content string) *Text {
	return &Text{Content: content, Size: 12, Color: White}
}

// Centered returns the text anchored at the center of its bounding box.
func (t *Text) Centered() *Text {
	t.Offset = Point{X: 0.5, Y: 0.5}
	return t
}

func (t *Text) tessellate(fr *Frame) error {
	f := t.Font
	if f == nil {
		var err error
		f, err = fr.ov.CurrentFont()
		if err != nil {
			return err
		}
	}

	vs := layoutText(t.Content, f, t.Size, t.Position, t.Color, t.Offset)
	if t.Shadow != nil {
		shadow := make([]Vertex, len(vs))
		for i, v := range vs {
			v.Position.X += t.Shadow.Thickness
			v.Position.Y += t.Shadow.Thickness
			v.Color = t.Shadow.Color
			shadow[i] = v
		}
		fr.push(f.texture, shadow)
	}
	fr.push(f.texture, vs)
	return nil
}

// layoutText walks the string's glyph quads and applies the anchor
// offset to the finished block.
func layoutText(content string, f *Font, size float32, pos Point, col Color, offset Point) []Vertex {
	atlas := f.atlas
	s := size / atlas.NominalSize
	x, y := pos.X, pos.Y

	buf := make([]Vertex, 0, len(content)*6)
	for _, r := range content {
		g, ok := atlas.Glyph(r)
		if !ok {
			continue
		}

		left := x + g.BitmapLeft*s
		top := y - g.BitmapTop*s
		w := g.BitmapWidth * s
		h := g.BitmapHeight * s

		x += g.AdvanceX * s
		y += g.AdvanceY * s

		if w == 0 || h == 0 {
			continue
		}

		u0 := g.AtlasU
		u1 := g.AtlasU + g.BitmapWidth/float32(atlas.Width)
		v1 := g.BitmapHeight / float32(atlas.Height)

		buf = append(buf,
			Vertex{Position: Point{left, top}, TexCoord: Point{u0, 0}, Color: col},
			Vertex{Position: Point{left + w, top}, TexCoord: Point{u1, 0}, Color: col},
			Vertex{Position: Point{left, top + h}, TexCoord: Point{u0, v1}, Color: col},
			Vertex{Position: Point{left + w, top}, TexCoord: Point{u1, 0}, Color: col},
			Vertex{Position: Point{left, top + h}, TexCoord: Point{u0, v1}, Color: col},
			Vertex{Position: Point{left + w, top + h}, TexCoord: Point{u1, v1}, Color: col},
		)
	}

	if (offset != Point{}) && len(buf) > 0 {
		minP, maxP := textBounds(buf)
		dx := (maxP.X - minP.X) * offset.X
		dy := (maxP.Y - minP.Y) * offset.Y
		for i := range buf {
			buf[i].Position.X -= dx
			buf[i].Position.Y -= dy
		}
	}
	return buf
}

// textBounds returns the position bounding box of laid-out vertices.
// len(vs) must be > 0.
func textBounds(vs []Vertex) (minP, maxP Point) {
	minP, maxP = vs[0].Position, vs[0].Position
	for _, v := range vs[1:] {
		if v.Position.X < minP.X {
			minP.X = v.Position.X
		}
		if v.Position.Y < minP.Y {
			minP.Y = v.Position.Y
		}
		if v.Position.X > maxP.X {
			maxP.X = v.Position.X
		}
		if v.Position.Y > maxP.Y {
			maxP.Y = v.Position.Y
		}
	}
	return minP, maxP
}

// CalcTextSize returns the bounding box size the string would occupy
// when drawn with the given font and size. Runes outside the atlas are
// ignored; a string with no visible glyphs has zero size.
func CalcTextSize(content string, f *Font, size float32) Point {
	vs := layoutText(content, f, size, Point{}, White, Point{})
	if len(vs) == 0 {
		return Point{}
	}
	minP, maxP := textBounds(vs)
	return maxP.Sub(minP)
}
