package font

// Glyph holds the metrics of one rasterized glyph inside an Atlas.
// All values are in pixels at the atlas's nominal size except AtlasU,
// which is the normalized horizontal offset of the glyph's bitmap in
// the strip.
type Glyph struct {
	// AdvanceX is the horizontal pen advance after drawing the glyph.
	AdvanceX float32

	// AdvanceY is the vertical pen advance. Zero for horizontal layout.
	AdvanceY float32

	// BitmapWidth and BitmapHeight are the rasterized bitmap extent.
	// Both are zero for glyphs with no ink (e.g. space).
	BitmapWidth  float32
	BitmapHeight float32

	// BitmapLeft is the horizontal bearing: the offset from the pen
	// position to the left edge of the bitmap.
	BitmapLeft float32

	// BitmapTop is the vertical bearing: the distance from the baseline
	// up to the top edge of the bitmap.
	BitmapTop float32

	// AtlasU is the normalized U coordinate of the bitmap's left edge in
	// the atlas strip, in [0,1).
	AtlasU float32
}
