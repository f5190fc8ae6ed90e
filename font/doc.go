// Package font builds glyph atlases for overlay text rendering.
//
// An Atlas packs the rasterized bitmaps of the first 128 Unicode code
// points into a single horizontal strip, one pixel of padding between
// glyphs, together with the per-glyph metrics (advance, bearing, bitmap
// extent, normalized strip offset) needed to lay out text at draw time.
//
// Rasterization is CPU-side via golang.org/x/image/font/opentype; the
// caller uploads the resulting pixel buffer as a GPU texture. Glyphs
// that fail to rasterize are logged and skipped so a partially broken
// font still produces a usable atlas.
package font
