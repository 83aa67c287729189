// Package bitglyph rasterizes text into fixed-size monochrome glyph bitmaps.
//
// # Overview
//
// Every character of the input text becomes one [Bitmap]: 32 rows of 32
// bits, row 0 at the top, bit 31 of each row at the left edge. Pixels whose
// glyph coverage is strictly greater than [Threshold] are set, all others are
// clear. The result is meant for dot-matrix displays, LED panels and other
// targets that take one bit per pixel.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bitglyph"
//	    "github.com/gogpu/bitglyph/typeface"
//	)
//
//	src, err := typeface.NewFontSourceFromFile("WenQuanYiMicroHei.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	glyphs, err := bitglyph.NewRenderer(src).Render("新闻来了", 32)
//
// # Layout
//
// Characters are not laid out along a line. Each one is rasterized on its own
// canvas with the pen at x = 0 and the baseline at the font ascent, so the
// output is an atlas of independent glyphs rather than rendered text. Ink that
// falls outside the 32x32 canvas is dropped.
//
// # Architecture
//
// The library is organized into:
//   - bitglyph: data model, font contract, quantizer and batch driver
//   - typeface: font loading and the coverage rasterizer
//   - bake: Go source, binary, hex and debug emitters
//   - cmd/bitglyph: the asset baking command
package bitglyph
