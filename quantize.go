package bitglyph

import "iter"

// Threshold is the coverage a sample must strictly exceed to set its pixel.
const Threshold = 0.55

// CoverageSample is one rasterizer output pixel, local to the glyph bounds.
type CoverageSample struct {
	X, Y     int
	Coverage float32
}

// Quantize folds coverage samples into a Bitmap.
//
// Sample positions are offset by the bounds origin. Samples landing outside
// the canvas are dropped, and only samples with coverage above Threshold set
// a bit. A nil bounds or an empty sample sequence yields a blank Bitmap.
func Quantize(bounds *PixelRect, samples iter.Seq[CoverageSample]) Bitmap {
	var bm Bitmap
	if bounds == nil || samples == nil {
		return bm
	}
	for s := range samples {
		quantizeSample(&bm, bounds.MinX+s.X, bounds.MinY+s.Y, s.Coverage)
	}
	return bm
}

// QuantizeGlyph rasterizes a positioned glyph straight into a Bitmap.
func QuantizeGlyph(g PositionedGlyph) Bitmap {
	var bm Bitmap
	if g == nil {
		return bm
	}
	bounds, ok := g.PixelBounds()
	if !ok {
		return bm
	}
	g.Draw(func(x, y int, coverage float32) {
		quantizeSample(&bm, bounds.MinX+x, bounds.MinY+y, coverage)
	})
	return bm
}

// Samples adapts a PositionedGlyph's Draw callback to a sample sequence.
func Samples(g PositionedGlyph) iter.Seq[CoverageSample] {
	return func(yield func(CoverageSample) bool) {
		stopped := false
		g.Draw(func(x, y int, coverage float32) {
			if stopped {
				return
			}
			stopped = !yield(CoverageSample{X: x, Y: y, Coverage: coverage})
		})
	}
}

func quantizeSample(bm *Bitmap, px, py int, coverage float32) {
	if px < 0 || px >= Size || py < 0 || py >= Size {
		return
	}
	if coverage > Threshold {
		bm.set(px, py)
	}
}
