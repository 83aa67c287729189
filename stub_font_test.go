package bitglyph

// stubFont is a minimal Font with one 4x4 fully covered glyph for 'A'.
type stubFont struct {
	ascent float64
	calls  []rune
}

func newStubFont() *stubFont {
	return &stubFont{ascent: 12}
}

func (f *stubFont) VMetrics(scale float64) VMetrics {
	return VMetrics{Ascent: f.ascent, Descent: 4, LineGap: 0}
}

func (f *stubFont) Glyph(r rune, scale float64, origin Point) PositionedGlyph {
	f.calls = append(f.calls, r)
	if r != 'A' {
		return stubGlyph{}
	}
	return stubGlyph{
		bounds: &PixelRect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4},
		fill:   1.0,
	}
}

// stubGlyph reports every pixel of bounds with the same coverage.
type stubGlyph struct {
	bounds *PixelRect
	fill   float32
}

func (g stubGlyph) PixelBounds() (PixelRect, bool) {
	if g.bounds == nil {
		return PixelRect{}, false
	}
	return *g.bounds, true
}

func (g stubGlyph) Draw(fn func(x, y int, coverage float32)) {
	if g.bounds == nil {
		return
	}
	for y := 0; y < g.bounds.Dy(); y++ {
		for x := 0; x < g.bounds.Dx(); x++ {
			fn(x, y, g.fill)
		}
	}
}

// sampleSeq yields the given samples in order.
func sampleSeq(samples ...CoverageSample) func(func(CoverageSample) bool) {
	return func(yield func(CoverageSample) bool) {
		for _, s := range samples {
			if !yield(s) {
				return
			}
		}
	}
}
