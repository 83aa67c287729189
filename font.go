package bitglyph

// Point is a position in pixel space. Y increases downward.
type Point struct {
	X, Y float64
}

// PixelRect is a pixel-aligned rectangle. Max is exclusive.
type PixelRect struct {
	MinX, MinY, MaxX, MaxY int
}

// Dx returns the rectangle's width.
func (r PixelRect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the rectangle's height.
func (r PixelRect) Dy() int { return r.MaxY - r.MinY }

// Empty reports whether the rectangle contains no pixels.
func (r PixelRect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// VMetrics holds the vertical metrics of a font at one scale, in pixels.
type VMetrics struct {
	// Ascent is the distance from the baseline to the ascent line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the descent line (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Font is the font resource consumed by the Renderer.
//
// A scale of s means the distance between the ascent and descent lines is
// s pixels. Implementations used from several goroutines at once must be
// safe for concurrent read-only use; typeface.FontSource is.
type Font interface {
	// VMetrics returns the vertical metrics at the given scale.
	VMetrics(scale float64) VMetrics

	// Glyph returns the glyph for r scaled to scale with its origin placed
	// at origin. Characters missing from the font yield a glyph without ink.
	Glyph(r rune, scale float64, origin Point) PositionedGlyph
}

// PositionedGlyph is a scaled glyph placed at an origin, ready to rasterize.
type PositionedGlyph interface {
	// PixelBounds returns the pixel rectangle that may hold ink.
	// ok is false when the glyph has no visible ink.
	PixelBounds() (bounds PixelRect, ok bool)

	// Draw calls fn once per pixel of PixelBounds with coordinates local
	// to the bounds origin and coverage in [0, 1].
	Draw(fn func(x, y int, coverage float32))
}
