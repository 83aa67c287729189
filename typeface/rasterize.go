package typeface

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/bitglyph"
)

var _ bitglyph.PositionedGlyph = (*positionedGlyph)(nil)

// positionedGlyph is a scaled outline placed at its origin. It rasterizes
// with golang.org/x/image/vector on demand.
type positionedGlyph struct {
	// segments are in absolute pixel coordinates.
	segments []Segment
	bounds   bitglyph.PixelRect
	ok       bool
}

// blankGlyph has no ink.
var blankGlyph = &positionedGlyph{}

// newPositionedGlyph moves an outline to origin and computes its pixel
// bounds: the exact bounds rounded outward to whole pixels.
func newPositionedGlyph(segments []Segment, origin bitglyph.Point) *positionedGlyph {
	placed := translate(segments, float32(origin.X), float32(origin.Y))
	minX, minY, maxX, maxY, ok := outlineBounds(placed)
	if !ok {
		return blankGlyph
	}
	bounds := bitglyph.PixelRect{
		MinX: int(math.Floor(minX)),
		MinY: int(math.Floor(minY)),
		MaxX: int(math.Ceil(maxX)),
		MaxY: int(math.Ceil(maxY)),
	}
	if bounds.Empty() {
		return blankGlyph
	}
	return &positionedGlyph{segments: placed, bounds: bounds, ok: true}
}

// PixelBounds implements bitglyph.PositionedGlyph.
func (g *positionedGlyph) PixelBounds() (bitglyph.PixelRect, bool) {
	return g.bounds, g.ok
}

// Draw implements bitglyph.PositionedGlyph. Every pixel of the bounds that
// lies on the bitglyph.Size canvas is reported, including those with zero
// coverage. Pixels off the canvas are never rasterized.
func (g *positionedGlyph) Draw(fn func(x, y int, coverage float32)) {
	if !g.ok {
		return
	}
	clip := g.canvasClip()
	if clip.Empty() {
		return
	}
	mask := g.rasterize(clip)
	ox, oy := clip.MinX-g.bounds.MinX, clip.MinY-g.bounds.MinY
	for y := 0; y < clip.Dy(); y++ {
		for x := 0; x < clip.Dx(); x++ {
			// The mask holds floor(coverage * 65536), so this never
			// overstates coverage and is within 1/65536 of it.
			fn(ox+x, oy+y, float32(mask.Alpha16At(x, y).A)/65536)
		}
	}
}

// canvasClip returns the part of the bounds on the canvas.
func (g *positionedGlyph) canvasClip() bitglyph.PixelRect {
	return bitglyph.PixelRect{
		MinX: max(g.bounds.MinX, 0),
		MinY: max(g.bounds.MinY, 0),
		MaxX: min(g.bounds.MaxX, bitglyph.Size),
		MaxY: min(g.bounds.MaxY, bitglyph.Size),
	}
}

// floatRasterWidth is the narrowest rasterizer for which x/image/vector
// accumulates coverage in float32. Narrower ones use 9-bit fixed point,
// whose coordinate rounding moves coverage across the threshold.
const floatRasterWidth = 513

// rasterize fills the outline into a 16-bit mask covering clip.
// The x/image/vector rasterizer wants coordinates in the positive quadrant,
// so the outline is shifted by -clip.Min; ink outside is clipped by vector.
func (g *positionedGlyph) rasterize(clip bitglyph.PixelRect) *image.Alpha16 {
	w, h := max(clip.Dx(), floatRasterWidth), clip.Dy()
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src

	dx, dy := float32(-clip.MinX), float32(-clip.MinY)
	open := false
	for _, seg := range g.segments {
		a := seg.Args
		switch seg.Op {
		case SegmentMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(a[0].X+dx, a[0].Y+dy)
			open = true
		case SegmentLineTo:
			r.LineTo(a[0].X+dx, a[0].Y+dy)
		case SegmentQuadTo:
			r.QuadTo(a[0].X+dx, a[0].Y+dy, a[1].X+dx, a[1].Y+dy)
		case SegmentCubeTo:
			r.CubeTo(a[0].X+dx, a[0].Y+dy, a[1].X+dx, a[1].Y+dy, a[2].X+dx, a[2].Y+dy)
		}
	}
	if open {
		r.ClosePath()
	}

	// *image.Alpha would take vector's 8-bit fast path.
	mask := image.NewAlpha16(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
