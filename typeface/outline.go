package typeface

import "math"

// SegmentOp is the type of an outline path operation.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour at Args[0].
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to Args[0].
	SegmentLineTo

	// SegmentQuadTo draws a quadratic bezier through control Args[0] to Args[1].
	SegmentQuadTo

	// SegmentCubeTo draws a cubic bezier through Args[0], Args[1] to Args[2].
	SegmentCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// OutlinePoint is a point of a glyph outline in pixels.
type OutlinePoint struct {
	X, Y float32
}

// Segment is one path operation of a glyph outline.
type Segment struct {
	Op   SegmentOp
	Args [3]OutlinePoint
}

// numArgs returns how many of Args the operation uses.
func (s Segment) numArgs() int {
	switch s.Op {
	case SegmentQuadTo:
		return 2
	case SegmentCubeTo:
		return 3
	default:
		return 1
	}
}

// translate returns the outline moved by (dx, dy).
func translate(segments []Segment, dx, dy float32) []Segment {
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		out[i].Op = seg.Op
		for j := 0; j < seg.numArgs(); j++ {
			out[i].Args[j] = OutlinePoint{X: seg.Args[j].X + dx, Y: seg.Args[j].Y + dy}
		}
	}
	return out
}

// outlineBounds returns the bounding box of every point of the outline,
// control points included. ok is false for an empty outline.
func outlineBounds(segments []Segment) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		for j := 0; j < seg.numArgs(); j++ {
			p := seg.Args[j]
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	return minX, minY, maxX, maxY, len(segments) > 0
}
