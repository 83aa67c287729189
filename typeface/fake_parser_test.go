package typeface

import "errors"

// squareParser parses nothing; it serves a font whose 'A' is a square one
// em wide and whose 'C' is a color glyph.
type squareParser struct{}

func (squareParser) Parse(data []byte) (ParsedFont, error) {
	if string(data) != "square" {
		return nil, errors.New("not a square font")
	}
	return squareFont{}, nil
}

type squareFont struct{}

func (squareFont) UnitsPerEm() int { return 1000 }

func (squareFont) Extents() Extents {
	return Extents{Ascent: 800, Descent: 200}
}

func (squareFont) GlyphIndex(r rune) uint16 {
	switch r {
	case 'A':
		return 1
	case 'C':
		return 2
	case ' ':
		return 3
	}
	return 0
}

func (squareFont) GlyphOutline(gid uint16, ppem float64) ([]Segment, error) {
	switch gid {
	case 2:
		return nil, ErrNotOutline
	case 3:
		return nil, nil
	}
	s := float32(ppem)
	return squareOutline(0, -s, s), nil
}

// squareOutline returns a closed square contour with its top-left corner at
// (x, y) and the given side, in pixels.
func squareOutline(x, y, side float32) []Segment {
	return []Segment{
		{Op: SegmentMoveTo, Args: [3]OutlinePoint{{X: x, Y: y}}},
		{Op: SegmentLineTo, Args: [3]OutlinePoint{{X: x + side, Y: y}}},
		{Op: SegmentLineTo, Args: [3]OutlinePoint{{X: x + side, Y: y + side}}},
		{Op: SegmentLineTo, Args: [3]OutlinePoint{{X: x, Y: y + side}}},
		{Op: SegmentLineTo, Args: [3]OutlinePoint{{X: x, Y: y}}},
	}
}

func init() {
	RegisterParser("square", squareParser{})
}
