package typeface

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
// Collections (.ttc) are accepted; their first font is used.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		c, cerr := opentype.ParseCollection(data)
		if cerr != nil || c.NumFonts() == 0 {
			return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
		}
		if f, err = c.Font(0); err != nil {
			return nil, fmt.Errorf("typeface: failed to parse font collection: %w", err)
		}
	}

	parsed := &ximageParsedFont{font: f, upem: int(f.UnitsPerEm())}
	if err := parsed.loadExtents(); err != nil {
		return nil, err
	}
	return parsed, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer.
type ximageParsedFont struct {
	font    *sfnt.Font
	upem    int
	extents Extents
}

func (f *ximageParsedFont) loadExtents() error {
	var buf sfnt.Buffer

	// At ppem == upem the metrics come back in font units.
	m, err := f.font.Metrics(&buf, fixed.I(f.upem), font.HintingNone)
	if err != nil {
		return fmt.Errorf("typeface: failed to read font metrics: %w", err)
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	f.extents = Extents{
		Ascent:  ascent,
		Descent: descent,
		LineGap: math.Max(0, fixedToFloat64(m.Height)-ascent-descent),
	}
	return nil
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return f.upem
}

// Extents implements ParsedFont.Extents.
func (f *ximageParsedFont) Extents() Extents {
	return f.extents
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid uint16, ppem float64) ([]Segment, error) {
	if ppem <= 0 || ppem*64 > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %v", ErrPPEMRange, ppem)
	}

	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrNotOutline
		}
		return nil, fmt.Errorf("typeface: failed to load glyph %d: %w", gid, err)
	}

	// segments alias buf, copy them out before returning.
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out[i].Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			out[i].Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			out[i].Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			out[i].Op = SegmentCubeTo
		}
		for j := range seg.Args {
			out[i].Args[j] = fixedPointToOutline(seg.Args[j])
		}
	}
	return out, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
