package typeface

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	parsed := &gotextParsedFont{font: face.Font, upem: int(face.Upem())}
	if ext, ok := face.FontHExtents(); ok {
		parsed.extents = Extents{
			Ascent:  float64(ext.Ascender),
			Descent: -float64(ext.Descender),
			LineGap: float64(ext.LineGap),
		}
	}
	return parsed, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Font.
// font.Font is read-only and safe for concurrent use, font.Face is not, so
// every call creates its own lightweight Face.
type gotextParsedFont struct {
	font    *font.Font
	upem    int
	extents Extents
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return f.upem
}

// Extents implements ParsedFont.Extents.
func (f *gotextParsedFont) Extents() Extents {
	return f.extents
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	gid, ok := font.NewFace(f.font).NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid uint16, ppem float64) ([]Segment, error) {
	data := font.NewFace(f.font).GlyphData(font.GID(gid))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, ErrNotOutline
	}

	// Font units, Y up. Scale to pixels and flip.
	scale := float32(ppem) / float32(f.upem)
	out := make([]Segment, len(outline.Segments))
	for i, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out[i].Op = SegmentMoveTo
		case ot.SegmentOpLineTo:
			out[i].Op = SegmentLineTo
		case ot.SegmentOpQuadTo:
			out[i].Op = SegmentQuadTo
		case ot.SegmentOpCubeTo:
			out[i].Op = SegmentCubeTo
		}
		for j := 0; j < out[i].numArgs(); j++ {
			out[i].Args[j] = OutlinePoint{
				X: seg.Args[j].X * scale,
				Y: -seg.Args[j].Y * scale,
			}
		}
	}
	return out, nil
}
