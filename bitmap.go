package bitglyph

import (
	"math/bits"
	"strings"
)

// Size is the width and height of every Bitmap, in pixels.
const Size = 32

// Bitmap is a 32x32 one-bit-per-pixel glyph image.
//
// Row 0 is the topmost scanline. Within a row, bit 31 is the leftmost
// column and bit 0 the rightmost. Bitmap is a value type; copies never
// share storage.
type Bitmap [Size]uint32

// GlyphSequence holds one Bitmap per input character, in input order.
type GlyphSequence []Bitmap

// Bit reports whether the pixel at column x, row y is set.
// Coordinates outside the canvas report false.
func (b *Bitmap) Bit(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return b[y]&(1<<(Size-1-x)) != 0
}

// set sets the pixel at column x, row y. The caller guarantees range.
func (b *Bitmap) set(x, y int) {
	b[y] |= 1 << (Size - 1 - x)
}

// IsBlank reports whether no pixel is set.
func (b *Bitmap) IsBlank() bool {
	for _, row := range b {
		if row != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, row := range b {
		n += bits.OnesCount32(row)
	}
	return n
}

// String renders the bitmap as 32 lines, two '█' per set pixel and two
// spaces per clear pixel.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size*2*3 + 1))
	for _, row := range b {
		for bit := Size - 1; bit >= 0; bit-- {
			if (row>>bit)&1 == 1 {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
