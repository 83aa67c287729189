package bake

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/bitglyph"
)

// WriteHex writes one line per glyph holding its 32 rows as space-separated
// eight-digit hex words, top row first.
func WriteHex(w io.Writer, seq bitglyph.GlyphSequence) error {
	bw := bufio.NewWriter(w)
	for _, bm := range seq {
		for i, row := range bm {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%08x", row)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
