package bake

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/bitglyph"
)

// WriteDebug prints every glyph for a human: a "Character 'c' bitmap:"
// header followed by the bitmap drawn with '█' blocks. text is the source
// text of seq; glyphs without a matching character are labeled '?'.
func WriteDebug(w io.Writer, text string, seq bitglyph.GlyphSequence) error {
	runes := []rune(text)
	bw := bufio.NewWriter(w)
	for i := range seq {
		ch := '?'
		if i < len(runes) {
			ch = runes[i]
		}
		fmt.Fprintf(bw, "Character '%c' bitmap:\n", ch)
		bw.WriteString(seq[i].String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
