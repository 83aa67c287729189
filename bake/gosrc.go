package bake

import (
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"github.com/gogpu/bitglyph"
)

// GoOptions controls WriteGo output.
type GoOptions struct {
	// Package is the package clause of the generated file. Default "glyphs".
	Package string

	// Var is the name of the generated variable. Default "Glyphs".
	Var string

	// Text is the source text, used for comments. Optional.
	Text string
}

// WriteGo writes seq as a gofmt-formatted Go source file declaring
//
//	var Glyphs = [][32]uint32{...}
//
// with one element per glyph in order.
func WriteGo(w io.Writer, seq bitglyph.GlyphSequence, opts GoOptions) error {
	if opts.Package == "" {
		opts.Package = "glyphs"
	}
	if opts.Var == "" {
		opts.Var = "Glyphs"
	}
	for _, ident := range []string{opts.Package, opts.Var} {
		if !token.IsIdentifier(ident) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident)
		}
	}

	runes := []rune(opts.Text)

	var sb strings.Builder
	sb.WriteString("// Code generated by bitglyph; DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", opts.Package)
	if opts.Text != "" {
		fmt.Fprintf(&sb, "// %s holds the %dx%d bitmaps of %q, one per character.\n",
			opts.Var, bitglyph.Size, bitglyph.Size, opts.Text)
	} else {
		fmt.Fprintf(&sb, "// %s holds %d glyph bitmaps of %dx%d pixels.\n",
			opts.Var, len(seq), bitglyph.Size, bitglyph.Size)
	}
	sb.WriteString("// Row 0 is the top scanline; bit 31 is the leftmost pixel.\n")
	fmt.Fprintf(&sb, "var %s = [][%d]uint32{\n", opts.Var, bitglyph.Size)
	for i, bm := range seq {
		if i < len(runes) {
			fmt.Fprintf(&sb, "{ // %q\n", runes[i])
		} else {
			sb.WriteString("{\n")
		}
		for j, row := range bm {
			fmt.Fprintf(&sb, "0x%08x,", row)
			if j%4 == 3 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("},\n")
	}
	sb.WriteString("}\n")

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return fmt.Errorf("bake: failed to format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
