package typeface

import "github.com/gogpu/bitglyph"

// RenderFile loads the font at path, rasterizes text at size and releases
// the font before returning.
//
// Every call re-reads and re-parses the font. Load a FontSource once and use
// bitglyph.NewRenderer when rendering more than one text.
func RenderFile(path, text string, size int, opts ...SourceOption) (bitglyph.GlyphSequence, error) {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
	}()

	return bitglyph.Render(src, text, size)
}
