package bitglyph

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

const (
	// DefaultSize is the font size used by RenderDefault.
	DefaultSize = 32

	// DebugSize is the fixed font size used by RenderDebug.
	// It does not follow DefaultSize.
	DebugSize = 24

	// MaxSize is the largest accepted font size. Larger sizes would
	// overflow the 26.6 fixed-point scale of font backends.
	MaxSize = 1 << 16
)

// Renderer turns text into glyph bitmaps using one font resource.
//
// Renderer holds no mutable state; it is safe for concurrent use when its
// Font is.
type Renderer struct {
	font Font
}

// NewRenderer creates a Renderer backed by f.
// The font is borrowed, not owned: closing it is up to the caller.
func NewRenderer(f Font) *Renderer {
	return &Renderer{font: f}
}

// Render rasterizes every character of text at the given size.
//
// The result has exactly one Bitmap per character (per decoded rune, with
// invalid UTF-8 bytes counting as U+FFFD) in input order. Characters the
// font cannot render produce blank bitmaps. Empty text yields an empty,
// non-nil sequence.
func (r *Renderer) Render(text string, size int) (GlyphSequence, error) {
	if err := r.check(size); err != nil {
		return nil, err
	}

	scale := float64(size)
	origin := r.origin(scale)

	seq := make(GlyphSequence, 0, utf8.RuneCountInString(text))
	for _, ch := range text {
		seq = append(seq, r.glyph(ch, scale, origin))
	}
	return seq, nil
}

// Glyph rasterizes a single character at the given size.
func (r *Renderer) Glyph(ch rune, size int) (Bitmap, error) {
	if err := r.check(size); err != nil {
		return Bitmap{}, err
	}
	scale := float64(size)
	return r.glyph(ch, scale, r.origin(scale)), nil
}

func (r *Renderer) check(size int) error {
	if r == nil || r.font == nil {
		return ErrNilFont
	}
	if size <= 0 || size > MaxSize {
		return ErrInvalidSize
	}
	return nil
}

// origin places the pen at x = 0 with the ascent line on row 0.
// Every character shares it; there is no advance between characters.
func (r *Renderer) origin(scale float64) Point {
	return Point{X: 0, Y: r.font.VMetrics(scale).Ascent}
}

func (r *Renderer) glyph(ch rune, scale float64, origin Point) Bitmap {
	g := r.font.Glyph(ch, scale, origin)
	bm := QuantizeGlyph(g)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		var bounds any = "none"
		if g != nil {
			if b, ok := g.PixelBounds(); ok {
				bounds = b
			}
		}
		log.Debug("glyph rasterized",
			"rune", string(ch),
			"scale", scale,
			"bounds", bounds,
			"set", bm.Count())
	}
	return bm
}

// Render rasterizes text with font f at the given size.
func Render(f Font, text string, size int) (GlyphSequence, error) {
	return NewRenderer(f).Render(text, size)
}

// RenderDefault rasterizes text at DefaultSize.
func RenderDefault(f Font, text string) (GlyphSequence, error) {
	return Render(f, text, DefaultSize)
}

// RenderDebug rasterizes text at DebugSize. Use bake.WriteDebug to print
// the result.
func RenderDebug(f Font, text string) (GlyphSequence, error) {
	return Render(f, text, DebugSize)
}
