package typeface

import (
	"errors"
	"fmt"
)

// Sentinel errors for typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrUnknownParser is returned when WithParser names an unregistered backend.
	ErrUnknownParser = errors.New("typeface: unknown font parser")

	// ErrNotOutline is returned when a glyph has no vector outline
	// (bitmap, SVG or color glyphs).
	ErrNotOutline = errors.New("typeface: glyph is not an outline")

	// ErrPPEMRange is returned when a glyph is requested at a pixels-per-em
	// value the 26.6 fixed-point outline loader cannot represent.
	ErrPPEMRange = errors.New("typeface: ppem out of range")
)

// LoadError reports a font resource that could not be loaded.
// Without a font nothing can be rendered, so callers treat it as fatal.
type LoadError struct {
	// Source identifies the font resource (a file path or a WithName label).
	Source string

	// Err is the underlying read or parse error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("typeface: cannot load font %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
