package bitglyph

import "errors"

// Sentinel errors for bitglyph package.
var (
	// ErrNilFont is returned when a Renderer has no font resource.
	ErrNilFont = errors.New("bitglyph: nil font")

	// ErrInvalidSize is returned when the requested font size is not in
	// [1, MaxSize].
	ErrInvalidSize = errors.New("bitglyph: font size out of range")
)
