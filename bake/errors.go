package bake

import "errors"

// Sentinel errors for bake package.
var (
	// ErrBadMagic is returned when binary input does not start with Magic.
	ErrBadMagic = errors.New("bake: not a glyph sequence")

	// ErrUnsupportedVersion is returned for binary input of an unknown version.
	ErrUnsupportedVersion = errors.New("bake: unsupported format version")

	// ErrTruncated is returned when binary input ends before the last glyph.
	ErrTruncated = errors.New("bake: truncated glyph sequence")

	// ErrInvalidIdentifier is returned when a Go package or variable name is invalid.
	ErrInvalidIdentifier = errors.New("bake: invalid Go identifier")

	// ErrUnknownEncoding is returned when ReadText is given an unknown encoding name.
	ErrUnknownEncoding = errors.New("bake: unknown text encoding")
)
