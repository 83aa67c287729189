// Package bake serializes glyph sequences for embedding in other programs.
//
// All formats keep 32 rows per glyph, 32 bits per row with the leftmost
// pixel in bit 31, and one glyph per input character in input order.
package bake
