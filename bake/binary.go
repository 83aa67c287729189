package bake

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/bitglyph"
)

// Magic opens every binary glyph sequence.
const Magic = "BGLY"

// Version is the binary format version written by WriteBinary.
const Version = 1

// WriteBinary writes seq as Magic, a version byte, a big-endian uint32
// glyph count and then every row as a big-endian uint32.
func WriteBinary(w io.Writer, seq bitglyph.GlyphSequence) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Magic)
	bw.WriteByte(Version)

	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(seq)))
	bw.Write(word[:])

	for _, bm := range seq {
		for _, row := range bm {
			binary.BigEndian.PutUint32(word[:], row)
			bw.Write(word[:])
		}
	}
	return bw.Flush()
}

// ReadBinary decodes a sequence written by WriteBinary.
func ReadBinary(r io.Reader) (bitglyph.GlyphSequence, error) {
	br := bufio.NewReader(r)

	var header [len(Magic) + 1 + 4]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	if string(header[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if v := header[len(Magic)]; v != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	count := binary.BigEndian.Uint32(header[len(Magic)+1:])

	// Grow as glyphs arrive so a corrupt count cannot force a huge allocation.
	seq := make(bitglyph.GlyphSequence, 0, min(count, 1024))
	for i := uint32(0); i < count; i++ {
		var bm bitglyph.Bitmap
		if err := binary.Read(br, binary.BigEndian, &bm); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: glyph %d of %d", ErrTruncated, i, count)
			}
			return nil, err
		}
		seq = append(seq, bm)
	}
	return seq, nil
}
