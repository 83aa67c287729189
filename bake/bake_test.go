package bake

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/gogpu/bitglyph"
)

// testSequence returns two glyphs: a 4x4 block in the top-left corner and
// a single pixel in the bottom-right corner.
func testSequence() bitglyph.GlyphSequence {
	var a, b bitglyph.Bitmap
	for y := 0; y < 4; y++ {
		a[y] = 0xF0000000
	}
	b[31] = 0x00000001
	return bitglyph.GlyphSequence{a, b}
}

func TestWriteGo(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGo(&buf, testSequence(), GoOptions{Package: "font", Var: "Title", Text: "A."})
	if err != nil {
		t.Fatalf("WriteGo() error = %v", err)
	}
	src := buf.String()

	if _, err := parser.ParseFile(token.NewFileSet(), "glyphs.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	for _, want := range []string{
		"// Code generated by bitglyph; DO NOT EDIT.",
		"package font",
		"var Title = [][32]uint32{",
		"0xf0000000",
		"0x00000001",
		"// 'A'",
		"// '.'",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
	if got := strings.Count(src, "0x"); got != 64 {
		t.Errorf("generated source has %d rows, want 64", got)
	}
}

func TestWriteGoDefaultsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGo(&buf, nil, GoOptions{}); err != nil {
		t.Fatalf("WriteGo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "package glyphs") || !strings.Contains(buf.String(), "var Glyphs") {
		t.Errorf("defaults not applied:\n%s", buf.String())
	}

	for _, opts := range []GoOptions{{Package: "1bad"}, {Var: "no-dash"}} {
		if err := WriteGo(&buf, nil, opts); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("WriteGo(%+v) err = %v, want ErrInvalidIdentifier", opts, err)
		}
	}
}

func TestBinary(t *testing.T) {
	seq := testSequence()

	var buf bytes.Buffer
	if err := WriteBinary(&buf, seq); err != nil {
		t.Fatalf("WriteBinary() error = %v", err)
	}
	raw := buf.Bytes()
	if len(raw) != 4+1+4+2*32*4 {
		t.Fatalf("encoded %d bytes, want %d", len(raw), 4+1+4+2*32*4)
	}
	// First row of the first glyph, big-endian.
	if !bytes.Equal(raw[9:13], []byte{0xF0, 0, 0, 0}) {
		t.Errorf("first row bytes = % x, want f0 00 00 00", raw[9:13])
	}

	got, err := ReadBinary(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadBinary() error = %v", err)
	}
	if len(got) != len(seq) || got[0] != seq[0] || got[1] != seq[1] {
		t.Error("ReadBinary() did not return the written sequence")
	}
}

func TestReadBinaryErrors(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteBinary(&buf, testSequence())
	valid := buf.Bytes()

	tests := []struct {
		name   string
		data   []byte
		target error
	}{
		{"empty", nil, ErrTruncated},
		{"bad magic", append([]byte("NOPE"), valid[4:]...), ErrBadMagic},
		{"bad version", append(append([]byte(Magic), 9), valid[5:]...), ErrUnsupportedVersion},
		{"truncated body", valid[:len(valid)-3], ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadBinary(bytes.NewReader(tt.data)); !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestWriteHex(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHex(&buf, testSequence()); err != nil {
		t.Fatalf("WriteHex() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	words := strings.Fields(lines[0])
	if len(words) != 32 || words[0] != "f0000000" || words[4] != "00000000" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if w := strings.Fields(lines[1]); w[31] != "00000001" {
		t.Errorf("last row of glyph 1 = %q, want 00000001", w[31])
	}
}

func TestWriteDebug(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDebug(&buf, "A", testSequence()); err != nil {
		t.Fatalf("WriteDebug() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Character 'A' bitmap:\n████████  ") {
		t.Errorf("unexpected first glyph:\n%s", out)
	}
	if !strings.Contains(out, "Character '?' bitmap:") {
		t.Error("glyph without a character should be labeled '?'")
	}
	if got := strings.Count(out, "\n"); got != 2*(1+32+1) {
		t.Errorf("got %d lines, want %d", got, 2*(1+32+1))
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		want     string
	}{
		{"utf-8 default", []byte("新闻\n"), "", "新闻"},
		{"utf-8 explicit", []byte("abc"), "UTF-8", "abc"},
		{"gb18030", []byte{0xC4, 0xE3, 0xBA, 0xC3, '\r', '\n'}, "gb18030", "你好"},
		{"utf-16le", []byte{'h', 0, 'i', 0}, "utf-16le", "hi"},
		{"shift_jis", []byte{0x82, 0xA0}, "shift_jis", "あ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadText(bytes.NewReader(tt.input), tt.encoding)
			if err != nil {
				t.Fatalf("ReadText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ReadText(strings.NewReader("x"), "klingon"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("unknown encoding err = %v, want ErrUnknownEncoding", err)
	}
}
