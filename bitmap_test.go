package bitglyph

import (
	"strings"
	"testing"
)

func TestBitmapBit(t *testing.T) {
	var bm Bitmap
	bm[0] = 0x80000000
	bm[31] = 0x00000001

	if !bm.Bit(0, 0) {
		t.Error("Bit(0, 0) should be set (bit 31 is the leftmost column)")
	}
	if !bm.Bit(31, 31) {
		t.Error("Bit(31, 31) should be set (bit 0 is the rightmost column)")
	}
	if bm.Bit(1, 0) {
		t.Error("Bit(1, 0) should be clear")
	}
	if bm.Bit(-1, 0) || bm.Bit(0, 32) {
		t.Error("out-of-range coordinates must report false")
	}
}

func TestBitmapCountAndBlank(t *testing.T) {
	var bm Bitmap
	if !bm.IsBlank() || bm.Count() != 0 {
		t.Fatal("zero Bitmap should be blank")
	}
	bm[3] = 0xF0000000
	bm[4] = 0x1
	if bm.IsBlank() {
		t.Error("IsBlank() = true, want false")
	}
	if bm.Count() != 5 {
		t.Errorf("Count() = %d, want 5", bm.Count())
	}
}

func TestBitmapString(t *testing.T) {
	var bm Bitmap
	bm[0] = 0xC0000000

	lines := strings.Split(strings.TrimSuffix(bm.String(), "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("got %d lines, want %d", len(lines), Size)
	}
	if !strings.HasPrefix(lines[0], "████  ") {
		t.Errorf("line 0 = %q, want two set pixels first", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Errorf("line 1 = %q, want blank", lines[1])
	}
}
