package typeface

import (
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF, OTF or the first face of a TTC).
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Extents returns the vertical extents in font units.
	Extents() Extents

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphOutline returns the outline of a glyph scaled to ppem pixels per
	// em. Coordinates are in pixels relative to the glyph origin on the
	// baseline, with Y increasing downward. A glyph without contours (space)
	// returns no segments and no error.
	GlyphOutline(gid uint16, ppem float64) ([]Segment, error)
}

// Extents holds font-wide vertical extents in font units.
type Extents struct {
	// Ascent is the distance from the baseline to the ascent line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the descent line (positive).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the distance between the ascent and descent lines.
func (e Extents) Height() float64 {
	return e.Ascent + e.Descent
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// RegisterParser registers a custom font parser under name,
// replacing any parser already registered with that name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
