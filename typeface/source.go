package typeface

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/bitglyph"
)

var _ bitglyph.Font = (*FontSource)(nil)

// FontSource is a loaded font resource.
//
// Load it once and pass it to any number of bitglyph.Renderer values.
// FontSource is safe for concurrent use. It must not be used after Close.
type FontSource struct {
	name       string
	parserName string

	// parsed keeps references into its own copy of the font data.
	data   []byte
	parsed ParsedFont

	upem    int
	extents Extents

	mu     sync.RWMutex
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// The data slice is copied internally and can be reused after this call.
//
// Any failure is returned as a *LoadError naming the resource.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if len(data) == 0 {
		return nil, &LoadError{Source: config.name, Err: ErrEmptyFontData}
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, &LoadError{
			Source: config.name,
			Err:    fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName),
		}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, &LoadError{Source: config.name, Err: err}
	}

	s := &FontSource{
		name:       config.name,
		parserName: config.parserName,
		data:       dataCopy,
		parsed:     parsed,
		upem:       parsed.UnitsPerEm(),
		extents:    parsed.Extents(),
	}

	bitglyph.Logger().Info("font loaded",
		"font", s.name,
		"parser", s.parserName,
		"unitsPerEm", s.upem,
		"bytes", len(dataCopy))
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// The path labels the resource unless WithName overrides it.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return NewFontSource(data, append([]SourceOption{WithName(path)}, opts...)...)
}

// Name returns the label of the font resource.
func (s *FontSource) Name() string {
	return s.name
}

// Parser returns the name of the parser backend that loaded the font.
func (s *FontSource) Parser() string {
	return s.parserName
}

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int {
	return s.upem
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	parsed, ok := s.load()
	return ok && parsed.GlyphIndex(r) != 0
}

// VMetrics implements bitglyph.Font.
func (s *FontSource) VMetrics(scale float64) bitglyph.VMetrics {
	if s.upem <= 0 {
		return bitglyph.VMetrics{}
	}
	factor := s.ppem(scale) / float64(s.upem)
	return bitglyph.VMetrics{
		Ascent:  s.extents.Ascent * factor,
		Descent: s.extents.Descent * factor,
		LineGap: s.extents.LineGap * factor,
	}
}

// Glyph implements bitglyph.Font. Characters missing from the font and
// glyphs without a usable outline come back without ink.
func (s *FontSource) Glyph(r rune, scale float64, origin bitglyph.Point) bitglyph.PositionedGlyph {
	parsed, ok := s.load()
	if !ok {
		bitglyph.Logger().Warn("glyph requested from closed font", "font", s.name, "rune", string(r))
		return blankGlyph
	}

	gid := parsed.GlyphIndex(r)
	if gid == 0 {
		bitglyph.Logger().Debug("glyph missing from font", "font", s.name, "rune", string(r))
		return blankGlyph
	}

	segments, err := parsed.GlyphOutline(gid, s.ppem(scale))
	if err != nil {
		bitglyph.Logger().Warn("glyph outline unavailable, rendering blank",
			"font", s.name,
			"rune", string(r),
			"gid", gid,
			"err", err)
		return blankGlyph
	}
	return newPositionedGlyph(segments, origin)
}

// Close releases the font data. Glyphs requested afterwards are blank.
func (s *FontSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.data = nil
	s.parsed = nil

	bitglyph.Logger().Info("font closed", "font", s.name)
	return nil
}

func (s *FontSource) load() (ParsedFont, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed, !s.closed
}

// ppem converts a scale (pixel distance between the ascent and descent
// lines) to pixels per em.
func (s *FontSource) ppem(scale float64) float64 {
	height := s.extents.Height()
	if height <= 0 || s.upem <= 0 {
		return scale
	}
	return scale * float64(s.upem) / height
}
