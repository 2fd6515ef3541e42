package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont
	name   string

	// glyphs memoizes rune lookups.
	glyphs *Cache[rune, GlyphID]

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure caching and parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		glyphs: NewCache[rune, GlyphID](config.cacheLimit),
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSource?")
	}
	s.copyCheck()
	return &sourceFace{source: s, size: size}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font file. The slice must not be modified.
// Rasterizing backends parse it with their own font library.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// ParserName returns the name of the parser that loaded the source.
func (s *FontSource) ParserName() string {
	return s.config.parserName
}

// GlyphIndex returns the glyph of r, or 0 if the font lacks it.
func (s *FontSource) GlyphIndex(r rune) GlyphID {
	s.copyCheck()
	return s.glyphs.GetOrCreate(r, func() GlyphID {
		return s.Parsed().GlyphIndex(r)
	})
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	return s.GlyphIndex(r) != 0
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	s.glyphs.Clear()
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
