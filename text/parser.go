package text

import (
	"slices"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/opentype or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Sizes are in pixels per em; bounds are in font space, y down.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width of a glyph at ppem.
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// GlyphBounds returns the ink bounds of a glyph at ppem.
	GlyphBounds(gid GlyphID, ppem float64) Rect

	// Metrics returns the font metrics at ppem.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

var (
	parserMu sync.RWMutex
	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser, replacing any parser
// registered under the same name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the sorted names of all registered parsers.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
