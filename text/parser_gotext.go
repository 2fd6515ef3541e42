package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	// Keep the Font (safe for concurrent use); faces are created per query.
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont using font.Font.
type gotextParsedFont struct {
	font *font.Font
}

// scale returns the factor from font units to pixels at ppem.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	return ppem / float64(f.font.Upem())
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.font.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	gid, ok := f.font.Cmap.Lookup(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	face := font.NewFace(f.font)
	return float64(face.HorizontalAdvance(font.GID(gid))) * f.scale(ppem)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *gotextParsedFont) GlyphBounds(gid GlyphID, ppem float64) Rect {
	face := font.NewFace(f.font)
	ext, ok := face.GlyphExtents(font.GID(gid))
	if !ok {
		return Rect{}
	}
	s := f.scale(ppem)
	// Extents are y up: YBearing is the top, Height is negative.
	x0 := float64(ext.XBearing) * s
	x1 := float64(ext.XBearing+ext.Width) * s
	y0 := -float64(ext.YBearing) * s
	y1 := -float64(ext.YBearing+ext.Height) * s
	return Rect{
		MinX: min(x0, x1),
		MinY: min(y0, y1),
		MaxX: max(x0, x1),
		MaxY: max(y0, y1),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	face := font.NewFace(f.font)
	s := f.scale(ppem)
	ext, ok := face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:    float64(ext.Ascender) * s,
		Descent:   float64(ext.Descender) * s,
		LineGap:   float64(ext.LineGap) * s,
		XHeight:   -f.GlyphBounds(f.GlyphIndex('x'), ppem).MinY,
		CapHeight: -f.GlyphBounds(f.GlyphIndex('H'), ppem).MinY,
	}
}
