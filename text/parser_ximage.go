package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// All metrics are unhinted.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(gid GlyphID, ppem float64) Rect {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := -fixedToFloat64(m.Descent)
	return FontMetrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat64(m.Height) - ascent + descent,
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// floatToFixed converts float64 to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
