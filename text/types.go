package text

// GlyphID is a glyph index within a font. Zero is the missing glyph.
type GlyphID uint16

// Rect represents a rectangle for glyph bounds, in font space (y down,
// so MinY is the negated ascent).
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Offset returns r moved by dx horizontally.
func (r Rect) Offset(dx float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY, MaxX: r.MaxX + dx, MaxY: r.MaxY}
}
