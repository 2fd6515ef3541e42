package mathtext

import "math"

// BBox is an axis-aligned bounding box in math coordinates (y up),
// annotated with typesetting metrics.
//
// Advance is the absolute x position of the pen after the box, measured in
// the same frame as Min and Max. ItalicCorrection is the extra horizontal
// room a slanted glyph needs at its top right before a superscript.
//
// The zero value is the degenerate zero box.
type BBox struct {
	Min, Max         Point
	Advance          float64
	ItalicCorrection float64
}

// NewBBox returns a BBox from its edges and metrics.
func NewBBox(left, bottom, right, top, advance, italic float64) BBox {
	return BBox{
		Min:              Pt(left, bottom),
		Max:              Pt(right, top),
		Advance:          advance,
		ItalicCorrection: italic,
	}
}

// Width returns the ink width of the box.
func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the total vertical extent of the box.
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Ascent returns the height above the baseline.
func (b BBox) Ascent() float64 { return b.Max.Y }

// Descent returns the depth below the baseline, positive downwards.
func (b BBox) Descent() float64 { return -b.Min.Y }

// VerticalCenter returns the y coordinate halfway between bottom and top.
func (b BBox) VerticalCenter() float64 { return 0.5 * (b.Min.Y + b.Max.Y) }

// Translate returns b moved by p. Equivalent to p.AddBox(b).
func (b BBox) Translate(p Point) BBox {
	return p.AddBox(b)
}

// Merge returns the union of b and other.
//
// The vertical and horizontal extents are unioned and the advance is the
// furthest of both. The italic correction is kept only from the box whose
// right edge extends furthest; on an exact tie b (the receiver) wins.
func (b BBox) Merge(other BBox) BBox {
	ret := BBox{
		Min:     Pt(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)),
		Max:     Pt(b.Max.X, math.Max(b.Max.Y, other.Max.Y)),
		Advance: math.Max(b.Advance, other.Advance),
	}
	if other.Max.X > b.Max.X {
		ret.Max.X = other.Max.X
		ret.ItalicCorrection = other.ItalicCorrection
	} else {
		ret.ItalicCorrection = b.ItalicCorrection
	}
	return ret
}
