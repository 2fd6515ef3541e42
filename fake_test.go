package mathtext

import (
	"fmt"
	"math"
)

// fakeBackend is a deterministic Backend for layout tests.
//
// Ordinary glyphs are 0.5 em wide and 0.5 em tall, sitting on the baseline.
// '█' is a tall block (2 em up, 1 em down). Stretchy symbols grow with
// the size family, and bracket pieces are 0.5 em tall. Italic families
// report an italic correction of 0.05 em.
type fakeBackend struct {
	size  float64
	sizes map[Family][]float64

	// pixelToLogical defaults to the identity.
	pixelToLogical Matrix

	sets   int
	resets int
	calls  []string
}

func newFakeBackend(size float64) *fakeBackend {
	return &fakeBackend{
		size:           size,
		sizes:          make(map[Family][]float64),
		pixelToLogical: Identity(),
	}
}

func (f *fakeBackend) FontSize() float64 { return f.size }

func (f *fakeBackend) SetFontSize(size float64, family Family) {
	f.sets++
	f.sizes[family] = append(f.sizes[family], size)
}

func (f *fakeBackend) ResetFontSize(family Family) {
	f.resets++
	stack := f.sizes[family]
	if len(stack) == 0 {
		panic("fakeBackend: unbalanced ResetFontSize for " + family.String())
	}
	f.sizes[family] = stack[:len(stack)-1]
}

// current returns the size in effect for family.
func (f *fakeBackend) current(family Family) float64 {
	if stack := f.sizes[family]; len(stack) > 0 {
		return stack[len(stack)-1]
	}
	return f.size
}

// balanced reports whether every SetFontSize has been reset.
func (f *fakeBackend) balanced() bool {
	for _, stack := range f.sizes {
		if len(stack) != 0 {
			return false
		}
	}
	return f.sets == f.resets
}

var sizeScale = map[Family]float64{
	FamilySize1: 1.2, FamilySize1Bold: 1.2,
	FamilySize2: 1.8, FamilySize2Bold: 1.8,
	FamilySize3: 2.4, FamilySize3Bold: 2.4,
	FamilySize4: 3.0, FamilySize4Bold: 3.0,
	FamilySize5: 3.6,
}

func isPiece(r rune) bool {
	return (r >= 0x239B && r <= 0x23AE) || r == 0x23B7 || r == 0x23D0 || r == 0x2320 || r == 0x2321
}

func (f *fakeBackend) BoundingBox(s string, family Family) BBox {
	em := f.current(family)
	var b BBox
	first := true
	for _, r := range s {
		var g BBox
		switch {
		case r == '█':
			g = NewBBox(0, -em, em, 2*em, em, 0)
		case isPiece(r):
			g = NewBBox(0, 0, 0.5*em, 0.5*em, 0.5*em, 0)
		case stretchyGlyphs[r]:
			scale := 1.0
			if sc, ok := sizeScale[family]; ok {
				scale = sc
			}
			h := scale * em
			g = NewBBox(0, -0.25*h, 0.4*em, 0.75*h, 0.4*em, 0)
		default:
			g = NewBBox(0, 0, 0.5*em, 0.5*em, 0.5*em, 0)
		}
		if family == FamilyItalic || family == FamilyMathItalic || family == FamilyMathBoldItalic || family == FamilyBoldItalic {
			g.Max.X += 0.05 * em
			g.ItalicCorrection = 0.05 * em
		}
		if first {
			b = g
			first = false
			continue
		}
		b = b.Merge(Pt(b.Advance, 0).AddBox(g))
	}
	return b
}

func (f *fakeBackend) TransformLogicalToPixel() Matrix {
	m, err := f.pixelToLogical.Inverse()
	if err != nil {
		panic(err)
	}
	return m
}

func (f *fakeBackend) TransformPixelToLogical() Matrix { return f.pixelToLogical }

func (f *fakeBackend) TextRaw(x, y float64, s string, family Family) {
	f.calls = append(f.calls, fmt.Sprintf("text %q %v %g @ %s", s, family, f.current(family), fmtPt(x, y)))
}

func (f *fakeBackend) TextWithBoundingBox(x, y float64, s string, family Family) {
	f.calls = append(f.calls, fmt.Sprintf("textbox %q %v %g @ %s", s, family, f.current(family), fmtPt(x, y)))
}

func (f *fakeBackend) Point(x, y float64) {
	f.calls = append(f.calls, "point @ "+fmtPt(x, y))
}

func (f *fakeBackend) Rectangle(b BBox) {
	f.calls = append(f.calls, "rect "+fmtPt(b.Min.X, b.Min.Y)+" "+fmtPt(b.Max.X, b.Max.Y))
}

func (f *fakeBackend) FilledRectangle(b BBox) {
	f.calls = append(f.calls, "fill "+fmtPt(b.Min.X, b.Min.Y)+" "+fmtPt(b.Max.X, b.Max.Y))
}

func fmtPt(x, y float64) string {
	round := func(v float64) float64 { return math.Round(v*1000) / 1000 }
	return fmt.Sprintf("(%g,%g)", round(x)+0, round(y)+0)
}

// Compile-time check.
var _ Backend = (*fakeBackend)(nil)
