package text

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/mathtext"
)

// familyFont is the font assigned to one family. Scale multiplies the
// requested size; size families use it to emulate larger variants.
type familyFont struct {
	source *FontSource
	scale  float64
}

// boxKey identifies a memoized string box.
type boxKey struct {
	text   string
	family mathtext.Family
	size   float64
}

// Placed is one glyph of a string resolved against a FontSet, with the
// font that actually holds the rune and the size it is drawn at. X is the
// pen position in the whole string.
type Placed struct {
	Glyph
	Source *FontSource
	Size   float64
}

// FontSet maps each mathtext.Family to a font.
//
// Families without a font of their own, and runes missing from a family's
// font, fall back along a fixed chain ending in the math family (see
// Fallbacks). Measured boxes are memoized per string, family and size.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	mu     sync.RWMutex
	fonts  [mathtext.NumFamilies]familyFont
	boxes  *Cache[boxKey, mathtext.BBox]
	config fontSetConfig
}

// NewFontSet creates an empty font set.
func NewFontSet(opts ...FontSetOption) *FontSet {
	config := defaultFontSetConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &FontSet{
		boxes:  NewCache[boxKey, mathtext.BBox](config.boxCacheLimit),
		config: config,
	}
}

// Set assigns src to family.
func (fs *FontSet) Set(family mathtext.Family, src *FontSource) {
	fs.SetScaled(family, src, 1)
}

// SetScaled assigns src to family, drawn at scale times the requested size.
// Panics on an unknown family or a non-positive scale.
func (fs *FontSet) SetScaled(family mathtext.Family, src *FontSource, scale float64) {
	if family >= mathtext.NumFamilies {
		panic(fmt.Sprintf("text: invalid family %d", family))
	}
	if scale <= 0 {
		panic(fmt.Sprintf("text: invalid scale %v for %v", scale, family))
	}
	fs.mu.Lock()
	fs.fonts[family] = familyFont{source: src, scale: scale}
	fs.mu.Unlock()
	fs.boxes.Clear()
}

// Fallbacks returns the families searched, in order, for a font or a glyph
// of family. The first element is family itself.
func Fallbacks(family mathtext.Family) []mathtext.Family {
	switch family {
	case mathtext.FamilyPlain:
		return []mathtext.Family{family, mathtext.FamilyRegular, mathtext.FamilyMathRegular}
	case mathtext.FamilyRegular:
		return []mathtext.Family{family, mathtext.FamilyPlain, mathtext.FamilyMathRegular}
	case mathtext.FamilyItalic:
		return []mathtext.Family{family, mathtext.FamilyMathItalic, mathtext.FamilyRegular, mathtext.FamilyMathRegular}
	case mathtext.FamilyBold:
		return []mathtext.Family{family, mathtext.FamilyMathBold, mathtext.FamilyRegular, mathtext.FamilyMathRegular}
	case mathtext.FamilyBoldItalic:
		return []mathtext.Family{family, mathtext.FamilyMathBoldItalic, mathtext.FamilyBold, mathtext.FamilyItalic, mathtext.FamilyMathRegular}
	case mathtext.FamilyMathRegular:
		return []mathtext.Family{family, mathtext.FamilyRegular, mathtext.FamilyPlain}
	case mathtext.FamilyMathItalic:
		return []mathtext.Family{family, mathtext.FamilyItalic, mathtext.FamilyMathRegular}
	case mathtext.FamilyMathBold:
		return []mathtext.Family{family, mathtext.FamilyBold, mathtext.FamilyMathRegular}
	case mathtext.FamilyMathBoldItalic:
		return []mathtext.Family{family, mathtext.FamilyBoldItalic, mathtext.FamilyMathBold, mathtext.FamilyMathItalic, mathtext.FamilyMathRegular}
	case mathtext.FamilySize1Bold:
		return []mathtext.Family{family, mathtext.FamilySize1, mathtext.FamilyMathBold, mathtext.FamilyMathRegular}
	case mathtext.FamilySize2Bold:
		return []mathtext.Family{family, mathtext.FamilySize2, mathtext.FamilyMathBold, mathtext.FamilyMathRegular}
	case mathtext.FamilySize3Bold:
		return []mathtext.Family{family, mathtext.FamilySize3, mathtext.FamilyMathBold, mathtext.FamilyMathRegular}
	case mathtext.FamilySize4Bold:
		return []mathtext.Family{family, mathtext.FamilySize4, mathtext.FamilyMathBold, mathtext.FamilyMathRegular}
	}
	return []mathtext.Family{family, mathtext.FamilyMathRegular}
}

// Resolve returns the font used for family and its scale.
// It returns ErrUnknownFamily if no family on the fallback chain has a font.
func (fs *FontSet) Resolve(family mathtext.Family) (*FontSource, float64, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	for _, f := range Fallbacks(family) {
		if ff := fs.fonts[f]; ff.source != nil {
			return ff.source, ff.scale, nil
		}
	}
	return nil, 0, fmt.Errorf("%w %v", ErrUnknownFamily, family)
}

// Face returns the face of family at size, scale applied.
func (fs *FontSet) Face(family mathtext.Family, size float64) (Face, error) {
	src, scale, err := fs.Resolve(family)
	if err != nil {
		return nil, err
	}
	return src.Face(size * scale), nil
}

// fontFor returns the first font on the fallback chain of family that has
// a glyph for r, or the family's own font (drawing .notdef) if none has.
func (fs *FontSet) fontFor(r rune, family mathtext.Family) (familyFont, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	var first familyFont
	for i, f := range Fallbacks(family) {
		ff := fs.fonts[f]
		if ff.source == nil {
			continue
		}
		if first.source == nil {
			first = ff
		}
		if ff.source.HasGlyph(r) {
			if i > 0 {
				mathtext.Logger().Debug("text: glyph from fallback family",
					slog.String("rune", string(r)),
					slog.String("family", family.String()),
					slog.String("fallback", f.String()))
			}
			return ff, true
		}
	}
	return first, first.source != nil
}

// normalize applies NFC when enabled.
func (fs *FontSet) normalize(s string) string {
	if fs.config.normalize {
		return norm.NFC.String(s)
	}
	return s
}

// Place resolves every rune of s in family at size and positions the
// glyphs along the baseline. Consecutive runes held by the same font are
// laid out as one run of that font's face.
func (fs *FontSet) Place(s string, family mathtext.Family, size float64) ([]Placed, error) {
	s = fs.normalize(s)
	placed := make([]Placed, 0, len(s))
	x := 0.0

	var cur familyFont
	start := 0
	flush := func(end int) {
		if cur.source == nil || end == start {
			return
		}
		face := cur.source.Face(size * cur.scale)
		for g := range face.Glyphs(s[start:end]) {
			g.X += x
			placed = append(placed, Placed{Glyph: g, Source: cur.source, Size: face.Size()})
		}
		if n := len(placed); n > 0 {
			last := placed[n-1]
			x = last.X + last.Advance
		}
	}

	for i, r := range s {
		ff, ok := fs.fontFor(r, family)
		if !ok {
			return nil, fmt.Errorf("%w %v", ErrUnknownFamily, family)
		}
		if !ff.source.HasGlyph(r) {
			mathtext.Logger().Warn("text: missing glyph",
				slog.String("rune", string(r)),
				slog.String("family", family.String()))
		}
		if ff != cur {
			flush(i)
			cur, start = ff, i
		}
	}
	flush(len(s))
	return placed, nil
}

// XHeight returns the x-height the font of family declares at size, or 0
// when the family has no font or the font declares none.
func (fs *FontSet) XHeight(family mathtext.Family, size float64) float64 {
	face, err := fs.Face(family, size)
	if err != nil {
		return 0
	}
	return face.Metrics().XHeight
}

// BoundingBox returns the box of s in family at size, in math coordinates
// (y up). The advance is the sum of glyph advances and the italic
// correction is how far the ink overhangs the advance on the right.
// Strings without ink get a flat box as wide as their advance; strings that
// cannot be resolved get the zero box.
func (fs *FontSet) BoundingBox(s string, family mathtext.Family, size float64) mathtext.BBox {
	key := boxKey{text: s, family: family, size: size}
	if b, ok := fs.boxes.Get(key); ok {
		return b
	}

	placed, err := fs.Place(s, family, size)
	if err != nil {
		mathtext.Logger().Warn("text: cannot measure", slog.String("text", s), slog.Any("error", err))
		return mathtext.BBox{}
	}

	var ink Rect
	advance := 0.0
	for _, p := range placed {
		ink = ink.Union(p.Bounds.Offset(p.X))
		advance += p.Advance
	}

	var b mathtext.BBox
	if ink.Empty() {
		b = mathtext.NewBBox(0, 0, advance, 0, advance, 0)
	} else {
		b = mathtext.NewBBox(ink.MinX, -ink.MaxY, ink.MaxX, -ink.MinY, advance, max(0, ink.MaxX-advance))
	}
	fs.boxes.Set(key, b)
	return b
}
