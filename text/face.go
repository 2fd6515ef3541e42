package text

import "iter"

// Glyph is one glyph of a string set on a single baseline.
type Glyph struct {
	Rune rune
	GID  GlyphID

	// X is the pen position of the glyph origin.
	X       float64
	Advance float64

	// Bounds are the ink bounds relative to the glyph origin (y down).
	Bounds Rect
}

// Face is a FontSource bound to a size in pixels per em.
// Faces are cheap to create and safe for concurrent use.
type Face interface {
	// Metrics returns the vertical metrics at this size.
	Metrics() Metrics

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Glyphs yields the glyphs of text with pen positions starting at 0.
	Glyphs(text string) iter.Seq[Glyph]

	Source() *FontSource
	Size() float64

	private()
}

type sourceFace struct {
	source *FontSource
	size   float64
}

func (f *sourceFace) Metrics() Metrics {
	return metricsFromFont(f.source.Parsed().Metrics(f.size))
}

func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.HasGlyph(r)
}

func (f *sourceFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		parsed := f.source.Parsed()
		x := 0.0
		for _, r := range text {
			gid := f.source.GlyphIndex(r)
			g := Glyph{
				Rune:    r,
				GID:     gid,
				X:       x,
				Advance: parsed.GlyphAdvance(gid, f.size),
				Bounds:  parsed.GlyphBounds(gid, f.size),
			}
			if !yield(g) {
				return
			}
			x += g.Advance
		}
	}
}

func (f *sourceFace) Source() *FontSource { return f.source }
func (f *sourceFace) Size() float64       { return f.size }
func (f *sourceFace) private()            {}
