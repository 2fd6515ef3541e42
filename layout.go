package mathtext

import (
	"fmt"
	"log/slog"
)

// Engine lays out math lists against a Metrics or Backend.
//
// An Engine is immutable after creation and safe for concurrent use; all
// per-call state lives in the call. The backends themselves usually are
// not, see Metrics.
type Engine struct {
	params       Params
	defaultStyle Style
}

// NewEngine creates an engine with the Computer Modern parameters and Text
// as the default style, modified by opts.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		params:       o.params,
		defaultStyle: o.defaultStyle,
	}
}

// Params returns the engine's parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// DefaultStyle returns the style used by MeasureDefault and DrawDefault.
func (e *Engine) DefaultStyle() Style {
	return e.defaultStyle
}

// Measure returns the bounding box of list laid out in style.
// Repeated calls with the same inputs return identical boxes.
func (e *Engine) Measure(m Metrics, list MathList, style Style) BBox {
	return mergeTokens(e.newLayout(m).tokenize(list, style))
}

// MeasureDefault measures list in the engine's default style.
func (e *Engine) MeasureDefault(m Metrics, list MathList) BBox {
	return e.Measure(m, list, e.defaultStyle)
}

// Tokenize returns the positioned tokens of one layout level of n.
// Recurse tokens are not expanded.
func (e *Engine) Tokenize(m Metrics, n Node, style Style) []Token {
	return e.newLayout(m).tokenize(n, style)
}

// Extensible returns the tokens of s sized to at least height in style,
// as used for delimiters and radical signs.
func (e *Engine) Extensible(m Metrics, s MathSymbol, style Style, height float64) []Token {
	style.mustValid()
	return e.newLayout(m).tokenizeExtensible(s, style, height)
}

// Draw renders list in style with its baseline origin at origin, given in
// the backend's logical coordinates.
//
// When structure is true every list and atom also gets its baseline origin
// marked and its box outlined, and glyphs are drawn with their boxes.
func (e *Engine) Draw(b Backend, origin Point, list MathList, style Style, structure bool) {
	l := e.newLayout(b)
	l.b = b
	l.structure = structure
	l.linear = b.TransformPixelToLogical().Linear()
	Logger().Debug("mathtext: draw",
		slog.String("style", style.String()),
		slog.Int("items", len(list)),
		slog.Bool("structure", structure))
	l.draw(origin, list, style)
}

// DrawDefault draws list in the engine's default style.
func (e *Engine) DrawDefault(b Backend, origin Point, list MathList, structure bool) {
	e.Draw(b, origin, list, e.defaultStyle, structure)
}

// DefaultAxisHeight returns the height of the math axis in Text style.
func (e *Engine) DefaultAxisHeight(m Metrics) float64 {
	return e.newLayout(m).axis(Text)
}

// XHeight returns the height of a lowercase x in style.
func (e *Engine) XHeight(m Metrics, style Style) float64 {
	style.mustValid()
	return e.newLayout(m).xHeight(style)
}

// Quad returns the em size in style.
func (e *Engine) Quad(m Metrics, style Style) float64 {
	style.mustValid()
	return e.newLayout(m).em(style)
}

// defaultEngine backs the package-level functions.
var defaultEngine = NewEngine()

// Measure returns the bounding box of list laid out in style with the
// default parameters.
func Measure(m Metrics, list MathList, style Style) BBox {
	return defaultEngine.Measure(m, list, style)
}

// Draw renders list in style with the default parameters.
func Draw(b Backend, origin Point, list MathList, style Style, structure bool) {
	defaultEngine.Draw(b, origin, list, style, structure)
}

// layout is the state of a single Measure or Draw call.
type layout struct {
	p Params
	m Metrics

	// draw-only
	b         Backend
	structure bool
	linear    Matrix
}

func (e *Engine) newLayout(m Metrics) *layout {
	return &layout{p: e.params, m: m}
}

// em returns the font size of style.
func (l *layout) em(style Style) float64 {
	return l.m.FontSize() * l.p.SizeRatio(style)
}

// axis returns the height of the math axis in style.
func (l *layout) axis(style Style) float64 {
	return l.p.AxisHeight * l.em(style)
}

// xHeight returns the x-height of the regular family in style: the
// declared one when the metrics provide it, the ink height of "x" otherwise.
func (l *layout) xHeight(style Style) float64 {
	if xm, ok := l.m.(XHeightMetrics); ok {
		var h float64
		withFontSize(l.m, l.em(style), FamilyRegular, func() {
			h = xm.XHeight(FamilyRegular)
		})
		if h > 0 {
			return h
		}
	}
	return l.glyphBox("x", FamilyRegular, l.em(style)).Max.Y
}

// glyphBox measures text in family at size.
func (l *layout) glyphBox(text string, family Family, size float64) BBox {
	var b BBox
	withFontSize(l.m, size, family, func() {
		b = l.m.BoundingBox(text, family)
	})
	return b
}

// draw walks the tokens of n, recursing into Recurse tokens and drawing
// leaves and rules. Offsets are projected into logical coordinates through
// the linear part of the backend's pixel-to-logical transform.
func (l *layout) draw(origin Point, n Node, style Style) {
	tokens := l.tokenize(n, style)

	if l.structure {
		switch n.(type) {
		case MathList, Atom:
			l.b.Point(origin.X, origin.Y)
			l.b.Rectangle(origin.AddBox(l.linear.TransformBox(mergeTokens(tokens))))
		}
	}

	for _, t := range tokens {
		at := origin.Add(l.linear.TransformVector(t.Offset))
		switch p := t.Payload.(type) {
		case Recurse:
			l.draw(at, p.Node, p.Style)
		case Glyph:
			withFontSize(l.b, p.Size, p.Family, func() {
				if l.structure {
					l.b.TextWithBoundingBox(at.X, at.Y, p.Text, p.Family)
				} else {
					l.b.TextRaw(at.X, at.Y, p.Text, p.Family)
				}
			})
		case Rule:
			l.b.FilledRectangle(at.AddBox(l.linear.TransformBox(t.Box)))
		case Space:
		default:
			panic(fmt.Sprintf("mathtext: unknown payload type %T", t.Payload))
		}
	}
}
