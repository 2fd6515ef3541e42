// Package mathtext lays out mathematical formulae following the algorithm
// TeX uses to convert a math list into a horizontal list.
//
// # Overview
//
// The engine takes an already-parsed expression tree (a [MathList] of atoms,
// kerns, boundaries and fraction markers) and a [Style], and produces either
// its bounding box ([Engine.Measure]) or a positioned sequence of draw calls
// on a [Backend] ([Engine.Draw]).
//
//	list := mathtext.MathList{
//	    mathtext.Atom{
//	        Class:       mathtext.Ord,
//	        Nucleus:     mathtext.Sym('x'),
//	        Superscript: mathtext.Sym('2'),
//	    },
//	}
//
//	box := mathtext.Measure(metrics, list, mathtext.Text)
//	mathtext.Draw(backend, mathtext.Pt(32, 180), list, mathtext.Text, false)
//
// # Architecture
//
// The engine is organized leaf-first:
//   - Geometry: Point, Matrix, BBox
//   - Styles: the eight TeX styles and their transitions
//   - Classes and spacing: atom reclassification and the inter-atom spacing table
//   - Symbols: font family selection and extensible delimiters
//   - Tokens: the recursive emitter shared by measurement and drawing
//
// Each call is a pure function of the expression, the style and the
// backend's metrics. Nothing is cached between calls.
//
// # Coordinate System
//
// Layout happens in math coordinates:
//   - Origin (0,0) on the baseline at the left edge
//   - X increases right
//   - Y increases up (ascent is positive, descent negative)
//
// Backends map offsets into their own space through the linear part of
// [Metrics.TransformPixelToLogical].
//
// # Backends
//
// The core never loads fonts or rasterizes glyphs. See the text package for
// font metrics and the recording package for a Backend that records draw
// commands and plays them back to output backends such as raster.
package mathtext
