// Package recording provides a mathtext.Backend that records drawing
// operations instead of rasterizing them.
//
// A Recorder measures strings with a text.FontSet and captures the
// primitives issued by mathtext.Engine.Draw (glyph runs, rules, structure
// boxes and origin marks) as typed command structures. The finished
// Recording is immutable and can be replayed to any output Backend, which
// keeps the layout engine independent of the output format.
//
// # Architecture
//
// Commands capture the drawing primitives:
//   - DrawTextCommand: a string resolved to glyphs and fonts
//   - FillRectCommand: a rule (fraction bar, radical overbar, ...)
//   - StrokeRectCommand: a structure or glyph box outline
//   - LineCommand: a baseline or italic slant marker
//   - PointCommand: a node origin
//
// Fonts and brushes are stored in a ResourcePool and referenced by typed
// handles (FontRef, BrushRef), so a run of glyphs from the same font does
// not repeat the font.
//
// Coordinates are pixels with y pointing down. The Recorder reports a
// y-flip as its pixel-to-logical transform, so the engine's y-up layout
// offsets land the right way up.
//
// # Example
//
//	fonts, _ := text.LatinModern()
//	rec := recording.NewRecorder(fonts, 24)
//	mathtext.Draw(rec, mathtext.Pt(10, 40), list, mathtext.Display, false)
//	r := rec.Finish()
//
//	// Replay to a registered backend by name
//	out, err := r.PlaybackTo("raster")
//	img := out.(recording.ImageBackend).Image()
//
// Output backends register themselves by name, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/mathtext/recording/backends/raster"
package recording
