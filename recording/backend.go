package recording

import (
	"image"
	"io"

	"github.com/gogpu/mathtext/text"
)

// Glyph is a recorded glyph with its font resolved, as handed to a Backend.
type Glyph struct {
	Source *text.FontSource
	Size   float64
	Rune   rune
	GID    text.GlyphID
	X      float64
}

// TextRun is a string resolved to glyphs, with its baseline origin at (X, Y).
type TextRun struct {
	Text   string
	X, Y   float64
	Glyphs []Glyph
}

// Backend is the interface that all output backends must implement.
// Backends receive the recorded primitives and translate them to their
// output format (raster pixels, vector content streams, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Accept pixel coordinates with y pointing down
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewSVGBackend()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (WriteTo, SaveToFile) can be used.
	End() error

	// DrawText draws a glyph run.
	DrawText(run TextRun, brush Brush)

	// FillRect fills an axis-aligned rectangle.
	FillRect(rect Rect, brush Brush)

	// StrokeRect strokes the outline of an axis-aligned rectangle.
	StrokeRect(rect Rect, brush Brush, width float64)

	// Line strokes a segment.
	Line(x0, y0, x1, y1 float64, brush Brush, width float64)

	// Point draws a dot of the given radius.
	Point(x, y, radius float64, brush Brush)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}
