package recording

import (
	"github.com/gogpu/mathtext"
	"github.com/gogpu/mathtext/text"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	CmdDrawText   CommandType = iota // Draw a glyph run
	CmdFillRect                      // Fill a rectangle (rules)
	CmdStrokeRect                    // Stroke a rectangle (structure boxes)
	CmdLine                          // Stroke a line segment
	CmdPoint                         // Mark a point
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawText:   "DrawText",
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
	CmdLine:       "Line",
	CmdPoint:      "Point",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Bounds returns the pixel area the command may touch.
	Bounds() Rect
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// FontRef is a reference to a font source in the resource pool.
// The zero value is a valid reference to the first font (if any).
type FontRef uint32

// BrushRef is a reference to a brush in the resource pool.
// The zero value is a valid reference to the first brush (if any).
type BrushRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r FontRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference is not InvalidRef.
func (r BrushRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// GlyphRef is one glyph of a recorded run.
type GlyphRef struct {
	// Font references the source that holds the glyph.
	Font FontRef
	// Size is the size the glyph is drawn at, in pixels per em.
	Size float64
	// Rune is the character.
	Rune rune
	// GID is the glyph index in Font.
	GID text.GlyphID
	// X is the pen offset from the run origin.
	X float64
}

// DrawTextCommand draws a string whose baseline origin is (X, Y).
type DrawTextCommand struct {
	// Text is the string as the engine passed it.
	Text string
	// X is the horizontal position.
	X float64
	// Y is the vertical position (baseline).
	Y float64
	// Family is the family the text was requested in.
	Family mathtext.Family
	// Glyphs are the resolved glyphs, after fallback.
	Glyphs []GlyphRef
	// Ink is the ink box of the run in pixels.
	Ink Rect
	// Brush references the text color in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Bounds implements Command.
func (c DrawTextCommand) Bounds() Rect { return c.Ink }

// FillRectCommand fills a rectangle with a brush.
type FillRectCommand struct {
	// Rect is the rectangle to fill.
	Rect Rect
	// Brush references the fill brush in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// Bounds implements Command.
func (c FillRectCommand) Bounds() Rect { return c.Rect }

// StrokeRectCommand strokes the outline of a rectangle.
type StrokeRectCommand struct {
	// Rect is the rectangle to stroke.
	Rect Rect
	// Brush references the stroke brush in the resource pool.
	Brush BrushRef
	// Width is the line width in pixels.
	Width float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// Bounds implements Command.
func (c StrokeRectCommand) Bounds() Rect {
	return c.Rect.Inset(-c.Width/2, -c.Width/2)
}

// LineCommand strokes the segment from (X0, Y0) to (X1, Y1).
type LineCommand struct {
	X0, Y0, X1, Y1 float64
	// Brush references the stroke brush in the resource pool.
	Brush BrushRef
	// Width is the line width in pixels.
	Width float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// Bounds implements Command.
func (c LineCommand) Bounds() Rect {
	return NewRectFromPoints(c.X0, c.Y0, c.X1, c.Y1).Inset(-c.Width/2, -c.Width/2)
}

// PointCommand marks (X, Y) with a dot.
type PointCommand struct {
	X, Y float64
	// Radius is the dot radius in pixels.
	Radius float64
	// Brush references the dot color in the resource pool.
	Brush BrushRef
}

// Type implements Command.
func (PointCommand) Type() CommandType { return CmdPoint }

// Bounds implements Command.
func (c PointCommand) Bounds() Rect {
	return NewRect(c.X-c.Radius, c.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}
