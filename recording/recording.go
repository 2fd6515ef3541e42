package recording

import (
	"log/slog"

	"github.com/gogpu/mathtext"
)

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	bounds        Rect
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Bounds returns the union of the areas touched by the commands.
// It is the zero Rect for an empty recording.
func (r *Recording) Bounds() Rect {
	return r.bounds
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawTextCommand:
			backend.DrawText(r.resolve(c), r.resources.GetBrush(c.Brush))
		case FillRectCommand:
			backend.FillRect(c.Rect, r.resources.GetBrush(c.Brush))
		case StrokeRectCommand:
			backend.StrokeRect(c.Rect, r.resources.GetBrush(c.Brush), c.Width)
		case LineCommand:
			backend.Line(c.X0, c.Y0, c.X1, c.Y1, r.resources.GetBrush(c.Brush), c.Width)
		case PointCommand:
			backend.Point(c.X, c.Y, c.Radius, r.resources.GetBrush(c.Brush))
		default:
			mathtext.Logger().Warn("recording: skipping unknown command",
				slog.String("type", cmd.Type().String()))
		}
	}

	return backend.End()
}

// resolve replaces the font references of c with their sources.
func (r *Recording) resolve(c DrawTextCommand) TextRun {
	glyphs := make([]Glyph, len(c.Glyphs))
	for i, g := range c.Glyphs {
		glyphs[i] = Glyph{
			Source: r.resources.GetFont(g.Font),
			Size:   g.Size,
			Rune:   g.Rune,
			GID:    g.GID,
			X:      g.X,
		}
	}
	return TextRun{Text: c.Text, X: c.X, Y: c.Y, Glyphs: glyphs}
}
