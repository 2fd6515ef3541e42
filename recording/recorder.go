package recording

import (
	"log/slog"
	"math"

	"github.com/gogpu/mathtext"
	"github.com/gogpu/mathtext/text"
)

// Recorder captures the drawing primitives of mathtext.Engine.Draw as
// commands. It measures strings with a text.FontSet, so layout and the
// recorded glyphs always agree. Use Finish to obtain an immutable
// Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(fonts, 24)
//	mathtext.Draw(rec, mathtext.Pt(10, 40), list, mathtext.Text, false)
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	fonts *text.FontSet
	size  float64

	// sizes holds a size stack per family; the base size applies when a
	// stack is empty.
	sizes [mathtext.NumFamilies][]float64

	commands  []Command
	resources *ResourcePool
	ink       BrushRef
	structure BrushRef

	config recorderConfig
}

var (
	_ mathtext.Backend        = (*Recorder)(nil)
	_ mathtext.XHeightMetrics = (*Recorder)(nil)
)

// NewRecorder creates a Recorder measuring with fonts at a base size of
// size pixels per em.
// Panics if fonts is nil.
func NewRecorder(fonts *text.FontSet, size float64, opts ...RecorderOption) *Recorder {
	if fonts == nil {
		panic("recording: NewRecorder with nil FontSet")
	}
	config := defaultRecorderConfig()
	for _, opt := range opts {
		opt(&config)
	}
	r := &Recorder{
		fonts:     fonts,
		size:      size,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		config:    config,
	}
	r.ink = r.resources.AddBrush(config.ink)
	r.structure = r.resources.AddBrush(config.structure)
	return r
}

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// FontSize returns the base font size.
func (r *Recorder) FontSize() float64 {
	return r.size
}

// SetFontSize pushes size onto the stack of family.
func (r *Recorder) SetFontSize(size float64, family mathtext.Family) {
	r.sizes[family] = append(r.sizes[family], size)
}

// ResetFontSize pops the stack of family.
// If the stack is empty, this is a no-op.
func (r *Recorder) ResetFontSize(family mathtext.Family) {
	stack := r.sizes[family]
	if len(stack) == 0 {
		mathtext.Logger().Debug("recording: unbalanced ResetFontSize",
			slog.String("family", family.String()))
		return
	}
	r.sizes[family] = stack[:len(stack)-1]
}

// currentSize returns the size family is drawn at.
func (r *Recorder) currentSize(family mathtext.Family) float64 {
	if stack := r.sizes[family]; len(stack) > 0 {
		return stack[len(stack)-1]
	}
	return r.size
}

// BoundingBox returns the box of s in family at its current size.
func (r *Recorder) BoundingBox(s string, family mathtext.Family) mathtext.BBox {
	return r.fonts.BoundingBox(s, family, r.currentSize(family))
}

// XHeight returns the x-height the font of family declares at its current
// size.
func (r *Recorder) XHeight(family mathtext.Family) float64 {
	return r.fonts.XHeight(family, r.currentSize(family))
}

// TransformLogicalToPixel returns the y flip between math and pixel space.
func (r *Recorder) TransformLogicalToPixel() mathtext.Matrix {
	return mathtext.FlipY()
}

// TransformPixelToLogical returns the y flip between pixel and math space.
func (r *Recorder) TransformPixelToLogical() mathtext.Matrix {
	return mathtext.FlipY()
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// TextRaw records s with its baseline origin at (x, y).
func (r *Recorder) TextRaw(x, y float64, s string, family mathtext.Family) {
	r.text(x, y, s, family)
}

// TextWithBoundingBox records s, the outline of its box, its baseline and,
// for slanted text, a line along the italic correction.
func (r *Recorder) TextWithBoundingBox(x, y float64, s string, family mathtext.Family) {
	r.text(x, y, s, family)

	b := r.BoundingBox(s, family)
	w := r.config.lineWidth
	r.commands = append(r.commands,
		StrokeRectCommand{
			Rect:  NewRectFromPoints(x+b.Min.X, y-b.Max.Y, x+b.Max.X, y-b.Min.Y),
			Brush: r.structure,
			Width: w,
		},
		LineCommand{X0: x, Y0: y, X1: x + b.Advance, Y1: y, Brush: r.structure, Width: w},
	)
	if b.ItalicCorrection > 0 {
		r.commands = append(r.commands, LineCommand{
			X0: x + b.Advance, Y0: y,
			X1: x + b.Advance + b.ItalicCorrection, Y1: y - b.Max.Y,
			Brush: r.structure, Width: w,
		})
	}
}

// text resolves s against the font set and records the glyph run.
func (r *Recorder) text(x, y float64, s string, family mathtext.Family) {
	placed, err := r.fonts.Place(s, family, r.currentSize(family))
	if err != nil {
		mathtext.Logger().Warn("recording: cannot place text",
			slog.String("text", s), slog.Any("error", err))
		return
	}

	glyphs := make([]GlyphRef, len(placed))
	ink := NewRect(x, y, 0, 0)
	inked := false
	for i, p := range placed {
		glyphs[i] = GlyphRef{
			Font: r.resources.AddFont(p.Source),
			Size: p.Size,
			Rune: p.Rune,
			GID:  p.GID,
			X:    p.X,
		}
		if p.Bounds.Empty() {
			continue
		}
		g := Rect{
			MinX: x + p.X + p.Bounds.MinX,
			MinY: y + p.Bounds.MinY,
			MaxX: x + p.X + p.Bounds.MaxX,
			MaxY: y + p.Bounds.MaxY,
		}
		if inked {
			ink = ink.Union(g)
		} else {
			ink, inked = g, true
		}
	}

	r.commands = append(r.commands, DrawTextCommand{
		Text:   s,
		X:      x,
		Y:      y,
		Family: family,
		Glyphs: glyphs,
		Ink:    ink,
		Brush:  r.ink,
	})
}

// Point records an origin mark.
func (r *Recorder) Point(x, y float64) {
	r.commands = append(r.commands, PointCommand{
		X:      x,
		Y:      y,
		Radius: r.config.pointRadius,
		Brush:  r.structure,
	})
}

// Rectangle records the outline of b, a box already in pixel space.
func (r *Recorder) Rectangle(b mathtext.BBox) {
	r.commands = append(r.commands, StrokeRectCommand{
		Rect:  RectFromBox(b),
		Brush: r.structure,
		Width: r.config.lineWidth,
	})
}

// FilledRectangle records a rule covering b, a box already in pixel space.
func (r *Recorder) FilledRectangle(b mathtext.BBox) {
	r.commands = append(r.commands, FillRectCommand{
		Rect:  RectFromBox(b),
		Brush: r.ink,
	})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns an immutable Recording containing all recorded commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	bounds := commandBounds(r.commands)
	width, height := r.config.width, r.config.height
	if width <= 0 || height <= 0 {
		width = max(1, int(math.Ceil(bounds.MaxX+r.config.margin)))
		height = max(1, int(math.Ceil(bounds.MaxY+r.config.margin)))
	}
	return &Recording{
		width:     width,
		height:    height,
		bounds:    bounds,
		commands:  r.commands[:len(r.commands):len(r.commands)],
		resources: r.resources,
	}
}

// commandBounds returns the union of the bounds of cmds.
func commandBounds(cmds []Command) Rect {
	var bounds Rect
	for i, c := range cmds {
		if i == 0 {
			bounds = c.Bounds()
			continue
		}
		bounds = bounds.Union(c.Bounds())
	}
	return bounds
}

// Render lays out list in style at size and records it on a canvas that
// fits the box of the list plus the margin, with the box's top-left corner
// at the margin.
func Render(fonts *text.FontSet, size float64, list mathtext.MathList, style mathtext.Style, structure bool, opts ...RecorderOption) *Recording {
	r := NewRecorder(fonts, size, opts...)
	engine := r.config.engine
	if engine == nil {
		engine = mathtext.NewEngine()
	}

	box := engine.Measure(r, list, style)
	m := r.config.margin
	origin := mathtext.Pt(m-min(0, box.Min.X), m+box.Max.Y)
	engine.Draw(r, origin, list, style, structure)

	if r.config.width <= 0 || r.config.height <= 0 {
		r.config.width = max(1, int(math.Ceil(origin.X+max(box.Max.X, box.Advance)+m)))
		r.config.height = max(1, int(math.Ceil(origin.Y-box.Min.Y+m)))
	}
	return r.Finish()
}
