package recording

import (
	"errors"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathtext"
	"github.com/gogpu/mathtext/text"
)

var (
	lmOnce  sync.Once
	lmFonts *text.FontSet
	lmErr   error
)

// latinModern shares one font set across tests; parsing is the slow part.
func latinModern(t *testing.T) *text.FontSet {
	t.Helper()
	lmOnce.Do(func() { lmFonts, lmErr = text.LatinModern() })
	require.NoError(t, lmErr)
	return lmFonts
}

func ord(f mathtext.Field) mathtext.Atom {
	return mathtext.Atom{Class: mathtext.Ord, Nucleus: f}
}

func balanced(r *Recorder) bool {
	for _, s := range r.sizes {
		if len(s) != 0 {
			return false
		}
	}
	return true
}

func TestNewRecorderNilFonts(t *testing.T) {
	assert.Panics(t, func() { NewRecorder(nil, 10) })
}

func TestRecorderFontSizeStack(t *testing.T) {
	fonts := latinModern(t)
	rec := NewRecorder(fonts, 20)

	assert.Equal(t, 20.0, rec.FontSize())
	assert.Equal(t, 20.0, rec.currentSize(mathtext.FamilyRegular))

	rec.SetFontSize(14, mathtext.FamilyRegular)
	rec.SetFontSize(10, mathtext.FamilyRegular)
	assert.Equal(t, 10.0, rec.currentSize(mathtext.FamilyRegular))
	assert.Equal(t, 20.0, rec.currentSize(mathtext.FamilyItalic), "stacks are per family")
	assert.Equal(t, 20.0, rec.FontSize(), "FontSize is the base size")

	assert.Equal(t,
		fonts.BoundingBox("x", mathtext.FamilyRegular, 10),
		rec.BoundingBox("x", mathtext.FamilyRegular))

	rec.ResetFontSize(mathtext.FamilyRegular)
	assert.Equal(t, 14.0, rec.currentSize(mathtext.FamilyRegular))
	rec.ResetFontSize(mathtext.FamilyRegular)
	assert.Equal(t, 20.0, rec.currentSize(mathtext.FamilyRegular))

	assert.NotPanics(t, func() { rec.ResetFontSize(mathtext.FamilyRegular) })
	assert.True(t, balanced(rec))
}

func TestRecorderTransforms(t *testing.T) {
	rec := NewRecorder(text.NewFontSet(), 10)
	p := rec.TransformPixelToLogical().TransformPoint(mathtext.Pt(3, 4))
	assert.Equal(t, mathtext.Pt(3, -4), p)
	p = rec.TransformLogicalToPixel().TransformPoint(p)
	assert.Equal(t, mathtext.Pt(3, 4), p)
}

func TestRecorderPrimitives(t *testing.T) {
	rec := NewRecorder(text.NewFontSet(), 10, WithPointRadius(2), WithLineWidth(1))

	rec.FilledRectangle(mathtext.NewBBox(1, 2, 5, 3, 5, 0))
	rec.Rectangle(mathtext.NewBBox(0, 0, 8, 6, 8, 0))
	rec.Point(4, 5)

	cmds := rec.Finish().Commands()
	require.Len(t, cmds, 3)

	fill, ok := cmds[0].(FillRectCommand)
	require.True(t, ok, "got %T", cmds[0])
	assert.Equal(t, Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 3}, fill.Rect)
	assert.Equal(t, rec.ink, fill.Brush)

	stroke, ok := cmds[1].(StrokeRectCommand)
	require.True(t, ok, "got %T", cmds[1])
	assert.Equal(t, Rect{MaxX: 8, MaxY: 6}, stroke.Rect)
	assert.Equal(t, rec.structure, stroke.Brush)
	assert.Equal(t, 1.0, stroke.Width)

	pt, ok := cmds[2].(PointCommand)
	require.True(t, ok, "got %T", cmds[2])
	assert.Equal(t, PointCommand{X: 4, Y: 5, Radius: 2, Brush: rec.structure}, pt)
}

func TestRecorderBrushes(t *testing.T) {
	blue := color.RGBA{B: 0xff, A: 0xff}
	rec := NewRecorder(text.NewFontSet(), 10, WithInk(blue), WithStructureColor(blue))
	assert.Equal(t, rec.ink, rec.structure, "equal solid brushes are pooled once")
	assert.Equal(t, blue, BrushColor(rec.resources.GetBrush(rec.ink)))

	rec = NewRecorder(text.NewFontSet(), 10)
	assert.Equal(t, Black, rec.resources.GetBrush(rec.ink))
	assert.Equal(t, Structure, rec.resources.GetBrush(rec.structure))
}

func TestRecorderTextRaw(t *testing.T) {
	fonts := latinModern(t)
	rec := NewRecorder(fonts, 20)

	rec.TextRaw(10, 30, "ab", mathtext.FamilyRegular)

	cmds := rec.Finish().Commands()
	require.Len(t, cmds, 1)
	cmd, ok := cmds[0].(DrawTextCommand)
	require.True(t, ok, "got %T", cmds[0])

	assert.Equal(t, "ab", cmd.Text)
	assert.Equal(t, 10.0, cmd.X)
	assert.Equal(t, 30.0, cmd.Y)
	assert.Equal(t, mathtext.FamilyRegular, cmd.Family)
	require.Len(t, cmd.Glyphs, 2)
	assert.Equal(t, cmd.Glyphs[0].Font, cmd.Glyphs[1].Font)
	assert.Equal(t, 1, rec.resources.FontCount())
	assert.Zero(t, cmd.Glyphs[0].X)
	assert.Positive(t, cmd.Glyphs[1].X)
	assert.Equal(t, 20.0, cmd.Glyphs[0].Size)

	// Pixel space is y down: ink rises above the baseline.
	assert.Less(t, cmd.Ink.MinY, 30.0)
	assert.GreaterOrEqual(t, cmd.Ink.MinX, 10.0)

	box := fonts.BoundingBox("ab", mathtext.FamilyRegular, 20)
	assert.InDelta(t, 30-box.Max.Y, cmd.Ink.MinY, 1e-6)
}

func TestRecorderTextUsesStackedSize(t *testing.T) {
	rec := NewRecorder(latinModern(t), 20)
	rec.SetFontSize(7, mathtext.FamilyMathRegular)
	rec.TextRaw(0, 0, "+", mathtext.FamilyMathRegular)
	rec.ResetFontSize(mathtext.FamilyMathRegular)

	cmd := rec.Finish().Commands()[0].(DrawTextCommand)
	assert.Equal(t, 7.0, cmd.Glyphs[0].Size)
}

func TestRecorderTextSizeFamilyScale(t *testing.T) {
	rec := NewRecorder(latinModern(t), 10)
	rec.TextRaw(0, 0, "(", mathtext.FamilySize3)

	cmd := rec.Finish().Commands()[0].(DrawTextCommand)
	assert.InDelta(t, 24.0, cmd.Glyphs[0].Size, 1e-9)
}

func TestRecorderTextWithBoundingBox(t *testing.T) {
	fonts := latinModern(t)
	rec := NewRecorder(fonts, 20)

	rec.TextWithBoundingBox(5, 25, "f", mathtext.FamilyMathItalic)

	cmds := rec.Finish().Commands()
	require.GreaterOrEqual(t, len(cmds), 3)
	assert.Equal(t, CmdDrawText, cmds[0].Type())
	assert.Equal(t, CmdStrokeRect, cmds[1].Type())
	assert.Equal(t, CmdLine, cmds[2].Type())

	box := fonts.BoundingBox("f", mathtext.FamilyMathItalic, 20)
	outline := cmds[1].(StrokeRectCommand).Rect
	assert.InDelta(t, 25-box.Max.Y, outline.MinY, 1e-9)
	assert.InDelta(t, 25-box.Min.Y, outline.MaxY, 1e-9)

	baseline := cmds[2].(LineCommand)
	assert.Equal(t, 25.0, baseline.Y0)
	assert.Equal(t, 25.0, baseline.Y1)
	assert.InDelta(t, 5+box.Advance, baseline.X1, 1e-9)

	if box.ItalicCorrection > 0 {
		require.Len(t, cmds, 4)
		slant := cmds[3].(LineCommand)
		assert.InDelta(t, 5+box.Advance+box.ItalicCorrection, slant.X1, 1e-9)
	} else {
		assert.Len(t, cmds, 3)
	}
}

func TestRecorderTextWithoutFonts(t *testing.T) {
	rec := NewRecorder(text.NewFontSet(), 10)
	rec.TextRaw(0, 0, "x", mathtext.FamilyRegular)
	assert.Zero(t, rec.Len())
}

func TestRecorderDrawFraction(t *testing.T) {
	rec := NewRecorder(latinModern(t), 24)
	list := mathtext.MathList{
		ord(mathtext.Sym('a')),
		mathtext.Fraction{RuleRatio: 1},
		ord(mathtext.Sym('b')),
	}

	mathtext.Draw(rec, mathtext.Pt(10, 60), list, mathtext.Display, false)
	assert.True(t, balanced(rec), "every SetFontSize is reset")

	var texts []DrawTextCommand
	var rules []FillRectCommand
	for _, c := range rec.Finish().Commands() {
		switch c := c.(type) {
		case DrawTextCommand:
			texts = append(texts, c)
		case FillRectCommand:
			rules = append(rules, c)
		default:
			t.Errorf("unexpected %v command", c.Type())
		}
	}
	require.Len(t, texts, 2)
	require.Len(t, rules, 1)

	num, den, rule := texts[0], texts[1], rules[0].Rect
	assert.Equal(t, "a", num.Text)
	assert.Equal(t, "b", den.Text)
	assert.Positive(t, rule.Height())
	assert.Less(t, num.Y, rule.MinY, "numerator baseline is above the rule")
	assert.Less(t, num.Ink.MaxY, rule.MinY)
	assert.Greater(t, den.Ink.MinY, rule.MaxY)
	assert.Less(t, rule.MinY, 60.0, "the rule sits on the axis, above the baseline")
}

func TestRecorderDrawStructure(t *testing.T) {
	rec := NewRecorder(latinModern(t), 24)
	list := mathtext.MathList{mathtext.Atom{
		Class:       mathtext.Ord,
		Nucleus:     mathtext.Sym('x'),
		Superscript: mathtext.Sym('2'),
	}}

	mathtext.Draw(rec, mathtext.Pt(10, 40), list, mathtext.Text, true)

	counts := map[CommandType]int{}
	for _, c := range rec.Finish().Commands() {
		counts[c.Type()]++
	}
	assert.Equal(t, 2, counts[CmdDrawText])
	assert.Positive(t, counts[CmdPoint])
	assert.Greater(t, counts[CmdStrokeRect], counts[CmdPoint], "glyph boxes plus node boxes")
	assert.Positive(t, counts[CmdLine])
	assert.True(t, balanced(rec))
}

func TestRecorderFinish(t *testing.T) {
	rec := NewRecorder(text.NewFontSet(), 10, WithMargin(3))
	rec.FilledRectangle(mathtext.NewBBox(10, 20, 30, 22, 30, 0))
	rec.FilledRectangle(mathtext.NewBBox(5, 40, 6, 41.5, 6, 0))

	r := rec.Finish()
	assert.Equal(t, Rect{MinX: 5, MinY: 20, MaxX: 30, MaxY: 41.5}, r.Bounds())
	assert.Equal(t, 33, r.Width())
	assert.Equal(t, 45, r.Height())
	assert.Len(t, r.Commands(), 2)
	assert.NotNil(t, r.Resources())

	rec.FilledRectangle(mathtext.NewBBox(0, 0, 1, 1, 1, 0))
	assert.Len(t, r.Commands(), 2, "recording does not see later commands")

	fixed := NewRecorder(text.NewFontSet(), 10, WithCanvas(64, 32)).Finish()
	assert.Equal(t, 64, fixed.Width())
	assert.Equal(t, 32, fixed.Height())
	assert.Equal(t, Rect{}, fixed.Bounds())
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder(latinModern(t), 12)
	rec.TextRaw(1, 10, "y", mathtext.FamilyMathItalic)
	rec.FilledRectangle(mathtext.NewBBox(0, 11, 4, 12, 4, 0))
	rec.Rectangle(mathtext.NewBBox(0, 0, 4, 12, 4, 0))
	rec.TextWithBoundingBox(5, 10, "1", mathtext.FamilyRegular)
	rec.Point(2, 2)
	r := rec.Finish()

	mock := newMockBackend("mock")
	require.NoError(t, r.Playback(mock))

	assert.Equal(t, 1, mock.beginCalls)
	assert.Equal(t, 1, mock.endCalls)
	assert.Equal(t, r.Width(), mock.width)
	assert.Equal(t, r.Height(), mock.height)
	assert.Len(t, mock.calls, len(r.Commands()))
	assert.Equal(t, `text "y"`, mock.calls[0])
	assert.Equal(t, "fill 0,11 4,12", mock.calls[1])
	assert.Equal(t, "stroke 0,0 4,12", mock.calls[2])
	assert.Equal(t, "point 2,2", mock.calls[len(mock.calls)-1])

	require.Len(t, mock.runs, 2)
	run := mock.runs[0]
	require.Len(t, run.Glyphs, 1)
	assert.NotNil(t, run.Glyphs[0].Source)
	assert.Equal(t, 'y', run.Glyphs[0].Rune)
	assert.Equal(t, run.Glyphs[0].Source.GlyphIndex('y'), run.Glyphs[0].GID)
}

func TestRecordingPlaybackErrors(t *testing.T) {
	rec := NewRecorder(text.NewFontSet(), 10)
	rec.Point(1, 1)
	r := rec.Finish()

	errBegin := errors.New("begin failed")
	mock := newMockBackend("mock")
	mock.beginErr = errBegin
	assert.ErrorIs(t, r.Playback(mock), errBegin)
	assert.Empty(t, mock.calls, "nothing is drawn after a failed Begin")
	assert.Zero(t, mock.endCalls)

	errEnd := errors.New("end failed")
	mock = newMockBackend("mock")
	mock.endErr = errEnd
	assert.ErrorIs(t, r.Playback(mock), errEnd)
	assert.Len(t, mock.calls, 1)
}

func TestRender(t *testing.T) {
	list := mathtext.MathList{
		mathtext.Boundary{Symbol: mathtext.Sym('(')},
		ord(mathtext.Sym('a')),
		mathtext.Fraction{RuleRatio: 1},
		ord(mathtext.Sym('b')),
		mathtext.Boundary{Symbol: mathtext.Sym(')')},
	}

	r := Render(latinModern(t), 30, list, mathtext.Display, false, WithMargin(4))
	require.NotEmpty(t, r.Commands())

	b := r.Bounds()
	assert.GreaterOrEqual(t, b.MinX, 0.0)
	assert.GreaterOrEqual(t, b.MinY, 0.0)
	assert.LessOrEqual(t, b.MaxX, float64(r.Width()))
	assert.LessOrEqual(t, b.MaxY, float64(r.Height()))
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdDrawText, "DrawText"},
		{CmdFillRect, "FillRect"},
		{CmdStrokeRect, "StrokeRect"},
		{CmdLine, "Line"},
		{CmdPoint, "Point"},
		{CommandType(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestCommandBounds(t *testing.T) {
	assert.Equal(t, Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 6},
		PointCommand{X: 3, Y: 4, Radius: 2}.Bounds())
	assert.Equal(t, Rect{MinX: -0.5, MinY: -0.5, MaxX: 10.5, MaxY: 0.5},
		LineCommand{X1: 10, Width: 1}.Bounds())
	assert.Equal(t, Rect{MinX: -1, MinY: -1, MaxX: 3, MaxY: 3},
		StrokeRectCommand{Rect: NewRect(0, 0, 2, 2), Width: 2}.Bounds())
}

func TestResourcePool(t *testing.T) {
	pool := NewResourcePool()
	src, _, err := latinModern(t).Resolve(mathtext.FamilyRegular)
	require.NoError(t, err)

	a := pool.AddFont(src)
	assert.Equal(t, a, pool.AddFont(src))
	assert.Equal(t, 1, pool.FontCount())
	assert.Same(t, src, pool.GetFont(a))
	assert.Nil(t, pool.GetFont(FontRef(5)))

	red := NewSolidBrush(color.RGBA{R: 0xff, A: 0xff})
	r1 := pool.AddBrush(red)
	assert.Equal(t, r1, pool.AddBrush(red))
	assert.NotEqual(t, r1, pool.AddBrush(Black))
	assert.Equal(t, 2, pool.BrushCount())
	assert.Nil(t, pool.GetBrush(BrushRef(9)))

	pool.Clear()
	assert.Zero(t, pool.FontCount())
	assert.Zero(t, pool.BrushCount())
	assert.Equal(t, FontRef(0), pool.AddFont(src))

	assert.False(t, FontRef(InvalidRef).IsValid())
	assert.True(t, BrushRef(0).IsValid())
}

func TestRect(t *testing.T) {
	r := NewRectFromPoints(4, 6, 1, 2)
	assert.Equal(t, Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}, r)
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 4.0, r.Height())
	assert.True(t, r.Contains(2, 3))
	assert.False(t, r.Contains(0, 3))
	assert.False(t, NewRect(0, 0, 5, 0).IsEmpty(), "a flat rule is not empty")
	assert.True(t, Rect{}.IsEmpty())
	assert.Equal(t, Rect{MinX: 0, MinY: 2, MaxX: 4, MaxY: 7}, r.Union(NewRect(0, 5, 1, 2)))
	assert.Equal(t, Rect{MinX: 2, MinY: 3, MaxX: 5, MaxY: 7}, r.Offset(1, 1))

	box := mathtext.FlipY().TransformBox(mathtext.NewBBox(0, -1, 2, 3, 2, 0))
	assert.Equal(t, Rect{MinX: 0, MinY: -3, MaxX: 2, MaxY: 1}, RectFromBox(box))
}

func TestRecorderXHeight(t *testing.T) {
	fonts := latinModern(t)
	rec := NewRecorder(fonts, 20)

	declared := fonts.XHeight(mathtext.FamilyRegular, 20)
	assert.Equal(t, declared, rec.XHeight(mathtext.FamilyRegular))

	rec.SetFontSize(10, mathtext.FamilyRegular)
	assert.Equal(t, fonts.XHeight(mathtext.FamilyRegular, 10), rec.XHeight(mathtext.FamilyRegular))
	rec.ResetFontSize(mathtext.FamilyRegular)

	want := declared
	if want <= 0 {
		want = rec.BoundingBox("x", mathtext.FamilyRegular).Max.Y
	}
	assert.InDelta(t, want, mathtext.NewEngine().XHeight(rec, mathtext.Text), 1e-9)
	assert.True(t, balanced(rec))
}
