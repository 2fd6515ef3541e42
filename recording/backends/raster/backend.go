// Package raster provides a raster backend for the recording system.
// It renders recordings to an *image.RGBA with golang.org/x/image: glyphs
// through font.Drawer over opentype faces, rules and overlays through
// vector.Rasterizer.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/mathtext/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground(color.Transparent))
//
//	// Playback recording
//	err := rec.Playback(backend)
//
//	// Get output
//	err = backend.SavePNG("formula.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/mathtext"
	"github.com/gogpu/mathtext/recording"
	"github.com/gogpu/mathtext/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrInvalidSize is returned by Begin for a non-positive canvas size.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// ErrNotRendered is returned by the output methods before Begin.
var ErrNotRendered = errors.New("raster: nothing rendered")

// faceKey identifies a sized face.
type faceKey struct {
	source *text.FontSource
	size   float64
}

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	img    *image.RGBA
	raster *vector.Rasterizer

	background color.Color
	hinting    font.Hinting

	fonts map[*text.FontSource]*opentype.Font
	faces map[faceKey]font.Face
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color the canvas is cleared to. The default is
// opaque white.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithHinting sets the glyph hinting. The default is font.HintingNone,
// which keeps glyphs where the layout measured them.
func WithHinting(h font.Hinting) Option {
	return func(b *Backend) {
		b.hinting = h
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		background: color.White,
		hinting:    font.HintingNone,
		fonts:      make(map[*text.FontSource]*opentype.Font),
		faces:      make(map[faceKey]font.Face),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a canvas of the given dimensions and clears it to the
// background color.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	b.raster = vector.NewRasterizer(width, height)
	return nil
}

// End releases the faces opened during playback.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	var errs []error
	for key, face := range b.faces {
		errs = append(errs, face.Close())
		delete(b.faces, key)
	}
	return errors.Join(errs...)
}

// face returns the opentype face of src at size, opening it on first use.
func (b *Backend) face(src *text.FontSource, size float64) (font.Face, error) {
	key := faceKey{source: src, size: size}
	if face, ok := b.faces[key]; ok {
		return face, nil
	}

	f, ok := b.fonts[src]
	if !ok {
		var err error
		f, err = opentype.Parse(src.Data())
		if err != nil {
			return nil, fmt.Errorf("raster: parse %s: %w", src.Name(), err)
		}
		b.fonts[src] = f
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: b.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: face %s at %v: %w", src.Name(), size, err)
	}
	b.faces[key] = face
	return face, nil
}

// DrawText draws every glyph of run with the font it was resolved to.
func (b *Backend) DrawText(run recording.TextRun, brush recording.Brush) {
	if b.img == nil {
		return
	}
	src := image.NewUniform(recording.BrushColor(brush))
	for _, g := range run.Glyphs {
		if g.Source == nil {
			continue
		}
		face, err := b.face(g.Source, g.Size)
		if err != nil {
			mathtext.Logger().Warn("raster: skipping glyph",
				slog.String("rune", string(g.Rune)), slog.Any("error", err))
			continue
		}
		d := font.Drawer{
			Dst:  b.img,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: toFixed(run.X + g.X), Y: toFixed(run.Y)},
		}
		d.DrawString(string(g.Rune))
	}
}

// FillRect fills rect. Rules thinner than a pixel keep their coverage as
// partial alpha.
func (b *Backend) FillRect(rect recording.Rect, brush recording.Brush) {
	b.polygon(brush,
		rect.MinX, rect.MinY,
		rect.MaxX, rect.MinY,
		rect.MaxX, rect.MaxY,
		rect.MinX, rect.MaxY,
	)
}

// StrokeRect strokes the outline of rect, centred on its edges.
func (b *Backend) StrokeRect(rect recording.Rect, brush recording.Brush, width float64) {
	b.Line(rect.MinX, rect.MinY, rect.MaxX, rect.MinY, brush, width)
	b.Line(rect.MaxX, rect.MinY, rect.MaxX, rect.MaxY, brush, width)
	b.Line(rect.MaxX, rect.MaxY, rect.MinX, rect.MaxY, brush, width)
	b.Line(rect.MinX, rect.MaxY, rect.MinX, rect.MinY, brush, width)
}

// Line strokes a segment with butt caps.
func (b *Backend) Line(x0, y0, x1, y1 float64, brush recording.Brush, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	b.polygon(brush,
		x0+nx, y0+ny,
		x1+nx, y1+ny,
		x1-nx, y1-ny,
		x0-nx, y0-ny,
	)
}

// pointSegments is the number of sides of the polygon drawn for a point.
const pointSegments = 16

// Point draws a filled dot.
func (b *Backend) Point(x, y, radius float64, brush recording.Brush) {
	if radius <= 0 {
		return
	}
	coords := make([]float64, 0, 2*pointSegments)
	for i := range pointSegments {
		a := 2 * math.Pi * float64(i) / pointSegments
		coords = append(coords, x+radius*math.Cos(a), y+radius*math.Sin(a))
	}
	b.polygon(brush, coords...)
}

// polygon fills the closed polygon through the (x, y) pairs in coords.
func (b *Backend) polygon(brush recording.Brush, coords ...float64) {
	if b.img == nil || len(coords) < 6 {
		return
	}
	z := b.raster
	size := b.img.Bounds().Size()
	z.Reset(size.X, size.Y)
	z.DrawOp = draw.Over
	z.MoveTo(float32(coords[0]), float32(coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		z.LineTo(float32(coords[i]), float32(coords[i+1]))
	}
	z.ClosePath()
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(recording.BrushColor(brush)), image.Point{})
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotRendered
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	if b.img == nil {
		return ErrNotRendered
	}
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, b.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// SavePNG is a convenience alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// toFixed converts pixels to 26.6 fixed point.
func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
