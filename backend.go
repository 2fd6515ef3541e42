package mathtext

// Metrics is the measurement capability the engine needs from a backend.
//
// Bounding boxes are in math coordinates (y up, ascent positive). The engine
// always pairs SetFontSize with ResetFontSize around any query or draw at a
// changed size, so implementations may keep a per-family size stack.
//
// Implementations need not be safe for concurrent use; the engine issues
// all calls from the goroutine that invoked Measure or Draw.
type Metrics interface {
	// FontSize returns the text size in backend units. Every engine length
	// is a multiple of it.
	FontSize() float64

	// SetFontSize sets the size used for family until ResetFontSize.
	SetFontSize(size float64, family Family)

	// ResetFontSize restores the size of family to what it was before the
	// matching SetFontSize.
	ResetFontSize(family Family)

	// BoundingBox returns the box of s in family at the current size.
	// A degenerate all-zero box is valid (missing glyphs).
	BoundingBox(s string, family Family) BBox

	// TransformLogicalToPixel maps backend logical coordinates to pixels.
	TransformLogicalToPixel() Matrix

	// TransformPixelToLogical maps pixels to backend logical coordinates.
	// The engine only uses its linear part, to project layout offsets.
	TransformPixelToLogical() Matrix
}

// XHeightMetrics is implemented by a Metrics that knows the x-height its
// fonts declare (TeX's sigma 5). Engines prefer it over measuring "x".
type XHeightMetrics interface {
	// XHeight returns the x-height of family at its current size, or 0 if
	// the font does not declare one.
	XHeight(family Family) float64
}

// Backend is Metrics plus the drawing primitives used by Engine.Draw.
// Positions and boxes passed to Backend are already projected into the
// backend's logical space.
type Backend interface {
	Metrics

	// TextRaw draws s with its baseline origin at (x, y).
	TextRaw(x, y float64, s string, family Family)

	// TextWithBoundingBox draws s like TextRaw along with its box,
	// baseline and italic slant, for structure overlays.
	TextWithBoundingBox(x, y float64, s string, family Family)

	// Point marks an origin.
	Point(x, y float64)

	// Rectangle strokes the outline of b.
	Rectangle(b BBox)

	// FilledRectangle fills b.
	FilledRectangle(b BBox)
}

// withFontSize runs fn with family set to size and restores it afterwards,
// even if fn panics.
func withFontSize(m Metrics, size float64, family Family, fn func()) {
	m.SetFontSize(size, family)
	defer m.ResetFontSize(family)
	fn()
}
