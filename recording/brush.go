package recording

import "image/color"

// Brush represents a fill/stroke style for recording commands.
// This is a sealed interface - only types in this package implement it.
//
// Brushes are stored by definition so each output backend can translate
// them to its own paint model at playback.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color color.RGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(c color.Color) SolidBrush {
	return SolidBrush{Color: color.RGBAModel.Convert(c).(color.RGBA)}
}

// Common brushes.
var (
	// Black is the default ink.
	Black = SolidBrush{Color: color.RGBA{A: 0xff}}

	// Structure is the default colour of structure overlays.
	Structure = SolidBrush{Color: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}}
)

// BrushColor returns the color a backend without paint servers should use
// for b. Unknown brushes draw black.
func BrushColor(b Brush) color.RGBA {
	if s, ok := b.(SolidBrush); ok {
		return s.Color
	}
	return Black.Color
}
