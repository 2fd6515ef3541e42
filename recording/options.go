package recording

import (
	"image/color"

	"github.com/gogpu/mathtext"
)

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderConfig)

// recorderConfig holds configuration for Recorder.
type recorderConfig struct {
	ink         Brush
	structure   Brush
	lineWidth   float64
	pointRadius float64
	width       int
	height      int
	margin      float64
	engine      *mathtext.Engine
}

// defaultRecorderConfig returns the default recorder configuration.
func defaultRecorderConfig() recorderConfig {
	return recorderConfig{
		ink:         Black,
		structure:   Structure,
		lineWidth:   0.5,
		pointRadius: 1.5,
		margin:      2,
	}
}

// WithInk sets the color of glyphs and rules.
func WithInk(c color.Color) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.ink = NewSolidBrush(c)
	}
}

// WithStructureColor sets the color of structure overlays (boxes,
// baselines, origins).
func WithStructureColor(c color.Color) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.structure = NewSolidBrush(c)
	}
}

// WithLineWidth sets the stroke width of structure overlays in pixels.
func WithLineWidth(w float64) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.lineWidth = w
	}
}

// WithPointRadius sets the radius of origin marks in pixels.
func WithPointRadius(r float64) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.pointRadius = r
	}
}

// WithCanvas fixes the size of the finished recording. By default the
// canvas fits the recorded content plus the margin.
func WithCanvas(width, height int) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.width = width
		cfg.height = height
	}
}

// WithMargin sets the blank border, in pixels, around content on a fitted
// canvas.
func WithMargin(m float64) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.margin = m
	}
}

// WithEngine sets the engine Render lays out with. The default engine
// uses the Computer Modern parameters.
func WithEngine(e *mathtext.Engine) RecorderOption {
	return func(cfg *recorderConfig) {
		cfg.engine = e
	}
}
