package text

import "math"

// Metrics are the vertical metrics of a Face, all as positive distances
// from the baseline.
//
// XHeight is what the engine uses as TeX's sigma 5 when a backend reports
// it; it is zero for fonts without an OS/2 x-height.
type Metrics struct {
	Ascent    float64
	Descent   float64
	XHeight   float64
	CapHeight float64
}

// metricsFromFont converts parser metrics, whose descent is negative.
func metricsFromFont(fm FontMetrics) Metrics {
	return Metrics{
		Ascent:    fm.Ascent,
		Descent:   math.Abs(fm.Descent),
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
}

// Height returns the distance from the lowest descender to the highest
// ascender.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}
