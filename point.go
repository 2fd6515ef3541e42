package mathtext

// Point represents a 2D point or vector in math coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// AddBox translates b by p. The box's advance moves with it horizontally.
//
// Repeated translation is associative: p.AddBox(q.AddBox(b)) equals
// p.Add(q).AddBox(b) up to floating-point rounding of the sums.
func (p Point) AddBox(b BBox) BBox {
	return BBox{
		Min:              p.Add(b.Min),
		Max:              p.Add(b.Max),
		Advance:          p.X + b.Advance,
		ItalicCorrection: b.ItalicCorrection,
	}
}
