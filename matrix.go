package mathtext

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned by Matrix.Inverse when the determinant is zero.
var ErrSingularMatrix = errors.New("mathtext: matrix is not invertible")

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// FlipY creates the matrix mapping y-up math coordinates to y-down
// pixel coordinates (and back; it is its own inverse).
func FlipY() Matrix {
	return Scale(1, -1)
}

// Multiply composes two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Linear returns the linear part of m, dropping the translation.
func (m Matrix) Linear() Matrix {
	m.C, m.F = 0, 0
	return m
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Inverse returns the inverse matrix.
// It returns ErrSingularMatrix if the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// TransformBox maps both corners of b and returns the canonical box
// enclosing them. Advance and italic correction are mapped along the x axis.
func (m Matrix) TransformBox(b BBox) BBox {
	p0 := m.TransformPoint(b.Min)
	p1 := m.TransformPoint(b.Max)
	return BBox{
		Min:              Pt(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y)),
		Max:              Pt(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y)),
		Advance:          m.TransformPoint(Pt(b.Advance, 0)).X,
		ItalicCorrection: m.TransformVector(Pt(b.ItalicCorrection, 0)).X,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
