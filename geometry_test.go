package mathtext

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := q.Mul(0.5); got != Pt(1.5, -2) {
		t.Errorf("Mul = %v, want (1.5,-2)", got)
	}
}

func TestAddBoxMovesAdvance(t *testing.T) {
	b := NewBBox(0, -1, 2, 3, 2.5, 0.3)
	got := Pt(10, 1).AddBox(b)
	want := NewBBox(10, 0, 12, 4, 12.5, 0.3)
	if got != want {
		t.Errorf("AddBox = %+v, want %+v", got, want)
	}
	if b.Translate(Pt(10, 1)) != got {
		t.Error("Translate disagrees with AddBox")
	}
}

func TestAddBoxAssociative(t *testing.T) {
	b := NewBBox(0.1, -0.7, 1.3, 2.9, 1.1, 0.2)
	p, q := Pt(0.25, 1.5), Pt(-3.125, 0.5)

	nested := p.AddBox(q.AddBox(b))
	summed := p.Add(q).AddBox(b)
	for _, pair := range [][2]float64{
		{nested.Min.X, summed.Min.X},
		{nested.Min.Y, summed.Min.Y},
		{nested.Max.X, summed.Max.X},
		{nested.Max.Y, summed.Max.Y},
		{nested.Advance, summed.Advance},
	} {
		if !approx(pair[0], pair[1]) {
			t.Errorf("nested %+v != summed %+v", nested, summed)
			break
		}
	}
}

func TestBBoxMetrics(t *testing.T) {
	b := NewBBox(1, -2, 4, 6, 4, 0)
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Width", b.Width(), 3},
		{"Height", b.Height(), 8},
		{"Ascent", b.Ascent(), 6},
		{"Descent", b.Descent(), 2},
		{"VerticalCenter", b.VerticalCenter(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestBBoxMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want BBox
	}{
		{
			name: "right box wins italic",
			a:    NewBBox(0, 0, 1, 1, 1, 0.1),
			b:    NewBBox(1, -1, 3, 0.5, 3, 0.2),
			want: NewBBox(0, -1, 3, 1, 3, 0.2),
		},
		{
			name: "left box extends furthest",
			a:    NewBBox(0, 0, 5, 1, 4, 0.4),
			b:    NewBBox(1, -1, 3, 2, 3, 0.2),
			want: NewBBox(0, -1, 5, 2, 4, 0.4),
		},
		{
			name: "tie keeps receiver",
			a:    NewBBox(0, 0, 2, 1, 2, 0.1),
			b:    NewBBox(1, 0, 2, 1, 2, 0.3),
			want: NewBBox(0, 0, 2, 1, 2, 0.1),
		},
		{
			name: "advance is max",
			a:    NewBBox(0, 0, 1, 1, 7, 0),
			b:    NewBBox(0, 0, 2, 1, 2, 0),
			want: NewBBox(0, 0, 2, 1, 7, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Merge(tt.b); got != tt.want {
				t.Errorf("Merge = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxMergeExtentsSymmetric(t *testing.T) {
	a := NewBBox(-1, -2, 3, 4, 3, 0.5)
	b := NewBBox(0, -5, 2, 1, 6, 0.1)
	ab, ba := a.Merge(b), b.Merge(a)
	if ab.Min != ba.Min || ab.Max != ba.Max || ab.Advance != ba.Advance {
		t.Errorf("extents differ: %+v vs %+v", ab, ba)
	}
}

func TestMatrixInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.5)},
		{"flip", FlipY()},
		{"composite", Translate(10, 20).Multiply(Scale(2, -2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			p := Pt(1.5, -2.25)
			back := inv.TransformPoint(tt.m.TransformPoint(p))
			if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
				t.Errorf("round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestMatrixSingular(t *testing.T) {
	_, err := Scale(0, 1).Inverse()
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Inverse() error = %v, want ErrSingularMatrix", err)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale applied first, then translation.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(12, 2) {
		t.Errorf("TransformPoint = %v, want (12,2)", got)
	}
}

func TestMatrixLinear(t *testing.T) {
	m := Translate(5, 6).Multiply(FlipY())
	if got := m.Linear().TransformPoint(Pt(1, 2)); got != Pt(1, -2) {
		t.Errorf("Linear().TransformPoint = %v, want (1,-2)", got)
	}
	if got := m.TransformVector(Pt(1, 2)); got != Pt(1, -2) {
		t.Errorf("TransformVector = %v, want (1,-2)", got)
	}
	if !Identity().IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
}

func TestMatrixTransformBoxFlip(t *testing.T) {
	b := NewBBox(0, -1, 2, 3, 2.5, 0.2)
	got := FlipY().TransformBox(b)
	want := NewBBox(0, -3, 2, 1, 2.5, 0.2)
	if got != want {
		t.Errorf("TransformBox = %+v, want %+v", got, want)
	}
}
