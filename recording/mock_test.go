package recording

import "fmt"

// mockBackend logs every call for inspection.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	calls      []string
	runs       []TextRun

	beginErr error
	endErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return b.endErr
}

func (b *mockBackend) DrawText(run TextRun, _ Brush) {
	b.runs = append(b.runs, run)
	b.calls = append(b.calls, fmt.Sprintf("text %q", run.Text))
}

func (b *mockBackend) FillRect(r Rect, _ Brush) {
	b.calls = append(b.calls, fmt.Sprintf("fill %.3g,%.3g %.3g,%.3g", r.MinX, r.MinY, r.MaxX, r.MaxY))
}

func (b *mockBackend) StrokeRect(r Rect, _ Brush, _ float64) {
	b.calls = append(b.calls, fmt.Sprintf("stroke %.3g,%.3g %.3g,%.3g", r.MinX, r.MinY, r.MaxX, r.MaxY))
}

func (b *mockBackend) Line(x0, y0, x1, y1 float64, _ Brush, _ float64) {
	b.calls = append(b.calls, fmt.Sprintf("line %.3g,%.3g %.3g,%.3g", x0, y0, x1, y1))
}

func (b *mockBackend) Point(x, y, _ float64, _ Brush) {
	b.calls = append(b.calls, fmt.Sprintf("point %.3g,%.3g", x, y))
}
