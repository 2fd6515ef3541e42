package recording

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/mathtext"
	"github.com/gogpu/mathtext/text"
)

// ErrUnknownBackend is returned when no output backend is registered under
// the requested name.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// Factory creates a fresh output backend.
type Factory func() Backend

// outputs maps backend names to their factories.
var outputs = struct {
	sync.RWMutex
	m map[string]Factory
}{m: make(map[string]Factory)}

// Register makes an output backend available by name. Backend packages
// call it from init, so importing the package for its side effect is
// enough:
//
//	import _ "github.com/gogpu/mathtext/recording/backends/raster"
//
// Register panics on a nil factory or a name registered twice.
func Register(name string, factory Factory) {
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	outputs.Lock()
	defer outputs.Unlock()
	if _, dup := outputs.m[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	outputs.m[name] = factory
}

// NewBackend returns a new instance of the backend registered as name.
func NewBackend(name string) (Backend, error) {
	outputs.RLock()
	factory, ok := outputs.m[name]
	outputs.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered names, sorted.
func Backends() []string {
	outputs.RLock()
	defer outputs.RUnlock()
	names := make([]string, 0, len(outputs.m))
	for name := range outputs.m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PlaybackTo replays r to a new instance of the backend registered as name
// and returns the backend for output (see ImageBackend, FileBackend and
// WriterBackend).
func (r *Recording) PlaybackTo(name string) (Backend, error) {
	backend, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	mathtext.Logger().Debug("recording: playback",
		slog.String("backend", name),
		slog.Int("commands", len(r.commands)),
		slog.Int("width", r.width),
		slog.Int("height", r.height))
	if err := r.Playback(backend); err != nil {
		return nil, fmt.Errorf("recording: playback to %q: %w", name, err)
	}
	return backend, nil
}

// RenderTo lays out list, records it as Render does and replays the result
// to the backend registered as name. The name is checked before any layout
// work.
//
//	out, err := recording.RenderTo("raster", fonts, 32, list, mathtext.Display, false)
//	if err != nil { ... }
//	err = out.(recording.FileBackend).SaveToFile("formula.png")
func RenderTo(name string, fonts *text.FontSet, size float64, list mathtext.MathList, style mathtext.Style, structure bool, opts ...RecorderOption) (Backend, error) {
	backend, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	rec := Render(fonts, size, list, style, structure, opts...)
	if err := rec.Playback(backend); err != nil {
		return nil, fmt.Errorf("recording: playback to %q: %w", name, err)
	}
	return backend, nil
}
