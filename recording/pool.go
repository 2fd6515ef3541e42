package recording

import "github.com/gogpu/mathtext/text"

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types; fonts
// and solid brushes are deduplicated.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	fonts     []*text.FontSource
	fontIndex map[*text.FontSource]FontRef

	brushes    []Brush
	brushIndex map[SolidBrush]BrushRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		fonts:      make([]*text.FontSource, 0, 4),
		fontIndex:  make(map[*text.FontSource]FontRef),
		brushes:    make([]Brush, 0, 4),
		brushIndex: make(map[SolidBrush]BrushRef),
	}
}

// AddFont adds a font source to the pool and returns its reference.
// Adding the same source twice returns the same reference.
func (p *ResourcePool) AddFont(src *text.FontSource) FontRef {
	if ref, ok := p.fontIndex[src]; ok {
		return ref
	}
	p.fonts = append(p.fonts, src)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FontRef(uint32(len(p.fonts) - 1))
	p.fontIndex[src] = ref
	return ref
}

// GetFont returns the font source for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetFont(ref FontRef) *text.FontSource {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of font sources in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// AddBrush adds a brush to the pool and returns its reference.
// Solid brushes of the same color share a reference.
func (p *ResourcePool) AddBrush(brush Brush) BrushRef {
	solid, isSolid := brush.(SolidBrush)
	if isSolid {
		if ref, ok := p.brushIndex[solid]; ok {
			return ref
		}
	}
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := BrushRef(uint32(len(p.brushes) - 1))
	if isSolid {
		p.brushIndex[solid] = ref
	}
	return ref
}

// GetBrush returns the brush for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetBrush(ref BrushRef) Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.fonts = p.fonts[:0]
	p.brushes = p.brushes[:0]
	clear(p.fontIndex)
	clear(p.brushIndex)
}
