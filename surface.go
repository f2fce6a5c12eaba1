package simplecanvas

import (
	"image/color"
	"sort"
	"sync"
)

// Surface is the drawing target the helpers issue primitives to.
// It follows the HTML canvas path model: BeginPath starts a new path,
// Rect and Circle append closed sub-paths, and Fill and Stroke paint the
// current path without consuming it.
//
// Implementations: GGSurface (gogpu/gg raster), RecordingSurface
// (gogpu/gg/recording) and ebitensurface.Surface.
type Surface interface {
	// Width and Height return the surface size in pixels.
	Width() int
	Height() int

	// Clear erases the entire surface to transparent.
	Clear()

	BeginPath()
	Rect(x, y, w, h float64)
	Circle(x, y, r float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	Fill() error
	Stroke() error
}

// Registry maps surface handles to surfaces.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register binds a surface to a handle.
//
// Register panics if:
//   - id is empty
//   - s is nil
//   - a surface with the same id is already registered
func (r *Registry) Register(id string, s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		panic("simplecanvas: Register id is empty")
	}
	if s == nil {
		panic("simplecanvas: Register surface is nil")
	}
	if _, dup := r.surfaces[id]; dup {
		panic("simplecanvas: Register called twice for " + id)
	}
	r.surfaces[id] = s
}

// Unregister removes a handle. Unknown handles are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

// Lookup returns the surface bound to id, or nil if there is none.
func (r *Registry) Lookup(id string) Surface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.surfaces[id]
}

// Names returns the registered handles in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered surfaces.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.surfaces)
}

// resolve looks up id on behalf of op, rejecting empty and unknown handles.
func (r *Registry) resolve(op, id string) (Surface, error) {
	if id == "" {
		return nil, invalid(op, "surface id is empty")
	}
	s := r.Lookup(id)
	if s == nil {
		return nil, reject(op, ErrUnknownSurface, "surface id "+id+" does not exist")
	}
	return s, nil
}
