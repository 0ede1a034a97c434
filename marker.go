package iskiplist

import "github.com/aalhour/iskiplist/internal/engine"

// Marker is an opaque handle to an element's owning node, stable until
// that node is freed or reallocated. Callers obtain one only via a Sink
// callback, and revalidate it the same way after any subsequent mutation
// touching the same region (spec §3 ItemMarker, §4.3.3 safety contract).
type Marker struct {
	inner engine.Marker
}

// Valid reports whether the marker points at a node at all. It cannot
// detect staleness; using a marker invalidated by a later mutation is
// undefined behavior.
func (m Marker) Valid() bool { return m.inner.Valid() }
