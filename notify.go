package iskiplist

import "github.com/aalhour/iskiplist/internal/engine"

// Sink receives (slice_just_written, marker_of_owning_node) after every
// observable change: bulk insert (per node), in-place overwrite, and
// in-place modify (spec §4.3.9). A Sink must not mutate the list from
// within Notify, though read-only calls back into it are safe.
type Sink interface {
	Notify(items []any, m Marker)
}

// NoneSink is the zero-cost sink that opts out of notifications; a nil
// Sink passed to any mutator is equivalent to NoneSink{}.
type NoneSink struct{}

// Notify implements Sink as a no-op.
func (NoneSink) Notify(items []any, m Marker) {}

type sinkAdapter struct{ sink Sink }

func (a sinkAdapter) Notify(items []any, m engine.Marker) {
	a.sink.Notify(items, Marker{inner: m})
}

func toEngineSink(s Sink) engine.Sink {
	if s == nil {
		return nil
	}
	return sinkAdapter{sink: s}
}
