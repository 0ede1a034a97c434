package iskiplist

import (
	"github.com/aalhour/iskiplist/internal/engine"
	"github.com/aalhour/iskiplist/internal/logging"
)

// Option configures a List at construction time.
type Option = engine.Option

var (
	// WithMaxHeight overrides the compile-time H constant.
	WithMaxHeight = engine.WithMaxHeight
	// WithNodeCapacity overrides the compile-time K constant.
	WithNodeCapacity = engine.WithNodeCapacity
	// WithBias overrides BIAS, the numerator (out of 256) of the height
	// promotion probability.
	WithBias = engine.WithBias
	// WithRand supplies a seedable random-byte source for node heights.
	WithRand = engine.WithRand
)

// Logger is the logging interface consumed by CheckWithLogger (spec §6:
// logging is an external collaborator the core never depends on directly).
type Logger = logging.Logger

// DiscardLogger and Discard give callers the same no-op logger Check()
// itself uses internally.
type DiscardLogger = logging.DiscardLogger

var Discard = logging.Discard

// NewDefaultLogger creates a logger writing to stderr at the given level.
var NewDefaultLogger = logging.NewDefaultLogger

// NewLogger creates a logger writing to an arbitrary io.Writer at the
// given level.
var NewLogger = logging.NewLogger

// Logging level constants, re-exported for callers of NewLogger/
// NewDefaultLogger.
const (
	LevelError = logging.LevelError
	LevelWarn  = logging.LevelWarn
	LevelInfo  = logging.LevelInfo
	LevelDebug = logging.LevelDebug
)

// List is an ordered, in-memory sequence container indexed by a
// caller-defined running user-measure sum (spec §1).
//
// A List must not be copied after first use, and must not be mutated
// concurrently with any read or from within a Sink callback (spec §5).
type List struct {
	e *engine.List
}

// New constructs an empty List.
func New(opts ...Option) *List {
	return &List{e: engine.New(opts...)}
}

// NewFromSequence constructs a List containing a copy of items, in order.
func NewFromSequence(items []any, opts ...Option) *List {
	l := New(opts...)
	l.e.BuildFromBorrowed(append([]any(nil), items...))
	return l
}

// NewFromBorrowedArray constructs a List that takes ownership of items
// directly, without copying, for callers that guarantee items will not be
// mutated or retained elsewhere afterward (spec §6 "from a borrowed array
// when elements are bit-copyable").
func NewFromBorrowedArray(items []any, opts ...Option) *List {
	l := New(opts...)
	l.e.BuildFromBorrowed(items)
	return l
}

// LenItems returns the total number of elements in the list.
func (l *List) LenItems() uint64 { return l.e.LenItems() }

// LenUser returns the total user-measure of the list.
func (l *List) LenUser() uint64 { return l.e.LenUser() }

// InsertAt inserts items starting at user position pos, which is clamped
// to the list's end if it exceeds the current user size (spec §4.3.4).
func (l *List) InsertAt(pos uint64, items []any, sink Sink) {
	l.e.InsertAt(pos, items, toEngineSink(sink))
}

// DeleteAt removes count elements starting at user position pos. pos must
// land on an element boundary and within the list's current bounds (spec
// §4.3.5, §9 Open Questions 2–3).
func (l *List) DeleteAt(pos uint64, count int) {
	l.e.DeleteAt(pos, count)
}

// ReplaceAt overwrites count elements starting at user position pos with
// newItems, falling through to insertion or deletion if the counts differ
// (spec §4.3.6).
func (l *List) ReplaceAt(pos uint64, count int, newItems []any, sink Sink) {
	l.e.ReplaceAt(pos, count, newItems, toEngineSink(sink))
}

// ModifyItemAfter applies f to the element immediately before user
// position pos and writes back the result (spec §4.3.7).
func (l *List) ModifyItemAfter(pos uint64, f func(any) any, sink Sink) {
	l.e.ModifyItemAfter(pos, f, toEngineSink(sink))
}

// EditAtMarker resolves marker and predicate to an absolute user position,
// for a follow-up call to InsertAt/DeleteAt/ReplaceAt/ModifyItemAfter
// (spec §6 "edit_at_marker"). ok is false if predicate matched no element
// in the marker's node.
func (l *List) EditAtMarker(marker Marker, predicate func(item any) (offset uint64, ok bool)) (pos uint64, ok bool) {
	cursor, itemOffset, found := l.e.CursorAtMarker(marker.inner, predicate)
	if !found {
		return 0, false
	}
	return cursor.UserPos() + itemOffset, true
}

// Iterator returns a forward element iterator.
func (l *List) Iterator() *Iterator {
	return &Iterator{it: l.e.Iterator()}
}

// EqualsSequence reports whether the list's contents equal other,
// element-for-element, without allocating an intermediate slice.
func (l *List) EqualsSequence(other []any) bool {
	return l.e.EqualsSequence(other)
}

// Check validates every structural invariant of the list (spec §3); it is
// a test and debug tool, not something to run on a hot path.
func (l *List) Check() error {
	return l.e.Check()
}

// CheckWithLogger runs Check and reports a validation failure through log
// before returning it.
func (l *List) CheckWithLogger(log logging.Logger) error {
	return l.e.CheckWithLogger(log)
}

// ContentDigest returns a fast, order- and content-sensitive fingerprint
// of the list's elements, suitable for cheap equality checks in
// randomized-oracle test harnesses (spec §8 Scenario S6).
func (l *List) ContentDigest() uint64 {
	return l.e.ContentDigest()
}

// Iterator walks a List's elements in order.
type Iterator struct {
	it *engine.Iterator
}

// Next returns the next element, or ok=false once exhausted.
func (it *Iterator) Next() (item any, ok bool) {
	return it.it.Next()
}
