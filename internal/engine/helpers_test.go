package engine

import "math/rand"

// weighted is a test element whose user size is its own value, matching
// the spec's scenario S2 element shape. It implements both Sizer and
// Splitter so the same type exercises mid-element insertion.
type weighted int

func (w weighted) UserSize() uint64 { return uint64(w) }

func (w weighted) Split(at uint64) (left, right any) {
	return weighted(at), weighted(uint64(w) - at)
}

// newTestList builds a List with small, deterministic structural
// parameters so splits, spills, and height promotion are easy to force
// with a handful of elements.
func newTestList(nodeCap, maxHeight int, seed int64) *List {
	return New(
		WithNodeCapacity(nodeCap),
		WithMaxHeight(maxHeight),
		WithRand(rand.New(rand.NewSource(seed))),
	)
}

func anySlice(vals ...int) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func weightedSlice(vals ...int) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = weighted(v)
	}
	return out
}

// collect drains an Iterator into a plain slice.
func collect(l *List) []any {
	var out []any
	it := l.Iterator()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

func intsEqual(got []any, want ...int) bool {
	if len(got) != len(want) {
		return false
	}
	for i, w := range want {
		if got[i] != w {
			return false
		}
	}
	return true
}
