package engine

// Iterator walks the list's elements in order via level-0 forward
// pointers, emitting every element of one node before crossing to the
// next (spec §4.3.8).
type Iterator struct {
	node *node
	idx  int
}

// Iterator returns a forward iterator starting at the first element.
func (l *List) Iterator() *Iterator {
	return &Iterator{node: l.head.firstSkip().next}
}

// Next returns the next element, or ok=false once the list is exhausted.
func (it *Iterator) Next() (item any, ok bool) {
	for it.node != nil && it.idx == it.node.numItems() {
		it.node = it.node.firstSkip().next
		it.idx = 0
	}
	if it.node == nil {
		return nil, false
	}
	item = it.node.items[it.idx]
	it.idx++
	return item, true
}

// EqualsSequence streams this list's contents against other and reports
// whether they match element-for-element, without allocating an
// intermediate slice (spec §4.3.8). Elements must be comparable with ==;
// a non-comparable element type (e.g. a slice or map) panics, matching
// Go's own equality rules.
func (l *List) EqualsSequence(other []any) bool {
	it := l.Iterator()
	for _, want := range other {
		got, ok := it.Next()
		if !ok || got != want {
			return false
		}
	}
	_, exhausted := it.Next()
	return !exhausted
}
