package engine

// Sizer is the optional capability an element implements to override the
// default user-measure of 1. UserSize must be pure and stable as long as
// the element is not mutated (spec §3).
type Sizer interface {
	UserSize() uint64
}

// Splitter is the optional capability required only when a caller inserts
// at a user-position that falls strictly inside an existing element.
// Split(at) must return (left, right) such that
// UserSize(left)+UserSize(right) == UserSize(original) and
// UserSize(left) == at.
type Splitter interface {
	Split(at uint64) (left, right any)
}

// UserSize returns item's user-measure: the Sizer value if it implements
// the capability, or the default of 1.
func UserSize(item any) uint64 {
	if s, ok := item.(Sizer); ok {
		return s.UserSize()
	}
	return 1
}

// trySplit attempts to split item at the given intra-element offset. ok is
// false if the element does not implement Splitter.
func trySplit(item any, at uint64) (left, right any, ok bool) {
	s, isSplitter := item.(Splitter)
	if !isSplitter {
		return nil, nil, false
	}
	left, right = s.Split(at)
	return left, right, true
}
