package engine

import "testing"

func TestIteratorEmptyList(t *testing.T) {
	l := newTestList(4, 4, 70)
	if _, ok := l.Iterator().Next(); ok {
		t.Fatal("iterator over an empty list should yield nothing")
	}
}

func TestIteratorWalksAllElementsAcrossNodes(t *testing.T) {
	l := newTestList(2, 4, 71)
	l.InsertAt(0, anySlice(1, 2, 3, 4, 5, 6, 7), nil)

	got := collect(l)
	if !intsEqual(got, 1, 2, 3, 4, 5, 6, 7) {
		t.Fatalf("got %v, want [1 2 3 4 5 6 7]", got)
	}
}

func TestEqualsSequenceMatchesIdenticalContent(t *testing.T) {
	l := newTestList(3, 4, 72)
	l.InsertAt(0, anySlice(1, 2, 3, 4), nil)

	if !l.EqualsSequence(anySlice(1, 2, 3, 4)) {
		t.Fatal("EqualsSequence should match identical content")
	}
}

func TestEqualsSequenceDetectsLengthMismatch(t *testing.T) {
	l := newTestList(3, 4, 73)
	l.InsertAt(0, anySlice(1, 2, 3), nil)

	if l.EqualsSequence(anySlice(1, 2)) {
		t.Fatal("EqualsSequence should not match a shorter sequence")
	}
	if l.EqualsSequence(anySlice(1, 2, 3, 4)) {
		t.Fatal("EqualsSequence should not match a longer sequence")
	}
}

func TestEqualsSequenceDetectsContentMismatch(t *testing.T) {
	l := newTestList(3, 4, 74)
	l.InsertAt(0, anySlice(1, 2, 3), nil)

	if l.EqualsSequence(anySlice(1, 9, 3)) {
		t.Fatal("EqualsSequence should not match differing content")
	}
}

func TestEqualsSequenceEmptyList(t *testing.T) {
	l := newTestList(3, 4, 75)
	if !l.EqualsSequence(nil) {
		t.Fatal("an empty list should equal an empty sequence")
	}
}
