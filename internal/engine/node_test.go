package engine

import (
	"math/rand"
	"testing"
)

func TestRandomHeightBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const maxHeight = 5
	for i := 0; i < 1000; i++ {
		h := randomHeight(rng, maxHeight, DefaultBias)
		if h < 1 || h > maxHeight {
			t.Fatalf("randomHeight returned %d, want in [1, %d]", h, maxHeight)
		}
	}
}

func TestRandomHeightZeroBiasAlwaysOne(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		if h := randomHeight(rng, 10, 0); h != 1 {
			t.Fatalf("randomHeight with bias 0 = %d, want 1", h)
		}
	}
}

func TestRandomHeightFullBiasClampsAtMax(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	if h := randomHeight(rng, 4, biasScale); h != 4 {
		t.Fatalf("randomHeight with bias 256 = %d, want maxHeight 4", h)
	}
}

func TestNodeAccessors(t *testing.T) {
	n := newNode(3, anySlice(1, 2, 3))
	if got := n.height(); got != 3 {
		t.Errorf("height() = %d, want 3", got)
	}
	if got := n.numItems(); got != 3 {
		t.Errorf("numItems() = %d, want 3", got)
	}
	n.next[0] = skipEntry{next: nil, skipUserSize: 7}
	if got := n.firstSkip(); got.skipUserSize != 7 {
		t.Errorf("firstSkip().skipUserSize = %d, want 7", got.skipUserSize)
	}
	if got := n.userSize(); got != 7 {
		t.Errorf("userSize() = %d, want 7", got)
	}
}

func TestSequenceUserSize(t *testing.T) {
	items := weightedSlice(5, 2, 9)
	if got := sequenceUserSize(items); got != 16 {
		t.Errorf("sequenceUserSize = %d, want 16", got)
	}
	if got := sequenceUserSize(anySlice(1, 2, 3)); got != 3 {
		t.Errorf("sequenceUserSize of unit-weight items = %d, want 3", got)
	}
}
