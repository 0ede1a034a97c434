package engine

import (
	"math/rand"

	"github.com/aalhour/iskiplist/internal/digest"
)

// List owns the head node, tracks aggregate item count and user-measure,
// owns the RNG, and implements lookup by user-position, structural
// insert, delete, replace, and parent-pointer maintenance (spec §4.3).
//
// The head node is embedded (not heap-allocated separately) and padded to
// maxHeight entries up front, mirroring the teacher's single allocation
// per node and the spec's "struct-pads the head's skip table" note (§9).
//
// A List must not be copied after first use — its head is self-referenced
// by every node's parent pointer chain and by every live cursor.
type List struct {
	head       node
	headHeight int
	numItems   uint64
	numUser    uint64

	rng       *rand.Rand
	maxHeight int
	nodeCap   int
	bias      uint32
}

// Option configures a List at construction time.
type Option func(*List)

// WithMaxHeight overrides the compile-time H constant (spec §3).
func WithMaxHeight(h int) Option {
	return func(l *List) { l.maxHeight = h }
}

// WithNodeCapacity overrides the compile-time K constant (spec §3).
func WithNodeCapacity(k int) Option {
	return func(l *List) { l.nodeCap = k }
}

// WithBias overrides BIAS, the numerator (out of 256) of the height
// promotion probability (spec §3).
func WithBias(b uint32) Option {
	return func(l *List) { l.bias = b }
}

// WithRand supplies a seedable random-byte source for node heights (spec
// §6). Without this option New initializes a fixed-seed RNG,
// matching the teacher's own choice of a fixed seed
// (rand.NewSource(0xDEADBEEF)) for reproducible tests; callers that want
// production-grade unpredictability should supply a source seeded from
// platform entropy.
func WithRand(r *rand.Rand) Option {
	return func(l *List) { l.rng = r }
}

// New constructs an empty List.
func New(opts ...Option) *List {
	l := &List{
		headHeight: 1,
		maxHeight:  DefaultMaxHeight,
		nodeCap:    DefaultNodeCapacity,
		bias:       DefaultBias,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.maxHeight <= 0 || l.maxHeight > HardMaxHeight {
		panicContract("invalid MaxHeight %d: must be in [1, %d]", l.maxHeight, HardMaxHeight)
	}
	if l.nodeCap <= 0 || l.nodeCap > HardNodeCapacity {
		panicContract("invalid NodeCapacity %d: must be in [1, %d]", l.nodeCap, HardNodeCapacity)
	}
	l.head.next = make([]skipEntry, l.maxHeight)
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(0xDEADBEEF))
	}
	return l
}

// LenItems returns the total number of elements in the list.
func (l *List) LenItems() uint64 { return l.numItems }

// LenUser returns the total user-measure of the list.
func (l *List) LenUser() uint64 { return l.numUser }

// MaxHeight returns the configured H.
func (l *List) MaxHeight() int { return l.maxHeight }

// NodeCapacity returns the configured K.
func (l *List) NodeCapacity() int { return l.nodeCap }

// HeadHeight returns the head's current height (spec §3 invariant 3).
func (l *List) HeadHeight() int { return l.headHeight }

// newNodeWithRandomHeight allocates a node with a freshly drawn height
// and the given initial contents.
func (l *List) newNodeWithRandomHeight(items []any) *node {
	h := randomHeight(l.rng, l.maxHeight, l.bias)
	return newNode(h, items)
}

// CursorAtUserPos descends from the head to locate the element spanning
// user position target, per spec §4.3.1.
//
// Node-to-node hops (at every level, including level 0, where a "hop"
// moves from one node to the very next one) are taken only while strictly
// less than the remaining distance to target; a hop landing exactly on
// target is never taken. This directly implements the §4.3.1 ambiguity
// rule ("when target lands at a node boundary, return the cursor
// positioned at the end of the preceding node") without a separate
// correction pass: refusing to cross a boundary hop that would land
// exactly on target always leaves the final element-by-element walk (also
// using a non-strict consume rule, since within-node boundaries have no
// such ambiguity) to land exactly at the end of the node that owns target.
func (l *List) CursorAtUserPos(target uint64) (*Cursor, uint64) {
	if target > l.numUser {
		panicContract("user position %d exceeds list user size %d", target, l.numUser)
	}

	c := l.newCursor()
	cur := &l.head
	remaining := target

	for level := l.headHeight - 1; level >= 0; level-- {
		for {
			e := cur.next[level]
			if e.next != nil && e.skipUserSize < remaining {
				remaining -= e.skipUserSize
				cur = e.next
				continue
			}
			break
		}
		c.levels[level] = cursorLevel{node: cur, skip: remaining}
	}

	// remaining is now the distance from cur's start to target; walk
	// cur's own elements to find the exact item and residual offset.
	idx := 0
	items := cur.items
	for idx < len(items) {
		sz := UserSize(items[idx])
		if sz <= remaining {
			remaining -= sz
			idx++
			continue
		}
		break
	}
	c.userPos = target
	c.localIndex = idx
	return c, remaining
}

// CursorAtNode reconstructs a cursor from a known node, an offset within
// it that must fall on an element boundary, and the corresponding local
// item index, by walking parent pointers upward (spec §4.3.2).
func (l *List) CursorAtNode(n *node, offsetWithin uint64, localIndex int) *Cursor {
	c := l.newCursor()

	curNode := n
	accumulated := offsetWithin
	level := 0
	for {
		height := l.height(curNode)
		for ; level < height; level++ {
			c.levels[level] = cursorLevel{node: curNode, skip: accumulated}
		}
		parent := curNode.parent
		if parent == nil {
			break
		}
		// Walk forward at the level where parent reaches curNode,
		// accumulating each hop's skip_user_size, until curNode itself
		// is reached (spec §4.3.2).
		walker := parent
		for walker != curNode {
			e := walker.next[height-1]
			accumulated += e.skipUserSize
			walker = e.next
			if walker == nil {
				panicContract("cursorAtNode: parent chain broken while walking forward at level %d", height-1)
			}
		}
		curNode = parent
	}

	c.userPos = accumulated
	c.localIndex = localIndex
	return c
}

// height returns n's height, treating the head specially (its storage is
// padded to maxHeight but its logical/active height is headHeight).
func (l *List) height(n *node) int {
	if n == &l.head {
		return l.headHeight
	}
	return n.height()
}

// CursorAtMarker scans the marker's node linearly, summing user sizes
// until predicate reports a hit, then reconstructs a cursor via
// CursorAtNode (spec §4.3.3). ok is false if predicate misses for every
// element in the node.
//
// The marker must have been produced or revalidated since the last
// structural change to its node; a stale marker is undefined behavior
// (spec §4.3.3 Safety contract) and this function does not attempt to
// detect that.
func (l *List) CursorAtMarker(m Marker, predicate func(item any) (offset uint64, ok bool)) (cursor *Cursor, itemOffset uint64, ok bool) {
	n := m.node
	if n == nil {
		return nil, 0, false
	}

	var accumulated uint64
	for idx, item := range n.items {
		if off, hit := predicate(item); hit {
			c := l.CursorAtNode(n, accumulated, idx)
			return c, off, true
		}
		accumulated += UserSize(item)
	}
	return nil, 0, false
}

// ContentDigest returns a fast, order- and content-sensitive fingerprint
// of the list's elements, streamed node by node so no flat copy of the
// sequence is ever materialized. It is intended for cheap equality checks
// in Check() and randomized-oracle test harnesses (spec §8 Scenario S6),
// not as a substitute for EqualsSequence where an exact mismatch diagnosis
// is needed.
func (l *List) ContentDigest() uint64 {
	var d digest.Accumulator
	for n := l.head.firstSkip().next; n != nil; n = n.firstSkip().next {
		d.Write(n.items)
	}
	return d.Sum64()
}
