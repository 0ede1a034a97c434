package engine

// cursorLevel records, for one level, the node from which the traversal
// path descended and the user-measure already accumulated inside that
// node at the cursor's current global position (spec §3 Cursor).
type cursorLevel struct {
	node *node
	skip uint64
}

// Cursor is a traversal path recording, for each list level, the node
// through which the path descends and the user-measure consumed inside
// it, plus the current global user position and the item index within the
// landing node.
//
// A Cursor is valid only for the List that produced it, and only until the
// next structural mutation not performed through this very cursor (spec
// §3, §5).
type Cursor struct {
	list       *List
	levels     []cursorLevel // len == list.maxHeight
	userPos    uint64
	localIndex int
}

func (l *List) newCursor() *Cursor {
	return &Cursor{list: l, levels: make([]cursorLevel, l.maxHeight)}
}

// UserPos returns the cursor's current global user position.
func (c *Cursor) UserPos() uint64 { return c.userPos }

// LocalIndex returns the item index within the landing node. A value
// equal to the landing node's item count means "just past the last
// element, at the logical boundary before the next node."
func (c *Cursor) LocalIndex() int { return c.localIndex }

// node0 returns the cursor's landing node (level-0 descent point).
func (c *Cursor) node0() *node { return c.levels[0].node }

// Equal reports whether two cursors denote the same traversal path: equal
// user position, local index, and every (node, skip) pair (spec §4.2
// Equality). Two cursors that represent the same logical position but
// differ in end-of-node vs. start-of-next-node form compare unequal.
func (c *Cursor) Equal(other *Cursor) bool {
	if c.list != other.list || c.userPos != other.userPos || c.localIndex != other.localIndex {
		return false
	}
	if len(c.levels) != len(other.levels) {
		return false
	}
	for i := range c.levels {
		if c.levels[i] != other.levels[i] {
			return false
		}
	}
	return true
}

// clone returns a deep-enough copy of c (the levels slice is copied; nodes
// are shared, which is fine since nodes are not owned by the cursor).
func (c *Cursor) clone() *Cursor {
	levels := make([]cursorLevel, len(c.levels))
	copy(levels, c.levels)
	return &Cursor{list: c.list, levels: levels, userPos: c.userPos, localIndex: c.localIndex}
}

// advanceNode moves the cursor from the end of its landing node to the
// start of the next node at level 0 (spec §4.2).
func (c *Cursor) advanceNode() {
	oldNode := c.node0()
	newNode := oldNode.firstSkip().next
	remainder := oldNode.userSize() - c.levels[0].skip

	newHeight := 0
	if newNode != nil {
		newHeight = newNode.height()
	}
	activeLevels := c.list.headHeight
	for i := 0; i < activeLevels; i++ {
		if i < newHeight {
			c.levels[i] = cursorLevel{node: newNode, skip: 0}
		} else {
			c.levels[i].skip += remainder
		}
	}
	c.localIndex = 0
}

// advanceItem moves the cursor forward by exactly one element. If the
// cursor sits at the end of its landing node, it first crosses into the
// successor node. The consumed element's user size is added to
// skip_user_size at levels [0, heightLimit) and to userPos (spec §4.2).
func (c *Cursor) advanceItem(heightLimit int) {
	n := c.node0()
	if c.localIndex == n.numItems() {
		c.advanceNode()
		n = c.node0()
	}
	sz := UserSize(n.items[c.localIndex])
	for i := 0; i < heightLimit; i++ {
		c.levels[i].skip += sz
	}
	c.userPos += sz
	c.localIndex++
}

// moveToItemStart subtracts offset from skip_user_size at levels
// [0, heightLimit) and from userPos; used to step back after a
// mid-element split during insertion (spec §4.2).
func (c *Cursor) moveToItemStart(heightLimit int, offset uint64) {
	for i := 0; i < heightLimit; i++ {
		c.levels[i].skip -= offset
	}
	c.userPos -= offset
}

// updateOffsets applies a signed delta to next[i].skipUserSize of each
// node_i recorded at levels [0, height): the mechanism by which a size
// change at the cursor propagates to every ancestor the cursor passed
// through (spec §4.2).
func (c *Cursor) updateOffsets(height int, delta int64) {
	for i := 0; i < height; i++ {
		e := &c.levels[i].node.next[i]
		e.skipUserSize = addDelta(e.skipUserSize, delta)
	}
}

func addDelta(v uint64, delta int64) uint64 {
	if delta < 0 {
		return v - uint64(-delta)
	}
	return v + uint64(delta)
}

// CurrentItem returns the element at the cursor's logical position.
// When localIndex == numItems of the landing node, it transparently peeks
// into the start of the next node (spec §4.2).
func (c *Cursor) CurrentItem() (any, bool) {
	n := c.node0()
	if c.localIndex < n.numItems() {
		return n.items[c.localIndex], true
	}
	next := n.firstSkip().next
	if next == nil || next.numItems() == 0 {
		return nil, false
	}
	return next.items[0], true
}

// PeekNextItem returns the element the cursor would land on next,
// without moving it. It is the same position CurrentItem reports, under
// a name for callers that are "peeking ahead" rather than "reading here".
func (c *Cursor) PeekNextItem() (any, bool) {
	return c.CurrentItem()
}

// PrevItem returns the element immediately before the cursor's logical
// position, crossing back into the parent node via the back-pointer
// network when the cursor sits at the start of its landing node.
func (c *Cursor) PrevItem() (any, bool) {
	n := c.node0()
	if c.localIndex > 0 {
		return n.items[c.localIndex-1], true
	}
	p := n.parent
	if p == nil || p.numItems() == 0 {
		return nil, false
	}
	return p.items[p.numItems()-1], true
}

// ItemRef is a mutable handle to a single element slot, used by
// modify-in-place operations (spec §4.3.7).
type ItemRef struct {
	node  *node
	index int
}

// Get returns the referenced element.
func (r ItemRef) Get() any { return r.node.items[r.index] }

// Set overwrites the referenced element slot.
func (r ItemRef) Set(v any) { r.node.items[r.index] = v }

// PrevItemRef returns a mutable reference to the element immediately
// before the cursor, for modify_prev_item (spec §4.3.7). ok is false if
// there is no preceding element (cursor at the very start of the list).
func (c *Cursor) PrevItemRef() (ref ItemRef, ok bool) {
	n := c.node0()
	if c.localIndex > 0 {
		return ItemRef{node: n, index: c.localIndex - 1}, true
	}
	p := n.parent
	if p == nil || p.numItems() == 0 {
		return ItemRef{}, false
	}
	return ItemRef{node: p, index: p.numItems() - 1}, true
}
