package engine

// InsertAt is the positional insert entry point (spec §4.3.4). pos beyond
// the list's total user size is clamped to the end, per §7/§9's uniform-
// clamping resolution (DESIGN.md Open Question 2). A nil sink is treated
// as NoneSink.
func (l *List) InsertAt(pos uint64, items []any, sink Sink) {
	if sink == nil {
		sink = NoneSink{}
	}
	if len(items) == 0 {
		return
	}
	if pos > l.numUser {
		pos = l.numUser
	}

	c, residual := l.CursorAtUserPos(pos)
	if residual != 0 {
		l.insertBetween(c, residual)
	}
	l.insertAtCursor(c, items, sink)
}

// insertBetween splits the element under the cursor at the given
// intra-element offset, leaving the cursor positioned exactly at the new
// boundary between the two halves (spec §1, §9: mid-element insertion is
// supported only when the element declares itself Splitter).
func (l *List) insertBetween(c *Cursor, offset uint64) {
	item, ok := c.CurrentItem()
	if !ok {
		panicContract("insert at a mid-element offset with no current item under the cursor")
	}
	left, right, ok := trySplit(item, offset)
	if !ok {
		panicContract("insert at a mid-element offset requires the element type to implement Splitter")
	}

	n := c.node0()
	idx := c.localIndex
	replaced := make([]any, 0, n.numItems()+1)
	replaced = append(replaced, n.items[:idx]...)
	replaced = append(replaced, left, right)
	replaced = append(replaced, n.items[idx+1:]...)
	n.items = replaced

	l.numItems++
	// User-measure is conserved (UserSize(left)+UserSize(right) ==
	// UserSize(original)); node and ancestor skip tables are unaffected
	// since the node's own total span is unchanged.
	c.localIndex = idx + 1
}

// insertAtCursor runs Cases A/A'/B of the insertion algorithm once the
// cursor sits exactly at an element boundary.
func (l *List) insertAtCursor(c *Cursor, items []any, sink Sink) {
	cur := c.node0()
	n := len(items)

	// Case A: fits in the current node. The head never holds items, so
	// it is excluded even when nominally "under capacity".
	if cur != &l.head && cur.numItems()+n <= l.nodeCap {
		l.insertInPlace(c, items, sink)
		return
	}

	// Case A': piggyback onto the successor if the cursor sits exactly
	// at the end of the current node and the successor has room.
	if c.localIndex == cur.numItems() {
		next := cur.firstSkip().next
		if next != nil && next.numItems()+n <= l.nodeCap {
			c.advanceNode()
			l.insertInPlace(c, items, sink)
			return
		}
	}

	// Case B: split and spill.
	l.insertSplitAndSpill(c, items, sink)
}

// insertInPlace implements Case A: memmove the suffix right, move the new
// elements into the vacated slots, and propagate the size change.
func (l *List) insertInPlace(c *Cursor, items []any, sink Sink) {
	n := c.node0()
	idx := c.localIndex
	added := sequenceUserSize(items)

	grown := make([]any, 0, n.numItems()+len(items))
	grown = append(grown, n.items[:idx]...)
	grown = append(grown, items...)
	grown = append(grown, n.items[idx:]...)
	n.items = grown

	c.updateOffsets(l.headHeight, int64(added))
	l.numItems += uint64(len(items))
	l.numUser += added

	for range items {
		c.advanceItem(l.headHeight)
	}

	sink.Notify(items, Marker{node: n})
}

// insertSplitAndSpill implements Case B: detach the current node's
// suffix if the cursor doesn't sit at its end, spill the new elements
// across freshly allocated nodes, and reattach the detached suffix as a
// final node.
func (l *List) insertSplitAndSpill(c *Cursor, items []any, sink Sink) {
	cur := c.node0()

	var suffix []any
	if c.localIndex < cur.numItems() {
		suffix = append([]any(nil), cur.items[c.localIndex:]...)
		cur.items = cur.items[:c.localIndex]

		detached := sequenceUserSize(suffix)
		c.updateOffsets(l.headHeight, -int64(detached))
		l.numItems -= uint64(len(suffix))
		l.numUser -= detached
	}

	remaining := items
	for len(remaining) > 0 {
		chunkLen := len(remaining)
		if chunkLen > l.nodeCap {
			chunkLen = l.nodeCap
		}
		chunk := append([]any(nil), remaining[:chunkLen]...)
		remaining = remaining[chunkLen:]

		chunkSize := sequenceUserSize(chunk)
		newNode := l.newNodeWithRandomHeight(chunk)
		l.insertNodeAt(c, newNode, chunkSize, true)

		l.numItems += uint64(len(chunk))
		l.numUser += chunkSize

		sink.Notify(chunk, Marker{node: newNode})
	}

	if suffix != nil {
		suffixSize := sequenceUserSize(suffix)
		suffixNode := l.newNodeWithRandomHeight(suffix)
		l.insertNodeAt(c, suffixNode, suffixSize, false)

		l.numItems += uint64(len(suffix))
		l.numUser += suffixSize

		sink.Notify(suffix, Marker{node: suffixNode})
	}
}

// insertNodeAt splices newNode into the list immediately after the
// cursor's current position, per spec §4.3.4. When moveCursor is true the
// cursor is left at the end of newNode; otherwise it remains where it
// was, logically before newNode.
func (l *List) insertNodeAt(c *Cursor, newNode *node, newUserSize uint64, moveCursor bool) {
	h := newNode.height()

	// Height promotion happens before splicing: the head grows to match,
	// and every newly activated level starts out spanning the whole
	// list (head's hop at that level has not yet been narrowed by any
	// node splicing in below it).
	if h > l.headHeight {
		oldHeadHeight := l.headHeight
		l.headHeight = h
		for level := oldHeadHeight; level < l.headHeight; level++ {
			l.head.next[level] = skipEntry{next: nil, skipUserSize: l.numUser}
			c.levels[level] = cursorLevel{node: &l.head, skip: c.userPos}
		}
	}

	for i := 0; i < h; i++ {
		ancestor := c.levels[i].node
		ancestorSkip := c.levels[i].skip
		old := ancestor.next[i]

		newNode.next[i] = skipEntry{
			next:         old.next,
			skipUserSize: old.skipUserSize + newUserSize - ancestorSkip,
		}
		ancestor.next[i] = skipEntry{next: newNode, skipUserSize: ancestorSkip}

		if moveCursor {
			c.levels[i] = cursorLevel{node: newNode, skip: newUserSize}
		}
	}

	for i := h; i < l.headHeight; i++ {
		c.levels[i].node.next[i].skipUserSize += newUserSize
		if moveCursor {
			c.levels[i].skip += newUserSize
		}
	}

	if moveCursor {
		c.userPos += newUserSize
		c.localIndex = newNode.numItems()
	}

	l.fixupParentsOnInsert(c, newNode)
}

// fixupParentsOnInsert assigns newNode's own parent and reparents any
// node newNode now shadows at its tallest level (spec §4.3.4 "Parent
// update on insertion").
//
// The spec's own phrasing ("if new_node.height == H") is read here as
// "== head.height after promotion", which is what spec §3's parent
// invariant actually requires: a node only parents to head when it has
// reached the head's *current* height, not necessarily the compile-time
// ceiling H (a small list may never grow the head to H at all).
func (l *List) fixupParentsOnInsert(c *Cursor, newNode *node) {
	h := newNode.height()
	if h == l.headHeight {
		newNode.parent = &l.head
	} else {
		newNode.parent = c.levels[h].node
	}

	walker := newNode.firstSkip().next
	for walker != nil && walker.height() < h {
		walker.parent = newNode
		walker = walker.next[walker.height()-1].next
	}
}
