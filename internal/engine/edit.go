package engine

// ReplaceAt overwrites the count elements starting at user position pos
// with newItems, in place for min(count, len(newItems)) elements, then
// falls through to insertion (more new items than old) or deletion (fewer)
// for the remainder (spec §4.3.6). pos must land on an element boundary;
// an out-of-range or mid-element pos is a contract violation (spec §9
// Open Questions 2, 3).
func (l *List) ReplaceAt(pos uint64, count int, newItems []any, sink Sink) {
	if sink == nil {
		sink = NoneSink{}
	}
	if pos > l.numUser {
		panicContract("replace position %d exceeds list user size %d", pos, l.numUser)
	}

	c, residual := l.CursorAtUserPos(pos)
	if residual != 0 {
		panicContract("replace at user position %d falls inside an element (residual %d)", pos, residual)
	}

	overlap := count
	if len(newItems) < overlap {
		overlap = len(newItems)
	}

	for k := 0; k < overlap; k++ {
		if c.localIndex == c.node0().numItems() {
			c.advanceNode()
		}
		n := c.node0()
		idx := c.localIndex

		old := n.items[idx]
		oldSize := UserSize(old)
		updated := newItems[k]
		newSize := UserSize(updated)
		n.items[idx] = updated

		if delta := int64(newSize) - int64(oldSize); delta != 0 {
			c.updateOffsets(l.headHeight, delta)
			l.numUser = addDelta(l.numUser, delta)
		}
		sink.Notify(n.items[idx:idx+1], Marker{node: n})

		c.advanceItem(l.headHeight)
	}

	switch {
	case len(newItems) > count:
		l.insertAtCursor(c, newItems[overlap:], sink)
	case count > len(newItems):
		l.deleteAtCursor(c, count-overlap)
	}
}

// ModifyItemAfter applies f to the element immediately before user
// position pos and writes back its result (spec §4.3.7 modify_prev). If
// f changes the element's user-measure, the size change is propagated to
// every ancestor. The sink is then notified for that single element,
// whether or not its size changed.
//
// This resolves spec §9's modify_current_item open question in favor of
// never advancing the cursor as a side effect (DESIGN.md Open Question 1).
func (l *List) ModifyItemAfter(pos uint64, f func(any) any, sink Sink) {
	if sink == nil {
		sink = NoneSink{}
	}
	if pos > l.numUser {
		panicContract("modify position %d exceeds list user size %d", pos, l.numUser)
	}

	c, residual := l.CursorAtUserPos(pos)
	if residual != 0 {
		panicContract("modify at user position %d falls inside an element (residual %d)", pos, residual)
	}

	ref, ok := c.PrevItemRef()
	if !ok {
		panicContract("modify at user position %d: no preceding element", pos)
	}

	oldSize := UserSize(ref.Get())
	updated := f(ref.Get())
	ref.Set(updated)
	newSize := UserSize(updated)

	if newSize != oldSize {
		delta := int64(newSize) - int64(oldSize)
		c.updateOffsets(l.headHeight, delta)
		l.numUser = addDelta(l.numUser, delta)
	}
	sink.Notify([]any{updated}, Marker{node: ref.node})
}
