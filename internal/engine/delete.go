package engine

// DeleteAt removes the count elements starting at user position pos (spec
// §4.3.5). Unlike InsertAt, an out-of-range position is a contract
// violation rather than being clamped (spec §9 Open Question 2), as is a
// pos that lands inside an element rather than on a boundary (§9 Open
// Question 3).
func (l *List) DeleteAt(pos uint64, count int) {
	if count <= 0 {
		return
	}
	if pos > l.numUser {
		panicContract("delete position %d exceeds list user size %d", pos, l.numUser)
	}

	c, residual := l.CursorAtUserPos(pos)
	if residual != 0 {
		panicContract("delete at user position %d falls inside an element (residual %d)", pos, residual)
	}
	l.deleteAtCursor(c, count)
}

// deleteAtCursor implements §4.3.5's forward walk. c's levels serve as a
// fixed per-level predecessor array throughout: whole-node removal never
// reassigns which node c records as ancestor at a given level, only the
// *content* of that ancestor's skip entries (to bypass the freed node) —
// the node walk itself (curNode) still advances past each freed node.
func (l *List) deleteAtCursor(c *Cursor, remaining int) {
	curNode := c.node0()
	idx := c.localIndex

	for remaining > 0 {
		if curNode == nil {
			panicContract("delete count exceeds the list's remaining length")
		}
		if idx == curNode.numItems() {
			next := curNode.firstSkip().next
			if next == nil {
				panicContract("delete count exceeds the list's remaining length")
			}
			curNode = next
			idx = 0
		}

		removedHere := remaining
		if avail := curNode.numItems() - idx; avail < removedHere {
			removedHere = avail
		}
		slice := curNode.items[idx : idx+removedHere]
		removedUser := sequenceUserSize(slice)
		nodeHeight := curNode.height()

		if removedHere < curNode.numItems() || curNode == &l.head {
			kept := make([]any, 0, curNode.numItems()-removedHere)
			kept = append(kept, curNode.items[:idx]...)
			kept = append(kept, curNode.items[idx+removedHere:]...)
			curNode.items = kept

			for i := 0; i < nodeHeight; i++ {
				curNode.next[i].skipUserSize -= removedUser
			}
		} else {
			// The whole node is being freed: rewire every ancestor that
			// reaches it to bypass it, reparent its shadowed descendants,
			// then advance curNode to its successor before the next
			// iteration — this node is no longer part of the list, and
			// re-reading its (unmodified) items/next would both double-
			// count the just-removed span and corrupt the parent fixup.
			successor := curNode.firstSkip().next
			for i := 0; i < nodeHeight; i++ {
				ancestor := c.levels[i].node
				old := ancestor.next[i]
				ancestor.next[i] = skipEntry{
					next:         curNode.next[i].next,
					skipUserSize: old.skipUserSize + curNode.next[i].skipUserSize - removedUser,
				}
			}
			l.fixupParentsOnDelete(c, curNode)
			curNode = successor
			idx = 0
		}

		for i := nodeHeight; i < l.headHeight; i++ {
			c.levels[i].node.next[i].skipUserSize -= removedUser
		}

		l.numItems -= uint64(removedHere)
		l.numUser -= removedUser
		remaining -= removedHere
	}
}

// fixupParentsOnDelete reassigns the parent of every node that was
// shadowed by the just-removed node e (spec §4.3.5 "Parent update on node
// removal"). The new parent at e's former child's height h is
// c.levels[h].node: the induction that makes this correct is that every
// level's recorded ancestor in c is, at every point during the walk,
// already the true immediate predecessor at that level — removing e only
// ever rewrites ancestors' skip-table *contents*, never reassigns which
// node is recorded at a level (see deleteAtCursor).
func (l *List) fixupParentsOnDelete(c *Cursor, e *node) {
	eh := e.height()
	walker := e.firstSkip().next
	for walker != nil && walker.height() < eh {
		walker.parent = c.levels[walker.height()].node
		walker = walker.next[walker.height()-1].next
	}
}
