package engine

import (
	"fmt"

	"github.com/aalhour/iskiplist/internal/logging"
)

// Check walks the full structure and verifies every invariant from spec
// §3: skip-table correctness at every level, non-head nodes never empty,
// head height no lower than the tallest node (the head never shrinks when
// tall nodes are deleted), list aggregates matching summed
// node contents, and the parent-pointer network. It is a test/debug tool,
// not something production call sites should run per-operation (spec §6).
func (l *List) Check() error {
	return l.CheckWithLogger(logging.Discard)
}

// CheckWithLogger runs Check and, on failure, reports the violation through
// log before returning it, mirroring the teacher's own practice of logging
// a structured message alongside a returned error at a validation
// boundary. A nil log is treated as logging.Discard.
func (l *List) CheckWithLogger(log logging.Logger) error {
	log = logging.OrDefault(log)
	err := l.checkInvariants()
	if err != nil {
		log.Errorf(logging.NSCheck+"%v", err)
	}
	return err
}

func (l *List) checkInvariants() error {
	type posNode struct {
		n   *node
		pos uint64
	}

	var chain []posNode
	pos := uint64(0)
	for n := l.head.firstSkip().next; n != nil; n = n.firstSkip().next {
		if n.numItems() == 0 {
			return contractErrorf("check: non-head node at user position %d has zero items", pos)
		}
		chain = append(chain, posNode{n: n, pos: pos})
		pos += n.userSize()
	}
	total := pos

	if total != l.numUser {
		return contractErrorf("check: sum of node user sizes %d != list user size %d", total, l.numUser)
	}
	var totalItems uint64
	for _, e := range chain {
		totalItems += uint64(e.n.numItems())
	}
	if totalItems != l.numItems {
		return contractErrorf("check: sum of node item counts %d != list item count %d", totalItems, l.numItems)
	}

	posOf := make(map[*node]uint64, len(chain)+1)
	posOf[&l.head] = 0
	for _, e := range chain {
		posOf[e.n] = e.pos
	}
	endPos := func(n *node) uint64 {
		if n == nil {
			return total
		}
		return posOf[n]
	}

	checkSkipTable := func(n *node, label string, start uint64) error {
		for i := 0; i < l.height(n); i++ {
			e := n.next[i]
			if e.next != nil {
				if _, reachable := posOf[e.next]; !reachable {
					return contractErrorf("check: %s.next[%d] points to an unreachable node", label, i)
				}
			}
			want := endPos(e.next) - start
			if e.skipUserSize != want {
				return contractErrorf("check: %s.next[%d].skipUserSize = %d, want %d", label, i, e.skipUserSize, want)
			}
		}
		return nil
	}

	if err := checkSkipTable(&l.head, "head", 0); err != nil {
		return err
	}
	for idx, e := range chain {
		if err := checkSkipTable(e.n, fmt.Sprintf("node#%d", idx), e.pos); err != nil {
			return err
		}
	}

	wantHeadHeight := 1
	for _, e := range chain {
		if h := e.n.height(); h > wantHeadHeight {
			wantHeadHeight = h
		}
	}
	if l.headHeight < wantHeadHeight {
		return contractErrorf("check: head height %d, want at least %d (tallest node, or 1 if empty)", l.headHeight, wantHeadHeight)
	}

	for idx, e := range chain {
		expected := &l.head
		for j := idx - 1; j >= 0; j-- {
			if chain[j].n.height() > e.n.height() {
				expected = chain[j].n
				break
			}
		}
		if e.n.parent != expected {
			return contractErrorf("check: node#%d parent mismatch", idx)
		}
	}

	return nil
}
