// Package digest computes a fast, non-cryptographic content fingerprint
// over a contiguous run of opaque sequence elements.
//
// The teacher (aalhour-rockyardkv) wires XXH3 into on-disk block checksums
// (internal/checksum, internal/block/footer.go) — an integrity check over
// bytes written to storage. This package repurposes the same hash for an
// in-memory structural fingerprint: internal/engine's List.ContentDigest
// streams the skip list's nodes through an Accumulator, so two sequences
// can be compared by digest in O(n) without building a flat copy of either.
//
// Reference: RocksDB v10.7.5 uses XXH3_64bits() for SST/WAL block checksums
// (see aalhour-rockyardkv/internal/checksum/xxh3.go); this package uses the
// real github.com/zeebo/xxh3 implementation rather than a hand-rolled one.
package digest

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Hashable is implemented by elements that can contribute their own byte
// representation to a digest. Elements that do not implement it fall back
// to their fmt.Stringer/fmt.Sprint representation, which is sufficient for
// a debug fingerprint but not guaranteed collision-resistant across types.
type Hashable interface {
	Bytes() []byte
}

// Sequence computes a running digest over items, in order. Each element is
// folded into the hash state along with its position, so a digest detects
// reorderings as well as content changes.
func Sequence(items []any) uint64 {
	var a Accumulator
	a.Write(items)
	return a.Sum64()
}

// Accumulator folds successive, non-overlapping runs of elements into one
// digest, so a caller holding the sequence in disjoint chunks (e.g. the
// skip list's per-node storage) need not flatten it into a single slice
// first. A zero-value Accumulator is ready to use.
type Accumulator struct {
	h   *xxh3.Hasher
	pos uint64
}

// Write folds items, in order, into the accumulator's running digest.
func (a *Accumulator) Write(items []any) {
	if a.h == nil {
		a.h = xxh3.New()
	}
	var lenBuf [8]byte
	for _, item := range items {
		b := elementBytes(item)
		putUint64(lenBuf[:], uint64(len(b)))
		_, _ = a.h.Write(lenBuf[:])
		_, _ = a.h.Write(b)
		putUint64(lenBuf[:], a.pos)
		_, _ = a.h.Write(lenBuf[:])
		a.pos++
	}
}

// Sum64 returns the digest accumulated so far.
func (a *Accumulator) Sum64() uint64 {
	if a.h == nil {
		return xxh3.New().Sum64()
	}
	return a.h.Sum64()
}

func elementBytes(item any) []byte {
	if h, ok := item.(Hashable); ok {
		return h.Bytes()
	}
	return []byte(fmt.Sprint(item))
}

func putUint64(b []byte, v uint64) {
	for i := range 8 {
		b[i] = byte(v >> (8 * i))
	}
}
