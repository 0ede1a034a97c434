// Package iskiplist implements an indexed skip list: an ordered,
// in-memory sequence container that supports logarithmic-time positional
// insertion, deletion, replacement, and modification, indexed by a
// caller-defined running "user-measure" sum rather than by plain element
// count.
//
// The structural algorithms (node splitting on overflow, merge/trim on
// deletion, lazy height promotion, and the parent back-pointer network
// that makes reverse traversal from a marker possible in O(log n)) live in
// internal/engine. This package is the thin public façade: construction,
// the positional edit operations, iteration, and the change-notification
// sink contract.
package iskiplist
