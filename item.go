package iskiplist

import (
	"github.com/aalhour/iskiplist/internal/digest"
	"github.com/aalhour/iskiplist/internal/engine"
)

// Sizer is the optional capability an element implements to override the
// default user-measure of 1.
type Sizer = engine.Sizer

// Splitter is the optional capability required only when a caller inserts
// at a user-position that falls strictly inside an existing element.
type Splitter = engine.Splitter

// Hashable is the optional capability an element implements to contribute
// its own byte representation to ContentDigest, rather than falling back
// to its fmt.Sprint representation.
type Hashable = digest.Hashable

// UserSize returns item's user-measure: the Sizer value if it implements
// the capability, or the default of 1.
func UserSize(item any) uint64 { return engine.UserSize(item) }
