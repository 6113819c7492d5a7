package builder

import "github.com/l0ft1369/libcbor/item"

// frameKind identifies what kind of open container a pushdown frame is
// waiting to complete.
type frameKind int

const (
	frameArrayDefinite frameKind = iota
	frameArrayIndefinite
	frameMapDefinite
	frameMapIndefinite
	frameTag
	frameByteStringIndefinite
	frameTextStringIndefinite
)

// frame is one level of the builder's pushdown stack: the container item
// under construction, plus however much bookkeeping its kind needs to
// know when it is complete.
type frame struct {
	kind frameKind
	item *item.Item

	// remaining counts items still needed for frameArrayDefinite, or
	// pairs still needed for frameMapDefinite. Unused otherwise.
	remaining uint64

	// pendingKey holds a map frame's current key while its value is
	// still being decoded. nil when the frame is between pairs.
	pendingKey *item.Item
}

// acceptsOnlyDefiniteChunks reports whether k is an indefinite string
// frame, whose only legal children are definite strings of the matching
// major type: no nested containers, and no further indefinite strings.
func (k frameKind) acceptsOnlyDefiniteChunks() bool {
	return k == frameByteStringIndefinite || k == frameTextStringIndefinite
}
