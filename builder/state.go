package builder

import (
	"errors"

	"github.com/l0ft1369/libcbor/item"
)

// maxDepth bounds how many frames State will push, the tree-building
// analogue of SkipItem's recursion limit in the runtime package, so a
// pathologically deep indefinite-array chain cannot grow the stack slice
// without bound.
const maxDepth = 100000

var (
	errUnexpectedBreak  = errors.New("builder: break encountered with no matching open container")
	errForbiddenNesting = errors.New("builder: indefinite-length string chunks cannot themselves be containers or indefinite strings")
	errDepthExceeded    = errors.New("builder: container nesting exceeds the depth limit")
)

// State implements runtime.Callbacks, assembling exactly one complete
// item tree from the sequence of callbacks a single pass over DecodeOne
// produces. It is single-use: construct a zero State, drive it with
// DecodeOne until Done reports true, then read Result.
type State struct {
	stack  []*frame
	result *item.Item
	done   bool
	err    error
}

// Done reports whether State has successfully finished assembling a
// complete item. It stays false once an error has been recorded; check
// Err for that.
func (s *State) Done() bool { return s.done }

// Err returns the first error recorded by a callback, if any. Once an
// error is recorded, every later callback is a no-op.
func (s *State) Err() error { return s.err }

// Result returns the completed item. Valid only once Done reports true
// and Err reports nil.
func (s *State) Result() *item.Item { return s.result }

func (s *State) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// canNest reports whether a new container (array, map, tag, or
// indefinite string) may legally open given the current top frame.
func (s *State) canNest() bool {
	top := s.top()
	return top == nil || !top.kind.acceptsOnlyDefiniteChunks()
}

func (s *State) push(f *frame) {
	if len(s.stack) >= maxDepth {
		s.err = errDepthExceeded
		item.Decref(&f.item)
		return
	}
	s.stack = append(s.stack, f)
}

// Release decrefs every container still open on the stack, along with
// any map frame's pending key, and clears the stack. Load calls this on
// every failure path so a partially-built tree does not leak.
func (s *State) Release() {
	for _, f := range s.stack {
		if f.pendingKey != nil {
			item.Decref(&f.pendingKey)
		}
		item.Decref(&f.item)
	}
	s.stack = nil
}

// complete attaches a fully-built item to whatever is waiting for it:
// the enclosing frame, if any, or the overall result if the stack is
// empty. Containers that become complete as a result cascade upward
// through recursive calls to complete on their own enclosing frame.
func (s *State) complete(it *item.Item) {
	if s.err != nil {
		return
	}
	top := s.top()
	if top == nil {
		s.result = it
		s.done = true
		return
	}

	switch top.kind {
	case frameArrayDefinite, frameArrayIndefinite:
		if err := item.ArrayPush(top.item, it); err != nil {
			item.Decref(&it)
			s.err = err
			return
		}
		if top.kind == frameArrayDefinite {
			top.remaining--
			if top.remaining == 0 {
				s.popAndComplete()
			}
		}

	case frameMapDefinite, frameMapIndefinite:
		if top.pendingKey == nil {
			top.pendingKey = it
			return
		}
		key := top.pendingKey
		top.pendingKey = nil
		if err := item.MapAdd(top.item, key, it); err != nil {
			item.Decref(&key)
			item.Decref(&it)
			s.err = err
			return
		}
		if top.kind == frameMapDefinite {
			top.remaining--
			if top.remaining == 0 {
				s.popAndComplete()
			}
		}

	case frameTag:
		if err := item.TagSetChild(top.item, it); err != nil {
			item.Decref(&it)
			s.err = err
			return
		}
		s.popAndComplete()

	case frameByteStringIndefinite:
		if err := item.ByteStringAddChunk(top.item, it); err != nil {
			item.Decref(&it)
			s.err = err
			return
		}

	case frameTextStringIndefinite:
		if err := item.StringAddChunk(top.item, it); err != nil {
			item.Decref(&it)
			s.err = err
			return
		}
	}
}

func (s *State) popAndComplete() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.complete(top.item)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// --- integers ---

func (s *State) Uint8(v uint8)   { s.completeNew(item.NewUint(item.Width8, uint64(v))) }
func (s *State) Uint16(v uint16) { s.completeNew(item.NewUint(item.Width16, uint64(v))) }
func (s *State) Uint32(v uint32) { s.completeNew(item.NewUint(item.Width32, uint64(v))) }
func (s *State) Uint64(v uint64) { s.completeNew(item.NewUint(item.Width64, v)) }

func (s *State) NegInt8(m uint8)   { s.completeNew(item.NewNegInt(item.Width8, uint64(m))) }
func (s *State) NegInt16(m uint16) { s.completeNew(item.NewNegInt(item.Width16, uint64(m))) }
func (s *State) NegInt32(m uint32) { s.completeNew(item.NewNegInt(item.Width32, uint64(m))) }
func (s *State) NegInt64(m uint64) { s.completeNew(item.NewNegInt(item.Width64, m)) }

// completeNew is the common path for scalar constructors: on
// construction failure it records the error and otherwise completes the
// new item against the current frame.
func (s *State) completeNew(it *item.Item, err error) {
	if s.err != nil {
		return
	}
	if err != nil {
		s.err = err
		return
	}
	s.complete(it)
}

// --- strings ---

func (s *State) ByteString(b []byte) {
	s.completeNew(item.FromOwnedBytes(item.ByteString, cloneBytes(b)))
}

func (s *State) String(b []byte) {
	s.completeNew(item.FromOwnedBytes(item.TextString, cloneBytes(b)))
}

func (s *State) ByteStringStart() {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewByteStringIndefinite()
	if err != nil {
		s.err = err
		return
	}
	s.push(&frame{kind: frameByteStringIndefinite, item: it})
}

func (s *State) StringStart() {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewTextStringIndefinite()
	if err != nil {
		s.err = err
		return
	}
	s.push(&frame{kind: frameTextStringIndefinite, item: it})
}

// --- containers ---

func (s *State) ArrayStart(n uint64) {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewArrayDefinite(n)
	if err != nil {
		s.err = err
		return
	}
	if n == 0 {
		s.complete(it)
		return
	}
	s.push(&frame{kind: frameArrayDefinite, item: it, remaining: n})
}

func (s *State) IndefArrayStart() {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewArrayIndefinite()
	if err != nil {
		s.err = err
		return
	}
	s.push(&frame{kind: frameArrayIndefinite, item: it})
}

func (s *State) MapStart(n uint64) {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewMapDefinite(n)
	if err != nil {
		s.err = err
		return
	}
	if n == 0 {
		s.complete(it)
		return
	}
	s.push(&frame{kind: frameMapDefinite, item: it, remaining: n})
}

func (s *State) IndefMapStart() {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewMapIndefinite()
	if err != nil {
		s.err = err
		return
	}
	s.push(&frame{kind: frameMapIndefinite, item: it})
}

func (s *State) Tag(v uint64) {
	if s.err != nil {
		return
	}
	if !s.canNest() {
		s.err = errForbiddenNesting
		return
	}
	it, err := item.NewTag(v)
	if err != nil {
		s.err = err
		return
	}
	s.push(&frame{kind: frameTag, item: it})
}

// --- simple values and floats ---

func (s *State) Boolean(v bool)     { s.completeNew(item.NewBool(v)) }
func (s *State) Null()              { s.completeNew(item.NewNull()) }
func (s *State) Undefined()         { s.completeNew(item.NewUndefined()) }
func (s *State) Simple(v uint8)     { s.completeNew(item.NewSimple(v)) }
func (s *State) Float16(v float32)  { s.completeNew(item.NewFloat16(v)) }
func (s *State) Float32(v float32)  { s.completeNew(item.NewFloat32(v)) }
func (s *State) Float64(v float64)  { s.completeNew(item.NewFloat64(v)) }

// --- break ---

func (s *State) IndefBreak() {
	if s.err != nil {
		return
	}
	top := s.top()
	if top == nil {
		s.err = errUnexpectedBreak
		return
	}
	switch top.kind {
	case frameArrayIndefinite, frameByteStringIndefinite, frameTextStringIndefinite:
		s.stack = s.stack[:len(s.stack)-1]
		s.complete(top.item)
	case frameMapIndefinite:
		if top.pendingKey != nil {
			s.err = errUnexpectedBreak
			return
		}
		s.stack = s.stack[:len(s.stack)-1]
		s.complete(top.item)
	default:
		s.err = errUnexpectedBreak
	}
}
