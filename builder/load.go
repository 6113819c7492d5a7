// Package builder assembles a complete CBOR item tree from a byte slice,
// driving the runtime package's streaming decoder and feeding its
// callbacks into a pushdown stack of open containers (package item).
package builder

import (
	"errors"
	"strconv"

	"github.com/l0ft1369/libcbor/item"
	cbor "github.com/l0ft1369/libcbor/runtime"
)

// ErrorCode classifies why Load failed.
type ErrorCode int

const (
	// NoData means data was empty.
	NoData ErrorCode = iota
	// NotEnoughData means data held a truncated item: a well-formed
	// prefix that would need more bytes to complete.
	NotEnoughData
	// Malformed means data's leading bytes cannot be a valid CBOR
	// encoding under any amount of additional data.
	Malformed
	// MemError means the installed item.Allocator refused an
	// allocation while the tree was being built.
	MemError
	// SyntaxError means the byte stream decoded as a sequence of valid
	// item headers that do not form a well-formed CBOR data item (an
	// unmatched break, a chunk of the wrong type inside an indefinite
	// string, or similar).
	SyntaxError
)

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	switch c {
	case NoData:
		return "NoData"
	case NotEnoughData:
		return "NotEnoughData"
	case Malformed:
		return "Malformed"
	case MemError:
		return "MemError"
	case SyntaxError:
		return "SyntaxError"
	default:
		return "ErrorCode(?)"
	}
}

// LoadError is returned by Load. Position is the byte offset into data
// at which the error was detected.
type LoadError struct {
	Code     ErrorCode
	Position int
}

func (e *LoadError) Error() string {
	return "builder: " + e.Code.String() + " at position " + strconv.Itoa(e.Position)
}

// Load decodes exactly one complete CBOR data item from data and returns
// it, or a *LoadError describing why it could not. On success, the
// returned item has a refcount of 1 and is owned by the caller: it must
// eventually be released with item.Decref.
//
// Load does not report how many bytes of data were consumed; callers
// wanting to decode a sequence of concatenated items should re-slice
// data themselves between calls, which is straightforward to do since
// LoadError already carries a byte position for the failure case but
// Load does not expose one for the success case. This matches the
// single-item-at-a-time scope of the sibling packages: parsing a
// concatenated stream is the caller's loop to write.
func Load(data []byte) (*item.Item, error) {
	if len(data) == 0 {
		return nil, &LoadError{Code: NoData, Position: 0}
	}

	var st State
	buf := data
	pos := 0
	for {
		itemStart := pos
		status, n, _ := cbor.DecodeOne(buf, &st)
		switch status {
		case cbor.StatusNeedMoreData:
			st.Release()
			return nil, &LoadError{Code: NotEnoughData, Position: pos}
		case cbor.StatusMalformed:
			st.Release()
			return nil, &LoadError{Code: Malformed, Position: pos}
		}

		buf = buf[n:]
		pos += n

		if st.Err() != nil {
			code := classify(st.Err())
			st.Release()
			return nil, &LoadError{Code: code, Position: itemStart}
		}
		if st.Done() {
			return st.Result(), nil
		}
		if len(buf) == 0 {
			st.Release()
			return nil, &LoadError{Code: NotEnoughData, Position: pos}
		}
	}
}

func classify(err error) ErrorCode {
	if errors.Is(err, item.ErrMemory) {
		return MemError
	}
	return SyntaxError
}
