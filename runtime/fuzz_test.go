package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/l0ft1369/libcbor/builder"
	"github.com/l0ft1369/libcbor/item"
	cbor "github.com/l0ft1369/libcbor/runtime"
)

// fuzzDecodeOneCallbacks records nothing; it exists only so FuzzDecode can
// drive DecodeOne's full dispatch table without the allocation cost of the
// tree builder.
type fuzzDecodeOneCallbacks struct{}

func (fuzzDecodeOneCallbacks) Uint8(uint8)       {}
func (fuzzDecodeOneCallbacks) Uint16(uint16)     {}
func (fuzzDecodeOneCallbacks) Uint32(uint32)     {}
func (fuzzDecodeOneCallbacks) Uint64(uint64)     {}
func (fuzzDecodeOneCallbacks) NegInt8(uint8)     {}
func (fuzzDecodeOneCallbacks) NegInt16(uint16)   {}
func (fuzzDecodeOneCallbacks) NegInt32(uint32)   {}
func (fuzzDecodeOneCallbacks) NegInt64(uint64)   {}
func (fuzzDecodeOneCallbacks) ByteString([]byte) {}
func (fuzzDecodeOneCallbacks) ByteStringStart()  {}
func (fuzzDecodeOneCallbacks) String([]byte)     {}
func (fuzzDecodeOneCallbacks) StringStart()      {}
func (fuzzDecodeOneCallbacks) ArrayStart(uint64) {}
func (fuzzDecodeOneCallbacks) IndefArrayStart()  {}
func (fuzzDecodeOneCallbacks) MapStart(uint64)   {}
func (fuzzDecodeOneCallbacks) IndefMapStart()    {}
func (fuzzDecodeOneCallbacks) Tag(uint64)        {}
func (fuzzDecodeOneCallbacks) Boolean(bool)      {}
func (fuzzDecodeOneCallbacks) Null()             {}
func (fuzzDecodeOneCallbacks) Undefined()        {}
func (fuzzDecodeOneCallbacks) Simple(uint8)      {}
func (fuzzDecodeOneCallbacks) Float16(float32)   {}
func (fuzzDecodeOneCallbacks) Float32(float32)   {}
func (fuzzDecodeOneCallbacks) Float64(float64)   {}
func (fuzzDecodeOneCallbacks) IndefBreak()       {}

// FuzzDecode fuzzes DecodeOne, SkipItem, and builder.Load together to
// ensure none of the three panics on arbitrary, likely-malformed input,
// seeded with the hex vectors from the spec's concrete scenarios (well-
// formed and deliberately truncated/malformed alike).
func FuzzDecode(f *testing.F) {
	seeds := []string{
		"00",                 // uint8 zero
		"1a000f4240",         // uint32 1_000_000
		"20",                 // negint8 m=0
		"83010203",           // definite array [1,2,3]
		"9f0102ff",           // indefinite array [1,2]
		"bf616101ff",         // indefinite map {"a":1}
		"5f42010243030405ff", // indefinite byte string, two chunks
		"c074323031332d30332d32315432303a30343a30305a", // tag 0 wrapping a datetime text
		"ff",   // lone break
		"8201", // truncated array
		"1c",   // reserved additional info
	}
	for _, s := range seeds {
		b, err := hex.DecodeString(s)
		if err != nil {
			continue
		}
		f.Add(b)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic on input %x: %v", data, r)
			}
		}()

		_, _, _ = cbor.DecodeOne(data, fuzzDecodeOneCallbacks{})

		_, _ = cbor.SkipItem(data)

		it, err := builder.Load(data)
		if err == nil {
			item.Decref(&it)
		}
	})
}
