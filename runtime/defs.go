// Package cbor implements the low-level, allocation-free pieces of a CBOR
// (RFC 8949) codec: fixed-width byte loaders and a single-shot streaming
// decoder that drives a caller-supplied callback table over a byte slice.
//
// This package never builds a tree and never allocates on the caller's
// behalf; it only identifies the next data item header (and, for strings,
// its immediate payload) and reports how many bytes were consumed. The
// tree-building half of the codec lives in the sibling builder package.
package cbor

// recursionLimit bounds recursive calls in SkipItem. This limits the call
// depth of adversarial input trying to exhaust the stack.
const recursionLimit = 100000

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map); break for major type 7
)

// Simple values in major type 7. The float widths (16/32/64) reuse the
// addInfoUint{16,32,64} values above since they share the same AI
// encoding slots, addInfoUint8 marks the one-byte simple-value form, and
// the break code reuses addInfoIndefinite likewise.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
)

// makeByte creates a CBOR initial byte from major type and additional info.
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte.
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte.
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
