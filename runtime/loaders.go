package cbor

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

var be = binary.BigEndian

// LoadUint8BE reads a single byte at off. The caller must ensure
// off < len(b).
func LoadUint8BE(b []byte, off int) uint8 { return b[off] }

// LoadUint16BE reads a big-endian uint16 at off. The caller must ensure
// off+2 <= len(b).
func LoadUint16BE(b []byte, off int) uint16 { return be.Uint16(b[off:]) }

// LoadUint32BE reads a big-endian uint32 at off. The caller must ensure
// off+4 <= len(b).
func LoadUint32BE(b []byte, off int) uint32 { return be.Uint32(b[off:]) }

// LoadUint64BE reads a big-endian uint64 at off. The caller must ensure
// off+8 <= len(b).
func LoadUint64BE(b []byte, off int) uint64 { return be.Uint64(b[off:]) }

// LoadFloat16 reads a big-endian IEEE-754 binary16 at off and expands it to
// float32, preserving infinities, NaNs, and subnormals. The caller must
// ensure off+2 <= len(b).
func LoadFloat16(b []byte, off int) float32 {
	return float16.Frombits(LoadUint16BE(b, off)).Float32()
}

// LoadFloat32 reads a big-endian IEEE-754 binary32 at off. The caller must
// ensure off+4 <= len(b).
func LoadFloat32(b []byte, off int) float32 {
	return math.Float32frombits(LoadUint32BE(b, off))
}

// LoadFloat64 reads a big-endian IEEE-754 binary64 at off. The caller must
// ensure off+8 <= len(b).
func LoadFloat64(b []byte, off int) float64 {
	return math.Float64frombits(LoadUint64BE(b, off))
}
