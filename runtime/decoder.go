package cbor

// Status reports the outcome of a single DecodeOne call.
type Status int

const (
	// StatusFinished indicates a complete item header (and, for strings,
	// its immediate payload) was decoded and exactly one callback fired.
	StatusFinished Status = iota
	// StatusNeedMoreData indicates buf does not contain enough bytes to
	// decode the next item. No callback fired and buf was not consumed.
	StatusNeedMoreData
	// StatusMalformed indicates buf's leading bytes cannot be a valid
	// CBOR item header under any amount of additional data. No callback
	// fired.
	StatusMalformed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "Finished"
	case StatusNeedMoreData:
		return "NeedMoreData"
	case StatusMalformed:
		return "Malformed"
	default:
		return "Status(?)"
	}
}

// Callbacks is the dispatch table DecodeOne drives. Exactly one method
// fires per successful DecodeOne call. Implementations that build a tree
// (see the builder package) typically embed a pushdown stack behind this
// interface; implementations that only want to skip or validate need not
// retain any item state at all.
type Callbacks interface {
	Uint8(v uint8)
	Uint16(v uint16)
	Uint32(v uint32)
	Uint64(v uint64)

	NegInt8(m uint8)
	NegInt16(m uint16)
	NegInt32(m uint32)
	NegInt64(m uint64)

	ByteString(b []byte)
	ByteStringStart()

	String(b []byte)
	StringStart()

	ArrayStart(n uint64)
	IndefArrayStart()

	MapStart(n uint64)
	IndefMapStart()

	Tag(v uint64)

	Boolean(v bool)
	Null()
	Undefined()
	Simple(v uint8)

	Float16(v float32)
	Float32(v float32)
	Float64(v float64)

	IndefBreak()
}

// DecodeOne reads at most one complete CBOR data item header from buf,
// invoking exactly one Callbacks method on success, and returns how many
// bytes were consumed. It never reads past len(buf). On StatusNeedMoreData
// or StatusMalformed, no callback is invoked and n is 0.
func DecodeOne(buf []byte, cb Callbacks) (status Status, n int, err error) {
	if len(buf) < 1 {
		return StatusNeedMoreData, 0, nil
	}

	ib := buf[0]
	major := getMajorType(ib)
	add := getAddInfo(ib)

	if add >= 28 && add <= 30 {
		return StatusMalformed, 0, InvalidAdditionalInfoError{Major: major, Info: add}
	}

	switch major {
	case majorTypeUint, majorTypeNegInt:
		if add == addInfoIndefinite {
			return StatusMalformed, 0, InvalidAdditionalInfoError{Major: major, Info: add}
		}
		arg, hdrLen, st := readArgument(buf, add)
		if st != StatusFinished {
			return st, 0, nil
		}
		dispatchInt(cb, major, add, arg)
		return StatusFinished, hdrLen, nil

	case majorTypeTag:
		if add == addInfoIndefinite {
			return StatusMalformed, 0, InvalidAdditionalInfoError{Major: major, Info: add}
		}
		arg, hdrLen, st := readArgument(buf, add)
		if st != StatusFinished {
			return st, 0, nil
		}
		cb.Tag(arg)
		return StatusFinished, hdrLen, nil

	case majorTypeBytes, majorTypeText:
		if add == addInfoIndefinite {
			if major == majorTypeBytes {
				cb.ByteStringStart()
			} else {
				cb.StringStart()
			}
			return StatusFinished, 1, nil
		}
		arg, hdrLen, st := readArgument(buf, add)
		if st != StatusFinished {
			return st, 0, nil
		}
		if arg > uint64(len(buf)-hdrLen) {
			return StatusNeedMoreData, 0, nil
		}
		payload := buf[hdrLen : hdrLen+int(arg)]
		if major == majorTypeBytes {
			cb.ByteString(payload)
		} else {
			cb.String(payload)
		}
		return StatusFinished, hdrLen + int(arg), nil

	case majorTypeArray, majorTypeMap:
		if add == addInfoIndefinite {
			if major == majorTypeArray {
				cb.IndefArrayStart()
			} else {
				cb.IndefMapStart()
			}
			return StatusFinished, 1, nil
		}
		arg, hdrLen, st := readArgument(buf, add)
		if st != StatusFinished {
			return st, 0, nil
		}
		if major == majorTypeArray {
			cb.ArrayStart(arg)
		} else {
			cb.MapStart(arg)
		}
		return StatusFinished, hdrLen, nil

	case majorTypeSimple:
		return decodeSimple(buf, add, cb)

	default:
		// Unreachable: major is masked to 3 bits by getMajorType.
		return StatusMalformed, 0, nil
	}
}

// readArgument decodes the AI-encoded argument that follows the initial
// byte (already at buf[0]), returning the argument value and the total
// header length including the initial byte. add must not be
// addInfoIndefinite or a reserved value; callers filter those first.
func readArgument(buf []byte, add uint8) (arg uint64, hdrLen int, status Status) {
	switch {
	case add <= addInfoDirect:
		return uint64(add), 1, StatusFinished
	case add == addInfoUint8:
		if len(buf) < 2 {
			return 0, 0, StatusNeedMoreData
		}
		return uint64(LoadUint8BE(buf, 1)), 2, StatusFinished
	case add == addInfoUint16:
		if len(buf) < 3 {
			return 0, 0, StatusNeedMoreData
		}
		return uint64(LoadUint16BE(buf, 1)), 3, StatusFinished
	case add == addInfoUint32:
		if len(buf) < 5 {
			return 0, 0, StatusNeedMoreData
		}
		return uint64(LoadUint32BE(buf, 1)), 5, StatusFinished
	case add == addInfoUint64:
		if len(buf) < 9 {
			return 0, 0, StatusNeedMoreData
		}
		return LoadUint64BE(buf, 1), 9, StatusFinished
	default:
		// Unreachable given the callers' filtering.
		return 0, 0, StatusMalformed
	}
}

// widthForAddInfo returns the narrowest integer width (8/16/32/64) that the
// AI class of add selects, per the decoder's width-preservation rule.
func widthForAddInfo(add uint8) int {
	switch {
	case add <= addInfoDirect, add == addInfoUint8:
		return 8
	case add == addInfoUint16:
		return 16
	case add == addInfoUint32:
		return 32
	case add == addInfoUint64:
		return 64
	default:
		return 0
	}
}

func dispatchInt(cb Callbacks, major uint8, add uint8, arg uint64) {
	switch widthForAddInfo(add) {
	case 8:
		if major == majorTypeUint {
			cb.Uint8(uint8(arg))
		} else {
			cb.NegInt8(uint8(arg))
		}
	case 16:
		if major == majorTypeUint {
			cb.Uint16(uint16(arg))
		} else {
			cb.NegInt16(uint16(arg))
		}
	case 32:
		if major == majorTypeUint {
			cb.Uint32(uint32(arg))
		} else {
			cb.NegInt32(uint32(arg))
		}
	case 64:
		if major == majorTypeUint {
			cb.Uint64(arg)
		} else {
			cb.NegInt64(arg)
		}
	}
}

// decodeSimple handles major type 7: booleans, null, undefined, opaque
// simple values, floats, and the indefinite-length break code.
func decodeSimple(buf []byte, add uint8, cb Callbacks) (Status, int, error) {
	switch {
	case add < simpleFalse:
		cb.Simple(add)
		return StatusFinished, 1, nil
	case add == simpleFalse:
		cb.Boolean(false)
		return StatusFinished, 1, nil
	case add == simpleTrue:
		cb.Boolean(true)
		return StatusFinished, 1, nil
	case add == simpleNull:
		cb.Null()
		return StatusFinished, 1, nil
	case add == simpleUndefined:
		cb.Undefined()
		return StatusFinished, 1, nil
	case add == addInfoUint8: // one-byte simple value: 0xf8 xx, xx in 32..255
		if len(buf) < 2 {
			return StatusNeedMoreData, 0, nil
		}
		v := LoadUint8BE(buf, 1)
		if v < 32 {
			return StatusMalformed, 0, InvalidSimpleValueError{Value: v}
		}
		cb.Simple(v)
		return StatusFinished, 2, nil
	case add == addInfoUint16: // simpleFloat16
		if len(buf) < 3 {
			return StatusNeedMoreData, 0, nil
		}
		cb.Float16(LoadFloat16(buf, 1))
		return StatusFinished, 3, nil
	case add == addInfoUint32: // simpleFloat32
		if len(buf) < 5 {
			return StatusNeedMoreData, 0, nil
		}
		cb.Float32(LoadFloat32(buf, 1))
		return StatusFinished, 5, nil
	case add == addInfoUint64: // simpleFloat64
		if len(buf) < 9 {
			return StatusNeedMoreData, 0, nil
		}
		cb.Float64(LoadFloat64(buf, 1))
		return StatusFinished, 9, nil
	case add == addInfoIndefinite: // break
		cb.IndefBreak()
		return StatusFinished, 1, nil
	default:
		// Unreachable: every add in [0,31] except the reserved 28..30
		// (filtered by the caller) is handled above.
		return StatusMalformed, 0, InvalidAdditionalInfoError{Major: majorTypeSimple, Info: add}
	}
}
