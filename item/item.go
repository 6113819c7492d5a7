// Package item implements the CBOR item model: a tagged-union value type
// covering all eight RFC 8949 major types, with reference-counted shared
// ownership, constructors, O(1) accessors, mutators for in-progress
// containers, and deep-copy routines.
//
// Items are built by the sibling builder package as it consumes events
// from the runtime package's streaming decoder, but the model here has no
// dependency on either: it is equally usable by hand-written code that
// wants to construct a CBOR value graph directly.
package item

// MajorType identifies which of the eight RFC 8949 major types an Item
// represents.
type MajorType uint8

const (
	UnsignedInt MajorType = iota
	NegativeInt
	ByteString
	TextString
	Array
	Map
	Tag
	FloatOrSimple
)

// String implements fmt.Stringer.
func (m MajorType) String() string {
	switch m {
	case UnsignedInt:
		return "UnsignedInt"
	case NegativeInt:
		return "NegativeInt"
	case ByteString:
		return "ByteString"
	case TextString:
		return "TextString"
	case Array:
		return "Array"
	case Map:
		return "Map"
	case Tag:
		return "Tag"
	case FloatOrSimple:
		return "FloatOrSimple"
	default:
		return "MajorType(?)"
	}
}

// Width is the integer width of an UnsignedInt or NegativeInt item, chosen
// by the decoder as the narrowest width that held the encoded argument.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// FloatKind distinguishes the sub-kinds of a FloatOrSimple item.
type FloatKind uint8

const (
	// Ctrl0 covers everything in major type 7 that isn't a float:
	// booleans, null, undefined, and opaque simple-value codes.
	Ctrl0 FloatKind = iota
	Half
	Single
	Double
)

// Well-known simple-value codes for FloatOrSimple items of kind Ctrl0.
const (
	SimpleFalse     uint8 = 20
	SimpleTrue      uint8 = 21
	SimpleNull      uint8 = 22
	SimpleUndefined uint8 = 23
)

// Pair is one key/value entry of a Map item, in encoded order.
type Pair struct {
	Key   *Item
	Value *Item
}

// Item is the universal CBOR value. Exactly one of the payload field
// groups below is meaningful, selected by major (and, for FloatOrSimple,
// by kind): a single struct with a kind discriminator, rather than an
// interface per variant.
type Item struct {
	major MajorType
	refs  int

	// UnsignedInt: uval holds the value.
	// NegativeInt: uval holds the magnitude m; logical value is -1-m.
	width Width
	uval  uint64

	// ByteString / TextString.
	definite   bool
	bytesVal   []byte  // owned backing buffer, set once, definite only
	chunks     []*Item // indefinite ByteString/TextString chunks (definite children only); also Array's children
	codepoints int64   // TextString only; -1 until known

	// Array / Map: declared entry count for a definite container, -1 for
	// indefinite. Tracked independently of cap(chunks)/cap(pairs), which
	// is only a preallocation hint and may be smaller than declSize for a
	// large declared size (see maxPrealloc).
	declSize int64

	// Map.
	pairs []Pair

	// Tag.
	tagValue uint64
	tagChild *Item

	// FloatOrSimple.
	kind       FloatKind
	simpleCode uint8
	f32        float32
	f64        float64
}

// Major returns the item's major type.
func (it *Item) Major() MajorType { return it.major }

// IsDefinite reports whether a ByteString, TextString, Array, or Map item
// has a declared length rather than an open-ended one still accepting
// appends. Always true for the other major types.
func (it *Item) IsDefinite() bool {
	switch it.major {
	case ByteString, TextString, Array, Map:
		return it.definite
	default:
		return true
	}
}
