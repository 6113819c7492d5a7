package item

// All accessors below are O(1) and return the zero value when called
// against the wrong major type; callers are expected to switch on Major()
// first.

// Width returns the integer width for an UnsignedInt or NegativeInt item.
func (it *Item) Width() Width { return it.width }

// Uint returns the value of an UnsignedInt item.
func (it *Item) Uint() uint64 { return it.uval }

// NegMagnitude returns the raw magnitude m of a NegativeInt item.
func (it *Item) NegMagnitude() uint64 { return it.uval }

// NegValue returns the logical value -1-m of a NegativeInt item as an
// int64, and whether that value fits (it does not when m > math.MaxInt64,
// i.e. the encoded negative number is more negative than math.MinInt64).
func (it *Item) NegValue() (int64, bool) {
	if it.uval > 1<<63-1 {
		return 0, false
	}
	return -1 - int64(it.uval), true
}

// Bytes returns the backing buffer of a definite ByteString or TextString
// item. It is nil for an indefinite (chunked) string.
func (it *Item) Bytes() []byte { return it.bytesVal }

// ChunkCount returns the number of chunks of an indefinite ByteString or
// TextString item.
func (it *Item) ChunkCount() int { return len(it.chunks) }

// Chunk returns the i'th chunk of an indefinite ByteString or TextString
// item. Every chunk is itself a definite item of the same major type.
func (it *Item) Chunk(i int) *Item { return it.chunks[i] }

// Chunks returns the full chunk slice of an indefinite ByteString or
// TextString item. The returned slice aliases the item's storage and must
// not be mutated or retained past the item's lifetime.
func (it *Item) Chunks() []*Item { return it.chunks }

// CodepointCount returns the number of Unicode codepoints of a TextString
// item (-1 if unknown, which does not occur for items produced by this
// package's constructors or the builder).
func (it *Item) CodepointCount() int64 { return it.codepoints }

// ArrayLen returns the number of elements currently held by an Array
// item: its declared size once complete, or however many have been
// appended so far if still open.
func (it *Item) ArrayLen() int { return len(it.chunks) }

// ArrayElem returns the i'th element of an Array item.
func (it *Item) ArrayElem(i int) *Item { return it.chunks[i] }

// ArrayElems returns the full element slice of an Array item. The
// returned slice aliases the item's storage and must not be mutated or
// retained past the item's lifetime.
func (it *Item) ArrayElems() []*Item { return it.chunks }

// MapLen returns the number of key/value pairs currently held by a Map
// item.
func (it *Item) MapLen() int { return len(it.pairs) }

// MapPair returns the i'th key/value pair of a Map item, in encoded
// order.
func (it *Item) MapPair(i int) Pair { return it.pairs[i] }

// MapPairs returns the full pair slice of a Map item. The returned slice
// aliases the item's storage and must not be mutated or retained past the
// item's lifetime.
func (it *Item) MapPairs() []Pair { return it.pairs }

// TagValue returns the u64 tag number of a Tag item.
func (it *Item) TagValue() uint64 { return it.tagValue }

// TagChild returns the single child of a Tag item, or nil if it has not
// been attached yet via TagSetChild.
func (it *Item) TagChild() *Item { return it.tagChild }

// FloatKind returns the sub-kind of a FloatOrSimple item.
func (it *Item) FloatKind() FloatKind { return it.kind }

// Float32 returns the payload of a FloatOrSimple item of kind Half or
// Single.
func (it *Item) Float32() float32 { return it.f32 }

// Float64 returns the payload of a FloatOrSimple item of kind Double.
func (it *Item) Float64() float64 { return it.f64 }

// SimpleCode returns the raw simple-value code of a FloatOrSimple item of
// kind Ctrl0 (booleans, null, undefined, and opaque codes all live here).
func (it *Item) SimpleCode() uint8 { return it.simpleCode }

// Bool reports whether the item is the logical boolean false/true simple
// value, and if so, its value.
func (it *Item) Bool() (value bool, ok bool) {
	if it.major != FloatOrSimple || it.kind != Ctrl0 {
		return false, false
	}
	switch it.simpleCode {
	case SimpleTrue:
		return true, true
	case SimpleFalse:
		return false, true
	default:
		return false, false
	}
}

// IsNull reports whether the item is the logical null simple value.
func (it *Item) IsNull() bool {
	return it.major == FloatOrSimple && it.kind == Ctrl0 && it.simpleCode == SimpleNull
}

// IsUndefined reports whether the item is the logical undefined simple
// value.
func (it *Item) IsUndefined() bool {
	return it.major == FloatOrSimple && it.kind == Ctrl0 && it.simpleCode == SimpleUndefined
}
