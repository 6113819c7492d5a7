package item

import "unicode/utf8"

// maxPrealloc bounds the capacity hint taken from an untrusted declared
// container size, so a hostile header (e.g. array(2^32-1)) cannot force a
// large up-front allocation before any element has actually arrived.
const maxPrealloc = 4096

// newItem is the sole path every constructor in this file goes through, so
// it is also the sole place an Allocator's failure is normalized to
// ErrMemory: callers upstream (builder.Load's classify, in particular) only
// need to recognize ErrMemory, not whatever sentinel a given Allocator
// implementation happens to return from Alloc.
func newItem(major MajorType) (*Item, error) {
	if err := currentAllocator.Alloc(); err != nil {
		return nil, ErrMemory
	}
	return &Item{major: major, refs: 1}, nil
}

// NewUint constructs a definite UnsignedInt item of the given width.
func NewUint(width Width, v uint64) (*Item, error) {
	it, err := newItem(UnsignedInt)
	if err != nil {
		return nil, err
	}
	it.width = width
	it.uval = v
	return it, nil
}

// NewNegInt constructs a NegativeInt item of the given width. magnitude is
// the raw value m; the logical value is -1-m.
func NewNegInt(width Width, magnitude uint64) (*Item, error) {
	it, err := newItem(NegativeInt)
	if err != nil {
		return nil, err
	}
	it.width = width
	it.uval = magnitude
	return it, nil
}

// FromOwnedBytes constructs a definite ByteString or TextString item that
// takes ownership of b (the caller must not mutate b afterward). This is
// the single supported way to attach a backing buffer to a definite
// string: allocation and buffer installation happen together, here,
// rather than through a separate allocate-then-set-handle step.
func FromOwnedBytes(major MajorType, b []byte) (*Item, error) {
	if major != ByteString && major != TextString {
		return nil, ErrInvalidMajor
	}
	it, err := newItem(major)
	if err != nil {
		return nil, err
	}
	it.definite = true
	it.bytesVal = b
	if major == TextString {
		// b is not validated as UTF-8; RuneCount still yields a defined
		// codepoint count by counting each byte of an invalid sequence as
		// one rune, same as utf8.RuneCountInString.
		it.codepoints = int64(utf8.RuneCount(b))
	} else {
		it.codepoints = -1
	}
	return it, nil
}

// NewByteStringIndefinite constructs an empty, open ByteString item ready
// to accept chunks via ByteStringAddChunk.
func NewByteStringIndefinite() (*Item, error) {
	it, err := newItem(ByteString)
	if err != nil {
		return nil, err
	}
	it.codepoints = -1
	return it, nil
}

// NewTextStringIndefinite constructs an empty, open TextString item ready
// to accept chunks via StringAddChunk.
func NewTextStringIndefinite() (*Item, error) {
	it, err := newItem(TextString)
	if err != nil {
		return nil, err
	}
	it.codepoints = 0
	return it, nil
}

// NewArrayDefinite constructs an empty Array item with a declared size.
// sizeHint is recorded as the declared size, and ArrayPush rejects any
// push beyond it with ErrAlreadyComplete; the initial backing slice is
// sized from it too, capped at maxPrealloc.
func NewArrayDefinite(sizeHint uint64) (*Item, error) {
	it, err := newItem(Array)
	if err != nil {
		return nil, err
	}
	it.definite = true
	it.declSize = int64(sizeHint)
	it.chunks = make([]*Item, 0, preallocCap(sizeHint))
	return it, nil
}

// NewArrayIndefinite constructs an empty, open Array item.
func NewArrayIndefinite() (*Item, error) {
	it, err := newItem(Array)
	if err != nil {
		return nil, err
	}
	it.declSize = -1
	return it, nil
}

// NewMapDefinite constructs an empty Map item with a declared pair count.
func NewMapDefinite(pairCountHint uint64) (*Item, error) {
	it, err := newItem(Map)
	if err != nil {
		return nil, err
	}
	it.definite = true
	it.declSize = int64(pairCountHint)
	it.pairs = make([]Pair, 0, preallocCap(pairCountHint))
	return it, nil
}

// NewMapIndefinite constructs an empty, open Map item.
func NewMapIndefinite() (*Item, error) {
	it, err := newItem(Map)
	if err != nil {
		return nil, err
	}
	it.declSize = -1
	return it, nil
}

// NewTag constructs a Tag item with the given tag value, awaiting a child
// via TagSetChild.
func NewTag(value uint64) (*Item, error) {
	it, err := newItem(Tag)
	if err != nil {
		return nil, err
	}
	it.tagValue = value
	return it, nil
}

// NewFloat16 constructs a FloatOrSimple item of kind Half. The half-float
// payload is expected to already be expanded to float32 by the decoder's
// byte loader; this constructor stores it verbatim.
func NewFloat16(v float32) (*Item, error) { return newFloat(Half, v, 0) }

// NewFloat32 constructs a FloatOrSimple item of kind Single.
func NewFloat32(v float32) (*Item, error) { return newFloat(Single, v, 0) }

// NewFloat64 constructs a FloatOrSimple item of kind Double.
func NewFloat64(v float64) (*Item, error) { return newFloat(Double, 0, v) }

func newFloat(kind FloatKind, f32 float32, f64 float64) (*Item, error) {
	it, err := newItem(FloatOrSimple)
	if err != nil {
		return nil, err
	}
	it.kind = kind
	it.f32 = f32
	it.f64 = f64
	return it, nil
}

// NewSimple constructs an opaque FloatOrSimple/Ctrl0 item carrying the
// given simple-value code.
func NewSimple(code uint8) (*Item, error) {
	it, err := newItem(FloatOrSimple)
	if err != nil {
		return nil, err
	}
	it.kind = Ctrl0
	it.simpleCode = code
	return it, nil
}

// NewBool constructs the logical boolean simple value.
func NewBool(v bool) (*Item, error) {
	if v {
		return NewSimple(SimpleTrue)
	}
	return NewSimple(SimpleFalse)
}

// NewNull constructs the logical null simple value.
func NewNull() (*Item, error) { return NewSimple(SimpleNull) }

// NewUndefined constructs the logical undefined simple value.
func NewUndefined() (*Item, error) { return NewSimple(SimpleUndefined) }

func preallocCap(hint uint64) uint64 {
	if hint > maxPrealloc {
		return maxPrealloc
	}
	return hint
}
