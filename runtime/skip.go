package cbor

// breakByte is the encoded form of the major-type-7 break code (0xff).
var breakByte = makeByte(majorTypeSimple, addInfoIndefinite)

// skKind classifies what a single DecodeOne call turned out to be, for the
// purposes of SkipItem's recursive walk.
type skKind int

const (
	skScalar     skKind = iota // a leaf value or a definite string chunk
	skItems                    // array(n) or tag(1): n nested items follow
	skPairs                    // map(n): n key/value pairs follow
	skIndefItems               // indefinite array/byte-string/text-string: items until break
	skIndefPairs               // indefinite map: key/value pairs until break (only at key position)
)

// skipCapture is a Callbacks implementation that records only enough shape
// information to know how many subsequent items SkipItem must recurse into;
// it never allocates an item.
type skipCapture struct {
	kind skKind
	n    uint64
}

func (s *skipCapture) Uint8(uint8)       { s.kind = skScalar }
func (s *skipCapture) Uint16(uint16)     { s.kind = skScalar }
func (s *skipCapture) Uint32(uint32)     { s.kind = skScalar }
func (s *skipCapture) Uint64(uint64)     { s.kind = skScalar }
func (s *skipCapture) NegInt8(uint8)     { s.kind = skScalar }
func (s *skipCapture) NegInt16(uint16)   { s.kind = skScalar }
func (s *skipCapture) NegInt32(uint32)   { s.kind = skScalar }
func (s *skipCapture) NegInt64(uint64)   { s.kind = skScalar }
func (s *skipCapture) ByteString([]byte) { s.kind = skScalar }
func (s *skipCapture) String([]byte)     { s.kind = skScalar }
func (s *skipCapture) Boolean(bool)      { s.kind = skScalar }
func (s *skipCapture) Null()             { s.kind = skScalar }
func (s *skipCapture) Undefined()        { s.kind = skScalar }
func (s *skipCapture) Simple(uint8)      { s.kind = skScalar }
func (s *skipCapture) Float16(float32)   { s.kind = skScalar }
func (s *skipCapture) Float32(float32)   { s.kind = skScalar }
func (s *skipCapture) Float64(float64)   { s.kind = skScalar }
func (s *skipCapture) IndefBreak()       { s.kind = skScalar }

func (s *skipCapture) ByteStringStart() { s.kind = skIndefItems }
func (s *skipCapture) StringStart()     { s.kind = skIndefItems }
func (s *skipCapture) IndefArrayStart() { s.kind = skIndefItems }
func (s *skipCapture) IndefMapStart()   { s.kind = skIndefPairs }

func (s *skipCapture) ArrayStart(n uint64) { s.kind = skItems; s.n = n }
func (s *skipCapture) MapStart(n uint64)   { s.kind = skPairs; s.n = n }
func (s *skipCapture) Tag(uint64)          { s.kind = skItems; s.n = 1 }

// SkipItem advances past exactly one complete, well-formed CBOR data item
// (including all of its nested contents) and returns the remaining bytes.
// It is built entirely on top of DecodeOne: unlike the builder package, it
// never constructs an item, so it is useful for fast-forwarding through
// input a caller does not want materialized. It reports truncated input,
// reserved encodings, and exceeding the recursion limit as errors, but it
// is not a full well-formedness check: a break code where an item is
// expected is skipped as if it were a scalar (so a lone 0xff succeeds),
// and the chunks of an indefinite string are not checked to be definite
// strings of the matching type.
func SkipItem(b []byte) ([]byte, error) {
	return skipOne(b, 0)
}

func skipOne(b []byte, depth int) ([]byte, error) {
	if depth > recursionLimit {
		return b, ErrRecursion
	}

	var sc skipCapture
	status, n, err := DecodeOne(b, &sc)
	switch status {
	case StatusNeedMoreData:
		return b, ErrShortBytes
	case StatusMalformed:
		return b, err
	}
	rest := b[n:]

	switch sc.kind {
	case skScalar:
		return rest, nil

	case skItems:
		for i := uint64(0); i < sc.n; i++ {
			rest, err = skipOne(rest, depth+1)
			if err != nil {
				return b, err
			}
		}
		return rest, nil

	case skPairs:
		for i := uint64(0); i < sc.n; i++ {
			rest, err = skipOne(rest, depth+1) // key
			if err != nil {
				return b, err
			}
			rest, err = skipOne(rest, depth+1) // value
			if err != nil {
				return b, err
			}
		}
		return rest, nil

	case skIndefItems:
		for {
			if len(rest) < 1 {
				return b, ErrShortBytes
			}
			if rest[0] == breakByte {
				return rest[1:], nil
			}
			rest, err = skipOne(rest, depth+1)
			if err != nil {
				return b, err
			}
		}

	case skIndefPairs:
		for {
			if len(rest) < 1 {
				return b, ErrShortBytes
			}
			if rest[0] == breakByte {
				return rest[1:], nil
			}
			rest, err = skipOne(rest, depth+1) // key
			if err != nil {
				return b, err
			}
			rest, err = skipOne(rest, depth+1) // value
			if err != nil {
				return b, err
			}
		}
	}
	return rest, nil
}
