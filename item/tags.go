package item

// Well-known CBOR tag numbers (IANA "CBOR Tags" registry), provided as
// named constants purely for callers inspecting TagValue(); the item
// model itself does not special-case any tag payload.
const (
	TagDateTimeString   uint64 = 0
	TagEpochDateTime    uint64 = 1
	TagPosBignum        uint64 = 2
	TagNegBignum        uint64 = 3
	TagDecimalFrac      uint64 = 4
	TagBigfloat         uint64 = 5
	TagBase64URL        uint64 = 21
	TagBase64           uint64 = 22
	TagBase16           uint64 = 23
	TagCBOR             uint64 = 24
	TagURI              uint64 = 32
	TagSelfDescribeCBOR uint64 = 55799
)
