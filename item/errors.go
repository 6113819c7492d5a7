package item

import "errors"

// ErrInvalidMajor is returned when a constructor or mutator is given a
// major type it does not accept (e.g. FromOwnedBytes called with Array).
var ErrInvalidMajor = errors.New("item: operation not valid for this major type")

// ErrAlreadyComplete is returned by a mutator when the target definite
// container already has its declared number of entries, or a tag already
// has its child.
var ErrAlreadyComplete = errors.New("item: item is already complete")

// ErrWrongChunkType is returned when ByteStringAddChunk or
// StringAddChunk is given a chunk of the wrong major type, or a chunk
// that is itself indefinite-length (nesting indefinite strings is
// forbidden).
var ErrWrongChunkType = errors.New("item: chunk must be a definite item of the matching string type")
