package cbor

import "strconv"

// Error is the interface satisfied by all errors that originate from this
// package.
type Error interface {
	error

	// Resumable returns whether the error means that the byte stream is
	// malformed and unrecoverable (false), or whether the caller could
	// plausibly retry with more context (true).
	Resumable() bool
}

// ErrShortBytes is returned when the slice being decoded is too short to
// contain the header (or immediate payload) of the next data item.
var ErrShortBytes error = errShort{}

// ErrRecursion is returned when SkipItem's recursion limit is reached.
// This should only realistically be seen on adversarial data trying to
// exhaust the stack.
var ErrRecursion error = errRecursion{}

type errShort struct{}

func (e errShort) Error() string   { return "cbor: too few bytes left to read object" }
func (e errShort) Resumable() bool { return false }

type errRecursion struct{}

func (e errRecursion) Error() string   { return "cbor: recursion limit reached" }
func (e errRecursion) Resumable() bool { return false }

// InvalidAdditionalInfoError is returned when an initial byte's additional
// information field is reserved (28, 29, 30) or otherwise not a legal
// encoding for its major type (e.g. AI=31 on major types 0, 1, or 6).
type InvalidAdditionalInfoError struct {
	Major uint8
	Info  uint8
}

func (e InvalidAdditionalInfoError) Error() string {
	return "cbor: major type " + strconv.Itoa(int(e.Major)) + " does not support additional info " + strconv.Itoa(int(e.Info))
}

// Resumable returns false for InvalidAdditionalInfoError: this is a
// structural defect in the encoding, not a transient condition.
func (e InvalidAdditionalInfoError) Resumable() bool { return false }

// InvalidSimpleValueError is returned when a one-byte simple value
// (major type 7, AI=24) encodes a value below 32, which RFC 8949 reserves
// for the direct (AI<24) and named (AI 20..27,31) encodings.
type InvalidSimpleValueError struct {
	Value uint8
}

func (e InvalidSimpleValueError) Error() string {
	return "cbor: simple value " + strconv.Itoa(int(e.Value)) + " must use direct encoding, not the one-byte form"
}

// Resumable returns false for InvalidSimpleValueError.
func (e InvalidSimpleValueError) Resumable() bool { return false }
