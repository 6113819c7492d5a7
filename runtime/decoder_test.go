package cbor

import (
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// recordingCallbacks captures the single event DecodeOne fired, for
// assertions in table-driven tests.
type recordingCallbacks struct {
	event string
	u     uint64
	f     float64
	b     bool
	bs    []byte
}

func (r *recordingCallbacks) Uint8(v uint8)     { r.event, r.u = "uint8", uint64(v) }
func (r *recordingCallbacks) Uint16(v uint16)   { r.event, r.u = "uint16", uint64(v) }
func (r *recordingCallbacks) Uint32(v uint32)   { r.event, r.u = "uint32", uint64(v) }
func (r *recordingCallbacks) Uint64(v uint64)   { r.event, r.u = "uint64", v }
func (r *recordingCallbacks) NegInt8(v uint8)   { r.event, r.u = "negint8", uint64(v) }
func (r *recordingCallbacks) NegInt16(v uint16) { r.event, r.u = "negint16", uint64(v) }
func (r *recordingCallbacks) NegInt32(v uint32) { r.event, r.u = "negint32", uint64(v) }
func (r *recordingCallbacks) NegInt64(v uint64) { r.event, r.u = "negint64", v }
func (r *recordingCallbacks) ByteString(b []byte) {
	r.event, r.bs = "byte_string", append([]byte(nil), b...)
}
func (r *recordingCallbacks) ByteStringStart() { r.event = "byte_string_start" }
func (r *recordingCallbacks) String(b []byte) {
	r.event, r.bs = "string", append([]byte(nil), b...)
}
func (r *recordingCallbacks) StringStart()        { r.event = "string_start" }
func (r *recordingCallbacks) ArrayStart(n uint64) { r.event, r.u = "array_start", n }
func (r *recordingCallbacks) IndefArrayStart()    { r.event = "indef_array_start" }
func (r *recordingCallbacks) MapStart(n uint64)   { r.event, r.u = "map_start", n }
func (r *recordingCallbacks) IndefMapStart()      { r.event = "indef_map_start" }
func (r *recordingCallbacks) Tag(v uint64)        { r.event, r.u = "tag", v }
func (r *recordingCallbacks) Boolean(v bool)      { r.event, r.b = "boolean", v }
func (r *recordingCallbacks) Null()               { r.event = "null" }
func (r *recordingCallbacks) Undefined()          { r.event = "undefined" }
func (r *recordingCallbacks) Simple(v uint8)      { r.event, r.u = "simple", uint64(v) }
func (r *recordingCallbacks) Float16(v float32)   { r.event, r.f = "float16", float64(v) }
func (r *recordingCallbacks) Float32(v float32)   { r.event, r.f = "float32", float64(v) }
func (r *recordingCallbacks) Float64(v float64)   { r.event, r.f = "float64", v }
func (r *recordingCallbacks) IndefBreak()         { r.event = "indef_break" }

func TestDecodeOne_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name      string
		hex       string
		wantEvent string
		wantU     uint64
		wantN     int
	}{
		{"uint8-zero", "00", "uint8", 0, 1},
		{"uint32-million", "1a000f4240", "uint32", 1000000, 5},
		{"negint8-minus-one", "20", "negint8", 0, 1},
		{"array-header-size3", "83", "array_start", 3, 1},
		{"indef-array-header", "9f", "indef_array_start", 0, 1},
		{"indef-map-header", "bf", "indef_map_start", 0, 1},
		{"tag0", "c0", "tag", 0, 1},
		{"break-alone", "ff", "indef_break", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var rc recordingCallbacks
			status, n, err := DecodeOne(mustHex(t, c.hex), &rc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status != StatusFinished {
				t.Fatalf("status = %v, want Finished", status)
			}
			if n != c.wantN {
				t.Fatalf("bytes read = %d, want %d", n, c.wantN)
			}
			if rc.event != c.wantEvent {
				t.Fatalf("event = %q, want %q", rc.event, c.wantEvent)
			}
			if rc.u != c.wantU {
				t.Fatalf("value = %d, want %d", rc.u, c.wantU)
			}
		})
	}
}

func TestDecodeOne_ByteStringDefinite(t *testing.T) {
	var rc recordingCallbacks
	status, n, err := DecodeOne(mustHex(t, "43010203"), &rc)
	if err != nil || status != StatusFinished {
		t.Fatalf("status=%v n=%d err=%v", status, n, err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	if rc.event != "byte_string" || hex.EncodeToString(rc.bs) != "010203" {
		t.Fatalf("got event=%s bytes=%x", rc.event, rc.bs)
	}
}

func TestDecodeOne_NeedMoreData(t *testing.T) {
	cases := []string{
		"18",     // uint8 argument truncated
		"1a000f", // uint32 argument truncated
		"430102", // byte string body short by one (declares 3, has 2)
		"b9",     // map header, uint16 size argument truncated
	}
	for _, h := range cases {
		b := mustHex(t, h)
		var rc recordingCallbacks
		status, n, err := DecodeOne(b, &rc)
		if status != StatusNeedMoreData {
			t.Fatalf("hex=%s: status = %v, want NeedMoreData", h, status)
		}
		if n != 0 || err != nil || rc.event != "" {
			t.Fatalf("hex=%s: NeedMoreData must not mutate state: n=%d err=%v event=%q", h, n, err, rc.event)
		}
	}
}

func TestDecodeOne_ReservedAdditionalInfo(t *testing.T) {
	for _, lead := range []byte{0x1c, 0x1d, 0x1e} { // major 0, AI 28/29/30
		var rc recordingCallbacks
		status, n, err := DecodeOne([]byte{lead}, &rc)
		if status != StatusMalformed {
			t.Fatalf("lead=%#x: status = %v, want Malformed", lead, status)
		}
		if n != 0 || rc.event != "" {
			t.Fatalf("lead=%#x: Malformed must not invoke a callback", lead)
		}
		if _, ok := err.(InvalidAdditionalInfoError); !ok {
			t.Fatalf("lead=%#x: err = %v, want InvalidAdditionalInfoError", lead, err)
		}
	}
}

func TestDecodeOne_IndefiniteForbiddenOnIntAndTag(t *testing.T) {
	for _, lead := range []byte{0x1f, 0x3f, 0xdf} { // uint/negint/tag with AI=31
		var rc recordingCallbacks
		status, _, _ := DecodeOne([]byte{lead}, &rc)
		if status != StatusMalformed {
			t.Fatalf("lead=%#x: status = %v, want Malformed", lead, status)
		}
	}
}

func TestDecodeOne_SimpleValueOneByteForm(t *testing.T) {
	// 0xf8 0x1f encodes simple value 31, which is below the legal
	// one-byte-form minimum of 32.
	var rc recordingCallbacks
	status, _, err := DecodeOne(mustHex(t, "f81f"), &rc)
	if status != StatusMalformed {
		t.Fatalf("status = %v, want Malformed", status)
	}
	if _, ok := err.(InvalidSimpleValueError); !ok {
		t.Fatalf("err = %v, want InvalidSimpleValueError", err)
	}

	// 0xf8 0x20 (32) is legal.
	status, n, err := DecodeOne(mustHex(t, "f820"), &rc)
	if status != StatusFinished || err != nil {
		t.Fatalf("status=%v n=%d err=%v", status, n, err)
	}
	if rc.event != "simple" || rc.u != 32 {
		t.Fatalf("event=%s u=%d", rc.event, rc.u)
	}
}

func TestDecodeOne_Floats(t *testing.T) {
	// float16 1.0 = 0x3c00, float32 1.0, float64 1.0
	cases := []struct {
		hex   string
		event string
		want  float64
	}{
		{"f93c00", "float16", 1.0},
		{"fa3f800000", "float32", 1.0},
		{"fb3ff0000000000000", "float64", 1.0},
	}
	for _, c := range cases {
		var rc recordingCallbacks
		status, _, err := DecodeOne(mustHex(t, c.hex), &rc)
		if status != StatusFinished || err != nil {
			t.Fatalf("hex=%s status=%v err=%v", c.hex, status, err)
		}
		if rc.event != c.event || rc.f != c.want {
			t.Fatalf("hex=%s event=%s f=%v, want %s/%v", c.hex, rc.event, rc.f, c.event, c.want)
		}
	}
}

func TestDecodeOne_BooleansNullUndefined(t *testing.T) {
	cases := []struct {
		hex   string
		event string
	}{
		{"f4", "boolean"},
		{"f5", "boolean"},
		{"f6", "null"},
		{"f7", "undefined"},
	}
	for _, c := range cases {
		var rc recordingCallbacks
		status, n, err := DecodeOne(mustHex(t, c.hex), &rc)
		if status != StatusFinished || err != nil || n != 1 {
			t.Fatalf("hex=%s status=%v n=%d err=%v", c.hex, status, n, err)
		}
		if rc.event != c.event {
			t.Fatalf("hex=%s event=%s, want %s", c.hex, rc.event, c.event)
		}
	}
}
