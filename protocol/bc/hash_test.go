package bc

import (
	"bytes"
	"testing"
)

func TestHashByte32RoundTrip(t *testing.T) {
	var b32 [32]byte
	for i := range b32 {
		b32[i] = byte(i)
	}
	h := NewHash(b32)
	if h.Byte32() != b32 {
		t.Error("Byte32 does not round trip NewHash")
	}
	if !bytes.Equal(h.Bytes(), b32[:]) {
		t.Error("Bytes disagrees with Byte32")
	}
}

func TestHashMarshalText(t *testing.T) {
	var b32 [32]byte
	b32[0] = 0xab
	h := NewHash(b32)

	text, err := h.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Hash
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != h {
		t.Error("text marshaling does not round trip")
	}

	if err := back.UnmarshalText([]byte("ab")); err == nil {
		t.Error("short input should fail")
	}
}

func TestIsZero(t *testing.T) {
	var h *Hash
	if !h.IsZero() {
		t.Error("nil hash should be zero")
	}
	zero := Hash{}
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
	nonzero := NewHash([32]byte{1})
	if nonzero.IsZero() {
		t.Error("nonzero hash misreported as zero")
	}
}
