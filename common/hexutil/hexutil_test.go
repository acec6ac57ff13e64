package hexutil

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "", wantErr: ErrEmptyString},
		{input: "0", wantErr: ErrMissingPrefix},
		{input: "0x", want: []byte{}},
		{input: "0x0", wantErr: ErrOddLength},
		{input: "0xzz", wantErr: ErrSyntax},
		{input: "0x12", want: []byte{0x12}},
		{input: "0X12", want: []byte{0x12}},
		{input: "0xdeadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.input)
		if err != tt.wantErr {
			t.Errorf("Decode(%q) error: have %v, want %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && !bytes.Equal(got, tt.want) {
			t.Errorf("Decode(%q): have %x, want %x", tt.input, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	if got := Encode([]byte{0xde, 0xad}); got != "0xdead" {
		t.Errorf("Encode: have %s, want 0xdead", got)
	}
	if got := Encode(nil); got != "0x" {
		t.Errorf("Encode(nil): have %s, want 0x", got)
	}
}
