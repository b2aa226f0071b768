package codectk

import "testing"

func TestGetDispatchesKnownCodecs(t *testing.T) {
	cases := []struct {
		name   string
		params interface{}
	}{
		{"hamming", HammingParams{M: 3}},
		{"bch", BCHParams{M: 4, T: 2}},
		{"goppa", goppaTestParams()},
		{"huffman", nil},
	}
	for _, c := range cases {
		codec, err := Get(c.name, c.params)
		if err != nil {
			t.Fatalf("Get(%q): %v", c.name, err)
		}
		if codec.Name() != c.name {
			t.Fatalf("Name() = %q, want %q", codec.Name(), c.name)
		}
	}
}

func TestGetRejectsUnknownCodec(t *testing.T) {
	if _, err := Get("rot13", nil); err != ErrUnknownCodec {
		t.Fatalf("got %v, want ErrUnknownCodec", err)
	}
}

func TestCodecFacadeHammingRoundTrip(t *testing.T) {
	codec, err := Get("hamming", HammingParams{M: 3})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	in := []byte{0x09}
	encoded := make([]byte, 2)
	outBits, err := codec.Encode(in, 4, encoded)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded := make([]byte, 1)
	if _, _, err := codec.Decode(encoded, outBits, decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded[0]&0x0F != 0x09 {
		t.Fatalf("decoded = %#x, want low nibble 0x9", decoded[0])
	}
}
