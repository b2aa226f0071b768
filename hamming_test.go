package codectk

import "testing"

func TestHammingRoundTripNoError(t *testing.T) {
	p := HammingParams{M: 3} // Hamming(7,4)
	in := []byte{0x0D}       // low 4 bits: 1101
	out := make([]byte, 2)

	outBits, err := HammingEncode(p, in, 4, out)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if outBits != 8 {
		t.Fatalf("outBits = %d, want 8 (one 7-bit codeword byte-aligned)", outBits)
	}

	decoded := make([]byte, 1)
	_, corrected, err := HammingDecode(p, out, outBits, decoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if corrected != 0 {
		t.Fatalf("corrected = %d, want 0", corrected)
	}
	if decoded[0]&0x0F != 0x0D {
		t.Fatalf("decoded = %#x, want low nibble 0xD", decoded[0])
	}
}

func TestHammingCorrectsSingleBitError(t *testing.T) {
	p := HammingParams{M: 3}
	in := []byte{0x0A}
	encoded := make([]byte, 2)
	outBits, err := HammingEncode(p, in, 4, encoded)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	encoded[0] ^= 0x04 // flip one bit within the first codeword

	decoded := make([]byte, 1)
	_, corrected, err := HammingDecode(p, encoded, outBits, decoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if corrected != 1 {
		t.Fatalf("corrected = %d, want 1", corrected)
	}
	if decoded[0]&0x0F != 0x0A {
		t.Fatalf("decoded = %#x, want low nibble 0xA", decoded[0])
	}
}

func TestHammingRejectsBadM(t *testing.T) {
	_, err := HammingEncode(HammingParams{M: 2}, []byte{0}, 1, make([]byte, 1))
	if err == nil {
		t.Fatal("expected validation error for m=2")
	}
}

func TestHammingMultipleBlocks(t *testing.T) {
	p := HammingParams{M: 3} // k=4 bits per block
	in := []byte{0xAB}       // two 4-bit blocks: 0xB then 0xA
	out := make([]byte, 4)

	outBits, err := HammingEncode(p, in, 8, out)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if outBits != 16 {
		t.Fatalf("outBits = %d, want 16 (two 7-bit codewords, byte-aligned)", outBits)
	}

	decoded := make([]byte, 1)
	_, _, err = HammingDecode(p, out, outBits, decoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded[0] != 0xAB {
		t.Fatalf("decoded = %#x, want 0xAB", decoded[0])
	}
}
