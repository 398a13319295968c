package base58

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestChecksumReferenceVectors(t *testing.T) {
	if got := Checksum(nil); got != 0x00000000 {
		t.Fatalf("Checksum(nil) = %08x, want 00000000", got)
	}
	if got := Checksum([]byte("123456789")); got != 0xCBF43926 {
		t.Fatalf("Checksum(%q) = %08x, want cbf43926", "123456789", got)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, length := range []int{1, 4, 32, 33, 64} {
		for i := 0; i < 16; i++ {
			payload := make([]byte, length)
			rng.Read(payload)

			encoded := CheckEncode(payload)
			decoded, err := CheckDecode(encoded)
			if err != nil {
				t.Fatalf("CheckDecode(CheckEncode(%x)): %v", payload, err)
			}
			if !bytes.Equal(decoded, payload) {
				t.Fatalf("round trip of %x gave %x via %q", payload, decoded, encoded)
			}
		}
	}
}

// Substituting any single character of an encoded string must break the
// checksum, barring a CRC collision.
func TestCheckDecodeDetectsCorruption(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	encoded := CheckEncode(payload)

	for i := 0; i < len(encoded); i++ {
		replacement := byte('2')
		if encoded[i] == replacement {
			replacement = '3'
		}
		corrupted := encoded[:i] + string(replacement) + encoded[i+1:]

		if _, err := CheckDecode(corrupted); err == nil {
			t.Fatalf("CheckDecode accepted corruption at index %d: %q", i, corrupted)
		} else if !IsCode(err, ErrBadFormat) {
			t.Fatalf("corruption at index %d: error = %v, want BADFORMAT", i, err)
		}
	}
}

// Flipping any single bit of the framed buffer (payload or checksum
// bytes) before encoding must make the decode fail.
func TestCheckDecodeDetectsBitFlips(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i)
	}
	framed, err := Decode(CheckEncode(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for i := 0; i < len(framed); i++ {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), framed...)
			flipped[i] ^= 1 << bit

			if _, err := CheckDecode(Encode(flipped)); !IsCode(err, ErrBadFormat) {
				t.Fatalf("bit %d of byte %d flipped: error = %v, want BADFORMAT", bit, i, err)
			}
		}
	}
}

func TestCheckDecodeTooShort(t *testing.T) {
	// "" decodes to zero bytes; a 3-byte buffer has no room for a
	// checksum either.
	for _, s := range []string{"", Encode([]byte{1, 2, 3})} {
		_, err := CheckDecode(s)
		if err == nil {
			t.Fatalf("CheckDecode(%q) succeeded", s)
		}
		if !IsCode(err, ErrEmpty) {
			t.Fatalf("CheckDecode(%q) error = %v, want EMPTY", s, err)
		}
	}
}

func TestCheckDecodeBadCharacter(t *testing.T) {
	_, err := CheckDecode("not-base58!")
	if !IsCode(err, ErrBadFormat) {
		t.Fatalf("error = %v, want BADFORMAT", err)
	}
}

func TestCheckDecodeInto(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(0xFF - i)
	}
	encoded := CheckEncode(payload)

	dst := make([]byte, 32)
	if err := CheckDecodeInto(dst, encoded); err != nil {
		t.Fatalf("CheckDecodeInto: %v", err)
	}
	if !bytes.Equal(dst, payload) {
		t.Fatalf("CheckDecodeInto wrote %x, want %x", dst, payload)
	}
}

func TestCheckDecodeIntoWrongSize(t *testing.T) {
	payload := make([]byte, 32)
	encoded := CheckEncode(payload)

	dst := make([]byte, 64)
	sentinel := byte(0xEE)
	for i := range dst {
		dst[i] = sentinel
	}

	err := CheckDecodeInto(dst, encoded)
	if err == nil {
		t.Fatalf("CheckDecodeInto accepted a 32-byte payload into a 64-byte buffer")
	}
	if !IsCode(err, ErrUnexpectedSize) {
		t.Fatalf("error = %v, want UNEXPECTED_SIZE", err)
	}
	if !strings.Contains(err.Error(), "32") || !strings.Contains(err.Error(), "64") {
		t.Fatalf("error %q does not report observed and expected sizes", err)
	}
	for i, b := range dst {
		if b != sentinel {
			t.Fatalf("failed decode touched dst at index %d", i)
		}
	}
}

func TestCheckDecodeIntoFailureLeavesBufferUntouched(t *testing.T) {
	dst := make([]byte, 32)
	for i := range dst {
		dst[i] = 0x5A
	}
	if err := CheckDecodeInto(dst, "0invalid"); err == nil {
		t.Fatalf("expected failure")
	}
	for i, b := range dst {
		if b != 0x5A {
			t.Fatalf("failed decode touched dst at index %d", i)
		}
	}
}
