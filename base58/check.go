package base58

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const checksumSize = 4

// Checksum returns the CRC32 of data in the reflected-0xEDB88320 variant
// (initial value 0xFFFFFFFF, final complement). This is the zlib/ISO-3309
// polynomial, the one other Base58Check implementations of this format
// compute, so the encoded strings interoperate.
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CheckEncode appends the 4-byte little-endian CRC32 of payload and
// Base58-encodes the framed buffer.
func CheckEncode(payload []byte) string {
	framed := make([]byte, len(payload)+checksumSize)
	copy(framed, payload)
	binary.LittleEndian.PutUint32(framed[len(payload):], Checksum(payload))
	return Encode(framed)
}

// CheckDecode decodes a Base58Check string, verifies the trailing
// checksum and returns the payload with the checksum stripped.
func CheckDecode(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < checksumSize {
		return nil, NewError(ErrEmpty,
			fmt.Sprintf("decoded buffer is %d bytes, too short to carry a checksum", len(raw)))
	}
	payload := raw[:len(raw)-checksumSize]
	want := binary.LittleEndian.Uint32(raw[len(payload):])
	if got := Checksum(payload); got != want {
		return nil, NewError(ErrBadFormat,
			fmt.Sprintf("checksum mismatch: computed %08x, embedded %08x", got, want))
	}
	return payload, nil
}

// CheckDecodeInto decodes s and requires the checksum-verified payload to
// be exactly len(dst) bytes. dst is overwritten only when every check has
// passed; on any failure it is left untouched.
func CheckDecodeInto(dst []byte, s string) error {
	payload, err := CheckDecode(s)
	if err != nil {
		return err
	}
	if len(payload) != len(dst) {
		return NewError(ErrUnexpectedSize,
			fmt.Sprintf("decoded payload is %d bytes, expected %d", len(payload), len(dst)))
	}
	copy(dst, payload)
	return nil
}
