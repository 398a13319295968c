// Package base58 implements the Base58 and Base58Check textual encodings
// used to carry fixed-size binary identifiers as human-typable strings.
package base58

import (
	"fmt"
	"math/big"
)

// Alphabet is the 58-symbol Base58 alphabet. It omits 0, O, I and l,
// which are easy to confuse when a string is read back by a human.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = int8(i)
	}
}

var bigRadix = big.NewInt(58)

// Encode re-expresses data, read as a big-endian base-256 integer, in
// base 58. Each leading zero byte maps to exactly one leading '1', so a
// decoder can restore the original byte length.
func Encode(data []byte) string {
	x := new(big.Int).SetBytes(data)

	// Base 58 expands by log(256)/log(58), just under 1.37 per byte.
	out := make([]byte, 0, len(data)*137/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}
	for _, b := range data {
		if b != 0 {
			break
		}
		out = append(out, Alphabet[0])
	}
	// Digits were produced least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode is the inverse of Encode. It fails with a BADFORMAT CodedError
// on any character outside the alphabet and never returns partial output.
func Decode(s string) ([]byte, error) {
	x := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		d := decodeMap[s[i]]
		if d < 0 {
			return nil, NewError(ErrBadFormat,
				fmt.Sprintf("invalid base58 character %q at index %d", s[i], i))
		}
		x.Mul(x, bigRadix)
		x.Add(x, digit.SetInt64(int64(d)))
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == Alphabet[0] {
		zeros++
	}
	raw := x.Bytes()
	out := make([]byte, zeros+len(raw))
	copy(out[zeros:], raw)
	return out, nil
}

// Validate reports whether every character of s belongs to the Base58
// alphabet. It is purely syntactic: no checksum or length is examined.
func Validate(s string) bool {
	for i := 0; i < len(s); i++ {
		if decodeMap[s[i]] < 0 {
			return false
		}
	}
	return true
}
