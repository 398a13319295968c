package keys

import (
	"github.com/dnevera/ed25519keys/base58"
)

// Container sizes, in bytes.
const (
	SeedSize       = 32
	PublicKeySize  = 32
	PrivateKeySize = 64
	SignatureSize  = 64
)

// Seed is the 32-byte entropy a key pair is derived from.
type Seed [SeedSize]byte

// Public is a 32-byte Ed25519 public key.
type Public [PublicKeySize]byte

// Private is a 64-byte Ed25519 private key, laid out as seed followed by
// public key.
type Private [PrivateKeySize]byte

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// zeroize overwrites b with zeros. Go's collector gives no timing
// guarantees, so secrets are wiped explicitly the moment an owner is
// done with them.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Validate reports whether s is syntactically Base58. It does not verify
// the checksum or the decoded length; callers needing full validation
// decode into a container and check the error.
func Validate(s string) bool {
	return base58.Validate(s)
}

// Clean zero-fills the seed. Idempotent.
func (s *Seed) Clean() { zeroize(s[:]) }

// Encode returns the Base58Check form of the seed.
func (s *Seed) Encode() string { return base58.CheckEncode(s[:]) }

// Decode replaces the seed with the decoded payload of v. On failure the
// seed is left unchanged and the error is a *base58.CodedError.
func (s *Seed) Decode(v string) error { return base58.CheckDecodeInto(s[:], v) }

// Bytes returns the backing array as a slice. The slice aliases the
// container: mutations are visible and Clean wipes it.
func (s *Seed) Bytes() []byte { return s[:] }

func (p *Public) Clean() { zeroize(p[:]) }

func (p *Public) Encode() string { return base58.CheckEncode(p[:]) }

func (p *Public) Decode(v string) error { return base58.CheckDecodeInto(p[:], v) }

func (p *Public) Bytes() []byte { return p[:] }

func (p *Private) Clean() { zeroize(p[:]) }

func (p *Private) Encode() string { return base58.CheckEncode(p[:]) }

func (p *Private) Decode(v string) error { return base58.CheckDecodeInto(p[:], v) }

func (p *Private) Bytes() []byte { return p[:] }

func (s *Signature) Clean() { zeroize(s[:]) }

func (s *Signature) Encode() string { return base58.CheckEncode(s[:]) }

func (s *Signature) Decode(v string) error { return base58.CheckDecodeInto(s[:], v) }

func (s *Signature) Bytes() []byte { return s[:] }
