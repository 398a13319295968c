package keys

import (
	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/dnevera/ed25519keys/base58"
)

// probeMessage is signed and verified when loading a private key from its
// encoded form. The checksum proves the bytes arrived intact, not that
// the public half of a 64-byte blob corresponds to its seed half; the
// probe catches that.
var probeMessage = []byte("ed25519keys: pair consistency probe")

// Pair owns a matching public/private key pair. Pairs are built only
// through the factory functions, which guarantee the two halves
// correspond; there is no way to assemble one from independently chosen
// public and private bytes.
type Pair struct {
	public  Public
	private Private
}

// NewRandomPair derives a pair from a fresh random seed. The intermediate
// seed is wiped before returning. Fails only if the secure random source
// does.
func NewRandomPair() (*Pair, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	defer seed.Clean()
	return pairFromSeed(seed), nil
}

// NewPairFromSecret derives a pair from a secret phrase. The same phrase
// always yields the same pair. The error return mirrors the other
// factories; seed hashing and Ed25519 derivation over a correctly sized
// seed cannot fail in practice.
func NewPairFromSecret(phrase string) (*Pair, error) {
	seed := NewSeedFromPhrase(phrase)
	defer seed.Clean()
	return pairFromSeed(seed), nil
}

// NewPairFromPrivateKey rebuilds a pair from a Base58Check-encoded
// private key. The public key is recovered from the trailing 32 bytes of
// the private key, then the pair signs and verifies probeMessage to
// confirm the two halves actually correspond; a blob that decodes cleanly
// but fails the probe is rejected as BADFORMAT. On any failure the
// partially filled containers are wiped and no pair is returned.
func NewPairFromPrivateKey(encoded string) (*Pair, error) {
	p := new(Pair)
	if err := p.private.Decode(encoded); err != nil {
		return nil, err
	}
	copy(p.public[:], p.private[SeedSize:])

	sig := ed25519.Sign(ed25519.PrivateKey(p.private[:]), probeMessage)
	if !ed25519.Verify(ed25519.PublicKey(p.public[:]), probeMessage, sig) {
		p.Clean()
		return nil, base58.NewError(base58.ErrBadFormat,
			"private key does not match its embedded public key")
	}
	return p, nil
}

func pairFromSeed(seed *Seed) *Pair {
	priv := ed25519.NewKeyFromSeed(seed[:])
	p := new(Pair)
	copy(p.private[:], priv)
	copy(p.public[:], priv[SeedSize:])
	zeroize(priv)
	return p
}

// PublicKey returns the pair's public key. The pointer stays owned by the
// pair: Clean zeroes it along with the private key.
func (p *Pair) PublicKey() *Public { return &p.public }

// PrivateKey returns the pair's private key. Same ownership rule as
// PublicKey.
func (p *Pair) PrivateKey() *Private { return &p.private }

// Sign signs message with the pair's private key.
func (p *Pair) Sign(message []byte) *Signature {
	sig := ed25519.Sign(ed25519.PrivateKey(p.private[:]), message)
	out := new(Signature)
	copy(out[:], sig)
	return out
}

// Clean wipes both keys. Idempotent. Callers holding a pair with real
// secrets should defer it:
//
//	pair, err := keys.NewRandomPair()
//	if err != nil {
//		return err
//	}
//	defer pair.Clean()
func (p *Pair) Clean() {
	p.public.Clean()
	p.private.Clean()
}
