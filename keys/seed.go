package keys

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// NewSeed fills a fresh seed from the operating system's secure random
// source. An error here means the platform RNG itself failed, which is
// exceptional rather than expected.
func NewSeed() (*Seed, error) {
	s := new(Seed)
	if _, err := io.ReadFull(rand.Reader, s[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return s, nil
}

// NewSeedFromPhrase derives a seed from a secret phrase as the one-way
// sha3-256 of the phrase bytes. The same phrase always yields the same
// seed, which is what makes phrase-derived pairs reproducible.
func NewSeedFromPhrase(phrase string) *Seed {
	sum := sha3.Sum256([]byte(phrase))
	s := Seed(sum)
	return &s
}
