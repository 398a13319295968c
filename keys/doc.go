// Package keys provides fixed-size secure containers for Ed25519 key
// material and the Pair factories that derive it.
//
// Containers (Seed, Public, Private, Signature) are named array types, so
// their byte length is a compile-time fact and their contents live inline
// where Clean can reliably zero them. Every container binds to the
// Base58Check codec for its textual form.
//
// The cryptography itself is delegated: key derivation, signing and
// verification go through cloudflare/circl's Ed25519, phrase hashing
// through x/crypto's sha3, and randomness through crypto/rand. This
// package only moves bytes between those primitives and the containers.
package keys
