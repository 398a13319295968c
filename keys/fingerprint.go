package keys

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Fingerprint returns a CIDv1 string ("raw" multicodec, sha2-256
// multihash) over the public key bytes: a stable identifier that is safe
// to log or display, unlike the key's Base58Check form which round-trips
// back to the key itself.
func (p *Public) Fingerprint() string {
	sum, err := multihash.Sum(p[:], multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for unknown codes or bad lengths;
		// with SHA2_256 and default length this is unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}
