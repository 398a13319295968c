package keys

import (
	"github.com/cloudflare/circl/sign/ed25519"
)

// Verify reports whether sig is a valid Ed25519 signature of message
// under this public key. A nil signature never verifies.
func (p *Public) Verify(message []byte, sig *Signature) bool {
	if sig == nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p[:]), message, sig[:])
}
