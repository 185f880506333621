package keys

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a short display identifier for a public key:
// base58 of the sha3-256 digest of the raw key bytes. It is purely for
// human-facing output (key listings, prompts) and is never parsed back.
func Fingerprint(pub ed25519.PublicKey) string {
	sum := sha3.Sum256(pub)
	return base58.Encode(sum[:])
}
