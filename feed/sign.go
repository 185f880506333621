package feed

import (
	"crypto/ed25519"

	"dsigo.dev/dsigo/security"
)

// Signer holds the signing context for a feed: the author's private key
// and the compact identifier of the matching public key, published so
// consumers can resolve it from the author's profile.
type Signer struct {
	Private ed25519.PrivateKey
	KeyID   string
}

// SignItem builds the canonical item bytes, signs them, and attaches the
// signature extension to the item.
func (s *Signer) SignItem(it *Item) error {
	canonical := security.CanonicalFeedItem(it.PubDate, it.Title, it.Description)
	sigHex, err := security.SignHex(s.Private, canonical)
	if err != nil {
		return err
	}
	it.Signature = &ItemSignature{Value: sigHex, KeyID: s.KeyID}
	return nil
}

// SignItems signs every item. A nil signer is the explicit unsigned mode:
// items pass through without a signature extension.
func SignItems(s *Signer, items []Item) error {
	if s == nil {
		return nil
	}
	for i := range items {
		if err := s.SignItem(&items[i]); err != nil {
			return err
		}
	}
	return nil
}

// Verdict is the outcome of verifying one item.
type Verdict int

const (
	// VerdictUnsigned: the item carries no signature; verification is
	// inapplicable, which is distinct from having failed.
	VerdictUnsigned Verdict = iota
	// VerdictInvalid: a signature is present and was proven not to match.
	VerdictInvalid
	// VerdictVerified: the signature verifies over the canonical item
	// bytes under the given key.
	VerdictVerified
)

func (v Verdict) String() string {
	switch v {
	case VerdictInvalid:
		return "invalid"
	case VerdictVerified:
		return "verified"
	default:
		return "unsigned"
	}
}

// VerifyItem rebuilds the canonical bytes for the item and checks its
// attached signature under pub. A missing signature returns
// VerdictUnsigned. Structurally malformed signatures return an error with
// VerdictInvalid: a signature is present, it just could not prove anything.
func VerifyItem(pub ed25519.PublicKey, it *Item) (Verdict, error) {
	if it.Signature == nil || it.Signature.Value == "" {
		return VerdictUnsigned, nil
	}
	canonical := security.CanonicalFeedItem(it.PubDate, it.Title, it.Description)
	ok, err := security.VerifyHex(pub, canonical, it.Signature.Value)
	if err != nil {
		return VerdictInvalid, err
	}
	if !ok {
		return VerdictInvalid, nil
	}
	return VerdictVerified, nil
}
