package vcard

import (
	"crypto/ed25519"
	"errors"
	"sort"

	"dsigo.dev/dsigo/security"
)

// KeyStatus is the trust verdict for a key identifier within one profile.
type KeyStatus int

const (
	// KeyUnknown: the identifier appears nowhere in the profile.
	KeyUnknown KeyStatus = iota
	// KeyActive: published in a KEY line and not revoked.
	KeyActive
	// KeyRevoked: named by a REVKEY line. Revocation dominates presence in
	// the KEY list regardless of line order or preference rank.
	KeyRevoked
)

func (s KeyStatus) String() string {
	switch s {
	case KeyActive:
		return "active"
	case KeyRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// KeyStatus reports the trust status of a compact key identifier.
func (p *Profile) KeyStatus(compact string) KeyStatus {
	for _, rev := range p.Revocations {
		if rev.KeyB64 == compact {
			return KeyRevoked
		}
	}
	for _, key := range p.Keys {
		if key.KeyB64 == compact {
			return KeyActive
		}
	}
	return KeyUnknown
}

// ErrNoSigningKey is returned when a profile publishes no usable
// (supported-algorithm, non-revoked, decodable) key.
var ErrNoSigningKey = errors.New("profile has no usable signing key")

// SigningKey resolves the profile's signing key: the non-revoked ed25519
// KEY entry with the best (lowest) preference rank, falling back to
// arrival order for unranked entries.
func (p *Profile) SigningKey() (ed25519.PublicKey, error) {
	type candidate struct {
		index int
		pref  *int
		key   PublicKey
	}
	var candidates []candidate
	for i, key := range p.Keys {
		if key.Alg != security.AlgEd25519 {
			continue
		}
		if p.KeyStatus(key.KeyB64) == KeyRevoked {
			continue
		}
		candidates = append(candidates, candidate{index: i, pref: key.Pref, key: key})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		switch {
		case ca.pref != nil && cb.pref != nil:
			return *ca.pref < *cb.pref
		case ca.pref != nil:
			return true
		case cb.pref != nil:
			return false
		default:
			return ca.index < cb.index
		}
	})

	for _, c := range candidates {
		pub, err := security.PublicKeyFromCompact(c.key.KeyB64)
		if err != nil {
			continue
		}
		return pub, nil
	}
	return nil, ErrNoSigningKey
}

// EndorsementStatus is the verdict for one endorsement claim.
type EndorsementStatus int

const (
	// EndorsementUnverifiable: the SIG field is empty or structurally
	// malformed, so no verification could be attempted. The endorsement is
	// retained but proves nothing.
	EndorsementUnverifiable EndorsementStatus = iota
	// EndorsementInvalid: verification was attempted and the proof failed.
	EndorsementInvalid
	// EndorsementVerified: the signature verifies over the canonical
	// endorsement bytes under the given key.
	EndorsementVerified
)

func (s EndorsementStatus) String() string {
	switch s {
	case EndorsementInvalid:
		return "invalid"
	case EndorsementVerified:
		return "verified"
	default:
		return "unverifiable"
	}
}

// VerifyEndorsement checks an endorsement's signature over the canonical
// endorsement bytes under pub, which should be the signing key of the
// profile containing the endorsement.
func VerifyEndorsement(pub ed25519.PublicKey, e Endorsement) EndorsementStatus {
	if e.SignatureHex == "" {
		return EndorsementUnverifiable
	}
	canonical := security.CanonicalEndorsement(e.EndorseeKeyB64)
	ok, err := security.VerifyHex(pub, canonical, e.SignatureHex)
	if err != nil {
		return EndorsementUnverifiable
	}
	if !ok {
		return EndorsementInvalid
	}
	return EndorsementVerified
}

// VerifyEndorsements resolves the profile's signing key and reports the
// status of every endorsement, in arrival order. When no signing key can
// be resolved, every endorsement is unverifiable.
func (p *Profile) VerifyEndorsements() []EndorsementStatus {
	statuses := make([]EndorsementStatus, len(p.Endorsements))
	pub, err := p.SigningKey()
	if err != nil {
		return statuses
	}
	for i, e := range p.Endorsements {
		statuses[i] = VerifyEndorsement(pub, e)
	}
	return statuses
}
