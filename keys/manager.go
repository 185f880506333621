package keys

import (
	"crypto/ed25519"
	"crypto/rand"

	"dsigo.dev/dsigo/security"
)

// KeyPair is an Ed25519 signing keypair owned by its creating caller.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// Export carries the three representations a caller is expected to
// persist: armored private key, armored public key, and the compact text
// identifier used inside profile fields and feed signatures.
type Export struct {
	PrivateArmor []byte
	PublicArmor  []byte
	Compact      string
}

// Generate produces a fresh keypair from the process's secure random
// source. Safe for concurrent use.
func Generate() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// FromSeed rebuilds a keypair from a 32-byte Ed25519 seed.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, security.NewKeyLengthError("ed25519 seed must be 32 bytes")
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{Public: priv.Public().(ed25519.PublicKey), Private: priv}, nil
}

// Export returns all three persistable representations of the keypair.
func (kp *KeyPair) Export() (*Export, error) {
	privDER, err := security.MarshalPrivateKey(kp.Private)
	if err != nil {
		return nil, err
	}
	pubDER, err := security.MarshalPublicKey(kp.Public)
	if err != nil {
		return nil, err
	}
	return &Export{
		PrivateArmor: security.Armor(privDER, security.BlockPrivate),
		PublicArmor:  security.Armor(pubDER, security.BlockPublic),
		Compact:      security.CompactEncode(pubDER),
	}, nil
}

// CompactID returns the compact text identifier for a public key.
func CompactID(pub ed25519.PublicKey) (string, error) {
	der, err := security.MarshalPublicKey(pub)
	if err != nil {
		return "", err
	}
	return security.CompactEncode(der), nil
}

// LoadPrivate parses an armored private key. The armor must carry a
// "PRIVATE KEY" block encoding an Ed25519 key.
func LoadPrivate(armored []byte) (ed25519.PrivateKey, error) {
	der, block, err := security.Dearmor(armored)
	if err != nil {
		return nil, err
	}
	if block != security.BlockPrivate {
		return nil, security.NewArmorKindError("expected a PRIVATE KEY block, found " + string(block))
	}
	return security.ParsePrivateKey(der)
}

// LoadPublic parses an armored public key.
func LoadPublic(armored []byte) (ed25519.PublicKey, error) {
	der, block, err := security.Dearmor(armored)
	if err != nil {
		return nil, err
	}
	if block != security.BlockPublic {
		return nil, security.NewArmorKindError("expected a PUBLIC KEY block, found " + string(block))
	}
	return security.ParsePublicKey(der)
}
