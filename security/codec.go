package security

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
)

// AlgEd25519 is the algorithm tag carried in profile KEY lines for keys
// produced by this implementation.
const AlgEd25519 = "ed25519"

// BlockType selects the PEM block label for armored key material.
type BlockType string

const (
	BlockPublic  BlockType = "PUBLIC KEY"
	BlockPrivate BlockType = "PRIVATE KEY"
)

// MarshalPublicKey wraps raw Ed25519 public key bytes in a PKIX
// SubjectPublicKeyInfo DER container.
func MarshalPublicKey(pub ed25519.PublicKey) ([]byte, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, newError(KindKey, "DSI-KEY-003", "ed25519 public key must be 32 bytes")
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, wrapError(KindKey, "DSI-KEY-001", "marshal public key container", err)
	}
	return der, nil
}

// MarshalPrivateKey wraps an Ed25519 private key in an unencrypted PKCS#8
// DER container.
func MarshalPrivateKey(priv ed25519.PrivateKey) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, newError(KindKey, "DSI-KEY-003", "ed25519 private key must be 64 bytes")
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, wrapError(KindKey, "DSI-KEY-001", "marshal private key container", err)
	}
	return der, nil
}

// ParsePublicKey decodes a PKIX SubjectPublicKeyInfo container.
// Containers for any algorithm other than Ed25519 are rejected.
func ParsePublicKey(der []byte) (ed25519.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, wrapError(KindKey, "DSI-KEY-001", "invalid public key container", err)
	}
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, newError(KindAlgorithm, "DSI-ALG-001", "unsupported public key algorithm")
	}
	return pub, nil
}

// ParsePrivateKey decodes a PKCS#8 container.
// Containers for any algorithm other than Ed25519 are rejected.
func ParsePrivateKey(der []byte) (ed25519.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, wrapError(KindKey, "DSI-KEY-001", "invalid private key container", err)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, newError(KindAlgorithm, "DSI-ALG-001", "unsupported private key algorithm")
	}
	return priv, nil
}

// Armor renders a DER container as a line-wrapped PEM block.
func Armor(der []byte, block BlockType) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: string(block), Bytes: der})
}

// Dearmor extracts the DER container from a PEM block. The block label must
// be exactly "PUBLIC KEY" or "PRIVATE KEY".
func Dearmor(data []byte) ([]byte, BlockType, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, "", newError(KindArmor, "DSI-ARMOR-001", "no armored key block found")
	}
	switch BlockType(block.Type) {
	case BlockPublic, BlockPrivate:
		return block.Bytes, BlockType(block.Type), nil
	default:
		return nil, "", newError(KindArmor, "DSI-ARMOR-002", "unexpected armor block type "+block.Type)
	}
}

// CompactEncode renders a DER container as unwrapped base64, the text-safe
// key identifier embedded in profile fields and feed signatures.
func CompactEncode(der []byte) string {
	return base64.StdEncoding.EncodeToString(der)
}

// CompactDecode decodes a compact key identifier back to its public key
// DER container, validating that the container parses as a supported
// public key.
func CompactDecode(compact string) ([]byte, error) {
	der, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		// Accept raw (unpadded) base64 too; some producers strip padding.
		der, err = base64.RawStdEncoding.DecodeString(compact)
		if err != nil {
			return nil, wrapError(KindKey, "DSI-KEY-002", "invalid compact key base64", err)
		}
	}
	if _, perr := ParsePublicKey(der); perr != nil {
		return nil, perr
	}
	return der, nil
}

// PublicKeyFromCompact decodes a compact key identifier directly to the
// raw Ed25519 public key.
func PublicKeyFromCompact(compact string) (ed25519.PublicKey, error) {
	der, err := CompactDecode(compact)
	if err != nil {
		return nil, err
	}
	return ParsePublicKey(der)
}
