package security

import (
	"crypto/ed25519"
	"encoding/hex"
)

// Sign produces an Ed25519 signature over the canonical bytes. Ed25519 is
// deterministic; no nonce is accepted.
func Sign(priv ed25519.PrivateKey, canonical []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, newError(KindKey, "DSI-KEY-003", "ed25519 private key must be 64 bytes")
	}
	return ed25519.Sign(priv, canonical), nil
}

// SignHex signs canonical bytes and returns the lowercase hex signature.
func SignHex(priv ed25519.PrivateKey, canonical []byte) (string, error) {
	sig, err := Sign(priv, canonical)
	if err != nil {
		return "", err
	}
	return SignatureToHex(sig), nil
}

// SignatureToHex renders signature bytes as lowercase hex.
func SignatureToHex(sig []byte) string {
	return hex.EncodeToString(sig)
}

// SignatureFromHex decodes a hex signature. Odd-length or non-hex input is
// a structural error, not a verification failure.
func SignatureFromHex(s string) ([]byte, error) {
	sig, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrapError(KindSignature, "DSI-SIG-001", "invalid signature hex", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over the canonical bytes.
//
// A cryptographically invalid signature (wrong key, tampered message,
// forged signature) yields (false, nil). A structurally malformed signature
// or public key yields an error so callers can distinguish "proven invalid"
// from "could not attempt verification".
func Verify(pub ed25519.PublicKey, canonical, sig []byte) (bool, error) {
	if len(pub) != ed25519.PublicKeySize {
		return false, newError(KindKey, "DSI-KEY-003", "ed25519 public key must be 32 bytes")
	}
	if len(sig) != ed25519.SignatureSize {
		return false, newError(KindSignature, "DSI-SIG-002", "ed25519 signature must be 64 bytes")
	}
	return ed25519.Verify(pub, canonical, sig), nil
}

// VerifyHex decodes a hex signature and verifies it over the canonical bytes.
func VerifyHex(pub ed25519.PublicKey, canonical []byte, sigHex string) (bool, error) {
	sig, err := SignatureFromHex(sigHex)
	if err != nil {
		return false, err
	}
	return Verify(pub, canonical, sig)
}
