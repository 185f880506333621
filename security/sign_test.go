package security

import (
	"strings"
	"testing"
	"time"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	pub, priv := mustKeypair(t, 10)
	msg := CanonicalFeedItem(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "Hello", "World")

	sig, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := Verify(pub, msg, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("signature must verify against its own message and key")
	}
}

func TestVerify_TamperedMessage(t *testing.T) {
	pub, priv := mustKeypair(t, 11)
	msg := []byte("2025-01-01T00:00:00Z\nHello\nWorld")
	sig, err := Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	for i := range msg {
		mutated := append([]byte(nil), msg...)
		mutated[i] ^= 0x01
		ok, verr := Verify(pub, mutated, sig)
		if verr != nil {
			t.Fatalf("Verify(mutation at %d): unexpected error %v", i, verr)
		}
		if ok {
			t.Fatalf("single-byte mutation at %d must not verify", i)
		}
	}
}

func TestVerify_WrongKey(t *testing.T) {
	_, priv1 := mustKeypair(t, 12)
	pub2, _ := mustKeypair(t, 13)
	msg := []byte("endorse:AAAA")

	sig, err := Sign(priv1, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := Verify(pub2, msg, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature must not verify under a different key")
	}
}

func TestVerify_ForgedSignatureIsFalseNotError(t *testing.T) {
	pub, _ := mustKeypair(t, 14)
	forged := make([]byte, 64)
	ok, err := Verify(pub, []byte("msg"), forged)
	if err != nil {
		t.Fatalf("well-formed forged signature must not error: %v", err)
	}
	if ok {
		t.Fatal("forged signature must not verify")
	}
}

func TestVerify_MalformedSignatureIsErrorNotFalse(t *testing.T) {
	pub, _ := mustKeypair(t, 15)
	_, err := Verify(pub, []byte("msg"), []byte("short"))
	if !IsKind(err, KindSignature) {
		t.Fatalf("expected Signature error for wrong length, got %v", err)
	}
}

func TestSignatureHex_RoundTrip(t *testing.T) {
	_, priv := mustKeypair(t, 16)
	sig, err := Sign(priv, []byte("msg"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	hexText := SignatureToHex(sig)
	if hexText != strings.ToLower(hexText) {
		t.Fatal("signature hex must be lowercase")
	}
	back, err := SignatureFromHex(hexText)
	if err != nil {
		t.Fatalf("SignatureFromHex: %v", err)
	}
	if string(back) != string(sig) {
		t.Fatal("hex round trip must be lossless")
	}
}

func TestSignatureFromHex_Malformed(t *testing.T) {
	for _, bad := range []string{"abc", "zz", "0x00"} {
		if _, err := SignatureFromHex(bad); !IsKind(err, KindSignature) {
			t.Fatalf("SignatureFromHex(%q): expected Signature error, got %v", bad, err)
		}
	}
}

func TestSign_Deterministic(t *testing.T) {
	_, priv := mustKeypair(t, 17)
	msg := []byte("endorse:BBBB")
	a, _ := Sign(priv, msg)
	b, _ := Sign(priv, msg)
	if string(a) != string(b) {
		t.Fatal("ed25519 signing must be deterministic")
	}
}

func TestVerifyHex(t *testing.T) {
	pub, priv := mustKeypair(t, 18)
	msg := CanonicalEndorsement("CCCC")
	sigHex, err := SignHex(priv, msg)
	if err != nil {
		t.Fatalf("SignHex: %v", err)
	}
	ok, err := VerifyHex(pub, msg, sigHex)
	if err != nil {
		t.Fatalf("VerifyHex: %v", err)
	}
	if !ok {
		t.Fatal("hex signature must verify")
	}
}
