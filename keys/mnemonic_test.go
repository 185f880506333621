package keys

import (
	"strings"
	"testing"
)

func TestMnemonic_RoundTrip(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	mnemonic, err := kp.Mnemonic()
	if err != nil {
		t.Fatalf("Mnemonic: %v", err)
	}
	if got := len(strings.Fields(mnemonic)); got != 24 {
		t.Fatalf("mnemonic word count = %d, want 24", got)
	}

	restored, err := FromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	if !restored.Public.Equal(kp.Public) {
		t.Fatal("restored keypair differs from original")
	}
	if !restored.Private.Equal(kp.Private) {
		t.Fatal("restored private key differs from original")
	}
}

func TestFromMnemonic_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not a mnemonic at all",
		// 12 words encode a 16-byte seed, too short for ed25519.
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	}
	for _, bad := range cases {
		if _, err := FromMnemonic(bad); err == nil {
			t.Fatalf("FromMnemonic(%q): expected error", bad)
		}
	}
}
