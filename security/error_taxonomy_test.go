package security

import (
	"errors"
	"testing"
)

// Every structural failure path must produce a *Error with a stable Kind
// and RuleID; callers branch on these, never on message text.
func TestErrorTaxonomy_StableRuleIDs(t *testing.T) {
	cases := []struct {
		name     string
		fn       func() error
		wantKind Kind
		wantRule string
	}{
		{
			name: "no armor block",
			fn: func() error {
				_, _, err := Dearmor([]byte("plain text"))
				return err
			},
			wantKind: KindArmor,
			wantRule: "DSI-ARMOR-001",
		},
		{
			name: "wrong armor block type",
			fn: func() error {
				_, _, err := Dearmor([]byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"))
				return err
			},
			wantKind: KindArmor,
			wantRule: "DSI-ARMOR-002",
		},
		{
			name: "compact not base64",
			fn: func() error {
				_, err := CompactDecode("!!not-base64!!")
				return err
			},
			wantKind: KindKey,
			wantRule: "DSI-KEY-002",
		},
		{
			name: "compact not a key container",
			fn: func() error {
				_, err := CompactDecode("AAAA")
				return err
			},
			wantKind: KindKey,
			wantRule: "DSI-KEY-001",
		},
		{
			name: "signature not hex",
			fn: func() error {
				_, err := SignatureFromHex("zz")
				return err
			},
			wantKind: KindSignature,
			wantRule: "DSI-SIG-001",
		},
		{
			name: "signature wrong length",
			fn: func() error {
				pub, _ := mustKeypair(t, 20)
				_, err := Verify(pub, []byte("m"), []byte("short"))
				return err
			},
			wantKind: KindSignature,
			wantRule: "DSI-SIG-002",
		},
		{
			name: "public key wrong length",
			fn: func() error {
				_, err := Verify([]byte("short"), []byte("m"), make([]byte, 64))
				return err
			},
			wantKind: KindKey,
			wantRule: "DSI-KEY-003",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			if err == nil {
				t.Fatal("expected error")
			}
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if se.Kind != tc.wantKind {
				t.Fatalf("Kind = %q, want %q", se.Kind, tc.wantKind)
			}
			if RuleID(err) != tc.wantRule {
				t.Fatalf("RuleID = %q, want %q", RuleID(err), tc.wantRule)
			}
		})
	}
}

func TestIsKind_NonStructuredError(t *testing.T) {
	if IsKind(errors.New("plain"), KindKey) {
		t.Fatal("plain errors must not match any kind")
	}
	if RuleID(errors.New("plain")) != "" {
		t.Fatal("plain errors have no rule ID")
	}
}
