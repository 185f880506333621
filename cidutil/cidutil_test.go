package cidutil

import (
	"strings"
	"testing"
)

func TestContentID_Deterministic(t *testing.T) {
	a := ContentID([]byte("BEGIN:VCARD\nVERSION:4.0\nFN:Alice\nEND:VCARD"))
	b := ContentID([]byte("BEGIN:VCARD\nVERSION:4.0\nFN:Alice\nEND:VCARD"))
	if a == "" {
		t.Fatal("ContentID returned empty string")
	}
	if a != b {
		t.Fatal("identical bytes must yield identical identifiers")
	}
}

func TestContentID_SensitiveToBytes(t *testing.T) {
	a := ContentID([]byte("FN:Alice"))
	b := ContentID([]byte("FN:Alicf"))
	if a == b {
		t.Fatal("different bytes must yield different identifiers")
	}
}

func TestContentID_CIDv1RawSHA256Prefix(t *testing.T) {
	// CIDv1 raw + sha2-256 in base32 always starts with "bafkrei".
	id := ContentID([]byte("hello"))
	if !strings.HasPrefix(id, "bafkrei") {
		t.Fatalf("identifier %q does not look like a CIDv1 raw/sha2-256", id)
	}
}

func TestContentCID_MatchesContentID(t *testing.T) {
	data := []byte("payload")
	c, err := ContentCID(data)
	if err != nil {
		t.Fatalf("ContentCID: %v", err)
	}
	if c.String() != ContentID(data) {
		t.Fatal("ContentCID and ContentID must agree")
	}
}
