package security

import (
	"bytes"
	"testing"
	"time"
)

func TestCanonicalFeedItem_FixedVector(t *testing.T) {
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := CanonicalFeedItem(date, "Hello", "World")
	want := []byte("2025-01-01T00:00:00Z\nHello\nWorld")
	if !bytes.Equal(got, want) {
		t.Fatalf("canonical feed item mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestCanonicalFeedItem_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	local := time.Date(2025, 1, 1, 1, 0, 0, 0, loc)
	utc := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := CanonicalFeedItem(local, "t", "d")
	want := CanonicalFeedItem(utc, "t", "d")
	if !bytes.Equal(got, want) {
		t.Fatalf("same instant must canonicalize identically:\n got %q\nwant %q", got, want)
	}
}

func TestCanonicalFeedItem_SubSecondTruncated(t *testing.T) {
	date := time.Date(2025, 6, 2, 10, 30, 5, 999999999, time.UTC)
	got := CanonicalDate(date)
	if got != "2025-06-02T10:30:05Z" {
		t.Fatalf("CanonicalDate = %q, want second precision", got)
	}
}

func TestCanonicalEndorsement(t *testing.T) {
	got := CanonicalEndorsement("AAAA")
	want := []byte("endorse:AAAA")
	if !bytes.Equal(got, want) {
		t.Fatalf("canonical endorsement mismatch: got %q want %q", got, want)
	}
	if got[len(got)-1] == '\n' {
		t.Fatal("canonical endorsement must not carry a trailing newline")
	}
}

func TestCanonical_Deterministic(t *testing.T) {
	date := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	a := CanonicalFeedItem(date, "título", "descripción")
	b := CanonicalFeedItem(date, "título", "descripción")
	if !bytes.Equal(a, b) {
		t.Fatal("canonicalization must be deterministic")
	}
}
