// Package vcard parses and renders the vCard-style identity record that
// carries a profile's display fields, public signing keys, endorsements,
// and key revocations.
//
// Parsing is deliberately lenient: unknown lines are skipped, recognized
// lines with partially malformed parameters degrade instead of aborting,
// and nothing in this package ever rejects a whole record. The correctness
// contracts (signature verification, revocation precedence) live in the
// trust queries, not in the parse.
package vcard

import (
	"strconv"
	"strings"
)

// PublicKey is one KEY line: an algorithm tag and the key's compact text
// identifier, with an optional preference rank. Duplicate KEY lines for the
// same identifier are preserved in arrival order, not deduplicated.
type PublicKey struct {
	Alg    string
	KeyB64 string
	Pref   *int
}

// Endorsement is one X-ENDORSE line: a claim that this profile's signing
// key vouches for the named key. An empty SignatureHex makes the
// endorsement structurally present but unverifiable; it is retained.
type Endorsement struct {
	EndorseeKeyB64 string
	SignatureHex   string
	Date           string
	Confidence     string
}

// RevokedKey is one REVKEY line: the named key, previously published by
// this profile, must no longer be trusted.
type RevokedKey struct {
	KeyB64 string
	Reason string
	Date   string
}

// Profile is the parsed view of one identity record. It is built once per
// Parse call and never mutated afterwards.
type Profile struct {
	FN           string
	Photo        string
	Keys         []PublicKey
	Endorsements []Endorsement
	Revocations  []RevokedKey
	Raw          string
}

// Parse reads an identity record line by line. It never fails: unknown
// lines are ignored for forward compatibility, and malformed parameters on
// recognized lines degrade gracefully.
//
// Folded (continuation) lines are not supported; a folded line looks like
// an unknown line and is skipped.
func Parse(text string) *Profile {
	profile := &Profile{Raw: text}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "FN:"):
			// Last occurrence wins.
			profile.FN = line[len("FN:"):]

		case strings.HasPrefix(line, "PHOTO:"):
			profile.Photo = line[len("PHOTO:"):]

		case strings.HasPrefix(line, "KEY;"):
			header, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			params := parseParams(header)
			profile.Keys = append(profile.Keys, PublicKey{
				Alg:    strings.ToLower(params["ALG"]),
				KeyB64: value,
				Pref:   parseOptionalInt(params, "PREF"),
			})

		case strings.HasPrefix(line, "REVKEY;"):
			header, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			params := parseParams(header)
			profile.Revocations = append(profile.Revocations, RevokedKey{
				KeyB64: value,
				Reason: params["REASON"],
				Date:   params["DATE"],
			})

		case strings.HasPrefix(line, "X-ENDORSE;"):
			header, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			params := parseParams(header)
			profile.Endorsements = append(profile.Endorsements, Endorsement{
				EndorseeKeyB64: value,
				SignatureHex:   params["SIG"],
				Date:           params["DATE"],
				Confidence:     params["CONFIDENCE"],
			})
		}
	}

	return profile
}

// parseOptionalInt reads an integer parameter. Non-numeric values are
// ignored rather than failing the line.
func parseOptionalInt(params map[string]string, key string) *int {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
