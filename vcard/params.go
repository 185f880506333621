package vcard

import "strings"

// parseParams extracts parameters from a property header, e.g.
//
//	"X-ENDORSE;ENCODING=b;SIG=abcd;DATE=2026-01-01"
//	  -> {"ENCODING": "b", "SIG": "abcd", "DATE": "2026-01-01"}
//
// Parameter names are case-insensitive (uppercased); parts without an "="
// are skipped.
func parseParams(header string) map[string]string {
	params := make(map[string]string)
	parts := strings.Split(header, ";")
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		params[strings.ToUpper(k)] = v
	}
	return params
}
