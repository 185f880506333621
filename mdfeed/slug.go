package mdfeed

import "strings"

// Slugify reduces text to a URL-safe identifier: lowercase ASCII letters
// and digits, with every other run of characters collapsed to a single
// hyphen.
func Slugify(text string) string {
	var sb strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
