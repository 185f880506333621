package security

import "time"

// CanonicalDateLayout is the one fixed textual date format used inside the
// feed-item canonical string: RFC 3339 in UTC with second precision.
// Signers and verifiers must both render dates through CanonicalDate; the
// RSS renderer emits the same text so the wire value and the signed value
// never diverge.
const CanonicalDateLayout = "2006-01-02T15:04:05Z"

// CanonicalDate renders t in the canonical date format.
func CanonicalDate(t time.Time) string {
	return t.UTC().Format(CanonicalDateLayout)
}

// CanonicalEndorsement returns the exact bytes signed for an endorsement of
// the key named by its compact identifier:
//
//	endorse:<compact-key>
//
// UTF-8, no trailing newline.
func CanonicalEndorsement(endorseeCompact string) []byte {
	return []byte("endorse:" + endorseeCompact)
}

// CanonicalFeedItem returns the exact bytes signed for a feed item:
//
//	<date>\n<title>\n<description>
//
// with the date rendered by CanonicalDate. UTF-8, no trailing newline.
func CanonicalFeedItem(pubDate time.Time, title, description string) []byte {
	return canonicalFeedItem(CanonicalDate(pubDate), title, description)
}

func canonicalFeedItem(date, title, description string) []byte {
	return []byte(date + "\n" + title + "\n" + description)
}
