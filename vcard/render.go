package vcard

import (
	"fmt"
	"strings"
)

// Fields is the set of standard vCard properties the builder knows how to
// emit. Empty fields are omitted entirely; no empty-value lines are ever
// written.
type Fields struct {
	FN          string
	N           string
	Nickname    string
	Lang        string
	Gender      string
	Email       string
	Categories  string
	BDay        string
	Anniversary string
	Kind        string
	Adr         string
	Tel         string
	Impp        string
	Photo       string
	Note        string
	URL         string
	Source      string
}

// KeyLine describes one public key to publish in the record.
type KeyLine struct {
	Alg      string
	KeyB64   string
	Pref     int
	Encoding string
}

// CustomAttr is a caller-supplied extension line emitted verbatim as
// "<Name>:<Value>".
type CustomAttr struct {
	Name  string
	Value string
}

// CustomAttrName uppercases and trims a custom attribute name.
func CustomAttrName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// SocialAttrName builds the attribute name for a social platform link:
// "X-SOCIAL;PLATFORM=<platform>".
func SocialAttrName(platform string) string {
	return "X-SOCIAL;PLATFORM=" + strings.ToLower(strings.TrimSpace(platform))
}

// Render builds the identity-record text: a BEGIN/VERSION envelope, one
// line per populated field in fixed order, the KEY lines, then the custom
// attributes verbatim. It is a pure formatting function and never fails.
func Render(f Fields, keys []KeyLine, custom []CustomAttr) string {
	var sb strings.Builder
	sb.WriteString("BEGIN:VCARD\nVERSION:4.0\n")

	writeField := func(name, value string) {
		if value == "" {
			return
		}
		sb.WriteString(name)
		sb.WriteString(":")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	writeField("FN", f.FN)
	if f.N != "" {
		writeField("N", f.N+";;;;")
	}
	writeField("NICKNAME", f.Nickname)
	writeField("LANG", f.Lang)
	writeField("GENDER", f.Gender)
	writeField("EMAIL", f.Email)
	writeField("CATEGORIES", f.Categories)
	writeField("BDAY", f.BDay)
	writeField("ANNIVERSARY", f.Anniversary)
	writeField("KIND", f.Kind)
	writeField("ADR", f.Adr)
	writeField("TEL", f.Tel)
	writeField("IMPP", f.Impp)
	writeField("PHOTO", f.Photo)
	writeField("NOTE;LANGUAGE=en-US", f.Note)
	writeField("URL", f.URL)
	writeField("SOURCE", f.Source)

	for _, k := range keys {
		pref := k.Pref
		if pref == 0 {
			pref = 1
		}
		fmt.Fprintf(&sb, "KEY;TYPE=public;ALG=%s;PREF=%d;ENCODING=%s:%s\n",
			strings.ToLower(k.Alg), pref, k.Encoding, k.KeyB64)
	}

	for _, attr := range custom {
		sb.WriteString(attr.Name)
		sb.WriteString(":")
		sb.WriteString(attr.Value)
		sb.WriteString("\n")
	}

	sb.WriteString("END:VCARD")
	return sb.String()
}
