// Package opml builds an OPML subscription list from a directory of
// identity-record files, pairing each profile's display name with its
// published X-FEED URL.
package opml

import (
	"bytes"
	"encoding/xml"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dsigo.dev/dsigo/vcard"
)

// Outline is one subscription entry.
type Outline struct {
	Text   string `xml:"text,attr"`
	Title  string `xml:"title,attr"`
	XMLURL string `xml:"xmlUrl,attr"`
}

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title string `xml:"title,omitempty"`
}

type opmlBody struct {
	Outlines []Outline `xml:"outline"`
}

// feedURL extracts the first X-FEED value from the raw record text.
// X-FEED is a collaborator extension, not part of the parsed Profile, so
// it is read from the retained raw lines.
func feedURL(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, "X-FEED:"); ok {
			return value
		}
	}
	return ""
}

// FromProfiles builds OPML outlines from parsed profiles. Profiles without
// a feed URL are skipped.
func FromProfiles(profiles []*vcard.Profile) ([]byte, error) {
	doc := opmlDoc{Version: "2.0"}
	for _, p := range profiles {
		url := feedURL(p.Raw)
		if url == "" {
			continue
		}
		name := p.FN
		if name == "" {
			name = "Unknown"
		}
		doc.Body.Outlines = append(doc.Body.Outlines, Outline{Text: name, Title: name, XMLURL: url})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// FromDirectory walks dir recursively, parses every .vcf/.vcard file, and
// builds the OPML subscription list.
func FromDirectory(dir string) ([]byte, error) {
	var profiles []*vcard.Profile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".vcf") && !strings.HasSuffix(d.Name(), ".vcard") {
			return nil
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}
		profiles = append(profiles, vcard.Parse(string(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromProfiles(profiles)
}
