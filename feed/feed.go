// Package feed assembles RSS 2.0 documents from timestamped items and
// attaches non-repudiable signatures to them.
//
// Each item may carry a signature extension element,
//
//	<signature keyId="<compact-key>"><hex></signature>
//
// produced by Signer over the canonical item bytes. Items without a
// signing context are emitted unsigned; that is a supported mode, not an
// error.
package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"dsigo.dev/dsigo/cidutil"
	"dsigo.dev/dsigo/security"
)

// Item is one feed entry. Description carries the rendered (HTML) body
// exactly as it is signed and published.
type Item struct {
	ID          string
	Title       string
	Link        string
	Description string
	PubDate     time.Time
	Signature   *ItemSignature
}

// ItemSignature is the attached signature extension: the hex signature
// over the canonical item bytes and the signer's compact key identifier.
type ItemSignature struct {
	Value string
	KeyID string
}

// Info is the channel-level metadata of a feed.
type Info struct {
	Title       string
	Link        string
	Description string
	Language    string
	AuthorName  string
	AuthorEmail string
	BuildDate   time.Time
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	Author      string        `xml:"author,omitempty"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Signature   *xmlSignature `xml:"signature,omitempty"`
}

type xmlSignature struct {
	KeyID string `xml:"keyId,attr"`
	Value string `xml:",chardata"`
}

// GUID returns the item's stable identifier: the explicit ID when set,
// otherwise a content identifier derived from the canonical item bytes.
func (it *Item) GUID() string {
	if it.ID != "" {
		return it.ID
	}
	return cidutil.ContentID(security.CanonicalFeedItem(it.PubDate, it.Title, it.Description))
}

// RenderRSS produces the RSS 2.0 document. The pubDate text is the same
// canonical date rendering that gets signed, so a verifier reading the
// wire format reconstructs the signed bytes exactly.
func RenderRSS(info Info, items []Item) ([]byte, error) {
	author := ""
	if info.AuthorName != "" {
		author = fmt.Sprintf("%s (%s)", info.AuthorName, info.AuthorEmail)
	}

	doc := rssDoc{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         info.Title,
			Link:          info.Link,
			Description:   info.Description,
			Language:      info.Language,
			LastBuildDate: security.CanonicalDate(info.BuildDate),
			AtomLink:      atomLink{Href: info.Link, Rel: "self"},
		},
	}

	for i := range items {
		it := &items[i]
		link := it.Link
		if link == "" {
			link = fmt.Sprintf("%s/feed/%s", info.Link, it.GUID())
		}
		entry := rssItem{
			Title:       it.Title,
			Link:        link,
			Description: it.Description,
			Author:      author,
			GUID:        it.GUID(),
			PubDate:     security.CanonicalDate(it.PubDate),
		}
		if it.Signature != nil && it.Signature.Value != "" {
			entry.Signature = &xmlSignature{KeyID: it.Signature.KeyID, Value: it.Signature.Value}
		}
		doc.Channel.Items = append(doc.Channel.Items, entry)
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
