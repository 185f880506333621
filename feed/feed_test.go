package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInfo() Info {
	return Info{
		Title:       "My Feed",
		Link:        "https://example.com",
		Description: "Feed description",
		Language:    "en-US",
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
		BuildDate:   time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderRSS_ChannelAndItem(t *testing.T) {
	it := testItem()
	it.ID = "hello"
	out, err := RenderRSS(testInfo(), []Item{it})
	require.NoError(t, err)
	xml := string(out)

	assert.Contains(t, xml, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, xml, "<title>My Feed</title>")
	assert.Contains(t, xml, `<atom:link href="https://example.com" rel="self">`)
	assert.Contains(t, xml, "<lastBuildDate>2025-02-01T12:00:00Z</lastBuildDate>")
	assert.Contains(t, xml, "<guid>hello</guid>")
	assert.Contains(t, xml, "<link>https://example.com/feed/hello</link>")
	assert.Contains(t, xml, "<pubDate>2025-01-01T00:00:00Z</pubDate>")
	assert.Contains(t, xml, "<author>Alice (alice@example.com)</author>")
}

func TestRenderRSS_SignatureExtension(t *testing.T) {
	signer, _ := testSigner(t)
	it := testItem()
	require.NoError(t, signer.SignItem(&it))

	out, err := RenderRSS(testInfo(), []Item{it})
	require.NoError(t, err)
	xml := string(out)

	assert.Contains(t, xml, `<signature keyId="`+signer.KeyID+`">`+it.Signature.Value+`</signature>`)
}

func TestRenderRSS_UnsignedItemHasNoSignatureElement(t *testing.T) {
	it := testItem()
	out, err := RenderRSS(testInfo(), []Item{it})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<signature")
}

func TestRenderRSS_ExplicitLinkWins(t *testing.T) {
	it := testItem()
	it.Link = "https://example.com/posts/custom"
	out, err := RenderRSS(testInfo(), []Item{it})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<link>https://example.com/posts/custom</link>")
}

func TestGUID_FallsBackToContentID(t *testing.T) {
	a := testItem()
	b := testItem()
	assert.Equal(t, a.GUID(), b.GUID(), "identical items share a content-derived guid")
	assert.True(t, strings.HasPrefix(a.GUID(), "bafkrei"))

	b.Title = "Changed"
	assert.NotEqual(t, a.GUID(), b.GUID())
}

func TestRenderRSS_EscapesHTMLDescription(t *testing.T) {
	it := testItem()
	it.Description = "<p>hi & bye</p>"
	out, err := RenderRSS(testInfo(), []Item{it})
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;p&gt;hi &amp; bye&lt;/p&gt;")
}
