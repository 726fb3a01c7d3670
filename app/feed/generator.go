package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"
)

// Channel holds the channel-level fields of the generated feed.
type Channel struct {
	Title       string
	Link        string
	Description string
	SelfLink    string
	Version     string
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders items, in the given order, as an RSS 2.0 document.
func (g *Generator) Run(channel Channel, items []Item, buildTime time.Time) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:media="http://search.yahoo.com/mrss/">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", channel.Description, 4)

	if channel.SelfLink != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(channel.SelfLink)))
	}

	g.writeElement(&buf, "lastBuildDate", buildTime.UTC().Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("RSS-Pulse/%s", channel.Version), 4)

	for _, item := range items {
		g.writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "link", item.PublicLink(), 6)

	if guid := item.Key(); guid != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(guid)))
		xml.EscapeText(buf, []byte(guid))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "pubDate", item.PublishedAt.UTC().Format(time.RFC1123Z), 6)

	buf.WriteString("      <description><![CDATA[")
	buf.WriteString(escapeCDATA(xmlSafe(DescriptionWithSource(item))))
	buf.WriteString("]]></description>\n")

	// Relative thumbnails only resolve on the site itself.
	if g.isURL(item.ThumbnailURL) {
		buf.WriteString(fmt.Sprintf("      <media:thumbnail url=\"%s\" width=\"960\" height=\"540\" />\n",
			html.EscapeString(item.ThumbnailURL)))
	}
	if item.ImageURL != "" {
		buf.WriteString(fmt.Sprintf("      <media:content url=\"%s\" medium=\"image\" />\n",
			html.EscapeString(item.ImageURL)))
	}

	buf.WriteString("    </item>\n")
}

// DescriptionWithSource is the item body followed by a link back to the
// original article.
func DescriptionWithSource(item Item) string {
	return fmt.Sprintf("%s<br/><br/>\n<a href=\"%s\" rel=\"noopener nofollow\">Read original →</a>",
		item.Description, html.EscapeString(item.Link))
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// escapeCDATA splits any "]]>" so the text can sit inside a CDATA section.
func escapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}

// xmlSafe replaces invalid UTF-8 and drops characters XML 1.0 forbids even
// inside CDATA.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, "\uFFFD"))
}
