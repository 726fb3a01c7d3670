package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses an RSS, Atom or JSON feed document. Entries without a usable
// date are stamped with now.
func (p *Parser) Run(data []byte, now time.Time) (*Metadata, []Item, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, p.normalizeItem(item, now))
	}

	return metadata, items, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, now time.Time) Item {
	link := strings.TrimSpace(item.Link)
	description := cmp.Or(strings.TrimSpace(item.Description), strings.TrimSpace(item.Content))

	normalized := Item{
		GUID:        cmp.Or(strings.TrimSpace(item.GUID), link),
		Title:       strings.TrimSpace(item.Title),
		Link:        link,
		Description: description,
		PublishedAt: p.publishedAt(item, now),
	}

	normalized.ImageURL = p.extractImage(item, link)

	return normalized
}

func (p *Parser) publishedAt(item *gofeed.Item, now time.Time) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC()
	}
	return NormalizeDate(cmp.Or(item.Published, item.Updated), now)
}

// extractImage looks for an image in media extensions, the item image, image
// enclosures and finally the first inline <img> of the body.
func (p *Parser) extractImage(item *gofeed.Item, link string) string {
	if src := mediaImage(item.Extensions); src != "" {
		return resolveURL(link, src)
	}

	if item.Image != nil && item.Image.URL != "" {
		return resolveURL(link, item.Image.URL)
	}

	for _, enclosure := range item.Enclosures {
		if enclosure != nil && enclosure.URL != "" && strings.HasPrefix(strings.ToLower(enclosure.Type), "image/") {
			return resolveURL(link, enclosure.URL)
		}
	}

	for _, body := range []string{item.Content, item.Description} {
		if src := FirstInlineImage(body); src != "" {
			return resolveURL(link, src)
		}
	}

	return ""
}

func mediaImage(extensions ext.Extensions) string {
	media, ok := extensions["media"]
	if !ok {
		return ""
	}

	candidates := append([]ext.Extension{}, media["content"]...)
	for _, group := range media["group"] {
		candidates = append(candidates, group.Children["content"]...)
	}
	for _, content := range candidates {
		if isImageMedia(content.Attrs) {
			return content.Attrs["url"]
		}
	}

	for _, thumb := range media["thumbnail"] {
		if thumb.Attrs["url"] != "" {
			return thumb.Attrs["url"]
		}
	}

	return ""
}

func isImageMedia(attrs map[string]string) bool {
	if attrs["url"] == "" {
		return false
	}
	if attrs["medium"] == "image" || strings.HasPrefix(attrs["type"], "image/") {
		return true
	}
	if attrs["medium"] == "" && attrs["type"] == "" {
		lower := strings.ToLower(attrs["url"])
		for _, suffix := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
			if strings.Contains(lower, suffix) {
				return true
			}
		}
	}
	return false
}

// FirstInlineImage returns the src of the first <img> in an HTML fragment.
func FirstInlineImage(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

func resolveURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil || base == "" {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
