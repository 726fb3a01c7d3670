package feed

import (
	"testing"
	"time"
)

var parseNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParseRSS2(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <language>en-us</language>
    <item>
      <title>Man Utd win</title>
      <link>https://example.com/item1</link>
      <description>Three points at Old Trafford</description>
      <guid>item-1</guid>
      <pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate>
      <media:content url="https://cdn.example.com/item1.jpg" medium="image" />
    </item>
    <item>
      <title>Test Item 2</title>
      <link>https://example.com/item2</link>
      <description>Test Item 2 Description</description>
      <pubDate>Mon, 03 Jul 2023 11:00:00 GMT</pubDate>
      <enclosure url="https://cdn.example.com/item2.png" length="1234" type="image/png" />
    </item>
  </channel>
</rss>`

	parser := NewParser()
	metadata, items, err := parser.Run([]byte(rssData), parseNow)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if metadata.Title != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got: %s", metadata.Title)
	}
	if metadata.Language != "en-us" {
		t.Errorf("Expected language 'en-us', got: %s", metadata.Language)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(items))
	}

	item1 := items[0]
	if item1.Title != "Man Utd win" {
		t.Errorf("Expected title 'Man Utd win', got: %s", item1.Title)
	}
	if item1.Link != "https://example.com/item1" {
		t.Errorf("Expected link 'https://example.com/item1', got: %s", item1.Link)
	}
	if item1.GUID != "item-1" {
		t.Errorf("Expected GUID 'item-1', got: %s", item1.GUID)
	}
	expected := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !item1.PublishedAt.Equal(expected) {
		t.Errorf("Expected published %v, got: %v", expected, item1.PublishedAt)
	}
	if item1.ImageURL != "https://cdn.example.com/item1.jpg" {
		t.Errorf("Expected media image, got: %s", item1.ImageURL)
	}

	item2 := items[1]
	if item2.GUID != "https://example.com/item2" {
		t.Errorf("Expected GUID to fall back to link, got: %s", item2.GUID)
	}
	if item2.ImageURL != "https://cdn.example.com/item2.png" {
		t.Errorf("Expected enclosure image, got: %s", item2.ImageURL)
	}
}

func TestParseAtomUpdatedFallback(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <link href="https://example.com/"/>
  <updated>2024-02-01T10:00:00Z</updated>
  <id>urn:feed</id>
  <entry>
    <title>Atom Entry</title>
    <link href="https://example.com/atom-entry"/>
    <id>urn:entry:1</id>
    <updated>2024-02-01T10:00:00Z</updated>
    <summary>Short summary</summary>
    <content type="html">&lt;p&gt;Body &lt;img src="/img/lead.jpg"&gt;&lt;/p&gt;</content>
  </entry>
</feed>`

	_, items, err := NewParser().Run([]byte(atomData), parseNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got: %d", len(items))
	}

	item := items[0]
	if item.GUID != "urn:entry:1" {
		t.Errorf("Expected GUID 'urn:entry:1', got: %s", item.GUID)
	}
	if item.Description != "Short summary" {
		t.Errorf("Expected summary as description, got: %s", item.Description)
	}
	expected := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	if !item.PublishedAt.Equal(expected) {
		t.Errorf("Expected updated date %v, got: %v", expected, item.PublishedAt)
	}
	if item.ImageURL != "https://example.com/img/lead.jpg" {
		t.Errorf("Expected inline image resolved against link, got: %s", item.ImageURL)
	}
}

func TestParseMissingDateDefaultsToNow(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>No date</title>
      <link>https://example.com/no-date</link>
    </item>
    <item>
      <title>Bad date</title>
      <link>https://example.com/bad-date</link>
      <pubDate>unknown</pubDate>
    </item>
  </channel>
</rss>`

	_, items, err := NewParser().Run([]byte(rssData), parseNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(items))
	}
	for _, item := range items {
		if !item.PublishedAt.Equal(parseNow) {
			t.Errorf("Expected %q to default to now, got: %v", item.Title, item.PublishedAt)
		}
	}
}

func TestParseDescriptionFallsBackToContent(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Content only</title>
      <link>https://example.com/content-only</link>
      <content:encoded><![CDATA[<p>Full body text</p>]]></content:encoded>
    </item>
  </channel>
</rss>`

	_, items, err := NewParser().Run([]byte(rssData), parseNow)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got: %d", len(items))
	}
	if items[0].Description != "<p>Full body text</p>" {
		t.Errorf("Expected content as description, got: %s", items[0].Description)
	}
	if items[0].ImageURL != "" {
		t.Errorf("Expected no image, got: %s", items[0].ImageURL)
	}
}

func TestParseInvalidFeed(t *testing.T) {
	_, _, err := NewParser().Run([]byte("this is not a feed"), parseNow)
	if err == nil {
		t.Error("Expected error for invalid feed data")
	}
}

func TestFirstInlineImage(t *testing.T) {
	if src := FirstInlineImage(`<p>Hi</p><img alt="x"><img src=" /a.png "><img src="/b.png">`); src != "/a.png" {
		t.Errorf("Expected '/a.png', got '%s'", src)
	}
	if src := FirstInlineImage("plain text"); src != "" {
		t.Errorf("Expected no image, got '%s'", src)
	}
}
