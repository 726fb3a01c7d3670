package article

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
	"golang.org/x/net/html"
)

// Page is a fetched and parsed article page.
type Page struct {
	URL  *url.URL
	Doc  *goquery.Document
	Data []byte
}

// ParsePage parses raw HTML fetched from pageURL.
func ParsePage(data []byte, pageURL string) (*Page, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Page{URL: u, Doc: doc, Data: data}, nil
}

// Resolve makes ref absolute against the page URL.
func (p *Page) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return p.URL.ResolveReference(refURL).String()
}

// Content returns the main content region: the first <article>, else the
// first <main>, else the whole document.
func (p *Page) Content() *goquery.Selection {
	for _, tag := range []string{"article", "main"} {
		if sel := p.Doc.Find(tag).First(); sel.Length() > 0 {
			return sel
		}
	}
	return p.Doc.Selection
}

// Loader fetches article pages.
type Loader interface {
	Load(ctx context.Context, pageURL string) (*Page, error)
}

type HTTPLoader struct {
	client  *fetcher.Client
	timeout time.Duration
}

func NewHTTPLoader(client *fetcher.Client, timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{client: client, timeout: timeout}
}

func (l *HTTPLoader) Load(ctx context.Context, pageURL string) (*Page, error) {
	data, err := l.client.Get(ctx, pageURL, l.timeout, "html")
	if err != nil {
		return nil, err
	}
	return ParsePage(data, pageURL)
}

// text joins the trimmed text nodes under sel with single spaces.
func text(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
