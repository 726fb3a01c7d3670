package article

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/rss-pulse/app/feed"
)

// Enricher extends short descriptions and discovers images from the article
// page. Each page is fetched at most once per item and only when needed.
type Enricher struct {
	loader     Loader
	summarizer *Summarizer
	images     bool
}

func NewEnricher(loader Loader, summarizer *Summarizer, discoverImages bool) *Enricher {
	return &Enricher{
		loader:     loader,
		summarizer: summarizer,
		images:     discoverImages,
	}
}

// Enrich returns item with an updated description and, when the item had
// none, a discovered image. Failures leave the fields unchanged. A long
// description is never rewritten, but a missing image still costs one fetch.
func (e *Enricher) Enrich(ctx context.Context, item feed.Item) feed.Item {
	if item.Link == "" {
		return item
	}

	page := &lazyPage{loader: e.loader, url: item.Link}

	item.Description = e.summarizer.Summarize(ctx, item.Description, page.get)

	if e.images && item.ImageURL == "" {
		if p, err := page.get(ctx); err == nil {
			item.ImageURL = DiscoverImage(p)
		}
	}

	return item
}

type lazyPage struct {
	loader Loader
	url    string

	done bool
	page *Page
	err  error
}

func (l *lazyPage) get(ctx context.Context) (*Page, error) {
	if !l.done {
		l.done = true
		l.page, l.err = l.loader.Load(ctx, l.url)
		if l.err != nil {
			slog.Debug("Article fetch failed", "url", l.url, "error", l.err)
		}
	}
	return l.page, l.err
}
