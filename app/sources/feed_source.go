package sources

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
)

// FeedSource reads one RSS, Atom or JSON feed.
type FeedSource struct {
	url     string
	client  *fetcher.Client
	parser  *feed.Parser
	timeout time.Duration
}

func NewFeedSource(url string, client *fetcher.Client, parser *feed.Parser, timeout time.Duration) *FeedSource {
	return &FeedSource{
		url:     url,
		client:  client,
		parser:  parser,
		timeout: timeout,
	}
}

func (s *FeedSource) Name() string {
	return s.url
}

func (s *FeedSource) Fetch(ctx context.Context, now time.Time) ([]feed.Item, error) {
	data, err := s.client.Get(ctx, s.url, s.timeout, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	metadata, items, err := s.parser.Run(data, now)
	if err != nil {
		return nil, err
	}

	slog.Debug("Feed parsed",
		"source", s.url,
		"title", metadata.Title,
		"language", metadata.Language,
		"items", len(items))

	for i := range items {
		items[i].Source = s.url
	}

	return items, nil
}
