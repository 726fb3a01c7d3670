package sources

import (
	"bytes"
	"cmp"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
)

// SheetSource reads a published spreadsheet CSV export with the columns
// title, url, summary, pubDate, guid and image.
type SheetSource struct {
	url     string
	client  *fetcher.Client
	timeout time.Duration
}

func NewSheetSource(url string, client *fetcher.Client, timeout time.Duration) *SheetSource {
	return &SheetSource{
		url:     url,
		client:  client,
		timeout: timeout,
	}
}

func (s *SheetSource) Name() string {
	return s.url
}

func (s *SheetSource) Fetch(ctx context.Context, now time.Time) ([]feed.Item, error) {
	data, err := s.client.Get(ctx, s.url, s.timeout, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet: %w", err)
	}

	items, err := ParseSheet(data, now)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Source = s.url
	}

	return items, nil
}

// ParseSheet turns CSV rows into items. Rows without a title or url are
// dropped.
func ParseSheet(data []byte, now time.Time) ([]feed.Item, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var items []feed.Item
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		get := func(column string) string {
			i, ok := columns[strings.ToLower(column)]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		title, link := get("title"), get("url")
		if title == "" || link == "" {
			continue
		}

		items = append(items, feed.Item{
			GUID:        cmp.Or(get("guid"), link),
			Title:       title,
			Link:        link,
			Description: get("summary"),
			PublishedAt: feed.NormalizeDate(get("pubDate"), now),
			ImageURL:    get("image"),
		})
	}

	return items, nil
}
