package sources

import (
	"context"
	"time"

	"github.com/lysyi3m/rss-pulse/app/config"
	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
)

// Source produces raw candidate items. Items come back unfiltered; dates are
// already normalized against now.
type Source interface {
	Name() string
	Fetch(ctx context.Context, now time.Time) ([]feed.Item, error)
}

// FromSettings builds the sources for the configured mode.
func FromSettings(settings *config.Settings, client *fetcher.Client) []Source {
	timeout := settings.GetSourceTimeout()

	if settings.Mode == config.ModeSpreadsheet {
		return []Source{NewSheetSource(settings.SpreadsheetCSVURL, client, timeout)}
	}

	parser := feed.NewParser()
	out := make([]Source, 0, len(settings.RSSSources))
	for _, url := range settings.RSSSources {
		out = append(out, NewFeedSource(url, client, parser, timeout))
	}
	return out
}
