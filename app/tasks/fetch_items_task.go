package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/sources"
)

// FetchItemsTask collects items from every source, filters them by keywords
// and recency, then dedupes, ranks and slugs the survivors.
type FetchItemsTask struct {
	Task
	batch    *Batch
	sources  []sources.Source
	filterer *feed.Filterer
	maxItems int
}

func NewFetchItemsTask(name string, batch *Batch, srcs []sources.Source, filterer *feed.Filterer, maxItems int) *FetchItemsTask {
	return &FetchItemsTask{
		Task:     NewTask(TaskTypeFetchItems, name),
		batch:    batch,
		sources:  srcs,
		filterer: filterer,
		maxItems: maxItems,
	}
}

// Execute fails only when every configured source failed; a single broken
// feed is logged and skipped.
func (t *FetchItemsTask) Execute(ctx context.Context) error {
	var collected []feed.Item
	failed := 0
	var lastErr error

	for _, source := range t.sources {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		items, err := source.Fetch(ctx, t.batch.Now)
		if err != nil {
			failed++
			lastErr = err
			slog.Warn("Source fetch failed", "source", source.Name(), "error", err)
			continue
		}

		slog.Debug("Source fetched", "source", source.Name(), "items", len(items))
		collected = append(collected, items...)
	}

	if len(t.sources) > 0 && failed == len(t.sources) {
		return fmt.Errorf("failed to fetch any of %d source(s): %w", failed, lastErr)
	}

	kept := t.filterer.Run(collected)
	ranked := feed.Rank(kept, t.maxItems)
	feed.AssignSlugs(ranked)

	t.batch.Items = ranked

	slog.Info("Task completed",
		"type", "FetchedItems",
		"name", t.Name,
		"duration", t.GetDuration(),
		"sources", len(t.sources),
		"failed", failed,
		"total", len(collected),
		"filtered", len(collected)-len(kept),
		"kept", len(ranked))

	return nil
}
