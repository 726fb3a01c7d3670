package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/rss-pulse/app/article"
	"github.com/lysyi3m/rss-pulse/app/site"
	"github.com/lysyi3m/rss-pulse/app/thumbnail"
)

// EnrichItemsTask extends summaries, discovers missing images and builds
// thumbnails. A nil enricher or thumbnail generator skips that step. Every
// failure is per item and leaves the item as it was.
type EnrichItemsTask struct {
	Task
	batch      *Batch
	enricher   *article.Enricher
	thumbnails *thumbnail.Generator
	site       *site.Site
}

func NewEnrichItemsTask(name string, batch *Batch, enricher *article.Enricher, thumbnails *thumbnail.Generator, s *site.Site) *EnrichItemsTask {
	return &EnrichItemsTask{
		Task:       NewTask(TaskTypeEnrichItems, name),
		batch:      batch,
		enricher:   enricher,
		thumbnails: thumbnails,
		site:       s,
	}
}

func (t *EnrichItemsTask) Execute(ctx context.Context) error {
	enriched := 0
	thumbs := 0

	for i := range t.batch.Items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := t.batch.Items[i]

		if t.enricher != nil {
			before := item.Description
			item = t.enricher.Enrich(ctx, item)
			if item.Description != before {
				enriched++
			}
		}

		if t.thumbnails != nil && item.ImageURL != "" {
			path := t.site.ThumbnailPath(item.Slug)
			if err := t.thumbnails.Run(ctx, item.ImageURL, path); err != nil {
				slog.Debug("Thumbnail failed", "slug", item.Slug, "image", item.ImageURL, "error", err)
			} else {
				item.ThumbnailURL = t.site.ThumbnailURL(item.Slug)
				t.site.MarkThumbnail(item.Slug)
				thumbs++
			}
		}

		t.batch.Items[i] = item
	}

	slog.Info("Task completed",
		"type", "EnrichedItems",
		"name", t.Name,
		"duration", t.GetDuration(),
		"items", len(t.batch.Items),
		"enriched", enriched,
		"thumbnails", thumbs)

	return nil
}
