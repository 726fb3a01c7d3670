package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/site"
)

// PublishSiteTask writes the summary pages, the index and finally the feed.
type PublishSiteTask struct {
	Task
	batch     *Batch
	site      *site.Site
	generator *feed.Generator
	channel   feed.Channel
	prune     bool
}

func NewPublishSiteTask(name string, batch *Batch, s *site.Site, generator *feed.Generator, channel feed.Channel, prune bool) *PublishSiteTask {
	return &PublishSiteTask{
		Task:      NewTask(TaskTypePublishSite, name),
		batch:     batch,
		site:      s,
		generator: generator,
		channel:   channel,
		prune:     prune,
	}
}

func (t *PublishSiteTask) Execute(ctx context.Context) error {
	items := t.batch.Items

	for i := range items {
		items[i].SummaryURL = t.site.SummaryURL(items[i])
	}

	for _, item := range items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := t.site.WritePost(item); err != nil {
			return fmt.Errorf("failed to write post: %w", err)
		}
	}

	if err := t.site.WriteIndex(items); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	rss, err := t.generator.Run(t.channel, items, t.batch.Now)
	if err != nil {
		return fmt.Errorf("failed to generate feed: %w", err)
	}
	if err := t.site.WriteFeed(rss); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	pruned := 0
	if t.prune {
		if pruned, err = t.site.Prune(); err != nil {
			return fmt.Errorf("failed to prune: %w", err)
		}
	}

	slog.Info("Task completed",
		"type", "PublishedSite",
		"name", t.Name,
		"duration", t.GetDuration(),
		"dir", t.site.Dir(),
		"items", len(items),
		"pruned", pruned)

	return nil
}
