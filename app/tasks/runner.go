package tasks

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/rss-pulse/app/article"
	"github.com/lysyi3m/rss-pulse/app/cfg"
	"github.com/lysyi3m/rss-pulse/app/config"
	"github.com/lysyi3m/rss-pulse/app/feed"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
	"github.com/lysyi3m/rss-pulse/app/site"
	"github.com/lysyi3m/rss-pulse/app/sources"
	"github.com/lysyi3m/rss-pulse/app/thumbnail"
)

// Runner executes its tasks one after another and stops at the first error.
type Runner struct {
	tasks []TaskInterface
}

func NewRunner(tasks ...TaskInterface) *Runner {
	return &Runner{tasks: tasks}
}

func (r *Runner) Run(ctx context.Context) error {
	for _, task := range r.tasks {
		if err := ctx.Err(); err != nil {
			return err
		}

		task.Start()
		slog.Debug("Task started", "type", string(task.GetType()), "id", task.GetID())

		if err := task.Execute(ctx); err != nil {
			slog.Error("Task execution failed", "type", string(task.GetType()), "id", task.GetID(), "duration", task.GetDuration(), "error", err)
			return fmt.Errorf("%s: %w", task.GetType(), err)
		}
	}
	return nil
}

// Options carries the process-level switches that shape a run.
type Options struct {
	OutputDir string
	UserAgent string
	NoEnrich  bool
	Prune     bool
	Version   string
}

// Pipeline is a fully wired run: its Batch holds the published items once
// Runner has finished.
type Pipeline struct {
	Runner *Runner
	Batch  *Batch
	Site   *site.Site
}

// NewPipeline wires the fetch, enrich and publish stages for settings.
func NewPipeline(settings *config.Settings, httpClient *http.Client, opts Options, now time.Time) *Pipeline {
	client := fetcher.NewClient(httpClient, cmp.Or(opts.UserAgent, cfg.DefaultUserAgent))
	batch := &Batch{Now: now.UTC()}
	out := site.New(opts.OutputDir, settings)
	name := settings.Title

	fetch := NewFetchItemsTask(name, batch,
		sources.FromSettings(settings, client),
		feed.NewFilterer(settings.Keywords, settings.ExcludeKeywords, settings.GetCutoff(batch.Now)),
		settings.GetMaxItems())

	var enricher *article.Enricher
	var thumbs *thumbnail.Generator
	if !opts.NoEnrich && settings.EnrichEnabled() {
		var extractor *feed.ContentExtractor
		if settings.ExtractReadability {
			extractor = feed.NewContentExtractor()
		}
		loader := article.NewHTTPLoader(client, settings.GetTimeout())
		enricher = article.NewEnricher(loader, article.NewSummarizer(extractor), true)
	}
	if !opts.NoEnrich && settings.ThumbnailsEnabled() {
		thumbs = thumbnail.NewGenerator(client, settings.GetTimeout())
	}
	enrich := NewEnrichItemsTask(name, batch, enricher, thumbs, out)

	channel := feed.Channel{
		Title:       settings.Title,
		Link:        settings.Link,
		Description: settings.Description,
		SelfLink:    out.SelfURL(),
		Version:     opts.Version,
	}
	publish := NewPublishSiteTask(name, batch, out, feed.NewGenerator(), channel, opts.Prune)

	return &Pipeline{
		Runner: NewRunner(fetch, enrich, publish),
		Batch:  batch,
		Site:   out,
	}
}

// Run executes the pipeline and returns the published items.
func (p *Pipeline) Run(ctx context.Context) ([]feed.Item, error) {
	if err := p.Runner.Run(ctx); err != nil {
		return nil, err
	}
	return p.Batch.Items, nil
}
