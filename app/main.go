package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-pulse/app/api"
	"github.com/lysyi3m/rss-pulse/app/cfg"
	"github.com/lysyi3m/rss-pulse/app/config"
	"github.com/lysyi3m/rss-pulse/app/site"
	"github.com/lysyi3m/rss-pulse/app/tasks"
)

func main() {
	appConfig, err := cfg.Load(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting RSS Pulse", "version", appConfig.Version, "settings", appConfig.SettingsFile, "output", appConfig.OutputDir)

	settings, err := config.NewLoader(appConfig.SettingsFile).Load()
	if err != nil {
		slog.Error("Failed to load settings", "path", appConfig.SettingsFile, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := tasks.NewPipeline(settings, &http.Client{}, tasks.Options{
		OutputDir: appConfig.OutputDir,
		UserAgent: appConfig.UserAgent,
		NoEnrich:  appConfig.NoEnrich,
		Prune:     appConfig.Prune,
		Version:   appConfig.Version,
	}, time.Now())

	items, err := pipeline.Run(ctx)
	if err != nil {
		slog.Error("Run failed, previous output left in place", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s with %d item(s).\n", filepath.Join(appConfig.OutputDir, site.FeedFile), len(items))

	if !appConfig.Serve {
		return
	}

	serve(ctx, appConfig, api.BuildInfo{
		Title:   settings.Title,
		Items:   len(items),
		BuiltAt: pipeline.Batch.Now,
		Version: appConfig.Version,
	})
}

func serve(ctx context.Context, appConfig *cfg.Cfg, build api.BuildInfo) {
	server := api.NewServer(api.NewHandler(appConfig.OutputDir, build))

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server started", "url", fmt.Sprintf("http://localhost:%s/", appConfig.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
