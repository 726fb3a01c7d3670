package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

const DefaultUserAgent = "Mozilla/5.0 (compatible; RSS-Pulse/1.0; +https://github.com/lysyi3m/rss-pulse)"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input and output
	SettingsFile string `long:"settings" short:"s" env:"SETTINGS_FILE" default:"settings.json" description:"Path to the settings document (JSON or YAML)"`
	OutputDir    string `long:"output-dir" short:"o" env:"OUTPUT_DIR" default:"public" description:"Directory the feed, pages and thumbnails are written to"`

	// Run behaviour
	NoEnrich bool `long:"no-enrich" env:"NO_ENRICH" description:"Skip article fetching for summaries, images and thumbnails"`
	Prune    bool `long:"prune" env:"PRUNE" description:"Remove pages and thumbnails not produced by this run"`

	// Preview server
	Serve bool   `long:"serve" env:"SERVE" description:"Serve the output directory after building it"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line arguments and environment variables. It returns
// nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SettingsFile: raw.SettingsFile,
		OutputDir:    raw.OutputDir,
		NoEnrich:     raw.NoEnrich,
		Prune:        raw.Prune,
		Serve:        raw.Serve,
		Port:         raw.Port,
		UserAgent:    cmp.Or(raw.UserAgent, DefaultUserAgent),
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", cfg.Timezone, "error", err)
	}

	return cfg, nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			slog.Debug("Timezone configured", "timezone", timezone)
		}
	}
	return nil
}
