package config

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var modeAliases = map[string]Mode{
	"":                           ModeFeeds,
	"rss_aggregate":              ModeFeeds,
	"feeds":                      ModeFeeds,
	"aggregate-from-feeds":       ModeFeeds,
	"google_sheet":               ModeSpreadsheet,
	"spreadsheet":                ModeSpreadsheet,
	"aggregate-from-spreadsheet": ModeSpreadsheet,
}

// Loader handles loading and validation of the settings document
type Loader struct {
	path string
}

// NewLoader creates a new settings loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, normalizes and validates the settings document. JSON documents
// are accepted since they parse as YAML.
func (l *Loader) Load() (*Settings, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", l.path, err)
	}

	slog.Debug("Settings loaded",
		"path", l.path,
		"mode", settings.Mode,
		"sources", len(settings.RSSSources),
		"keywords", len(settings.Keywords),
		"max_items", settings.GetMaxItems())

	return settings, nil
}

// Parse decodes a settings document held in memory
func Parse(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := normalize(&settings); err != nil {
		return nil, err
	}

	if err := validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func normalize(s *Settings) error {
	s.Title = cmp.Or(strings.TrimSpace(s.Title), DefaultTitle)
	s.SiteBase = strings.TrimRight(strings.TrimSpace(s.SiteBase), "/")
	s.ArticlePageBase = strings.TrimRight(strings.TrimSpace(s.ArticlePageBase), "/")
	s.SpreadsheetCSVURL = cmp.Or(strings.TrimSpace(s.SpreadsheetCSVURL), strings.TrimSpace(s.GoogleSheetCSVURL))

	mode, ok := modeAliases[strings.ToLower(strings.TrimSpace(string(s.Mode)))]
	if !ok {
		return fmt.Errorf("unknown mode: %q", s.Mode)
	}
	s.Mode = mode

	sources := make([]string, 0, len(s.RSSSources))
	for _, src := range s.RSSSources {
		if src = strings.TrimSpace(src); src != "" {
			sources = append(sources, src)
		}
	}
	s.RSSSources = sources

	s.Keywords = lowerAll(s.Keywords)
	s.ExcludeKeywords = lowerAll(s.ExcludeKeywords)

	return nil
}

func validate(s *Settings) error {
	if s.MaxItems != nil && *s.MaxItems < 0 {
		return fmt.Errorf("max_items must be non-negative")
	}
	if s.DaysLookback != nil && *s.DaysLookback < 0 {
		return fmt.Errorf("days_lookback must be non-negative")
	}
	if s.DaysLookback != nil && *s.DaysLookback > MaxDaysLookback {
		return fmt.Errorf("days_lookback must be at most %d", MaxDaysLookback)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if s.SourceTimeout < 0 {
		return fmt.Errorf("source_timeout must be non-negative")
	}
	if s.Mode == ModeSpreadsheet && s.SpreadsheetCSVURL == "" {
		return fmt.Errorf("spreadsheet_csv_url is required in %s mode", s.Mode)
	}
	return nil
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}
