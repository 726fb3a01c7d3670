package config

import (
	"time"
)

const (
	DefaultTitle         = "My Feed"
	DefaultMaxItems      = 30
	DefaultDaysLookback  = 14
	DefaultTimeout       = 10
	DefaultSourceTimeout = 30

	// MaxDaysLookback keeps the lookback well inside time.Duration range.
	MaxDaysLookback = 36500
)

// GetMaxItems returns the configured item cap
func (s *Settings) GetMaxItems() int {
	if s.MaxItems == nil {
		return DefaultMaxItems
	}
	return *s.MaxItems
}

// GetLookback returns the recency window as time.Duration
func (s *Settings) GetLookback() time.Duration {
	days := DefaultDaysLookback
	if s.DaysLookback != nil {
		days = *s.DaysLookback
	}
	return time.Duration(days) * 24 * time.Hour
}

// GetCutoff returns the oldest publish time an item may carry
func (s *Settings) GetCutoff(now time.Time) time.Time {
	return now.Add(-s.GetLookback())
}

// GetTimeout returns the article fetch timeout as time.Duration
func (s *Settings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}

// GetSourceTimeout returns the feed and CSV fetch timeout as time.Duration
func (s *Settings) GetSourceTimeout() time.Duration {
	if s.SourceTimeout <= 0 {
		return DefaultSourceTimeout * time.Second
	}
	return time.Duration(s.SourceTimeout) * time.Second
}

func (s *Settings) EnrichEnabled() bool {
	return s.Enrich == nil || *s.Enrich
}

func (s *Settings) ThumbnailsEnabled() bool {
	return s.Thumbnails == nil || *s.Thumbnails
}
