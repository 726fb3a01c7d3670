package feed

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Filterer keeps items that match the keyword rules and fall inside the
// lookback window.
type Filterer struct {
	includes []string
	excludes []string
	cutoff   time.Time
}

// NewFilterer builds a filterer. Keywords are matched case-insensitively; a
// zero cutoff disables the recency check.
func NewFilterer(includes, excludes []string, cutoff time.Time) *Filterer {
	return &Filterer{
		includes: lowerAll(includes),
		excludes: lowerAll(excludes),
		cutoff:   cutoff,
	}
}

func (f *Filterer) Run(items []Item) []Item {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if reason := f.filterReason(item); reason != "" {
			slog.Debug("Item filtered", "source", item.Source, "title", item.Title, "reason", reason)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// Matches reports whether text passes the keyword rules.
func (f *Filterer) Matches(text string) bool {
	return f.keywordReason(strings.ToLower(text)) == ""
}

func (f *Filterer) filterReason(item Item) string {
	if !f.cutoff.IsZero() && item.PublishedAt.Before(f.cutoff) {
		return fmt.Sprintf("published %s before cutoff %s", item.PublishedAt.Format(time.RFC3339), f.cutoff.Format(time.RFC3339))
	}
	return f.keywordReason(strings.ToLower(item.Title + "\n" + item.Description))
}

func (f *Filterer) keywordReason(text string) string {
	if len(f.includes) > 0 {
		matched := false
		for _, include := range f.includes {
			if strings.Contains(text, include) {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Sprintf("does not contain any of %v", f.includes)
		}
	}

	for _, exclude := range f.excludes {
		if strings.Contains(text, exclude) {
			return fmt.Sprintf("contains excluded '%s'", exclude)
		}
	}

	return ""
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
