package feed

import (
	"time"
)

// Item is one aggregated news entry carried through the pipeline. Optional
// fields are empty strings when absent.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	PublishedAt time.Time // always UTC

	ImageURL     string
	ThumbnailURL string

	Slug       string
	SummaryURL string

	Source string // name of the source it came from, for logging
}

// Key returns the deduplication key: the GUID, or the link when the GUID is empty.
func (i Item) Key() string {
	if i.GUID != "" {
		return i.GUID
	}
	return i.Link
}

// PublicLink is the link advertised for the item: the summary page when one
// has been computed, otherwise the original article.
func (i Item) PublicLink() string {
	if i.SummaryURL != "" {
		return i.SummaryURL
	}
	return i.Link
}

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}
