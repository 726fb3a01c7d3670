package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lysyi3m/rss-pulse/app/config"
	"github.com/lysyi3m/rss-pulse/app/feed"
)

const (
	FeedFile  = "feed.xml"
	IndexFile = "index.html"
	PostsDir  = "posts"
	ThumbsDir = "thumbs"
)

// PostRecord is the machine-readable form of a summary page, for host pages
// that render items natively.
type PostRecord struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Thumbnail   string `json:"thumbnail"`
	SummaryURL  string `json:"summary_url"`
}

// Site writes the generated artifacts under one output directory. Every write
// replaces the whole file.
type Site struct {
	dir      string
	settings *config.Settings
	written  map[string]bool
}

func New(dir string, settings *config.Settings) *Site {
	return &Site{
		dir:      dir,
		settings: settings,
		written:  make(map[string]bool),
	}
}

func (s *Site) Dir() string {
	return s.dir
}

// SummaryURL is where readers are sent for an item: the external article
// host when configured, else the hosted summary page, else the original link.
func (s *Site) SummaryURL(item feed.Item) string {
	switch {
	case s.settings.ArticlePageBase != "":
		return fmt.Sprintf("%s#slug=%s", s.settings.ArticlePageBase, item.Slug)
	case s.settings.SiteBase != "":
		return fmt.Sprintf("%s/%s/%s.html", s.settings.SiteBase, PostsDir, item.Slug)
	default:
		return item.Link
	}
}

// SelfURL is the public URL of the feed document, empty without site_base.
func (s *Site) SelfURL() string {
	if s.settings.SiteBase == "" {
		return ""
	}
	return s.settings.SiteBase + "/" + FeedFile
}

// ThumbnailPath is the file the thumbnail for slug is written to.
func (s *Site) ThumbnailPath(slug string) string {
	return filepath.Join(s.dir, ThumbsDir, slug+".jpg")
}

// ThumbnailURL is absolute with site_base, otherwise relative to the site root.
func (s *Site) ThumbnailURL(slug string) string {
	rel := ThumbsDir + "/" + slug + ".jpg"
	if s.settings.SiteBase == "" {
		return rel
	}
	return s.settings.SiteBase + "/" + rel
}

// MarkThumbnail records a thumbnail written outside Site so Prune keeps it.
func (s *Site) MarkThumbnail(slug string) {
	s.written[s.ThumbnailPath(slug)] = true
}

func (s *Site) WriteFeed(rss string) error {
	return s.writeFile(filepath.Join(s.dir, FeedFile), []byte(rss))
}

// WritePost writes the HTML summary page and JSON record for item.
func (s *Site) WritePost(item feed.Item) error {
	page, err := s.RenderPost(item)
	if err != nil {
		return err
	}
	if err := s.writeFile(filepath.Join(s.dir, PostsDir, item.Slug+".html"), page); err != nil {
		return err
	}

	record, err := json.MarshalIndent(s.Record(item), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode post record: %w", err)
	}
	return s.writeFile(filepath.Join(s.dir, PostsDir, item.Slug+".json"), record)
}

// RenderPost renders the standalone HTML summary page for item.
func (s *Site) RenderPost(item feed.Item) ([]byte, error) {
	view := postView{
		Title:     item.Title,
		Link:      item.Link,
		Published: item.PublishedAt.UTC().Format(time.RFC1123Z),
		Image:     postImage(item),
		Body:      template.HTML(Sanitize(item.Description)),
		CSS:       template.CSS(pageCSS),
		SiteLink:  s.settings.Link,
		SiteTitle: s.settings.Title,
	}

	var buf bytes.Buffer
	if err := postTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", item.Slug, err)
	}
	return buf.Bytes(), nil
}

// Record builds the structured summary for item.
func (s *Site) Record(item feed.Item) PostRecord {
	return PostRecord{
		Title:       item.Title,
		URL:         item.Link,
		Description: item.Description,
		Published:   item.PublishedAt.UTC().Format(time.RFC3339),
		Slug:        item.Slug,
		Image:       item.ImageURL,
		Thumbnail:   item.ThumbnailURL,
		SummaryURL:  item.SummaryURL,
	}
}

// WriteIndex writes the landing page linking every item.
func (s *Site) WriteIndex(items []feed.Item) error {
	view := indexView{
		Title:       s.settings.Title,
		Description: s.settings.Description,
		Items:       make([]indexEntry, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, indexEntry{Title: item.Title, Href: item.PublicLink()})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return s.writeFile(filepath.Join(s.dir, IndexFile), buf.Bytes())
}

// Prune removes posts and thumbnails this Site did not write.
func (s *Site) Prune() (int, error) {
	removed := 0
	for _, sub := range []string{PostsDir, ThumbsDir} {
		entries, err := os.ReadDir(filepath.Join(s.dir, sub))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("failed to list %s: %w", sub, err)
		}
		for _, entry := range entries {
			path := filepath.Join(s.dir, sub, entry.Name())
			if entry.IsDir() || s.written[path] {
				continue
			}
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", path, err)
			}
			slog.Debug("Pruned stale artifact", "path", path)
			removed++
		}
	}
	return removed, nil
}

func (s *Site) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	s.written[path] = true
	return nil
}

// postImage picks the hero image for a page in posts/: the thumbnail when
// there is one, else the source image.
func postImage(item feed.Item) string {
	if item.ThumbnailURL == "" {
		return item.ImageURL
	}
	if strings.Contains(item.ThumbnailURL, "://") {
		return item.ThumbnailURL
	}
	return "../" + item.ThumbnailURL
}
