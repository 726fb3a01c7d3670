package article

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/lysyi3m/rss-pulse/app/feed"
)

const (
	// Descriptions at least this long are kept without fetching the page.
	MinDescriptionLength = 500

	MaxParagraphs      = 6
	MinParagraphLength = 60
	ParagraphBudget    = 900

	MaxSummaryLength = 1200
	Ellipsis         = "…"
)

// Strategy extracts one candidate summary from a page; empty means no result.
type Strategy func(page *Page) string

// FirstOf tries strategies in order and returns the first non-empty result.
func FirstOf(strategies ...Strategy) Strategy {
	return func(page *Page) string {
		for _, s := range strategies {
			if out := s(page); out != "" {
				return out
			}
		}
		return ""
	}
}

// MetaContent reads the content attribute of the first meta tag matching selector.
func MetaContent(selector string) Strategy {
	return func(page *Page) string {
		content, _ := page.Doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(content)
	}
}

// Paragraphs joins up to MaxParagraphs paragraphs of the content region,
// skipping short ones and stopping once ParagraphBudget is exceeded.
func Paragraphs(page *Page) string {
	var paras []string
	total := 0
	page.Content().Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= MaxParagraphs {
			return false
		}
		if t := text(p); utf8.RuneCountInString(t) > MinParagraphLength {
			paras = append(paras, t)
			total += utf8.RuneCountInString(t)
		}
		return total <= ParagraphBudget
	})
	return strings.Join(paras, " ")
}

// Readability uses the readability extractor on the raw page.
func Readability(extractor *feed.ContentExtractor) Strategy {
	return func(page *Page) string {
		out, err := extractor.Run(page.Data, page.URL)
		if err != nil {
			slog.Debug("Readability extraction failed", "url", page.URL.String(), "error", err)
			return ""
		}
		return out
	}
}

var metaDescription = FirstOf(
	MetaContent("meta[property='og:description']"),
	MetaContent("meta[name='description']"),
)

// Summarizer picks the longest of the original description and each
// candidate strategy.
type Summarizer struct {
	candidates []Strategy
}

// NewSummarizer builds the default candidate set; a non-nil extractor adds
// the readability candidate.
func NewSummarizer(extractor *feed.ContentExtractor) *Summarizer {
	candidates := []Strategy{metaDescription, Paragraphs}
	if extractor != nil {
		candidates = append(candidates, Readability(extractor))
	}
	return &Summarizer{candidates: candidates}
}

// NeedsPage reports whether description is short enough to be worth
// extending from the article page.
func NeedsPage(description string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(description)) < MinDescriptionLength
}

// Summarize returns the enriched description. It only calls load when the
// description is short; a load failure yields the original unchanged.
func (s *Summarizer) Summarize(ctx context.Context, description string, load func(context.Context) (*Page, error)) string {
	if !NeedsPage(description) {
		return description
	}

	page, err := load(ctx)
	if err != nil {
		return description
	}

	best := strings.TrimSpace(description)
	fromPage := false
	for _, candidate := range s.candidates {
		if out := candidate(page); utf8.RuneCountInString(out) > utf8.RuneCountInString(best) {
			best = out
			fromPage = true
		}
	}

	if !fromPage || best == "" {
		return description
	}

	return Truncate(best, MaxSummaryLength)
}

// Truncate cuts s to max runes, appending Ellipsis when it was longer.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + Ellipsis
}
