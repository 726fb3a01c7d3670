package feed

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxSlugLength = 80
	FallbackSlug  = "post"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier: accents folded, lowercased,
// non-alphanumeric runs collapsed to one hyphen, at most MaxSlugLength bytes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(foldAccents(s)))
	s = strings.Trim(slugPattern.ReplaceAllString(s, "-"), "-")
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	if s == "" {
		return FallbackSlug
	}
	return s
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// AssignSlugs sets Slug on every item from its title (or GUID when the title
// is empty). Repeated slugs within the list get a numeric suffix in rank order.
func AssignSlugs(items []Item) {
	used := make(map[string]bool, len(items))
	for i := range items {
		base := Slugify(cmpOrTitle(items[i]))
		slug := base
		for n := 2; used[slug]; n++ {
			suffix := "-" + strconv.Itoa(n)
			trimmed := base
			if len(trimmed)+len(suffix) > MaxSlugLength {
				trimmed = strings.TrimRight(trimmed[:MaxSlugLength-len(suffix)], "-")
			}
			slug = trimmed + suffix
		}
		used[slug] = true
		items[i].Slug = slug
	}
}

func cmpOrTitle(item Item) string {
	if strings.TrimSpace(item.Title) != "" {
		return item.Title
	}
	return item.GUID
}
