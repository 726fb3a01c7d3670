package feed

import (
	"regexp"
	"strings"
	"testing"
)

var validSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Man Utd win":                        "man-utd-win",
		"  Ten Hag: 'We must improve!'  ":    "ten-hag-we-must-improve",
		"Fernandes & Mainoo — midfield duo": "fernandes-mainoo-midfield-duo",
		"Höjlund scores in Café derby":       "hojlund-scores-in-cafe-derby",
		"":                                   "post",
		"!!!":                                "post",
		"ÅÄÖ":                                "aao",
	}

	for input, expected := range cases {
		if got := Slugify(input); got != expected {
			t.Errorf("Slugify(%q): expected '%s', got '%s'", input, expected, got)
		}
	}
}

func TestSlugifyLengthAndPattern(t *testing.T) {
	long := strings.Repeat("Transfer news roundup ", 20)
	slug := Slugify(long)

	if len(slug) > MaxSlugLength {
		t.Errorf("Expected slug length <= %d, got %d", MaxSlugLength, len(slug))
	}
	if !validSlug.MatchString(slug) {
		t.Errorf("Expected slug to match lowercase-hyphen pattern, got '%s'", slug)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, input := range []string{"Man Utd win", "Ölé — 3-0!", strings.Repeat("a b ", 50), ""} {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Expected Slugify to be idempotent for %q: '%s' vs '%s'", input, once, twice)
		}
		if Slugify(input) != once {
			t.Errorf("Expected Slugify to be deterministic for %q", input)
		}
	}
}

func TestAssignSlugs(t *testing.T) {
	items := []Item{
		{Title: "Match report", GUID: "a"},
		{Title: "Match Report!", GUID: "b"},
		{Title: "", GUID: "https://example.com/x"},
		{Title: "match report", GUID: "c"},
	}

	AssignSlugs(items)

	expected := []string{"match-report", "match-report-2", "https-example-com-x", "match-report-3"}
	for i, item := range items {
		if item.Slug != expected[i] {
			t.Errorf("Item %d: expected slug '%s', got '%s'", i, expected[i], item.Slug)
		}
	}
}

func TestAssignSlugsLongCollision(t *testing.T) {
	title := strings.Repeat("x", 100)
	items := []Item{{Title: title}, {Title: title}}

	AssignSlugs(items)

	if items[0].Slug == items[1].Slug {
		t.Fatal("Expected colliding slugs to be disambiguated")
	}
	for _, item := range items {
		if len(item.Slug) > MaxSlugLength {
			t.Errorf("Expected slug length <= %d, got %d", MaxSlugLength, len(item.Slug))
		}
	}
}
