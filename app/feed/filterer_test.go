package feed

import (
	"strings"
	"testing"
	"time"
)

func TestFilterer_NoKeywords(t *testing.T) {
	filterer := NewFilterer(nil, nil, time.Time{})

	items := []Item{
		{Title: "Test Item 1", Description: "Test description"},
		{Title: "Test Item 2", Description: "Another description"},
	}

	result := filterer.Run(items)

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
}

func TestFilterer_IncludeKeywords(t *testing.T) {
	filterer := NewFilterer([]string{"Man Utd", "MUFC"}, nil, time.Time{})

	items := []Item{
		{Title: "Man Utd win", Description: "Three points"},
		{Title: "Derby day", Description: "mufc travel to the Etihad"},
		{Title: "Weather Report", Description: "Rain in Manchester"},
	}

	result := filterer.Run(items)

	if len(result) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result))
	}
	if result[0].Title != "Man Utd win" {
		t.Errorf("Expected title match to be kept, got '%s'", result[0].Title)
	}
	if result[1].Title != "Derby day" {
		t.Errorf("Expected description match to be kept, got '%s'", result[1].Title)
	}
}

func TestFilterer_ExcludeKeywords(t *testing.T) {
	filterer := NewFilterer([]string{"united"}, []string{"Women", "u21"}, time.Time{})

	items := []Item{
		{Title: "United sign striker", Description: "Fee agreed"},
		{Title: "United Women win league", Description: ""},
		{Title: "United U21 report", Description: ""},
		{Title: "Transfer news", Description: "united linked with WOMEN's coach"},
	}

	result := filterer.Run(items)

	if len(result) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result))
	}
	if result[0].Title != "United sign striker" {
		t.Errorf("Expected 'United sign striker', got '%s'", result[0].Title)
	}
}

func TestFilterer_Cutoff(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	filterer := NewFilterer(nil, nil, now.Add(-72*time.Hour))

	items := []Item{
		{Title: "Fresh", PublishedAt: now.Add(-time.Hour)},
		{Title: "Stale", PublishedAt: now.Add(-96 * time.Hour)},
		{Title: "Edge", PublishedAt: now.Add(-72 * time.Hour)},
	}

	result := filterer.Run(items)

	if len(result) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result))
	}
	for _, item := range result {
		if item.Title == "Stale" {
			t.Error("Expected stale item to be dropped")
		}
	}
}

func TestFilterer_SurvivorsSatisfyRules(t *testing.T) {
	includes := []string{"goal", "transfer"}
	excludes := []string{"rumour"}
	filterer := NewFilterer(includes, excludes, time.Time{})

	items := []Item{
		{Title: "Late GOAL seals win"},
		{Title: "Transfer rumour mill"},
		{Title: "Press conference", Description: "No goal talk"},
		{Title: "Kit launch"},
		{Title: "Transfer done", Description: "Rumour confirmed"},
	}

	for _, item := range filterer.Run(items) {
		text := strings.ToLower(item.Title + "\n" + item.Description)
		matched := false
		for _, k := range includes {
			if strings.Contains(text, k) {
				matched = true
			}
		}
		if !matched {
			t.Errorf("Item %q survived without matching a keyword", item.Title)
		}
		for _, x := range excludes {
			if strings.Contains(text, x) {
				t.Errorf("Item %q survived while containing excluded %q", item.Title, x)
			}
		}
	}
}

func TestFilterer_Matches(t *testing.T) {
	filterer := NewFilterer([]string{"man utd"}, []string{"women"}, time.Time{})

	if !filterer.Matches("MAN UTD win") {
		t.Error("Expected case-insensitive match")
	}
	if filterer.Matches("Man Utd Women win") {
		t.Error("Expected exclude keyword to reject text")
	}
	if filterer.Matches("City win") {
		t.Error("Expected text without keywords to be rejected")
	}
}
