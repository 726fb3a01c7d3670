package feed

import (
	"sort"
)

// Rank orders items newest first, drops repeated keys (GUID, falling back to
// link) keeping the newest occurrence, and truncates to maxItems.
func Rank(items []Item, maxItems int) []Item {
	maxItems = max(maxItems, 0)

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	seen := make(map[string]bool, len(sorted))
	out := make([]Item, 0, min(len(sorted), maxItems))
	for _, item := range sorted {
		if len(out) >= maxItems {
			break
		}
		key := item.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}

	return out
}
