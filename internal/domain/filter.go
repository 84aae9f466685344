package domain

import "strings"

// FilterEntries returns the entries whose title contains query, ignoring case.
// An empty query returns entries unchanged. The input slice is never modified.
func FilterEntries(entries []EntrySummary, query string) []EntrySummary {
	if query == "" {
		return entries
	}

	needle := strings.ToLower(query)
	filtered := make([]EntrySummary, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
