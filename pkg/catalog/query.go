package catalog

import "strings"

// FilterAll is the sentinel value disabling a categorical filter
const FilterAll = "all"

// Filter returns the monuments matching the free-text query and the state
// and era filters. The filters are exact matches (or FilterAll); the
// lowercased query is substring-matched against name, description, era,
// and state, any of which suffices. Filters are AND-ed with the text match.
func Filter(monuments []Monument, query, state, era string) []Monument {
	q := strings.ToLower(query)

	var out []Monument
	for _, m := range monuments {
		if state != FilterAll && m.State != state {
			continue
		}
		if era != FilterAll && m.Era != era {
			continue
		}
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Description), q) ||
			strings.Contains(strings.ToLower(m.Era), q) ||
			strings.Contains(strings.ToLower(m.State), q) {
			out = append(out, m)
		}
	}
	return out
}

// States returns the distinct state values across the collection, in
// first-seen order. Recomputed per call; the catalog is tens of items.
func States(monuments []Monument) []string {
	return distinct(monuments, func(m Monument) string { return m.State })
}

// Eras returns the distinct era values across the collection, in
// first-seen order.
func Eras(monuments []Monument) []string {
	return distinct(monuments, func(m Monument) string { return m.Era })
}

func distinct(monuments []Monument, field func(Monument) string) []string {
	seen := make(map[string]bool, len(monuments))
	var out []string
	for _, m := range monuments {
		v := field(m)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
