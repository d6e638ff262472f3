package view

import "strings"

// StatusAll disables the status-equality filter.
const StatusAll = "all"

// Criteria narrows the fetched collection before pagination. Reset to empty
// when a screen opens; never persisted.
type Criteria struct {
	Query  string
	Status string
}

// Empty reports whether the criteria match everything.
func (c Criteria) Empty() bool {
	return c.Query == "" && (c.Status == "" || c.Status == StatusAll)
}

// Filter applies c to items: status equality first (unless StatusAll), then
// a case-insensitive substring match where an entity passes if ANY of its
// searchable fields contains the query. Input order is preserved; no
// ranking. Empty criteria return the input slice unchanged.
func Filter[E Entity](items []E, c Criteria, fields func(E) []string, statusOf func(E) string) []E {
	if c.Empty() {
		return items
	}

	wantStatus := c.Status != "" && c.Status != StatusAll && statusOf != nil
	query := strings.ToLower(c.Query)

	out := make([]E, 0, len(items))
	for _, e := range items {
		if wantStatus && statusOf(e) != c.Status {
			continue
		}
		if query != "" && !anyFieldContains(fields, e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func anyFieldContains[E Entity](fields func(E) []string, e E, query string) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(e) {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
