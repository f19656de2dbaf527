package content

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// fuzzyCutoff is the minimum similarity ratio for a fuzzy title match.
	fuzzyCutoff = 0.4
	// fuzzyMaxCandidates bounds how many fuzzy matches are appended.
	fuzzyMaxCandidates = 5
	// fuzzyTriggerBelow enables fuzzy matching while fewer results exist.
	fuzzyTriggerBelow = 3
)

// FindByUtterance ranks entries against the utterance: an exact title
// match wins outright, then substring matches, then titles containing
// every utterance token, then fuzzy title matches. Results are
// de-duplicated by title and keep load order within each stage.
func (s *Store) FindByUtterance(text string) []Entry {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return nil
	}

	var results []Entry
	seen := make(map[string]struct{})
	add := func(entry Entry) {
		if _, ok := seen[entry.Title]; ok {
			return
		}
		seen[entry.Title] = struct{}{}
		results = append(results, entry)
	}

	for _, entry := range s.entries {
		if query == strings.ToLower(entry.Title) {
			add(entry)
			return results
		}
	}

	for _, entry := range s.entries {
		if strings.Contains(strings.ToLower(entry.Title), query) {
			add(entry)
		}
	}

	tokens := strings.Fields(query)
	if len(tokens) > 1 {
		for _, entry := range s.entries {
			title := strings.ToLower(entry.Title)
			matched := true
			for _, token := range tokens {
				if !strings.Contains(title, token) {
					matched = false
					break
				}
			}
			if matched {
				add(entry)
			}
		}
	}

	if len(results) < fuzzyTriggerBelow {
		for _, entry := range s.closeMatches(query) {
			add(entry)
		}
	}

	return results
}

// closeMatches returns entries whose titles are similar to the query,
// best ratio first, capped at fuzzyMaxCandidates.
func (s *Store) closeMatches(query string) []Entry {
	type scored struct {
		entry Entry
		ratio float64
	}
	var candidates []scored
	for _, entry := range s.entries {
		ratio := similarity(query, strings.ToLower(entry.Title))
		if ratio >= fuzzyCutoff {
			candidates = append(candidates, scored{entry: entry, ratio: ratio})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})
	if len(candidates) > fuzzyMaxCandidates {
		candidates = candidates[:fuzzyMaxCandidates]
	}
	out := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.entry)
	}
	return out
}

// similarity is the SequenceMatcher ratio over runes.
func similarity(a, b string) float64 {
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}
