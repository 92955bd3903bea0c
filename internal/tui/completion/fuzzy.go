package completion

import (
	"sort"
	"strings"
)

// Rank keeps the items whose path contains query as a subsequence, best
// match first. An empty query keeps every item in walk order.
func Rank(query string, items []Suggestion) []Suggestion {
	if query == "" {
		return items
	}

	query = strings.ToLower(query)
	var ranked []Suggestion
	for _, item := range items {
		if score := score(query, strings.ToLower(item.Path)); score > 0 {
			item.Score = score
			ranked = append(ranked, item)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func score(query, path string) int {
	switch {
	case query == path:
		return 1000
	case strings.HasPrefix(path, query):
		return 800 - len(path) // Prefer shorter matches
	}

	q := []rune(query)
	total, qi, run := 0, 0, 0
	prev := rune(0)
	for i, r := range path {
		if qi == len(q) {
			break
		}
		if r != q[qi] {
			run = 0
			prev = r
			continue
		}
		total += 10 + run*5
		run++
		// Matches right after a separator count extra.
		if i == 0 || prev == '/' || prev == '_' || prev == '-' || prev == '.' {
			total += 15
		}
		qi++
		prev = r
	}
	if qi < len(q) {
		return 0
	}
	return max(total-(len(path)-len(query)), 1)
}
