package inventory

import (
	"cmp"
	"slices"
)

// Rank orders matches by descending count. Ties keep the order in which
// the matches were found.
func Rank(matches []Match) []string {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b Match) int {
		return cmp.Compare(b.Count, a.Count)
	})

	ids := make([]string, len(sorted))
	for i, m := range sorted {
		ids[i] = m.ID
	}
	return ids
}

// Resolve reports whether ranked results can be shown without asking the
// user to pick one. That is the case when there is exactly one result, or
// when the last (lowest-ranked) result's name is exactly query. The returned
// item is always the last result.
func Resolve(query string, ranked []*Item) (*Item, bool) {
	if len(ranked) == 0 {
		return nil, false
	}
	last := ranked[len(ranked)-1]
	if len(ranked) == 1 || last.Name == query {
		return last, true
	}
	return nil, false
}

// MenuNumber returns the number displayed next to the i-th of n ranked
// results. The best result gets n, the last gets 1.
func MenuNumber(i, n int) int {
	return n - i
}

// SelectFromMenu returns the ranked result shown with menu number n.
func SelectFromMenu(ranked []*Item, n int) (*Item, error) {
	if n < 1 || n > len(ranked) {
		return nil, Errorf(EINVALID, "Please pick between 1 and %d", len(ranked))
	}
	return ranked[len(ranked)-n], nil
}
