package inventory

import (
	"maps"
	"slices"
)

// Match is an item that shares at least one keyword with a query.
type Match struct {
	ID    string
	Count int
}

// SearchIndex maps lowercased keywords to the items whose names contain them.
//
// Buckets are append-only. Re-adding an updated item appends it again, so
// an item indexed twice counts twice for each keyword it matches.
type SearchIndex struct {
	buckets map[string][]*Item
}

// NewSearchIndex returns an empty index.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{buckets: make(map[string][]*Item)}
}

// Build discards the current contents and indexes every item in inv in
// identifier order, so ties between matches rank the same on every build.
func (idx *SearchIndex) Build(inv Inventory) {
	idx.buckets = make(map[string][]*Item)
	for _, id := range slices.Sorted(maps.Keys(inv)) {
		idx.Add(inv[id])
	}
}

// Add appends item to the bucket of each of its keywords.
func (idx *SearchIndex) Add(item *Item) {
	keywords, err := Keywords(item.Name)
	if err != nil {
		return
	}
	for _, kw := range keywords {
		idx.buckets[kw] = append(idx.buckets[kw], item)
	}
}

// Items returns the bucket for a single keyword.
func (idx *SearchIndex) Items(keyword string) []*Item {
	return idx.buckets[keyword]
}

// Lookup counts, for every item sharing a keyword with the query, how many
// bucket entries matched. Repeated query keywords are considered once.
// Matches are returned in the order the items were first encountered.
func (idx *SearchIndex) Lookup(keywords []string) []Match {
	var matches []Match
	pos := make(map[string]int)
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}

		for _, item := range idx.buckets[kw] {
			id := item.ID()
			if i, ok := pos[id]; ok {
				matches[i].Count++
				continue
			}
			pos[id] = len(matches)
			matches = append(matches, Match{ID: id, Count: 1})
		}
	}
	return matches
}
