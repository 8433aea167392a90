package kmp

import "slices"

// Searcher performs repeated searches for one pattern.
// Construct once with NewSearcher, then call Index on multiple texts.
// The failure table is built once and only read afterwards, so a Searcher
// is safe for concurrent use.
type Searcher struct {
	pattern string
	table   []int
}

// NewSearcher creates a Searcher for pattern.
func NewSearcher(pattern string) Searcher {
	return Searcher{
		pattern: pattern,
		table:   Table(pattern),
	}
}

// Pattern returns the pattern the Searcher was built for.
func (s Searcher) Pattern() string {
	return s.pattern
}

// Table returns a copy of the pattern's failure table.
func (s Searcher) Table() []int {
	return slices.Clone(s.table)
}

// Index returns the index of the first occurrence of the pattern in text, or -1.
func (s Searcher) Index(text string) int {
	if len(s.pattern) == 0 {
		return 0
	}
	if len(text) < len(s.pattern) {
		return -1
	}
	return search(text, s.pattern, s.table)
}

// IndexAll returns the ascending start offsets of every occurrence of the
// pattern in text, overlapping ones included. An empty pattern occurs at
// every offset from 0 through len(text).
func (s Searcher) IndexAll(text string) []int {
	m := len(s.pattern)
	if m == 0 {
		res := make([]int, len(text)+1)
		for i := range res {
			res[i] = i
		}
		return res
	}

	var res []int
	for i, j := 0, 0; i < len(text); {
		switch {
		case text[i] == s.pattern[j]:
			i++
			j++
			if j == m {
				res = append(res, i-m)
				j = s.table[j-1]
			}
		case j > 0:
			j = s.table[j-1]
		default:
			i++
		}
	}
	return res
}
