package anagram

import "maps"

// Counts is a frequency table: the multiset of elements seen in a sequence.
//
// A Counts never stores a zero count. Remove deletes an element once its count
// drops to zero, so two tables holding the same multiset are Equal regardless
// of the Add/Remove history that produced them.
//
// The zero value is an empty table ready to use.
type Counts[E comparable] struct {
	m map[E]int
}

// CountsOf returns the frequency table of s.
func CountsOf[E comparable](s []E) Counts[E] {
	c := Counts[E]{m: make(map[E]int, len(s))}
	for _, e := range s {
		c.m[e]++
	}
	return c
}

// Add records one more occurrence of e.
func (c *Counts[E]) Add(e E) {
	if c.m == nil {
		c.m = make(map[E]int)
	}
	c.m[e]++
}

// Remove drops one occurrence of e, deleting it when none are left.
// It reports false, leaving the table untouched, if e was not present.
func (c *Counts[E]) Remove(e E) bool {
	n, ok := c.m[e]
	if !ok {
		return false
	}
	if n == 1 {
		delete(c.m, e)
	} else {
		c.m[e] = n - 1
	}
	return true
}

// Get returns the number of occurrences of e, zero if absent.
func (c Counts[E]) Get(e E) int {
	return c.m[e]
}

// Len returns the number of distinct elements in the table.
func (c Counts[E]) Len() int {
	return len(c.m)
}

// Equal reports whether c and other describe the same multiset.
// Cost is proportional to the number of distinct elements.
func (c Counts[E]) Equal(other Counts[E]) bool {
	return maps.Equal(c.m, other.m)
}
