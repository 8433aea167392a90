// Package kmp finds the first occurrence of a pattern in a text.
//
// Index uses Knuth-Morris-Pratt matching: a failure table built once per
// pattern lets the search recover from a mismatch without ever moving back in
// the text, for O(n+m) overall. IndexBruteForce compares the pattern at every
// offset in O(n*m) and serves as the reference; the two always agree.
//
// An empty pattern matches at offset 0 of any text, including an empty one.
package kmp

import "github.com/mhr3/strmatch/internal/bytealg"

// Table returns the failure function of pattern: Table(p)[i] is the length of
// the longest proper prefix of p[:i+1] that is also a suffix of it.
func Table[T bytealg.Bytes](pattern T) []int {
	table := make([]int, len(pattern))
	// k is the length of the prefix matched so far
	for i, k := 1, 0; i < len(pattern); {
		switch {
		case pattern[i] == pattern[k]:
			k++
			table[i] = k
			i++
		case k > 0:
			k = table[k-1]
		default:
			i++
		}
	}
	return table
}

// TableSlice is Table over a sequence of arbitrary comparable elements.
func TableSlice[E comparable](pattern []E) []int {
	table := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); {
		switch {
		case pattern[i] == pattern[k]:
			k++
			table[i] = k
			i++
		case k > 0:
			k = table[k-1]
		default:
			i++
		}
	}
	return table
}

// Index returns the index of the first occurrence of pattern in text, or -1.
func Index[T bytealg.Bytes](text, pattern T) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(text) < len(pattern) {
		return -1
	}
	return search(text, pattern, Table(pattern))
}

// search requires a non-empty pattern and its failure table.
func search[T bytealg.Bytes](text, pattern T, table []int) int {
	m := len(pattern)
	for i, j := 0, 0; i < len(text); {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
			if j == m {
				return i - m
			}
		case j > 0:
			j = table[j-1]
		default:
			i++
		}
	}
	return -1
}

// IndexBruteForce is Index computed by comparing pattern at every offset.
func IndexBruteForce[T bytealg.Bytes](text, pattern T) int {
	n, m := len(text), len(pattern)
	for i := 0; i <= n-m; i++ {
		if bytealg.Equal(text[i:i+m], pattern) {
			return i
		}
	}
	return -1
}

// IndexSlice is Index over a sequence of arbitrary comparable elements.
func IndexSlice[E comparable](text, pattern []E) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	if len(text) < m {
		return -1
	}

	table := TableSlice(pattern)
	for i, j := 0, 0; i < len(text); {
		switch {
		case text[i] == pattern[j]:
			i++
			j++
			if j == m {
				return i - m
			}
		case j > 0:
			j = table[j-1]
		default:
			i++
		}
	}
	return -1
}

// IndexSliceBruteForce is IndexSlice computed by comparing pattern at every offset.
func IndexSliceBruteForce[E comparable](text, pattern []E) int {
	n, m := len(text), len(pattern)
outer:
	for i := 0; i <= n-m; i++ {
		for j := 0; j < m; j++ {
			if text[i+j] != pattern[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
