// Package anagram finds anagram windows: every offset at which a substring of the
// text holds exactly the same characters as the pattern, in any order.
//
// Each search comes in two flavours that always agree. The BruteForce functions
// rebuild a frequency table for every candidate window in O(n*m). The others slide
// a single window across the text, updating its counts as one character enters and
// one leaves, in O(n+m).
//
// An empty pattern never matches, and neither does a pattern longer than the text.
package anagram

import (
	"unicode/utf8"

	"github.com/mhr3/strmatch/internal/bytealg"
)

// IndexAll returns the ascending start offsets of every window of text that is an
// anagram of pattern. Characters are bytes.
func IndexAll[T bytealg.Bytes](text, pattern T) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}
	want := countBytes(pattern)
	return slide(text, &want, m)
}

// IndexAllBruteForce is IndexAll computed by counting each window from scratch.
func IndexAllBruteForce[T bytealg.Bytes](text, pattern T) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	want := byteCountsOf(pattern)
	var res []int
	for i := 0; i+m <= len(text); i++ {
		if byteCountsOf(text[i:i+m]).Equal(want) {
			res = append(res, i)
		}
	}
	return res
}

func byteCountsOf[T bytealg.Bytes](s T) Counts[byte] {
	c := Counts[byte]{m: make(map[byte]int)}
	for i := 0; i < len(s); i++ {
		c.m[s[i]]++
	}
	return c
}

// IndexAllSlice is IndexAll over a sequence of arbitrary comparable elements.
func IndexAllSlice[E comparable](text, pattern []E) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	want := CountsOf(pattern)
	have := CountsOf(text[:m])

	var res []int
	if have.Equal(want) {
		res = append(res, 0)
	}
	for i := m; i < len(text); i++ {
		have.Add(text[i])
		have.Remove(text[i-m])
		if have.Equal(want) {
			res = append(res, i-m+1)
		}
	}
	return res
}

// IndexAllSliceBruteForce is IndexAllSlice computed by counting each window from scratch.
func IndexAllSliceBruteForce[E comparable](text, pattern []E) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	want := CountsOf(pattern)
	var res []int
	for i := 0; i+m <= len(text); i++ {
		if CountsOf(text[i : i+m]).Equal(want) {
			res = append(res, i)
		}
	}
	return res
}

// IndexAllRunes is IndexAll with code points as characters. Windows span
// utf8.RuneCountInString(pattern) runes; the returned offsets are byte offsets
// into text. Invalid UTF-8 decodes to one utf8.RuneError per bad byte.
func IndexAllRunes(text, pattern string) []int {
	if isASCII(text) && isASCII(pattern) {
		return IndexAll(text, pattern)
	}

	p := []rune(pattern)
	if len(p) == 0 {
		return nil
	}

	runes := make([]rune, 0, utf8.RuneCountInString(text))
	offs := make([]int, 0, cap(runes))
	for i, r := range text {
		runes = append(runes, r)
		offs = append(offs, i)
	}

	res := IndexAllSlice(runes, p)
	for k, i := range res {
		res[k] = offs[i]
	}
	return res
}

// Finder holds the frequency table of a pattern for repeated searches.
// Construct once with NewFinder, then call IndexAll on multiple texts.
// A Finder is read-only after construction and safe for concurrent use.
type Finder struct {
	pattern string
	want    byteCounts
}

// NewFinder creates a Finder for pattern.
func NewFinder(pattern string) *Finder {
	return &Finder{
		pattern: pattern,
		want:    countBytes(pattern),
	}
}

// Pattern returns the pattern the Finder was built for.
func (f *Finder) Pattern() string {
	return f.pattern
}

// IndexAll returns the ascending start offsets of every anagram of the pattern in text.
func (f *Finder) IndexAll(text string) []int {
	m := len(f.pattern)
	if m == 0 || m > len(text) {
		return nil
	}
	return slide(text, &f.want, m)
}
