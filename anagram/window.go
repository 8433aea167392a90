package anagram

import "github.com/mhr3/strmatch/internal/bytealg"

// byteCounts is the frequency table of a byte sequence.
// distinct is the number of non-zero slots.
type byteCounts struct {
	n        [256]int
	distinct int
}

func countBytes[T bytealg.Bytes](s T) byteCounts {
	var c byteCounts
	for i := 0; i < len(s); i++ {
		if c.n[s[i]] == 0 {
			c.distinct++
		}
		c.n[s[i]]++
	}
	return c
}

// byteWindow tracks the byte counts of a fixed-width window against a target table.
// diff is the number of byte values whose window count differs from the target,
// so the window is an anagram of the target exactly when diff is zero.
type byteWindow struct {
	want *byteCounts
	have [256]int
	diff int
}

func newByteWindow(want *byteCounts) *byteWindow {
	return &byteWindow{want: want, diff: want.distinct}
}

func (w *byteWindow) add(b byte) {
	if w.have[b] == w.want.n[b] {
		w.diff++
	}
	w.have[b]++
	if w.have[b] == w.want.n[b] {
		w.diff--
	}
}

func (w *byteWindow) remove(b byte) {
	if w.have[b] == w.want.n[b] {
		w.diff++
	}
	w.have[b]--
	if w.have[b] == w.want.n[b] {
		w.diff--
	}
}

func (w *byteWindow) matches() bool {
	return w.diff == 0
}

// slide runs the sliding window of width m over text, m >= 1 and m <= len(text).
func slide[T bytealg.Bytes](text T, want *byteCounts, m int) []int {
	w := newByteWindow(want)
	for i := 0; i < m; i++ {
		w.add(text[i])
	}

	var res []int
	if w.matches() {
		res = append(res, 0)
	}
	for i := m; i < len(text); i++ {
		w.add(text[i])
		w.remove(text[i-m])
		if w.matches() {
			res = append(res, i-m+1)
		}
	}
	return res
}
