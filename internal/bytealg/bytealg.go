// Package bytealg holds the byte-level helpers shared by the anagram and kmp packages.
package bytealg

import "math/bits"

// Bytes is the set of byte sequences the search functions accept.
// Both forms index to a byte, so one generic body serves either.
type Bytes interface {
	string | []byte
}

// IndexMask returns the index of the first byte in s that has any bit of mask set,
// or -1 if there is none.
func IndexMask[T Bytes](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	// eight bytes per iteration, two 32-bit loads
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

// ValidString reports whether s is entirely 7-bit ASCII.
func ValidString[T Bytes](s T) bool {
	return IndexMask(s, 0x80) == -1
}

// Equal reports whether a and b hold the same bytes, comparing one byte at a time.
func Equal[T Bytes](a, b T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
