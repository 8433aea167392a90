//go:build !noasm

package anagram

import "github.com/segmentio/asm/ascii"

func isASCII(s string) bool {
	return ascii.ValidString(s)
}
