//go:build noasm

package anagram

import "github.com/mhr3/strmatch/internal/bytealg"

func isASCII(s string) bool {
	return bytealg.ValidString(s)
}
