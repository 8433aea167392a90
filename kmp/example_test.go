package kmp_test

import (
	"fmt"

	"github.com/mhr3/strmatch/kmp"
)

func ExampleIndex() {
	fmt.Println(kmp.Index("hello", "ll"))
	fmt.Println(kmp.Index("aaaaa", "bba"))
	fmt.Println(kmp.Index("mississippi", "issip"))
	fmt.Println(kmp.Index("abc", ""))
	fmt.Println(kmp.Index("abcabcabcd", "abcd"))
	// Output:
	// 2
	// -1
	// 4
	// 0
	// 6
}

func ExampleIndexBruteForce() {
	fmt.Println(kmp.IndexBruteForce("hello", "ll"))
	fmt.Println(kmp.IndexBruteForce("aaaaa", "bba"))
	// Output:
	// 2
	// -1
}

func ExampleTable() {
	fmt.Println(kmp.Table("issip"))
	fmt.Println(kmp.Table("aabaaab"))
	// Output:
	// [0 0 0 1 0]
	// [0 1 0 1 2 2 3]
}

func ExampleSearcher() {
	s := kmp.NewSearcher("issi")
	fmt.Println(s.Index("mississippi"))
	fmt.Println(s.IndexAll("mississippi"))
	// Output:
	// 1
	// [1 4]
}
