// Package randword provides fast random access to natural-language word
// lists embedded in the binary, for passphrase generation and similar uses.
//
// Each language ships as a brotli-compressed payload that is decompressed
// and indexed once per process, on first use. After that every query is a
// lock-free read. Words can be filtered by rune length or by first
// character.
//
//	word := randword.Get(randword.En)
//	four := randword.AllLen(4, randword.En)
//
// Returned slices are views into the shared dictionary: callers must treat
// them as read-only.
package randword

import (
	"math/rand/v2"
)

// All returns every word for lang in a stable order. The order is constant
// within a process run but may change between releases.
func All(lang Lang) []string {
	return dict(lang).words
}

// Size returns the number of words embedded for lang.
func Size(lang Lang) int {
	return len(dict(lang).words)
}

// Get returns one word chosen uniformly at random from lang's full list.
// Draws are independent; repeats across calls are expected.
func Get(lang Lang) string {
	words := dict(lang).words
	return words[rand.IntN(len(words))]
}

// AllLen returns every word of lang whose length is exactly n runes, in
// dictionary order. No match yields an empty slice, never an error.
func AllLen(n int, lang Lang) []string {
	return dict(lang).ofLength(n)
}

// GetLen returns a uniformly random word of exactly n runes. The second
// return is false when no word of that length exists.
func GetLen(n int, lang Lang) (string, bool) {
	words := dict(lang).ofLength(n)
	if len(words) == 0 {
		return "", false
	}
	return words[rand.IntN(len(words))], true
}

// AllStartsWith returns every word of lang beginning with ch, in dictionary
// order. Characters with a lowercase mapping are matched case-insensitively;
// caseless scripts are matched exactly. No match yields an empty slice.
func AllStartsWith(ch rune, lang Lang) []string {
	return dict(lang).startingWith(ch)
}

// GetStartsWith returns a uniformly random word beginning with ch. The
// second return is false when no word starts with ch, which is a normal
// outcome for rare prefixes rather than an error.
func GetStartsWith(ch rune, lang Lang) (string, bool) {
	words := dict(lang).startingWith(ch)
	if len(words) == 0 {
		return "", false
	}
	return words[rand.IntN(len(words))], true
}

// Lengths returns the distinct word lengths present in lang's list, useful
// for introspection. The result is freshly allocated and unordered.
func Lengths(lang Lang) []int {
	d := dict(lang)
	ls := make([]int, 0, len(d.byLen))
	for n := range d.byLen {
		ls = append(ls, n)
	}
	return ls
}
