package randword

import (
	"unicode"
	"unicode/utf8"
)

// dictionary is one language's decoded word list plus its derived indexes.
// It is built once inside the language's sync.Once and never mutated after
// that, so it may be read concurrently without locking.
type dictionary struct {
	words []string

	// byLen buckets words by rune count. Bucket slices reference the same
	// string data as words; no text is copied.
	byLen map[int][]string

	// byFirst buckets words by their first rune, folded with firstKey.
	byFirst map[rune][]string
}

// newDictionary builds both indexes in a single pass over the word list.
func newDictionary(words []string) *dictionary {
	d := &dictionary{
		words:   words,
		byLen:   make(map[int][]string),
		byFirst: make(map[rune][]string),
	}
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		d.byLen[n] = append(d.byLen[n], w)

		r, _ := utf8.DecodeRuneInString(w)
		k := firstKey(r)
		d.byFirst[k] = append(d.byFirst[k], w)
	}
	return d
}

// firstKey normalizes a rune for the first-character index. Characters with
// a lowercase mapping (Latin, Cyrillic, ...) are folded to lowercase;
// caseless scripts such as kana and han map to themselves. One policy for
// every language, applied at both build and lookup time.
func firstKey(r rune) rune {
	return unicode.ToLower(r)
}

func (d *dictionary) ofLength(n int) []string {
	return d.byLen[n]
}

func (d *dictionary) startingWith(r rune) []string {
	return d.byFirst[firstKey(r)]
}
