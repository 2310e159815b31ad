// Package passgen assembles passphrases from the embedded word lists.
//
// Lists sized at exactly 6^5 words are exposed through go-diceware's
// WordList interface, so phrase words are picked by its crypto/rand dice
// roller. Other sizes fall back to uniform draws from the library's
// general-purpose random source.
package passgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randword/randword"
	"github.com/sethvargo/go-diceware/diceware"
)

const diceDigits = 5 // five d6 rolls address 6^5 = 7776 words

// DiceList adapts an ordered word list to diceware.WordList. A roll such as
// 31425 is read as five base-6 digits (1..6), most significant first, and
// mapped to the word at that index.
type DiceList struct {
	words []string
}

var _ diceware.WordList = (*DiceList)(nil)

// NewDiceList wraps words, which must hold exactly 6^5 entries so that every
// roll lands on a word and every word is reachable.
func NewDiceList(words []string) (*DiceList, error) {
	if len(words) != 7776 {
		return nil, fmt.Errorf("dice word list needs 7776 words, got %d", len(words))
	}
	return &DiceList{words: words}, nil
}

func (l *DiceList) Digits() int { return diceDigits }

func (l *DiceList) WordAt(roll int) string {
	idx := 0
	div := 1
	for i := 0; i < diceDigits-1; i++ {
		div *= 10
	}
	for i := 0; i < diceDigits; i++ {
		d := roll / div % 10 // dice face, 1..6
		idx = idx*6 + (d - 1)
		div /= 10
	}
	return l.words[idx]
}

// Generate returns n words for lang joined by sep.
func Generate(lang randword.Lang, n int, sep string) (string, error) {
	words, err := Words(lang, n)
	if err != nil {
		return "", err
	}
	return strings.Join(words, sep), nil
}

// Words returns n passphrase words for lang.
func Words(lang randword.Lang, n int) ([]string, error) {
	if n < 1 {
		return nil, errors.New("word count must be at least 1")
	}

	all := randword.All(lang)
	if list, err := NewDiceList(all); err == nil {
		return diceware.GenerateWithWordList(n, list)
	}

	// Non-diceware-sized list: draw uniformly with replacement.
	words := make([]string, n)
	for i := range words {
		words[i] = randword.Get(lang)
	}
	return words, nil
}
