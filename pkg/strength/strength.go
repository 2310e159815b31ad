// Package strength estimates the brute-force resistance of passphrases
// built by sampling words uniformly from a dictionary.
package strength

import (
	"math"
	"math/big"
)

// Rating is a qualitative bucket for an entropy value. Thresholds follow
// NIST-style guidance; lower bounds are inclusive.
type Rating int

const (
	VeryWeak        Rating = iota // < 28 bits
	Weak                          // [28, 36)
	Reasonable                    // [36, 60)
	Strong                        // [60, 80)
	VeryStrong                    // [80, 128)
	ExtremelyStrong               // >= 128 bits
)

func (r Rating) String() string {
	switch r {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Reasonable:
		return "Reasonable"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	case ExtremelyStrong:
		return "Extremely Strong"
	}
	return "Unknown"
}

// Report is the result of one estimate. It is computed on demand and not
// persisted anywhere.
type Report struct {
	WordCount      int
	DictionarySize int

	// Combinations is DictionarySize^WordCount, exact.
	Combinations *big.Int

	// EntropyBits is WordCount * log2(DictionarySize).
	EntropyBits float64

	Rating Rating
}

// Estimate computes the strength of a passphrase of wordCount words drawn
// uniformly (with replacement) from a dictionary of dictSize words.
//
// Degenerate inputs never fail: wordCount <= 0 or dictSize <= 1 yields zero
// entropy and a Very Weak rating.
func Estimate(dictSize, wordCount int) Report {
	r := Report{
		WordCount:      wordCount,
		DictionarySize: dictSize,
		Combinations:   big.NewInt(0),
	}

	if dictSize > 0 && wordCount >= 0 {
		r.Combinations = new(big.Int).Exp(
			big.NewInt(int64(dictSize)), big.NewInt(int64(wordCount)), nil)
	}

	if dictSize > 1 && wordCount > 0 {
		r.EntropyBits = float64(wordCount) * math.Log2(float64(dictSize))
	}

	r.Rating = RatingFor(r.EntropyBits)
	return r
}

// RatingFor maps an entropy value in bits to its Rating bucket.
func RatingFor(entropyBits float64) Rating {
	switch {
	case entropyBits < 28:
		return VeryWeak
	case entropyBits < 36:
		return Weak
	case entropyBits < 60:
		return Reasonable
	case entropyBits < 80:
		return Strong
	case entropyBits < 128:
		return VeryStrong
	default:
		return ExtremelyStrong
	}
}

// CombinationsDisplay renders the combination count in scientific notation,
// e.g. "~3.66e+15", which is friendlier than a 60-digit integer.
func (r Report) CombinationsDisplay() string {
	return "~" + new(big.Float).SetInt(r.Combinations).Text('e', 2)
}
