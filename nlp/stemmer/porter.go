package stemmer

import porterstemmer "github.com/reiver/go-porterstemmer"

// PorterStem reduces word to its root with the original Porter algorithm.
// Stop words are stemmed like any other word.
func PorterStem(word string) string {
	return porterstemmer.StemString(word)
}

// StemWords returns a new slice of the same length with every word stemmed.
func StemWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = PorterStem(w)
	}
	return out
}
