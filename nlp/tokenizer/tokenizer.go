package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/oarkflow/keyterms/nlp/normalizer"
	"github.com/oarkflow/keyterms/nlp/stemmer"
	"github.com/oarkflow/keyterms/nlp/stopwords"
)

// MinRunes is the shortest token kept by Tokenize.
const MinRunes = 3

// Analyzer maps text to the token sequence scored by the TF-IDF model.
// The same Analyzer must be used to fit a model and to query it.
type Analyzer func(text string) []string

// Options selects the optional stages of an Analyzer.
type Options struct {
	Stem bool
}

// New returns an Analyzer running Tokenize and, if requested, the stemmer.
func New(opts Options) Analyzer {
	if !opts.Stem {
		return Tokenize
	}
	return func(text string) []string {
		return stemmer.StemWords(Tokenize(text))
	}
}

// Words segments text on Unicode word boundaries (UAX #29) and returns the
// segments that contain at least one letter or digit.
func Words(text string) []string {
	var out []string
	seg := words.FromString(text)
	for seg.Next() {
		w := seg.Value()
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// Tokenize lowercases text, blanks out punctuation and digits, splits on
// word boundaries and drops tokens shorter than MinRunes or present in the
// stop-word list. Order and duplicates are preserved.
func Tokenize(text string) []string {
	ws := Words(normalizer.Normalize(text))
	long := ws[:0]
	for _, w := range ws {
		if utf8.RuneCountInString(w) >= MinRunes {
			long = append(long, w)
		}
	}
	return stopwords.Filter(long)
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
