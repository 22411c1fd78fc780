package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower composes s to NFC and lowercases it with English casing rules.
func Lower(s string) string {
	return cases.Lower(language.English).String(norm.NFC.String(s))
}

// StripNoise replaces every punctuation mark, symbol, digit, and CR/TAB/LF
// with a single space. Nothing is deleted outright, so two words separated
// only by punctuation never merge.
func StripNoise(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r', r == '\t', r == '\n':
			return ' '
		case unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsDigit(r):
			return ' '
		}
		return r
	}, s)
}

// Normalize applies Lower then StripNoise.
func Normalize(s string) string {
	return StripNoise(Lower(s))
}
