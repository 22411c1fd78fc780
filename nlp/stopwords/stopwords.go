// Package stopwords holds the English stop-word list shared by fitting and
// scoring. The list is the 318-word set bundled with common vectorizers.
package stopwords

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var raw string

var Set map[string]struct{}

func init() {
	Set = make(map[string]struct{}, 320)
	scan := bufio.NewScanner(strings.NewReader(raw))
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w != "" {
			Set[w] = struct{}{}
		}
	}
}

// IsStopWord reports whether w is in the bundled list.
func IsStopWord(w string) bool {
	_, ok := Set[w]
	return ok
}

// Filter returns the tokens of tokens not in Set, keeping order and
// duplicates. The input is not modified.
func Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, isStop := Set[t]; !isStop {
			out = append(out, t)
		}
	}
	return out
}
