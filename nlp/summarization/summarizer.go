// Package summarization picks the most distinctive terms of one document
// against a fitted TF-IDF model.
package summarization

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/oarkflow/keyterms/nlp/extract"
	"github.com/oarkflow/keyterms/nlp/tfidf"
)

const (
	DefaultTopN      = 20
	DefaultThreshold = 0.09
)

var (
	// ErrNotEnoughTerms is returned in strict mode when fewer terms were
	// ranked than requested.
	ErrNotEnoughTerms = errors.New("summarization: not enough ranked terms")
	// ErrInvalidN is returned for a non-positive result size.
	ErrInvalidN = errors.New("summarization: result size must be positive")
)

// Term is a scored keyword.
type Term struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Summarizer ranks document terms by TF-IDF score.
type Summarizer struct {
	TopN      int     `json:"top_n" yaml:"top_n"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	// Strict fails with ErrNotEnoughTerms when TopN exceeds the number of
	// ranked terms instead of returning what is available.
	Strict bool `json:"strict" yaml:"strict"`
}

// Default returns a Summarizer with the standard cut-offs.
func Default() *Summarizer {
	return &Summarizer{TopN: DefaultTopN, Threshold: DefaultThreshold}
}

// Summarize returns up to s.TopN terms of text whose score is strictly
// above s.Threshold, best first. text is the raw document markup.
func (s *Summarizer) Summarize(m *tfidf.Model, text string) ([]Term, error) {
	if s.TopN <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidN, s.TopN)
	}
	ranked, err := Rank(m, text)
	if err != nil {
		return nil, err
	}
	if s.Strict && s.TopN > len(ranked) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughTerms, s.TopN, len(ranked))
	}

	// The cut-off is positional: the first TopN ranked terms are examined
	// and the ones at or below the threshold are dropped.
	out := make([]Term, 0, min(s.TopN, len(ranked)))
	for _, t := range ranked[:min(s.TopN, len(ranked))] {
		if t.Score > s.Threshold {
			out = append(out, t)
		}
	}
	return out, nil
}

// Rank scores every distinct vocabulary term of the document's title and
// body and sorts them best first.
//
// The whole markup is scored, but only terms from the extracted text are
// candidates. Ties are broken on the score rounded to three decimals
// followed by the term, both descending, so equal scores list terms in
// reverse lexical order.
func Rank(m *tfidf.Model, text string) ([]Term, error) {
	v := m.Transform(text)

	clean, err := extract.Text(text)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ranked []Term
	for _, w := range m.Analyzer()(clean) {
		if _, ok := m.Index(w); !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		ranked = append(ranked, Term{Term: w, Score: m.Score(v, w)})
	}

	slices.SortStableFunc(ranked, func(a, b Term) int {
		return strings.Compare(sortKey(b), sortKey(a))
	})
	return ranked, nil
}

func sortKey(t Term) string {
	return fmt.Sprintf("%.3f %s", t.Score, t.Term)
}
