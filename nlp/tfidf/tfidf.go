package tfidf

import (
	"errors"
	"math"
	"slices"

	"github.com/oarkflow/keyterms/nlp/tokenizer"
)

// ErrEmptyVocabulary is returned by Fit when no document yields a term.
var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

// Vector is a sparse document vector indexed by vocabulary position.
type Vector map[int]float64

// Options configures Fit.
type Options struct {
	// Analyzer tokenizes documents; tokenizer.Tokenize when nil.
	Analyzer tokenizer.Analyzer
	// StopWord, when set, drops matching terms after analysis.
	StopWord func(string) bool
}

// Model is a fitted vocabulary with smoothed inverse document frequencies.
// It is read-only after Fit and safe for concurrent use.
type Model struct {
	analyze  tokenizer.Analyzer
	stopWord func(string) bool

	vocab   []string
	index   map[string]int
	df      []int
	idf     []float64
	numDocs int

	// fitted vector of every corpus document
	docs map[string]Vector
}

// Fit builds the vocabulary and IDF weights over docs, keyed by document id.
//
//	idf(t) = ln((1+n) / (1+df(t))) + 1
//
// Vocabulary positions follow lexical term order, so the same corpus always
// yields the same indexes.
func Fit(docs map[string]string, opts Options) (*Model, error) {
	m := &Model{
		analyze:  opts.Analyzer,
		stopWord: opts.StopWord,
		numDocs:  len(docs),
		docs:     make(map[string]Vector, len(docs)),
	}
	if m.analyze == nil {
		m.analyze = tokenizer.Tokenize
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	// Document frequencies
	counts := make(map[string][]string, len(ids))
	dfByTerm := make(map[string]int)
	for _, id := range ids {
		terms := m.terms(docs[id])
		counts[id] = terms
		seen := make(map[string]bool)
		for _, w := range terms {
			if !seen[w] {
				dfByTerm[w]++
				seen[w] = true
			}
		}
	}
	if len(dfByTerm) == 0 {
		return nil, ErrEmptyVocabulary
	}

	m.vocab = make([]string, 0, len(dfByTerm))
	for w := range dfByTerm {
		m.vocab = append(m.vocab, w)
	}
	slices.Sort(m.vocab)

	// IDF
	n := float64(m.numDocs)
	m.index = make(map[string]int, len(m.vocab))
	m.df = make([]int, len(m.vocab))
	m.idf = make([]float64, len(m.vocab))
	for i, w := range m.vocab {
		m.index[w] = i
		m.df[i] = dfByTerm[w]
		m.idf[i] = math.Log((1+n)/(1+float64(dfByTerm[w]))) + 1
	}

	for _, id := range ids {
		m.docs[id] = m.vectorize(counts[id])
	}
	return m, nil
}

// Analyzer returns the analyzer the model was fitted with.
func (m *Model) Analyzer() tokenizer.Analyzer { return m.analyze }

// Transform scores text against the fitted vocabulary: raw term counts
// times IDF, L2-normalized. Terms outside the vocabulary are ignored.
func (m *Model) Transform(text string) Vector {
	return m.vectorize(m.terms(text))
}

// Score returns the weight of term in v, or 0 when term is unknown.
func (m *Model) Score(v Vector, term string) float64 {
	i, ok := m.index[term]
	if !ok {
		return 0
	}
	return v[i]
}

// Weight returns the fitted weight of term in corpus document id.
func (m *Model) Weight(id, term string) (float64, bool) {
	v, ok := m.docs[id]
	if !ok {
		return 0, false
	}
	return m.Score(v, term), true
}

// Index returns the vocabulary position of term.
func (m *Model) Index(term string) (int, bool) {
	i, ok := m.index[term]
	return i, ok
}

// IDF returns the inverse document frequency of term, or 0 when unknown.
func (m *Model) IDF(term string) float64 {
	if i, ok := m.index[term]; ok {
		return m.idf[i]
	}
	return 0
}

// DocFreq returns the number of corpus documents containing term.
func (m *Model) DocFreq(term string) int {
	if i, ok := m.index[term]; ok {
		return m.df[i]
	}
	return 0
}

// Vocabulary returns a copy of the terms in index order.
func (m *Model) Vocabulary() []string { return slices.Clone(m.vocab) }

// NumDocs is the size of the corpus the model was fitted on.
func (m *Model) NumDocs() int { return m.numDocs }

func (m *Model) terms(text string) []string {
	toks := m.analyze(text)
	if m.stopWord == nil {
		return toks
	}
	out := toks[:0:0]
	for _, t := range toks {
		if !m.stopWord(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *Model) vectorize(terms []string) Vector {
	tf := make(map[int]int)
	for _, w := range terms {
		if i, ok := m.index[w]; ok {
			tf[i]++
		}
	}
	// Sum in index order so repeated runs produce identical floats.
	idx := make([]int, 0, len(tf))
	for i := range tf {
		idx = append(idx, i)
	}
	slices.Sort(idx)

	v := make(Vector, len(tf))
	var sum float64
	for _, i := range idx {
		x := float64(tf[i]) * m.idf[i]
		v[i] = x
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
