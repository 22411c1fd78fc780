package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/keyterms/nlp/stopwords"
	"github.com/oarkflow/keyterms/nlp/tokenizer"
)

const (
	docA = `<doc><title>Oil Prices</title><text><p>Oil prices rose sharply today amid supply concerns</p></text></doc>`
	docB = `<doc><title>Stock Markets</title><text><p>Stock markets rallied as oil prices rose</p></text></doc>`
)

func newsCorpus() map[string]string {
	return map[string]string{"a.xml": docA, "b.xml": docB}
}

func TestFitVocabulary(t *testing.T) {
	m, err := Fit(newsCorpus(), Options{})
	require.NoError(t, err)

	// Raw markup is tokenized, so tag names join the vocabulary.
	assert.Equal(t, []string{
		"amid", "concerns", "doc", "markets", "oil", "prices", "rallied",
		"rose", "sharply", "stock", "supply", "text", "title", "today",
	}, m.Vocabulary())
	assert.Equal(t, 2, m.NumDocs())

	i, ok := m.Index("oil")
	require.True(t, ok)
	assert.Equal(t, 4, i)
	_, ok = m.Index("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, m.DocFreq("oil"))
	assert.Equal(t, 1, m.DocFreq("sharply"))
	assert.Equal(t, 0, m.DocFreq("missing"))

	assert.InDelta(t, 1.0, m.IDF("oil"), 1e-12)
	assert.InDelta(t, math.Log(1.5)+1, m.IDF("sharply"), 1e-12)
	assert.Zero(t, m.IDF("missing"))
}

func TestTransform(t *testing.T) {
	m, err := Fit(newsCorpus(), Options{})
	require.NoError(t, err)

	v := m.Transform(docA)
	assert.InDelta(t, 0.359927, m.Score(v, "oil"), 1e-6)
	assert.InDelta(t, 0.359927, m.Score(v, "prices"), 1e-6)
	assert.InDelta(t, 0.179964, m.Score(v, "rose"), 1e-6)
	assert.InDelta(t, 0.252933, m.Score(v, "sharply"), 1e-6)
	assert.Zero(t, m.Score(v, "stock"))
	assert.Zero(t, m.Score(v, "unknown"))

	var sum float64
	for _, x := range v {
		sum += x * x
	}
	assert.InDelta(t, 1.0, sum, 1e-12, "vector must be L2-normalized")

	fitted, ok := m.Weight("a.xml", "sharply")
	require.True(t, ok)
	assert.Equal(t, m.Score(v, "sharply"), fitted)
	_, ok = m.Weight("zzz.xml", "sharply")
	assert.False(t, ok)
}

func TestTransformIgnoresUnknownTerms(t *testing.T) {
	m, err := Fit(newsCorpus(), Options{})
	require.NoError(t, err)

	assert.Empty(t, m.Transform("completely unrelated vocabulary"))
	v := m.Transform("oil gushers")
	assert.Len(t, v, 1)
	assert.InDelta(t, 1.0, m.Score(v, "oil"), 1e-12)
}

func TestFitDeterministic(t *testing.T) {
	m1, err := Fit(newsCorpus(), Options{})
	require.NoError(t, err)
	m2, err := Fit(newsCorpus(), Options{})
	require.NoError(t, err)

	assert.Equal(t, m1.Vocabulary(), m2.Vocabulary())
	for _, id := range []string{"a.xml", "b.xml"} {
		for _, term := range m1.Vocabulary() {
			w1, _ := m1.Weight(id, term)
			w2, _ := m2.Weight(id, term)
			assert.Equal(t, w1, w2, "%s/%s", id, term)
		}
	}
}

func TestFitSecondaryStopFilter(t *testing.T) {
	docs := map[string]string{"x": "markets rallied", "y": "markets slumped"}
	m, err := Fit(docs, Options{StopWord: func(w string) bool { return w == "rallied" }})
	require.NoError(t, err)
	assert.Equal(t, []string{"markets", "slumped"}, m.Vocabulary())

	m, err = Fit(newsCorpus(), Options{StopWord: stopwords.IsStopWord})
	require.NoError(t, err)
	assert.Contains(t, m.Vocabulary(), "sharply")
}

func TestFitBundledStopFilterKeepsVocabulary(t *testing.T) {
	docs := newsCorpus()
	docs["c.xml"] = `<doc><title>Just having</title><text><p>theirs doing just fine</p></text></doc>`

	plain, err := Fit(docs, Options{})
	require.NoError(t, err)
	filtered, err := Fit(docs, Options{StopWord: stopwords.IsStopWord})
	require.NoError(t, err)

	assert.Equal(t, plain.Vocabulary(), filtered.Vocabulary())
	for _, w := range []string{"just", "having", "theirs", "doing", "fine"} {
		assert.Contains(t, filtered.Vocabulary(), w)
	}
	for _, term := range plain.Vocabulary() {
		w1, _ := plain.Weight("c.xml", term)
		w2, _ := filtered.Weight("c.xml", term)
		assert.Equal(t, w1, w2, term)
	}
}

func TestFitWithStemmingAnalyzer(t *testing.T) {
	m, err := Fit(newsCorpus(), Options{Analyzer: tokenizer.New(tokenizer.Options{Stem: true})})
	require.NoError(t, err)
	assert.Contains(t, m.Vocabulary(), "market")
	assert.Contains(t, m.Vocabulary(), "concern")
	assert.NotContains(t, m.Vocabulary(), "markets")
}

func TestFitEmptyVocabulary(t *testing.T) {
	_, err := Fit(map[string]string{"x": "the of and a"}, Options{})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = Fit(nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
