// Package pipeline wires the corpus loader, the TF-IDF model and the
// summarizer into one run: load → fit → summarize.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oarkflow/xid"
	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/keyterms/nlp/config"
	"github.com/oarkflow/keyterms/nlp/corpus"
	"github.com/oarkflow/keyterms/nlp/export"
	"github.com/oarkflow/keyterms/nlp/stopwords"
	"github.com/oarkflow/keyterms/nlp/summarization"
	"github.com/oarkflow/keyterms/nlp/tfidf"
	"github.com/oarkflow/keyterms/nlp/tokenizer"
)

var (
	ErrNotLoaded       = errors.New("pipeline: model not fitted")
	ErrUnknownDocument = errors.New("pipeline: unknown document")
)

type Pipeline struct {
	cfg        config.Config
	logger     *slog.Logger
	summarizer *summarization.Summarizer

	corpus corpus.Corpus
	model  *tfidf.Model
}

// New returns an unloaded pipeline. A nil logger means slog.Default().
func New(cfg config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     logger.With("run_id", xid.New().String()),
		summarizer: cfg.Summarizer(),
	}
}

// Load reads the configured corpus archive and fits the model on it.
func (p *Pipeline) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	c, err := corpus.Load(p.cfg.Corpus)
	if err != nil {
		return err
	}
	p.logger.Info("corpus loaded", "path", p.cfg.Corpus, "documents", len(c), "elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Fit(c)
}

// Fit fits the model on c and keeps c for lookups by document id.
func (p *Pipeline) Fit(c corpus.Corpus) error {
	opts := tfidf.Options{Analyzer: tokenizer.New(tokenizer.Options{Stem: p.cfg.Stem})}
	if p.cfg.SecondaryStopWords {
		opts.StopWord = stopwords.IsStopWord
	}

	start := time.Now()
	m, err := tfidf.Fit(c, opts)
	if err != nil {
		return fmt.Errorf("pipeline: fit: %w", err)
	}
	p.corpus, p.model = c, m
	p.logger.Info("model fitted",
		"documents", m.NumDocs(),
		"terms", len(m.Vocabulary()),
		"stem", p.cfg.Stem,
		"elapsed", time.Since(start))
	return nil
}

// Model returns the fitted model, or nil before Load or Fit.
func (p *Pipeline) Model() *tfidf.Model { return p.model }

// Corpus returns the corpus the model was fitted on.
func (p *Pipeline) Corpus() corpus.Corpus { return p.corpus }

// Summarize returns the keywords of corpus document id.
func (p *Pipeline) Summarize(id string) ([]summarization.Term, error) {
	if p.model == nil {
		return nil, ErrNotLoaded
	}
	text, ok := p.corpus[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, id)
	}
	terms, err := p.summarizer.Summarize(p.model, text)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", id, err)
	}
	p.logger.Debug("document summarized", "document", id, "keywords", len(terms))
	return terms, nil
}

// SummarizeText returns the keywords of an arbitrary document.
func (p *Pipeline) SummarizeText(text string) ([]summarization.Term, error) {
	if p.model == nil {
		return nil, ErrNotLoaded
	}
	return p.summarizer.Summarize(p.model, text)
}

// SummarizeAll summarizes ids, or the whole corpus when ids is empty, on
// up to cfg.Workers goroutines. Reports come back in input order; the
// first error cancels the remaining work.
func (p *Pipeline) SummarizeAll(ctx context.Context, ids []string) ([]export.Report, error) {
	if p.model == nil {
		return nil, ErrNotLoaded
	}
	if len(ids) == 0 {
		ids = p.corpus.IDs()
	}

	reports := make([]export.Report, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Workers, 1))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			terms, err := p.Summarize(id)
			if err != nil {
				return err
			}
			reports[i] = export.Report{Document: id, Keywords: terms}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.logger.Error("summarize failed", "err", err)
		return nil, err
	}
	p.logger.Info("summaries ready", "documents", len(reports))
	return reports, nil
}
