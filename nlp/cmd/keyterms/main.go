package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oarkflow/keyterms/nlp/config"
	"github.com/oarkflow/keyterms/nlp/export"
	"github.com/oarkflow/keyterms/nlp/logging"
	"github.com/oarkflow/keyterms/nlp/pipeline"
)

type docList []string

func (d *docList) String() string { return strings.Join(*d, ",") }

func (d *docList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "keyterms:", err)
		os.Exit(1)
	}
}

func run() error {
	var docs docList
	cfgPath := flag.String("config", "", "YAML configuration file")
	corpusPath := flag.String("corpus", "", "zip archive of documents (overrides config)")
	topN := flag.Int("n", 0, "keywords per document (overrides config)")
	jsonl := flag.Bool("jsonl", false, "write one JSON object per line instead of an array")
	flag.Var(&docs, "doc", "document to summarize; repeatable, defaults to every document")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *corpusPath != "" {
		cfg.Corpus = *corpusPath
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if cfg.Corpus == "" {
		return fmt.Errorf("no corpus: set -corpus, corpus in the config file, or KEYTERMS_CORPUS")
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(*cfg, logger)
	if err := p.Load(ctx); err != nil {
		return err
	}
	reports, err := p.SummarizeAll(ctx, docs)
	if err != nil {
		return err
	}
	if *jsonl {
		return export.WriteJSONLines(os.Stdout, reports)
	}
	return export.WriteJSON(os.Stdout, reports)
}
