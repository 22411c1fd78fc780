package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/keyterms/nlp/summarization"
)

// Log configures the process logger.
type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Config struct {
	Corpus             string  `yaml:"corpus"`
	TopN               int     `yaml:"top_n"`
	Threshold          float64 `yaml:"threshold"`
	Strict             bool    `yaml:"strict"`
	Stem               bool    `yaml:"stem"`
	SecondaryStopWords bool    `yaml:"secondary_stop_words"`
	Workers            int     `yaml:"workers"`
	Log                Log     `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TopN:               summarization.DefaultTopN,
		Threshold:          summarization.DefaultThreshold,
		SecondaryStopWords: true,
		Workers:            4,
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// KEYTERMS_* environment overrides. An empty path skips the file. A .env
// file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.TopN <= 0:
		return fmt.Errorf("config: top_n must be positive, got %d", c.TopN)
	case c.Threshold < 0 || c.Threshold >= 1:
		return fmt.Errorf("config: threshold must be in [0,1), got %g", c.Threshold)
	case c.Workers <= 0:
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Summarizer returns the summarizer described by c.
func (c *Config) Summarizer() *summarization.Summarizer {
	return &summarization.Summarizer{TopN: c.TopN, Threshold: c.Threshold, Strict: c.Strict}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("KEYTERMS_CORPUS"); ok {
		c.Corpus = v
	}
	if v, ok := os.LookupEnv("KEYTERMS_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("KEYTERMS_LOG_FILE"); ok {
		c.Log.File = v
	}
	ints := map[string]*int{
		"KEYTERMS_TOP_N":   &c.TopN,
		"KEYTERMS_WORKERS": &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = n
		}
	}
	bools := map[string]*bool{
		"KEYTERMS_STRICT":               &c.Strict,
		"KEYTERMS_STEM":                 &c.Stem,
		"KEYTERMS_SECONDARY_STOP_WORDS": &c.SecondaryStopWords,
	}
	for key, dst := range bools {
		if v, ok := os.LookupEnv(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = b
		}
	}
	if v, ok := os.LookupEnv("KEYTERMS_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: KEYTERMS_THRESHOLD: %w", err)
		}
		c.Threshold = f
	}
	return nil
}
