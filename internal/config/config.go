package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EngineRules = "rules"
	EngineModel = "model"
)

type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Store       StoreConfig       `yaml:"store"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PipelineConfig struct {
	Engine           string `yaml:"engine"`
	KeywordLimit     int    `yaml:"keyword_limit"`
	MaxKeyPoints     int    `yaml:"max_key_points"`
	MaxQuizQuestions int    `yaml:"max_quiz_questions"`
	MinWords         int    `yaml:"min_words"`
	MaxWords         int    `yaml:"max_words"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type ExportConfig struct {
	Docx     *bool `yaml:"docx"`
	Markdown *bool `yaml:"markdown"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML configuration file. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DocxEnabled reports whether .docx export is on (default true).
func (e ExportConfig) DocxEnabled() bool {
	return e.Docx == nil || *e.Docx
}

// MarkdownEnabled reports whether markdown export is on (default true).
func (e ExportConfig) MarkdownEnabled() bool {
	return e.Markdown == nil || *e.Markdown
}

func (c *Config) Validate() error {
	switch c.Pipeline.Engine {
	case "":
		c.Pipeline.Engine = EngineRules
	case EngineRules, EngineModel:
	default:
		return fmt.Errorf("pipeline.engine must be %q or %q, got %q", EngineRules, EngineModel, c.Pipeline.Engine)
	}

	if c.Pipeline.KeywordLimit < 0 {
		return fmt.Errorf("pipeline.keyword_limit must be positive")
	}
	if c.Pipeline.MaxKeyPoints < 0 {
		return fmt.Errorf("pipeline.max_key_points must be positive")
	}
	if c.Pipeline.MaxQuizQuestions < 0 {
		return fmt.Errorf("pipeline.max_quiz_questions must be positive")
	}
	if c.Pipeline.MinWords < 0 || c.Pipeline.MaxWords < 0 {
		return fmt.Errorf("pipeline word bounds must be positive")
	}

	if c.Pipeline.KeywordLimit == 0 {
		c.Pipeline.KeywordLimit = 5
	}
	if c.Pipeline.MaxKeyPoints == 0 {
		c.Pipeline.MaxKeyPoints = 7
	}
	if c.Pipeline.MaxQuizQuestions == 0 {
		c.Pipeline.MaxQuizQuestions = 5
	}
	if c.Pipeline.MinWords == 0 {
		c.Pipeline.MinWords = 5
	}
	if c.Pipeline.MaxWords == 0 {
		c.Pipeline.MaxWords = 50
	}
	if c.Pipeline.MaxKeyPoints > 7 {
		return fmt.Errorf("pipeline.max_key_points must be at most 7, got %d", c.Pipeline.MaxKeyPoints)
	}
	if c.Pipeline.MaxQuizQuestions > 5 {
		return fmt.Errorf("pipeline.max_quiz_questions must be at most 5, got %d", c.Pipeline.MaxQuizQuestions)
	}
	if c.Pipeline.MinWords < 5 {
		return fmt.Errorf("pipeline.min_words must be at least 5, got %d", c.Pipeline.MinWords)
	}
	if c.Pipeline.MaxWords > 50 {
		return fmt.Errorf("pipeline.max_words must be at most 50, got %d", c.Pipeline.MaxWords)
	}
	if c.Pipeline.MinWords > c.Pipeline.MaxWords {
		return fmt.Errorf("pipeline.min_words (%d) exceeds pipeline.max_words (%d)", c.Pipeline.MinWords, c.Pipeline.MaxWords)
	}

	if c.Store.Path == "" {
		c.Store.Path = "data/transcripts.json"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/programs"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
