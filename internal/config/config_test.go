package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "model engine",
			config: Config{
				Pipeline: PipelineConfig{Engine: EngineModel},
			},
			wantErr: false,
		},
		{
			name: "unknown engine",
			config: Config{
				Pipeline: PipelineConfig{Engine: "llm"},
			},
			wantErr: true,
		},
		{
			name: "negative keyword limit",
			config: Config{
				Pipeline: PipelineConfig{KeywordLimit: -1},
			},
			wantErr: true,
		},
		{
			name: "tighter limits",
			config: Config{
				Pipeline: PipelineConfig{MaxKeyPoints: 3, MaxQuizQuestions: 2, MinWords: 8, MaxWords: 30},
			},
			wantErr: false,
		},
		{
			name: "too many key points",
			config: Config{
				Pipeline: PipelineConfig{MaxKeyPoints: 12},
			},
			wantErr: true,
		},
		{
			name: "too many quiz questions",
			config: Config{
				Pipeline: PipelineConfig{MaxQuizQuestions: 9},
			},
			wantErr: true,
		},
		{
			name: "min words below five",
			config: Config{
				Pipeline: PipelineConfig{MinWords: 1},
			},
			wantErr: true,
		},
		{
			name: "max words above fifty",
			config: Config{
				Pipeline: PipelineConfig{MaxWords: 200},
			},
			wantErr: true,
		},
		{
			name: "min words above max words",
			config: Config{
				Pipeline: PipelineConfig{MinWords: 20, MaxWords: 10},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, EngineRules, cfg.Pipeline.Engine)
	assert.Equal(t, 5, cfg.Pipeline.KeywordLimit)
	assert.Equal(t, 7, cfg.Pipeline.MaxKeyPoints)
	assert.Equal(t, 5, cfg.Pipeline.MaxQuizQuestions)
	assert.Equal(t, 5, cfg.Pipeline.MinWords)
	assert.Equal(t, 50, cfg.Pipeline.MaxWords)
	assert.Equal(t, "data/transcripts.json", cfg.Store.Path)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.True(t, cfg.Export.DocxEnabled())
	assert.True(t, cfg.Export.MarkdownEnabled())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
pipeline:
  engine: "model"
  keyword_limit: 8

store:
  path: "db/records.json"

paths:
  input: "inbox"
  output: "out"

export:
  docx: false

logging:
  level: "debug"
  format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EngineModel, cfg.Pipeline.Engine)
	assert.Equal(t, 8, cfg.Pipeline.KeywordLimit)
	assert.Equal(t, 7, cfg.Pipeline.MaxKeyPoints)
	assert.Equal(t, "db/records.json", cfg.Store.Path)
	assert.Equal(t, "inbox", cfg.Paths.Input)
	assert.Equal(t, "data/archived", cfg.Paths.Archived)
	assert.False(t, cfg.Export.DocxEnabled())
	assert.True(t, cfg.Export.MarkdownEnabled())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: [not, a, map"), 0644))

	_, err := Load(path)
	if err == nil {
		t.Error("Load() should return error for malformed yaml")
	}
}
