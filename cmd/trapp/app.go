package main

import (
	"context"
	"fmt"

	"github.com/dev0l/trapp/internal/config"
	"github.com/dev0l/trapp/internal/exporter"
	"github.com/dev0l/trapp/internal/logger"
	"github.com/dev0l/trapp/internal/nlp"
	"github.com/dev0l/trapp/internal/nlp/model"
	"github.com/dev0l/trapp/internal/nlp/rulebased"
	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/service"
	"github.com/dev0l/trapp/internal/store"
)

// application holds the wired dependencies shared by every command.
type application struct {
	cfg       *config.Config
	log       logger.Logger
	generator pipeline.Generator
	store     store.Store
	service   service.Service
	exporter  exporter.Exporter
}

func newApplication(path, engineOverride string, debug bool) (*application, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if engineOverride != "" {
		cfg.Pipeline.Engine = engineOverride
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	return wire(cfg, log), nil
}

func wire(cfg *config.Config, log logger.Logger) *application {
	ctx := context.Background()

	gen := pipeline.New(engineFor(cfg.Pipeline.Engine), pipeline.Options{
		KeywordLimit:     cfg.Pipeline.KeywordLimit,
		MaxKeyPoints:     cfg.Pipeline.MaxKeyPoints,
		MaxQuizQuestions: cfg.Pipeline.MaxQuizQuestions,
		MinWords:         cfg.Pipeline.MinWords,
		MaxWords:         cfg.Pipeline.MaxWords,
	})

	st := store.New(cfg.Store.Path, log)
	st.Load(ctx)

	log.Debug(ctx, "Engine: %s, store: %s", cfg.Pipeline.Engine, cfg.Store.Path)

	return &application{
		cfg:       cfg,
		log:       log,
		generator: gen,
		store:     st,
		service:   service.New(st, gen, log, cfg.Performance.MaxConcurrent),
		exporter: exporter.New(log, exporter.Options{
			Markdown: cfg.Export.MarkdownEnabled(),
			Docx:     cfg.Export.DocxEnabled(),
		}),
	}
}

func engineFor(name string) nlp.Engine {
	if name == config.EngineModel {
		return model.New()
	}
	return rulebased.New()
}
