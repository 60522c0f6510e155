package service

import (
	"golang.org/x/sync/singleflight"

	"github.com/dev0l/trapp/internal/logger"
	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/store"
)

type implService struct {
	store         store.Store
	generator     pipeline.Generator
	logger        logger.Logger
	maxConcurrent int
	inflight      singleflight.Group
}

// New creates a Service. maxConcurrent bounds RegenerateAll fan-out.
func New(st store.Store, gen pipeline.Generator, log logger.Logger, maxConcurrent int) Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	return &implService{
		store:         st,
		generator:     gen,
		logger:        log,
		maxConcurrent: maxConcurrent,
	}
}
