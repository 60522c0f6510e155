package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/store"
)

// Service generates study programs for stored transcripts and merges them
// back into the store.
type Service interface {
	// Generate runs the pipeline on the transcript's raw text and replaces its
	// program. Concurrent calls for the same id share one run.
	Generate(ctx context.Context, id uuid.UUID) (store.Transcript, error)
	// RegenerateAll regenerates every transcript and returns how many succeeded.
	RegenerateAll(ctx context.Context) (int, error)
	// Analyze runs the pipeline on text without touching the store.
	Analyze(text string) pipeline.Analysis
}
