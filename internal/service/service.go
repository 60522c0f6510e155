package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/store"
)

func (s *implService) Generate(ctx context.Context, id uuid.UUID) (store.Transcript, error) {
	v, err, shared := s.inflight.Do(id.String(), func() (interface{}, error) {
		return s.generate(ctx, id)
	})
	if err != nil {
		return store.Transcript{}, err
	}
	if shared {
		s.logger.Debug(ctx, "Joined in-flight generation for %s", id)
	}
	return v.(store.Transcript), nil
}

func (s *implService) generate(ctx context.Context, id uuid.UUID) (store.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return store.Transcript{}, err
	}

	t, err := s.store.Get(id)
	if err != nil {
		return store.Transcript{}, fmt.Errorf("load transcript: %w", err)
	}

	start := time.Now()
	program := s.generator.Generate(t.RawText)

	updated, err := s.store.SetProgram(ctx, id, program)
	if err != nil {
		return store.Transcript{}, fmt.Errorf("save program: %w", err)
	}

	s.logger.Info(ctx, "Generated program for %q: %d key points, %d tasks, %d questions (%s)",
		t.Title, len(program.KeyPoints), len(program.StudyTasks), len(program.QuizQuestions), time.Since(start))
	return updated, nil
}

func (s *implService) RegenerateAll(ctx context.Context) (int, error) {
	records := s.store.List()
	if len(records) == 0 {
		s.logger.Info(ctx, "No transcripts to regenerate")
		return 0, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	var done atomic.Int64
	for _, r := range records {
		id := r.ID
		g.Go(func() error {
			if _, err := s.Generate(gctx, id); err != nil {
				return fmt.Errorf("regenerate %s: %w", id, err)
			}
			done.Add(1)
			return nil
		})
	}

	err := g.Wait()
	s.logger.Info(ctx, "Regenerated %d of %d transcripts", done.Load(), len(records))
	return int(done.Load()), err
}

func (s *implService) Analyze(text string) pipeline.Analysis {
	return s.generator.Analyze(text)
}
