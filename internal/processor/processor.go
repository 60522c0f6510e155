package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dev0l/trapp/internal/store"
	"github.com/dev0l/trapp/internal/transcript"
)

// Process runs one inbox file through ingest, generate, archive and export.
// A path another call is already working on, or one that has left the inbox,
// is skipped.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	_, err := p.process(ctx, path)
	return err
}

func (p *implProcessor) process(ctx context.Context, path string) (bool, error) {
	if !p.claim(path) {
		p.logger.Debug(ctx, "Already processing %s", path)
		return false, nil
	}
	defer p.unclaim(path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		p.logger.Debug(ctx, "Skipping %s: no longer in the inbox", path)
		return false, nil
	}

	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing transcript: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Read and clean the transcript
	doc, err := transcript.Read(path)
	if err != nil {
		return false, fmt.Errorf("read transcript: %w", err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return false, fmt.Errorf("read transcript %s: %w", path, store.ErrEmptyText)
	}

	// Step 2: Store it
	added, err := p.store.Add(ctx, store.NewTranscript{
		Title:   doc.Title,
		RawText: doc.Text,
	})
	if err != nil {
		return false, fmt.Errorf("store transcript: %w", err)
	}
	p.logger.Info(ctx, "Stored %q as %s", added.Title, added.ID)

	// Step 3: Generate the study program
	generated, err := p.service.Generate(ctx, added.ID)
	if err != nil {
		p.rollback(ctx, added)
		return false, fmt.Errorf("generate program: %w", err)
	}

	// Step 4: Move the source file to the archived folder. Until it moves the
	// file stays in the inbox, so the record is dropped to keep a retry from
	// storing it twice.
	archivedPath, err := p.moveToArchived(ctx, path)
	if err != nil {
		p.rollback(ctx, added)
		return false, fmt.Errorf("archive source: %w", err)
	}

	// Step 5: Export to the output folder
	written, err := p.exporter.Export(ctx, generated, p.cfg.Paths.Output)
	if err != nil {
		p.logger.Warn(ctx, "Stored %s but export failed; rerun it with: trapp export %s", generated.ID, generated.ID.String()[:8])
		return false, fmt.Errorf("export program: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcript: %s (%s)", generated.Title, generated.ID)
	for _, w := range written {
		p.logger.Info(ctx, "Output: %s", w)
	}
	p.logger.Info(ctx, "Archived: %s", archivedPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return true, nil
}

// rollback removes a record whose file is still in the inbox. It runs even
// when ctx is already canceled.
func (p *implProcessor) rollback(ctx context.Context, t store.Transcript) {
	if err := p.store.Delete(context.WithoutCancel(ctx), t.ID); err != nil {
		p.logger.Error(ctx, "Failed to remove %s after an aborted run: %v", t.ID, err)
		return
	}
	p.logger.Debug(ctx, "Removed %s after an aborted run", t.ID)
}

// claim marks path as in progress. It reports false when another call
// already holds it.
func (p *implProcessor) claim(path string) bool {
	key := pathKey(path)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inFlight[key]; busy {
		return false
	}
	p.inFlight[key] = struct{}{}
	return true
}

func (p *implProcessor) unclaim(path string) {
	p.mu.Lock()
	delete(p.inFlight, pathKey(path))
	p.mu.Unlock()
}

func pathKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// ProcessDir sweeps files left in dir, e.g. ones dropped while the watcher
// was not running.
func (p *implProcessor) ProcessDir(ctx context.Context, dir string) (int, error) {
	files, err := discoverTranscripts(dir)
	if err != nil {
		return 0, fmt.Errorf("discover transcripts: %w", err)
	}
	if len(files) == 0 {
		p.logger.Debug(ctx, "No pending transcripts in %s", dir)
		return 0, nil
	}

	p.logger.Info(ctx, "Found %d pending transcripts in %s", len(files), dir)

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup
	var done atomic.Int64

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return int(done.Load()), err
		}
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return int(done.Load()), err
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			ok, err := p.process(ctx, path)
			if err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				return
			}
			if ok {
				done.Add(1)
			}
		}(f)
	}

	wg.Wait()
	return int(done.Load()), nil
}

func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if transcript.Supported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
