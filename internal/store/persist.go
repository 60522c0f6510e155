package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const lockRetryDelay = 50 * time.Millisecond

var errMalformed = errors.New("malformed store document")

// Load reads the document at the store path. A missing file starts an empty
// store. A malformed file is renamed aside and the store starts empty.
func (s *implStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	records, err := s.read()
	switch {
	case err == nil && records == nil:
		s.logger.Info(ctx, "No transcript store at %s, starting empty", s.path)
	case err == nil:
		s.records = records
		s.logger.Info(ctx, "Loaded %d transcripts from %s", len(records), s.path)
	case errors.Is(err, errMalformed):
		backup := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().Format("20060102T150405"))
		s.logger.Error(ctx, "Malformed transcript store %s: %v", s.path, err)
		if err := os.Rename(s.path, backup); err != nil {
			s.logger.Warn(ctx, "Failed to move malformed store aside: %v", err)
		} else {
			s.logger.Warn(ctx, "Malformed store moved to %s", backup)
		}
	default:
		s.logger.Error(ctx, "Failed to read transcript store %s: %v", s.path, err)
	}
}

// transact applies fn to the collection as it is on disk right now, holding
// the cross-process file lock from read to write, so changes made by other
// processes since Load are never overwritten. On success the written
// collection becomes the in-memory one. Callers hold s.mu.
func (s *implStore) transact(ctx context.Context, fn func(records []Transcript) ([]Transcript, error)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock store: %s is held by another process", s.lock.Path())
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn(ctx, "Failed to unlock store: %v", err)
		}
	}()

	current, err := s.read()
	if err != nil {
		return fmt.Errorf("reload store: %w", err)
	}
	s.records = current

	next, err := fn(cloneAll(current))
	if err != nil {
		return err
	}

	if err := s.write(ctx, next); err != nil {
		s.logger.Error(ctx, "Failed to persist transcript store: %v", err)
		return fmt.Errorf("persist store: %w", err)
	}
	s.records = next
	return nil
}

// read decodes the document. A missing file yields nil records.
func (s *implStore) read() ([]Transcript, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []Transcript
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if records == nil {
		records = []Transcript{}
	}
	return records, nil
}

// write replaces the document with records: temp file, then rename.
// Callers hold the file lock.
func (s *implStore) write(ctx context.Context, records []Transcript) error {
	if records == nil {
		records = []Transcript{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename store: %w", err)
	}

	s.logger.Debug(ctx, "Saved %d transcripts to %s", len(records), s.path)
	return nil
}
