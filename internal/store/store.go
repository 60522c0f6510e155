package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dev0l/trapp/internal/pipeline"
)

func (s *implStore) List() []Transcript {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transcript, len(s.records))
	for i, r := range s.records {
		out[i] = cloneTranscript(r)
	}
	return out
}

func (s *implStore) Get(id uuid.UUID) (Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.records, id)
	if i < 0 {
		return Transcript{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneTranscript(s.records[i]), nil
}

// Resolve maps a full id or a unique id prefix to an id.
func (s *implStore) Resolve(ref string) (uuid.UUID, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	if ref == "" {
		return uuid.Nil, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var match uuid.UUID
	found := 0
	for _, r := range s.records {
		if strings.HasPrefix(r.ID.String(), ref) {
			match = r.ID
			found++
		}
	}
	switch found {
	case 0:
		return uuid.Nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return match, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: %s matches %d transcripts", ErrAmbiguous, ref, found)
	}
}

func (s *implStore) Add(ctx context.Context, in NewTranscript) (Transcript, error) {
	if strings.TrimSpace(in.RawText) == "" {
		return Transcript{}, ErrEmptyText
	}

	t := Transcript{
		ID:        s.newID(),
		Title:     strings.TrimSpace(in.Title),
		Course:    strings.TrimSpace(in.Course),
		Date:      in.Date,
		Tags:      cloneStrings(in.Tags),
		RawText:   in.RawText,
		CreatedAt: s.now(),
	}
	if t.Title == "" {
		t.Title = "Untitled transcript"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.transact(ctx, func(records []Transcript) ([]Transcript, error) {
		return append(records, t), nil
	})
	if err != nil {
		return Transcript{}, err
	}
	s.logger.Info(ctx, "Added transcript %s (%s)", t.ID, t.Title)
	return cloneTranscript(t), nil
}

// Update replaces the stored record with the same id.
func (s *implStore) Update(ctx context.Context, t Transcript) error {
	return s.mutate(ctx, t.ID, func(r *Transcript) error {
		*r = cloneTranscript(t)
		return nil
	})
}

func (s *implStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.transact(ctx, func(records []Transcript) ([]Transcript, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return append(records[:i], records[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "Deleted transcript %s", id)
	return nil
}

// SetProgram stores program on the record, replacing any previous one.
func (s *implStore) SetProgram(ctx context.Context, id uuid.UUID, program pipeline.StudyProgram) (Transcript, error) {
	var updated Transcript
	err := s.mutate(ctx, id, func(r *Transcript) error {
		p := cloneProgram(program)
		r.Program = &p
		updated = cloneTranscript(*r)
		return nil
	})
	return updated, err
}

func (s *implStore) EditItem(ctx context.Context, id uuid.UUID, section Section, index int, text string) error {
	return s.mutateItems(ctx, id, section, func(list *[]string) error {
		if index < 0 || index >= len(*list) {
			return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(*list))
		}
		(*list)[index] = text
		return nil
	})
}

func (s *implStore) DeleteItem(ctx context.Context, id uuid.UUID, section Section, index int) error {
	return s.mutateItems(ctx, id, section, func(list *[]string) error {
		if index < 0 || index >= len(*list) {
			return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(*list))
		}
		*list = append((*list)[:index], (*list)[index+1:]...)
		return nil
	})
}

// MoveItem removes the item at from and reinserts it so it ends up at to.
func (s *implStore) MoveItem(ctx context.Context, id uuid.UUID, section Section, from, to int) error {
	return s.mutateItems(ctx, id, section, func(list *[]string) error {
		n := len(*list)
		if from < 0 || from >= n || to < 0 || to >= n {
			return fmt.Errorf("%w: move %d -> %d of %d", ErrIndexOutOfRange, from, to, n)
		}
		item := (*list)[from]
		rest := append((*list)[:from:from], (*list)[from+1:]...)
		moved := make([]string, 0, n)
		moved = append(moved, rest[:to]...)
		moved = append(moved, item)
		moved = append(moved, rest[to:]...)
		*list = moved
		return nil
	})
}

func (s *implStore) AppendItem(ctx context.Context, id uuid.UUID, section Section, text string) error {
	return s.mutateItems(ctx, id, section, func(list *[]string) error {
		*list = append(*list, text)
		return nil
	})
}

func (s *implStore) mutateItems(ctx context.Context, id uuid.UUID, section Section, fn func(list *[]string) error) error {
	return s.mutate(ctx, id, func(r *Transcript) error {
		if r.Program == nil {
			return fmt.Errorf("%w: %s", ErrNoProgram, id)
		}
		list, err := items(r.Program, section)
		if err != nil {
			return err
		}
		return fn(list)
	})
}

// mutate applies fn to the record with id in the current on-disk collection
// and persists the result.
func (s *implStore) mutate(ctx context.Context, id uuid.UUID, fn func(r *Transcript) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transact(ctx, func(records []Transcript) ([]Transcript, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err := fn(&records[i]); err != nil {
			return nil, err
		}
		records[i].ID = id
		return records, nil
	})
}

func cloneAll(records []Transcript) []Transcript {
	out := make([]Transcript, len(records), len(records)+1)
	for i, r := range records {
		out[i] = cloneTranscript(r)
	}
	return out
}

func indexOf(records []Transcript, id uuid.UUID) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
