package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/dev0l/trapp/internal/pipeline"
)

// Store owns the transcript collection, persisted as a single document.
// Load reads it on start. Every mutation re-reads the document under a file
// lock, applies its change and rewrites it, so stores in several processes
// sharing one path do not lose each other's updates. A mutation whose write
// fails leaves the collection unchanged.
type Store interface {
	Load(ctx context.Context)
	List() []Transcript
	Get(id uuid.UUID) (Transcript, error)
	Resolve(ref string) (uuid.UUID, error)

	Add(ctx context.Context, in NewTranscript) (Transcript, error)
	Update(ctx context.Context, t Transcript) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetProgram(ctx context.Context, id uuid.UUID, program pipeline.StudyProgram) (Transcript, error)

	EditItem(ctx context.Context, id uuid.UUID, section Section, index int, text string) error
	DeleteItem(ctx context.Context, id uuid.UUID, section Section, index int) error
	MoveItem(ctx context.Context, id uuid.UUID, section Section, from, to int) error
	AppendItem(ctx context.Context, id uuid.UUID, section Section, text string) error
}
