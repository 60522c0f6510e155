package store

import (
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/dev0l/trapp/internal/logger"
)

type implStore struct {
	path    string
	lock    *flock.Flock
	logger  logger.Logger
	now     func() time.Time
	newID   func() uuid.UUID
	mu      sync.RWMutex
	records []Transcript
}

// New creates a Store persisted at path. Call Load before use.
func New(path string, log logger.Logger) Store {
	return newStore(path, log)
}

func newStore(path string, log logger.Logger) *implStore {
	return &implStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.New,
	}
}
