package processor

import (
	"sync"

	"github.com/dev0l/trapp/internal/config"
	"github.com/dev0l/trapp/internal/exporter"
	"github.com/dev0l/trapp/internal/logger"
	"github.com/dev0l/trapp/internal/service"
	"github.com/dev0l/trapp/internal/store"
)

type implProcessor struct {
	cfg      *config.Config
	store    store.Store
	service  service.Service
	exporter exporter.Exporter
	logger   logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a new Processor instance
func New(cfg *config.Config, st store.Store, svc service.Service, exp exporter.Exporter, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		store:    st,
		service:  svc,
		exporter: exp,
		logger:   log,
		inFlight: make(map[string]struct{}),
	}
}
