package exporter

import (
	"github.com/dev0l/trapp/internal/logger"
)

// Options selects the formats Export writes. With both off nothing is
// written.
type Options struct {
	Markdown bool
	Docx     bool
}

type implExporter struct {
	logger logger.Logger
	opts   Options
}

// New creates an Exporter writing the formats enabled in opts.
func New(log logger.Logger, opts Options) Exporter {
	return &implExporter{
		logger: log,
		opts:   opts,
	}
}
