package exporter

import (
	"context"

	"github.com/dev0l/trapp/internal/store"
)

// Exporter writes study programs to disk as markdown and/or .docx files.
type Exporter interface {
	// Export writes every enabled format for t into destDir and returns the
	// written paths.
	Export(ctx context.Context, t store.Transcript, destDir string) ([]string, error)
	// ExportAll exports each transcript that has a program. Failures are
	// logged and counted; the returned error is non-nil only when destDir
	// cannot be created.
	ExportAll(ctx context.Context, records []store.Transcript, destDir string) (int, error)
}
