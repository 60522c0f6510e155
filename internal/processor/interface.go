package processor

import "context"

// Processor turns transcript files dropped into the inbox into stored,
// generated and exported study programs.
type Processor interface {
	// Process ingests one transcript file, generates its program, moves the
	// source file to the archive and exports the program. A failure before
	// the file is archived leaves no record behind. Paths already being
	// processed or no longer present are skipped.
	Process(ctx context.Context, path string) error
	// ProcessDir processes every supported file already present in dir and
	// returns how many it processed.
	ProcessDir(ctx context.Context, dir string) (int, error)
}
