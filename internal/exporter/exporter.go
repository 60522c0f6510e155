package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dev0l/trapp/internal/lexicon"
	"github.com/dev0l/trapp/internal/store"
)

var reSlugStrip = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func (e *implExporter) Export(ctx context.Context, t store.Transcript, destDir string) ([]string, error) {
	if t.Program == nil {
		return nil, fmt.Errorf("export %s: %w", t.ID, store.ErrNoProgram)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	md := Markdown(t)
	base := filepath.Join(destDir, FileName(t))

	var written []string
	if e.opts.Markdown {
		mdPath := base + ".md"
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			return written, fmt.Errorf("write markdown: %w", err)
		}
		written = append(written, mdPath)
	}

	if e.opts.Docx {
		docxPath := base + ".docx"
		if err := markdownToDocx(md, docxPath); err != nil {
			return written, fmt.Errorf("write docx: %w", err)
		}
		written = append(written, docxPath)
	}

	if len(written) == 0 {
		e.logger.Warn(ctx, "No export formats enabled, nothing written for %q", t.Title)
	}
	return written, nil
}

func (e *implExporter) ExportAll(ctx context.Context, records []store.Transcript, destDir string) (int, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("create dest dir: %w", err)
	}

	successCount := 0
	failCount := 0
	for i, t := range records {
		if err := ctx.Err(); err != nil {
			return successCount, err
		}
		if t.Program == nil {
			e.logger.Debug(ctx, "[%d/%d] Skipping %q: no program", i+1, len(records), t.Title)
			continue
		}

		paths, err := e.Export(ctx, t, destDir)
		if err != nil {
			e.logger.Error(ctx, "Failed to export %q: %v", t.Title, err)
			failCount++
			continue
		}
		e.logger.Info(ctx, "[%d/%d] %q -> %s", i+1, len(records), t.Title, strings.Join(paths, ", "))
		successCount++
	}

	e.logger.Info(ctx, "Export complete: %d success, %d failed", successCount, failCount)
	return successCount, nil
}

// FileName returns the extension-less export file name for t: a slug of the
// title followed by the first eight characters of the id.
func FileName(t store.Transcript) string {
	slug := strings.Trim(reSlugStrip.ReplaceAllString(lexicon.Normalize(t.Title), "-"), "-")
	short := t.ID.String()[:8]
	if slug == "" {
		return short
	}
	if r := []rune(slug); len(r) > 60 {
		slug = strings.TrimRight(string(r[:60]), "-")
	}
	return slug + "-" + short
}
