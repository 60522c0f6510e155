package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed source file into the archived folder.
// An existing file with the same name is never overwritten; a timestamp is
// appended instead.
func (p *implProcessor) moveToArchived(ctx context.Context, srcPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return "", fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(srcPath))
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(destPath)
		destPath = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(destPath, ext), time.Now().Format("20060102T150405.000"), ext)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat archived file: %w", err)
	}

	p.logger.Debug(ctx, "Moving to archived folder: %s -> %s", srcPath, destPath)

	if err := os.Rename(srcPath, destPath); err != nil {
		return "", fmt.Errorf("move to archived: %w", err)
	}

	return destPath, nil
}
