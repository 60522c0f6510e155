// Package transcript reads lecture transcripts from disk and turns them into
// clean plain text ready for the pipeline.
package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/lexicon"
)

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatSubRip   Format = "srt"
)

var ErrUnsupportedFormat = errors.New("unsupported transcript format")

var (
	reHeading  = regexp.MustCompile(`^#{1,6}\s+`)
	reBullet   = regexp.MustCompile(`^[\-\*+]\s+`)
	reEmph     = regexp.MustCompile("\\*\\*|__|`")
	reTitleSep = regexp.MustCompile(`[_\-\s]+`)
)

// Document is a transcript read from disk.
type Document struct {
	Title  string
	Text   string
	Format Format
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".srt":
		return FormatSubRip, true
	}
	return "", false
}

// Supported reports whether path has a transcript extension.
func Supported(path string) bool {
	_, ok := FormatOf(path)
	return ok
}

// Read loads path and extracts its transcript text.
func Read(path string) (Document, error) {
	format, ok := FormatOf(path)
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read transcript: %w", err)
	}

	return Document{
		Title:  TitleFromPath(path),
		Text:   Parse(format, string(data)),
		Format: format,
	}, nil
}

// Parse extracts plain transcript text from content in the given format.
func Parse(format Format, content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	switch format {
	case FormatSubRip:
		return lexicon.CleanText(ParseSRT(content))
	case FormatMarkdown:
		return lexicon.CleanText(stripMarkdown(content))
	default:
		return lexicon.CleanText(content)
	}
}

func stripMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" {
			continue
		}
		trimmed = reHeading.ReplaceAllString(trimmed, "")
		trimmed = reBullet.ReplaceAllString(trimmed, "")
		out = append(out, reEmph.ReplaceAllString(trimmed, ""))
	}
	return strings.Join(out, "\n")
}

// TitleFromPath derives a display title from a file name:
// "lecture_03-graphs.srt" becomes "Lecture 03 Graphs".
func TitleFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.TrimSpace(reTitleSep.ReplaceAllString(base, " "))
	if base == "" {
		return ""
	}
	return cases.Title(language.Und).String(base)
}
