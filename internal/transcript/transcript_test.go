package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:02,500
Remember, the exam
covers recursion.

2
00:00:02,600 --> 00:00:05,000
<i>Recursion is when a function</i>
calls itself.

3
00:00:05,100 --> 00:00:06,000
calls itself.
`

func TestParseSRT(t *testing.T) {
	got := ParseSRT(sampleSRT)
	assert.Equal(t, "Remember, the exam covers recursion. Recursion is when a function calls itself.", got)
}

func TestParseSRTEmpty(t *testing.T) {
	assert.Equal(t, "", ParseSRT(""))
	assert.Equal(t, "", ParseSRT("1\n00:00:00,000 --> 00:00:01,000\n\n"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
		want    string
	}{
		{
			name:    "plain text keeps lines",
			format:  FormatText,
			content: "First  line.\r\nSecond\tline.",
			want:    "First line.\nSecond line.",
		},
		{
			name:    "byte order mark",
			format:  FormatText,
			content: "\ufeffHello there.",
			want:    "Hello there.",
		},
		{
			name:    "markdown markers stripped",
			format:  FormatMarkdown,
			content: "# Lecture notes\n- **Recursion** is key.\n---\nPlain `code` line.",
			want:    "Lecture notes\nRecursion is key.\nPlain code line.",
		},
		{
			name:    "subrip",
			format:  FormatSubRip,
			content: "1\n00:00:00,000 --> 00:00:01,000\nHej  alla.\n",
			want:    "Hej alla.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.format, tt.content))
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.txt", FormatText, true},
		{"a.MD", FormatMarkdown, true},
		{"dir/b.srt", FormatSubRip, true},
		{"movie.mp4", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FormatOf(tt.path)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, Supported(tt.path))
		})
	}
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "Lecture 03 Graphs", TitleFromPath("/in/lecture_03-graphs.srt"))
	assert.Equal(t, "Notes", TitleFromPath("notes.txt"))
	assert.Equal(t, "", TitleFromPath("___.txt"))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "week_1.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Week 1", doc.Title)
	assert.Equal(t, FormatSubRip, doc.Format)
	assert.Contains(t, doc.Text, "covers recursion. Recursion is")
}

func TestReadErrors(t *testing.T) {
	_, err := Read("clip.mp4")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
