package exporter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev0l/trapp/internal/logger"
	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/store"
)

var generated = time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

func sampleTranscript() store.Transcript {
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return store.Transcript{
		ID:      uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		Title:   "Lecture 1: Recursion",
		Course:  "CS101",
		Date:    &date,
		Tags:    []string{"exam", "week1"},
		RawText: "Remember, the exam covers recursion.",
		Program: &pipeline.StudyProgram{
			KeyPoints:     []string{"Remember, the exam covers recursion."},
			StudyTasks:    []string{"Explain the concept of **recursion** in your own words."},
			QuizQuestions: nil,
			Keywords:      []pipeline.Keyword{{Text: "recursion", Weight: 2}},
			GeneratedAt:   generated,
		},
	}
}

func TestMarkdown(t *testing.T) {
	want := "# Lecture 1: Recursion\n\n" +
		"**Course:** CS101  \n**Date:** 2026-10-01  \n**Tags:** exam, week1\n\n" +
		"## Key Points\n\n1. Remember, the exam covers recursion.\n\n" +
		"## Study Tasks\n\n1. Explain the concept of **recursion** in your own words.\n\n" +
		"## Quiz Questions\n\n_No items generated. Try a longer transcript._\n\n" +
		"## Keywords\n\n- recursion (2)\n\n" +
		"---\n\n_Generated 2026-10-17 08:30_\n"

	assert.Equal(t, want, Markdown(sampleTranscript()))
}

func TestMarkdownWithoutProgram(t *testing.T) {
	tr := store.Transcript{Title: "Draft"}
	assert.Equal(t, "# Draft\n\n_No study program generated yet._\n", Markdown(tr))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation collapsed", "Lecture 1: Recursion", "lecture-1-recursion-0f8fad5b"},
		{"non-ascii letters kept", "Föreläsning Å", "föreläsning-å-0f8fad5b"},
		{"empty title", "  ", "0f8fad5b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := sampleTranscript()
			tr.Title = tt.title
			assert.Equal(t, tt.want, FileName(tr))
		})
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exp := New(logger.NewNop(), Options{Markdown: true, Docx: true})

	paths, err := exp.Export(context.Background(), sampleTranscript(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	md, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, Markdown(sampleTranscript()), string(md))
	assert.Equal(t, ".md", filepath.Ext(paths[0]))

	docx, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, ".docx", filepath.Ext(paths[1]))
	assert.True(t, bytes.HasPrefix(docx, []byte("PK")), "docx should be a zip archive")
}

func TestExportFormats(t *testing.T) {
	dir := t.TempDir()

	paths, err := New(logger.NewNop(), Options{Markdown: true}).Export(context.Background(), sampleTranscript(), dir)
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	paths, err = New(logger.NewNop(), Options{}).Export(context.Background(), sampleTranscript(), dir)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExportWithoutProgram(t *testing.T) {
	tr := sampleTranscript()
	tr.Program = nil

	_, err := New(logger.NewNop(), Options{Markdown: true}).Export(context.Background(), tr, t.TempDir())
	assert.ErrorIs(t, err, store.ErrNoProgram)
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	withProgram := sampleTranscript()
	draft := sampleTranscript()
	draft.ID = uuid.New()
	draft.Program = nil

	n, err := New(logger.NewNop(), Options{Markdown: true}).
		ExportAll(context.Background(), []store.Transcript{withProgram, draft}, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
