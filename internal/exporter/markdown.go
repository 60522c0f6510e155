package exporter

import (
	"fmt"
	"strings"

	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/store"
)

const (
	timeLayout = "2006-01-02 15:04"
	dateLayout = "2006-01-02"
	emptyItems = "_No items generated. Try a longer transcript._"
	noProgram  = "_No study program generated yet._"
)

// Markdown renders t and its study program as a markdown document.
func Markdown(t store.Transcript) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)

	var meta []string
	if t.Course != "" {
		meta = append(meta, "**Course:** "+t.Course)
	}
	if t.Date != nil {
		meta = append(meta, "**Date:** "+t.Date.Format(dateLayout))
	}
	if len(t.Tags) > 0 {
		meta = append(meta, "**Tags:** "+strings.Join(t.Tags, ", "))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, "  \n"))
		b.WriteString("\n\n")
	}

	if t.Program == nil {
		b.WriteString(noProgram + "\n")
		return b.String()
	}
	writeProgram(&b, *t.Program)
	return b.String()
}

func writeProgram(b *strings.Builder, p pipeline.StudyProgram) {
	writeSection(b, "Key Points", p.KeyPoints)
	writeSection(b, "Study Tasks", p.StudyTasks)
	writeSection(b, "Quiz Questions", p.QuizQuestions)

	if len(p.Keywords) > 0 {
		b.WriteString("## Keywords\n\n")
		for _, k := range p.Keywords {
			fmt.Fprintf(b, "- %s (%d)\n", k.Text, k.Weight)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(b, "_Generated %s_\n", p.GeneratedAt.Format(timeLayout))
}

func writeSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString(emptyItems + "\n\n")
		return
	}
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}
