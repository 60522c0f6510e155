package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dev0l/trapp/internal/exporter"
	"github.com/dev0l/trapp/internal/store"
	"github.com/dev0l/trapp/internal/transcript"
)

var (
	addTitle      string
	addCourse     string
	addDate       string
	addTags       []string
	addNoGenerate bool

	listJSON bool
	showRaw  bool
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add a transcript from a .txt, .md or .srt file, or from stdin",
	Long: `Add stores a new transcript and generates its study program.

With no file, or with "-", the transcript is read from stdin as plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored transcripts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a transcript's study program",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transcript and its study program",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Title (default: derived from file name)")
	addCmd.Flags().StringVar(&addCourse, "course", "", "Course name")
	addCmd.Flags().StringVar(&addDate, "date", "", "Lecture date (YYYY-MM-DD)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().BoolVar(&addNoGenerate, "no-generate", false, "Store without generating a program")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print as JSON")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print markdown without terminal styling")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var doc transcript.Document
	if len(args) == 1 && args[0] != "-" {
		d, err := transcript.Read(args[0])
		if err != nil {
			return err
		}
		doc = d
	} else {
		if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
			return fmt.Errorf("no transcript given: pass a file or pipe text on stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		doc = transcript.Document{
			Text:   transcript.Parse(transcript.FormatText, string(data)),
			Format: transcript.FormatText,
		}
	}

	in := store.NewTranscript{
		Title:   doc.Title,
		Course:  addCourse,
		Tags:    addTags,
		RawText: doc.Text,
	}
	if addTitle != "" {
		in.Title = addTitle
	}
	if addDate != "" {
		d, err := time.Parse("2006-01-02", addDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", addDate, err)
		}
		in.Date = &d
	}

	added, err := app.store.Add(ctx, in)
	if err != nil {
		return err
	}

	if !addNoGenerate {
		if added, err = app.service.Generate(ctx, added.ID); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", shortID(added), added.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	records := app.store.List()
	out := cmd.OutOrStdout()

	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No transcripts yet. Add one with: trapp add <file>")
		return nil
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "TITLE", "COURSE", "DATE", "PROGRAM")

	for _, r := range records {
		date := r.CreatedAt.Format("2006-01-02")
		if r.Date != nil {
			date = r.Date.Format("2006-01-02")
		}
		program := "-"
		if r.Program != nil {
			program = fmt.Sprintf("%d/%d/%d", len(r.Program.KeyPoints), len(r.Program.StudyTasks), len(r.Program.QuizQuestions))
		}
		tbl.Row(shortID(r), r.Title, r.Course, date, program)
	}

	_, err := fmt.Fprintln(out, tbl.String())
	return err
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := lookup(args[0])
	if err != nil {
		return err
	}

	md := exporter.Markdown(t)
	if showRaw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithEnvironmentConfig(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

func runDelete(cmd *cobra.Command, args []string) error {
	t, err := lookup(args[0])
	if err != nil {
		return err
	}
	if err := app.store.Delete(cmd.Context(), t.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %q\n", shortID(t), t.Title)
	return nil
}

// lookup resolves a full id or unique id prefix to its transcript.
func lookup(ref string) (store.Transcript, error) {
	id, err := app.store.Resolve(strings.TrimSpace(ref))
	if err != nil {
		return store.Transcript{}, err
	}
	return app.store.Get(id)
}

func shortID(t store.Transcript) string {
	return t.ID.String()[:8]
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
