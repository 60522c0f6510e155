package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/lexicon"
	"github.com/dev0l/trapp/internal/pipeline"
	"github.com/dev0l/trapp/internal/transcript"
)

var (
	generateAll bool

	exportAll bool
	exportDir string

	analyzeJSON bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [id]",
	Short: "Regenerate the study program of one transcript, or all with --all",
	Long: `Generate reruns the pipeline on a transcript's stored text and replaces its
study program. Manual item edits on that program are discarded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write study programs as markdown and .docx files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the pipeline on a file or stdin and print every stage, without storing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Regenerate every transcript")

	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every transcript with a program")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (default: paths.output)")

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if generateAll {
		if len(args) > 0 {
			return fmt.Errorf("give either an id or --all, not both")
		}
		n, err := app.service.RegenerateAll(ctx)
		fmt.Fprintf(out, "Regenerated %d transcripts\n", n)
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("give a transcript id or --all")
	}

	t, err := lookup(args[0])
	if err != nil {
		return err
	}
	t, err = app.service.Generate(ctx, t.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generated %s %q: %d key points, %d study tasks, %d quiz questions\n",
		shortID(t), t.Title, len(t.Program.KeyPoints), len(t.Program.StudyTasks), len(t.Program.QuizQuestions))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	dir := exportDir
	if dir == "" {
		dir = app.cfg.Paths.Output
	}

	if exportAll {
		if len(args) > 0 {
			return fmt.Errorf("give either an id or --all, not both")
		}
		n, err := app.exporter.ExportAll(ctx, app.store.List(), dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d transcripts to %s\n", n, dir)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("give a transcript id or --all")
	}

	t, err := lookup(args[0])
	if err != nil {
		return err
	}
	paths, err := app.exporter.Export(ctx, t, dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}

type analysisView struct {
	Language  string                `json:"language"`
	Sentences []sentenceView        `json:"sentences"`
	Keywords  []pipeline.Keyword    `json:"keywords"`
	Program   pipeline.StudyProgram `json:"program"`
}

type sentenceView struct {
	Index int      `json:"index"`
	Text  string   `json:"text"`
	Score *float64 `json:"score,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 && args[0] != "-" {
		doc, err := transcript.Read(args[0])
		if err != nil {
			return err
		}
		text = doc.Text
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = transcript.Parse(transcript.FormatText, string(data))
	}

	view := newAnalysisView(app.service.Analyze(text))
	out := cmd.OutOrStdout()

	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Fprintf(out, "Language: %s\n", view.Language)
	fmt.Fprintf(out, "Keywords: %s\n\n", formatKeywords(view.Keywords))
	fmt.Fprintln(out, "Sentences:")
	for _, s := range view.Sentences {
		score := "  -"
		if s.Score != nil {
			score = fmt.Sprintf("%3.0f", *s.Score)
		}
		fmt.Fprintf(out, "%s  [%d] %s\n", score, s.Index, s.Text)
	}

	fmt.Fprintln(out)
	printSection(out, "Key points", view.Program.KeyPoints)
	printSection(out, "Study tasks", view.Program.StudyTasks)
	printSection(out, "Quiz questions", view.Program.QuizQuestions)
	return nil
}

func newAnalysisView(a pipeline.Analysis) analysisView {
	scores := make(map[int]float64, len(a.Scored))
	for _, s := range a.Scored {
		scores[s.Sentence.Index] = s.Score
	}

	view := analysisView{
		Language:  languageName(a.Language),
		Sentences: make([]sentenceView, 0, len(a.Sentences)),
		Keywords:  a.Keywords,
		Program:   a.Program,
	}
	for _, s := range a.Sentences {
		sv := sentenceView{Index: s.Index, Text: s.Text}
		if score, ok := scores[s.Index]; ok {
			sv.Score = &score
		}
		view.Sentences = append(view.Sentences, sv)
	}
	return view
}

func languageName(tag language.Tag) string {
	if code := lexicon.Code(tag); code != "" {
		return code
	}
	return "und"
}

func formatKeywords(keywords []pipeline.Keyword) string {
	if len(keywords) == 0 {
		return "(none)"
	}
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		parts[i] = fmt.Sprintf("%s(%d)", k.Text, k.Weight)
	}
	return strings.Join(parts, ", ")
}

func printSection(out io.Writer, title string, items []string) {
	fmt.Fprintf(out, "%s:\n", title)
	for i, item := range items {
		fmt.Fprintf(out, "  %d. %s\n", i+1, item)
	}
}
