package pipeline

// Generator turns transcript text into a StudyProgram. Implementations are
// stateless and safe for concurrent use.
type Generator interface {
	Generate(text string) StudyProgram
	Analyze(text string) Analysis
}
