package pipeline

import (
	"time"

	"golang.org/x/text/language"
)

// Sentence is a trimmed, non-empty sentence and its position in the source.
type Sentence struct {
	Text  string
	Index int
}

// Keyword is a ranked keyword. Text keeps the display case; matching uses
// its normalized form.
type Keyword struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// ScoredSentence pairs a sentence with its importance score (always >= 1).
type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// StudyProgram is the generated study material for one transcript.
type StudyProgram struct {
	KeyPoints     []string  `json:"keyPoints"`
	StudyTasks    []string  `json:"studyTasks"`
	QuizQuestions []string  `json:"quizQuestions"`
	Keywords      []Keyword `json:"keywords"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// Analysis exposes every intermediate stage of one run next to its program.
type Analysis struct {
	Sentences []Sentence
	Language  language.Tag
	Keywords  []Keyword
	Scored    []ScoredSentence
	Program   StudyProgram
}

// KeywordTexts returns the display text of each keyword.
func KeywordTexts(keywords []Keyword) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = k.Text
	}
	return out
}
