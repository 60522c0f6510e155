package pipeline

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/nlp"
)

// minDetectWords is the shortest text handed to a language detector.
const minDetectWords = 3

// Segment splits text into ordered sentences. Every line break ends a
// sentence, so no sentence spans a paragraph. Whitespace-only input yields
// an empty slice.
func Segment(tok nlp.Tokenizer, text string) []Sentence {
	out := make([]Sentence, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, s := range tok.Sentences(line) {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, Sentence{Text: s, Index: len(out)})
		}
	}
	return out
}

// DetectLanguage returns the dominant language of text, or language.Und when
// the text is too short to judge.
func DetectLanguage(d nlp.LanguageDetector, text string) language.Tag {
	if len(strings.Fields(text)) < minDetectWords {
		return language.Und
	}
	return d.Detect(text)
}
