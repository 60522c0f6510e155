// Package rulebased is the lightweight nlp engine: punctuation sentence
// splitting, a stopword and capitalization tagger, and function-word
// language detection.
package rulebased

import (
	"regexp"

	"github.com/dev0l/trapp/internal/nlp"
)

const EngineName = "rules"

// wordPattern matches a word that starts with a letter and may carry
// digits, apostrophes and hyphens.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}\p{N}'’\-]*`)

type implTokenizer struct{}

type implTagger struct {
	maxEntityWords int
}

type implDetector struct {
	minHits int
}

// NewTokenizer returns the punctuation-based sentence splitter.
func NewTokenizer() nlp.Tokenizer {
	return &implTokenizer{}
}

// NewTagger returns the heuristic tagger.
func NewTagger() nlp.Tagger {
	return &implTagger{maxEntityWords: 3}
}

// NewDetector returns the function-word language detector.
func NewDetector() nlp.LanguageDetector {
	return &implDetector{minHits: 2}
}

// New returns the complete rule-based engine.
func New() nlp.Engine {
	return nlp.Engine{
		Name:      EngineName,
		Tokenizer: NewTokenizer(),
		Tagger:    NewTagger(),
		Detector:  NewDetector(),
	}
}
