// Package model is the linguistic-model nlp engine. Sentence boundaries,
// part-of-speech tags and named entities come from prose's pretrained
// English models; language identification comes from whatlanggo trigram
// profiles. Each capability degrades to the rulebased engine when the model
// rejects its input.
package model

import (
	"github.com/dev0l/trapp/internal/nlp"
	"github.com/dev0l/trapp/internal/nlp/rulebased"
)

const EngineName = "model"

type implTokenizer struct {
	fallback nlp.Tokenizer
}

type implTagger struct {
	fallback nlp.Tagger
}

type implDetector struct {
	minRunes      int
	minConfidence float64
}

// NewTokenizer returns the prose sentence segmenter.
func NewTokenizer() nlp.Tokenizer {
	return &implTokenizer{fallback: rulebased.NewTokenizer()}
}

// NewTagger returns the prose POS + NER tagger.
func NewTagger() nlp.Tagger {
	return &implTagger{fallback: rulebased.NewTagger()}
}

// NewDetector returns the whatlanggo language detector.
func NewDetector() nlp.LanguageDetector {
	return &implDetector{
		minRunes:      20,
		minConfidence: 0.5,
	}
}

// New returns the complete model-backed engine.
func New() nlp.Engine {
	return nlp.Engine{
		Name:      EngineName,
		Tokenizer: NewTokenizer(),
		Tagger:    NewTagger(),
		Detector:  NewDetector(),
	}
}
