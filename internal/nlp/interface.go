// Package nlp defines the linguistic capabilities the study pipeline needs.
// Implementations live in the rulebased and model subpackages.
package nlp

import "golang.org/x/text/language"

// Class is the coarse part-of-speech/entity class of a token.
type Class int

const (
	ClassOther Class = iota
	ClassNoun
	ClassEntity
)

func (c Class) String() string {
	switch c {
	case ClassNoun:
		return "noun"
	case ClassEntity:
		return "entity"
	default:
		return "other"
	}
}

// Token is a word or short entity phrase in source order.
type Token struct {
	Text  string
	Class Class
}

// Tokenizer splits a single line of text into sentence candidates.
// The caller handles line and paragraph breaks.
type Tokenizer interface {
	Sentences(text string) []string
}

// Tagger classifies the word-like tokens of text, in source order.
type Tagger interface {
	Tag(text string) []Token
}

// LanguageDetector returns the dominant language of text, or language.Und
// when the text is too short or ambiguous.
type LanguageDetector interface {
	Detect(text string) language.Tag
}

// Engine bundles one implementation of each capability.
type Engine struct {
	Name      string
	Tokenizer Tokenizer
	Tagger    Tagger
	Detector  LanguageDetector
}
