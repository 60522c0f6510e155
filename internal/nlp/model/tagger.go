package model

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/dev0l/trapp/internal/nlp"
)

// entityKinds are the NER labels that count as named entities.
var entityKinds = map[string]bool{
	"PERSON": true,
	"GPE":    true,
	"LOC":    true,
	"ORG":    true,
}

// nounTags are the Penn Treebank noun tags.
var nounTags = map[string]bool{
	"NN":   true,
	"NNS":  true,
	"NNP":  true,
	"NNPS": true,
}

// Tag walks prose tokens in order. Tokens inside a B-/I- entity span are
// joined into one entity phrase; remaining nouns are nouns.
func (t *implTagger) Tag(text string) []nlp.Token {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return t.fallback.Tag(text)
	}

	var tokens []nlp.Token
	var entity []string

	flush := func() {
		if len(entity) > 0 {
			tokens = append(tokens, nlp.Token{Text: strings.Join(entity, " "), Class: nlp.ClassEntity})
			entity = nil
		}
	}

	for _, tok := range doc.Tokens() {
		kind, begin := splitLabel(tok.Label)
		if entityKinds[kind] {
			if begin {
				flush()
			}
			entity = append(entity, tok.Text)
			continue
		}

		flush()
		class := nlp.ClassOther
		if nounTags[tok.Tag] {
			class = nlp.ClassNoun
		}
		tokens = append(tokens, nlp.Token{Text: tok.Text, Class: class})
	}
	flush()

	return tokens
}

// splitLabel turns an IOB label such as "B-PERSON" into ("PERSON", true).
func splitLabel(label string) (string, bool) {
	switch {
	case strings.HasPrefix(label, "B-"):
		return label[2:], true
	case strings.HasPrefix(label, "I-"):
		return label[2:], false
	default:
		return "", false
	}
}
