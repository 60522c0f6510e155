package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/lexicon"
	"github.com/dev0l/trapp/internal/nlp"
)

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		label string
		kind  string
		begin bool
	}{
		{"B-PERSON", "PERSON", true},
		{"I-GPE", "GPE", false},
		{"O", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			kind, begin := splitLabel(tt.label)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.begin, begin)
		})
	}
}

func TestSentences(t *testing.T) {
	text := "Recursion is when a function calls itself. It is important for problem solving."
	sentences := NewTokenizer().Sentences(text)

	require.Len(t, sentences, 2)
	for _, s := range sentences {
		assert.Equal(t, strings.TrimSpace(s), s)
		assert.NotEmpty(t, s)
		assert.Contains(t, text, s)
	}
}

func TestTagFindsNouns(t *testing.T) {
	tokens := NewTagger().Tag("The compiler parses the function before the linker runs.")

	var nouns []string
	for _, tok := range tokens {
		if tok.Class == nlp.ClassNoun {
			nouns = append(nouns, lexicon.Normalize(tok.Text))
		}
	}
	assert.Contains(t, nouns, "compiler")
	assert.Contains(t, nouns, "function")
}

func TestDetect(t *testing.T) {
	d := NewDetector()

	assert.Equal(t, language.Und, d.Detect("Recursion"), "short text is undetermined")

	english := "Remember that the exam covers recursion. Recursion is when a function calls itself, " +
		"and it is important for problem solving in every programming course."
	assert.Equal(t, "en", lexicon.Code(d.Detect(english)))

	swedish := "Kom ihåg att tentan handlar om rekursion. Rekursion är när en funktion anropar sig själv, " +
		"och det är viktigt för problemlösning i varje programmeringskurs."
	assert.Equal(t, "sv", lexicon.Code(d.Detect(swedish)))
}

func TestNew(t *testing.T) {
	e := New()
	assert.Equal(t, EngineName, e.Name)
	assert.NotNil(t, e.Tokenizer)
	assert.NotNil(t, e.Tagger)
	assert.NotNil(t, e.Detector)
}
