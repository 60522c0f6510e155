package rulebased

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/nlp"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminal punctuation",
			text: "Recursion is neat. Is it hard? No!",
			want: []string{"Recursion is neat.", "Is it hard?", "No!"},
		},
		{
			name: "abbreviation is not a boundary",
			text: "Dr. Smith explained it. Then we left.",
			want: []string{"Dr. Smith explained it.", "Then we left."},
		},
		{
			name: "dotted abbreviation",
			text: "Use a base case, e.g. an empty list. Done.",
			want: []string{"Use a base case, e.g. an empty list.", "Done."},
		},
		{
			name: "initial is not a boundary",
			text: "Ask J. Doe about it. Thanks.",
			want: []string{"Ask J. Doe about it.", "Thanks."},
		},
		{
			name: "decimal number",
			text: "Pi is about 3.14 in value. Right.",
			want: []string{"Pi is about 3.14 in value.", "Right."},
		},
		{
			name: "closing quote stays with sentence",
			text: `He said "stop." Then silence.`,
			want: []string{`He said "stop."`, "Then silence."},
		},
		{
			name: "trailing text without punctuation",
			text: "First one. and a tail",
			want: []string{"First one.", "and a tail"},
		},
		{
			name: "ellipsis",
			text: "Wait... what happened?",
			want: []string{"Wait...", "what happened?"},
		},
		{
			name: "whitespace only",
			text: "   ",
			want: nil,
		},
	}

	tok := NewTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Sentences(tt.text))
		})
	}
}

func TestTag(t *testing.T) {
	tokens := NewTagger().Tag("Remember, the exam covers recursion. Alan Turing worked in London with the NSA.")

	classes := make(map[string]nlp.Class)
	var order []string
	for _, tok := range tokens {
		classes[tok.Text] = tok.Class
		order = append(order, tok.Text)
	}

	assert.Equal(t, nlp.ClassNoun, classes["Remember"], "sentence-initial capital is not an entity")
	assert.Equal(t, nlp.ClassOther, classes["the"])
	assert.Equal(t, nlp.ClassNoun, classes["recursion"])
	assert.Equal(t, nlp.ClassNoun, classes["Alan"], "sentence-initial capital is not an entity")
	assert.Equal(t, nlp.ClassEntity, classes["Turing"])
	assert.Equal(t, nlp.ClassEntity, classes["London"])
	assert.Equal(t, nlp.ClassEntity, classes["NSA"])
	assert.Equal(t, "Remember", order[0])
}

func TestTagMergesEntityPhrases(t *testing.T) {
	tokens := NewTagger().Tag("We visited Santa Monica Beach and Paris, Rome last year.")

	var entities []string
	for _, tok := range tokens {
		if tok.Class == nlp.ClassEntity {
			entities = append(entities, tok.Text)
		}
	}
	assert.Equal(t, []string{"Santa Monica Beach", "Paris", "Rome"}, entities)
}

func TestTagPossessive(t *testing.T) {
	tokens := NewTagger().Tag("We read about Turing's machine.")
	assert.Contains(t, tokens, nlp.Token{Text: "Turing", Class: nlp.ClassEntity})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Tag
	}{
		{"english", "The exam covers recursion and it is important for the course.", language.English},
		{"swedish", "Det är viktigt att du kommer ihåg det här till tentan och att vi ses.", language.Swedish},
		{"too short", "Recursion", language.Und},
		{"no function words", "Recursion stack overflow", language.Und},
	}

	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestNew(t *testing.T) {
	e := New()
	assert.Equal(t, EngineName, e.Name)
	assert.NotNil(t, e.Tokenizer)
	assert.NotNil(t, e.Tagger)
	assert.NotNil(t, e.Detector)
}
