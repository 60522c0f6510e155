package model

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

func (t *implTokenizer) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return t.fallback.Sentences(text)
	}

	var out []string
	for _, s := range doc.Sentences() {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
