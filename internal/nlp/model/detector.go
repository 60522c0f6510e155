package model

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

func (d *implDetector) Detect(text string) language.Tag {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < d.minRunes {
		return language.Und
	}

	info := whatlanggo.Detect(text)
	if info.Confidence < d.minConfidence {
		return language.Und
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return language.Und
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und
	}
	return tag
}
