package rulebased

import (
	"strings"
	"unicode"

	"github.com/dev0l/trapp/internal/lexicon"
)

// Sentences splits text on terminal punctuation. A terminal run only ends a
// sentence when followed by whitespace or the end of text, and a single
// period after a known abbreviation or an initial ("J.") does not end one.
func (t *implTokenizer) Sentences(text string) []string {
	runes := []rune(text)
	var out []string

	emit := func(seg []rune) {
		s := strings.TrimSpace(string(seg))
		if s != "" {
			out = append(out, s)
		}
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}

		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if runes[i] == '.' && end == i+1 && abbreviationBefore(runes[start:i]) {
			continue
		}

		emit(runes[start:end])
		start = end
		i = end - 1
	}
	emit(runes[start:])

	return out
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

// abbreviationBefore reports whether the last word of prefix is an
// abbreviation or a single capital letter.
func abbreviationBefore(prefix []rune) bool {
	j := len(prefix)
	for j > 0 && !unicode.IsSpace(prefix[j-1]) {
		j--
	}
	word := strings.TrimLeft(string(prefix[j:]), `("'[“‘«`)
	if word == "" {
		return false
	}

	letters := []rune(word)
	if len(letters) == 1 && unicode.IsUpper(letters[0]) {
		return true
	}
	return lexicon.IsAbbreviation(lexicon.Normalize(word))
}
