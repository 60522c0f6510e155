package rulebased

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dev0l/trapp/internal/lexicon"
	"github.com/dev0l/trapp/internal/nlp"
)

// Tag classifies words with a frequency-friendly heuristic: stopwords and
// fillers are other, capitalized words that do not open a sentence (and
// acronyms) are entities, everything else counts as a noun. Adjacent
// capitalized words separated only by spaces merge into one entity phrase.
func (t *implTagger) Tag(text string) []nlp.Token {
	var tokens []nlp.Token
	var entity []string

	flush := func() {
		if len(entity) > 0 {
			tokens = append(tokens, nlp.Token{Text: strings.Join(entity, " "), Class: nlp.ClassEntity})
			entity = nil
		}
	}

	prevEnd := 0
	for n, loc := range wordPattern.FindAllStringIndex(text, -1) {
		gap := text[prevEnd:loc[0]]
		prevEnd = loc[1]

		if strings.TrimSpace(gap) != "" {
			flush()
		}
		sentenceStart := n == 0 || strings.ContainsAny(gap, ".!?…\n")

		word := trimPossessive(text[loc[0]:loc[1]])
		if word == "" {
			continue
		}
		key := lexicon.Normalize(word)

		switch {
		case lexicon.IsStopword(key) || lexicon.IsFiller(key):
			flush()
			tokens = append(tokens, nlp.Token{Text: word, Class: nlp.ClassOther})
		case isAcronym(word):
			flush()
			tokens = append(tokens, nlp.Token{Text: word, Class: nlp.ClassEntity})
		case isCapitalized(word) && !sentenceStart:
			if len(entity) == t.maxEntityWords {
				flush()
			}
			entity = append(entity, word)
		default:
			flush()
			tokens = append(tokens, nlp.Token{Text: word, Class: nlp.ClassNoun})
		}
	}
	flush()

	return tokens
}

func trimPossessive(word string) string {
	word = strings.TrimRight(word, "'’-")
	for _, suffix := range []string{"'s", "’s"} {
		if strings.HasSuffix(word, suffix) {
			return strings.TrimSuffix(word, suffix)
		}
	}
	return word
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// isAcronym reports whether word has at least two letters, all upper case.
func isAcronym(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}
