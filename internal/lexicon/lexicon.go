// Package lexicon holds the fixed vocabularies used by the text pipeline:
// stopwords, filler tokens, the short-term allow-list, cue words and
// abbreviations. Lookups expect keys already passed through Normalize.
package lexicon

import (
	"golang.org/x/text/language"
)

// Supported lists the languages that carry their own vocabularies.
var Supported = []language.Tag{language.English, language.Swedish}

var cueWords = map[string][]string{
	"en": {
		"important", "remember", "summary", "definition",
		"exam", "key", "critical", "essential",
	},
	"sv": {
		"viktigt", "viktig", "tenta", "sammanfattning", "definition",
		"kom ihåg",
	},
}

// fillerTokens are spoken discourse markers that never make good keywords.
var fillerTokens = newSet(
	// Swedish
	"titta", "liksom", "typ", "alltså", "eh", "okej", "så",
	"ju", "ba", "asså", "väl", "aja", "mm", "hmm", "öh",
	// English
	"um", "uh", "umm", "erm", "like", "okay", "ok", "yeah", "basically",
	"actually", "literally", "anyway", "alright", "right", "well", "stuff",
	"thing", "things", "kinda", "sorta", "gonna", "wanna",
)

// knownShortTerms are short tokens that are valid concepts on their own.
var knownShortTerms = newSet(
	"api", "app", "css", "git", "ide", "ios", "json", "key",
	"map", "nil", "pod", "ram", "sdk", "sql", "ssl", "tcp",
	"tls", "url", "uuid", "var", "vue", "xml",
	"cpu", "dna", "gdp", "ai",
)

var stopwords = map[string]set{
	"en": newSet(
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
		"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
		"but", "by", "can", "could", "did", "do", "does", "doing", "done", "down", "during", "each",
		"even", "every", "few", "for", "from", "further", "get", "gets", "got", "had", "has", "have",
		"having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "however",
		"i", "if", "in", "into", "is", "it", "its", "itself", "just", "let", "lets", "made", "make",
		"makes", "many", "may", "me", "might", "more", "most", "much", "must", "my", "myself", "no",
		"nor", "not", "now", "of", "off", "on", "once", "one", "only", "or", "other", "our", "ours",
		"ourselves", "out", "over", "own", "really", "same", "say", "says", "said", "see", "she",
		"should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "this", "those", "through", "to", "today",
		"too", "under", "until", "up", "us", "use", "used", "uses", "using", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
		"would", "yes", "yet", "you", "your", "yours", "yourself", "yourselves", "going", "know",
		"think", "want", "need", "look", "come", "take", "give", "something", "anything",
		"everything", "nothing", "someone", "always", "never", "often", "still", "already",
		"maybe", "quite", "rather", "next", "last", "first", "second", "new", "good", "great",
		"nice", "able", "sure", "lot", "lots", "way", "ways", "time", "times",
	),
	"sv": newSet(
		"och", "att", "det", "som", "en", "ett", "är", "av", "för", "på", "med", "till", "den",
		"har", "de", "inte", "om", "var", "jag", "du", "vi", "ni", "han", "hon", "men", "kan",
		"ska", "skulle", "sig", "när", "från", "så", "eller", "vad", "här", "där", "denna",
		"detta", "dessa", "nu", "då", "också", "bara", "mycket", "hur", "vara", "blir", "blev",
		"man", "sen", "sedan", "efter", "innan", "under", "över", "mellan", "alla", "allt",
		"några", "någon", "något", "inga", "ingen", "inget", "mer", "mest", "samma", "sin",
		"sitt", "sina", "min", "mitt", "mina", "din", "ditt", "dina", "vår", "vårt", "våra",
		"er", "ert", "era", "deras", "hans", "hennes", "dess", "vilken", "vilket", "vilka",
		"dem", "oss", "mig", "dig", "honom", "henne", "ha", "hade", "gör", "göra", "gjorde",
		"får", "fick", "få", "idag", "mot", "utan", "genom", "ju", "väl", "nog", "redan",
	),
}

// abbreviations end in a period that does not terminate a sentence.
var abbreviations = newSet(
	"dr", "mr", "mrs", "ms", "prof", "sr", "jr", "st", "vs", "approx", "fig", "eq",
	"e.g", "i.e", "cf", "no", "vol", "ch", "sec", "dept", "inc", "ltd", "co",
	"t.ex", "bl.a", "d.v.s", "dvs", "m.m", "s.k", "ca", "kap", "nr", "jfr",
)

// CueWords returns the importance markers for tag. Unknown or unsupported
// languages get the union of every vocabulary, in Supported order.
func CueWords(tag language.Tag) []string {
	if words, ok := cueWords[Code(tag)]; ok {
		return words
	}

	var all []string
	seen := make(map[string]struct{})
	for _, t := range Supported {
		for _, w := range cueWords[Code(t)] {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			all = append(all, w)
		}
	}
	return all
}

// IsFiller reports whether word is a spoken filler token.
func IsFiller(word string) bool {
	return fillerTokens.has(word)
}

// IsKnownShortTerm reports whether a short word is an allow-listed concept.
func IsKnownShortTerm(word string) bool {
	return knownShortTerms.has(word)
}

// IsStopword reports whether word is a function word in any supported language.
func IsStopword(word string) bool {
	for _, s := range stopwords {
		if s.has(word) {
			return true
		}
	}
	return false
}

// StopwordHits counts how many of words are function words of tag's
// language.
func StopwordHits(tag language.Tag, words []string) int {
	s, ok := stopwords[Code(tag)]
	if !ok {
		return 0
	}
	hits := 0
	for _, w := range words {
		if s.has(w) {
			hits++
		}
	}
	return hits
}

// IsAbbreviation reports whether token (without its final period) is a
// known abbreviation.
func IsAbbreviation(token string) bool {
	return abbreviations.has(token)
}

// Code returns the ISO 639 base language code of tag ("en", "sv"), or ""
// for an undetermined tag.
func Code(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(word string) bool {
	_, ok := s[word]
	return ok
}
