package pipeline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dev0l/trapp/internal/lexicon"
	"github.com/dev0l/trapp/internal/nlp"
)

const (
	nounWeight      = 1
	entityWeight    = 3
	minNounRunes    = 3
	minEntityRunes  = 2
	minKeywordRunes = 4
)

type candidate struct {
	display string
	weight  int
	first   int
	entity  bool
}

// ExtractKeywords ranks the nouns and named entities of text by weighted
// frequency. Nouns weigh 1 per occurrence, entities 3. Candidates merge on
// their normalized form; an entity occurrence sets the display case. Fillers,
// stopwords and words shorter than four runes (outside the short-term
// allow-list) are dropped. Ties keep first-occurrence order.
func ExtractKeywords(tagger nlp.Tagger, text string, limit int) []Keyword {
	out := make([]Keyword, 0)
	if limit <= 0 || strings.TrimSpace(text) == "" {
		return out
	}

	byKey := make(map[string]*candidate)
	var order []*candidate

	add := func(key, display string, weight, pos int, entity bool) {
		c, ok := byKey[key]
		if !ok {
			c = &candidate{display: display, first: pos}
			byKey[key] = c
			order = append(order, c)
		}
		c.weight += weight
		if entity && !c.entity {
			c.display = display
			c.entity = true
		}
	}

	for pos, tok := range tagger.Tag(text) {
		switch tok.Class {
		case nlp.ClassNoun:
			key := lexicon.Normalize(tok.Text)
			if utf8.RuneCountInString(key) < minNounRunes {
				continue
			}
			add(key, key, nounWeight, pos, false)
		case nlp.ClassEntity:
			display := strings.TrimSpace(tok.Text)
			if utf8.RuneCountInString(display) < minEntityRunes {
				continue
			}
			add(lexicon.Normalize(display), display, entityWeight, pos, true)
		}
	}

	kept := order[:0]
	for _, c := range order {
		key := lexicon.Normalize(c.display)
		if lexicon.IsFiller(key) || lexicon.IsStopword(key) {
			continue
		}
		if utf8.RuneCountInString(key) < minKeywordRunes && !lexicon.IsKnownShortTerm(key) {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].weight > kept[j].weight
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	for _, c := range kept {
		out = append(out, Keyword{Text: c.display, Weight: c.weight})
	}
	return out
}
