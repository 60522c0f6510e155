package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/lexicon"
)

const (
	baseScore    = 1.0
	keywordBonus = 1.0
	cueBonus     = 2.0
)

// Score rates every sentence whose word count lies in [minWords, maxWords].
// Each distinct keyword found in the sentence adds 1; one cue word for lang
// adds a flat 2. Output keeps source order.
func Score(sentences []Sentence, keywords []Keyword, lang language.Tag, minWords, maxWords int) []ScoredSentence {
	cues := lexicon.CueWords(lang)

	seen := make(map[string]struct{}, len(keywords))
	needles := make([]string, 0, len(keywords))
	for _, k := range keywords {
		n := lexicon.Normalize(k.Text)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		needles = append(needles, n)
	}

	out := make([]ScoredSentence, 0, len(sentences))
	for _, s := range sentences {
		words := len(strings.Fields(s.Text))
		if words < minWords || words > maxWords {
			continue
		}

		lowered := lexicon.Normalize(s.Text)
		score := baseScore
		for _, n := range needles {
			if strings.Contains(lowered, n) {
				score += keywordBonus
			}
		}
		for _, cue := range cues {
			if strings.Contains(lowered, cue) {
				score += cueBonus
				break
			}
		}

		out = append(out, ScoredSentence{Sentence: s, Score: score})
	}
	return out
}

// rankByScore returns a copy of scored ordered by score descending, ties by
// source position.
func rankByScore(scored []ScoredSentence) []ScoredSentence {
	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Sentence.Index < ranked[j].Sentence.Index
	})
	return ranked
}
