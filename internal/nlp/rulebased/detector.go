package rulebased

import (
	"golang.org/x/text/language"

	"github.com/dev0l/trapp/internal/lexicon"
)

// Detect picks the supported language whose function words occur most
// often. Too few hits or a tie yields language.Und.
func (d *implDetector) Detect(text string) language.Tag {
	matches := wordPattern.FindAllString(text, -1)
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = lexicon.Normalize(m)
	}

	best, bestHits, runnerUp := language.Und, 0, 0
	for _, tag := range lexicon.Supported {
		hits := lexicon.StopwordHits(tag, words)
		switch {
		case hits > bestHits:
			runnerUp = bestHits
			best, bestHits = tag, hits
		case hits > runnerUp:
			runnerUp = hits
		}
	}

	if bestHits < d.minHits || bestHits == runnerUp {
		return language.Und
	}
	return best
}
