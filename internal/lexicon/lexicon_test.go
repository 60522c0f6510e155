package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCueWords(t *testing.T) {
	tests := []struct {
		name     string
		tag      language.Tag
		contains []string
		excludes []string
	}{
		{"english", language.English, []string{"important", "exam"}, []string{"viktigt"}},
		{"regional english", language.AmericanEnglish, []string{"remember"}, []string{"tenta"}},
		{"swedish", language.Swedish, []string{"viktigt", "kom ihåg"}, []string{"exam"}},
		{"unknown falls back to union", language.Und, []string{"important", "tenta"}, nil},
		{"unsupported falls back to union", language.German, []string{"critical", "viktig"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := CueWords(tt.tag)
			for _, w := range tt.contains {
				assert.Contains(t, words, w)
			}
			for _, w := range tt.excludes {
				assert.NotContains(t, words, w)
			}
		})
	}
}

func TestCueWordsUnionHasNoDuplicates(t *testing.T) {
	words := CueWords(language.Und)
	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate cue word %q", w)
		seen[w] = true
	}
	assert.True(t, seen["definition"])
}

func TestLookups(t *testing.T) {
	assert.True(t, IsFiller("liksom"))
	assert.True(t, IsFiller("basically"))
	assert.False(t, IsFiller("recursion"))

	assert.True(t, IsKnownShortTerm("sql"))
	assert.False(t, IsKnownShortTerm("the"))

	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("och"))
	assert.False(t, IsStopword("function"))

	assert.True(t, IsAbbreviation("dr"))
	assert.True(t, IsAbbreviation("e.g"))
	assert.False(t, IsAbbreviation("recursion"))
}

func TestStopwordHits(t *testing.T) {
	words := []string{"the", "function", "is", "och", "att"}
	assert.Equal(t, 2, StopwordHits(language.English, words))
	assert.Equal(t, 2, StopwordHits(language.Swedish, words))
	assert.Equal(t, 0, StopwordHits(language.Und, words))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "en", Code(language.English))
	assert.Equal(t, "en", Code(language.BritishEnglish))
	assert.Equal(t, "sv", Code(language.Swedish))
	assert.Equal(t, "", Code(language.Und))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "recursion", Normalize("  Recursion "))
	assert.Equal(t, "kom ihåg", Normalize("Kom ihåg"))
	// decomposed a + combining ring composes to å
	assert.Equal(t, "\u00e5", Normalize("A\u030a"))
	assert.Equal(t, "", Normalize("   "))
}

func TestCleanText(t *testing.T) {
	in := "First   line\twith  gaps\r\nSecond line\r\rThird"
	assert.Equal(t, "First line with gaps\nSecond line\n\nThird", CleanText(in))
}
