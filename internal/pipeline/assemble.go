package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// KeyPoints picks the limit highest-scoring sentences and returns them in
// source order.
func KeyPoints(scored []ScoredSentence, limit int) []string {
	top := rankByScore(scored)
	if limit < 0 {
		limit = 0
	}
	if len(top) > limit {
		top = top[:limit]
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Sentence.Index < top[j].Sentence.Index
	})

	out := make([]string, 0, len(top))
	for _, s := range top {
		out = append(out, s.Sentence.Text)
	}
	return out
}

// StudyTasks fills one task template per keyword. Without keywords it
// returns the fixed generic tasks.
func StudyTasks(keywords []Keyword) []string {
	if len(keywords) == 0 {
		out := make([]string, len(fallbackStudyTasks))
		copy(out, fallbackStudyTasks)
		return out
	}

	out := make([]string, 0, len(keywords))
	for i, k := range keywords {
		out = append(out, fmt.Sprintf(studyTaskTemplates[i%len(studyTaskTemplates)], k.Text))
	}
	return out
}

// QuizQuestions builds up to limit questions. With at least three keywords it
// cycles the quiz templates over them; otherwise it turns the top-scored
// sentences into fill-in-the-blank or true/false prompts. The result is
// never empty.
func QuizQuestions(keywords []Keyword, scored []ScoredSentence, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	out := make([]string, 0, limit)

	if len(keywords) >= minQuizKeywords {
		for i, k := range keywords {
			if len(out) >= limit {
				break
			}
			out = append(out, fmt.Sprintf(quizTemplates[i%len(quizTemplates)], k.Text))
		}
		return out
	}

	for _, s := range rankByScore(scored) {
		if len(out) >= limit {
			break
		}
		words := strings.Fields(s.Sentence.Text)
		if len(words) >= minBlankWords {
			out = append(out, fmt.Sprintf(completePrompt, strings.Join(words[:len(words)/2], " ")))
		} else {
			out = append(out, fmt.Sprintf(trueFalsePrompt, s.Sentence.Text))
		}
	}

	if len(out) == 0 {
		out = append(out, defaultQuizQuestion)
	}
	return out
}
