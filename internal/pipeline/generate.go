package pipeline

// Generate runs the full pipeline and returns a fresh StudyProgram.
func (p *implPipeline) Generate(text string) StudyProgram {
	return p.Analyze(text).Program
}

// Analyze runs every stage once: segment, detect language, extract keywords,
// score sentences, then assemble the program.
func (p *implPipeline) Analyze(text string) Analysis {
	sentences := Segment(p.engine.Tokenizer, text)
	lang := DetectLanguage(p.engine.Detector, text)
	keywords := ExtractKeywords(p.engine.Tagger, text, p.opts.KeywordLimit)
	scored := Score(sentences, keywords, lang, p.opts.MinWords, p.opts.MaxWords)

	return Analysis{
		Sentences: sentences,
		Language:  lang,
		Keywords:  keywords,
		Scored:    scored,
		Program: StudyProgram{
			KeyPoints:     KeyPoints(scored, p.opts.MaxKeyPoints),
			StudyTasks:    StudyTasks(keywords),
			QuizQuestions: QuizQuestions(keywords, scored, p.opts.MaxQuizQuestions),
			Keywords:      keywords,
			GeneratedAt:   p.opts.Now(),
		},
	}
}
