package pipeline

import (
	"time"

	"github.com/dev0l/trapp/internal/nlp"
)

// Options bounds the size of everything the pipeline emits. Zero fields take
// the DefaultOptions value. Limits past the stock bounds are clamped: at most
// 7 key points and 5 quiz questions, sentences of 5 to 50 words.
type Options struct {
	KeywordLimit     int
	MaxKeyPoints     int
	MaxQuizQuestions int
	MinWords         int
	MaxWords         int

	// Now stamps GeneratedAt. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Stock limits. They are also the widest the pipeline accepts.
const (
	DefaultKeywordLimit = 5
	MaxKeyPoints        = 7
	MaxQuizQuestions    = 5
	MinSentenceWords    = 5
	MaxSentenceWords    = 50
)

// DefaultOptions returns the stock limits: 5 keywords, 7 key points,
// 5 quiz questions, sentences of 5 to 50 words.
func DefaultOptions() Options {
	return Options{
		KeywordLimit:     DefaultKeywordLimit,
		MaxKeyPoints:     MaxKeyPoints,
		MaxQuizQuestions: MaxQuizQuestions,
		MinWords:         MinSentenceWords,
		MaxWords:         MaxSentenceWords,
		Now:              func() time.Time { return time.Now().UTC() },
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.KeywordLimit <= 0 {
		o.KeywordLimit = d.KeywordLimit
	}
	if o.MaxKeyPoints <= 0 || o.MaxKeyPoints > MaxKeyPoints {
		o.MaxKeyPoints = d.MaxKeyPoints
	}
	if o.MaxQuizQuestions <= 0 || o.MaxQuizQuestions > MaxQuizQuestions {
		o.MaxQuizQuestions = d.MaxQuizQuestions
	}
	if o.MinWords < MinSentenceWords {
		o.MinWords = d.MinWords
	}
	if o.MaxWords < MinSentenceWords || o.MaxWords > MaxSentenceWords {
		o.MaxWords = d.MaxWords
	}
	if o.MinWords > o.MaxWords {
		o.MinWords = d.MinWords
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}

type implPipeline struct {
	engine nlp.Engine
	opts   Options
}

// New creates a Generator over the given nlp engine.
func New(engine nlp.Engine, opts Options) Generator {
	return newPipeline(engine, opts)
}

func newPipeline(engine nlp.Engine, opts Options) *implPipeline {
	return &implPipeline{
		engine: engine,
		opts:   opts.withDefaults(),
	}
}
