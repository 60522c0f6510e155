package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dev0l/trapp/internal/pipeline"
)

var (
	ErrNotFound        = errors.New("transcript not found")
	ErrAmbiguous       = errors.New("transcript reference is ambiguous")
	ErrNoProgram       = errors.New("transcript has no study program")
	ErrInvalidSection  = errors.New("invalid program section")
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrEmptyText       = errors.New("transcript text is empty")
)

// Section names one editable list of a study program.
type Section string

const (
	SectionKeyPoints     Section = "key_points"
	SectionStudyTasks    Section = "study_tasks"
	SectionQuizQuestions Section = "quiz_questions"
)

// Sections lists every section in display order.
var Sections = []Section{SectionKeyPoints, SectionStudyTasks, SectionQuizQuestions}

// ParseSection accepts the canonical names plus short aliases.
func ParseSection(s string) (Section, error) {
	switch s {
	case string(SectionKeyPoints), "key-points", "points", "keypoints":
		return SectionKeyPoints, nil
	case string(SectionStudyTasks), "study-tasks", "tasks":
		return SectionStudyTasks, nil
	case string(SectionQuizQuestions), "quiz-questions", "quiz", "questions":
		return SectionQuizQuestions, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSection, s)
}

// Transcript is one persisted record: the raw lecture text and, once
// generated, its study program.
type Transcript struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Course    string                 `json:"course,omitempty"`
	Date      *time.Time             `json:"date,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
	RawText   string                 `json:"rawText"`
	CreatedAt time.Time              `json:"createdAt"`
	Program   *pipeline.StudyProgram `json:"program,omitempty"`
}

// NewTranscript holds the caller-supplied fields of a new record.
type NewTranscript struct {
	Title   string
	Course  string
	Date    *time.Time
	Tags    []string
	RawText string
}

func cloneTranscript(t Transcript) Transcript {
	out := t
	if t.Date != nil {
		d := *t.Date
		out.Date = &d
	}
	out.Tags = cloneStrings(t.Tags)
	if t.Program != nil {
		p := cloneProgram(*t.Program)
		out.Program = &p
	}
	return out
}

func cloneProgram(p pipeline.StudyProgram) pipeline.StudyProgram {
	out := p
	out.KeyPoints = cloneStrings(p.KeyPoints)
	out.StudyTasks = cloneStrings(p.StudyTasks)
	out.QuizQuestions = cloneStrings(p.QuizQuestions)
	if p.Keywords != nil {
		out.Keywords = make([]pipeline.Keyword, len(p.Keywords))
		copy(out.Keywords, p.Keywords)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// items returns a pointer to the list named by section.
func items(p *pipeline.StudyProgram, section Section) (*[]string, error) {
	switch section {
	case SectionKeyPoints:
		return &p.KeyPoints, nil
	case SectionStudyTasks:
		return &p.StudyTasks, nil
	case SectionQuizQuestions:
		return &p.QuizQuestions, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidSection, section)
}
