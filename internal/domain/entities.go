package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrNotFound             = errors.New("not found")
	ErrUnknownRole          = errors.New("unknown role")
	ErrInvalidQuestionIndex = errors.New("invalid question index")
	ErrUnsupportedFormat    = errors.New("unsupported document format")
	ErrParseFailure         = errors.New("document parse failure")
	ErrSourceUnavailable    = errors.New("question source unavailable")
	ErrInternal             = errors.New("internal error")
)

// QuestionType enumerates interview question types.
type QuestionType string

const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
)

// Difficulty enumerates question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one interview question. Keywords drive answer scoring and may
// be empty; Difficulty is purely informational. Values are immutable once
// loaded into a bank.
type Question struct {
	Text       string
	Type       QuestionType
	Difficulty Difficulty
	Keywords   []string
}

// SkillCategory is the closed six-member enumeration of resume skill buckets.
type SkillCategory string

const (
	CategoryProgramming SkillCategory = "programming"
	CategoryWeb         SkillCategory = "web"
	CategoryDatabases   SkillCategory = "databases"
	CategoryCloud       SkillCategory = "cloud_devops"
	CategoryDataScience SkillCategory = "data_science"
	CategorySoftSkills  SkillCategory = "soft_skills"
)

// SkillCategories lists all categories in presentation order.
var SkillCategories = []SkillCategory{
	CategoryProgramming,
	CategoryWeb,
	CategoryDatabases,
	CategoryCloud,
	CategoryDataScience,
	CategorySoftSkills,
}

// ExperienceUnspecified is the sentinel for resumes that never state a
// years-of-experience figure.
const ExperienceUnspecified = -1

// ResumeFacts is the structured output of the resume extractors. Derived
// purely from input text and never mutated after creation.
type ResumeFacts struct {
	Skills           map[SkillCategory][]string
	ExperienceYears  int
	EducationDegrees []string
	WordCount        int
}

// TotalSkills returns the matched-skill count summed across categories.
func (f ResumeFacts) TotalSkills() int {
	n := 0
	for _, s := range f.Skills {
		n += len(s)
	}
	return n
}

// HasExperience reports whether the resume stated a years figure at all.
func (f ResumeFacts) HasExperience() bool { return f.ExperienceYears != ExperienceUnspecified }

// ResumeReport carries extracted facts, per-dimension scores in [0,10] and
// improvement recommendations.
type ResumeReport struct {
	Facts           ResumeFacts
	SkillsScore     float64
	ExperienceScore float64
	EducationScore  float64
	OverallScore    float64
	Recommendations []string
}

// AnswerAnalysis reports surface statistics of a scored answer.
type AnswerAnalysis struct {
	WordCount     int
	SentenceCount int
}

// AnswerResult is the outcome of scoring a single answer. Score is in [0,10]
// rounded to one decimal.
type AnswerResult struct {
	Score    float64
	Feedback string
	Analysis AnswerAnalysis
}

// AnswerRecord ties an AnswerResult to the question it answered; this is what
// gets persisted per submitted answer.
type AnswerRecord struct {
	QuestionIndex int
	Question      string
	Answer        string
	Result        AnswerResult
}

// InterviewSummary aggregates all per-answer results into an overall outcome.
type InterviewSummary struct {
	Results           []AnswerResult
	OverallPercentage float64
	Feedback          string
}

// InterviewStatus enumerates interview lifecycle states.
type InterviewStatus string

const (
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

// Interview is one candidate session: the questions asked, the answers
// scored so far, and the resume report captured at start (if any).
type Interview struct {
	ID                 string
	CandidateName      string
	Role               string
	Status             InterviewStatus
	Score              float64
	TotalQuestions     int
	CompletedQuestions int
	Questions          []Question
	Responses          []AnswerRecord
	ResumeReport       *ResumeReport
	QuestionsSource    string
	StartedAt          time.Time
	CompletedAt        *time.Time
}

// InterviewStats aggregates stored interviews for the dashboard surface.
type InterviewStats struct {
	Total        int64
	Completed    int64
	InProgress   int64
	AvgScore     float64
	HighestScore float64
	LowestScore  float64
	// Distribution buckets completed scores into 0-2, 2-4, 4-6, 6-8, 8-10.
	Distribution map[string]int64
	Roles        []RoleStat
}

// RoleStat is a per-role aggregate of stored interviews.
type RoleStat struct {
	Role      string
	Total     int64
	Completed int64
	AvgScore  float64
}

// ChatMessage is one turn of the chit-chat responder conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Ports

// InterviewRepository persists interview sessions.
type InterviewRepository interface {
	Create(ctx Context, iv Interview) (string, error)
	Update(ctx Context, iv Interview) error
	Get(ctx Context, id string) (Interview, error)
	ListRecent(ctx Context, limit int) ([]Interview, error)
	Stats(ctx Context) (InterviewStats, error)
	Delete(ctx Context, id string) error
}

// TextExtractor turns an uploaded document into plain text. Implementations
// may call external services (e.g. Tika). Failures map to ErrParseFailure.
type TextExtractor interface {
	ExtractPath(ctx Context, fileName, path string) (string, error)
}

// QuestionSource fetches a full role-keyed question catalog from an external
// provider. Any failure maps to ErrSourceUnavailable and triggers the local
// fallback in the bank loader.
type QuestionSource interface {
	Fetch(ctx Context) (map[string][]Question, error)
}

// ChatHistory stores a bounded per-session chat transcript.
type ChatHistory interface {
	Append(ctx Context, sessionID string, msg ChatMessage) error
	History(ctx Context, sessionID string) ([]ChatMessage, error)
}

// Context aliases the standard context so domain signatures stay terse.
type Context = context.Context
