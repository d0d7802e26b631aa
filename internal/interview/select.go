package interview

import (
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
)

// DefaultQuestionCount is used when the caller does not supply a count.
const DefaultQuestionCount = 3

// SelectQuestions returns up to n questions for role in catalog order. An
// unknown role yields an empty list, never an error. When a resume report is
// supplied the list is stably reordered to front-load the question type that
// complements the weakest score dimension; personalization only reorders
// within the role's set, it never drops a question plain role-filtering would
// have included.
func SelectQuestions(bank *questionbank.Bank, role string, report *domain.ResumeReport, n int) []domain.Question {
	if n <= 0 {
		n = DefaultQuestionCount
	}
	qs := bank.QuestionsFor(role)
	if len(qs) == 0 {
		return nil
	}
	if report != nil {
		if prefer, ok := preferredType(report); ok {
			qs = stableFront(qs, prefer)
		}
	}
	if n > len(qs) {
		n = len(qs)
	}
	return qs[:n]
}

// preferredType picks the question type that probes the candidate's weak
// side: low skills scores favor technical questions, low experience scores
// favor behavioral ones.
func preferredType(report *domain.ResumeReport) (domain.QuestionType, bool) {
	if report.SkillsScore < 6 {
		return domain.QuestionTechnical, true
	}
	if report.ExperienceScore < 5 {
		return domain.QuestionBehavioral, true
	}
	return "", false
}

// stableFront moves questions of type t to the front, preserving catalog
// order within both partitions.
func stableFront(qs []domain.Question, t domain.QuestionType) []domain.Question {
	out := make([]domain.Question, 0, len(qs))
	for _, q := range qs {
		if q.Type == t {
			out = append(out, q)
		}
	}
	for _, q := range qs {
		if q.Type != t {
			out = append(out, q)
		}
	}
	return out
}
