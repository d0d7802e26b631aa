package interview

import (
	"fmt"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
)

// ScoreForRole is the single-shot scoring operation: it resolves the question
// by role and catalog index, then scores the answer. Unknown roles and
// out-of-range indices are the only failure modes; answer content never is.
func ScoreForRole(bank *questionbank.Bank, role string, index int, answer string) (domain.AnswerResult, error) {
	qs := bank.QuestionsFor(role)
	if len(qs) == 0 {
		return domain.AnswerResult{}, fmt.Errorf("op=interview.score: %w: %q", domain.ErrUnknownRole, role)
	}
	if index < 0 || index >= len(qs) {
		return domain.AnswerResult{}, fmt.Errorf("op=interview.score: %w: %d of %d", domain.ErrInvalidQuestionIndex, index, len(qs))
	}
	return ScoreAnswer(qs[index], answer), nil
}
