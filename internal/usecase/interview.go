package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/config"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/interview"
	obsctx "github.com/rishi6824/AIinterview-and-resume-analyser/internal/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
)

// InterviewService runs candidate interview sessions: question selection at
// start, per-answer scoring, and the final summary. The engine calls are pure;
// the service only adds persistence and metrics around them.
type InterviewService struct {
	Repo domain.InterviewRepository
	Bank *questionbank.Store
	Cfg  config.Config
}

// NewInterviewService constructs an InterviewService.
func NewInterviewService(repo domain.InterviewRepository, bank *questionbank.Store, cfg config.Config) InterviewService {
	return InterviewService{Repo: repo, Bank: bank, Cfg: cfg}
}

// Start selects questions for the role (personalized by the resume report
// when present) and creates the interview session. Unknown roles fail with
// ErrUnknownRole.
func (s InterviewService) Start(ctx domain.Context, candidate, role string, numQuestions int, report *domain.ResumeReport) (domain.Interview, error) {
	bank := s.Bank.Bank()
	if !bank.HasRole(role) {
		return domain.Interview{}, fmt.Errorf("op=interview.start: %w: %q", domain.ErrUnknownRole, role)
	}
	n := s.Cfg.ClampQuestionCount(numQuestions)
	questions := interview.SelectQuestions(bank, role, report, n)

	iv := domain.Interview{
		CandidateName:   candidate,
		Role:            role,
		Status:          domain.InterviewInProgress,
		TotalQuestions:  len(questions),
		Questions:       questions,
		ResumeReport:    report,
		QuestionsSource: s.Bank.Source(),
		StartedAt:       time.Now().UTC(),
	}
	id, err := s.Repo.Create(ctx, iv)
	if err != nil {
		return domain.Interview{}, err
	}
	iv.ID = id
	observability.InterviewsStartedTotal.WithLabelValues(role).Inc()
	obsctx.LoggerFromContext(ctx).Info("interview started",
		"interview_id", id, "role", role, "questions", len(questions))
	return iv, nil
}

// SubmitAnswer scores one answer against its session question and persists
// the result. An index outside the session's question list fails with
// ErrInvalidQuestionIndex, and each question accepts exactly one answer; a
// resubmission fails with ErrInvalidArgument and leaves the session untouched.
func (s InterviewService) SubmitAnswer(ctx domain.Context, id string, questionIndex int, answer string) (domain.AnswerResult, bool, error) {
	iv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.AnswerResult{}, false, err
	}
	if questionIndex < 0 || questionIndex >= len(iv.Questions) {
		return domain.AnswerResult{}, false, fmt.Errorf("op=interview.answer: %w: %d of %d", domain.ErrInvalidQuestionIndex, questionIndex, len(iv.Questions))
	}
	for _, rec := range iv.Responses {
		if rec.QuestionIndex == questionIndex {
			return domain.AnswerResult{}, false, fmt.Errorf("op=interview.answer: %w: question %d already answered", domain.ErrInvalidArgument, questionIndex)
		}
	}

	result := interview.ScoreAnswer(iv.Questions[questionIndex], answer)
	observability.AnswerScoreHistogram.Observe(result.Score)

	iv.Responses = append(iv.Responses, domain.AnswerRecord{
		QuestionIndex: questionIndex,
		Question:      iv.Questions[questionIndex].Text,
		Answer:        answer,
		Result:        result,
	})
	iv.CompletedQuestions = len(iv.Responses)
	iv.Score = overallScore(iv.Responses, iv.TotalQuestions)
	if err := s.Repo.Update(ctx, iv); err != nil {
		return domain.AnswerResult{}, false, err
	}
	completed := iv.CompletedQuestions >= iv.TotalQuestions
	return result, completed, nil
}

// overallScore averages answer scores over the session's question count,
// keeping the stored score on the same 0-10 scale as individual answers
// regardless of interview length. Unanswered questions count as zero.
func overallScore(responses []domain.AnswerRecord, totalQuestions int) float64 {
	if totalQuestions == 0 {
		return 0
	}
	var sum float64
	for _, rec := range responses {
		sum += rec.Result.Score
	}
	return math.Round(sum/float64(totalQuestions)*10) / 10
}

// Results aggregates a session's answers into the overall summary, marking
// the interview completed on first call.
func (s InterviewService) Results(ctx domain.Context, id string) (domain.Interview, domain.InterviewSummary, error) {
	iv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Interview{}, domain.InterviewSummary{}, err
	}
	results := make([]domain.AnswerResult, 0, len(iv.Responses))
	for _, rec := range iv.Responses {
		results = append(results, rec.Result)
	}
	var recs []string
	if iv.ResumeReport != nil {
		recs = iv.ResumeReport.Recommendations
	}
	summary := interview.Summarize(results, recs)

	if iv.Status != domain.InterviewCompleted {
		now := time.Now().UTC()
		iv.Status = domain.InterviewCompleted
		iv.CompletedAt = &now
		if err := s.Repo.Update(ctx, iv); err != nil {
			return domain.Interview{}, domain.InterviewSummary{}, err
		}
		observability.InterviewsCompletedTotal.WithLabelValues(iv.Role).Inc()
	}
	return iv, summary, nil
}

// ScoreForRole scores an answer against a catalog question without any
// session state. Used by the stateless scoring endpoint.
func (s InterviewService) ScoreForRole(ctx domain.Context, role string, questionIndex int, answer string) (domain.AnswerResult, error) {
	result, err := interview.ScoreForRole(s.Bank.Bank(), role, questionIndex, answer)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	observability.AnswerScoreHistogram.Observe(result.Score)
	obsctx.LoggerFromContext(ctx).Debug("ad-hoc answer scored", "role", role, "question_index", questionIndex, "score", result.Score)
	return result, nil
}

// Get loads a session without touching it.
func (s InterviewService) Get(ctx domain.Context, id string) (domain.Interview, error) {
	return s.Repo.Get(ctx, id)
}

// ListRecent returns the newest stored sessions up to limit.
func (s InterviewService) ListRecent(ctx domain.Context, limit int) ([]domain.Interview, error) {
	return s.Repo.ListRecent(ctx, limit)
}

// Stats returns the stored-interview aggregates for the dashboard surface.
func (s InterviewService) Stats(ctx domain.Context) (domain.InterviewStats, error) {
	return s.Repo.Stats(ctx)
}
