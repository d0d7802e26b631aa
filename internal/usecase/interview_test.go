package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/config"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/interview"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/usecase"
)

type memRepo struct {
	seq   int
	items map[string]domain.Interview
}

func newMemRepo() *memRepo { return &memRepo{items: map[string]domain.Interview{}} }

func (r *memRepo) Create(_ domain.Context, iv domain.Interview) (string, error) {
	r.seq++
	id := fmt.Sprintf("iv-%d", r.seq)
	iv.ID = id
	r.items[id] = iv
	return id, nil
}

func (r *memRepo) Update(_ domain.Context, iv domain.Interview) error {
	if _, ok := r.items[iv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[iv.ID] = iv
	return nil
}

func (r *memRepo) Get(_ domain.Context, id string) (domain.Interview, error) {
	iv, ok := r.items[id]
	if !ok {
		return domain.Interview{}, domain.ErrNotFound
	}
	return iv, nil
}

func (r *memRepo) ListRecent(_ domain.Context, limit int) ([]domain.Interview, error) {
	out := make([]domain.Interview, 0, len(r.items))
	for _, iv := range r.items {
		out = append(out, iv)
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) Stats(_ domain.Context) (domain.InterviewStats, error) {
	return domain.InterviewStats{Total: int64(len(r.items))}, nil
}

func (r *memRepo) Delete(_ domain.Context, id string) error {
	delete(r.items, id)
	return nil
}

func testStore() *questionbank.Store {
	bank := questionbank.New(map[string][]domain.Question{
		"backend_developer": {
			{Text: "Explain indexes.", Type: domain.QuestionTechnical, Keywords: []string{"btree", "scan", "selectivity", "cardinality"}},
			{Text: "Tell me about a failure.", Type: domain.QuestionBehavioral},
			{Text: "Explain caching.", Type: domain.QuestionTechnical, Keywords: []string{"ttl", "eviction"}},
		},
	})
	return questionbank.NewStore(bank, questionbank.SourceDefault)
}

func testCfg() config.Config {
	return config.Config{MinQuestions: 1, MaxQuestions: 15, DefaultQuestions: 3}
}

func TestInterview_StartAndSubmit(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc := usecase.NewInterviewService(repo, testStore(), testCfg())

	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 2, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, iv.ID)
	assert.Equal(t, 2, iv.TotalQuestions)
	assert.Equal(t, domain.InterviewInProgress, iv.Status)
	assert.Equal(t, questionbank.SourceDefault, iv.QuestionsSource)

	res, completed, err := svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality and more context about query planning")
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Greater(t, res.Score, 6.0)

	_, completed, err = svc.SubmitAnswer(context.Background(), iv.ID, 1, "We missed a deadline and I owned the recovery.")
	require.NoError(t, err)
	assert.True(t, completed)

	stored, err := svc.Get(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CompletedQuestions)
	assert.Len(t, stored.Responses, 2)
}

func TestInterview_Start_UnknownRole(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	_, err := svc.Start(context.Background(), "Dana", "astronaut", 2, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestInterview_Start_ClampsCount(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 99, nil)
	require.NoError(t, err)
	// Clamped to the configured max, then to the role's catalog size.
	assert.Equal(t, 3, iv.TotalQuestions)
}

func TestInterview_SubmitAnswer_RejectsResubmission(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc := usecase.NewInterviewService(repo, testStore(), testCfg())
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 3, nil)
	require.NoError(t, err)

	_, completed, err := svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality")
	require.NoError(t, err)
	assert.False(t, completed)

	// Answering the same question again must not re-score or complete.
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	stored, err := svc.Get(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CompletedQuestions)
	assert.Len(t, stored.Responses, 1)
	assert.Equal(t, domain.InterviewInProgress, stored.Status)
	// One 6.2 answer out of three questions.
	assert.InDelta(t, 2.1, stored.Score, 1e-9)
}

func TestInterview_StoredScoreIsPerQuestionAverage(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc := usecase.NewInterviewService(repo, testStore(), testCfg())
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 3, nil)
	require.NoError(t, err)

	// Per-answer scores: 6.2 (4 keywords, 4 words), 0.4 (no keywords,
	// 9 words), 6.3 (2 keywords, 7 words). Average over 3 questions: 4.3.
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality")
	require.NoError(t, err)
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 1, "We missed a deadline and I owned the recovery.")
	require.NoError(t, err)
	_, completed, err := svc.SubmitAnswer(context.Background(), iv.ID, 2, "ttl based eviction keeps the cache fresh")
	require.NoError(t, err)
	assert.True(t, completed)

	stored, err := svc.Get(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, stored.Score, 1e-9)
	assert.LessOrEqual(t, stored.Score, 10.0)
}

func TestInterview_SubmitAnswer_InvalidIndex(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 2, nil)
	require.NoError(t, err)

	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 5, "answer")
	assert.ErrorIs(t, err, domain.ErrInvalidQuestionIndex)
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, -1, "answer")
	assert.ErrorIs(t, err, domain.ErrInvalidQuestionIndex)
}

func TestInterview_SubmitAnswer_UnknownSession(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	_, _, err := svc.SubmitAnswer(context.Background(), "missing", 0, "answer")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInterview_Results_MarksCompleted(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc := usecase.NewInterviewService(repo, testStore(), testCfg())
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 1, nil)
	require.NoError(t, err)
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 0, "btree scan selectivity cardinality")
	require.NoError(t, err)

	got, summary, err := svc.Results(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Greater(t, summary.OverallPercentage, 0.0)

	// Second call is idempotent on the completion timestamp.
	again, _, err := svc.Results(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.Equal(t, got.CompletedAt.Unix(), again.CompletedAt.Unix())
}

func TestInterview_Results_FoldsResumeRecommendations(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	report := &domain.ResumeReport{
		SkillsScore:     9,
		ExperienceScore: 5,
		Recommendations: []string{"Expand project detail."},
	}
	iv, err := svc.Start(context.Background(), "Dana", "backend_developer", 1, report)
	require.NoError(t, err)
	_, _, err = svc.SubmitAnswer(context.Background(), iv.ID, 0, "short")
	require.NoError(t, err)

	_, summary, err := svc.Results(context.Background(), iv.ID)
	require.NoError(t, err)
	assert.Contains(t, summary.Feedback, "Expand project detail.")
}

func TestInterview_ScoreForRole(t *testing.T) {
	t.Parallel()
	svc := usecase.NewInterviewService(newMemRepo(), testStore(), testCfg())
	// Both keywords (6.0) plus a 7-word answer (0.28) lands in the good tier.
	res, err := svc.ScoreForRole(context.Background(), "backend_developer", 2, "ttl based eviction keeps the cache fresh")
	require.NoError(t, err)
	assert.Equal(t, interview.FeedbackGood, res.Feedback)

	_, err = svc.ScoreForRole(context.Background(), "astronaut", 0, "x")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}
