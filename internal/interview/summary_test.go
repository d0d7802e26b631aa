package interview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/interview"
)

func results(scores ...float64) []domain.AnswerResult {
	out := make([]domain.AnswerResult, 0, len(scores))
	for _, s := range scores {
		out = append(out, domain.AnswerResult{Score: s})
	}
	return out
}

func TestSummarize_Percentage(t *testing.T) {
	t.Parallel()
	s := interview.Summarize(results(8, 6, 7), nil)
	assert.InDelta(t, 70.0, s.OverallPercentage, 1e-9)
	assert.Equal(t, interview.SummaryStrong, s.Feedback)
}

func TestSummarize_NoAnswers(t *testing.T) {
	t.Parallel()
	s := interview.Summarize(nil, nil)
	assert.Equal(t, 0.0, s.OverallPercentage)
	assert.Equal(t, interview.SummaryWeak, s.Feedback)
}

func TestSummarize_Tiers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"outstanding at the 80 boundary", []float64{8, 8}, interview.SummaryOutstanding},
		{"strong", []float64{6, 7}, interview.SummaryStrong},
		{"fair", []float64{4, 5}, interview.SummaryFair},
		{"weak", []float64{2, 3}, interview.SummaryWeak},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := interview.Summarize(results(tt.scores...), nil)
			assert.Equal(t, tt.want, s.Feedback)
		})
	}
}

func TestSummarize_FoldsRecommendations(t *testing.T) {
	t.Parallel()
	s := interview.Summarize(results(9, 9), []string{"Add more skills.", "Expand detail."})
	assert.Equal(t, interview.SummaryOutstanding+" Add more skills. Expand detail.", s.Feedback)
}

func TestSummarize_Rounding(t *testing.T) {
	t.Parallel()
	// 10.0/3 answers avg -> 33.333...% rounds to 33.3.
	s := interview.Summarize(results(3.3, 3.3, 3.4), nil)
	assert.InDelta(t, 33.3, s.OverallPercentage, 1e-9)
}
