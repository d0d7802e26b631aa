package interview

import (
	"math"
	"strings"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// Overall narrative tiers keyed by the interview percentage.
const (
	SummaryOutstanding = "Outstanding interview performance across the board."
	SummaryStrong      = "Strong interview performance overall."
	SummaryFair        = "Fair interview performance with clear room to grow."
	SummaryWeak        = "The interview shows significant room for improvement."
)

// Summarize aggregates per-answer results into the overall percentage and a
// single narrative string that folds in any resume recommendations. An empty
// result set yields 0 percent rather than dividing by zero.
func Summarize(results []domain.AnswerResult, recommendations []string) domain.InterviewSummary {
	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	pct := 0.0
	if len(results) > 0 {
		pct = sum / (float64(len(results)) * 10) * 100
	}
	pct = math.Round(pct*10) / 10

	parts := []string{tierFor(pct)}
	parts = append(parts, recommendations...)
	return domain.InterviewSummary{
		Results:           results,
		OverallPercentage: pct,
		Feedback:          strings.Join(parts, " "),
	}
}

func tierFor(pct float64) string {
	switch {
	case pct >= 80:
		return SummaryOutstanding
	case pct >= 60:
		return SummaryStrong
	case pct >= 40:
		return SummaryFair
	default:
		return SummaryWeak
	}
}
