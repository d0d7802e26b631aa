// Package interview scores free-text answers against their question's
// keyword set, maps scores onto feedback tiers, aggregates per-answer results
// into an interview summary, and selects role-appropriate questions. All
// functions are pure over their inputs and the immutable question bank.
package interview

import (
	"math"
	"strings"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/pkg/textx"
)

// Per-answer feedback tiers, first match wins, lower bounds inclusive.
const (
	FeedbackExcellent = "Excellent answer! You covered the key concepts clearly and in depth."
	FeedbackGood      = "Good answer. You touched on several of the important points."
	FeedbackAverage   = "Average answer. Try to go deeper into the core concepts."
	feedbackMissing   = "Try to include concepts like: "
)

// ScoreAnswer scores one answer against its question. Keyword coverage is
// worth up to 6 points, answer length up to 4 (capped at 25+ words), and the
// total is clamped to 10 and rounded to one decimal. A question with no
// keywords scores 0 on the keyword component.
func ScoreAnswer(q domain.Question, answer string) domain.AnswerResult {
	lower := strings.ToLower(answer)

	var keywordScore float64
	var missing []string
	if len(q.Keywords) > 0 {
		found := 0
		for _, kw := range q.Keywords {
			if textx.ContainsToken(lower, strings.ToLower(kw)) {
				found++
			} else {
				missing = append(missing, kw)
			}
		}
		keywordScore = float64(found) / float64(len(q.Keywords)) * 6
	}

	words := textx.WordCount(answer)
	lengthScore := math.Min(4, float64(words)/25)

	total := round1(math.Min(10, keywordScore+lengthScore))
	return domain.AnswerResult{
		Score:    total,
		Feedback: feedbackFor(total, missing),
		Analysis: domain.AnswerAnalysis{
			WordCount:     words,
			SentenceCount: textx.SentenceCount(answer),
		},
	}
}

func feedbackFor(score float64, missing []string) string {
	switch {
	case score >= 8:
		return FeedbackExcellent
	case score >= 6:
		return FeedbackGood
	case score >= 4:
		return FeedbackAverage
	default:
		if len(missing) == 0 {
			return FeedbackAverage
		}
		return feedbackMissing + strings.Join(missing, ", ")
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
