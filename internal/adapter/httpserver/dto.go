package httpserver

import (
	"time"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

type questionResponse struct {
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

func questionDTOs(qs []domain.Question) []questionResponse {
	out := make([]questionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionResponse{
			Text:       q.Text,
			Type:       string(q.Type),
			Difficulty: string(q.Difficulty),
			Keywords:   q.Keywords,
		})
	}
	return out
}

type analysisResponse struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}

type resultResponse struct {
	Score    float64          `json:"score"`
	Feedback string           `json:"feedback"`
	Analysis analysisResponse `json:"analysis"`
}

func resultDTO(r domain.AnswerResult) resultResponse {
	return resultResponse{
		Score:    r.Score,
		Feedback: r.Feedback,
		Analysis: analysisResponse{
			WordCount:     r.Analysis.WordCount,
			SentenceCount: r.Analysis.SentenceCount,
		},
	}
}

func resultDTOs(rs []domain.AnswerResult) []resultResponse {
	out := make([]resultResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, resultDTO(r))
	}
	return out
}

type reportResponse struct {
	Skills           map[string][]string `json:"skills"`
	ExperienceYears  *int                `json:"experience_years"`
	EducationDegrees []string            `json:"education_degrees"`
	WordCount        int                 `json:"word_count"`
	SkillsScore      float64             `json:"skills_score"`
	ExperienceScore  float64             `json:"experience_score"`
	EducationScore   float64             `json:"education_score"`
	OverallScore     float64             `json:"overall_score"`
	Recommendations  []string            `json:"recommendations"`
}

func reportDTO(r domain.ResumeReport) reportResponse {
	skills := make(map[string][]string, len(r.Facts.Skills))
	for cat, names := range r.Facts.Skills {
		skills[string(cat)] = names
	}
	resp := reportResponse{
		Skills:           skills,
		EducationDegrees: r.Facts.EducationDegrees,
		WordCount:        r.Facts.WordCount,
		SkillsScore:      r.SkillsScore,
		ExperienceScore:  r.ExperienceScore,
		EducationScore:   r.EducationScore,
		OverallScore:     r.OverallScore,
		Recommendations:  r.Recommendations,
	}
	if r.Facts.HasExperience() {
		years := r.Facts.ExperienceYears
		resp.ExperienceYears = &years
	}
	return resp
}

func interviewDTO(iv domain.Interview, withQuestions bool) map[string]any {
	out := map[string]any{
		"id":                  iv.ID,
		"candidate_name":      iv.CandidateName,
		"role":                iv.Role,
		"status":              string(iv.Status),
		"score":               iv.Score,
		"total_questions":     iv.TotalQuestions,
		"completed_questions": iv.CompletedQuestions,
		"questions_source":    iv.QuestionsSource,
		"started_at":          iv.StartedAt.Format(time.RFC3339),
	}
	if iv.CompletedAt != nil {
		out["completed_at"] = iv.CompletedAt.Format(time.RFC3339)
	}
	if withQuestions {
		out["questions"] = questionDTOs(iv.Questions)
	}
	return out
}

type roleStatResponse struct {
	Role      string  `json:"role"`
	Total     int64   `json:"total"`
	Completed int64   `json:"completed"`
	AvgScore  float64 `json:"avg_score"`
}

type statsResponse struct {
	Total        int64              `json:"total"`
	Completed    int64              `json:"completed"`
	InProgress   int64              `json:"in_progress"`
	AvgScore     float64            `json:"avg_score"`
	HighestScore float64            `json:"highest_score"`
	LowestScore  float64            `json:"lowest_score"`
	Distribution map[string]int64   `json:"score_distribution"`
	Roles        []roleStatResponse `json:"roles"`
}

func statsDTO(s domain.InterviewStats) statsResponse {
	roles := make([]roleStatResponse, 0, len(s.Roles))
	for _, r := range s.Roles {
		roles = append(roles, roleStatResponse{Role: r.Role, Total: r.Total, Completed: r.Completed, AvgScore: r.AvgScore})
	}
	dist := s.Distribution
	if dist == nil {
		dist = map[string]int64{}
	}
	return statsResponse{
		Total:        s.Total,
		Completed:    s.Completed,
		InProgress:   s.InProgress,
		AvgScore:     s.AvgScore,
		HighestScore: s.HighestScore,
		LowestScore:  s.LowestScore,
		Distribution: dist,
		Roles:        roles,
	}
}
