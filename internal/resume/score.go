package resume

import (
	"math"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// Improvement recommendations, evaluated in order; each rule triggers
// independently so a report may carry several.
const (
	RecommendSkills = "Consider adding more technical skills relevant to your target role."
	RecommendYears  = "Highlight your professional experience with quantified achievements."
	RecommendDetail = "Your resume is brief; expand on projects and responsibilities."
	RecommendReady  = "Your resume looks solid. Focus your preparation on behavioral questions."
)

// Score derives the per-dimension scores from extracted facts. All scores are
// clamped to [0,10].
//
// The experience dimension is a binary presence signal: any stated years
// figure scores 5 regardless of magnitude.
func Score(facts domain.ResumeFacts) (skills, experience, education, overall float64) {
	skills = clamp10(float64(facts.TotalSkills()) / 2)
	if facts.HasExperience() {
		experience = 5
	}
	education = clamp10(float64(len(facts.EducationDegrees)) * 3)
	overall = (skills + experience + education) / 3
	return skills, experience, education, overall
}

// Recommend produces the ordered recommendation list for a scored resume.
func Recommend(facts domain.ResumeFacts, skillsScore, experienceScore float64) []string {
	var recs []string
	if skillsScore < 6 {
		recs = append(recs, RecommendSkills)
	}
	if experienceScore < 5 {
		recs = append(recs, RecommendYears)
	}
	if facts.WordCount < 200 {
		recs = append(recs, RecommendDetail)
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendReady)
	}
	return recs
}

// Analyze is the full resume pipeline: extract facts, score them, and attach
// recommendations. It is total: empty text yields an all-zero report.
func Analyze(text string) domain.ResumeReport {
	facts := ExtractFacts(text)
	skills, experience, education, overall := Score(facts)
	return domain.ResumeReport{
		Facts:           facts,
		SkillsScore:     skills,
		ExperienceScore: experience,
		EducationScore:  education,
		OverallScore:    overall,
		Recommendations: Recommend(facts, skills, experience),
	}
}

func clamp10(v float64) float64 { return math.Min(10, math.Max(0, v)) }
