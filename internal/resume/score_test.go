package resume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/resume"
)

func facts(skills int, years int, degrees int, words int) domain.ResumeFacts {
	f := domain.ResumeFacts{
		Skills:          map[domain.SkillCategory][]string{},
		ExperienceYears: years,
		WordCount:       words,
	}
	for i := 0; i < skills; i++ {
		f.Skills[domain.CategoryProgramming] = append(f.Skills[domain.CategoryProgramming], "x")
	}
	for i := 0; i < degrees; i++ {
		f.EducationDegrees = append(f.EducationDegrees, "bachelor")
	}
	return f
}

func TestScore_Dimensions(t *testing.T) {
	t.Parallel()
	skills, experience, education, overall := resume.Score(facts(4, 5, 1, 100))
	assert.Equal(t, 2.0, skills)
	assert.Equal(t, 5.0, experience)
	assert.Equal(t, 3.0, education)
	assert.InDelta(t, (2.0+5.0+3.0)/3, overall, 1e-9)
}

func TestScore_Clamping(t *testing.T) {
	t.Parallel()
	skills, _, education, _ := resume.Score(facts(40, 2, 9, 100))
	assert.Equal(t, 10.0, skills)
	assert.Equal(t, 10.0, education)
}

func TestScore_ExperienceIsBinary(t *testing.T) {
	t.Parallel()
	_, one, _, _ := resume.Score(facts(0, 1, 0, 0))
	_, thirty, _, _ := resume.Score(facts(0, 30, 0, 0))
	_, none, _, _ := resume.Score(facts(0, domain.ExperienceUnspecified, 0, 0))
	assert.Equal(t, 5.0, one)
	assert.Equal(t, 5.0, thirty)
	assert.Equal(t, 0.0, none)
}

func TestRecommend_Rules(t *testing.T) {
	t.Parallel()
	weak := resume.Recommend(facts(2, domain.ExperienceUnspecified, 0, 50), 1, 0)
	assert.Equal(t, []string{resume.RecommendSkills, resume.RecommendYears, resume.RecommendDetail}, weak)

	solid := resume.Recommend(facts(20, 5, 2, 500), 10, 5)
	assert.Equal(t, []string{resume.RecommendReady}, solid)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	t.Parallel()
	report := resume.Analyze("Python, Java, AWS, Docker. 5 years of experience. Master's degree in CS.")
	require.Equal(t, 4, report.Facts.TotalSkills())
	assert.Equal(t, 2.0, report.SkillsScore)
	assert.Equal(t, 5.0, report.ExperienceScore)
	assert.Equal(t, 3.0, report.EducationScore)
	assert.InDelta(t, 10.0/3, report.OverallScore, 1e-9)
	assert.NotEmpty(t, report.Recommendations)
}

func TestAnalyze_EmptyText(t *testing.T) {
	t.Parallel()
	report := resume.Analyze("")
	assert.Zero(t, report.SkillsScore)
	assert.Zero(t, report.ExperienceScore)
	assert.Zero(t, report.EducationScore)
	assert.Zero(t, report.OverallScore)
	assert.Equal(t, []string{resume.RecommendSkills, resume.RecommendYears, resume.RecommendDetail}, report.Recommendations)
}
