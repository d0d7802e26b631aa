// Package resume turns raw resume text into categorized facts, scores, and
// improvement recommendations. Everything here is a pure function of its
// input text: malformed or empty text yields empty facts, never an error.
package resume

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/pkg/textx"
)

// skillVocabulary is the fixed per-category skill term list. Matching is
// case-insensitive whole-token containment against the lower-cased text.
var skillVocabulary = map[domain.SkillCategory][]string{
	domain.CategoryProgramming: {
		"python", "java", "javascript", "typescript", "c++", "c#", "go",
		"rust", "ruby", "php", "swift", "kotlin", "scala",
	},
	domain.CategoryWeb: {
		"html", "css", "react", "angular", "vue", "django", "flask",
		"node.js", "express", "spring", "rails", "next.js",
	},
	domain.CategoryDatabases: {
		"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite",
		"oracle", "cassandra", "elasticsearch", "dynamodb",
	},
	domain.CategoryCloud: {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
		"terraform", "ansible", "ci/cd", "git", "linux",
	},
	domain.CategoryDataScience: {
		"machine learning", "deep learning", "pandas", "numpy",
		"tensorflow", "pytorch", "scikit-learn", "data analysis",
		"nlp", "statistics", "computer vision",
	},
	domain.CategorySoftSkills: {
		"leadership", "communication", "teamwork", "problem solving",
		"project management", "agile", "scrum", "mentoring",
		"collaboration", "time management",
	},
}

// degreeVocabulary lists recognized degree names in presentation order.
var degreeVocabulary = []string{
	"bachelor", "bachelors", "b.tech", "b.e", "bsc", "b.sc",
	"master", "masters", "m.tech", "msc", "m.sc", "mba",
	"phd", "ph.d", "doctorate", "diploma",
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// ExtractSkills returns, per category, the vocabulary terms present in text.
// Categories with no matches are omitted from the map.
func ExtractSkills(text string) map[domain.SkillCategory][]string {
	lower := strings.ToLower(text)
	out := make(map[domain.SkillCategory][]string)
	for _, cat := range domain.SkillCategories {
		var found []string
		for _, term := range skillVocabulary[cat] {
			if textx.ContainsToken(lower, term) {
				found = append(found, term)
			}
		}
		if len(found) > 0 {
			out[cat] = found
		}
	}
	return out
}

// ExtractExperienceYears returns the integer from the first "<N> years"
// occurrence, or domain.ExperienceUnspecified when the text never states one.
func ExtractExperienceYears(text string) int {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return domain.ExperienceUnspecified
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.ExperienceUnspecified
	}
	return n
}

// ExtractEducation returns the ordered distinct degree names found in text.
func ExtractEducation(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, deg := range degreeVocabulary {
		if textx.ContainsToken(lower, deg) {
			out = append(out, deg)
		}
	}
	return out
}

// ExtractFacts runs all three extractors plus an independent word count.
func ExtractFacts(text string) domain.ResumeFacts {
	return domain.ResumeFacts{
		Skills:           ExtractSkills(text),
		ExperienceYears:  ExtractExperienceYears(text),
		EducationDegrees: ExtractEducation(text),
		WordCount:        textx.WordCount(text),
	}
}
