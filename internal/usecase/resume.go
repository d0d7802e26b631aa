// Package usecase wires the pure evaluation engine to the transport,
// persistence, and extraction adapters.
package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	obsctx "github.com/rishi6824/AIinterview-and-resume-analyser/internal/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/resume"
	"github.com/rishi6824/AIinterview-and-resume-analyser/pkg/textx"
)

// ResumeService analyzes uploaded resume documents.
type ResumeService struct {
	Extractor domain.TextExtractor
}

// NewResumeService constructs a ResumeService with the given extractor.
func NewResumeService(x domain.TextExtractor) ResumeService { return ResumeService{Extractor: x} }

// AnalyzeText runs the full resume pipeline over already-extracted text.
func (s ResumeService) AnalyzeText(text string) domain.ResumeReport {
	report := resume.Analyze(text)
	observability.ObserveResumeScores(report.SkillsScore, report.ExperienceScore, report.EducationScore, report.OverallScore)
	return report
}

// AnalyzeUpload extracts text from an uploaded document and analyzes it.
// Unrecognized extensions fail with ErrUnsupportedFormat; extraction and
// parse failures degrade to empty-text analysis (all-zero facts) so a broken
// document never fails the evaluation. The degraded flag tells the caller no
// usable text was recovered.
func (s ResumeService) AnalyzeUpload(ctx domain.Context, fileName string, data []byte) (domain.ResumeReport, bool, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".txt":
		return s.AnalyzeText(textx.SanitizeText(string(data))), false, nil
	case ".pdf", ".docx":
		text, err := s.extractViaTemp(ctx, fileName, data)
		if err != nil {
			obsctx.LoggerFromContext(ctx).Warn("resume extraction failed, analyzing empty text",
				"file", fileName, "error", err)
			return s.AnalyzeText(""), true, nil
		}
		return s.AnalyzeText(text), false, nil
	default:
		return domain.ResumeReport{}, false, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

// extractViaTemp stages the upload in the system temp dir for the extractor,
// which takes a file path.
func (s ResumeService) extractViaTemp(ctx domain.Context, fileName string, data []byte) (string, error) {
	if s.Extractor == nil {
		return "", fmt.Errorf("%w: no extractor configured", domain.ErrParseFailure)
	}
	tmp, err := os.CreateTemp("", "resume-*")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmp.Name()); _ = tmp.Close() }()
	if _, err := tmp.Write(data); err != nil {
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		return "", err
	}
	return s.Extractor.ExtractPath(ctx, fileName, tmp.Name())
}
