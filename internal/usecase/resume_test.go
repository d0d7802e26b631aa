package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/usecase"
)

type stubExtractor struct {
	text string
	err  error
	seen string
}

func (x *stubExtractor) ExtractPath(_ domain.Context, fileName, path string) (string, error) {
	x.seen = fileName
	if x.err != nil {
		return "", x.err
	}
	_ = path
	return x.text, nil
}

func TestResume_AnalyzeText(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(nil)
	report := svc.AnalyzeText("Python and AWS, 5 years, bachelor degree")
	assert.Equal(t, 1.0, report.SkillsScore)
	assert.Equal(t, 5.0, report.ExperienceScore)
	assert.Equal(t, 3.0, report.EducationScore)
}

func TestResume_AnalyzeUpload_Txt(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(nil)
	report, degraded, err := svc.AnalyzeUpload(context.Background(), "cv.txt", []byte("Python developer, 3 years"))
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, 5.0, report.ExperienceScore)
}

func TestResume_AnalyzeUpload_PdfViaExtractor(t *testing.T) {
	t.Parallel()
	x := &stubExtractor{text: "Java engineer with 7 years"}
	svc := usecase.NewResumeService(x)
	report, degraded, err := svc.AnalyzeUpload(context.Background(), "cv.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, "cv.pdf", x.seen)
	assert.Equal(t, 5.0, report.ExperienceScore)
}

func TestResume_AnalyzeUpload_ExtractionFailureDegrades(t *testing.T) {
	t.Parallel()
	x := &stubExtractor{err: domain.ErrParseFailure}
	svc := usecase.NewResumeService(x)
	report, degraded, err := svc.AnalyzeUpload(context.Background(), "cv.docx", []byte("garbage"))
	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Zero(t, report.SkillsScore)
	assert.Zero(t, report.OverallScore)
	assert.NotEmpty(t, report.Recommendations)
}

func TestResume_AnalyzeUpload_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	svc := usecase.NewResumeService(nil)
	_, _, err := svc.AnalyzeUpload(context.Background(), "cv.exe", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
