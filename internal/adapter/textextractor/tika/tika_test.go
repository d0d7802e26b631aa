package tika_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/textextractor/tika"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

func stageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractPath_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tika", r.URL.Path)
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "%PDF-raw", string(body))
		_, _ = w.Write([]byte("  Extracted resume text\x00 \n"))
	}))
	defer srv.Close()

	c := tika.New(srv.URL)
	text, err := c.ExtractPath(context.Background(), "cv.pdf", stageFile(t, "%PDF-raw"))
	require.NoError(t, err)
	assert.Equal(t, "Extracted resume text", text)
}

func TestExtractPath_ServerErrorIsParseFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := tika.New(srv.URL)
	_, err := c.ExtractPath(context.Background(), "cv.docx", stageFile(t, "junk"))
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestExtractPath_MissingFile(t *testing.T) {
	t.Parallel()
	c := tika.New("http://127.0.0.1:1")
	_, err := c.ExtractPath(context.Background(), "cv.pdf", "/does/not/exist")
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestExtractPath_UnreachableServer(t *testing.T) {
	t.Parallel()
	c := tika.New("http://127.0.0.1:1")
	_, err := c.ExtractPath(context.Background(), "cv.pdf", stageFile(t, "data"))
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestPing(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte("Apache Tika 2.9.0"))
	}))
	defer srv.Close()

	assert.NoError(t, tika.New(srv.URL).Ping(context.Background()))
	assert.Error(t, tika.New("http://127.0.0.1:1").Ping(context.Background()))
}
