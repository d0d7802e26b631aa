package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/questionsource/httpapi"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

func TestFetch_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"qa_engineer":[{"question":"Define flaky tests.","type":"technical","difficulty":"easy","keywords":["retry"]}]}`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, "secret", time.Second)
	catalog, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog["qa_engineer"], 1)
	q := catalog["qa_engineer"][0]
	assert.Equal(t, "Define flaky tests.", q.Text)
	assert.Equal(t, domain.QuestionTechnical, q.Type)
	assert.Equal(t, []string{"retry"}, q.Keywords)
}

func TestFetch_NoAuthHeaderWithoutKey(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, "", time.Second)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
}

func TestFetch_Failures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{broken`))
		}},
		{"empty question text", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"r":[{"question":"","type":"technical"}]}`))
		}},
		{"bad question type", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"r":[{"question":"Q","type":"riddle"}]}`))
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := httpapi.New(srv.URL, "", time.Second)
			_, err := c.Fetch(context.Background())
			assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		})
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	t.Parallel()
	c := httpapi.New("http://127.0.0.1:1", "", 200*time.Millisecond)
	_, err := c.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
