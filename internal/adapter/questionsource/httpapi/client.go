// Package httpapi implements domain.QuestionSource against a remote question
// catalog API. Any transport, auth, or decoding failure maps to
// domain.ErrSourceUnavailable so the bank loader can fall back to local data.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// Client fetches the full role-keyed catalog with GET <baseURL>/questions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New constructs a client with a bounded timeout; the loader applies its own
// overall deadline on top.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type wireQuestion struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Fetch retrieves and validates the remote catalog.
func (c *Client) Fetch(ctx domain.Context) (map[string][]domain.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/questions", nil)
	if err != nil {
		return nil, fmt.Errorf("op=questionsource.fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("op=questionsource.fetch: %w: %v", domain.ErrSourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("op=questionsource.fetch: %w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var wire map[string][]wireQuestion
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("op=questionsource.fetch: %w: malformed response: %v", domain.ErrSourceUnavailable, err)
	}

	catalog := make(map[string][]domain.Question, len(wire))
	for role, ws := range wire {
		qs := make([]domain.Question, 0, len(ws))
		for _, w := range ws {
			if strings.TrimSpace(w.Question) == "" {
				return nil, fmt.Errorf("op=questionsource.fetch: %w: empty question for role %q", domain.ErrSourceUnavailable, role)
			}
			qt := domain.QuestionType(w.Type)
			if qt != domain.QuestionTechnical && qt != domain.QuestionBehavioral {
				return nil, fmt.Errorf("op=questionsource.fetch: %w: bad question type %q", domain.ErrSourceUnavailable, w.Type)
			}
			qs = append(qs, domain.Question{
				Text:       strings.TrimSpace(w.Question),
				Type:       qt,
				Difficulty: domain.Difficulty(w.Difficulty),
				Keywords:   w.Keywords,
			})
		}
		catalog[role] = qs
	}
	return catalog, nil
}
