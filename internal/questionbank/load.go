package questionbank

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gopkg.in/yaml.v3"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// Catalog source labels, reported alongside evaluation results so operators
// can see where questions came from.
const (
	SourceAPI     = "api"
	SourceFile    = "file"
	SourceDefault = "default"
)

//go:embed catalog.json
var defaultCatalog []byte

// Load builds the process-wide question bank. A configured remote source is
// tried first under a bounded backoff; on any failure the loader falls back
// to the local file (when configured) and finally to the embedded default
// catalog. Degradation is logged but never surfaced: Load always returns a
// usable bank.
func Load(ctx context.Context, src domain.QuestionSource, timeout time.Duration, path string) (*Bank, string) {
	if src != nil {
		if bank, err := fetchRemote(ctx, src, timeout); err == nil {
			slog.Info("question catalog loaded from remote source", slog.Int("questions", bank.Len()))
			return bank, SourceAPI
		} else {
			slog.Warn("remote question source unavailable, falling back to local catalog", slog.Any("error", err))
		}
	}
	if path != "" {
		if catalog, err := LoadFile(path); err == nil {
			slog.Info("question catalog loaded from file", slog.String("path", path))
			return New(catalog), SourceFile
		} else {
			slog.Warn("local question file unusable, falling back to embedded catalog", slog.String("path", path), slog.Any("error", err))
		}
	}
	catalog, err := parseCatalog(defaultCatalog, false)
	if err != nil {
		// The embedded catalog is validated by tests; reaching this means a
		// broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded question catalog invalid: %v", err))
	}
	return New(catalog), SourceDefault
}

// DefaultCatalog returns a mutable copy of the embedded catalog. The
// management CLI seeds new catalog files from it.
func DefaultCatalog() map[string][]domain.Question {
	catalog, err := parseCatalog(defaultCatalog, false)
	if err != nil {
		panic(fmt.Sprintf("embedded question catalog invalid: %v", err))
	}
	return catalog
}

func fetchRemote(ctx context.Context, src domain.QuestionSource, timeout time.Duration) (*Bank, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var catalog map[string][]domain.Question
	op := func() error {
		var err error
		catalog, err = src.Fetch(ctx)
		return err
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = timeout
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("op=questionbank.fetch: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("op=questionbank.fetch: %w: empty catalog", domain.ErrSourceUnavailable)
	}
	return New(catalog), nil
}

// wireQuestion is the JSON/YAML shape of one catalog entry.
type wireQuestion struct {
	Question   string   `json:"question" yaml:"question"`
	Type       string   `json:"type" yaml:"type"`
	Difficulty string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// LoadFile reads a role-keyed catalog from a JSON or YAML file (by
// extension) and validates every entry.
func LoadFile(path string) (map[string][]domain.Question, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied catalog path
	if err != nil {
		return nil, fmt.Errorf("op=questionbank.load_file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	return parseCatalog(data, ext == ".yaml" || ext == ".yml")
}

// SaveFile writes a catalog as indented JSON, the management CLI's format.
func SaveFile(path string, catalog map[string][]domain.Question) error {
	wire := make(map[string][]wireQuestion, len(catalog))
	for role, qs := range catalog {
		ws := make([]wireQuestion, 0, len(qs))
		for _, q := range qs {
			ws = append(ws, wireQuestion{
				Question:   q.Text,
				Type:       string(q.Type),
				Difficulty: string(q.Difficulty),
				Keywords:   q.Keywords,
			})
		}
		wire[role] = ws
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return fmt.Errorf("op=questionbank.save_file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // catalog is not secret
		return fmt.Errorf("op=questionbank.save_file: %w", err)
	}
	return nil
}

func parseCatalog(data []byte, isYAML bool) (map[string][]domain.Question, error) {
	var wire map[string][]wireQuestion
	if isYAML {
		if err := yaml.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("op=questionbank.parse: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("op=questionbank.parse: %w", err)
		}
	}
	catalog := make(map[string][]domain.Question, len(wire))
	for role, ws := range wire {
		qs := make([]domain.Question, 0, len(ws))
		for i, w := range ws {
			q, err := buildQuestion(w)
			if err != nil {
				return nil, fmt.Errorf("op=questionbank.parse: role %q entry %d: %w", role, i, err)
			}
			qs = append(qs, q)
		}
		catalog[role] = qs
	}
	return catalog, nil
}

// buildQuestion validates field presence at construction time rather than at
// point of use.
func buildQuestion(w wireQuestion) (domain.Question, error) {
	if strings.TrimSpace(w.Question) == "" {
		return domain.Question{}, fmt.Errorf("%w: missing question text", domain.ErrInvalidArgument)
	}
	var qt domain.QuestionType
	switch domain.QuestionType(w.Type) {
	case domain.QuestionTechnical, domain.QuestionBehavioral:
		qt = domain.QuestionType(w.Type)
	default:
		return domain.Question{}, fmt.Errorf("%w: bad question type %q", domain.ErrInvalidArgument, w.Type)
	}
	var diff domain.Difficulty
	switch domain.Difficulty(w.Difficulty) {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard, "":
		diff = domain.Difficulty(w.Difficulty)
	default:
		return domain.Question{}, fmt.Errorf("%w: bad difficulty %q", domain.ErrInvalidArgument, w.Difficulty)
	}
	return domain.Question{
		Text:       strings.TrimSpace(w.Question),
		Type:       qt,
		Difficulty: diff,
		Keywords:   w.Keywords,
	}, nil
}
