package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
)

// PgxPool is a minimal subset of pgxpool used by the repo for easy testing.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// InterviewRepo persists interview sessions using a minimal pgx pool.
type InterviewRepo struct{ Pool PgxPool }

// NewInterviewRepo constructs an InterviewRepo with the given pool.
func NewInterviewRepo(p PgxPool) *InterviewRepo { return &InterviewRepo{Pool: p} }

// Create inserts a new interview and returns its id (generates one if empty).
func (r *InterviewRepo) Create(ctx domain.Context, iv domain.Interview) (string, error) {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.Create")
	defer span.End()
	id := iv.ID
	if id == "" {
		id = uuid.New().String()
	}
	questions, responses, report, err := marshalDocs(iv)
	if err != nil {
		return "", fmt.Errorf("op=interview.create: %w", err)
	}
	q := `INSERT INTO interviews (id, candidate_name, job_role, status, overall_score, total_questions, completed_questions, questions, responses, resume_report, questions_source, started_at, completed_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err = r.Pool.Exec(ctx, q, id, iv.CandidateName, iv.Role, iv.Status, iv.Score,
		iv.TotalQuestions, iv.CompletedQuestions, questions, responses, report,
		iv.QuestionsSource, iv.StartedAt.UTC(), iv.CompletedAt)
	if err != nil {
		return "", fmt.Errorf("op=interview.create: %w", err)
	}
	return id, nil
}

// Update rewrites the mutable columns of an interview row.
func (r *InterviewRepo) Update(ctx domain.Context, iv domain.Interview) error {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.Update")
	defer span.End()
	questions, responses, report, err := marshalDocs(iv)
	if err != nil {
		return fmt.Errorf("op=interview.update: %w", err)
	}
	q := `UPDATE interviews SET status=$2, overall_score=$3, total_questions=$4, completed_questions=$5,
	      questions=$6, responses=$7, resume_report=$8, completed_at=$9 WHERE id=$1`
	tag, err := r.Pool.Exec(ctx, q, iv.ID, iv.Status, iv.Score, iv.TotalQuestions,
		iv.CompletedQuestions, questions, responses, report, iv.CompletedAt)
	if err != nil {
		return fmt.Errorf("op=interview.update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=interview.update: %w", domain.ErrNotFound)
	}
	return nil
}

// Get loads an interview by id.
func (r *InterviewRepo) Get(ctx domain.Context, id string) (domain.Interview, error) {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.Get")
	defer span.End()
	q := `SELECT id, candidate_name, job_role, status, overall_score, total_questions, completed_questions,
	      questions, responses, resume_report, questions_source, started_at, completed_at
	      FROM interviews WHERE id=$1`
	iv, err := scanInterview(r.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Interview{}, fmt.Errorf("op=interview.get: %w", domain.ErrNotFound)
		}
		return domain.Interview{}, fmt.Errorf("op=interview.get: %w", err)
	}
	return iv, nil
}

// ListRecent returns the newest interviews first.
func (r *InterviewRepo) ListRecent(ctx domain.Context, limit int) ([]domain.Interview, error) {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.ListRecent")
	defer span.End()
	if limit <= 0 {
		limit = 10
	}
	q := `SELECT id, candidate_name, job_role, status, overall_score, total_questions, completed_questions,
	      questions, responses, resume_report, questions_source, started_at, completed_at
	      FROM interviews ORDER BY started_at DESC LIMIT $1`
	rows, err := r.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("op=interview.list: %w", err)
	}
	defer rows.Close()
	var out []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("op=interview.list: %w", err)
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=interview.list: %w", err)
	}
	return out, nil
}

// Stats aggregates stored interviews: totals, averages, the completed-score
// distribution (0-2 through 8-10 buckets), and per-role rollups.
func (r *InterviewRepo) Stats(ctx domain.Context) (domain.InterviewStats, error) {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.Stats")
	defer span.End()

	stats := domain.InterviewStats{Distribution: map[string]int64{
		"0-2": 0, "2-4": 0, "4-6": 0, "6-8": 0, "8-10": 0,
	}}

	q := `SELECT COUNT(*),
	             COUNT(*) FILTER (WHERE status='completed'),
	             COUNT(*) FILTER (WHERE status='in_progress'),
	             COALESCE(AVG(overall_score) FILTER (WHERE status='completed'), 0),
	             COALESCE(MAX(overall_score) FILTER (WHERE status='completed'), 0),
	             COALESCE(MIN(overall_score) FILTER (WHERE status='completed'), 0)
	      FROM interviews`
	if err := r.Pool.QueryRow(ctx, q).Scan(&stats.Total, &stats.Completed, &stats.InProgress,
		&stats.AvgScore, &stats.HighestScore, &stats.LowestScore); err != nil {
		return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `SELECT overall_score FROM interviews WHERE status='completed'`)
	if err != nil {
		return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
		}
		stats.Distribution[bucketFor(score)]++
	}
	if err := rows.Err(); err != nil {
		return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
	}

	roleRows, err := r.Pool.Query(ctx, `SELECT job_role, COUNT(*),
	       COUNT(*) FILTER (WHERE status='completed'),
	       COALESCE(AVG(overall_score) FILTER (WHERE status='completed'), 0)
	       FROM interviews GROUP BY job_role ORDER BY COUNT(*) DESC`)
	if err != nil {
		return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
	}
	defer roleRows.Close()
	for roleRows.Next() {
		var rs domain.RoleStat
		if err := roleRows.Scan(&rs.Role, &rs.Total, &rs.Completed, &rs.AvgScore); err != nil {
			return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
		}
		stats.Roles = append(stats.Roles, rs)
	}
	if err := roleRows.Err(); err != nil {
		return domain.InterviewStats{}, fmt.Errorf("op=interview.stats: %w", err)
	}
	return stats, nil
}

// Delete removes an interview row.
func (r *InterviewRepo) Delete(ctx domain.Context, id string) error {
	tracer := otel.Tracer("repo.interviews")
	ctx, span := tracer.Start(ctx, "interviews.Delete")
	defer span.End()
	tag, err := r.Pool.Exec(ctx, `DELETE FROM interviews WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("op=interview.delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=interview.delete: %w", domain.ErrNotFound)
	}
	return nil
}

func bucketFor(score float64) string {
	switch {
	case score < 2:
		return "0-2"
	case score < 4:
		return "2-4"
	case score < 6:
		return "4-6"
	case score < 8:
		return "6-8"
	default:
		return "8-10"
	}
}

func marshalDocs(iv domain.Interview) (questions, responses []byte, report *[]byte, err error) {
	questions, err = json.Marshal(iv.Questions)
	if err != nil {
		return nil, nil, nil, err
	}
	responses, err = json.Marshal(iv.Responses)
	if err != nil {
		return nil, nil, nil, err
	}
	if iv.ResumeReport != nil {
		data, err := json.Marshal(iv.ResumeReport)
		if err != nil {
			return nil, nil, nil, err
		}
		report = &data
	}
	return questions, responses, report, nil
}

func scanInterview(row pgx.Row) (domain.Interview, error) {
	var iv domain.Interview
	var questions, responses []byte
	var report *[]byte
	var completedAt *time.Time
	if err := row.Scan(&iv.ID, &iv.CandidateName, &iv.Role, &iv.Status, &iv.Score,
		&iv.TotalQuestions, &iv.CompletedQuestions, &questions, &responses, &report,
		&iv.QuestionsSource, &iv.StartedAt, &completedAt); err != nil {
		return domain.Interview{}, err
	}
	if err := json.Unmarshal(questions, &iv.Questions); err != nil {
		return domain.Interview{}, err
	}
	if err := json.Unmarshal(responses, &iv.Responses); err != nil {
		return domain.Interview{}, err
	}
	if report != nil {
		iv.ResumeReport = &domain.ResumeReport{}
		if err := json.Unmarshal(*report, iv.ResumeReport); err != nil {
			return domain.Interview{}, err
		}
	}
	iv.CompletedAt = completedAt
	return iv, nil
}
