package httpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/config"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg        config.Config
	Resume     usecase.ResumeService
	Interviews usecase.InterviewService
	Chat       usecase.ChatService
	Bank       *questionbank.Store
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
	TikaCheck  func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, res usecase.ResumeService, ivs usecase.InterviewService, chat usecase.ChatService, bank *questionbank.Store, dbCheck, redisCheck, tikaCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Resume: res, Interviews: ivs, Chat: chat, Bank: bank, DBCheck: dbCheck, RedisCheck: redisCheck, TikaCheck: tikaCheck}
}

// allowedExt enforces the upload allowlist: .txt, .pdf, .docx
func allowedExt(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".txt") || strings.HasSuffix(n, ".pdf") || strings.HasSuffix(n, ".docx")
}

func allowedMIME(m, filename string) bool {
	m = strings.ToLower(m)
	// Some detectors misclassify rich text, so accept any text/* for .txt
	if strings.HasSuffix(strings.ToLower(filename), ".txt") && strings.HasPrefix(m, "text/") {
		return true
	}
	if strings.HasPrefix(m, "text/plain") {
		return true
	}
	return m == "application/pdf" ||
		m == "application/vnd.openxmlformats-officedocument.wordprocessingml.document" ||
		m == "application/zip" // docx containers sniff as zip
}

// AnalyzeResumeHandler accepts a multipart resume upload and returns the
// structured report. Parse failures degrade to an empty-text report; only an
// unrecognized format is rejected.
func (s *Server) AnalyzeResumeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: apiError{
					Code: "INVALID_ARGUMENT", Message: "payload too large",
					Details: map[string]any{"max_mb": s.Cfg.MaxUploadMB},
				}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument), map[string]string{"field": "resume"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: read: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if !allowedExt(header.Filename) {
			writeError(w, r, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, header.Filename), nil)
			return
		}
		if mt := mimetype.Detect(data); !allowedMIME(mt.String(), header.Filename) {
			writeError(w, r, fmt.Errorf("%w: detected %s", domain.ErrUnsupportedFormat, mt.String()), nil)
			return
		}

		report, degraded, err := s.Resume.AnalyzeUpload(r.Context(), header.Filename, data)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"report":              reportDTO(report),
			"extraction_degraded": degraded,
		})
	}
}

type startInterviewRequest struct {
	CandidateName string `json:"candidate_name" validate:"required,min=1,max=200"`
	Role          string `json:"role" validate:"required,min=1,max=100"`
	NumQuestions  int    `json:"num_questions" validate:"omitempty,min=1,max=50"`
	// ResumeText optionally personalizes question selection.
	ResumeText string `json:"resume_text" validate:"omitempty,max=100000"`
}

// StartInterviewHandler creates a session with role-selected questions.
func (s *Server) StartInterviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startInterviewRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		var report *domain.ResumeReport
		if strings.TrimSpace(req.ResumeText) != "" {
			rep := s.Resume.AnalyzeText(req.ResumeText)
			report = &rep
		}
		iv, err := s.Interviews.Start(r.Context(), req.CandidateName, req.Role, req.NumQuestions, report)
		if err != nil {
			writeError(w, r, err, map[string]any{"available_roles": s.Bank.Bank().Roles()})
			return
		}
		writeJSON(w, http.StatusCreated, interviewDTO(iv, true))
	}
}

// SessionQuestionsHandler returns the questions selected for a session.
func (s *Server) SessionQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iv, err := s.Interviews.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"interview_id":     iv.ID,
			"role":             iv.Role,
			"questions_source": iv.QuestionsSource,
			"questions":        questionDTOs(iv.Questions),
		})
	}
}

type submitAnswerRequest struct {
	QuestionIndex *int   `json:"question_index" validate:"required"`
	Answer        string `json:"answer" validate:"omitempty,max=100000"`
}

// SubmitAnswerHandler scores one answer within a session.
func (s *Server) SubmitAnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitAnswerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		result, completed, err := s.Interviews.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), *req.QuestionIndex, req.Answer)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"result":    resultDTO(result),
			"completed": completed,
		})
	}
}

// ResultsHandler aggregates a session into the overall summary.
func (s *Server) ResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iv, summary, err := s.Interviews.Results(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		body := map[string]any{
			"interview":          interviewDTO(iv, false),
			"overall_percentage": summary.OverallPercentage,
			"feedback":           summary.Feedback,
			"answers":            resultDTOs(summary.Results),
		}
		if iv.ResumeReport != nil {
			body["resume_report"] = reportDTO(*iv.ResumeReport)
		}
		writeJSON(w, http.StatusOK, body)
	}
}

type scoreAnswerRequest struct {
	Role          string `json:"role" validate:"required,min=1,max=100"`
	QuestionIndex *int   `json:"question_index" validate:"required"`
	Answer        string `json:"answer" validate:"omitempty,max=100000"`
}

// ScoreAnswerHandler is the stateless scoring operation: role + catalog
// index + answer, no session involved.
func (s *Server) ScoreAnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreAnswerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		result, err := s.Interviews.ScoreForRole(r.Context(), req.Role, *req.QuestionIndex, req.Answer)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, resultDTO(result))
	}
}

// RolesHandler lists all roles present in the live bank.
func (s *Server) RolesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		bank := s.Bank.Bank()
		writeJSON(w, http.StatusOK, map[string]any{
			"roles":            bank.Roles(),
			"questions_source": s.Bank.Source(),
		})
	}
}

// RoleQuestionsHandler returns the catalog for one role.
func (s *Server) RoleQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := chi.URLParam(r, "role")
		bank := s.Bank.Bank()
		qs := bank.QuestionsFor(role)
		if len(qs) == 0 {
			writeError(w, r, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role),
				map[string]any{"available_roles": bank.Roles()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"role":      role,
			"count":     len(qs),
			"questions": questionDTOs(qs),
		})
	}
}

// ListInterviewsHandler returns recent sessions, newest first.
func (s *Server) ListInterviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 100 {
				writeError(w, r, fmt.Errorf("%w: limit must be 1..100", domain.ErrInvalidArgument), nil)
				return
			}
			limit = n
		}
		ivs, err := s.Interviews.ListRecent(r.Context(), limit)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]map[string]any, 0, len(ivs))
		for _, iv := range ivs {
			out = append(out, interviewDTO(iv, false))
		}
		writeJSON(w, http.StatusOK, map[string]any{"interviews": out})
	}
}

// StatsHandler reports stored-interview aggregates.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Interviews.Stats(r.Context())
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, statsDTO(stats))
	}
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"required,min=1,max=128"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatHandler answers interview-preparation chit-chat.
func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}
		reply, err := s.Chat.Reply(r.Context(), req.SessionID, req.Message)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
	}
}

// ChatTranscriptHandler returns the retained history for a chat session.
func (s *Server) ChatTranscriptHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := s.Chat.Transcript(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		if msgs == nil {
			msgs = []domain.ChatMessage{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
	}
}

// ReadyzHandler reports dependency health.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]func(context.Context) error{
			"db":    s.DBCheck,
			"redis": s.RedisCheck,
			"tika":  s.TikaCheck,
		}
		status := http.StatusOK
		body := map[string]string{}
		for name, check := range checks {
			if check == nil {
				body[name] = "skipped"
				continue
			}
			if err := check(r.Context()); err != nil {
				body[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				body[name] = "ok"
			}
		}
		writeJSON(w, status, body)
	}
}
