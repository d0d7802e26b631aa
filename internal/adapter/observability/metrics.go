package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	ResumeScoreHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_score",
			Help:    "Distribution of resume scores per dimension ([0,10])",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		[]string{"dimension"},
	)
	AnswerScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "answer_score",
			Help:    "Distribution of per-answer scores ([0,10])",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	InterviewsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviews_started_total",
			Help: "Total number of interviews started",
		},
		[]string{"role"},
	)
	InterviewsCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviews_completed_total",
			Help: "Total number of interviews completed",
		},
		[]string{"role"},
	)

	QuestionSourceLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_catalog_loads_total",
			Help: "Question catalog loads by source (api, file, default)",
		},
		[]string{"source"},
	)

	ChatRepliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Chatbot replies by matched topic",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// InitMetrics registers all collectors once per process.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			ResumeScoreHistogram,
			AnswerScoreHistogram,
			InterviewsStartedTotal,
			InterviewsCompletedTotal,
			QuestionSourceLoads,
			ChatRepliesTotal,
		)
	})
}

// ObserveResumeScores records one resume report's dimension scores.
func ObserveResumeScores(skills, experience, education, overall float64) {
	ResumeScoreHistogram.WithLabelValues("skills").Observe(skills)
	ResumeScoreHistogram.WithLabelValues("experience").Observe(experience)
	ResumeScoreHistogram.WithLabelValues("education").Observe(education)
	ResumeScoreHistogram.WithLabelValues("overall").Observe(overall)
}

// HTTPMetricsMiddleware records request counts and latency per chi route.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, http.StatusText(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
