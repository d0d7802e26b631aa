// Command server starts the interview evaluator HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	redishist "github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/chathistory/redis"
	httpserver "github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/httpserver"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/questionsource/httpapi"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/repo/postgres"
	tikaext "github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/textextractor/tika"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/app"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/chatbot"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/config"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/usecase"
)

// redisAdapter narrows *redis.Client to the readiness interface.
type redisAdapter struct{ *redis.Client }

func (r redisAdapter) Ping(ctx context.Context) app.RedisPingResult { return r.Client.Ping(ctx) }

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := postgres.InitSchema(ctx, pool); err != nil {
		slog.Error("db schema init failed", slog.Any("error", err))
		os.Exit(1)
	}
	repo := postgres.NewInterviewRepo(pool)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	history := redishist.New(rdb, cfg.MaxChatHistory)

	// Question bank: remote source first, local file next, embedded last.
	var src domain.QuestionSource
	if cfg.QuestionsAPIURL != "" {
		src = httpapi.New(cfg.QuestionsAPIURL, cfg.QuestionsAPIKey, cfg.QuestionsAPITimeout)
	}
	bank, source := questionbank.Load(ctx, src, cfg.QuestionsAPITimeout, cfg.QuestionsFile)
	store := questionbank.NewStore(bank, source)
	observability.QuestionSourceLoads.WithLabelValues(source).Inc()
	slog.Info("question bank loaded", slog.String("source", source), slog.Int("roles", len(bank.Roles())))

	ext := tikaext.New(cfg.TikaURL)

	resumeSvc := usecase.NewResumeService(ext)
	interviewSvc := usecase.NewInterviewService(repo, store, cfg)
	chatSvc := usecase.NewChatService(chatbot.New(cfg.ChatbotName), history)

	dbCheck, redisCheck, tikaCheck := app.BuildReadinessChecks(cfg, pool, redisAdapter{rdb})

	srv := httpserver.NewServer(cfg, resumeSvc, interviewSvc, chatSvc, store, dbCheck, redisCheck, tikaCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
	_ = rdb.Close()
	pool.Close()
}
