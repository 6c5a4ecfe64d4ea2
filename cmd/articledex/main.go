package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/articledex/internal/config"
	"github.com/kailas-cloud/articledex/internal/db"
	dbRedis "github.com/kailas-cloud/articledex/internal/db/redis"
	"github.com/kailas-cloud/articledex/internal/domain/language"
	logpkg "github.com/kailas-cloud/articledex/internal/logger"
	"github.com/kailas-cloud/articledex/internal/metrics"
	articlerepo "github.com/kailas-cloud/articledex/internal/repository/article"
	searchrepo "github.com/kailas-cloud/articledex/internal/repository/search"
	chiTransport "github.com/kailas-cloud/articledex/internal/transport/chi"
	articleuc "github.com/kailas-cloud/articledex/internal/usecase/article"
	healthuc "github.com/kailas-cloud/articledex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/articledex/internal/usecase/search"
	"github.com/kailas-cloud/articledex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting articledex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	ctx := context.Background()

	// No configured store is not fatal: the service starts in degraded
	// mode and every search resolves through the fallback matcher.
	var store db.Store
	if len(cfg.Database.Addrs) > 0 {
		redisStore, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer redisStore.Close()

		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := redisStore.WaitForReady(ctx, readiness); err != nil {
			logger.Error("Database not ready, continuing degraded", zap.Error(err))
		} else {
			logger.Info("Connected to database")
		}
		store = redisStore
	} else {
		logger.Warn("No database configured, starting in degraded mode")
	}

	if store != nil {
		ensureIndexes(ctx, store, logger)
	}

	metrics.RegisterSearchMetrics()

	// Pass nil interfaces (not typed nil pointers!) when the store is absent.
	var (
		articleRepository articleuc.Repository
		engine            searchuc.Engine
		reader            searchuc.ArticleReader
		pinger            healthuc.DBPinger
		indexes           healthuc.IndexChecker
	)
	if store != nil {
		repo := articlerepo.New(store)
		articleRepository = repo
		reader = repo
		engine = searchrepo.New(store, cfg.Search.SummaryWords)
		pinger = store
		indexes = store
	}

	articleSvc := articleuc.New(articleRepository)
	searchSvc := searchuc.New(engine, reader, cfg.Search.MaxResults)
	healthSvc := healthuc.New(pinger, indexes)

	server := chiTransport.NewServer(articleSvc, searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// ensureIndexes creates the per-language FT indexes. An index that already
// exists is fine; any other failure is logged and left to the fallback path.
func ensureIndexes(ctx context.Context, store db.IndexManager, logger *zap.Logger) {
	for _, p := range language.Profiles() {
		def := searchrepo.IndexDefinition(p)
		err := store.CreateIndex(ctx, def)
		switch {
		case err == nil:
			logger.Info("Created search index", zap.String("index", def.Name))
		case errors.Is(err, db.ErrIndexExists):
			logger.Info("Search index present", zap.String("index", def.Name))
		default:
			logger.Error("Failed to create search index",
				zap.String("index", def.Name),
				zap.Error(err),
			)
		}
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
