package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/palsson-archive/leit/internal/config"
	"github.com/palsson-archive/leit/internal/db"
	dbMemory "github.com/palsson-archive/leit/internal/db/memory"
	dbRedis "github.com/palsson-archive/leit/internal/db/redis"
	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/i18n"
	"github.com/palsson-archive/leit/internal/index"
	logpkg "github.com/palsson-archive/leit/internal/logger"
	"github.com/palsson-archive/leit/internal/metrics"
	"github.com/palsson-archive/leit/internal/repository/querycache"
	sessionrepo "github.com/palsson-archive/leit/internal/repository/session"
	chiTransport "github.com/palsson-archive/leit/internal/transport/chi"
	healthuc "github.com/palsson-archive/leit/internal/usecase/health"
	searchuc "github.com/palsson-archive/leit/internal/usecase/search"
	sessionuc "github.com/palsson-archive/leit/internal/usecase/session"
	"github.com/palsson-archive/leit/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting leit search server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("session_driver", cfg.Session.Driver),
	)

	// Create session store based on driver
	var store db.Store
	switch cfg.Session.Driver {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Session.Addrs,
			Password: cfg.Session.Password,
		})
	case "memory":
		store = dbMemory.NewStore()
	default:
		logger.Fatal("Unknown session driver", zap.String("driver", cfg.Session.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Session.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Session store not ready", zap.Error(err))
	}
	logger.Info("Connected to session store")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Load the search index once. A failed load leaves search disabled
	// rather than crashing: session restore and health stay up.
	loader := index.NewLoader(
		cfg.Index.Path, cfg.Index.URL,
		time.Duration(cfg.Index.FetchTimeout)*time.Second, logger,
	).WithContentField(cfg.Index.ContentField)
	collection, loadErr := loader.Load(ctx)
	status := index.Status{
		Available: loadErr == nil,
		Documents: collection.Len(),
		LoadedAt:  time.Now().UTC(),
	}
	if loadErr != nil {
		logger.Error("Search index unavailable", zap.Error(loadErr))
		status.LoadedAt = time.Time{}
	}
	metrics.IndexDocuments.Set(float64(collection.Len()))

	// Create use case services
	searchSvc := searchuc.New(collection, logger).
		WithLimits(cfg.Index.MaxResults, cfg.Index.MinQueryChars)
	if cfg.Index.CacheSize > 0 {
		cache, err := querycache.New(cfg.Index.CacheSize)
		if err != nil {
			logger.Fatal("Failed to create result cache", zap.Error(err))
		}
		searchSvc = searchSvc.WithCache(cache)
	}

	sessionSvc := sessionuc.New(sessionrepo.New(store, cfg.Storage.KeyPrefix), logger)

	healthSvc := healthuc.New(store, healthuc.CheckerFunc(func(_ context.Context) error {
		if !status.Available {
			return domain.ErrIndexUnavailable
		}
		return nil
	}))

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, sessionSvc, healthSvc,
		i18n.NewResolver(cfg.Index.DefaultLang), status, logger,
	)

	r := chi.NewRouter()
	r.Use(chiTransport.Recoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

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

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
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
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
