// Command server exposes the grammar annotation engine as a JSON REST
// API for the trainer front end.
//
// Endpoints:
//
//	GET /api/analyze?text=<sentence>
//	GET /api/sentence?source=local|tatoeba|wordnik
//	GET /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/cours-d-anglais/grammatica"
	"github.com/cours-d-anglais/grammatica/internal/config"
	"github.com/cours-d-anglais/grammatica/sentences"
	"github.com/cours-d-anglais/grammatica/spacy"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides GRAMMATICA_ADDR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if *addr != "" {
		cfg.App.Addr = *addr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	oracle := spacy.NewClient(
		cfg.Oracle.URL,
		time.Duration(cfg.Oracle.TimeoutSeconds)*time.Second,
		logger.Named("spacy"),
	)
	provider := sentences.NewProvider(
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
		cfg.Provider.WordnikKey,
		logger.Named("sentences"),
	)
	srv := newServer(grammatica.New(), oracle, provider, logger.Named("http"))

	corsMW := cors.New(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	})
	handler := corsMW.Handler(withRequestID(accessLog(logger.Named("http"), srv.routes())))

	httpServer := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.App.Addr),
			zap.String("env", string(cfg.App.Env)),
			zap.String("oracle", cfg.Oracle.URL),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.App.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.App.Env == config.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.App.LogLevel, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
