// Command server runs the sentiment relay HTTP API.
//
// @title       Sentiment Relay API
// @version     1.0
// @description Relays batches of sentences to Azure Text Analytics v3.1 sentiment analysis.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-sentiment-relay/internal/config"
	httpapi "github.com/tbourn/go-sentiment-relay/internal/http"
	"github.com/tbourn/go-sentiment-relay/internal/observability"
	"github.com/tbourn/go-sentiment-relay/internal/services"
	"github.com/tbourn/go-sentiment-relay/internal/sysutil"
	"github.com/tbourn/go-sentiment-relay/internal/textanalytics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

// run owns every deferred cleanup so they complete before main exits.
func run() error {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(os.Stderr, cfg.LogPretty, cfg.LogLevel)
	for _, w := range cfg.Warnings() {
		log.Warn().Msg(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.OTEL, cfg.Environment, version)
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown")
		}
	}()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	svc := services.NewSentimentService(textanalytics.New(cfg.Upstream))
	httpapi.RegisterRoutes(r, svc, cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	log.Info().
		Str("addr", srv.Addr).
		Str("env", cfg.Environment).
		Str("version", version).
		Msg("server listening")
	return serve(ctx, srv, shutdownGrace)
}

// serve runs srv until ctx is cancelled, then drains it within grace. A
// listener failure, such as the port already being in use, is returned.
func serve(ctx context.Context, srv *http.Server, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
