// fivewhysd - HTTP server for the five-whys inquiry engine
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hupe1980/fivewhys/config"
	"github.com/hupe1980/fivewhys/engine"
	"github.com/hupe1980/fivewhys/logging"
	"github.com/hupe1980/fivewhys/server"
	"github.com/hupe1980/fivewhys/session"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewInquiryLogger(logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat))

	logger.Info("Starting server", "port", cfg.Port, "session_capacity", cfg.SessionCapacity, "session_timeout", cfg.SessionTimeout.String())

	store := session.NewInMemoryStore(func(o *session.Options) {
		o.Capacity = cfg.SessionCapacity
		o.IdleTimeout = cfg.SessionTimeout
	})

	eng := engine.New(func(o *engine.Options) {
		o.Store = store
		o.Logger = logger.WithComponent("engine")
	})

	handler := server.NewHandler(eng, logger.WithComponent("server"))

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Mount("/", handler.Routes())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
