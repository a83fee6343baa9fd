package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wordboard/backend/internal/api"
	"github.com/wordboard/backend/internal/bankfile"
	"github.com/wordboard/backend/internal/infrastructure/config"
	"github.com/wordboard/backend/internal/media"
	"github.com/wordboard/backend/internal/service"
	"github.com/wordboard/backend/internal/store"

	_ "github.com/wordboard/backend/docs" // generated swagger docs
)

// @title           Word Board API
// @version         1.0
// @description     Vocabulary quiz board: filter a question bank, draw questions, answer them and export the history.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBFilePath())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	levels := bankfile.NewAggregator(cfg.LevelPath(), cfg.LevelReaders)
	resolver := media.NewResolver(cfg.MediaPath(), "/media")
	sessions := service.NewSessionService(db, levels, service.Paths{
		AllFile:   cfg.BankAllPath(),
		AliasFile: cfg.BankPath(),
	}, resolver, logger)

	if cfg.RebuildOnStart {
		report, err := sessions.RebuildBank(context.Background())
		if err != nil {
			logger.Error("initial bank rebuild failed", "error", err)
		} else if !report.Written {
			logger.Info("no level files with rows, keeping existing bank", "path", cfg.BankPath())
		}
	}

	handler := api.NewHandler(sessions, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)
	mux.Handle("GET "+resolver.Prefix()+"/", resolver.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: RequestID → Recoverer → Logging → CORS → mux ──
	chained := api.Chain(mux, logger, cfg.CORSOrigins)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chained,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
