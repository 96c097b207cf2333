// PrepCoach - Interview Preparation Coach Server
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
	"github.com/joho/godotenv"

	"github.com/prepcoach/prepcoach/internal/api"
	"github.com/prepcoach/prepcoach/internal/config"
	"github.com/prepcoach/prepcoach/internal/conversation"
	"github.com/prepcoach/prepcoach/internal/middleware"
	"github.com/prepcoach/prepcoach/internal/model"
	"github.com/prepcoach/prepcoach/internal/notify"
	"github.com/prepcoach/prepcoach/internal/planner"
	"github.com/prepcoach/prepcoach/internal/search"
	"github.com/prepcoach/prepcoach/internal/store"
	"github.com/prepcoach/prepcoach/internal/task"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "async", cfg.AsyncEnabled, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Optional external model service over gRPC.
	var modelClient *model.Client
	var interp conversation.Interpreter
	var gen planner.Generator = planner.TemplateGenerator{}
	if cfg.ModelAgentAddr != "" {
		slog.Info("Connecting to model service via gRPC", "address", cfg.ModelAgentAddr)
		modelClient, err = model.NewClient(cfg.ModelAgentAddr, logger)
		if err != nil {
			slog.Warn("Model service unavailable, falling back to deterministic extraction and template plans", "error", err)
		} else {
			defer modelClient.Close()
			interp = modelClient
			gen = modelClient
		}
	} else {
		slog.Info("Model service disabled (MODEL_AGENT_ADDR not set)")
	}

	var searcher search.Provider
	if cfg.EnableWebSearch {
		searcher = search.NewDuckDuckGo(nil)
	} else {
		slog.Info("Web search disabled, plans will omit resource links")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Task subsystem: registry, delivery dispatcher, plan runner.
	registry := task.NewRegistry(repo)
	dispatcher := notify.NewDispatcher(registry, nil, notify.Config{
		MaxAttempts:    cfg.Delivery.MaxAttempts,
		AttemptTimeout: cfg.Delivery.AttemptTimeout,
		BackoffBase:    cfg.Delivery.BackoffBase,
		AuthToken:      cfg.Delivery.AuthToken,
		BaseAPIURL:     cfg.Delivery.BaseAPIURL,
	})

	redeliver, err := registry.Restore(context.Background())
	if err != nil {
		slog.Error("Failed to restore task registry", "error", err)
		os.Exit(1)
	}
	for _, taskID := range redeliver {
		dispatcher.Dispatch(ctx, taskID)
	}

	runner := planner.NewRunner(ctx, registry, gen, searcher, dispatcher, cfg.ProcessingDelay)
	extractor := conversation.NewExtractor(interp)
	manager := conversation.NewManager(extractor, runner, repo, cfg.AsyncEnabled)
	runner.OnFinish = manager.FinishGeneration

	// Initialize handlers.
	baseHandler := api.NewHandler(manager, registry)
	sessionHandler := api.NewSessionHandler(baseHandler)
	eventsHandler := api.NewEventsHandler(registry, cfg.FrontendURL, cfg.IsDevelopment())
	taskHandler := api.NewTaskHandler(baseHandler, eventsHandler)
	var modelCheck api.ModelChecker
	if modelClient != nil {
		modelCheck = modelClient
	}
	healthHandler := api.NewHealthHandler(repo, modelCheck)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	healthHandler.RegisterHealth(r)
	sessionHandler.RegisterRoutes(r)
	taskHandler.RegisterRoutes(r)

	// Create server. WriteTimeout stays 0 so WebSocket event streams are not
	// cut off mid-task.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	// Start retention worker.
	task.StartRetentionWorker(ctx, registry, cfg.TaskRetention)
	slog.Info("Retention worker started", "retention", cfg.TaskRetention)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Let in-flight callback deliveries finish their current attempt.
	dispatcher.Wait()

	slog.Info("Server stopped successfully")
}
