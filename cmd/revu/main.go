// revu review server: exposes the submission and dashboard HTTP API,
// streams review progress over WebSocket, and runs the review worker pool.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/koreview/revu/pkg/api"
	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/database"
	"github.com/koreview/revu/pkg/events"
	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/llm"
	"github.com/koreview/revu/pkg/orchestrator"
	"github.com/koreview/revu/pkg/pages"
	"github.com/koreview/revu/pkg/queue"
	"github.com/koreview/revu/pkg/retrieval"
	"github.com/koreview/revu/pkg/services"
	"github.com/koreview/revu/pkg/stage"
)

const (
	wsWriteTimeout = 10 * time.Second

	// Completed-job event rows older than this are swept periodically.
	// Per-job cleanup happens shortly after completion; the sweep only
	// catches rows orphaned by crashes.
	eventTTL           = 24 * time.Hour
	eventSweepInterval = time.Hour
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting revu", "addr", cfg.Server.Addr, "pod_id", podID)

	// 2. Connect to the database and run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	jobService := services.NewJobService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. External clients
	llmClient := llm.NewClient(cfg.LLM)
	searcher := retrieval.NewClient(cfg.Retrieval, cfg.Review.BPCaseCount)

	var pageSource pages.Source
	if cfg.Pages.BaseURL != "" {
		pageSource = pages.NewWikiClient(cfg.Pages)
		slog.Info("Wiki page source initialized", "base_url", cfg.Pages.BaseURL)
	} else {
		slog.Warn("WIKI_BASE_URL not set, page submission disabled")
	}

	// 5. Streaming infrastructure
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, wsWriteTimeout)
	eventPublisher := events.NewEventPublisher(dbClient.DB(), connManager)
	slog.Info("Streaming infrastructure initialized")

	// 6. Review pipeline
	inbox := feedback.NewInbox()
	orch := orchestrator.New(
		jobService,
		eventPublisher,
		stage.Effects{LLM: llmClient, Retrieval: searcher},
		inbox,
		cfg.Review,
	)

	// 7. Worker pool (before the HTTP server so claimed jobs have workers)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, queue.NewOrchestratorExecutor(orch))
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Background event sweep
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go runEventSweep(sweepCtx, eventService)

	// 9. HTTP server
	apiServer := api.NewServer(cfg, jobService, inbox, connManager, pageSource, llmClient, dbClient, workerPool)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiServer.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("revu started successfully", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then close the listener.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// runEventSweep deletes event rows past their retention window until ctx is
// cancelled.
func runEventSweep(ctx context.Context, eventService *services.EventService) {
	ticker := time.NewTicker(eventSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := eventService.CleanupOldEvents(ctx, eventTTL)
			if err != nil {
				slog.Error("Event sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				slog.Info("Swept old events", "deleted", deleted)
			}
		}
	}
}
