// Exegete orchestrator server: provides the HTTP API, manages queue
// workers, and runs multi-phase document analyses.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	ctxbroker "github.com/exegete-ai/exegete/pkg/analysis/context"
	"github.com/exegete-ai/exegete/pkg/api"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/planner"
	"github.com/exegete-ai/exegete/pkg/presenter"
	"github.com/exegete-ai/exegete/pkg/queue"
	"github.com/exegete-ai/exegete/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

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
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting exegete",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Load the catalog and runtime settings
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Catalog loaded",
		"engines", stats.Engines,
		"chains", stats.Chains,
		"stances", stats.Stances,
		"workflows", stats.Workflows,
		"views", stats.Views,
		"findings", stats.Findings)

	// 2. Connect to the database (runs migrations)
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
	slog.Info("Connected to database", "backend", dbClient.Backend())

	// 3. Domain services
	jobService := services.NewJobService(dbClient.Client,
		cfg.Settings.Execution.IdempotencyWindow, cfg.Settings.Queue.StaleJobCap)
	outputService := services.NewOutputService(dbClient.Client)
	documentService := services.NewDocumentService(dbClient.Client)
	presentationService := services.NewPresentationService(dbClient.Client)
	refinementService := services.NewRefinementService(dbClient.Client)
	polishService := services.NewPolishService(dbClient.Client)

	// 4. LLM client. Absence of the key disables planning, refinement, and
	// polishing; everything else keeps working.
	var caller llm.Caller
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey != "" {
		llmClient, err := llm.NewClient(apiKey)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		caller = llmClient
		slog.Info("LLM client initialized")
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set, LLM-consuming endpoints disabled")
	}

	// 5. Planner
	var pl *planner.Planner
	if caller != nil {
		sampler := planner.NewSampler(caller, documentService)
		pl = planner.NewPlanner(cfg, caller, sampler)
	}

	// 6. Execution pipeline
	broker := ctxbroker.NewBroker(outputService, cfg.Settings.Execution.MaxContextChars)
	chainRunner := queue.NewChainRunner(cfg, caller, outputService, broker)
	phaseRunner := queue.NewPhaseRunner(cfg, caller, outputService, documentService,
		broker, chainRunner, cfg.Settings.Execution.WorkParallelism)
	workflowRunner := queue.NewWorkflowRunner(cfg, jobService, outputService,
		broker, phaseRunner, cfg.Settings.Execution.PhaseParallelism)

	registry := queue.NewCancelRegistry()
	var planGen queue.PlanGenerator
	if pl != nil {
		planGen = pl
	}
	executor := queue.NewExecutor(jobService, workflowRunner, registry, planGen)

	// 7. Recover jobs interrupted by the previous process
	if err := queue.RecoverStartupOrphans(ctx, jobService, cfg.Settings.Queue.OrphanGracePeriod); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
		// Non-fatal: the periodic scan retries
	}

	// 8. Worker pool. Without an LLM this replica cannot execute jobs, so
	// it leaves them pending for a configured replica to claim.
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, dbClient.Backend(),
		cfg, executor, jobService, registry)
	if caller != nil {
		if err := workerPool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("Worker pool not started: no LLM configured")
	}

	// 9. Retention sweep
	sweeper := queue.NewRetentionSweeper(jobService, cfg.Settings.Retention)
	sweeper.Start(ctx)

	// 10. Presenter
	transformExecutor := presenter.NewTransformExecutor(caller)
	bridge := presenter.NewBridge(cfg, outputService, presentationService, transformExecutor)
	assembler := presenter.NewAssembler(cfg, bridge, outputService, presentationService, refinementService)
	var refiner *presenter.Refiner
	var polisher *presenter.Polisher
	if caller != nil {
		refiner = presenter.NewRefiner(cfg, caller, refinementService)
		polisher = presenter.NewPolisher(cfg, caller, assembler, polishService)
	}
	presenterService := presenter.NewService(jobService, refiner, polisher,
		bridge, assembler, presentationService)

	// 11. HTTP server
	httpServer := api.NewServer(cfg, dbClient, jobService, outputService,
		documentService, pl, presenterService, workerPool, registry)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Exegete started",
		"pod_id", podID,
		"workers", cfg.Settings.Queue.Workers,
		"llm_configured", caller != nil)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: drain workers first so running jobs reach a
	// clean checkpoint, then stop accepting HTTP traffic.
	sweeper.Stop()
	workerPool.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Exegete stopped")
}
