package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
	"github.com/exegete-ai/exegete/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the background orphan
// scan.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	backend  database.Backend
	cfg      *config.Config
	executor JobExecutor
	jobs     *services.JobService
	registry *CancelRegistry
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, backend database.Backend, cfg *config.Config, executor JobExecutor, jobs *services.JobService, registry *CancelRegistry) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		backend:  backend,
		cfg:      cfg,
		executor: executor,
		jobs:     jobs,
		registry: registry,
		workers:  make([]*Worker, 0, cfg.Settings.Queue.Workers),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan scan background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	settings := p.cfg.Settings.Queue
	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", settings.Workers)

	for i := 0; i < settings.Workers; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.backend, settings, p.executor, p.jobs, p.registry)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// CancelJob triggers cancellation for a job running on this pod.
// Returns true when the job was found locally.
func (p *WorkerPool) CancelJob(jobID string) bool {
	return p.registry.Cancel(jobID)
}

// Health returns the current health status of the pool, including the
// catalog validation findings collected at startup.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.AnalysisJob.Query().
		Where(analysisjob.StatusEQ(analysisjob.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeJobs, errA := p.client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusRunning),
			analysisjob.PodID(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastScan
	orphansRecovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active jobs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveJobs:       activeJobs,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
		CatalogFindings:  p.cfg.Findings,
	}
}
