package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
	"github.com/exegete-ai/exegete/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	backend  database.Backend
	settings config.QueueSettings
	executor JobExecutor
	jobs     *services.JobService
	registry *CancelRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, backend database.Backend, settings config.QueueSettings, executor JobExecutor, jobs *services.JobService, registry *CancelRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		backend:      backend,
		settings:     settings,
		executor:     executor,
		jobs:         jobs,
		registry:     registry,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims a job and runs it to a terminal status.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()

	// Register for API-triggered cancellation
	w.registry.Register(job.ID, cancelJob)
	defer w.registry.Unregister(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	// The executor and workflow runner own the terminal transition
	if err := w.executor.Execute(jobCtx, job); err != nil {
		log.Error("Job execution failed", "error", err)
	}

	cancelHeartbeat()

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete")
	return nil
}

// claimNextJob atomically claims the oldest pending job. Postgres uses
// FOR UPDATE SKIP LOCKED; SQLite runs single-writer, so a conditional
// update suffices there.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.AnalysisJob, error) {
	if w.backend == database.BackendPostgres {
		return w.claimWithRowLock(ctx)
	}
	return w.claimWithConditionalUpdate(ctx)
}

// claimWithRowLock is the Postgres claim path.
func (w *Worker) claimWithRowLock(ctx context.Context) (*ent.AnalysisJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, oldest first for FIFO processing
	job, err := tx.AnalysisJob.Query().
		Where(analysisjob.StatusEQ(analysisjob.StatusPending)).
		Order(ent.Asc(analysisjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(analysisjob.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// claimWithConditionalUpdate is the SQLite claim path: select then update
// guarded on status, losing the race just means no job this round.
func (w *Worker) claimWithConditionalUpdate(ctx context.Context) (*ent.AnalysisJob, error) {
	job, err := w.client.AnalysisJob.Query().
		Where(analysisjob.StatusEQ(analysisjob.StatusPending)).
		Order(ent.Asc(analysisjob.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	n, err := w.client.AnalysisJob.Update().
		Where(
			analysisjob.ID(job.ID),
			analysisjob.StatusEQ(analysisjob.StatusPending),
		).
		SetStatus(analysisjob.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}
	if n == 0 {
		// Another worker won the claim
		return nil, ErrNoJobsAvailable
	}
	return w.client.AnalysisJob.Get(ctx, job.ID)
}

// runHeartbeat periodically stamps liveness for orphan detection and folds
// the persisted cancellation status into the local flag, so a cancel issued
// through another pod's API lands within one heartbeat interval.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.settings.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.jobs.Heartbeat(ctx, jobID); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
			if w.jobs.IsCancelled(ctx, jobID) {
				w.registry.MarkCancelled(jobID)
			}
		}
	}
}

// pollInterval returns the claim interval with jitter so idle workers do
// not stampede the claim query in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.settings.ClaimInterval
	jitter := base / 4
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
