package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/services"
)

// orphanScanInterval is how often the background scan looks for running
// jobs whose heartbeat went silent.
const orphanScanInterval = time.Minute

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// RecoverStartupOrphans re-queues jobs abandoned by a previous process.
// Called once during startup, before the worker pool begins claiming.
//
// A job carrying a plan snapshot (or at least a request snapshot) is reset
// to pending — a worker will re-claim it and the output watermark skips
// everything already persisted. A job carrying neither snapshot cannot be
// resumed: it is failed once it is older than the grace period, and left
// alone when younger, since a peer process may still be generating its plan.
func RecoverStartupOrphans(ctx context.Context, jobs *services.JobService, grace time.Duration) error {
	live, err := jobs.ListLive(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan for orphans: %w", err)
	}
	if len(live) == 0 {
		return nil
	}

	for _, job := range live {
		if err := recoverOrphan(ctx, jobs, job, grace); err != nil {
			slog.Error("Failed to recover orphan", "job_id", job.ID, "error", err)
		}
	}
	return nil
}

func recoverOrphan(ctx context.Context, jobs *services.JobService, job *ent.AnalysisJob, grace time.Duration) error {
	log := slog.With("job_id", job.ID, "status", job.Status)

	hasSnapshot := len(job.PlanSnapshot) > 0 || len(job.RequestSnapshot) > 0
	if hasSnapshot {
		if job.Status == analysisjob.StatusPending && job.PodID == nil {
			// Never claimed; the queue will pick it up on its own
			return nil
		}
		if err := jobs.ResetToPending(ctx, job.ID); err != nil {
			return err
		}
		log.Info("Orphan re-queued for resume")
		return nil
	}

	if time.Since(job.CreatedAt) <= grace {
		log.Info("Snapshot-less job within grace period, leaving alone")
		return nil
	}
	_, err := jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusFailed,
		"process terminated unexpectedly before a plan was stored")
	if err != nil {
		return err
	}
	log.Warn("Snapshot-less orphan failed")
	return nil
}

// runOrphanScan periodically re-queues running jobs whose heartbeat is
// older than the grace period. All pods run this independently — resetting
// to pending is idempotent and the claim path is race-safe.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(orphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanForOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// scanForOrphans finds running jobs with stale heartbeats and re-queues the
// resumable ones.
func (p *WorkerPool) scanForOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.cfg.Settings.Queue.OrphanGracePeriod)

	orphans, err := p.client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusRunning),
			analysisjob.LastInteractionAtNotNil(),
			analysisjob.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	recovered := 0
	for _, job := range orphans {
		if p.registry.IsCancelled(job.ID) {
			continue
		}
		// A job this pod is actively running heartbeats through the worker;
		// a stale heartbeat means the owning pod died mid-execution.
		if job.PodID != nil && *job.PodID == p.podID {
			continue
		}
		if len(job.PlanSnapshot) == 0 && len(job.RequestSnapshot) == 0 {
			if _, err := p.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusFailed,
				"process terminated unexpectedly before a plan was stored"); err != nil {
				slog.Error("Failed to fail orphan", "job_id", job.ID, "error", err)
			}
			continue
		}
		if err := p.jobs.ResetToPending(ctx, job.ID); err != nil {
			slog.Error("Failed to re-queue orphan", "job_id", job.ID, "error", err)
			continue
		}
		slog.Warn("Orphaned job re-queued for resume", "job_id", job.ID, "old_pod_id", job.PodID)
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()
	return nil
}
