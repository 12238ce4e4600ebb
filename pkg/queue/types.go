// Package queue implements the job execution machinery: the worker pool
// that claims pending jobs, the workflow/phase/chain runners that drive a
// plan to a terminal status, cancellation, and orphan recovery.
package queue

import (
	"context"
	"time"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/config"
)

// JobExecutor runs a claimed job to its terminal status.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.AnalysisJob) error
}

// WorkerHealth is a snapshot of one worker's state.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// PoolHealth is the health document served by the health endpoint.
type PoolHealth struct {
	IsHealthy        bool             `json:"is_healthy"`
	DBReachable      bool             `json:"db_reachable"`
	DBError          string           `json:"db_error,omitempty"`
	PodID            string           `json:"pod_id"`
	ActiveWorkers    int              `json:"active_workers"`
	TotalWorkers     int              `json:"total_workers"`
	ActiveJobs       int              `json:"active_jobs"`
	QueueDepth       int              `json:"queue_depth"`
	WorkerStats      []WorkerHealth   `json:"worker_stats"`
	LastOrphanScan   time.Time        `json:"last_orphan_scan,omitzero"`
	OrphansRecovered int              `json:"orphans_recovered"`
	CatalogFindings  []config.Finding `json:"catalog_findings,omitempty"`
}
