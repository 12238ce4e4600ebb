// Package services implements the persistence services over the Ent client:
// jobs, outputs, documents, presentation cache, view refinements.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/models"
)

// nonTerminal are the statuses a job can still move out of.
var nonTerminal = []analysisjob.Status{
	analysisjob.StatusPending,
	analysisjob.StatusRunning,
}

// JobService owns the job lifecycle: creation with idempotency guard,
// cancel-token authorization, stale detection on read, terminal-state
// write-once, and deletion.
type JobService struct {
	client *ent.Client
	log    *slog.Logger

	// Recent-job window scanned by the idempotency guard
	idempotencyWindow int
	// Hard runtime cap enforced on status reads
	staleJobCap time.Duration
}

// NewJobService creates a job service
func NewJobService(client *ent.Client, idempotencyWindow int, staleJobCap time.Duration) *JobService {
	if idempotencyWindow <= 0 {
		idempotencyWindow = 5
	}
	if staleJobCap <= 0 {
		staleJobCap = 3 * time.Hour
	}
	return &JobService{
		client:            client,
		log:               slog.Default().With("service", "jobs"),
		idempotencyWindow: idempotencyWindow,
		staleJobCap:       staleJobCap,
	}
}

// CreateResult is the outcome of a create request. CancelToken is empty
// when the idempotency guard returned an existing job.
type CreateResult struct {
	Job         *ent.AnalysisJob
	CancelToken string
	Existing    bool
}

// Create mints a job for a plan. The idempotency guard scans the most
// recently created jobs for a live job with the same plan id — the defense
// against reverse-proxy POST retries.
func (s *JobService) Create(ctx context.Context, plan *models.ExecutionPlan, request *models.PlanRequest, docMap map[string]string) (*CreateResult, error) {
	recent, err := s.client.AnalysisJob.Query().
		Where(
			analysisjob.PlanID(plan.PlanID),
			analysisjob.StatusIn(nonTerminal...),
		).
		Order(ent.Desc(analysisjob.FieldCreatedAt)).
		Limit(s.idempotencyWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("idempotency scan failed: %w", err)
	}
	if len(recent) > 0 {
		s.log.Info("Idempotency guard: returning existing job",
			"plan_id", plan.PlanID, "job_id", recent[0].ID)
		return &CreateResult{Job: recent[0], Existing: true}, nil
	}

	planSnapshot, err := toJSONMap(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize plan snapshot: %w", err)
	}

	token := uuid.New().String()
	create := s.client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetPlanID(plan.PlanID).
		SetStatus(analysisjob.StatusPending).
		SetCancelToken(token).
		SetPlanSnapshot(planSnapshot).
		SetDocumentMap(docMap)
	if plan.WorkflowKey != "" {
		create.SetWorkflowKey(plan.WorkflowKey)
	}
	if request != nil {
		requestSnapshot, err := toJSONMap(request)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request snapshot: %w", err)
		}
		create.SetRequestSnapshot(requestSnapshot)
	}

	job, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.log.Info("Job created", "job_id", job.ID, "plan_id", plan.PlanID)
	return &CreateResult{Job: job, CancelToken: token}, nil
}

// Get fetches a job and runs stale detection: a job still pending/running
// past the hard runtime cap is transitioned to failed. Belt and suspenders
// for dead workers that orphan recovery missed.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.AnalysisJob, error) {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if job.Status == analysisjob.StatusPending || job.Status == analysisjob.StatusRunning {
		since := job.CreatedAt
		if job.StartedAt != nil {
			since = *job.StartedAt
		}
		if time.Since(since) > s.staleJobCap {
			s.log.Warn("Stale job detected on read, failing it",
				"job_id", jobID, "age", time.Since(since))
			failed, err := s.MarkTerminal(ctx, jobID, analysisjob.StatusFailed,
				fmt.Sprintf("maximum runtime exceeded (%s)", s.staleJobCap))
			if err != nil {
				return nil, err
			}
			return failed, nil
		}
	}

	return job, nil
}

// List returns jobs ordered newest-first.
func (s *JobService) List(ctx context.Context, limit, offset int) ([]*ent.AnalysisJob, int, error) {
	query := s.client.AnalysisJob.Query()
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	if limit <= 0 {
		limit = 50
	}
	jobs, err := query.
		Order(ent.Desc(analysisjob.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

// Cancel authorizes against the creation-time token and persists the
// cancelled status (the cold path — the in-memory flag is the hot path,
// set by the caller).
func (s *JobService) Cancel(ctx context.Context, jobID, token string) (*ent.AnalysisJob, error) {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job.CancelToken != token {
		return nil, ErrInvalidCancelToken
	}
	if isTerminal(job.Status) {
		// Cancelling a finished job is a no-op, not an error
		return job, nil
	}
	return s.MarkTerminal(ctx, jobID, analysisjob.StatusCancelled, "")
}

// Delete removes a job and, via cascade, its outputs and cache entries.
// Permitted only from terminal states.
func (s *JobService) Delete(ctx context.Context, jobID string) error {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	if !isTerminal(job.Status) {
		return fmt.Errorf("%w: job %s is %s", ErrNotTerminal, jobID, job.Status)
	}
	if err := s.client.AnalysisJob.DeleteOneID(jobID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	s.log.Info("Job deleted", "job_id", jobID)
	return nil
}

// SweepTerminal deletes terminal jobs that completed before the cutoff.
// Cascades remove outputs, cache rows, refinements, and polishes.
func (s *JobService) SweepTerminal(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.client.AnalysisJob.Delete().
		Where(
			analysisjob.StatusIn(
				analysisjob.StatusCompleted,
				analysisjob.StatusFailed,
				analysisjob.StatusCancelled,
			),
			analysisjob.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep terminal jobs: %w", err)
	}
	if n > 0 {
		s.log.Info("Swept terminal jobs", "count", n, "max_age", maxAge)
	}
	return n, nil
}

// MarkRunning transitions pending → running and stamps the worker identity.
func (s *JobService) MarkRunning(ctx context.Context, jobID, podID string) (*ent.AnalysisJob, error) {
	now := time.Now()
	n, err := s.client.AnalysisJob.Update().
		Where(
			analysisjob.ID(jobID),
			analysisjob.StatusIn(nonTerminal...),
		).
		SetStatus(analysisjob.StatusRunning).
		SetStartedAt(now).
		SetPodID(podID).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark job running: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: job %s", ErrTerminal, jobID)
	}
	return s.client.AnalysisJob.Get(ctx, jobID)
}

// MarkTerminal writes a terminal status exactly once. Terminal states are
// write-once: a second transition is rejected at the query level.
func (s *JobService) MarkTerminal(ctx context.Context, jobID string, status analysisjob.Status, errMsg string) (*ent.AnalysisJob, error) {
	if !isTerminal(status) {
		return nil, fmt.Errorf("status %s is not terminal", status)
	}
	update := s.client.AnalysisJob.Update().
		Where(
			analysisjob.ID(jobID),
			analysisjob.StatusIn(nonTerminal...),
		).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark job %s: %w", status, err)
	}
	if n == 0 {
		s.log.Warn("Terminal transition skipped, job already terminal", "job_id", jobID, "wanted", status)
	}
	return s.client.AnalysisJob.Get(ctx, jobID)
}

// ResetToPending rewinds a recovered orphan so a worker can re-claim it.
func (s *JobService) ResetToPending(ctx context.Context, jobID string) error {
	n, err := s.client.AnalysisJob.Update().
		Where(
			analysisjob.ID(jobID),
			analysisjob.StatusIn(nonTerminal...),
		).
		SetStatus(analysisjob.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset job: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: job %s", ErrTerminal, jobID)
	}
	return nil
}

// UpdateProgress refreshes the progress snapshot polled by status reads.
func (s *JobService) UpdateProgress(ctx context.Context, jobID string, phase float64, phaseName, detail string) error {
	err := s.client.AnalysisJob.UpdateOneID(jobID).
		SetCurrentPhase(phase).
		SetCurrentPhaseName(phaseName).
		SetProgressDetail(detail).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// RecordPhaseResult appends a compact per-phase result record and marks the
// phase completed.
func (s *JobService) RecordPhaseResult(ctx context.Context, jobID string, phase float64, record map[string]interface{}) error {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	results := job.PhaseResults
	if results == nil {
		results = map[string]interface{}{}
	}
	results[fmt.Sprintf("%.1f", phase)] = record
	completed := append(job.CompletedPhases, phase)

	err = s.client.AnalysisJob.UpdateOneID(jobID).
		SetPhaseResults(results).
		SetCompletedPhases(completed).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record phase result: %w", err)
	}
	return nil
}

// AddTotals increments the job-level call and token counters.
func (s *JobService) AddTotals(ctx context.Context, jobID string, calls, inputTokens, outputTokens int) error {
	err := s.client.AnalysisJob.UpdateOneID(jobID).
		AddTotalLlmCalls(calls).
		AddTotalInputTokens(inputTokens).
		AddTotalOutputTokens(outputTokens).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add totals: %w", err)
	}
	return nil
}

// StorePlanSnapshot freezes a regenerated plan onto the job row.
func (s *JobService) StorePlanSnapshot(ctx context.Context, jobID string, plan *models.ExecutionPlan) error {
	snapshot, err := toJSONMap(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan snapshot: %w", err)
	}
	err = s.client.AnalysisJob.UpdateOneID(jobID).
		SetPlanSnapshot(snapshot).
		SetPlanID(plan.PlanID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store plan snapshot: %w", err)
	}
	return nil
}

// Heartbeat stamps liveness for cross-pod orphan detection.
func (s *JobService) Heartbeat(ctx context.Context, jobID string) error {
	return s.client.AnalysisJob.UpdateOneID(jobID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// IsCancelled reports the persisted cancellation state — the cold path
// behind the in-memory flag.
func (s *JobService) IsCancelled(ctx context.Context, jobID string) bool {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		return false
	}
	return job.Status == analysisjob.StatusCancelled
}

// ListLive returns all pending/running jobs — the orphan recovery scan.
func (s *JobService) ListLive(ctx context.Context) ([]*ent.AnalysisJob, error) {
	jobs, err := s.client.AnalysisJob.Query().
		Where(analysisjob.StatusIn(nonTerminal...)).
		Order(ent.Asc(analysisjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list live jobs: %w", err)
	}
	return jobs, nil
}

// PlanSnapshot decodes the frozen plan stored on the job, or nil when the
// job carries none.
func PlanSnapshot(job *ent.AnalysisJob) (*models.ExecutionPlan, error) {
	if len(job.PlanSnapshot) == 0 {
		return nil, nil
	}
	var plan models.ExecutionPlan
	if err := fromJSONMap(job.PlanSnapshot, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan snapshot: %w", err)
	}
	return &plan, nil
}

// RequestSnapshot decodes the original plan request, or nil.
func RequestSnapshot(job *ent.AnalysisJob) (*models.PlanRequest, error) {
	if len(job.RequestSnapshot) == 0 {
		return nil, nil
	}
	var req models.PlanRequest
	if err := fromJSONMap(job.RequestSnapshot, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request snapshot: %w", err)
	}
	return &req, nil
}

func isTerminal(status analysisjob.Status) bool {
	switch status {
	case analysisjob.StatusCompleted, analysisjob.StatusFailed, analysisjob.StatusCancelled:
		return true
	}
	return false
}

func toJSONMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromJSONMap(m map[string]interface{}, v interface{}) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
