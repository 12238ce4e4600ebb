package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// PlanGenerator regenerates a plan for jobs recovered with only a request
// snapshot.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req *models.PlanRequest) (*models.ExecutionPlan, error)
}

// Executor resolves a claimed job's plan and hands it to the workflow
// runner. Jobs always run with the output watermark consulted, so a fresh
// job and a resumed orphan take the same path.
type Executor struct {
	jobs     *services.JobService
	workflow *WorkflowRunner
	registry *CancelRegistry
	planner  PlanGenerator // nil when no LLM is configured
	log      *slog.Logger
}

// NewExecutor creates a job executor
func NewExecutor(jobs *services.JobService, workflow *WorkflowRunner, registry *CancelRegistry, planner PlanGenerator) *Executor {
	return &Executor{
		jobs:     jobs,
		workflow: workflow,
		registry: registry,
		planner:  planner,
		log:      slog.Default().With("component", "executor"),
	}
}

// Execute runs one claimed job to a terminal status.
func (e *Executor) Execute(ctx context.Context, job *ent.AnalysisJob) error {
	plan, err := services.PlanSnapshot(job)
	if err != nil {
		_, _ = e.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusFailed, err.Error())
		return err
	}

	if plan == nil {
		plan, err = e.replan(ctx, job)
		if err != nil {
			_, _ = e.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusFailed, err.Error())
			return err
		}
	}

	cancelled := e.registry.CheckFunc(job.ID)
	if cancelled() || e.jobs.IsCancelled(ctx, job.ID) {
		_, err := e.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusCancelled, "")
		return err
	}

	return e.workflow.Execute(ctx, job, plan, cancelled, true)
}

// replan regenerates the plan from the request snapshot and freezes it on
// the job so a later resume is self-sufficient.
func (e *Executor) replan(ctx context.Context, job *ent.AnalysisJob) (*models.ExecutionPlan, error) {
	req, err := services.RequestSnapshot(job)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("job carries neither plan nor request snapshot")
	}
	if e.planner == nil {
		return nil, fmt.Errorf("cannot regenerate plan: no LLM configured")
	}

	e.log.Info("Regenerating plan from request snapshot", "job_id", job.ID)
	plan, err := e.planner.GeneratePlan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan regeneration failed: %w", err)
	}
	if err := e.jobs.StorePlanSnapshot(ctx, job.ID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
