package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/models"
)

type fixedPlanGenerator struct {
	plan  *models.ExecutionPlan
	calls int
}

func (g *fixedPlanGenerator) GeneratePlan(_ context.Context, _ *models.PlanRequest) (*models.ExecutionPlan, error) {
	g.calls++
	return g.plan, nil
}

func TestExecutorRunsPlanSnapshot(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	job := h.createJob(t, plan)

	exec := NewExecutor(h.jobs, h.wf, NewCancelRegistry(), nil)
	require.NoError(t, exec.Execute(ctx, job))

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	assert.Equal(t, 4, caller.callCount())
}

func TestExecutorCancelledBeforeStart(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	job := h.createJob(t, plan)

	registry := NewCancelRegistry()
	registry.MarkCancelled(job.ID)

	exec := NewExecutor(h.jobs, h.wf, registry, nil)
	require.NoError(t, exec.Execute(ctx, job))

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCancelled, got.Status)
	assert.Equal(t, 0, caller.callCount())
}

func TestExecutorReplansFromRequestSnapshot(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	created, err := h.jobs.Create(ctx, plan,
		&models.PlanRequest{Objective: "trace the method", TargetWork: plan.TargetWork}, nil)
	require.NoError(t, err)

	// Simulate a job recovered before its plan was frozen
	_, err = h.client.AnalysisJob.UpdateOneID(created.Job.ID).ClearPlanSnapshot().Save(ctx)
	require.NoError(t, err)
	job, err := h.jobs.Get(ctx, created.Job.ID)
	require.NoError(t, err)

	gen := &fixedPlanGenerator{plan: plan}
	exec := NewExecutor(h.jobs, h.wf, NewCancelRegistry(), gen)
	require.NoError(t, exec.Execute(ctx, job))

	assert.Equal(t, 1, gen.calls)
	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	// The regenerated plan is frozen on the job for a later resume
	assert.NotEmpty(t, got.PlanSnapshot)
}

func TestExecutorFailsWithoutSnapshotOrPlanner(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	created, err := h.jobs.Create(ctx, plan,
		&models.PlanRequest{TargetWork: plan.TargetWork}, nil)
	require.NoError(t, err)

	_, err = h.client.AnalysisJob.UpdateOneID(created.Job.ID).ClearPlanSnapshot().Save(ctx)
	require.NoError(t, err)
	job, err := h.jobs.Get(ctx, created.Job.ID)
	require.NoError(t, err)

	exec := NewExecutor(h.jobs, h.wf, NewCancelRegistry(), nil)
	require.Error(t, exec.Execute(ctx, job))

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "no LLM configured")
}
