package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent/analysisjob"
)

func TestRecoverStartupOrphans(t *testing.T) {
	h := newHarness(t, &fakeCaller{})
	ctx := context.Background()
	grace := 5 * time.Minute

	plan := h.twoPhasePlan(t)

	// Claimed mid-run by a dead pod, plan snapshot present: re-queued
	plan.PlanID = "plan-orphan-0"
	resumable := h.createJob(t, plan)
	_, err := h.jobs.MarkRunning(ctx, resumable.ID, "dead-pod")
	require.NoError(t, err)

	// Never claimed: left for the queue
	plan.PlanID = "plan-orphan-1"
	untouched := h.createJob(t, plan)

	// No snapshot at all, older than the grace period: failed
	plan.PlanID = "plan-orphan-2"
	abandoned := h.createJob(t, plan)
	_, err = h.jobs.MarkRunning(ctx, abandoned.ID, "dead-pod")
	require.NoError(t, err)
	_, err = h.client.AnalysisJob.UpdateOneID(abandoned.ID).
		ClearPlanSnapshot().
		ClearRequestSnapshot().
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// No snapshot but young: a peer may still be planning it
	plan.PlanID = "plan-orphan-3"
	young := h.createJob(t, plan)
	_, err = h.client.AnalysisJob.UpdateOneID(young.ID).
		ClearPlanSnapshot().
		ClearRequestSnapshot().
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupOrphans(ctx, h.jobs, grace))

	got, err := h.jobs.Get(ctx, resumable.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)
	assert.Nil(t, got.PodID)

	got, err = h.jobs.Get(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)

	got, err = h.jobs.Get(ctx, abandoned.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "process terminated unexpectedly")

	got, err = h.jobs.Get(ctx, young.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, got.Status)
}

func TestCancelRegistry(t *testing.T) {
	r := NewCancelRegistry()

	assert.False(t, r.IsCancelled("j1"))
	assert.False(t, r.Cancel("j1")) // not registered here

	var fired bool
	r.Register("j1", func() { fired = true })
	assert.True(t, r.Cancel("j1"))
	assert.True(t, fired)
	assert.True(t, r.IsCancelled("j1"))

	check := r.CheckFunc("j2")
	assert.False(t, check())
	r.MarkCancelled("j2")
	assert.True(t, check())

	r.Unregister("j1")
	assert.False(t, r.IsCancelled("j1"))
}
