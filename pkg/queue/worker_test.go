package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/database"
)

func TestClaimOldestPendingFirst(t *testing.T) {
	h := newHarness(t, &fakeCaller{})
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	plan.PlanID = "plan-claim-1"
	first := h.createJob(t, plan)
	plan.PlanID = "plan-claim-2"
	second := h.createJob(t, plan)

	w := NewWorker("w-0", "pod-test", h.client, database.BackendSQLite,
		config.QueueSettings{}, nil, h.jobs, NewCancelRegistry())

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, analysisjob.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-test", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastInteractionAt)

	claimed, err = w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimSkipsNonPending(t *testing.T) {
	h := newHarness(t, &fakeCaller{})
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	plan.PlanID = "plan-claim-terminal"
	job := h.createJob(t, plan)
	_, err := h.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusCancelled, "")
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-test", h.client, database.BackendSQLite,
		config.QueueSettings{}, nil, h.jobs, NewCancelRegistry())

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}
