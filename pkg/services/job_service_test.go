package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/models"
	testutil "github.com/exegete-ai/exegete/test/util"
)

func newTestJobService(t *testing.T) (*JobService, *ent.Client) {
	t.Helper()
	client, _ := testutil.NewSQLiteClient(t)
	return NewJobService(client, 5, 3*time.Hour), client
}

func testPlan(planID string) *models.ExecutionPlan {
	return &models.ExecutionPlan{
		PlanID:      planID,
		TargetWork:  models.WorkMeta{Title: "Target", DocumentID: "doc-1"},
		PriorWorks:  []models.WorkMeta{{Title: "Prior A"}},
		WorkflowKey: "standard",
		Phases: []models.PhaseSpec{
			{PhaseNumber: 1.0, PhaseName: "foundation", ChainKey: "core"},
		},
	}
}

func TestCreateJobAndIdempotencyGuard(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()
	plan := testPlan("plan-1")

	first, err := svc.Create(ctx, plan, nil, map[string]string{"Target": "doc-1"})
	require.NoError(t, err)
	assert.False(t, first.Existing)
	assert.NotEmpty(t, first.CancelToken)
	assert.Equal(t, analysisjob.StatusPending, first.Job.Status)

	// A retried POST with the same plan id lands on the live job
	second, err := svc.Create(ctx, plan, nil, nil)
	require.NoError(t, err)
	assert.True(t, second.Existing)
	assert.Empty(t, second.CancelToken)
	assert.Equal(t, first.Job.ID, second.Job.ID)

	// Once the job is terminal the guard no longer applies
	_, err = svc.MarkTerminal(ctx, first.Job.ID, analysisjob.StatusCompleted, "")
	require.NoError(t, err)
	third, err := svc.Create(ctx, plan, nil, nil)
	require.NoError(t, err)
	assert.False(t, third.Existing)
	assert.NotEqual(t, first.Job.ID, third.Job.ID)
}

func TestCancelRequiresToken(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-c"), nil, nil)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, created.Job.ID, "wrong-token")
	assert.ErrorIs(t, err, ErrInvalidCancelToken)

	job, err := svc.Cancel(ctx, created.Job.ID, created.CancelToken)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCancelled, job.Status)

	// Cancelling a finished job is a no-op
	job, err = svc.Cancel(ctx, created.Job.ID, created.CancelToken)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCancelled, job.Status)
}

func TestTerminalStatusIsWriteOnce(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-t"), nil, nil)
	require.NoError(t, err)

	job, err := svc.MarkTerminal(ctx, created.Job.ID, analysisjob.StatusFailed, "phase 2.0 failed")
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "phase 2.0 failed", *job.ErrorMessage)

	// The second transition is skipped at the query level
	job, err = svc.MarkTerminal(ctx, created.Job.ID, analysisjob.StatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, job.Status)
}

func TestStaleJobFailedOnRead(t *testing.T) {
	client, _ := testutil.NewSQLiteClient(t)
	svc := NewJobService(client, 5, time.Millisecond)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-s"), nil, nil)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	job, err := svc.Get(ctx, created.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "maximum runtime exceeded")
}

func TestDeleteOnlyTerminal(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-d"), nil, nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.Job.ID)
	assert.ErrorIs(t, err, ErrNotTerminal)

	_, err = svc.MarkTerminal(ctx, created.Job.ID, analysisjob.StatusCancelled, "")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.Job.ID))

	_, err = svc.Get(ctx, created.Job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetToPendingClearsClaim(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-r"), nil, nil)
	require.NoError(t, err)

	running, err := svc.MarkRunning(ctx, created.Job.ID, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, running.PodID)

	require.NoError(t, svc.ResetToPending(ctx, created.Job.ID))

	job, err := svc.Get(ctx, created.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusPending, job.Status)
	assert.Nil(t, job.PodID)
	assert.Nil(t, job.LastInteractionAt)
}

func TestRecordPhaseResultAndTotals(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testPlan("plan-p"), nil, nil)
	require.NoError(t, err)
	jobID := created.Job.ID

	require.NoError(t, svc.RecordPhaseResult(ctx, jobID, 1.0, map[string]interface{}{
		"status": "completed", "llm_calls": 3,
	}))
	require.NoError(t, svc.AddTotals(ctx, jobID, 3, 1200, 800))
	require.NoError(t, svc.AddTotals(ctx, jobID, 1, 300, 100))

	job, err := svc.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Contains(t, job.PhaseResults, "1.0")
	assert.Equal(t, []float64{1.0}, job.CompletedPhases)
	assert.Equal(t, 4, job.TotalLlmCalls)
	assert.Equal(t, 1500, job.TotalInputTokens)
	assert.Equal(t, 900, job.TotalOutputTokens)
}

func TestPlanSnapshotRoundtrip(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()
	plan := testPlan("plan-snap")
	req := &models.PlanRequest{Thinker: "Kant", TargetWork: plan.TargetWork}

	created, err := svc.Create(ctx, plan, req, nil)
	require.NoError(t, err)

	job, err := svc.Get(ctx, created.Job.ID)
	require.NoError(t, err)

	decoded, err := PlanSnapshot(job)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, "plan-snap", decoded.PlanID)
	require.Len(t, decoded.Phases, 1)
	assert.Equal(t, "core", decoded.Phases[0].ChainKey)

	decodedReq, err := RequestSnapshot(job)
	require.NoError(t, err)
	require.NotNil(t, decodedReq)
	assert.Equal(t, "Kant", decodedReq.Thinker)
}

func TestSweepTerminal(t *testing.T) {
	svc, _ := newTestJobService(t)
	ctx := context.Background()

	done, err := svc.Create(ctx, testPlan("plan-old"), nil, nil)
	require.NoError(t, err)
	_, err = svc.MarkTerminal(ctx, done.Job.ID, analysisjob.StatusCompleted, "")
	require.NoError(t, err)

	live, err := svc.Create(ctx, testPlan("plan-live"), nil, nil)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	n, err := svc.SweepTerminal(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, done.Job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, live.Job.ID)
	assert.NoError(t, err)
}
