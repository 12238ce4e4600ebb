package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/exegete-ai/exegete/test/util"
)

func newTestOutputService(t *testing.T) (*OutputService, string) {
	t.Helper()
	client, _ := testutil.NewSQLiteClient(t)
	jobs := NewJobService(client, 5, 3*time.Hour)
	created, err := jobs.Create(context.Background(), testPlan("plan-out"), nil, nil)
	require.NoError(t, err)
	return NewOutputService(client), created.Job.ID
}

func persistOne(t *testing.T, svc *OutputService, jobID string, phase float64, engine string, pass int, work, content string) {
	t.Helper()
	_, err := svc.Persist(context.Background(), PersistParams{
		JobID:       jobID,
		PhaseNumber: phase,
		EngineKey:   engine,
		PassNumber:  pass,
		WorkKey:     work,
		Content:     content,
		ModelUsed:   "claude-sonnet-4-5",
	})
	require.NoError(t, err)
}

func TestPersistAndWatermark(t *testing.T) {
	svc, jobID := newTestOutputService(t)
	ctx := context.Background()

	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 1, "", "first")
	persistOne(t, svc, jobID, 2.0, "argument_reconstruction", 1, "Prior A", "second")

	marks, err := svc.Watermark(ctx, jobID)
	require.NoError(t, err)
	assert.True(t, marks[TupleKey(1.0, "conceptual_mapping", 1, "")])
	assert.True(t, marks[TupleKey(2.0, "argument_reconstruction", 1, "Prior A")])
	assert.False(t, marks[TupleKey(2.0, "argument_reconstruction", 1, "Prior B")])

	ok, err := svc.Exists(ctx, jobID, 1.0, "conceptual_mapping", 1, "")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.Exists(ctx, jobID, 1.0, "conceptual_mapping", 2, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersistRejectsDuplicateTuple(t *testing.T) {
	svc, jobID := newTestOutputService(t)

	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 1, "", "first")

	_, err := svc.Persist(context.Background(), PersistParams{
		JobID:       jobID,
		PhaseNumber: 1.0,
		EngineKey:   "conceptual_mapping",
		PassNumber:  1,
		WorkKey:     "",
		Content:     "duplicate",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist output")
}

func TestTupleKeyFormat(t *testing.T) {
	assert.Equal(t, "1.5|conceptual_mapping|2|Prior A",
		TupleKey(1.5, "conceptual_mapping", 2, "Prior A"))
	assert.Equal(t, "1.0|e|1|", TupleKey(1.0, "e", 1, ""))
}

func TestLastPass(t *testing.T) {
	svc, jobID := newTestOutputService(t)
	ctx := context.Background()

	out, err := svc.LastPass(ctx, jobID, 1.0, "conceptual_mapping", "")
	require.NoError(t, err)
	assert.Nil(t, out)

	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 1, "", "pass one")
	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 2, "", "pass two")

	out, err = svc.LastPass(ctx, jobID, 1.0, "conceptual_mapping", "")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.PassNumber)
	assert.Equal(t, "pass two", out.Content)
}

func TestListByPhases(t *testing.T) {
	svc, jobID := newTestOutputService(t)
	ctx := context.Background()

	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 1, "", "a")
	persistOne(t, svc, jobID, 2.0, "argument_reconstruction", 1, "Prior A", "b")
	persistOne(t, svc, jobID, 3.0, "synthesis", 1, "", "c")

	outputs, err := svc.ListByPhases(ctx, jobID, []float64{1.0, 3.0})
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, 1.0, outputs[0].PhaseNumber)
	assert.Equal(t, 3.0, outputs[1].PhaseNumber)

	outputs, err = svc.ListByPhases(ctx, jobID, nil)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestListByEngine(t *testing.T) {
	svc, jobID := newTestOutputService(t)
	ctx := context.Background()

	persistOne(t, svc, jobID, 1.0, "conceptual_mapping", 1, "", "a")
	persistOne(t, svc, jobID, 2.0, "conceptual_mapping", 1, "Prior A", "b")
	persistOne(t, svc, jobID, 2.0, "argument_reconstruction", 1, "Prior A", "c")

	outputs, err := svc.ListByEngine(ctx, jobID, 2.0, "conceptual_mapping")
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "b", outputs[0].Content)

	// phase < 0 matches any phase
	outputs, err = svc.ListByEngine(ctx, jobID, -1, "conceptual_mapping")
	require.NoError(t, err)
	assert.Len(t, outputs, 2)
}
