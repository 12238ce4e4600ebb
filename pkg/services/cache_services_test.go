package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent"
	testutil "github.com/exegete-ai/exegete/test/util"
)

func seedJobAndOutput(t *testing.T) (*ent.Client, string, string) {
	t.Helper()
	client, _ := testutil.NewSQLiteClient(t)
	ctx := context.Background()

	jobs := NewJobService(client, 5, 3*time.Hour)
	created, err := jobs.Create(ctx, testPlan("plan-cache"), nil, nil)
	require.NoError(t, err)

	out, err := NewOutputService(client).Persist(ctx, PersistParams{
		JobID:       created.Job.ID,
		PhaseNumber: 1.0,
		EngineKey:   "conceptual_mapping",
		PassNumber:  1,
		Content:     "raw engine output",
	})
	require.NoError(t, err)
	return client, created.Job.ID, out.ID
}

func TestPresentationCacheFreshness(t *testing.T) {
	client, jobID, outputID := seedJobAndOutput(t)
	svc := NewPresentationService(client)
	ctx := context.Background()

	entry, err := svc.Lookup(ctx, outputID, "concept_map", "raw engine output")
	require.NoError(t, err)
	assert.Nil(t, entry)

	stored, err := svc.Store(ctx, outputID, "concept_map", "raw engine output", false,
		map[string]interface{}{"nodes": []interface{}{"being"}}, "claude-sonnet-4-5")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Hit while the source is unchanged
	entry, err = svc.Lookup(ctx, outputID, "concept_map", "raw engine output")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, stored.ID, entry.ID)

	// Miss once the source content drifts
	entry, err = svc.Lookup(ctx, outputID, "concept_map", "regenerated output")
	require.NoError(t, err)
	assert.Nil(t, entry)

	// Replacing the row drops the stale entry
	replaced, err := svc.Store(ctx, outputID, "concept_map", "regenerated output", false,
		map[string]interface{}{"nodes": []interface{}{"becoming"}}, "claude-sonnet-4-5")
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, replaced.ID)

	entries, err := svc.ListForJob(ctx, jobID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPresentationCacheSkipHashCheck(t *testing.T) {
	client, _, outputID := seedJobAndOutput(t)
	svc := NewPresentationService(client)
	ctx := context.Background()

	// Rows built from merged passes can never match a single pass hash
	_, err := svc.Store(ctx, outputID, "timeline", "merged source", true,
		map[string]interface{}{"events": []interface{}{}}, "")
	require.NoError(t, err)

	entry, err := svc.Lookup(ctx, outputID, "timeline", "anything else entirely")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.SkipHashCheck)
}

func TestRefinementUpsertOneRowPerJob(t *testing.T) {
	client, jobID, _ := seedJobAndOutput(t)
	svc := NewRefinementService(client)
	ctx := context.Background()

	ref, err := svc.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Nil(t, ref)

	_, err = svc.Upsert(ctx, jobID,
		[]map[string]interface{}{{"view_key": "overview", "priority": 1.0}},
		"initial ranking", "claude-sonnet-4-5", 100, 50)
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, jobID,
		[]map[string]interface{}{
			{"view_key": "overview", "priority": 2.0},
			{"view_key": "concept_map", "priority": 1.0},
		},
		"re-ranked after execution", "claude-sonnet-4-5", 120, 60)
	require.NoError(t, err)

	ref, err = svc.Get(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, second.ID, ref.ID)
	assert.Len(t, ref.RefinedViews, 2)
	assert.Equal(t, "re-ranked after execution", ref.ChangeSummary)
}

func TestPolishUpsertKeyedByViewAndSchool(t *testing.T) {
	client, jobID, _ := seedJobAndOutput(t)
	svc := NewPolishService(client)
	ctx := context.Background()

	entry, err := svc.Lookup(ctx, jobID, "overview", "analytic")
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = svc.Store(ctx, jobID, "overview", "analytic", "analytic prose", "claude-sonnet-4-5", 10, 20)
	require.NoError(t, err)
	_, err = svc.Store(ctx, jobID, "overview", "continental", "continental prose", "claude-sonnet-4-5", 10, 20)
	require.NoError(t, err)

	// Same key replaces, different school coexists
	replaced, err := svc.Store(ctx, jobID, "overview", "analytic", "revised analytic prose", "claude-sonnet-4-5", 12, 24)
	require.NoError(t, err)

	entry, err = svc.Lookup(ctx, jobID, "overview", "analytic")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, replaced.ID, entry.ID)
	assert.Equal(t, "revised analytic prose", entry.Prose)

	entries, err := svc.ListForJob(ctx, jobID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHashContent(t *testing.T) {
	assert.Equal(t, HashContent("same"), HashContent("same"))
	assert.NotEqual(t, HashContent("same"), HashContent("other"))
	assert.Len(t, HashContent(""), 64)
}
