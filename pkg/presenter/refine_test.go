package presenter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
)

func TestRefinePersistsReRanking(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{Content: `{
			"views": [
				{"view_key": "argument", "priority": 5.0, "rationale": "strongest material"},
				{"view_key": "overview", "dropped": true}
			],
			"change_summary": "argument promoted, overview dropped"
		}`, ModelUsed: llm.SonnetModel.ID}, nil
	}}
	h := newPresenterHarness(t, caller)
	ctx := context.Background()
	refiner := NewRefiner(h.cfg, caller, h.refinements)

	job, err := h.jobs.Get(ctx, h.jobID)
	require.NoError(t, err)
	plan := planWithViews("overview", "argument")

	ref, err := refiner.Refine(ctx, job, plan)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "argument promoted, overview dropped", ref.ChangeSummary)
	require.Len(t, ref.RefinedViews, 2)
	assert.Equal(t, "argument", ref.RefinedViews[0]["view_key"])

	// The prompt carries the recommendations for the model to judge
	require.Len(t, caller.calls, 1)
	assert.Contains(t, caller.calls[0].UserMessage, "overview")
	assert.Contains(t, caller.calls[0].UserMessage, "argument")
}

func TestRefineNoRecommendedViews(t *testing.T) {
	h := newPresenterHarness(t, &stubCaller{})
	refiner := NewRefiner(h.cfg, &stubCaller{}, h.refinements)

	job, err := h.jobs.Get(context.Background(), h.jobID)
	require.NoError(t, err)

	ref, err := refiner.Refine(context.Background(), job, &models.ExecutionPlan{PlanID: "p"})
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestRefineUnparseableResponse(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{Content: "I think the views look fine as they are."}, nil
	}}
	h := newPresenterHarness(t, caller)
	refiner := NewRefiner(h.cfg, caller, h.refinements)

	job, err := h.jobs.Get(context.Background(), h.jobID)
	require.NoError(t, err)

	_, err = refiner.Refine(context.Background(), job, planWithViews("overview"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable")
}
