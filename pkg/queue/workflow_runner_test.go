package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	ctxbroker "github.com/exegete-ai/exegete/pkg/analysis/context"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
	testutil "github.com/exegete-ai/exegete/test/util"
)

// fakeCaller records requests and routes them to a response function.
type fakeCaller struct {
	mu      sync.Mutex
	calls   []llm.CallRequest
	respond func(req llm.CallRequest) (*llm.CallResult, error)
}

func (c *fakeCaller) Call(_ context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	if c.respond != nil {
		return c.respond(req)
	}
	return &llm.CallResult{
		Content:      "analysis for " + req.Label,
		ModelUsed:    "claude-sonnet-4-5",
		InputTokens:  100,
		OutputTokens: 50,
	}, nil
}

func (c *fakeCaller) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *fakeCaller) findCall(labelPart string) *llm.CallRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.calls {
		if strings.Contains(c.calls[i].Label, labelPart) {
			return &c.calls[i]
		}
	}
	return nil
}

// runnerConfig has a two-engine chain and no pass definitions, so every
// engine runs as one whole-engine call.
func runnerConfig() *config.Config {
	return &config.Config{
		Engines: config.NewEngineRegistry(map[string]*config.EngineDefinition{
			"alpha": {Key: "alpha", Name: "Alpha", Category: "conceptual"},
			"beta":  {Key: "beta", Name: "Beta", Category: "argumentative"},
		}),
		Chains: config.NewChainRegistry(map[string]*config.ChainDefinition{
			"core": {Key: "core", Engines: []string{"alpha", "beta"}},
		}),
		Stances:             config.NewStanceRegistry(nil),
		Operationalizations: config.NewOperationalizationRegistry(nil),
		Workflows:           config.NewWorkflowRegistry(nil),
		Views:               config.NewViewRegistry(nil),
		Transformations:     config.NewTransformationRegistry(nil),
	}
}

type harness struct {
	client  *ent.Client
	jobs    *services.JobService
	outputs *services.OutputService
	docs    *services.DocumentService
	wf      *WorkflowRunner
}

func newHarness(t *testing.T, caller llm.Caller) *harness {
	t.Helper()
	client, _ := testutil.NewSQLiteClient(t)
	cfg := runnerConfig()
	jobs := services.NewJobService(client, 5, 3*time.Hour)
	outputs := services.NewOutputService(client)
	docs := services.NewDocumentService(client)
	broker := ctxbroker.NewBroker(outputs, 50000)
	chains := NewChainRunner(cfg, caller, outputs, broker)
	phases := NewPhaseRunner(cfg, caller, outputs, docs, broker, chains, 3)
	return &harness{
		client:  client,
		jobs:    jobs,
		outputs: outputs,
		docs:    docs,
		wf:      NewWorkflowRunner(cfg, jobs, outputs, broker, phases, 2),
	}
}

// twoPhasePlan builds the canonical shape: a chain phase over the target
// followed by a per-work fan-out over two priors.
func (h *harness) twoPhasePlan(t *testing.T) *models.ExecutionPlan {
	t.Helper()
	ctx := context.Background()

	target, err := h.docs.Create(ctx, "Target Work", "", "target", "full text of the target work")
	require.NoError(t, err)
	priorOne, err := h.docs.Create(ctx, "Prior One", "", "prior_work", "full text of prior one")
	require.NoError(t, err)
	priorTwo, err := h.docs.Create(ctx, "Prior Two", "", "prior_work", "full text of prior two")
	require.NoError(t, err)

	return &models.ExecutionPlan{
		PlanID:     "plan-run",
		TargetWork: models.WorkMeta{Title: "Target Work", DocumentID: target.ID},
		PriorWorks: []models.WorkMeta{
			{Title: "Prior One", DocumentID: priorOne.ID},
			{Title: "Prior Two", DocumentID: priorTwo.ID},
		},
		Phases: []models.PhaseSpec{
			{PhaseNumber: 1.0, PhaseName: "foundation", ChainKey: "core"},
			{PhaseNumber: 2.0, PhaseName: "priors", EngineKey: "alpha",
				IterationMode: models.IterationPerWork, DependsOn: []float64{1.0}},
		},
	}
}

func (h *harness) createJob(t *testing.T, plan *models.ExecutionPlan) *ent.AnalysisJob {
	t.Helper()
	created, err := h.jobs.Create(context.Background(), plan, nil, nil)
	require.NoError(t, err)
	return created.Job
}

func TestExecutePlanToCompletion(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, func() bool { return false }, true))

	// Two chain engines plus one call per prior work
	assert.Equal(t, 4, caller.callCount())

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	assert.Contains(t, got.PhaseResults, "1.0")
	assert.Contains(t, got.PhaseResults, "2.0")
	assert.Equal(t, []float64{1.0, 2.0}, got.CompletedPhases)
	assert.Equal(t, 4, got.TotalLlmCalls)

	marks, err := h.outputs.Watermark(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, marks, 4)
	assert.True(t, marks[services.TupleKey(1.0, "alpha", 1, "")])
	assert.True(t, marks[services.TupleKey(2.0, "alpha", 1, "Prior Two")])

	// Per-work units receive the distilled phase-one analysis, not the raw
	// target text
	unit := caller.findCall("(Prior One)")
	require.NotNil(t, unit)
	assert.Contains(t, unit.UserMessage, "Distilled analysis of Target Work")
	assert.Contains(t, unit.UserMessage, "full text of prior one")

	// The chain's second engine sees the first engine's output
	betaCall := caller.findCall("beta pass 1")
	require.NotNil(t, betaCall)
	assert.Contains(t, betaCall.SystemPrompt, "Alpha")
}

func TestExecuteResumeSkipsPersistedWork(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	job := h.createJob(t, plan)

	// Phase one already ran before the process died
	for _, engine := range []string{"alpha", "beta"} {
		_, err := h.outputs.Persist(ctx, services.PersistParams{
			JobID: job.ID, PhaseNumber: 1.0, EngineKey: engine, PassNumber: 1,
			Content: "persisted " + engine + " output",
		})
		require.NoError(t, err)
	}

	require.NoError(t, h.wf.Execute(ctx, job, plan, func() bool { return false }, true))

	// Only the two per-work units execute
	assert.Equal(t, 2, caller.callCount())

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
}

func TestExecuteCancellationBetweenPhases(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	// Single-engine first phase so one call finishes it
	plan.Phases[0].ChainKey = ""
	plan.Phases[0].EngineKey = "alpha"
	job := h.createJob(t, plan)

	cancelled := func() bool { return caller.callCount() >= 1 }
	require.NoError(t, h.wf.Execute(ctx, job, plan, cancelled, true))

	assert.Equal(t, 1, caller.callCount())
	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCancelled, got.Status)
	assert.Nil(t, got.ErrorMessage)
}

func TestExecutePartialWorkFailure(t *testing.T) {
	caller := &fakeCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		if strings.Contains(req.Label, "(Prior Two)") {
			return nil, errors.New("request too large")
		}
		return &llm.CallResult{Content: "ok", ModelUsed: "claude-sonnet-4-5"}, nil
	}}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, nil, true))

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "phase(s) 2.0 failed", *got.ErrorMessage)

	// The sibling unit's output survived the phase failure
	ok, err := h.outputs.Exists(ctx, job.ID, 2.0, "alpha", 1, "Prior One")
	require.NoError(t, err)
	assert.True(t, ok)

	record, _ := got.PhaseResults["2.0"].(map[string]interface{})
	require.NotNil(t, record)
	assert.Equal(t, "failed", record["status"])
	assert.Contains(t, record, "failed_works")
}

func TestExecuteEmptyPlanCompletes(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := &models.ExecutionPlan{
		PlanID:     "plan-empty",
		TargetWork: models.WorkMeta{Title: "T"},
	}
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, nil, true))
	assert.Equal(t, 0, caller.callCount())

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
}

func TestExecuteSkippedPhasesExcluded(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	plan.Phases[1].Skip = true
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, nil, true))
	assert.Equal(t, 2, caller.callCount())

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
	assert.NotContains(t, got.PhaseResults, "2.0")
}

func TestExecuteDependencyCycleRunsSequentially(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := &models.ExecutionPlan{
		PlanID:     "plan-cycle",
		TargetWork: models.WorkMeta{Title: "T"},
		Phases: []models.PhaseSpec{
			{PhaseNumber: 1.0, EngineKey: "alpha", DependsOn: []float64{2.0}},
			{PhaseNumber: 2.0, EngineKey: "beta", DependsOn: []float64{1.0}},
		},
	}
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, nil, true))

	// Both phases still run, in phase-number order
	assert.Equal(t, 2, caller.callCount())
	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)
}

func TestExecuteMissingDocumentPlaceholder(t *testing.T) {
	caller := &fakeCaller{}
	h := newHarness(t, caller)
	ctx := context.Background()

	plan := &models.ExecutionPlan{
		PlanID:     "plan-nodoc",
		TargetWork: models.WorkMeta{Title: "Lost Manuscript", DocumentID: "no-such-doc"},
		Phases: []models.PhaseSpec{
			{PhaseNumber: 1.0, EngineKey: "alpha"},
		},
	}
	job := h.createJob(t, plan)

	require.NoError(t, h.wf.Execute(ctx, job, plan, nil, true))

	got, err := h.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusCompleted, got.Status)

	require.Equal(t, 1, caller.callCount())
	assert.Contains(t, caller.calls[0].UserMessage, "[document unavailable: Lost Manuscript]")
}

func TestTopoGroups(t *testing.T) {
	phases := []models.PhaseSpec{
		{PhaseNumber: 1.0},
		{PhaseNumber: 2.0, DependsOn: []float64{1.0}},
		{PhaseNumber: 2.5, DependsOn: []float64{1.0}},
		{PhaseNumber: 3.0, DependsOn: []float64{2.0, 2.5}},
		// Dependency on a phase outside the active set is ignored
		{PhaseNumber: 4.0, DependsOn: []float64{9.0}},
	}

	groups := topoGroups(phases, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2) // 1.0 and 4.0
	assert.Len(t, groups[1], 2) // 2.0 and 2.5
	assert.Equal(t, 3.0, groups[2][0].PhaseNumber)
}
