package presenter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
	testutil "github.com/exegete-ai/exegete/test/util"
)

func presenterConfig() *config.Config {
	return &config.Config{
		Engines: config.NewEngineRegistry(map[string]*config.EngineDefinition{
			"alpha": {Key: "alpha", Name: "Alpha"},
			"beta":  {Key: "beta", Name: "Beta"},
		}),
		Chains: config.NewChainRegistry(nil),
		Stances: config.NewStanceRegistry(map[string]*config.StanceDefinition{
			"analytic": {Key: "analytic", Name: "Analytic", Prose: "Read for argument structure."},
		}),
		Operationalizations: config.NewOperationalizationRegistry(nil),
		Workflows:           config.NewWorkflowRegistry(nil),
		Views: config.NewViewRegistry(map[string]*config.ViewDefinition{
			"overview": {
				Key: "overview", Title: "Overview", RendererType: "prose", Position: 1,
				DataSource:     config.ViewDataSource{EngineKey: "alpha"},
				Transformation: "prose_pass",
			},
			"argument": {
				Key: "argument", Title: "Argument", RendererType: "prose", Position: 2,
				DataSource:     config.ViewDataSource{EngineKey: "beta"},
				Transformation: "prose_pass",
			},
		}),
		Transformations: config.NewTransformationRegistry(map[string]*config.TransformationTemplate{
			"prose_pass": {Key: "prose_pass", Type: config.TransformPassthrough},
		}),
	}
}

type presenterHarness struct {
	client      *ent.Client
	cfg         *config.Config
	jobs        *services.JobService
	outputs     *services.OutputService
	cache       *services.PresentationService
	refinements *services.RefinementService
	bridge      *Bridge
	assembler   *Assembler
	jobID       string
}

func newPresenterHarness(t *testing.T, caller llm.Caller) *presenterHarness {
	t.Helper()
	client, _ := testutil.NewSQLiteClient(t)
	cfg := presenterConfig()

	jobs := services.NewJobService(client, 5, 3*time.Hour)
	outputs := services.NewOutputService(client)
	cache := services.NewPresentationService(client)
	refinements := services.NewRefinementService(client)

	bridge := NewBridge(cfg, outputs, cache, NewTransformExecutor(caller))
	assembler := NewAssembler(cfg, bridge, outputs, cache, refinements)

	created, err := jobs.Create(context.Background(), &models.ExecutionPlan{
		PlanID:     "plan-pres",
		TargetWork: models.WorkMeta{Title: "Target"},
	}, nil, nil)
	require.NoError(t, err)

	return &presenterHarness{
		client:      client,
		cfg:         cfg,
		jobs:        jobs,
		outputs:     outputs,
		cache:       cache,
		refinements: refinements,
		bridge:      bridge,
		assembler:   assembler,
		jobID:       created.Job.ID,
	}
}

func (h *presenterHarness) persist(t *testing.T, engine string, pass int, work, role, content string) {
	t.Helper()
	_, err := h.outputs.Persist(context.Background(), services.PersistParams{
		JobID:       h.jobID,
		PhaseNumber: 1.0,
		EngineKey:   engine,
		PassNumber:  pass,
		WorkKey:     work,
		Role:        role,
		Content:     content,
	})
	require.NoError(t, err)
}

func planWithViews(keys ...string) *models.ExecutionPlan {
	plan := &models.ExecutionPlan{PlanID: "plan-pres", TargetWork: models.WorkMeta{Title: "Target"}}
	for i, k := range keys {
		plan.RecommendedViews = append(plan.RecommendedViews,
			models.ViewRecommendation{ViewKey: k, Priority: float64(len(keys) - i)})
	}
	return plan
}

func TestPrepareThenCacheHit(t *testing.T) {
	h := newPresenterHarness(t, nil)
	ctx := context.Background()
	h.persist(t, "alpha", 1, "", "extraction", "the analytical prose")
	plan := planWithViews("overview")

	stats, err := h.bridge.Prepare(ctx, h.jobID, plan, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Tasks)
	assert.Equal(t, 1, stats.Executed)
	assert.Equal(t, 0, stats.CacheHits)

	// Unchanged source: pure cache hit
	stats, err = h.bridge.Prepare(ctx, h.jobID, plan, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CacheHits)
	assert.Equal(t, 0, stats.Executed)

	// force bypasses the cache
	stats, err = h.bridge.Prepare(ctx, h.jobID, plan, true)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Executed)
}

func TestPlanTasksMultiPassOverride(t *testing.T) {
	h := newPresenterHarness(t, nil)
	h.persist(t, "alpha", 1, "", "extraction", "pass one prose")
	h.persist(t, "alpha", 2, "", "extraction", "pass two prose")

	tasks, err := h.bridge.PlanTasks(context.Background(), h.jobID, planWithViews("overview"))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].SkipHashCheck)
	assert.Contains(t, tasks[0].ContentOverride, "pass one prose")
	assert.Contains(t, tasks[0].ContentOverride, "pass two prose")
}

func TestAssembleJoinsCacheAndProse(t *testing.T) {
	h := newPresenterHarness(t, nil)
	ctx := context.Background()
	h.persist(t, "alpha", 1, "", "extraction", "the analytical prose")
	plan := planWithViews("overview")

	_, err := h.bridge.Prepare(ctx, h.jobID, plan, false)
	require.NoError(t, err)

	page, err := h.assembler.Assemble(ctx, h.jobID, plan, false)
	require.NoError(t, err)
	require.Len(t, page.Views, 1)
	view := page.Views[0]
	assert.Equal(t, "overview", view.ViewKey)
	assert.Equal(t, "prose", view.RendererType)
	assert.Equal(t, "the analytical prose", view.Data["prose"])

	// Slim mode drops prose but keeps structured data
	page, err = h.assembler.Assemble(ctx, h.jobID, plan, true)
	require.NoError(t, err)
	require.Len(t, page.Views, 1)
	assert.True(t, page.Slim)
	assert.Empty(t, page.Views[0].Prose)
}

func TestAssembleRefinedOrdering(t *testing.T) {
	h := newPresenterHarness(t, nil)
	ctx := context.Background()
	h.persist(t, "alpha", 1, "", "extraction", "alpha prose")
	h.persist(t, "beta", 1, "", "extraction", "beta prose")
	plan := planWithViews("overview", "argument")

	_, err := h.bridge.Prepare(ctx, h.jobID, plan, false)
	require.NoError(t, err)

	// Refinement promotes argument and drops overview
	_, err = h.refinements.Upsert(ctx, h.jobID, []map[string]interface{}{
		{"view_key": "argument", "priority": 5.0},
		{"view_key": "overview", "dropped": true},
	}, "argument carries the material", "", 0, 0)
	require.NoError(t, err)

	page, err := h.assembler.Assemble(ctx, h.jobID, plan, false)
	require.NoError(t, err)
	require.Len(t, page.Views, 1)
	assert.Equal(t, "argument", page.Views[0].ViewKey)
	assert.Equal(t, 5.0, page.Views[0].Priority)
}

func TestAssembleSynthesizesChapterViews(t *testing.T) {
	h := newPresenterHarness(t, nil)
	ctx := context.Background()
	h.persist(t, "alpha", 1, "Target::ch_2", "chapter", "chapter two analysis")

	page, err := h.assembler.Assemble(ctx, h.jobID, planWithViews(), false)
	require.NoError(t, err)
	require.Len(t, page.Views, 1)
	view := page.Views[0]
	assert.Equal(t, "chapter:Target::ch_2", view.ViewKey)
	assert.Equal(t, "prose", view.RendererType)
	assert.Contains(t, view.Prose, "chapter two analysis")
	assert.GreaterOrEqual(t, view.Position, 1000)
}

func TestAssembleViewMissing(t *testing.T) {
	h := newPresenterHarness(t, nil)

	_, err := h.assembler.AssembleView(context.Background(), h.jobID,
		planWithViews("overview"), "overview")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
