package planner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
	testutil "github.com/exegete-ai/exegete/test/util"
)

// scriptedCaller routes calls to a response function and records requests.
type scriptedCaller struct {
	mu      sync.Mutex
	calls   []llm.CallRequest
	respond func(req llm.CallRequest) (*llm.CallResult, error)
}

func (c *scriptedCaller) Call(_ context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	return c.respond(req)
}

func testCatalog() *config.Config {
	return &config.Config{
		Engines: config.NewEngineRegistry(map[string]*config.EngineDefinition{
			"conceptual_mapping": {
				Key: "conceptual_mapping", Name: "Conceptual Mapping", Category: "conceptual",
				Dimensions: []config.Dimension{{Key: "core_concepts"}, {Key: "distinctions"}},
			},
			"argument_reconstruction": {
				Key: "argument_reconstruction", Name: "Argument Reconstruction", Category: "argumentative",
			},
		}),
		Chains: config.NewChainRegistry(map[string]*config.ChainDefinition{
			"core": {Key: "core", Engines: []string{"conceptual_mapping", "argument_reconstruction"}},
		}),
		Stances: config.NewStanceRegistry(map[string]*config.StanceDefinition{
			"analytic": {Key: "analytic", Name: "Analytic", Prose: "Read for argument structure."},
		}),
		Operationalizations: config.NewOperationalizationRegistry(nil),
		Workflows: config.NewWorkflowRegistry(map[string]*config.WorkflowTemplate{
			"standard_exegesis": {
				Key: "standard_exegesis",
				Phases: []config.WorkflowPhase{
					{PhaseNumber: 1.0, PhaseName: "foundation", ChainKey: "core", Depth: "standard"},
					{PhaseNumber: 2.0, PhaseName: "prior works", EngineKey: "argument_reconstruction",
						IterationMode: "per_work", DependsOn: []float64{1.0}},
				},
			},
		}),
		Views: config.NewViewRegistry(map[string]*config.ViewDefinition{
			"overview": {Key: "overview", RendererType: "prose"},
		}),
		Transformations: config.NewTransformationRegistry(nil),
	}
}

func TestGenerateFixedPlanMergesOverlay(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{Content: `{
			"phases": [
				{"phase_number": 2.0, "depth": "deep", "work_overrides": {"Prior One": {"emphasis": "method"}}},
				{"phase_number": 1.5, "phase_name": "bridge", "engine_key": "conceptual_mapping", "depends_on": [1.0]}
			],
			"recommended_views": [{"view_key": "overview", "priority": 1.0}],
			"strategy": "standard with a bridge phase"
		}`}, nil
	}}
	p := NewPlanner(testCatalog(), caller, nil)

	req := &models.PlanRequest{
		Thinker:    "Hegel",
		TargetWork: models.WorkMeta{Title: "Phenomenology of Spirit", DocumentID: "doc-t"},
		PriorWorks: []models.WorkMeta{{Title: "Prior One", DocumentID: "doc-p"}},
	}
	plan, err := p.GenerateFixedPlan(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, plan.Phases, 3)
	// Template phases keep their defaults, overlay merges in
	assert.Equal(t, 1.0, plan.Phases[0].PhaseNumber)
	assert.Equal(t, "core", plan.Phases[0].ChainKey)
	assert.Equal(t, models.DepthDeep, plan.Phases[1].Depth)
	assert.Equal(t, "method", plan.Phases[1].WorkOverrides["Prior One"].Emphasis)
	assert.Equal(t, models.IterationPerWork, plan.Phases[1].IterationMode)
	// Decimal insertion appended after the template phases
	assert.Equal(t, 1.5, plan.Phases[2].PhaseNumber)
	assert.Equal(t, "conceptual_mapping", plan.Phases[2].EngineKey)

	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, "standard_exegesis", plan.WorkflowKey)
	assert.Equal(t, "Phenomenology of Spirit", plan.TargetWork.Title)
	assert.Equal(t, "Hegel", plan.ThinkerContext)
	require.Len(t, plan.RecommendedViews, 1)

	// Sole registered workflow resolves without an explicit key
	require.Len(t, caller.calls, 1)
	assert.Contains(t, caller.calls[0].SystemPrompt, "standard_exegesis")
}

func TestGenerateFixedPlanRejectsInvalidOverlay(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		// Inserted phase sets both chain and engine
		return &llm.CallResult{Content: `{
			"phases": [{"phase_number": 3.0, "chain_key": "core", "engine_key": "conceptual_mapping"}]
		}`}, nil
	}}
	p := NewPlanner(testCatalog(), caller, nil)

	_, err := p.GenerateFixedPlan(context.Background(), &models.PlanRequest{
		TargetWork: models.WorkMeta{Title: "T"},
	})
	var bad *BadResponseError
	require.True(t, errors.As(err, &bad))
}

func TestGenerateFixedPlanUnknownWorkflow(t *testing.T) {
	p := NewPlanner(testCatalog(), &scriptedCaller{}, nil)
	_, err := p.GenerateFixedPlan(context.Background(), &models.PlanRequest{WorkflowKey: "nope"})
	require.Error(t, err)
}

func TestGenerateAdaptivePlan(t *testing.T) {
	client, _ := testutil.NewSQLiteClient(t)
	docs := services.NewDocumentService(client)

	content := strings.Repeat("A dense treatise on method and evidence. ", 500)
	doc, err := docs.Create(context.Background(), "Phenomenology of Spirit", "Hegel", "target", content)
	require.NoError(t, err)

	caller := &scriptedCaller{respond: func(req llm.CallRequest) (*llm.CallResult, error) {
		if strings.HasPrefix(req.Label, "sample") {
			return &llm.CallResult{Content: `{
				"genre": "philosophy", "domain": "epistemology",
				"technical_level": "specialist",
				"category_affinity": {"conceptual": 0.9, "argumentative": 0.7}
			}`}, nil
		}
		return &llm.CallResult{Content: `{
			"research_question": "How does the dialectic ground knowledge?",
			"phases": [
				{"phase_number": 1.0, "phase_name": "conceptual survey", "engine_key": "conceptual_mapping"},
				{"phase_number": 2.0, "phase_name": "argument", "chain_key": "core", "depends_on": [1.0]}
			],
			"recommended_views": [{"view_key": "overview"}],
			"decision_trace": ["conceptual_mapping selected: affinity 0.9 for conceptual material"]
		}`}, nil
	}}
	p := NewPlanner(testCatalog(), caller, NewSampler(caller, docs))

	req := &models.PlanRequest{
		Objective:  "map the epistemology",
		TargetWork: models.WorkMeta{Title: "Phenomenology of Spirit", DocumentID: doc.ID},
	}
	plan, err := p.GeneratePlan(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, plan.Phases, 2)
	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, doc.ID, plan.TargetWork.DocumentID)
	assert.NotEmpty(t, plan.DecisionTrace)

	// One sampling call plus one planning call, with the profile rendered
	// into the planning prompt
	require.Len(t, caller.calls, 2)
	planCall := caller.calls[1]
	assert.Contains(t, planCall.SystemPrompt, "Sampled work profiles")
	assert.Contains(t, planCall.SystemPrompt, "philosophy")
	assert.Contains(t, planCall.SystemPrompt, "decision_trace")
}

func TestSamplerDegradesWithoutDocument(t *testing.T) {
	client, _ := testutil.NewSQLiteClient(t)
	docs := services.NewDocumentService(client)
	s := NewSampler(&scriptedCaller{respond: func(llm.CallRequest) (*llm.CallResult, error) {
		return nil, errors.New("unreachable")
	}}, docs)

	prof := s.Sample(context.Background(), models.WorkMeta{Title: "No Doc"})
	require.NotNil(t, prof)
	assert.True(t, prof.Degraded)
	assert.Equal(t, "No Doc", prof.Title)
}

func TestSamplerDegradesOnBadClassification(t *testing.T) {
	client, _ := testutil.NewSQLiteClient(t)
	docs := services.NewDocumentService(client)
	doc, err := docs.Create(context.Background(), "W", "", "target",
		strings.Repeat("text ", 2000))
	require.NoError(t, err)

	s := NewSampler(&scriptedCaller{respond: func(llm.CallRequest) (*llm.CallResult, error) {
		return &llm.CallResult{Content: "not json at all"}, nil
	}}, docs)

	prof := s.Sample(context.Background(), models.WorkMeta{Title: "W", DocumentID: doc.ID})
	assert.True(t, prof.Degraded)
	assert.NotEmpty(t, prof.Chapters)
}
