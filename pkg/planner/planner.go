// Package planner turns a plan request into a fully populated execution
// plan, either by layering model overrides onto a workflow template or by
// adaptive objective-driven planning over sampled work profiles.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
)

// Planner generates execution plans with a reasoning model.
type Planner struct {
	cfg     *config.Config
	caller  llm.Caller
	sampler *Sampler
	log     *slog.Logger
}

// NewPlanner creates a planner
func NewPlanner(cfg *config.Config, caller llm.Caller, sampler *Sampler) *Planner {
	return &Planner{
		cfg:     cfg,
		caller:  caller,
		sampler: sampler,
		log:     slog.Default().With("component", "planner"),
	}
}

// GeneratePlan dispatches on the request: an objective selects the adaptive
// mode, otherwise the fixed-workflow mode runs.
func (p *Planner) GeneratePlan(ctx context.Context, req *models.PlanRequest) (*models.ExecutionPlan, error) {
	if req.Objective != "" {
		return p.GenerateAdaptivePlan(ctx, req)
	}
	return p.GenerateFixedPlan(ctx, req)
}

// GenerateFixedPlan layers model-chosen overrides onto a workflow template.
func (p *Planner) GenerateFixedPlan(ctx context.Context, req *models.PlanRequest) (*models.ExecutionPlan, error) {
	template, err := p.resolveTemplate(req.WorkflowKey)
	if err != nil {
		return nil, err
	}

	prompt := strings.Join([]string{
		fixedSystemPreamble,
		catalogSection(p.cfg, false),
		workflowSection(template),
		planSchemaNote,
	}, "\n\n")

	result, err := p.caller.Call(ctx, llm.CallRequest{
		SystemPrompt: prompt,
		UserMessage:  requestSection(req),
		ModelHint:    llm.OpusModel.ID,
		Label:        "plan (fixed workflow)",
	})
	if err != nil {
		return nil, fmt.Errorf("planning call failed: %w", err)
	}

	overlay, err := parsePlan(result.Content)
	if err != nil {
		return nil, err
	}

	plan := p.instantiate(template, req, overlay)
	if err := plan.Validate(); err != nil {
		return nil, newBadResponse(result.Content, err)
	}
	p.log.Info("Fixed plan generated", "plan_id", plan.PlanID, "phases", len(plan.Phases))
	return plan, nil
}

// GenerateAdaptivePlan samples every input work, then asks the model for a
// complete plan with a decision trace linking selections to the samples or
// the objective.
func (p *Planner) GenerateAdaptivePlan(ctx context.Context, req *models.PlanRequest) (*models.ExecutionPlan, error) {
	works := append([]models.WorkMeta{req.TargetWork}, req.PriorWorks...)
	profiles, err := p.sampler.SampleAll(ctx, works)
	if err != nil {
		return nil, fmt.Errorf("sampling failed: %w", err)
	}

	prompt := strings.Join([]string{
		adaptiveSystemPreamble,
		catalogSection(p.cfg, true),
		profilesSection(works, profiles),
		planSchemaNote,
		adaptiveTraceNote,
	}, "\n\n")

	result, err := p.caller.Call(ctx, llm.CallRequest{
		SystemPrompt: prompt,
		UserMessage:  requestSection(req),
		ModelHint:    llm.OpusModel.ID,
		Label:        "plan (adaptive)",
	})
	if err != nil {
		return nil, fmt.Errorf("adaptive planning call failed: %w", err)
	}

	plan, err := parsePlan(result.Content)
	if err != nil {
		return nil, err
	}
	p.finalize(plan, req)
	if err := plan.Validate(); err != nil {
		return nil, newBadResponse(result.Content, err)
	}
	p.log.Info("Adaptive plan generated",
		"plan_id", plan.PlanID, "phases", len(plan.Phases), "trace_entries", len(plan.DecisionTrace))
	return plan, nil
}

// resolveTemplate picks the requested workflow, or the sole registered one.
func (p *Planner) resolveTemplate(key string) (*config.WorkflowTemplate, error) {
	if key != "" {
		return p.cfg.Workflows.Get(key)
	}
	keys := p.cfg.Workflows.ListKeys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("no workflow templates registered")
	}
	return p.cfg.Workflows.Get(keys[0])
}

// instantiate builds the plan from the template, then overlays whatever the
// model returned: matching phase numbers override template defaults, extra
// phases (decimal insertions) are appended.
func (p *Planner) instantiate(template *config.WorkflowTemplate, req *models.PlanRequest, overlay *models.ExecutionPlan) *models.ExecutionPlan {
	plan := &models.ExecutionPlan{
		TargetWork:       req.TargetWork,
		PriorWorks:       req.PriorWorks,
		ResearchQuestion: req.ResearchQuestion,
		WorkflowKey:      template.Key,
	}

	overlayByNumber := make(map[float64]models.PhaseSpec, len(overlay.Phases))
	for _, ph := range overlay.Phases {
		overlayByNumber[ph.PhaseNumber] = ph
	}

	for _, tp := range template.Phases {
		spec := models.PhaseSpec{
			PhaseNumber:   tp.PhaseNumber,
			PhaseName:     tp.PhaseName,
			ChainKey:      tp.ChainKey,
			EngineKey:     tp.EngineKey,
			IterationMode: models.IterationMode(tp.IterationMode),
			Depth:         models.Depth(tp.Depth),
			DependsOn:     tp.DependsOn,
		}
		if ov, ok := overlayByNumber[tp.PhaseNumber]; ok {
			mergePhase(&spec, ov)
			delete(overlayByNumber, tp.PhaseNumber)
		}
		plan.Phases = append(plan.Phases, spec)
	}
	// Decimal insertions the template does not know about
	for _, ph := range overlay.Phases {
		if _, remaining := overlayByNumber[ph.PhaseNumber]; remaining {
			plan.Phases = append(plan.Phases, ph)
		}
	}

	plan.RecommendedViews = overlay.RecommendedViews
	plan.Strategy = overlay.Strategy
	plan.DepthProfile = overlay.DepthProfile
	if overlay.ResearchQuestion != "" {
		plan.ResearchQuestion = overlay.ResearchQuestion
	}
	p.finalize(plan, req)
	return plan
}

// mergePhase overlays the model's non-zero fields onto the template phase.
func mergePhase(spec *models.PhaseSpec, ov models.PhaseSpec) {
	if ov.PhaseName != "" {
		spec.PhaseName = ov.PhaseName
	}
	if ov.ChainKey != "" || ov.EngineKey != "" {
		spec.ChainKey = ov.ChainKey
		spec.EngineKey = ov.EngineKey
	}
	if ov.IterationMode != "" {
		spec.IterationMode = ov.IterationMode
	}
	if ov.Depth != "" {
		spec.Depth = ov.Depth
	}
	if len(ov.DependsOn) > 0 {
		spec.DependsOn = ov.DependsOn
	}
	spec.Skip = ov.Skip
	spec.SkipReason = ov.SkipReason
	if len(ov.EngineOverrides) > 0 {
		spec.EngineOverrides = ov.EngineOverrides
	}
	if len(ov.WorkOverrides) > 0 {
		spec.WorkOverrides = ov.WorkOverrides
	}
	if len(ov.WorkChainMap) > 0 {
		spec.WorkChainMap = ov.WorkChainMap
	}
	if len(ov.ChapterTargets) > 0 {
		spec.ChapterTargets = ov.ChapterTargets
		spec.DocumentScope = ov.DocumentScope
	}
	if ov.ContextEmphasis != "" {
		spec.ContextEmphasis = ov.ContextEmphasis
	}
	if ov.ModelHint != "" {
		spec.ModelHint = ov.ModelHint
	}
	if ov.MaxContextChars > 0 {
		spec.MaxContextChars = ov.MaxContextChars
	}
	if ov.Rationale != "" {
		spec.Rationale = ov.Rationale
	}
	spec.RequiresFullDoc = ov.RequiresFullDoc
	if len(ov.Supplementary) > 0 {
		spec.Supplementary = ov.Supplementary
	}
}

// finalize stamps identity and request context the model may have omitted.
func (p *Planner) finalize(plan *models.ExecutionPlan, req *models.PlanRequest) {
	if plan.PlanID == "" {
		plan.PlanID = uuid.New().String()
	}
	if plan.TargetWork.Title == "" {
		plan.TargetWork = req.TargetWork
	} else if plan.TargetWork.DocumentID == "" {
		plan.TargetWork.DocumentID = req.TargetWork.DocumentID
	}
	if len(plan.PriorWorks) == 0 {
		plan.PriorWorks = req.PriorWorks
	} else {
		// Re-attach document ids the model does not know about
		byTitle := make(map[string]string, len(req.PriorWorks))
		for _, w := range req.PriorWorks {
			byTitle[w.Title] = w.DocumentID
		}
		for i := range plan.PriorWorks {
			if plan.PriorWorks[i].DocumentID == "" {
				plan.PriorWorks[i].DocumentID = byTitle[plan.PriorWorks[i].Title]
			}
		}
	}
	if plan.ResearchQuestion == "" {
		plan.ResearchQuestion = req.ResearchQuestion
	}
	if plan.ThinkerContext == "" {
		plan.ThinkerContext = req.Thinker
	}
}

// profilesSection renders the sampled work profiles for the adaptive prompt.
func profilesSection(works []models.WorkMeta, profiles map[string]*Profile) string {
	var sb strings.Builder
	sb.WriteString("## Sampled work profiles\n\n")
	for _, w := range works {
		prof := profiles[w.Title]
		if prof == nil {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n", w.Title)
		if prof.Degraded {
			sb.WriteString("(classification unavailable, default profile)\n")
		}
		if prof.Genre != "" {
			fmt.Fprintf(&sb, "- genre: %s\n", prof.Genre)
		}
		if prof.Domain != "" {
			fmt.Fprintf(&sb, "- domain: %s\n", prof.Domain)
		}
		if prof.ArgumentativeStyle != "" {
			fmt.Fprintf(&sb, "- argumentative style: %s\n", prof.ArgumentativeStyle)
		}
		if prof.TechnicalLevel != "" {
			fmt.Fprintf(&sb, "- technical level: %s\n", prof.TechnicalLevel)
		}
		if len(prof.ReasoningModes) > 0 {
			fmt.Fprintf(&sb, "- reasoning modes: %s\n", strings.Join(prof.ReasoningModes, ", "))
		}
		if len(prof.CategoryAffinity) > 0 {
			sb.WriteString("- category affinity:")
			for cat, score := range prof.CategoryAffinity {
				fmt.Fprintf(&sb, " %s=%.2f", cat, score)
			}
			sb.WriteString("\n")
		}
		if prof.StructuralNotes != "" {
			fmt.Fprintf(&sb, "- structure: %s\n", prof.StructuralNotes)
		}
		if len(prof.Chapters) > 0 {
			fmt.Fprintf(&sb, "- %d chapters detected\n", len(prof.Chapters))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

const fixedSystemPreamble = `You are an analysis planning assistant. Given a workflow template and a request, decide per-phase depths, skips, iteration modes, per-engine and per-work overrides, and recommended views. Stay within the template's phase structure; you may insert decimal phases (e.g. 1.5) when the request warrants it.`

const adaptiveSystemPreamble = `You are an analysis planning assistant. Given the full analytical catalog, sampled profiles of every input work, and an objective, construct a complete execution plan from scratch: choose phases, chains or engines, dependencies, iteration modes, depths, and recommended views that best serve the objective.`

const adaptiveTraceNote = `Additionally include a "decision_trace" array of strings. Every engine you selected or deliberately rejected must have one entry tying the decision to evidence in the sampled profiles or the objective.`
