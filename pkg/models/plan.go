// Package models contains request/response models and business domain types.
package models

import "fmt"

// Depth selects which pass sequence of an engine to use.
type Depth string

// Depth levels, shortest to longest pass sequence.
const (
	DepthSurface  Depth = "surface"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// IterationMode controls how a phase iterates over the corpus.
type IterationMode string

// Iteration modes.
const (
	IterationSingle          IterationMode = "single"
	IterationPerWork         IterationMode = "per_work"
	IterationPerWorkFiltered IterationMode = "per_work_filtered"
)

// WorkMeta identifies one work in the corpus.
type WorkMeta struct {
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	Year       string `json:"year,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

// ChapterTarget instructs the runner to analyze a specific chapter
// rather than a whole document.
type ChapterTarget struct {
	WorkKey    string `json:"work_key"`
	ChapterID  string `json:"chapter_id"`
	StartChar  int    `json:"start_char"`
	EndChar    int    `json:"end_char"`
	Rationale  string `json:"rationale,omitempty"`
	DocumentID string `json:"document_id,omitempty"` // pre-uploaded chapter doc, preferred over offsets
}

// EngineOverride carries per-engine adjustments within a phase.
type EngineOverride struct {
	Depth           Depth    `json:"depth,omitempty"`
	FocusDimensions []string `json:"focus_dimensions,omitempty"`
}

// WorkOverride carries per-work adjustments within a per-work phase.
type WorkOverride struct {
	Depth    Depth  `json:"depth,omitempty"`
	Emphasis string `json:"emphasis,omitempty"`
}

// PhaseSpec configures one phase of an execution plan.
// Exactly one of ChainKey/EngineKey must be set.
type PhaseSpec struct {
	PhaseNumber     float64                   `json:"phase_number"`
	PhaseName       string                    `json:"phase_name"`
	Skip            bool                      `json:"skip,omitempty"`
	SkipReason      string                    `json:"skip_reason,omitempty"`
	Depth           Depth                     `json:"depth,omitempty"`
	EngineOverrides map[string]EngineOverride `json:"engine_overrides,omitempty"`
	WorkOverrides   map[string]WorkOverride   `json:"work_overrides,omitempty"`
	WorkChainMap    map[string]string         `json:"work_chain_map,omitempty"`
	ChapterTargets  []ChapterTarget           `json:"chapter_targets,omitempty"`
	DocumentScope   string                    `json:"document_scope,omitempty"` // "full" (default) or "chapter"
	IterationMode   IterationMode             `json:"iteration_mode,omitempty"`
	ChainKey        string                    `json:"chain_key,omitempty"`
	EngineKey       string                    `json:"engine_key,omitempty"`
	Supplementary   []string                  `json:"supplementary_chains,omitempty"`
	DependsOn       []float64                 `json:"depends_on,omitempty"`
	ModelHint       string                    `json:"model_hint,omitempty"`
	RequiresFullDoc bool                      `json:"requires_full_documents,omitempty"`
	ContextEmphasis string                    `json:"context_emphasis,omitempty"`
	Rationale       string                    `json:"rationale,omitempty"`
	MaxContextChars int                       `json:"max_context_chars,omitempty"`
}

// Validate checks the exactly-one-of chain/engine invariant.
func (p *PhaseSpec) Validate() error {
	if p.ChainKey == "" && p.EngineKey == "" {
		return fmt.Errorf("phase %.1f: neither chain_key nor engine_key set", p.PhaseNumber)
	}
	if p.ChainKey != "" && p.EngineKey != "" {
		return fmt.Errorf("phase %.1f: both chain_key and engine_key set", p.PhaseNumber)
	}
	return nil
}

// ViewRecommendation names a view the plan suggests rendering.
type ViewRecommendation struct {
	ViewKey   string  `json:"view_key"`
	Rationale string  `json:"rationale,omitempty"`
	Priority  float64 `json:"priority,omitempty"`
}

// ExecutionPlan configures one run. Immutable after approval; the job
// stores a frozen snapshot so it is self-sufficient for resume.
type ExecutionPlan struct {
	PlanID           string               `json:"plan_id"`
	ThinkerContext   string               `json:"thinker_context,omitempty"`
	TargetWork       WorkMeta             `json:"target_work"`
	PriorWorks       []WorkMeta           `json:"prior_works,omitempty"`
	ResearchQuestion string               `json:"research_question,omitempty"`
	WorkflowKey      string               `json:"workflow_key,omitempty"`
	Phases           []PhaseSpec          `json:"phases"`
	RecommendedViews []ViewRecommendation `json:"recommended_views,omitempty"`
	Strategy         string               `json:"strategy,omitempty"`
	DecisionTrace    []string             `json:"decision_trace,omitempty"`
	EstimatedCalls   int                  `json:"estimated_calls,omitempty"`
	DepthProfile     string               `json:"depth_profile,omitempty"`
}

// Validate checks plan-level invariants: every phase has exactly one of
// chain/engine, dependencies reference declared phases, and work-chain-map
// keys are a subset of prior-work titles.
func (p *ExecutionPlan) Validate() error {
	known := make(map[float64]bool, len(p.Phases))
	for i := range p.Phases {
		known[p.Phases[i].PhaseNumber] = true
	}
	titles := make(map[string]bool, len(p.PriorWorks))
	for _, w := range p.PriorWorks {
		titles[w.Title] = true
	}
	for i := range p.Phases {
		ph := &p.Phases[i]
		if err := ph.Validate(); err != nil {
			return err
		}
		for _, dep := range ph.DependsOn {
			if !known[dep] {
				return fmt.Errorf("phase %.1f: dependency %.1f not in plan", ph.PhaseNumber, dep)
			}
		}
		for work := range ph.WorkChainMap {
			if !titles[work] {
				return fmt.Errorf("phase %.1f: work_chain_map key %q is not a prior work", ph.PhaseNumber, work)
			}
		}
	}
	return nil
}

// PriorWorkTitles returns the plan's prior-work titles in declaration order.
func (p *ExecutionPlan) PriorWorkTitles() []string {
	titles := make([]string, len(p.PriorWorks))
	for i, w := range p.PriorWorks {
		titles[i] = w.Title
	}
	return titles
}

// ActivePhases returns the non-skipped phases in declaration order.
func (p *ExecutionPlan) ActivePhases() []PhaseSpec {
	active := make([]PhaseSpec, 0, len(p.Phases))
	for _, ph := range p.Phases {
		if !ph.Skip {
			active = append(active, ph)
		}
	}
	return active
}

// PlanRequest is the input to the planner.
type PlanRequest struct {
	Thinker          string     `json:"thinker,omitempty"`
	TargetWork       WorkMeta   `json:"target_work"`
	PriorWorks       []WorkMeta `json:"prior_works,omitempty"`
	ResearchQuestion string     `json:"research_question,omitempty"`
	DepthPreference  Depth      `json:"depth_preference,omitempty"`
	FocusHint        string     `json:"focus_hint,omitempty"`
	Objective        string     `json:"objective,omitempty"`
	WorkflowKey      string     `json:"workflow_key,omitempty"`
}
