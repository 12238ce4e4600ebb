package planner

import (
	"fmt"
	"strings"

	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/models"
)

// catalogSection renders the analytical catalog for a planning prompt.
// full=true includes per-engine dimensions and composability, which the
// adaptive mode needs to justify its selections.
func catalogSection(cfg *config.Config, full bool) string {
	var sb strings.Builder

	sb.WriteString("## Capability engines\n\n")
	for _, s := range cfg.Engines.ListSummaries() {
		fmt.Fprintf(&sb, "- %s (%s, category: %s)", s.Key, s.Name, s.Category)
		if full {
			if engine, err := cfg.Engines.Get(s.Key); err == nil {
				var dims []string
				for _, d := range engine.Dimensions {
					dims = append(dims, d.Key)
				}
				if len(dims) > 0 {
					fmt.Fprintf(&sb, " — dimensions: %s", strings.Join(dims, ", "))
				}
				if engine.Problematique != "" {
					fmt.Fprintf(&sb, "\n  %s", engine.Problematique)
				}
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Chains\n\n")
	for _, s := range cfg.Chains.ListSummaries() {
		fmt.Fprintf(&sb, "- %s (%d engines, blend: %s)", s.Key, s.EngineCount, s.BlendMode)
		if chain, err := cfg.Chains.Get(s.Key); err == nil {
			fmt.Fprintf(&sb, ": %s", strings.Join(chain.Engines, " → "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Stances\n\n")
	sb.WriteString(strings.Join(cfg.Stances.ListKeys(), ", "))
	sb.WriteString("\n")

	sb.WriteString("\n## Workflow templates\n\n")
	for _, s := range cfg.Workflows.ListSummaries() {
		fmt.Fprintf(&sb, "- %s (%d phases)\n", s.Key, s.PhaseCount)
	}

	if full {
		sb.WriteString("\n## Views\n\n")
		sb.WriteString(strings.Join(cfg.Views.ListKeys(), ", "))
		sb.WriteString("\n\n## Transformations\n\n")
		sb.WriteString(strings.Join(cfg.Transformations.ListKeys(), ", "))
		sb.WriteString("\n\n## Operationalized engines\n\n")
		sb.WriteString(strings.Join(cfg.Operationalizations.ListKeys(), ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// workflowSection renders one template's phases for the fixed mode.
func workflowSection(template *config.WorkflowTemplate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Workflow template: %s\n\n", template.Key)
	for _, p := range template.Phases {
		fmt.Fprintf(&sb, "- phase %.1f %q", p.PhaseNumber, p.PhaseName)
		if p.ChainKey != "" {
			fmt.Fprintf(&sb, " chain=%s", p.ChainKey)
		}
		if p.EngineKey != "" {
			fmt.Fprintf(&sb, " engine=%s", p.EngineKey)
		}
		if p.IterationMode != "" {
			fmt.Fprintf(&sb, " iteration=%s", p.IterationMode)
		}
		if len(p.DependsOn) > 0 {
			fmt.Fprintf(&sb, " depends_on=%v", p.DependsOn)
		}
		if p.Description != "" {
			fmt.Fprintf(&sb, " — %s", p.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// requestSection renders the corpus and question being planned for.
func requestSection(req *models.PlanRequest) string {
	var sb strings.Builder
	sb.WriteString("## Request\n\n")
	if req.Thinker != "" {
		fmt.Fprintf(&sb, "Thinker: %s\n", req.Thinker)
	}
	fmt.Fprintf(&sb, "Target work: %s", req.TargetWork.Title)
	if req.TargetWork.Author != "" {
		fmt.Fprintf(&sb, " (%s)", req.TargetWork.Author)
	}
	sb.WriteString("\n")
	if len(req.PriorWorks) > 0 {
		sb.WriteString("Prior works:\n")
		for _, w := range req.PriorWorks {
			fmt.Fprintf(&sb, "- %s", w.Title)
			if w.Year != "" {
				fmt.Fprintf(&sb, " (%s)", w.Year)
			}
			sb.WriteString("\n")
		}
	}
	if req.ResearchQuestion != "" {
		fmt.Fprintf(&sb, "Research question: %s\n", req.ResearchQuestion)
	}
	if req.DepthPreference != "" {
		fmt.Fprintf(&sb, "Depth preference: %s\n", req.DepthPreference)
	}
	if req.FocusHint != "" {
		fmt.Fprintf(&sb, "Focus hint: %s\n", req.FocusHint)
	}
	if req.Objective != "" {
		fmt.Fprintf(&sb, "Objective: %s\n", req.Objective)
	}
	return sb.String()
}

const planSchemaNote = `Respond with a single JSON object and nothing else. Shape:
{
  "plan_id": "...",
  "research_question": "...",
  "phases": [
    {
      "phase_number": 1.0,
      "phase_name": "...",
      "chain_key": "..." OR "engine_key": "...",
      "iteration_mode": "single" | "per_work" | "per_work_filtered",
      "depth": "surface" | "standard" | "deep",
      "depends_on": [..],
      "skip": false,
      "engine_overrides": {"<engine>": {"depth": "...", "focus_dimensions": [..]}},
      "work_overrides": {"<work title>": {"depth": "...", "emphasis": "..."}},
      "work_chain_map": {"<work title>": "<chain key>"},
      "context_emphasis": "...",
      "model_hint": "...",
      "rationale": "..."
    }
  ],
  "recommended_views": [{"view_key": "...", "rationale": "...", "priority": 1.0}],
  "strategy": "...",
  "depth_profile": "..."
}
Every phase must set exactly one of chain_key / engine_key.`
