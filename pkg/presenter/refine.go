package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// Refiner re-ranks the plan's recommended views after execution, once the
// actual phase results exist to judge them against. One refinement row per
// job, upsert semantics.
type Refiner struct {
	cfg         *config.Config
	caller      llm.Caller
	refinements *services.RefinementService
	log         *slog.Logger
}

// NewRefiner creates a view refiner
func NewRefiner(cfg *config.Config, caller llm.Caller, refinements *services.RefinementService) *Refiner {
	return &Refiner{
		cfg:         cfg,
		caller:      caller,
		refinements: refinements,
		log:         slog.Default().With("component", "view_refiner"),
	}
}

// refinedView is the model's re-ranking entry.
type refinedView struct {
	ViewKey   string  `json:"view_key"`
	Priority  float64 `json:"priority"`
	Rationale string  `json:"rationale,omitempty"`
	Dropped   bool    `json:"dropped,omitempty"`
}

// Refine asks the model to re-rank the recommended views against what the
// job actually produced and persists the result.
func (r *Refiner) Refine(ctx context.Context, job *ent.AnalysisJob, plan *models.ExecutionPlan) (*ent.ViewRefinement, error) {
	if len(plan.RecommendedViews) == 0 {
		return nil, nil
	}

	result, err := r.caller.Call(ctx, llm.CallRequest{
		SystemPrompt: refinePrompt,
		UserMessage:  r.refineInput(job, plan),
		ModelHint:    llm.SonnetModel.ID,
		Label:        fmt.Sprintf("refine views %s", job.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("refinement call failed: %w", err)
	}

	var parsed struct {
		Views         []refinedView `json:"views"`
		ChangeSummary string        `json:"change_summary"`
	}
	if err := json.Unmarshal([]byte(stripFences(result.Content)), &parsed); err != nil {
		return nil, fmt.Errorf("refinement response unparseable: %w", err)
	}

	views := make([]map[string]interface{}, 0, len(parsed.Views))
	for _, v := range parsed.Views {
		views = append(views, map[string]interface{}{
			"view_key":  v.ViewKey,
			"priority":  v.Priority,
			"rationale": v.Rationale,
			"dropped":   v.Dropped,
		})
	}
	return r.refinements.Upsert(ctx, job.ID, views, parsed.ChangeSummary,
		result.ModelUsed, result.InputTokens, result.OutputTokens)
}

// refineInput renders the recommendations plus per-phase result previews.
func (r *Refiner) refineInput(job *ent.AnalysisJob, plan *models.ExecutionPlan) string {
	var sb strings.Builder
	sb.WriteString("## Recommended views\n\n")
	for _, rec := range plan.RecommendedViews {
		fmt.Fprintf(&sb, "- %s (priority %.1f)", rec.ViewKey, rec.Priority)
		if view, err := r.cfg.Views.Get(rec.ViewKey); err == nil {
			fmt.Fprintf(&sb, " renderer=%s", view.RendererType)
		}
		if rec.Rationale != "" {
			fmt.Fprintf(&sb, " — %s", rec.Rationale)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Phase results\n\n")
	for key, raw := range job.PhaseResults {
		record, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "### Phase %s (%v)\n", key, record["status"])
		if preview, ok := record["preview"].(string); ok && preview != "" {
			sb.WriteString(preview)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

const refinePrompt = `You re-rank presentation views after an analysis run. Given the originally recommended views and previews of what each phase actually produced, reorder and re-prioritize the views so the strongest material leads, and drop views whose source output turned out thin. Respond with a single JSON object and nothing else:
{"views": [{"view_key": "...", "priority": 1.0, "rationale": "...", "dropped": false}], "change_summary": "..."}`
