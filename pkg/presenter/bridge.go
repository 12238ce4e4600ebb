package presenter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// Task is one planned transformation: a source output, the template (or a
// dynamically composed one), and the cache section key it lands under.
type Task struct {
	ViewKey       string
	Output        *ent.PhaseOutput
	Template      *config.TransformationTemplate
	SectionKey    string
	WorkKey       string
	ContentOverride string // multi-pass concatenation; disables the hash check
	SkipHashCheck bool
}

// sourceContent returns the prose the transformation runs over.
func (t *Task) sourceContent() string {
	if t.ContentOverride != "" {
		return t.ContentOverride
	}
	return t.Output.Content
}

// PrepareStats summarizes one prepare run.
type PrepareStats struct {
	Tasks        int `json:"tasks"`
	CacheHits    int `json:"cache_hits"`
	Executed     int `json:"executed"`
	Skipped      int `json:"skipped"`
	Failed       int `json:"failed"`
	LLMCalls     int `json:"llm_calls"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Bridge plans and executes transformation tasks against the cache.
type Bridge struct {
	cfg      *config.Config
	outputs  *services.OutputService
	cache    *services.PresentationService
	executor *TransformExecutor
	log      *slog.Logger
}

// NewBridge creates a presentation bridge
func NewBridge(cfg *config.Config, outputs *services.OutputService, cache *services.PresentationService, executor *TransformExecutor) *Bridge {
	return &Bridge{
		cfg:      cfg,
		outputs:  outputs,
		cache:    cache,
		executor: executor,
		log:      slog.Default().With("component", "presentation_bridge"),
	}
}

// Prepare plans tasks for the plan's recommended views and executes them.
// force bypasses the cache and overwrites every row.
func (b *Bridge) Prepare(ctx context.Context, jobID string, plan *models.ExecutionPlan, force bool) (*PrepareStats, error) {
	tasks, err := b.PlanTasks(ctx, jobID, plan)
	if err != nil {
		return nil, err
	}

	stats := &PrepareStats{Tasks: len(tasks)}
	for _, task := range tasks {
		if !force {
			hit, err := b.cache.Lookup(ctx, task.Output.ID, task.SectionKey, task.sourceContent())
			if err != nil {
				return nil, err
			}
			if hit != nil {
				stats.CacheHits++
				continue
			}
		}

		result, err := b.executor.Execute(ctx, task.Template, task.sourceContent())
		if err != nil {
			stats.Failed++
			b.log.Warn("Transformation task failed",
				"view", task.ViewKey, "section", task.SectionKey, "error", err)
			continue
		}
		if _, err := b.cache.Store(ctx, task.Output.ID, task.SectionKey, task.sourceContent(), task.SkipHashCheck, result.Payload, result.ModelUsed); err != nil {
			return nil, err
		}
		stats.Executed++
		stats.LLMCalls += result.LLMCalls
		stats.InputTokens += result.InputTokens
		stats.OutputTokens += result.OutputTokens
	}

	b.log.Info("Prepare complete", "job_id", jobID,
		"tasks", stats.Tasks, "hits", stats.CacheHits, "executed", stats.Executed, "failed", stats.Failed)
	return stats, nil
}

// PlanTasks resolves every recommended view to its transformation tasks.
func (b *Bridge) PlanTasks(ctx context.Context, jobID string, plan *models.ExecutionPlan) ([]*Task, error) {
	var tasks []*Task
	for _, rec := range plan.RecommendedViews {
		view, err := b.cfg.Views.Get(rec.ViewKey)
		if err != nil {
			b.log.Warn("Recommended view not in registry, skipping", "view", rec.ViewKey)
			continue
		}
		viewTasks, err := b.tasksForView(ctx, jobID, view)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, viewTasks...)
	}
	return tasks, nil
}

// tasksForView locates the view's source outputs and builds one task per
// source (or per work, for per-work views).
func (b *Bridge) tasksForView(ctx context.Context, jobID string, view *config.ViewDefinition) ([]*Task, error) {
	engineKey := view.DataSource.EngineKey
	if engineKey == "" && view.DataSource.ChainKey != "" {
		// A chain view reads the chain's final engine
		chain, err := b.cfg.Chains.Get(view.DataSource.ChainKey)
		if err != nil || len(chain.Engines) == 0 {
			b.log.Warn("View references unknown or empty chain, skipping",
				"view", view.Key, "chain", view.DataSource.ChainKey)
			return nil, nil
		}
		engineKey = chain.Engines[len(chain.Engines)-1]
	}
	if engineKey == "" {
		return nil, nil
	}

	phase := view.DataSource.PhaseNumber
	if phase == 0 {
		phase = -1 // any phase
	}
	outputs, err := b.outputs.ListByEngine(ctx, jobID, phase, engineKey)
	if err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, nil
	}

	tmpl, sectionBase := b.resolveTemplate(view, engineKey)
	if tmpl == nil {
		// Transformation "none" with no curated template: nothing to run
		return nil, nil
	}

	byWork := groupByWork(outputs)
	var tasks []*Task
	for work, workOutputs := range byWork {
		if !view.PerWork() && work != "" {
			continue
		}
		task := &Task{
			ViewKey:    view.Key,
			Template:   tmpl,
			WorkKey:    work,
			SectionKey: sectionBase,
		}
		if work != "" {
			task.SectionKey = fmt.Sprintf("%s::%s", sectionBase, work)
		}

		// Multi-pass engines concatenate into a content override; the hash
		// can never match any single pass so freshness checking is disabled
		last := workOutputs[len(workOutputs)-1]
		task.Output = last
		if len(workOutputs) > 1 {
			var parts []string
			for _, o := range workOutputs {
				parts = append(parts, o.Content)
			}
			task.ContentOverride = strings.Join(parts, "\n\n")
			task.SkipHashCheck = true
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// resolveTemplate finds the curated template for (engine, renderer), or
// composes a dynamic extraction template under a synthetic section key.
func (b *Bridge) resolveTemplate(view *config.ViewDefinition, engineKey string) (*config.TransformationTemplate, string) {
	if view.Transformation != "" && view.Transformation != "none" {
		if tmpl, err := b.cfg.Transformations.Get(view.Transformation); err == nil {
			return tmpl, tmpl.Key
		}
	}
	if tmpl := b.cfg.Transformations.FindForEngine(engineKey, view.RendererType); tmpl != nil {
		return tmpl, tmpl.Key
	}
	if view.Transformation == "none" {
		return nil, ""
	}
	return b.dynamicTemplate(view, engineKey), fmt.Sprintf("dyn:%s:%s", engineKey, view.RendererType)
}

// dynamicTemplate composes an extraction prompt from the engine's
// capability metadata, the renderer's ideal data shape, and the view's
// presentation stance.
func (b *Bridge) dynamicTemplate(view *config.ViewDefinition, engineKey string) *config.TransformationTemplate {
	var sb strings.Builder
	sb.WriteString("Extract the structure below from the analytical prose.")
	if engine, err := b.cfg.Engines.Get(engineKey); err == nil {
		fmt.Fprintf(&sb, " The prose was produced by the %q analysis", engine.Name)
		var dims []string
		for _, d := range engine.Dimensions {
			dims = append(dims, d.Key)
		}
		if len(dims) > 0 {
			fmt.Fprintf(&sb, ", organized around: %s", strings.Join(dims, ", "))
		}
		sb.WriteString(".")
	}
	if view.StanceKey != "" {
		if stance, err := b.cfg.Stances.Get(view.StanceKey); err == nil {
			fmt.Fprintf(&sb, " Presentation stance: %s", stance.Prose)
		}
	}

	schema := view.IdealDataShape
	if schema == "" {
		schema = `{"items": [{"title": "...", "detail": "..."}]}`
	}
	return &config.TransformationTemplate{
		Key:          fmt.Sprintf("dyn:%s:%s", engineKey, view.RendererType),
		EngineKey:    engineKey,
		RendererType: view.RendererType,
		Type:         config.TransformLLMExtract,
		Prompt:       sb.String(),
		Schema:       schema,
	}
}

// groupByWork buckets outputs by work key, each bucket in pass order.
func groupByWork(outputs []*ent.PhaseOutput) map[string][]*ent.PhaseOutput {
	byWork := make(map[string][]*ent.PhaseOutput)
	for _, o := range outputs {
		byWork[o.WorkKey] = append(byWork[o.WorkKey], o)
	}
	return byWork
}
