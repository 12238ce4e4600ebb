package presenter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// ViewPayload is one renderable node of the page tree.
type ViewPayload struct {
	ViewKey        string                 `json:"view_key"`
	Title          string                 `json:"title,omitempty"`
	RendererType   string                 `json:"renderer_type"`
	RendererConfig map[string]interface{} `json:"renderer_config,omitempty"`
	StanceKey      string                 `json:"stance,omitempty"`
	Visibility     string                 `json:"visibility,omitempty"`
	Position       int                    `json:"position"`
	ParentKey      string                 `json:"parent,omitempty"`
	Priority       float64                `json:"priority,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`     // structured payload from the cache
	PerWork        map[string]interface{} `json:"per_work,omitempty"` // work key → structured payload
	Prose          string                 `json:"prose,omitempty"`    // raw prose fallback; omitted in slim mode
	Children       []*ViewPayload         `json:"children,omitempty"`
}

// Page is the assembled presentation document.
type Page struct {
	JobID string         `json:"job_id"`
	Slim  bool           `json:"slim,omitempty"`
	Views []*ViewPayload `json:"views"`
}

// Assembler walks the (possibly refined) recommended views and joins view
// definitions, cached structured data, and raw prose into a payload tree.
type Assembler struct {
	cfg         *config.Config
	bridge      *Bridge
	outputs     *services.OutputService
	cache       *services.PresentationService
	refinements *services.RefinementService
	log         *slog.Logger
}

// NewAssembler creates a presentation assembler
func NewAssembler(cfg *config.Config, bridge *Bridge, outputs *services.OutputService, cache *services.PresentationService, refinements *services.RefinementService) *Assembler {
	return &Assembler{
		cfg:         cfg,
		bridge:      bridge,
		outputs:     outputs,
		cache:       cache,
		refinements: refinements,
		log:         slog.Default().With("component", "assembler"),
	}
}

// Assemble builds the page tree. Slim mode omits all prose content; callers
// re-fetch individual views on demand.
func (a *Assembler) Assemble(ctx context.Context, jobID string, plan *models.ExecutionPlan, slim bool) (*Page, error) {
	recs, err := a.effectiveViews(ctx, jobID, plan)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*ViewPayload, len(recs))
	var flat []*ViewPayload
	for _, rec := range recs {
		payload, err := a.buildPayload(ctx, jobID, plan, rec, slim)
		if err != nil {
			return nil, err
		}
		if payload == nil {
			continue
		}
		byKey[payload.ViewKey] = payload
		flat = append(flat, payload)
	}

	synthetic, err := a.chapterPayloads(ctx, jobID, byKey, slim)
	if err != nil {
		return nil, err
	}
	flat = append(flat, synthetic...)

	return &Page{JobID: jobID, Slim: slim, Views: buildTree(flat, byKey)}, nil
}

// AssembleView builds one view's payload, prose included.
func (a *Assembler) AssembleView(ctx context.Context, jobID string, plan *models.ExecutionPlan, viewKey string) (*ViewPayload, error) {
	rec := models.ViewRecommendation{ViewKey: viewKey}
	for _, r := range plan.RecommendedViews {
		if r.ViewKey == viewKey {
			rec = r
			break
		}
	}
	payload, err := a.buildPayload(ctx, jobID, plan, rec, false)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: view %s has no material", services.ErrNotFound, viewKey)
	}
	return payload, nil
}

// effectiveViews returns the refined ordering when a refinement row exists,
// otherwise the plan's recommendations.
func (a *Assembler) effectiveViews(ctx context.Context, jobID string, plan *models.ExecutionPlan) ([]models.ViewRecommendation, error) {
	ref, err := a.refinements.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return plan.RecommendedViews, nil
	}

	var recs []models.ViewRecommendation
	for _, raw := range ref.RefinedViews {
		if dropped, _ := raw["dropped"].(bool); dropped {
			continue
		}
		key, _ := raw["view_key"].(string)
		if key == "" {
			continue
		}
		priority, _ := raw["priority"].(float64)
		rationale, _ := raw["rationale"].(string)
		recs = append(recs, models.ViewRecommendation{ViewKey: key, Priority: priority, Rationale: rationale})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority > recs[j].Priority })
	return recs, nil
}

// buildPayload joins one view's definition, cached data, and prose.
func (a *Assembler) buildPayload(ctx context.Context, jobID string, plan *models.ExecutionPlan, rec models.ViewRecommendation, slim bool) (*ViewPayload, error) {
	view, err := a.cfg.Views.Get(rec.ViewKey)
	if err != nil {
		a.log.Warn("View not in registry, skipping", "view", rec.ViewKey)
		return nil, nil
	}

	payload := &ViewPayload{
		ViewKey:        view.Key,
		Title:          view.Title,
		RendererType:   view.RendererType,
		RendererConfig: view.RendererConfig,
		StanceKey:      view.StanceKey,
		Visibility:     view.Visibility,
		Position:       view.Position,
		ParentKey:      view.ParentKey,
		Priority:       rec.Priority,
	}

	tasks, err := a.bridge.tasksForView(ctx, jobID, view)
	if err != nil {
		return nil, err
	}
	perWork := make(map[string]interface{})
	var proses []string
	for _, task := range tasks {
		entry, err := a.cache.Lookup(ctx, task.Output.ID, task.SectionKey, task.sourceContent())
		if err != nil {
			return nil, err
		}
		if entry != nil {
			if view.PerWork() && task.WorkKey != "" {
				perWork[task.WorkKey] = entry.Payload
			} else {
				payload.Data = entry.Payload
			}
		}
		if !slim {
			proses = append(proses, task.sourceContent())
		}
	}
	if len(perWork) > 0 {
		payload.PerWork = perWork
	}
	if !slim && payload.Data == nil && len(payload.PerWork) == 0 {
		// Raw prose fallback for prose renderers and missed transformations
		payload.Prose = strings.Join(proses, "\n\n")
	}
	if len(tasks) == 0 && payload.Data == nil {
		return nil, nil
	}
	return payload, nil
}

// chapterPayloads synthesizes payloads for dynamically created
// chapter-targeted outputs that no static view covers.
func (a *Assembler) chapterPayloads(ctx context.Context, jobID string, existing map[string]*ViewPayload, slim bool) ([]*ViewPayload, error) {
	outputs, err := a.outputs.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	byChapter := make(map[string][]*ent.PhaseOutput)
	var order []string
	for _, o := range outputs {
		if o.Role != "chapter" || o.WorkKey == "" {
			continue
		}
		if _, seen := byChapter[o.WorkKey]; !seen {
			order = append(order, o.WorkKey)
		}
		byChapter[o.WorkKey] = append(byChapter[o.WorkKey], o)
	}

	var payloads []*ViewPayload
	for i, chapterKey := range order {
		viewKey := fmt.Sprintf("chapter:%s", chapterKey)
		if _, taken := existing[viewKey]; taken {
			continue
		}
		p := &ViewPayload{
			ViewKey:      viewKey,
			Title:        strings.ReplaceAll(chapterKey, "::", " — "),
			RendererType: "prose",
			Position:     1000 + i, // after all static views
		}
		if !slim {
			var parts []string
			for _, o := range byChapter[chapterKey] {
				parts = append(parts, o.Content)
			}
			p.Prose = strings.Join(parts, "\n\n")
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

// buildTree arranges payloads into a parent-child tree sorted by position.
func buildTree(flat []*ViewPayload, byKey map[string]*ViewPayload) []*ViewPayload {
	var roots []*ViewPayload
	for _, p := range flat {
		if p.ParentKey != "" {
			if parent, ok := byKey[p.ParentKey]; ok {
				parent.Children = append(parent.Children, p)
				continue
			}
		}
		roots = append(roots, p)
	}
	sortByPosition(roots)
	for _, p := range flat {
		sortByPosition(p.Children)
	}
	return roots
}

func sortByPosition(views []*ViewPayload) {
	sort.SliceStable(views, func(i, j int) bool { return views[i].Position < views[j].Position })
}
