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

// Polisher rewrites an assembled view's prose through the framing of one
// interpretive school (a stance from the catalog). Results are cached per
// (job, view, school) so repeat reads cost nothing.
type Polisher struct {
	cfg       *config.Config
	caller    llm.Caller
	assembler *Assembler
	polishes  *services.PolishService
	log       *slog.Logger
}

// NewPolisher creates a view polisher
func NewPolisher(cfg *config.Config, caller llm.Caller, assembler *Assembler, polishes *services.PolishService) *Polisher {
	return &Polisher{
		cfg:       cfg,
		caller:    caller,
		assembler: assembler,
		polishes:  polishes,
		log:       slog.Default().With("component", "polisher"),
	}
}

// Polish returns the (job, view, school) polish, generating and caching it
// on first request. force regenerates and overwrites the cached row.
func (p *Polisher) Polish(ctx context.Context, jobID string, plan *models.ExecutionPlan, viewKey, schoolKey string, force bool) (*ent.PolishCache, error) {
	stance, err := p.cfg.GetStance(schoolKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown school %s", services.ErrNotFound, schoolKey)
	}

	if !force {
		cached, err := p.polishes.Lookup(ctx, jobID, viewKey, schoolKey)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	payload, err := p.assembler.AssembleView(ctx, jobID, plan, viewKey)
	if err != nil {
		return nil, err
	}
	source := p.sourceProse(payload)
	if source == "" {
		return nil, fmt.Errorf("%w: view %s has no prose to polish", services.ErrNotFound, viewKey)
	}

	result, err := p.caller.Call(ctx, llm.CallRequest{
		SystemPrompt: p.polishPrompt(stance),
		UserMessage:  source,
		ModelHint:    llm.SonnetModel.ID,
		Label:        fmt.Sprintf("polish %s/%s", viewKey, schoolKey),
	})
	if err != nil {
		return nil, fmt.Errorf("polish call failed: %w", err)
	}

	p.log.Info("View polished", "job_id", jobID, "view_key", viewKey,
		"school_key", schoolKey, "chars", len(result.Content))
	return p.polishes.Store(ctx, jobID, viewKey, schoolKey, result.Content,
		result.ModelUsed, result.InputTokens, result.OutputTokens)
}

// sourceProse flattens the view payload into polishable text. Structured
// data is serialized; per-work sections are concatenated under headings.
func (p *Polisher) sourceProse(payload *ViewPayload) string {
	var sb strings.Builder
	if payload.Prose != "" {
		sb.WriteString(payload.Prose)
	}
	for work, data := range payload.PerWork {
		fmt.Fprintf(&sb, "\n\n## %s\n\n", work)
		sb.WriteString(flattenData(data.(map[string]interface{})))
	}
	if payload.Data != nil && sb.Len() == 0 {
		sb.WriteString(flattenData(payload.Data))
	}
	return strings.TrimSpace(sb.String())
}

func flattenData(data map[string]interface{}) string {
	if prose, ok := data["prose"].(string); ok {
		return prose
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ""
	}
	return string(raw)
}

func (p *Polisher) polishPrompt(stance *config.StanceDefinition) string {
	var sb strings.Builder
	sb.WriteString("You rewrite analytical prose through one interpretive school's framing. Preserve every substantive claim and all cited evidence; change emphasis, vocabulary, and framing only. Respond with the rewritten prose and nothing else.\n\n")
	fmt.Fprintf(&sb, "## School: %s\n\n%s\n", stance.Name, stance.Prose)
	return sb.String()
}
