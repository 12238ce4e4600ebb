package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	ctxbroker "github.com/exegete-ai/exegete/pkg/analysis/context"
	"github.com/exegete-ai/exegete/pkg/analysis/prompt"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// RunStats accumulates call and token accounting across nested runners.
type RunStats struct {
	Calls        int
	InputTokens  int
	OutputTokens int
	Outputs      int
}

// Add folds another stats record in.
func (s *RunStats) Add(other RunStats) {
	s.Calls += other.Calls
	s.InputTokens += other.InputTokens
	s.OutputTokens += other.OutputTokens
	s.Outputs += other.Outputs
}

// ChainRunner executes an ordered engine list within one phase call,
// threading each engine's last pass output into the next engine's context.
type ChainRunner struct {
	cfg     *config.Config
	caller  llm.Caller
	outputs *services.OutputService
	broker  *ctxbroker.Broker
	log     *slog.Logger
}

// NewChainRunner creates a chain runner
func NewChainRunner(cfg *config.Config, caller llm.Caller, outputs *services.OutputService, broker *ctxbroker.Broker) *ChainRunner {
	return &ChainRunner{
		cfg:     cfg,
		caller:  caller,
		outputs: outputs,
		broker:  broker,
		log:     slog.Default().With("component", "chain_runner"),
	}
}

// ChainInput configures one chain execution.
type ChainInput struct {
	JobID            string
	Spec             *models.PhaseSpec
	Engines          []string // ordered engine keys
	BlendMode        config.BlendMode
	WorkKey          string // empty for non-per-work phases
	Depth            string
	UserMessage      string // the material under analysis
	UpstreamContext  string // cross-phase context + plan emphasis
	ResearchQuestion string
	Role             string // output role, default "extraction"
	Watermark        map[string]bool
	Cancelled        llm.CancelCheck
}

// Run executes the chain sequentially and returns the last engine's final
// pass output. Parallel, merge, and llm-selection blend modes are accepted
// in the catalog but run sequentially — a known limitation, logged, never
// silently dropped.
func (r *ChainRunner) Run(ctx context.Context, in ChainInput) (string, RunStats, error) {
	if in.BlendMode != "" && in.BlendMode != config.BlendSequential {
		r.log.Warn("Blend mode not yet supported, running sequentially",
			"blend_mode", in.BlendMode, "job_id", in.JobID, "phase", in.Spec.PhaseNumber)
	}

	var stats RunStats
	var chainContext string // previous engine's final output, labeled
	var finalOutput string

	for _, engineKey := range in.Engines {
		if in.Cancelled != nil && in.Cancelled() {
			return "", stats, llm.ErrCancelled
		}

		engine, err := r.cfg.Engines.Get(engineKey)
		if err != nil {
			// A catalog may reference an engine that no longer exists;
			// downstream engines still run.
			r.log.Warn("Engine not in registry, skipping",
				"engine", engineKey, "job_id", in.JobID, "phase", in.Spec.PhaseNumber)
			continue
		}

		depth, focus := r.resolveOverrides(in.Spec, engineKey, in.Depth)

		output, engineStats, err := r.runEngine(ctx, in, engine, depth, focus, chainContext)
		if err != nil {
			return "", stats, err
		}
		stats.Add(engineStats)

		finalOutput = output
		chainContext = r.broker.ChainStep(output, engine.Name)
	}

	return finalOutput, stats, nil
}

// resolveOverrides applies plan-level per-engine depth and focus overrides.
func (r *ChainRunner) resolveOverrides(spec *models.PhaseSpec, engineKey, defaultDepth string) (string, []string) {
	depth := defaultDepth
	var focus []string
	if ov, ok := spec.EngineOverrides[engineKey]; ok {
		if ov.Depth != "" {
			depth = string(ov.Depth)
		}
		focus = ov.FocusDimensions
	}
	return depth, focus
}

// runEngine drives one engine's pass sequence, persisting each pass
// immediately. With no pass definition at the resolved depth, the engine
// runs as a single whole-engine call.
func (r *ChainRunner) runEngine(ctx context.Context, in ChainInput, engine *config.EngineDefinition, depth string, focus []string, chainContext string) (string, RunStats, error) {
	var stats RunStats

	passes := r.cfg.ResolvePasses(engine, depth)
	if len(passes) == 0 {
		passes = []config.PassDefinition{{Number: 1, Label: "full analysis"}}
	}

	proseByPass := make(map[int]string, len(passes))
	stanceByPass := make(map[int]string, len(passes))
	var lastOutput string

	for _, pass := range passes {
		if in.Cancelled != nil && in.Cancelled() {
			return "", stats, llm.ErrCancelled
		}
		stanceByPass[pass.Number] = pass.StanceKey

		// Resume watermark: a persisted tuple is never re-executed, but its
		// prose is reloaded so consumes_from and chain threading still work.
		key := services.TupleKey(in.Spec.PhaseNumber, engine.Key, pass.Number, in.WorkKey)
		if in.Watermark[key] {
			existing, err := r.loadPersisted(ctx, in, engine.Key, pass.Number)
			if err != nil {
				return "", stats, err
			}
			if existing != "" {
				proseByPass[pass.Number] = existing
				lastOutput = existing
			}
			continue
		}

		innerContext := r.broker.InnerPass(proseByPass, stanceByPass, pass.ConsumesFrom)
		shared := joinContexts(in.UpstreamContext, chainContext, innerContext)

		var stance *config.StanceDefinition
		if pass.StanceKey != "" {
			stance, _ = r.cfg.Stances.Get(pass.StanceKey)
		}

		systemPrompt, spec := prompt.ComposePass(prompt.ComposeInput{
			Engine:           engine,
			Pass:             pass,
			Stance:           stance,
			Depth:            depth,
			SharedContext:    shared,
			FocusOverride:    focus,
			ResearchQuestion: in.ResearchQuestion,
		})

		label := fmt.Sprintf("%s pass %d", engine.Key, pass.Number)
		if in.WorkKey != "" {
			label = fmt.Sprintf("%s (%s)", label, in.WorkKey)
		}

		result, err := r.caller.Call(ctx, llm.CallRequest{
			SystemPrompt:     systemPrompt,
			UserMessage:      in.UserMessage,
			PhaseNumber:      in.Spec.PhaseNumber,
			ModelHint:        in.Spec.ModelHint,
			Depth:            depth,
			RequiresFullDocs: in.Spec.RequiresFullDoc,
			Label:            label,
			Cancelled:        in.Cancelled,
		})
		if err != nil {
			return "", stats, fmt.Errorf("engine %s pass %d: %w", engine.Key, pass.Number, err)
		}

		metadata := map[string]interface{}{
			"focus_dimensions": spec.FocusDimensions,
			"consumes_from":    spec.ConsumesFrom,
			"retries":          result.Retries,
		}
		if result.Partial {
			metadata["partial"] = true
			metadata["partial_reason"] = result.PartialReason
		}
		_, err = r.outputs.Persist(ctx, services.PersistParams{
			JobID:        in.JobID,
			PhaseNumber:  in.Spec.PhaseNumber,
			EngineKey:    engine.Key,
			PassNumber:   pass.Number,
			WorkKey:      in.WorkKey,
			StanceKey:    pass.StanceKey,
			Role:         in.Role,
			Content:      result.Content,
			ModelUsed:    result.ModelUsed,
			InputTokens:  result.InputTokens,
			OutputTokens: result.OutputTokens,
			Metadata:     metadata,
		})
		if err != nil {
			return "", stats, err
		}

		stats.Calls++
		stats.Outputs++
		stats.InputTokens += result.InputTokens
		stats.OutputTokens += result.OutputTokens
		proseByPass[pass.Number] = result.Content
		lastOutput = result.Content
	}

	return lastOutput, stats, nil
}

// loadPersisted reloads one already-persisted pass for resume.
func (r *ChainRunner) loadPersisted(ctx context.Context, in ChainInput, engineKey string, passNumber int) (string, error) {
	out, err := r.outputs.LastPass(ctx, in.JobID, in.Spec.PhaseNumber, engineKey, in.WorkKey)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	if out.PassNumber == passNumber {
		return out.Content, nil
	}
	// The exact pass sits below the last one; fetch the phase and pick it
	all, err := r.outputs.ListByPhase(ctx, in.JobID, in.Spec.PhaseNumber)
	if err != nil {
		return "", err
	}
	for _, o := range all {
		if o.EngineKey == engineKey && o.PassNumber == passNumber && o.WorkKey == in.WorkKey {
			return o.Content, nil
		}
	}
	return "", nil
}

// joinContexts concatenates non-empty context components with a separator.
func joinContexts(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n---\n\n")
}
