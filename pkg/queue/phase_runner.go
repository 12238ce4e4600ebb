package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	ctxbroker "github.com/exegete-ai/exegete/pkg/analysis/context"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// Phase statuses recorded in the job's phase-results map.
const (
	PhaseCompleted = "completed"
	PhaseFailed    = "failed"
	PhaseSkipped   = "skipped"
)

const missingDocPlaceholder = "[document unavailable: %s]"

// PhaseRunner resolves a phase spec to its execution shape — standard,
// per-work, or chapter-targeted — and runs it.
type PhaseRunner struct {
	cfg             *config.Config
	caller          llm.Caller
	outputs         *services.OutputService
	docs            *services.DocumentService
	broker          *ctxbroker.Broker
	chains          *ChainRunner
	workParallelism int
	log             *slog.Logger
}

// NewPhaseRunner creates a phase runner
func NewPhaseRunner(cfg *config.Config, caller llm.Caller, outputs *services.OutputService, docs *services.DocumentService, broker *ctxbroker.Broker, chains *ChainRunner, workParallelism int) *PhaseRunner {
	if workParallelism <= 0 {
		workParallelism = 3
	}
	return &PhaseRunner{
		cfg:             cfg,
		caller:          caller,
		outputs:         outputs,
		docs:            docs,
		broker:          broker,
		chains:          chains,
		workParallelism: workParallelism,
		log:             slog.Default().With("component", "phase_runner"),
	}
}

// PhaseInput configures one phase execution.
type PhaseInput struct {
	JobID             string
	Plan              *models.ExecutionPlan
	Spec              models.PhaseSpec
	DocMap            map[string]string // work title → document id
	UpstreamContext   string            // cross-phase context + plan emphasis, already composed
	DistilledAnalysis string            // the target's distilled upstream analysis, when available
	Watermark         map[string]bool
	Cancelled         llm.CancelCheck
}

// PhaseResult summarizes one phase run.
type PhaseResult struct {
	Status      string
	FinalOutput string
	Error       string
	FailedWorks map[string]string
	Stats       RunStats
}

// Run executes one phase.
func (r *PhaseRunner) Run(ctx context.Context, in PhaseInput) (*PhaseResult, error) {
	engines, blend, err := r.resolveUnit(in.Spec.ChainKey, in.Spec.EngineKey)
	if err != nil {
		return &PhaseResult{Status: PhaseFailed, Error: err.Error()}, nil
	}

	depth := string(in.Spec.Depth)
	if depth == "" {
		depth = string(models.DepthStandard)
	}

	switch {
	case in.Spec.DocumentScope == "chapter" && len(in.Spec.ChapterTargets) > 0:
		return r.runChapters(ctx, in, engines, blend, depth)
	case in.Spec.IterationMode == models.IterationPerWork,
		in.Spec.IterationMode == models.IterationPerWorkFiltered:
		return r.runPerWork(ctx, in, engines, blend, depth)
	default:
		return r.runStandard(ctx, in, engines, blend, depth)
	}
}

// resolveUnit maps the phase's chain-or-engine reference to an engine list.
func (r *PhaseRunner) resolveUnit(chainKey, engineKey string) ([]string, config.BlendMode, error) {
	if chainKey != "" {
		chain, err := r.cfg.Chains.Get(chainKey)
		if err != nil {
			return nil, "", fmt.Errorf("chain %q not in registry", chainKey)
		}
		return chain.Engines, chain.EffectiveBlendMode(), nil
	}
	return []string{engineKey}, config.BlendSequential, nil
}

// runStandard is one run over the target-work text, followed by the phase's
// supplementary chains. Supplementary failures are non-fatal.
func (r *PhaseRunner) runStandard(ctx context.Context, in PhaseInput, engines []string, blend config.BlendMode, depth string) (*PhaseResult, error) {
	text := r.documentText(ctx, in.Plan.TargetWork.Title, in.Plan.TargetWork.DocumentID, in.DocMap)

	primary, stats, err := r.chains.Run(ctx, ChainInput{
		JobID:            in.JobID,
		Spec:             &in.Spec,
		Engines:          engines,
		BlendMode:        blend,
		Depth:            depth,
		UserMessage:      text,
		UpstreamContext:  in.UpstreamContext,
		ResearchQuestion: in.Plan.ResearchQuestion,
		Role:             "extraction",
		Watermark:        in.Watermark,
		Cancelled:        in.Cancelled,
	})
	if err != nil {
		if errors.Is(err, llm.ErrCancelled) {
			return nil, err
		}
		return &PhaseResult{Status: PhaseFailed, Error: err.Error(), Stats: stats}, nil
	}

	final := primary
	for _, suppKey := range in.Spec.Supplementary {
		if in.Cancelled != nil && in.Cancelled() {
			return nil, llm.ErrCancelled
		}
		suppOut, suppStats, suppErr := r.runSupplementary(ctx, in, suppKey, primary, depth)
		stats.Add(suppStats)
		if suppErr != nil {
			if errors.Is(suppErr, llm.ErrCancelled) {
				return nil, suppErr
			}
			// Logged and swallowed; the phase continues with whatever arrived
			r.log.Warn("Supplementary chain failed",
				"chain", suppKey, "job_id", in.JobID, "phase", in.Spec.PhaseNumber, "error", suppErr)
			continue
		}
		if suppOut != "" {
			final += fmt.Sprintf("\n\n## %s\n\n%s", suppKey, suppOut)
		}
	}

	return &PhaseResult{Status: PhaseCompleted, FinalOutput: final, Stats: stats}, nil
}

// runSupplementary executes one supplementary chain with the primary output
// as its upstream context.
func (r *PhaseRunner) runSupplementary(ctx context.Context, in PhaseInput, chainKey, primaryOutput, depth string) (string, RunStats, error) {
	chain, err := r.cfg.Chains.Get(chainKey)
	if err != nil {
		return "", RunStats{}, fmt.Errorf("supplementary chain %q not in registry", chainKey)
	}
	upstream := joinContexts(in.UpstreamContext, r.broker.ChainStep(primaryOutput, "primary analysis"))
	return r.chains.Run(ctx, ChainInput{
		JobID:            in.JobID,
		Spec:             &in.Spec,
		Engines:          chain.Engines,
		BlendMode:        chain.EffectiveBlendMode(),
		Depth:            depth,
		UserMessage:      r.documentText(ctx, in.Plan.TargetWork.Title, in.Plan.TargetWork.DocumentID, in.DocMap),
		UpstreamContext:  upstream,
		ResearchQuestion: in.Plan.ResearchQuestion,
		Role:             "supplementary",
		Watermark:        in.Watermark,
		Cancelled:        in.Cancelled,
	})
}

// runPerWork submits one work unit per prior-work title to a bounded pool.
// Partial unit failures are collected per work and never abort siblings.
func (r *PhaseRunner) runPerWork(ctx context.Context, in PhaseInput, defaultEngines []string, blend config.BlendMode, depth string) (*PhaseResult, error) {
	works := r.selectWorks(in.Spec, in.Plan)
	if len(works) == 0 {
		return &PhaseResult{Status: PhaseCompleted, FinalOutput: "", Stats: RunStats{}}, nil
	}

	sem := semaphore.NewWeighted(int64(r.workParallelism))
	var wg sync.WaitGroup
	var mu sync.Mutex
	outputs := make(map[string]string, len(works))
	failures := make(map[string]string)
	var stats RunStats
	var cancelled bool

	for _, work := range works {
		if in.Cancelled != nil && in.Cancelled() {
			cancelled = true
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(work string) {
			defer wg.Done()
			defer sem.Release(1)

			out, unitStats, err := r.runWorkUnit(ctx, in, work, defaultEngines, blend, depth)
			mu.Lock()
			defer mu.Unlock()
			stats.Add(unitStats)
			if err != nil {
				if errors.Is(err, llm.ErrCancelled) {
					cancelled = true
					return
				}
				r.log.Warn("Per-work unit failed",
					"work", work, "job_id", in.JobID, "phase", in.Spec.PhaseNumber, "error", err)
				failures[work] = err.Error()
				return
			}
			outputs[work] = out
		}(work)
	}
	wg.Wait()

	if cancelled {
		return nil, llm.ErrCancelled
	}

	final := mergeWorkOutputs(works, outputs)
	if len(failures) > 0 {
		var failed []string
		for w := range failures {
			failed = append(failed, w)
		}
		sort.Strings(failed)
		return &PhaseResult{
			Status:      PhaseFailed,
			FinalOutput: final,
			Error:       fmt.Sprintf("%d work unit(s) failed: %s", len(failures), strings.Join(failed, ", ")),
			FailedWorks: failures,
			Stats:       stats,
		}, nil
	}
	return &PhaseResult{Status: PhaseCompleted, FinalOutput: final, Stats: stats}, nil
}

// selectWorks returns the iteration set. Filtered mode restricts to works
// the plan explicitly routed via the per-work chain map.
func (r *PhaseRunner) selectWorks(spec models.PhaseSpec, plan *models.ExecutionPlan) []string {
	titles := plan.PriorWorkTitles()
	if spec.IterationMode != models.IterationPerWorkFiltered {
		return titles
	}
	var filtered []string
	for _, t := range titles {
		if _, ok := spec.WorkChainMap[t]; ok {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// runWorkUnit executes one prior work through its chain.
func (r *PhaseRunner) runWorkUnit(ctx context.Context, in PhaseInput, work string, defaultEngines []string, blend config.BlendMode, depth string) (string, RunStats, error) {
	engines := defaultEngines
	if chainKey, ok := in.Spec.WorkChainMap[work]; ok && chainKey != "" {
		if chain, err := r.cfg.Chains.Get(chainKey); err == nil {
			engines = chain.Engines
			blend = chain.EffectiveBlendMode()
		} else {
			r.log.Warn("Per-work chain not in registry, using phase default",
				"work", work, "chain", chainKey)
		}
	}

	unitDepth := depth
	upstream := in.UpstreamContext
	if ov, ok := in.Spec.WorkOverrides[work]; ok {
		if ov.Depth != "" {
			unitDepth = string(ov.Depth)
		}
		if ov.Emphasis != "" {
			upstream = joinContexts(upstream, ov.Emphasis)
		}
	}

	workText := r.documentText(ctx, work, "", in.DocMap)
	userMessage := r.perWorkInput(in, work, workText)

	return r.chains.Run(ctx, ChainInput{
		JobID:            in.JobID,
		Spec:             &in.Spec,
		Engines:          engines,
		BlendMode:        blend,
		WorkKey:          work,
		Depth:            unitDepth,
		UserMessage:      userMessage,
		UpstreamContext:  upstream,
		ResearchQuestion: in.Plan.ResearchQuestion,
		Role:             "extraction",
		Watermark:        in.Watermark,
		Cancelled:        in.Cancelled,
	})
}

// perWorkInput builds the unit's input text: the target's distilled
// upstream analysis (preferred — this keeps every downstream call well
// under the context window) combined with the prior work's raw text. The
// format variant is keyed by phase number: early classification phases
// balance both sides, later scanning phases put the prior work first.
func (r *PhaseRunner) perWorkInput(in PhaseInput, work, workText string) string {
	target := in.DistilledAnalysis
	targetLabel := fmt.Sprintf("Distilled analysis of %s", in.Plan.TargetWork.Title)
	if target == "" {
		target = r.documentText(context.Background(), in.Plan.TargetWork.Title, in.Plan.TargetWork.DocumentID, in.DocMap)
		targetLabel = fmt.Sprintf("Full text of %s", in.Plan.TargetWork.Title)
	}

	if in.Spec.PhaseNumber < 3.0 {
		// Classification variant: both sides balanced
		return fmt.Sprintf("# %s\n\n%s\n\n---\n\n# Prior work: %s\n\n%s",
			targetLabel, target, work, workText)
	}
	// Scanning variant: the prior work leads
	return fmt.Sprintf("# Prior work: %s\n\n%s\n\n---\n\n# %s\n\n%s",
		work, workText, targetLabel, target)
}

// runChapters executes exactly once per chapter target.
func (r *PhaseRunner) runChapters(ctx context.Context, in PhaseInput, engines []string, blend config.BlendMode, depth string) (*PhaseResult, error) {
	var stats RunStats
	var sections []string
	failures := make(map[string]string)

	for _, target := range in.Spec.ChapterTargets {
		if in.Cancelled != nil && in.Cancelled() {
			return nil, llm.ErrCancelled
		}

		text := r.chapterText(ctx, in, target)
		workKey := fmt.Sprintf("%s::%s", target.WorkKey, target.ChapterID)

		userMessage := text
		if target.Rationale != "" {
			userMessage = fmt.Sprintf("Focus: %s\n\n%s", target.Rationale, text)
		}

		out, unitStats, err := r.chains.Run(ctx, ChainInput{
			JobID:            in.JobID,
			Spec:             &in.Spec,
			Engines:          engines,
			BlendMode:        blend,
			WorkKey:          workKey,
			Depth:            depth,
			UserMessage:      userMessage,
			UpstreamContext:  in.UpstreamContext,
			ResearchQuestion: in.Plan.ResearchQuestion,
			Role:             "chapter",
			Watermark:        in.Watermark,
			Cancelled:        in.Cancelled,
		})
		stats.Add(unitStats)
		if err != nil {
			if errors.Is(err, llm.ErrCancelled) {
				return nil, err
			}
			failures[workKey] = err.Error()
			continue
		}
		sections = append(sections, fmt.Sprintf("## %s — %s\n\n%s", target.WorkKey, target.ChapterID, out))
	}

	final := strings.Join(sections, "\n\n")
	if len(failures) > 0 {
		return &PhaseResult{
			Status:      PhaseFailed,
			FinalOutput: final,
			Error:       fmt.Sprintf("%d chapter target(s) failed", len(failures)),
			FailedWorks: failures,
			Stats:       stats,
		}, nil
	}
	return &PhaseResult{Status: PhaseCompleted, FinalOutput: final, Stats: stats}, nil
}

// chapterText resolves a chapter target: a pre-uploaded chapter document is
// preferred over offset extraction over full-text fallback. Offsets beyond
// the document length yield empty chapter text — the phase completes with
// degraded output rather than aborting.
func (r *PhaseRunner) chapterText(ctx context.Context, in PhaseInput, target models.ChapterTarget) string {
	if target.DocumentID != "" {
		if doc, err := r.docs.Get(ctx, target.DocumentID); err == nil && doc != nil {
			return doc.Content
		}
	}

	full := r.documentText(ctx, target.WorkKey, "", in.DocMap)
	if target.EndChar > target.StartChar {
		start, end := target.StartChar, target.EndChar
		if start >= len(full) {
			r.log.Warn("Chapter offsets exceed document length, using empty text",
				"work", target.WorkKey, "chapter", target.ChapterID)
			return ""
		}
		if end > len(full) {
			end = len(full)
		}
		return full[start:end]
	}
	return full
}

// documentText fetches a document's full text by explicit id or via the
// job's work-title map, substituting a placeholder when missing so the
// pipeline degrades rather than aborts.
func (r *PhaseRunner) documentText(ctx context.Context, title, documentID string, docMap map[string]string) string {
	id := documentID
	if id == "" {
		id = docMap[title]
	}
	if id == "" {
		return fmt.Sprintf(missingDocPlaceholder, title)
	}
	doc, err := r.docs.Get(ctx, id)
	if err != nil || doc == nil {
		return fmt.Sprintf(missingDocPlaceholder, title)
	}
	return doc.Content
}

// mergeWorkOutputs joins per-work outputs under work headings in
// declaration order.
func mergeWorkOutputs(works []string, outputs map[string]string) string {
	var sections []string
	for _, work := range works {
		if out, ok := outputs[work]; ok && out != "" {
			sections = append(sections, fmt.Sprintf("## %s\n\n%s", work, out))
		}
	}
	return strings.Join(sections, "\n\n")
}
