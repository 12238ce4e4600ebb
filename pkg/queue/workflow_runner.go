package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	ctxbroker "github.com/exegete-ai/exegete/pkg/analysis/context"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

const resultPreviewChars = 500

// WorkflowRunner is the top-level DAG executor: it groups a plan's active
// phases by dependency, runs each group with bounded parallelism, records
// per-phase results on the job, and writes the terminal status.
type WorkflowRunner struct {
	cfg              *config.Config
	jobs             *services.JobService
	outputs          *services.OutputService
	broker           *ctxbroker.Broker
	phases           *PhaseRunner
	phaseParallelism int
	log              *slog.Logger
}

// NewWorkflowRunner creates a workflow runner
func NewWorkflowRunner(cfg *config.Config, jobs *services.JobService, outputs *services.OutputService, broker *ctxbroker.Broker, phases *PhaseRunner, phaseParallelism int) *WorkflowRunner {
	if phaseParallelism <= 0 {
		phaseParallelism = 2
	}
	return &WorkflowRunner{
		cfg:              cfg,
		jobs:             jobs,
		outputs:          outputs,
		broker:           broker,
		phases:           phases,
		phaseParallelism: phaseParallelism,
		log:              slog.Default().With("component", "workflow_runner"),
	}
}

// runState is the mutable cross-phase state of one execution.
type runState struct {
	mu           sync.Mutex
	failedPhases []float64
	finalByPhase map[float64]string
	distilled    string // final output of the first completed single-mode phase
	cancelled    bool
}

func (st *runState) recordFinal(spec models.PhaseSpec, output string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.finalByPhase[spec.PhaseNumber] = output
	if st.distilled == "" && output != "" &&
		spec.DocumentScope != "chapter" &&
		(spec.IterationMode == "" || spec.IterationMode == models.IterationSingle) {
		st.distilled = output
	}
}

// Execute runs the plan to a terminal status. Cancellation — whether via
// the interruption signal or the polled flag — yields cancelled; any phase
// failure yields failed with the failed phase numbers; otherwise completed.
func (r *WorkflowRunner) Execute(ctx context.Context, job *ent.AnalysisJob, plan *models.ExecutionPlan, cancelled llm.CancelCheck, resume bool) error {
	var watermark map[string]bool
	if resume {
		wm, err := r.outputs.Watermark(ctx, job.ID)
		if err != nil {
			_, _ = r.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusFailed, err.Error())
			return err
		}
		watermark = wm
		r.log.Info("Resuming job", "job_id", job.ID, "persisted_tuples", len(wm))
	}

	active := plan.ActivePhases()
	groups := topoGroups(active, r.log)

	st := &runState{finalByPhase: make(map[float64]string, len(active))}

	for _, group := range groups {
		if cancelled != nil && cancelled() {
			st.cancelled = true
			break
		}
		if len(group) == 1 {
			r.runPhase(ctx, job.ID, plan, group[0], watermark, cancelled, st)
		} else {
			r.runGroup(ctx, job.ID, plan, group, watermark, cancelled, st)
		}
		if st.cancelled {
			break
		}
	}

	return r.finish(ctx, job.ID, st)
}

// runGroup runs a multi-phase group under the phase-parallelism ceiling.
func (r *WorkflowRunner) runGroup(ctx context.Context, jobID string, plan *models.ExecutionPlan, group []models.PhaseSpec, watermark map[string]bool, cancelled llm.CancelCheck, st *runState) {
	sem := semaphore.NewWeighted(int64(r.phaseParallelism))
	var wg sync.WaitGroup
	for _, spec := range group {
		if cancelled != nil && cancelled() {
			st.mu.Lock()
			st.cancelled = true
			st.mu.Unlock()
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		wg.Add(1)
		go func(spec models.PhaseSpec) {
			defer wg.Done()
			defer sem.Release(1)
			r.runPhase(ctx, jobID, plan, spec, watermark, cancelled, st)
		}(spec)
	}
	wg.Wait()
}

// runPhase runs one phase and reflects its outcome onto the job record.
func (r *WorkflowRunner) runPhase(ctx context.Context, jobID string, plan *models.ExecutionPlan, spec models.PhaseSpec, watermark map[string]bool, cancelled llm.CancelCheck, st *runState) {
	start := time.Now()

	if err := r.jobs.UpdateProgress(ctx, jobID, spec.PhaseNumber, spec.PhaseName, "running"); err != nil {
		r.log.Warn("Progress update failed", "job_id", jobID, "error", err)
	}

	upstream, err := r.broker.CrossPhase(ctx, jobID, spec.DependsOn, spec.MaxContextChars, spec.ContextEmphasis)
	if err != nil {
		r.recordFailure(ctx, jobID, spec, start, RunStats{}, err.Error(), nil, st)
		return
	}

	st.mu.Lock()
	distilled := st.distilled
	docMap := map[string]string{}
	st.mu.Unlock()
	for _, w := range append([]models.WorkMeta{plan.TargetWork}, plan.PriorWorks...) {
		if w.DocumentID != "" {
			docMap[w.Title] = w.DocumentID
		}
	}

	result, err := r.phases.Run(ctx, PhaseInput{
		JobID:             jobID,
		Plan:              plan,
		Spec:              spec,
		DocMap:            docMap,
		UpstreamContext:   upstream,
		DistilledAnalysis: distilled,
		Watermark:         watermark,
		Cancelled:         cancelled,
	})
	if err != nil {
		if errors.Is(err, llm.ErrCancelled) {
			st.mu.Lock()
			st.cancelled = true
			st.mu.Unlock()
			return
		}
		r.recordFailure(ctx, jobID, spec, start, RunStats{}, err.Error(), nil, st)
		return
	}

	if result.Status == PhaseFailed {
		r.recordFailure(ctx, jobID, spec, start, result.Stats, result.Error, result.FailedWorks, st)
		return
	}

	st.recordFinal(spec, result.FinalOutput)

	record := phaseRecord(PhaseCompleted, time.Since(start), result.Stats, "", result.FinalOutput, nil)
	if err := r.jobs.RecordPhaseResult(ctx, jobID, spec.PhaseNumber, record); err != nil {
		r.log.Warn("Failed to record phase result", "job_id", jobID, "phase", spec.PhaseNumber, "error", err)
	}
	if err := r.jobs.AddTotals(ctx, jobID, result.Stats.Calls, result.Stats.InputTokens, result.Stats.OutputTokens); err != nil {
		r.log.Warn("Failed to add totals", "job_id", jobID, "error", err)
	}

	r.log.Info("Phase completed",
		"job_id", jobID, "phase", spec.PhaseNumber,
		"calls", result.Stats.Calls, "duration", time.Since(start).Round(time.Second))
}

func (r *WorkflowRunner) recordFailure(ctx context.Context, jobID string, spec models.PhaseSpec, start time.Time, stats RunStats, errMsg string, failedWorks map[string]string, st *runState) {
	st.mu.Lock()
	st.failedPhases = append(st.failedPhases, spec.PhaseNumber)
	st.mu.Unlock()

	record := phaseRecord(PhaseFailed, time.Since(start), stats, errMsg, "", failedWorks)
	if err := r.jobs.RecordPhaseResult(ctx, jobID, spec.PhaseNumber, record); err != nil {
		r.log.Warn("Failed to record phase result", "job_id", jobID, "phase", spec.PhaseNumber, "error", err)
	}
	if stats.Calls > 0 {
		if err := r.jobs.AddTotals(ctx, jobID, stats.Calls, stats.InputTokens, stats.OutputTokens); err != nil {
			r.log.Warn("Failed to add totals", "job_id", jobID, "error", err)
		}
	}
	r.log.Error("Phase failed", "job_id", jobID, "phase", spec.PhaseNumber, "error", errMsg)
}

// finish writes the terminal status: cancelled beats failed beats completed.
func (r *WorkflowRunner) finish(ctx context.Context, jobID string, st *runState) error {
	switch {
	case st.cancelled:
		_, err := r.jobs.MarkTerminal(ctx, jobID, analysisjob.StatusCancelled, "")
		return err
	case len(st.failedPhases) > 0:
		sort.Float64s(st.failedPhases)
		labels := make([]string, len(st.failedPhases))
		for i, p := range st.failedPhases {
			labels[i] = fmt.Sprintf("%.1f", p)
		}
		msg := fmt.Sprintf("phase(s) %s failed", strings.Join(labels, ", "))
		_, err := r.jobs.MarkTerminal(ctx, jobID, analysisjob.StatusFailed, msg)
		return err
	default:
		_, err := r.jobs.MarkTerminal(ctx, jobID, analysisjob.StatusCompleted, "")
		return err
	}
}

// phaseRecord builds the compact per-phase result stored on the job.
func phaseRecord(status string, duration time.Duration, stats RunStats, errMsg, finalOutput string, failedWorks map[string]string) map[string]interface{} {
	record := map[string]interface{}{
		"status":           status,
		"duration_seconds": duration.Seconds(),
		"llm_calls":        stats.Calls,
		"input_tokens":     stats.InputTokens,
		"output_tokens":    stats.OutputTokens,
	}
	if errMsg != "" {
		record["error"] = errMsg
	}
	if finalOutput != "" {
		record["preview"] = previewOf(finalOutput)
	}
	if len(failedWorks) > 0 {
		record["failed_works"] = failedWorks
	}
	return record
}

func previewOf(s string) string {
	if len(s) <= resultPreviewChars {
		return s
	}
	return s[:resultPreviewChars] + "..."
}

// topoGroups layers the active phases by dependency (Kahn). Dependencies on
// phases absent from the active set are ignored. On a cycle, the remaining
// phases run sequentially in phase-number order — a cycle never aborts the
// job.
func topoGroups(active []models.PhaseSpec, log *slog.Logger) [][]models.PhaseSpec {
	known := make(map[float64]bool, len(active))
	for _, p := range active {
		known[p.PhaseNumber] = true
	}

	done := make(map[float64]bool, len(active))
	remaining := append([]models.PhaseSpec(nil), active...)
	var groups [][]models.PhaseSpec

	for len(remaining) > 0 {
		var ready, blocked []models.PhaseSpec
		for _, p := range remaining {
			satisfied := true
			for _, dep := range p.DependsOn {
				if known[dep] && !done[dep] {
					satisfied = false
					break
				}
			}
			if satisfied {
				ready = append(ready, p)
			} else {
				blocked = append(blocked, p)
			}
		}

		if len(ready) == 0 {
			// Cycle among the remaining phases
			log.Warn("Dependency cycle detected, running remaining phases sequentially",
				"phases", len(blocked))
			sort.Slice(blocked, func(i, j int) bool {
				return blocked[i].PhaseNumber < blocked[j].PhaseNumber
			})
			for _, p := range blocked {
				groups = append(groups, []models.PhaseSpec{p})
			}
			return groups
		}

		sort.Slice(ready, func(i, j int) bool {
			return ready[i].PhaseNumber < ready[j].PhaseNumber
		})
		groups = append(groups, ready)
		for _, p := range ready {
			done[p.PhaseNumber] = true
		}
		remaining = blocked
	}
	return groups
}
