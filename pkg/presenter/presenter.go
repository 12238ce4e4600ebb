package presenter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/pkg/models"
	"github.com/exegete-ai/exegete/pkg/services"
)

// Service is the presenter facade the HTTP layer talks to: refine, prepare,
// assemble, and the compose pipeline chaining all three.
type Service struct {
	jobs      *services.JobService
	refiner   *Refiner  // nil when no LLM is configured
	polisher  *Polisher // nil when no LLM is configured
	bridge    *Bridge
	assembler *Assembler
	cache     *services.PresentationService
	log       *slog.Logger
}

// NewService creates the presenter facade
func NewService(jobs *services.JobService, refiner *Refiner, polisher *Polisher, bridge *Bridge, assembler *Assembler, cache *services.PresentationService) *Service {
	return &Service{
		jobs:      jobs,
		refiner:   refiner,
		polisher:  polisher,
		bridge:    bridge,
		assembler: assembler,
		cache:     cache,
		log:       slog.Default().With("component", "presenter"),
	}
}

// ComposeResult is the all-in-one compose response.
type ComposeResult struct {
	Page    *Page         `json:"page"`
	Prepare *PrepareStats `json:"prepare"`
	Refined bool          `json:"refined"`
}

// Compose runs refine, prepare, and assemble in order. Refinement failure
// is non-fatal — the plan's original view ordering still renders.
func (s *Service) Compose(ctx context.Context, jobID string, slim bool) (*ComposeResult, error) {
	job, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}

	refined := false
	if s.refiner != nil {
		if _, err := s.refiner.Refine(ctx, job, plan); err != nil {
			s.log.Warn("View refinement failed, using plan ordering", "job_id", jobID, "error", err)
		} else {
			refined = true
		}
	}

	stats, err := s.bridge.Prepare(ctx, jobID, plan, false)
	if err != nil {
		return nil, err
	}

	page, err := s.assembler.Assemble(ctx, jobID, plan, slim)
	if err != nil {
		return nil, err
	}
	return &ComposeResult{Page: page, Prepare: stats, Refined: refined}, nil
}

// Prepare runs the transformation tasks. force re-runs everything and
// overwrites the cache.
func (s *Service) Prepare(ctx context.Context, jobID string, force bool) (*PrepareStats, error) {
	_, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.bridge.Prepare(ctx, jobID, plan, force)
}

// RefineViews re-ranks the recommended views against the job's results.
func (s *Service) RefineViews(ctx context.Context, jobID string) (*ent.ViewRefinement, error) {
	job, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if s.refiner == nil {
		return nil, fmt.Errorf("view refinement requires a configured LLM")
	}
	return s.refiner.Refine(ctx, job, plan)
}

// Polish returns a view's prose rewritten under an interpretive school,
// cached per (job, view, school).
func (s *Service) Polish(ctx context.Context, jobID, viewKey, schoolKey string, force bool) (*ent.PolishCache, error) {
	_, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if s.polisher == nil {
		return nil, fmt.Errorf("polishing requires a configured LLM")
	}
	return s.polisher.Polish(ctx, jobID, plan, viewKey, schoolKey, force)
}

// Page assembles the full page tree.
func (s *Service) Page(ctx context.Context, jobID string, slim bool) (*Page, error) {
	_, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.assembler.Assemble(ctx, jobID, plan, slim)
}

// View assembles a single view payload.
func (s *Service) View(ctx context.Context, jobID, viewKey string) (*ViewPayload, error) {
	_, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.assembler.AssembleView(ctx, jobID, plan, viewKey)
}

// StatusResult reports presentation readiness for a job.
type StatusResult struct {
	JobID        string `json:"job_id"`
	JobStatus    string `json:"job_status"`
	TasksPlanned int    `json:"tasks_planned"`
	CachedRows   int    `json:"cached_rows"`
	Ready        bool   `json:"ready"`
}

// Status reports how much of the presentation work is cached.
func (s *Service) Status(ctx context.Context, jobID string) (*StatusResult, error) {
	job, plan, err := s.jobAndPlan(ctx, jobID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.bridge.PlanTasks(ctx, jobID, plan)
	if err != nil {
		return nil, err
	}
	cached, err := s.cache.ListForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		JobID:        jobID,
		JobStatus:    string(job.Status),
		TasksPlanned: len(tasks),
		CachedRows:   len(cached),
		Ready:        len(tasks) > 0 && len(cached) >= len(tasks),
	}, nil
}

func (s *Service) jobAndPlan(ctx context.Context, jobID string) (*ent.AnalysisJob, *models.ExecutionPlan, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	plan, err := services.PlanSnapshot(job)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, fmt.Errorf("%w: job %s has no plan snapshot", services.ErrNotFound, jobID)
	}
	return job, plan, nil
}
