package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// RefinementService stores the one-row-per-job post-execution re-ranking of
// view recommendations. Upsert semantics on job id.
type RefinementService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewRefinementService creates a refinement service
func NewRefinementService(client *ent.Client) *RefinementService {
	return &RefinementService{
		client: client,
		log:    slog.Default().With("service", "refinements"),
	}
}

// Upsert replaces the job's refinement row.
func (s *RefinementService) Upsert(ctx context.Context, jobID string, refinedViews []map[string]interface{}, changeSummary, modelUsed string, inputTokens, outputTokens int) (*ent.ViewRefinement, error) {
	_, err := s.client.ViewRefinement.Delete().
		Where(viewrefinement.JobID(jobID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear prior refinement: %w", err)
	}

	ref, err := s.client.ViewRefinement.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetRefinedViews(refinedViews).
		SetChangeSummary(changeSummary).
		SetModelUsed(modelUsed).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store refinement: %w", err)
	}
	s.log.Info("View refinement stored", "job_id", jobID, "views", len(refinedViews))
	return ref, nil
}

// Get returns the job's refinement, or nil when none exists.
func (s *RefinementService) Get(ctx context.Context, jobID string) (*ent.ViewRefinement, error) {
	ref, err := s.client.ViewRefinement.Query().
		Where(viewrefinement.JobID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refinement: %w", err)
	}
	return ref, nil
}
