package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/polishcache"
)

// PolishService stores per-school rewrites of a view's prose, keyed by
// (job, view, school). Upsert semantics on the full key.
type PolishService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewPolishService creates a polish cache service
func NewPolishService(client *ent.Client) *PolishService {
	return &PolishService{
		client: client,
		log:    slog.Default().With("service", "polish"),
	}
}

// Lookup returns the cached polish, or nil when none exists.
func (s *PolishService) Lookup(ctx context.Context, jobID, viewKey, schoolKey string) (*ent.PolishCache, error) {
	entry, err := s.client.PolishCache.Query().
		Where(
			polishcache.JobID(jobID),
			polishcache.ViewKey(viewKey),
			polishcache.SchoolKey(schoolKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query polish cache: %w", err)
	}
	return entry, nil
}

// Store upserts the (job, view, school) row.
func (s *PolishService) Store(ctx context.Context, jobID, viewKey, schoolKey, prose, modelUsed string, inputTokens, outputTokens int) (*ent.PolishCache, error) {
	_, err := s.client.PolishCache.Delete().
		Where(
			polishcache.JobID(jobID),
			polishcache.ViewKey(viewKey),
			polishcache.SchoolKey(schoolKey),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear stale polish entry: %w", err)
	}

	entry, err := s.client.PolishCache.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetViewKey(viewKey).
		SetSchoolKey(schoolKey).
		SetProse(prose).
		SetModelUsed(modelUsed).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store polish entry: %w", err)
	}
	s.log.Info("Polish stored", "job_id", jobID, "view_key", viewKey, "school_key", schoolKey)
	return entry, nil
}

// ListForJob returns every polish row for a job.
func (s *PolishService) ListForJob(ctx context.Context, jobID string) ([]*ent.PolishCache, error) {
	entries, err := s.client.PolishCache.Query().
		Where(polishcache.JobID(jobID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polish entries: %w", err)
	}
	return entries, nil
}
