package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PresentationService persists transformation results keyed by
// (output id, section key) with source-hash freshness.
type PresentationService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewPresentationService creates a presentation cache service
func NewPresentationService(client *ent.Client) *PresentationService {
	return &PresentationService{
		client: client,
		log:    slog.Default().With("service", "presentation"),
	}
}

// HashContent computes the source hash stored with every cache row.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Lookup returns a fresh cache entry, or nil on miss. A hit is valid only
// when the stored hash matches the current source content — except for rows
// written with a content override, whose hash can never match any single
// pass and is skipped.
func (s *PresentationService) Lookup(ctx context.Context, outputID, sectionKey, sourceContent string) (*ent.PresentationCache, error) {
	entry, err := s.client.PresentationCache.Query().
		Where(
			presentationcache.OutputID(outputID),
			presentationcache.SectionKey(sectionKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query presentation cache: %w", err)
	}
	if entry.SkipHashCheck {
		return entry, nil
	}
	if entry.SourceHash != HashContent(sourceContent) {
		return nil, nil
	}
	return entry, nil
}

// Store upserts a cache row, replacing any existing (output, section) entry.
func (s *PresentationService) Store(ctx context.Context, outputID, sectionKey, sourceContent string, skipHashCheck bool, payload map[string]interface{}, modelUsed string) (*ent.PresentationCache, error) {
	// Delete-then-insert keeps the write single-purpose on both backends
	_, err := s.client.PresentationCache.Delete().
		Where(
			presentationcache.OutputID(outputID),
			presentationcache.SectionKey(sectionKey),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear stale cache entry: %w", err)
	}

	entry, err := s.client.PresentationCache.Create().
		SetID(uuid.New().String()).
		SetOutputID(outputID).
		SetSectionKey(sectionKey).
		SetSourceHash(HashContent(sourceContent)).
		SetSkipHashCheck(skipHashCheck).
		SetPayload(payload).
		SetModelUsed(modelUsed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store cache entry: %w", err)
	}
	return entry, nil
}

// ListForJob returns every cache row attached to a job's outputs.
func (s *PresentationService) ListForJob(ctx context.Context, jobID string) ([]*ent.PresentationCache, error) {
	entries, err := s.client.PresentationCache.Query().
		Where(presentationcache.HasOutputWith(
			phaseoutput.HasJobWith(analysisjob.ID(jobID)),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache entries: %w", err)
	}
	return entries, nil
}
