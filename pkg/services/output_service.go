package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exegete-ai/exegete/ent"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
)

// OutputService persists and queries phase outputs. Rows are append-only
// within a job; the unique (job, phase, engine, pass, work) tuple is the
// conflict boundary and the resume watermark.
type OutputService struct {
	client *ent.Client
	log    *slog.Logger
}

// NewOutputService creates an output service
func NewOutputService(client *ent.Client) *OutputService {
	return &OutputService{
		client: client,
		log:    slog.Default().With("service", "outputs"),
	}
}

// PersistParams carries one output row.
type PersistParams struct {
	JobID        string
	PhaseNumber  float64
	EngineKey    string
	PassNumber   int
	WorkKey      string
	StanceKey    string
	Role         string
	Content      string
	ModelUsed    string
	InputTokens  int
	OutputTokens int
	ParentID     string
	Metadata     map[string]interface{}
}

// Persist writes one output row immediately after the LLM call returns.
func (s *OutputService) Persist(ctx context.Context, p PersistParams) (*ent.PhaseOutput, error) {
	create := s.client.PhaseOutput.Create().
		SetID(uuid.New().String()).
		SetJobID(p.JobID).
		SetPhaseNumber(p.PhaseNumber).
		SetEngineKey(p.EngineKey).
		SetPassNumber(p.PassNumber).
		SetWorkKey(p.WorkKey).
		SetContent(p.Content).
		SetModelUsed(p.ModelUsed).
		SetInputTokens(p.InputTokens).
		SetOutputTokens(p.OutputTokens)
	if p.StanceKey != "" {
		create.SetStanceKey(p.StanceKey)
	}
	if p.Role != "" {
		create.SetRole(p.Role)
	}
	if p.ParentID != "" {
		create.SetParentID(p.ParentID)
	}
	if p.Metadata != nil {
		create.SetMetadata(p.Metadata)
	}

	out, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist output (job=%s phase=%.1f engine=%s pass=%d work=%q): %w",
			p.JobID, p.PhaseNumber, p.EngineKey, p.PassNumber, p.WorkKey, err)
	}
	return out, nil
}

// TupleKey is the canonical string form of the resume-watermark tuple.
func TupleKey(phase float64, engineKey string, pass int, workKey string) string {
	return fmt.Sprintf("%.1f|%s|%d|%s", phase, engineKey, pass, workKey)
}

// Watermark loads every persisted tuple for a job. Runners skip any
// (phase, engine, pass, work) already present.
func (s *OutputService) Watermark(ctx context.Context, jobID string) (map[string]bool, error) {
	outputs, err := s.client.PhaseOutput.Query().
		Where(phaseoutput.JobID(jobID)).
		Select(
			phaseoutput.FieldPhaseNumber,
			phaseoutput.FieldEngineKey,
			phaseoutput.FieldPassNumber,
			phaseoutput.FieldWorkKey,
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load watermark: %w", err)
	}
	marks := make(map[string]bool, len(outputs))
	for _, o := range outputs {
		marks[TupleKey(o.PhaseNumber, o.EngineKey, o.PassNumber, o.WorkKey)] = true
	}
	return marks, nil
}

// Exists reports whether one watermark tuple is already persisted.
func (s *OutputService) Exists(ctx context.Context, jobID string, phase float64, engineKey string, pass int, workKey string) (bool, error) {
	return s.client.PhaseOutput.Query().
		Where(
			phaseoutput.JobID(jobID),
			phaseoutput.PhaseNumber(phase),
			phaseoutput.EngineKey(engineKey),
			phaseoutput.PassNumber(pass),
			phaseoutput.WorkKey(workKey),
		).
		Exist(ctx)
}

// ListByPhases returns every output of the given phases in creation order.
// Implements the context broker's OutputSource.
func (s *OutputService) ListByPhases(ctx context.Context, jobID string, phases []float64) ([]*ent.PhaseOutput, error) {
	if len(phases) == 0 {
		return nil, nil
	}
	outputs, err := s.client.PhaseOutput.Query().
		Where(
			phaseoutput.JobID(jobID),
			phaseoutput.PhaseNumberIn(phases...),
		).
		Order(
			ent.Asc(phaseoutput.FieldPhaseNumber),
			ent.Asc(phaseoutput.FieldCreatedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs by phases: %w", err)
	}
	return outputs, nil
}

// ListByPhase returns one phase's outputs in pass order.
func (s *OutputService) ListByPhase(ctx context.Context, jobID string, phase float64) ([]*ent.PhaseOutput, error) {
	outputs, err := s.client.PhaseOutput.Query().
		Where(
			phaseoutput.JobID(jobID),
			phaseoutput.PhaseNumber(phase),
		).
		Order(
			ent.Asc(phaseoutput.FieldEngineKey),
			ent.Asc(phaseoutput.FieldWorkKey),
			ent.Asc(phaseoutput.FieldPassNumber),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs by phase: %w", err)
	}
	return outputs, nil
}

// ListByJob returns every output of a job in creation order.
func (s *OutputService) ListByJob(ctx context.Context, jobID string) ([]*ent.PhaseOutput, error) {
	outputs, err := s.client.PhaseOutput.Query().
		Where(phaseoutput.JobID(jobID)).
		Order(ent.Asc(phaseoutput.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}
	return outputs, nil
}

// LastPass returns the highest-numbered persisted pass of an engine within
// a phase/work, or nil when the engine has no outputs yet. This is what
// lets chain context threading survive a resume.
func (s *OutputService) LastPass(ctx context.Context, jobID string, phase float64, engineKey, workKey string) (*ent.PhaseOutput, error) {
	out, err := s.client.PhaseOutput.Query().
		Where(
			phaseoutput.JobID(jobID),
			phaseoutput.PhaseNumber(phase),
			phaseoutput.EngineKey(engineKey),
			phaseoutput.WorkKey(workKey),
		).
		Order(ent.Desc(phaseoutput.FieldPassNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last pass: %w", err)
	}
	return out, nil
}

// ListByEngine returns a job's outputs for one engine, optionally filtered
// by phase (phase < 0 means any phase). Used by the presentation bridge.
func (s *OutputService) ListByEngine(ctx context.Context, jobID string, phase float64, engineKey string) ([]*ent.PhaseOutput, error) {
	query := s.client.PhaseOutput.Query().
		Where(
			phaseoutput.JobID(jobID),
			phaseoutput.EngineKey(engineKey),
		)
	if phase >= 0 {
		query = query.Where(phaseoutput.PhaseNumber(phase))
	}
	outputs, err := query.
		Order(
			ent.Asc(phaseoutput.FieldWorkKey),
			ent.Asc(phaseoutput.FieldPassNumber),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs by engine: %w", err)
	}
	return outputs, nil
}

// Get fetches one output row.
func (s *OutputService) Get(ctx context.Context, outputID string) (*ent.PhaseOutput, error) {
	out, err := s.client.PhaseOutput.Get(ctx, outputID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: output %s", ErrNotFound, outputID)
		}
		return nil, fmt.Errorf("failed to get output: %w", err)
	}
	return out, nil
}
