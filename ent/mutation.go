// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/document"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/presentationcache"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob       = "AnalysisJob"
	TypeDocument          = "Document"
	TypePhaseOutput       = "PhaseOutput"
	TypePolishCache       = "PolishCache"
	TypePresentationCache = "PresentationCache"
	TypeViewRefinement    = "ViewRefinement"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	plan_id                *string
	status                 *analysisjob.Status
	current_phase          *float64
	addcurrent_phase       *float64
	current_phase_name     *string
	progress_detail        *string
	completed_phases       *[]float64
	appendcompleted_phases []float64
	phase_results          *map[string]interface{}
	total_llm_calls        *int
	addtotal_llm_calls     *int
	total_input_tokens     *int
	addtotal_input_tokens  *int
	total_output_tokens    *int
	addtotal_output_tokens *int
	plan_snapshot          *map[string]interface{}
	request_snapshot       *map[string]interface{}
	document_map           *map[string]string
	cancel_token           *string
	workflow_key           *string
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	error_message          *string
	pod_id                 *string
	last_interaction_at    *time.Time
	clearedFields          map[string]struct{}
	outputs                map[string]struct{}
	removedoutputs         map[string]struct{}
	clearedoutputs         bool
	view_refinement        *string
	clearedview_refinement bool
	polishes               map[string]struct{}
	removedpolishes        map[string]struct{}
	clearedpolishes        bool
	done                   bool
	oldValue               func(context.Context) (*AnalysisJob, error)
	predicates             []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id string) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *AnalysisJobMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *AnalysisJobMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *AnalysisJobMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(a analysisjob.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r analysisjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v analysisjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *AnalysisJobMutation) SetCurrentPhase(f float64) {
	m.current_phase = &f
	m.addcurrent_phase = nil
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *AnalysisJobMutation) CurrentPhase() (r float64, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCurrentPhase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// AddCurrentPhase adds f to the "current_phase" field.
func (m *AnalysisJobMutation) AddCurrentPhase(f float64) {
	if m.addcurrent_phase != nil {
		*m.addcurrent_phase += f
	} else {
		m.addcurrent_phase = &f
	}
}

// AddedCurrentPhase returns the value that was added to the "current_phase" field in this mutation.
func (m *AnalysisJobMutation) AddedCurrentPhase() (r float64, exists bool) {
	v := m.addcurrent_phase
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *AnalysisJobMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.addcurrent_phase = nil
	m.clearedFields[analysisjob.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *AnalysisJobMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *AnalysisJobMutation) ResetCurrentPhase() {
	m.current_phase = nil
	m.addcurrent_phase = nil
	delete(m.clearedFields, analysisjob.FieldCurrentPhase)
}

// SetCurrentPhaseName sets the "current_phase_name" field.
func (m *AnalysisJobMutation) SetCurrentPhaseName(s string) {
	m.current_phase_name = &s
}

// CurrentPhaseName returns the value of the "current_phase_name" field in the mutation.
func (m *AnalysisJobMutation) CurrentPhaseName() (r string, exists bool) {
	v := m.current_phase_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhaseName returns the old "current_phase_name" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCurrentPhaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhaseName: %w", err)
	}
	return oldValue.CurrentPhaseName, nil
}

// ClearCurrentPhaseName clears the value of the "current_phase_name" field.
func (m *AnalysisJobMutation) ClearCurrentPhaseName() {
	m.current_phase_name = nil
	m.clearedFields[analysisjob.FieldCurrentPhaseName] = struct{}{}
}

// CurrentPhaseNameCleared returns if the "current_phase_name" field was cleared in this mutation.
func (m *AnalysisJobMutation) CurrentPhaseNameCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCurrentPhaseName]
	return ok
}

// ResetCurrentPhaseName resets all changes to the "current_phase_name" field.
func (m *AnalysisJobMutation) ResetCurrentPhaseName() {
	m.current_phase_name = nil
	delete(m.clearedFields, analysisjob.FieldCurrentPhaseName)
}

// SetProgressDetail sets the "progress_detail" field.
func (m *AnalysisJobMutation) SetProgressDetail(s string) {
	m.progress_detail = &s
}

// ProgressDetail returns the value of the "progress_detail" field in the mutation.
func (m *AnalysisJobMutation) ProgressDetail() (r string, exists bool) {
	v := m.progress_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressDetail returns the old "progress_detail" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldProgressDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressDetail: %w", err)
	}
	return oldValue.ProgressDetail, nil
}

// ClearProgressDetail clears the value of the "progress_detail" field.
func (m *AnalysisJobMutation) ClearProgressDetail() {
	m.progress_detail = nil
	m.clearedFields[analysisjob.FieldProgressDetail] = struct{}{}
}

// ProgressDetailCleared returns if the "progress_detail" field was cleared in this mutation.
func (m *AnalysisJobMutation) ProgressDetailCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldProgressDetail]
	return ok
}

// ResetProgressDetail resets all changes to the "progress_detail" field.
func (m *AnalysisJobMutation) ResetProgressDetail() {
	m.progress_detail = nil
	delete(m.clearedFields, analysisjob.FieldProgressDetail)
}

// SetCompletedPhases sets the "completed_phases" field.
func (m *AnalysisJobMutation) SetCompletedPhases(f []float64) {
	m.completed_phases = &f
	m.appendcompleted_phases = nil
}

// CompletedPhases returns the value of the "completed_phases" field in the mutation.
func (m *AnalysisJobMutation) CompletedPhases() (r []float64, exists bool) {
	v := m.completed_phases
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedPhases returns the old "completed_phases" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompletedPhases(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedPhases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedPhases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedPhases: %w", err)
	}
	return oldValue.CompletedPhases, nil
}

// AppendCompletedPhases adds f to the "completed_phases" field.
func (m *AnalysisJobMutation) AppendCompletedPhases(f []float64) {
	m.appendcompleted_phases = append(m.appendcompleted_phases, f...)
}

// AppendedCompletedPhases returns the list of values that were appended to the "completed_phases" field in this mutation.
func (m *AnalysisJobMutation) AppendedCompletedPhases() ([]float64, bool) {
	if len(m.appendcompleted_phases) == 0 {
		return nil, false
	}
	return m.appendcompleted_phases, true
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (m *AnalysisJobMutation) ClearCompletedPhases() {
	m.completed_phases = nil
	m.appendcompleted_phases = nil
	m.clearedFields[analysisjob.FieldCompletedPhases] = struct{}{}
}

// CompletedPhasesCleared returns if the "completed_phases" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompletedPhasesCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompletedPhases]
	return ok
}

// ResetCompletedPhases resets all changes to the "completed_phases" field.
func (m *AnalysisJobMutation) ResetCompletedPhases() {
	m.completed_phases = nil
	m.appendcompleted_phases = nil
	delete(m.clearedFields, analysisjob.FieldCompletedPhases)
}

// SetPhaseResults sets the "phase_results" field.
func (m *AnalysisJobMutation) SetPhaseResults(value map[string]interface{}) {
	m.phase_results = &value
}

// PhaseResults returns the value of the "phase_results" field in the mutation.
func (m *AnalysisJobMutation) PhaseResults() (r map[string]interface{}, exists bool) {
	v := m.phase_results
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseResults returns the old "phase_results" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPhaseResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseResults: %w", err)
	}
	return oldValue.PhaseResults, nil
}

// ClearPhaseResults clears the value of the "phase_results" field.
func (m *AnalysisJobMutation) ClearPhaseResults() {
	m.phase_results = nil
	m.clearedFields[analysisjob.FieldPhaseResults] = struct{}{}
}

// PhaseResultsCleared returns if the "phase_results" field was cleared in this mutation.
func (m *AnalysisJobMutation) PhaseResultsCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldPhaseResults]
	return ok
}

// ResetPhaseResults resets all changes to the "phase_results" field.
func (m *AnalysisJobMutation) ResetPhaseResults() {
	m.phase_results = nil
	delete(m.clearedFields, analysisjob.FieldPhaseResults)
}

// SetTotalLlmCalls sets the "total_llm_calls" field.
func (m *AnalysisJobMutation) SetTotalLlmCalls(i int) {
	m.total_llm_calls = &i
	m.addtotal_llm_calls = nil
}

// TotalLlmCalls returns the value of the "total_llm_calls" field in the mutation.
func (m *AnalysisJobMutation) TotalLlmCalls() (r int, exists bool) {
	v := m.total_llm_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLlmCalls returns the old "total_llm_calls" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldTotalLlmCalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLlmCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLlmCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLlmCalls: %w", err)
	}
	return oldValue.TotalLlmCalls, nil
}

// AddTotalLlmCalls adds i to the "total_llm_calls" field.
func (m *AnalysisJobMutation) AddTotalLlmCalls(i int) {
	if m.addtotal_llm_calls != nil {
		*m.addtotal_llm_calls += i
	} else {
		m.addtotal_llm_calls = &i
	}
}

// AddedTotalLlmCalls returns the value that was added to the "total_llm_calls" field in this mutation.
func (m *AnalysisJobMutation) AddedTotalLlmCalls() (r int, exists bool) {
	v := m.addtotal_llm_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLlmCalls resets all changes to the "total_llm_calls" field.
func (m *AnalysisJobMutation) ResetTotalLlmCalls() {
	m.total_llm_calls = nil
	m.addtotal_llm_calls = nil
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (m *AnalysisJobMutation) SetTotalInputTokens(i int) {
	m.total_input_tokens = &i
	m.addtotal_input_tokens = nil
}

// TotalInputTokens returns the value of the "total_input_tokens" field in the mutation.
func (m *AnalysisJobMutation) TotalInputTokens() (r int, exists bool) {
	v := m.total_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInputTokens returns the old "total_input_tokens" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldTotalInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInputTokens: %w", err)
	}
	return oldValue.TotalInputTokens, nil
}

// AddTotalInputTokens adds i to the "total_input_tokens" field.
func (m *AnalysisJobMutation) AddTotalInputTokens(i int) {
	if m.addtotal_input_tokens != nil {
		*m.addtotal_input_tokens += i
	} else {
		m.addtotal_input_tokens = &i
	}
}

// AddedTotalInputTokens returns the value that was added to the "total_input_tokens" field in this mutation.
func (m *AnalysisJobMutation) AddedTotalInputTokens() (r int, exists bool) {
	v := m.addtotal_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInputTokens resets all changes to the "total_input_tokens" field.
func (m *AnalysisJobMutation) ResetTotalInputTokens() {
	m.total_input_tokens = nil
	m.addtotal_input_tokens = nil
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (m *AnalysisJobMutation) SetTotalOutputTokens(i int) {
	m.total_output_tokens = &i
	m.addtotal_output_tokens = nil
}

// TotalOutputTokens returns the value of the "total_output_tokens" field in the mutation.
func (m *AnalysisJobMutation) TotalOutputTokens() (r int, exists bool) {
	v := m.total_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutputTokens returns the old "total_output_tokens" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldTotalOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutputTokens: %w", err)
	}
	return oldValue.TotalOutputTokens, nil
}

// AddTotalOutputTokens adds i to the "total_output_tokens" field.
func (m *AnalysisJobMutation) AddTotalOutputTokens(i int) {
	if m.addtotal_output_tokens != nil {
		*m.addtotal_output_tokens += i
	} else {
		m.addtotal_output_tokens = &i
	}
}

// AddedTotalOutputTokens returns the value that was added to the "total_output_tokens" field in this mutation.
func (m *AnalysisJobMutation) AddedTotalOutputTokens() (r int, exists bool) {
	v := m.addtotal_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutputTokens resets all changes to the "total_output_tokens" field.
func (m *AnalysisJobMutation) ResetTotalOutputTokens() {
	m.total_output_tokens = nil
	m.addtotal_output_tokens = nil
}

// SetPlanSnapshot sets the "plan_snapshot" field.
func (m *AnalysisJobMutation) SetPlanSnapshot(value map[string]interface{}) {
	m.plan_snapshot = &value
}

// PlanSnapshot returns the value of the "plan_snapshot" field in the mutation.
func (m *AnalysisJobMutation) PlanSnapshot() (r map[string]interface{}, exists bool) {
	v := m.plan_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSnapshot returns the old "plan_snapshot" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPlanSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSnapshot: %w", err)
	}
	return oldValue.PlanSnapshot, nil
}

// ClearPlanSnapshot clears the value of the "plan_snapshot" field.
func (m *AnalysisJobMutation) ClearPlanSnapshot() {
	m.plan_snapshot = nil
	m.clearedFields[analysisjob.FieldPlanSnapshot] = struct{}{}
}

// PlanSnapshotCleared returns if the "plan_snapshot" field was cleared in this mutation.
func (m *AnalysisJobMutation) PlanSnapshotCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldPlanSnapshot]
	return ok
}

// ResetPlanSnapshot resets all changes to the "plan_snapshot" field.
func (m *AnalysisJobMutation) ResetPlanSnapshot() {
	m.plan_snapshot = nil
	delete(m.clearedFields, analysisjob.FieldPlanSnapshot)
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (m *AnalysisJobMutation) SetRequestSnapshot(value map[string]interface{}) {
	m.request_snapshot = &value
}

// RequestSnapshot returns the value of the "request_snapshot" field in the mutation.
func (m *AnalysisJobMutation) RequestSnapshot() (r map[string]interface{}, exists bool) {
	v := m.request_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestSnapshot returns the old "request_snapshot" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldRequestSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestSnapshot: %w", err)
	}
	return oldValue.RequestSnapshot, nil
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (m *AnalysisJobMutation) ClearRequestSnapshot() {
	m.request_snapshot = nil
	m.clearedFields[analysisjob.FieldRequestSnapshot] = struct{}{}
}

// RequestSnapshotCleared returns if the "request_snapshot" field was cleared in this mutation.
func (m *AnalysisJobMutation) RequestSnapshotCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldRequestSnapshot]
	return ok
}

// ResetRequestSnapshot resets all changes to the "request_snapshot" field.
func (m *AnalysisJobMutation) ResetRequestSnapshot() {
	m.request_snapshot = nil
	delete(m.clearedFields, analysisjob.FieldRequestSnapshot)
}

// SetDocumentMap sets the "document_map" field.
func (m *AnalysisJobMutation) SetDocumentMap(value map[string]string) {
	m.document_map = &value
}

// DocumentMap returns the value of the "document_map" field in the mutation.
func (m *AnalysisJobMutation) DocumentMap() (r map[string]string, exists bool) {
	v := m.document_map
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentMap returns the old "document_map" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldDocumentMap(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentMap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentMap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentMap: %w", err)
	}
	return oldValue.DocumentMap, nil
}

// ClearDocumentMap clears the value of the "document_map" field.
func (m *AnalysisJobMutation) ClearDocumentMap() {
	m.document_map = nil
	m.clearedFields[analysisjob.FieldDocumentMap] = struct{}{}
}

// DocumentMapCleared returns if the "document_map" field was cleared in this mutation.
func (m *AnalysisJobMutation) DocumentMapCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldDocumentMap]
	return ok
}

// ResetDocumentMap resets all changes to the "document_map" field.
func (m *AnalysisJobMutation) ResetDocumentMap() {
	m.document_map = nil
	delete(m.clearedFields, analysisjob.FieldDocumentMap)
}

// SetCancelToken sets the "cancel_token" field.
func (m *AnalysisJobMutation) SetCancelToken(s string) {
	m.cancel_token = &s
}

// CancelToken returns the value of the "cancel_token" field in the mutation.
func (m *AnalysisJobMutation) CancelToken() (r string, exists bool) {
	v := m.cancel_token
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelToken returns the old "cancel_token" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCancelToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelToken: %w", err)
	}
	return oldValue.CancelToken, nil
}

// ResetCancelToken resets all changes to the "cancel_token" field.
func (m *AnalysisJobMutation) ResetCancelToken() {
	m.cancel_token = nil
}

// SetWorkflowKey sets the "workflow_key" field.
func (m *AnalysisJobMutation) SetWorkflowKey(s string) {
	m.workflow_key = &s
}

// WorkflowKey returns the value of the "workflow_key" field in the mutation.
func (m *AnalysisJobMutation) WorkflowKey() (r string, exists bool) {
	v := m.workflow_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowKey returns the old "workflow_key" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldWorkflowKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowKey: %w", err)
	}
	return oldValue.WorkflowKey, nil
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (m *AnalysisJobMutation) ClearWorkflowKey() {
	m.workflow_key = nil
	m.clearedFields[analysisjob.FieldWorkflowKey] = struct{}{}
}

// WorkflowKeyCleared returns if the "workflow_key" field was cleared in this mutation.
func (m *AnalysisJobMutation) WorkflowKeyCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldWorkflowKey]
	return ok
}

// ResetWorkflowKey resets all changes to the "workflow_key" field.
func (m *AnalysisJobMutation) ResetWorkflowKey() {
	m.workflow_key = nil
	delete(m.clearedFields, analysisjob.FieldWorkflowKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AnalysisJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysisjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysisjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisjob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *AnalysisJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AnalysisJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AnalysisJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[analysisjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AnalysisJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, analysisjob.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *AnalysisJobMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *AnalysisJobMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *AnalysisJobMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[analysisjob.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *AnalysisJobMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, analysisjob.FieldLastInteractionAt)
}

// AddOutputIDs adds the "outputs" edge to the PhaseOutput entity by ids.
func (m *AnalysisJobMutation) AddOutputIDs(ids ...string) {
	if m.outputs == nil {
		m.outputs = make(map[string]struct{})
	}
	for i := range ids {
		m.outputs[ids[i]] = struct{}{}
	}
}

// ClearOutputs clears the "outputs" edge to the PhaseOutput entity.
func (m *AnalysisJobMutation) ClearOutputs() {
	m.clearedoutputs = true
}

// OutputsCleared reports if the "outputs" edge to the PhaseOutput entity was cleared.
func (m *AnalysisJobMutation) OutputsCleared() bool {
	return m.clearedoutputs
}

// RemoveOutputIDs removes the "outputs" edge to the PhaseOutput entity by IDs.
func (m *AnalysisJobMutation) RemoveOutputIDs(ids ...string) {
	if m.removedoutputs == nil {
		m.removedoutputs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outputs, ids[i])
		m.removedoutputs[ids[i]] = struct{}{}
	}
}

// RemovedOutputs returns the removed IDs of the "outputs" edge to the PhaseOutput entity.
func (m *AnalysisJobMutation) RemovedOutputsIDs() (ids []string) {
	for id := range m.removedoutputs {
		ids = append(ids, id)
	}
	return
}

// OutputsIDs returns the "outputs" edge IDs in the mutation.
func (m *AnalysisJobMutation) OutputsIDs() (ids []string) {
	for id := range m.outputs {
		ids = append(ids, id)
	}
	return
}

// ResetOutputs resets all changes to the "outputs" edge.
func (m *AnalysisJobMutation) ResetOutputs() {
	m.outputs = nil
	m.clearedoutputs = false
	m.removedoutputs = nil
}

// SetViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by id.
func (m *AnalysisJobMutation) SetViewRefinementID(id string) {
	m.view_refinement = &id
}

// ClearViewRefinement clears the "view_refinement" edge to the ViewRefinement entity.
func (m *AnalysisJobMutation) ClearViewRefinement() {
	m.clearedview_refinement = true
}

// ViewRefinementCleared reports if the "view_refinement" edge to the ViewRefinement entity was cleared.
func (m *AnalysisJobMutation) ViewRefinementCleared() bool {
	return m.clearedview_refinement
}

// ViewRefinementID returns the "view_refinement" edge ID in the mutation.
func (m *AnalysisJobMutation) ViewRefinementID() (id string, exists bool) {
	if m.view_refinement != nil {
		return *m.view_refinement, true
	}
	return
}

// ViewRefinementIDs returns the "view_refinement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ViewRefinementID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) ViewRefinementIDs() (ids []string) {
	if id := m.view_refinement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetViewRefinement resets all changes to the "view_refinement" edge.
func (m *AnalysisJobMutation) ResetViewRefinement() {
	m.view_refinement = nil
	m.clearedview_refinement = false
}

// AddPolishIDs adds the "polishes" edge to the PolishCache entity by ids.
func (m *AnalysisJobMutation) AddPolishIDs(ids ...string) {
	if m.polishes == nil {
		m.polishes = make(map[string]struct{})
	}
	for i := range ids {
		m.polishes[ids[i]] = struct{}{}
	}
}

// ClearPolishes clears the "polishes" edge to the PolishCache entity.
func (m *AnalysisJobMutation) ClearPolishes() {
	m.clearedpolishes = true
}

// PolishesCleared reports if the "polishes" edge to the PolishCache entity was cleared.
func (m *AnalysisJobMutation) PolishesCleared() bool {
	return m.clearedpolishes
}

// RemovePolishIDs removes the "polishes" edge to the PolishCache entity by IDs.
func (m *AnalysisJobMutation) RemovePolishIDs(ids ...string) {
	if m.removedpolishes == nil {
		m.removedpolishes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.polishes, ids[i])
		m.removedpolishes[ids[i]] = struct{}{}
	}
}

// RemovedPolishes returns the removed IDs of the "polishes" edge to the PolishCache entity.
func (m *AnalysisJobMutation) RemovedPolishesIDs() (ids []string) {
	for id := range m.removedpolishes {
		ids = append(ids, id)
	}
	return
}

// PolishesIDs returns the "polishes" edge IDs in the mutation.
func (m *AnalysisJobMutation) PolishesIDs() (ids []string) {
	for id := range m.polishes {
		ids = append(ids, id)
	}
	return
}

// ResetPolishes resets all changes to the "polishes" edge.
func (m *AnalysisJobMutation) ResetPolishes() {
	m.polishes = nil
	m.clearedpolishes = false
	m.removedpolishes = nil
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.plan_id != nil {
		fields = append(fields, analysisjob.FieldPlanID)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, analysisjob.FieldCurrentPhase)
	}
	if m.current_phase_name != nil {
		fields = append(fields, analysisjob.FieldCurrentPhaseName)
	}
	if m.progress_detail != nil {
		fields = append(fields, analysisjob.FieldProgressDetail)
	}
	if m.completed_phases != nil {
		fields = append(fields, analysisjob.FieldCompletedPhases)
	}
	if m.phase_results != nil {
		fields = append(fields, analysisjob.FieldPhaseResults)
	}
	if m.total_llm_calls != nil {
		fields = append(fields, analysisjob.FieldTotalLlmCalls)
	}
	if m.total_input_tokens != nil {
		fields = append(fields, analysisjob.FieldTotalInputTokens)
	}
	if m.total_output_tokens != nil {
		fields = append(fields, analysisjob.FieldTotalOutputTokens)
	}
	if m.plan_snapshot != nil {
		fields = append(fields, analysisjob.FieldPlanSnapshot)
	}
	if m.request_snapshot != nil {
		fields = append(fields, analysisjob.FieldRequestSnapshot)
	}
	if m.document_map != nil {
		fields = append(fields, analysisjob.FieldDocumentMap)
	}
	if m.cancel_token != nil {
		fields = append(fields, analysisjob.FieldCancelToken)
	}
	if m.workflow_key != nil {
		fields = append(fields, analysisjob.FieldWorkflowKey)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, analysisjob.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldPlanID:
		return m.PlanID()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldCurrentPhase:
		return m.CurrentPhase()
	case analysisjob.FieldCurrentPhaseName:
		return m.CurrentPhaseName()
	case analysisjob.FieldProgressDetail:
		return m.ProgressDetail()
	case analysisjob.FieldCompletedPhases:
		return m.CompletedPhases()
	case analysisjob.FieldPhaseResults:
		return m.PhaseResults()
	case analysisjob.FieldTotalLlmCalls:
		return m.TotalLlmCalls()
	case analysisjob.FieldTotalInputTokens:
		return m.TotalInputTokens()
	case analysisjob.FieldTotalOutputTokens:
		return m.TotalOutputTokens()
	case analysisjob.FieldPlanSnapshot:
		return m.PlanSnapshot()
	case analysisjob.FieldRequestSnapshot:
		return m.RequestSnapshot()
	case analysisjob.FieldDocumentMap:
		return m.DocumentMap()
	case analysisjob.FieldCancelToken:
		return m.CancelToken()
	case analysisjob.FieldWorkflowKey:
		return m.WorkflowKey()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldStartedAt:
		return m.StartedAt()
	case analysisjob.FieldCompletedAt:
		return m.CompletedAt()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldPodID:
		return m.PodID()
	case analysisjob.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldPlanID:
		return m.OldPlanID(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case analysisjob.FieldCurrentPhaseName:
		return m.OldCurrentPhaseName(ctx)
	case analysisjob.FieldProgressDetail:
		return m.OldProgressDetail(ctx)
	case analysisjob.FieldCompletedPhases:
		return m.OldCompletedPhases(ctx)
	case analysisjob.FieldPhaseResults:
		return m.OldPhaseResults(ctx)
	case analysisjob.FieldTotalLlmCalls:
		return m.OldTotalLlmCalls(ctx)
	case analysisjob.FieldTotalInputTokens:
		return m.OldTotalInputTokens(ctx)
	case analysisjob.FieldTotalOutputTokens:
		return m.OldTotalOutputTokens(ctx)
	case analysisjob.FieldPlanSnapshot:
		return m.OldPlanSnapshot(ctx)
	case analysisjob.FieldRequestSnapshot:
		return m.OldRequestSnapshot(ctx)
	case analysisjob.FieldDocumentMap:
		return m.OldDocumentMap(ctx)
	case analysisjob.FieldCancelToken:
		return m.OldCancelToken(ctx)
	case analysisjob.FieldWorkflowKey:
		return m.OldWorkflowKey(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldPodID:
		return m.OldPodID(ctx)
	case analysisjob.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(analysisjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldCurrentPhase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case analysisjob.FieldCurrentPhaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhaseName(v)
		return nil
	case analysisjob.FieldProgressDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressDetail(v)
		return nil
	case analysisjob.FieldCompletedPhases:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedPhases(v)
		return nil
	case analysisjob.FieldPhaseResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseResults(v)
		return nil
	case analysisjob.FieldTotalLlmCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLlmCalls(v)
		return nil
	case analysisjob.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInputTokens(v)
		return nil
	case analysisjob.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutputTokens(v)
		return nil
	case analysisjob.FieldPlanSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSnapshot(v)
		return nil
	case analysisjob.FieldRequestSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestSnapshot(v)
		return nil
	case analysisjob.FieldDocumentMap:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentMap(v)
		return nil
	case analysisjob.FieldCancelToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelToken(v)
		return nil
	case analysisjob.FieldWorkflowKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowKey(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case analysisjob.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_phase != nil {
		fields = append(fields, analysisjob.FieldCurrentPhase)
	}
	if m.addtotal_llm_calls != nil {
		fields = append(fields, analysisjob.FieldTotalLlmCalls)
	}
	if m.addtotal_input_tokens != nil {
		fields = append(fields, analysisjob.FieldTotalInputTokens)
	}
	if m.addtotal_output_tokens != nil {
		fields = append(fields, analysisjob.FieldTotalOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldCurrentPhase:
		return m.AddedCurrentPhase()
	case analysisjob.FieldTotalLlmCalls:
		return m.AddedTotalLlmCalls()
	case analysisjob.FieldTotalInputTokens:
		return m.AddedTotalInputTokens()
	case analysisjob.FieldTotalOutputTokens:
		return m.AddedTotalOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldCurrentPhase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPhase(v)
		return nil
	case analysisjob.FieldTotalLlmCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLlmCalls(v)
		return nil
	case analysisjob.FieldTotalInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInputTokens(v)
		return nil
	case analysisjob.FieldTotalOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldCurrentPhase) {
		fields = append(fields, analysisjob.FieldCurrentPhase)
	}
	if m.FieldCleared(analysisjob.FieldCurrentPhaseName) {
		fields = append(fields, analysisjob.FieldCurrentPhaseName)
	}
	if m.FieldCleared(analysisjob.FieldProgressDetail) {
		fields = append(fields, analysisjob.FieldProgressDetail)
	}
	if m.FieldCleared(analysisjob.FieldCompletedPhases) {
		fields = append(fields, analysisjob.FieldCompletedPhases)
	}
	if m.FieldCleared(analysisjob.FieldPhaseResults) {
		fields = append(fields, analysisjob.FieldPhaseResults)
	}
	if m.FieldCleared(analysisjob.FieldPlanSnapshot) {
		fields = append(fields, analysisjob.FieldPlanSnapshot)
	}
	if m.FieldCleared(analysisjob.FieldRequestSnapshot) {
		fields = append(fields, analysisjob.FieldRequestSnapshot)
	}
	if m.FieldCleared(analysisjob.FieldDocumentMap) {
		fields = append(fields, analysisjob.FieldDocumentMap)
	}
	if m.FieldCleared(analysisjob.FieldWorkflowKey) {
		fields = append(fields, analysisjob.FieldWorkflowKey)
	}
	if m.FieldCleared(analysisjob.FieldStartedAt) {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.FieldCleared(analysisjob.FieldCompletedAt) {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldPodID) {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.FieldCleared(analysisjob.FieldLastInteractionAt) {
		fields = append(fields, analysisjob.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case analysisjob.FieldCurrentPhaseName:
		m.ClearCurrentPhaseName()
		return nil
	case analysisjob.FieldProgressDetail:
		m.ClearProgressDetail()
		return nil
	case analysisjob.FieldCompletedPhases:
		m.ClearCompletedPhases()
		return nil
	case analysisjob.FieldPhaseResults:
		m.ClearPhaseResults()
		return nil
	case analysisjob.FieldPlanSnapshot:
		m.ClearPlanSnapshot()
		return nil
	case analysisjob.FieldRequestSnapshot:
		m.ClearRequestSnapshot()
		return nil
	case analysisjob.FieldDocumentMap:
		m.ClearDocumentMap()
		return nil
	case analysisjob.FieldWorkflowKey:
		m.ClearWorkflowKey()
		return nil
	case analysisjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldPodID:
		m.ClearPodID()
		return nil
	case analysisjob.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldPlanID:
		m.ResetPlanID()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case analysisjob.FieldCurrentPhaseName:
		m.ResetCurrentPhaseName()
		return nil
	case analysisjob.FieldProgressDetail:
		m.ResetProgressDetail()
		return nil
	case analysisjob.FieldCompletedPhases:
		m.ResetCompletedPhases()
		return nil
	case analysisjob.FieldPhaseResults:
		m.ResetPhaseResults()
		return nil
	case analysisjob.FieldTotalLlmCalls:
		m.ResetTotalLlmCalls()
		return nil
	case analysisjob.FieldTotalInputTokens:
		m.ResetTotalInputTokens()
		return nil
	case analysisjob.FieldTotalOutputTokens:
		m.ResetTotalOutputTokens()
		return nil
	case analysisjob.FieldPlanSnapshot:
		m.ResetPlanSnapshot()
		return nil
	case analysisjob.FieldRequestSnapshot:
		m.ResetRequestSnapshot()
		return nil
	case analysisjob.FieldDocumentMap:
		m.ResetDocumentMap()
		return nil
	case analysisjob.FieldCancelToken:
		m.ResetCancelToken()
		return nil
	case analysisjob.FieldWorkflowKey:
		m.ResetWorkflowKey()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldPodID:
		m.ResetPodID()
		return nil
	case analysisjob.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.outputs != nil {
		edges = append(edges, analysisjob.EdgeOutputs)
	}
	if m.view_refinement != nil {
		edges = append(edges, analysisjob.EdgeViewRefinement)
	}
	if m.polishes != nil {
		edges = append(edges, analysisjob.EdgePolishes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.outputs))
		for id := range m.outputs {
			ids = append(ids, id)
		}
		return ids
	case analysisjob.EdgeViewRefinement:
		if id := m.view_refinement; id != nil {
			return []ent.Value{*id}
		}
	case analysisjob.EdgePolishes:
		ids := make([]ent.Value, 0, len(m.polishes))
		for id := range m.polishes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedoutputs != nil {
		edges = append(edges, analysisjob.EdgeOutputs)
	}
	if m.removedpolishes != nil {
		edges = append(edges, analysisjob.EdgePolishes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.removedoutputs))
		for id := range m.removedoutputs {
			ids = append(ids, id)
		}
		return ids
	case analysisjob.EdgePolishes:
		ids := make([]ent.Value, 0, len(m.removedpolishes))
		for id := range m.removedpolishes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedoutputs {
		edges = append(edges, analysisjob.EdgeOutputs)
	}
	if m.clearedview_refinement {
		edges = append(edges, analysisjob.EdgeViewRefinement)
	}
	if m.clearedpolishes {
		edges = append(edges, analysisjob.EdgePolishes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisjob.EdgeOutputs:
		return m.clearedoutputs
	case analysisjob.EdgeViewRefinement:
		return m.clearedview_refinement
	case analysisjob.EdgePolishes:
		return m.clearedpolishes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	switch name {
	case analysisjob.EdgeViewRefinement:
		m.ClearViewRefinement()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	switch name {
	case analysisjob.EdgeOutputs:
		m.ResetOutputs()
		return nil
	case analysisjob.EdgeViewRefinement:
		m.ResetViewRefinement()
		return nil
	case analysisjob.EdgePolishes:
		m.ResetPolishes()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	author        *string
	role          *document.Role
	content       *string
	char_count    *int
	addchar_count *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetAuthor sets the "author" field.
func (m *DocumentMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *DocumentMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *DocumentMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[document.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *DocumentMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[document.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *DocumentMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, document.FieldAuthor)
}

// SetRole sets the "role" field.
func (m *DocumentMutation) SetRole(d document.Role) {
	m.role = &d
}

// Role returns the value of the "role" field in the mutation.
func (m *DocumentMutation) Role() (r document.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRole(ctx context.Context) (v document.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *DocumentMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *DocumentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentMutation) ResetContent() {
	m.content = nil
}

// SetCharCount sets the "char_count" field.
func (m *DocumentMutation) SetCharCount(i int) {
	m.char_count = &i
	m.addchar_count = nil
}

// CharCount returns the value of the "char_count" field in the mutation.
func (m *DocumentMutation) CharCount() (r int, exists bool) {
	v := m.char_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCharCount returns the old "char_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCharCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharCount: %w", err)
	}
	return oldValue.CharCount, nil
}

// AddCharCount adds i to the "char_count" field.
func (m *DocumentMutation) AddCharCount(i int) {
	if m.addchar_count != nil {
		*m.addchar_count += i
	} else {
		m.addchar_count = &i
	}
}

// AddedCharCount returns the value that was added to the "char_count" field in this mutation.
func (m *DocumentMutation) AddedCharCount() (r int, exists bool) {
	v := m.addchar_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharCount resets all changes to the "char_count" field.
func (m *DocumentMutation) ResetCharCount() {
	m.char_count = nil
	m.addchar_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.author != nil {
		fields = append(fields, document.FieldAuthor)
	}
	if m.role != nil {
		fields = append(fields, document.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, document.FieldContent)
	}
	if m.char_count != nil {
		fields = append(fields, document.FieldCharCount)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTitle:
		return m.Title()
	case document.FieldAuthor:
		return m.Author()
	case document.FieldRole:
		return m.Role()
	case document.FieldContent:
		return m.Content()
	case document.FieldCharCount:
		return m.CharCount()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldAuthor:
		return m.OldAuthor(ctx)
	case document.FieldRole:
		return m.OldRole(ctx)
	case document.FieldContent:
		return m.OldContent(ctx)
	case document.FieldCharCount:
		return m.OldCharCount(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case document.FieldRole:
		v, ok := value.(document.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case document.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case document.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharCount(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addchar_count != nil {
		fields = append(fields, document.FieldCharCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCharCount:
		return m.AddedCharCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldAuthor) {
		fields = append(fields, document.FieldAuthor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldAuthor:
		m.ResetAuthor()
		return nil
	case document.FieldRole:
		m.ResetRole()
		return nil
	case document.FieldContent:
		m.ResetContent()
		return nil
	case document.FieldCharCount:
		m.ResetCharCount()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}

// PhaseOutputMutation represents an operation that mutates the PhaseOutput nodes in the graph.
type PhaseOutputMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	phase_number         *float64
	addphase_number      *float64
	engine_key           *string
	pass_number          *int
	addpass_number       *int
	work_key             *string
	stance_key           *string
	role                 *string
	content              *string
	model_used           *string
	input_tokens         *int
	addinput_tokens      *int
	output_tokens        *int
	addoutput_tokens     *int
	parent_id            *string
	metadata             *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	cache_entries        map[string]struct{}
	removedcache_entries map[string]struct{}
	clearedcache_entries bool
	done                 bool
	oldValue             func(context.Context) (*PhaseOutput, error)
	predicates           []predicate.PhaseOutput
}

var _ ent.Mutation = (*PhaseOutputMutation)(nil)

// phaseoutputOption allows management of the mutation configuration using functional options.
type phaseoutputOption func(*PhaseOutputMutation)

// newPhaseOutputMutation creates new mutation for the PhaseOutput entity.
func newPhaseOutputMutation(c config, op Op, opts ...phaseoutputOption) *PhaseOutputMutation {
	m := &PhaseOutputMutation{
		config:        c,
		op:            op,
		typ:           TypePhaseOutput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhaseOutputID sets the ID field of the mutation.
func withPhaseOutputID(id string) phaseoutputOption {
	return func(m *PhaseOutputMutation) {
		var (
			err   error
			once  sync.Once
			value *PhaseOutput
		)
		m.oldValue = func(ctx context.Context) (*PhaseOutput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhaseOutput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhaseOutput sets the old PhaseOutput of the mutation.
func withPhaseOutput(node *PhaseOutput) phaseoutputOption {
	return func(m *PhaseOutputMutation) {
		m.oldValue = func(context.Context) (*PhaseOutput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhaseOutputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhaseOutputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhaseOutput entities.
func (m *PhaseOutputMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhaseOutputMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhaseOutputMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhaseOutput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *PhaseOutputMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PhaseOutputMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PhaseOutputMutation) ResetJobID() {
	m.job = nil
}

// SetPhaseNumber sets the "phase_number" field.
func (m *PhaseOutputMutation) SetPhaseNumber(f float64) {
	m.phase_number = &f
	m.addphase_number = nil
}

// PhaseNumber returns the value of the "phase_number" field in the mutation.
func (m *PhaseOutputMutation) PhaseNumber() (r float64, exists bool) {
	v := m.phase_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseNumber returns the old "phase_number" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldPhaseNumber(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseNumber: %w", err)
	}
	return oldValue.PhaseNumber, nil
}

// AddPhaseNumber adds f to the "phase_number" field.
func (m *PhaseOutputMutation) AddPhaseNumber(f float64) {
	if m.addphase_number != nil {
		*m.addphase_number += f
	} else {
		m.addphase_number = &f
	}
}

// AddedPhaseNumber returns the value that was added to the "phase_number" field in this mutation.
func (m *PhaseOutputMutation) AddedPhaseNumber() (r float64, exists bool) {
	v := m.addphase_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseNumber resets all changes to the "phase_number" field.
func (m *PhaseOutputMutation) ResetPhaseNumber() {
	m.phase_number = nil
	m.addphase_number = nil
}

// SetEngineKey sets the "engine_key" field.
func (m *PhaseOutputMutation) SetEngineKey(s string) {
	m.engine_key = &s
}

// EngineKey returns the value of the "engine_key" field in the mutation.
func (m *PhaseOutputMutation) EngineKey() (r string, exists bool) {
	v := m.engine_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineKey returns the old "engine_key" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldEngineKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineKey: %w", err)
	}
	return oldValue.EngineKey, nil
}

// ResetEngineKey resets all changes to the "engine_key" field.
func (m *PhaseOutputMutation) ResetEngineKey() {
	m.engine_key = nil
}

// SetPassNumber sets the "pass_number" field.
func (m *PhaseOutputMutation) SetPassNumber(i int) {
	m.pass_number = &i
	m.addpass_number = nil
}

// PassNumber returns the value of the "pass_number" field in the mutation.
func (m *PhaseOutputMutation) PassNumber() (r int, exists bool) {
	v := m.pass_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPassNumber returns the old "pass_number" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldPassNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassNumber: %w", err)
	}
	return oldValue.PassNumber, nil
}

// AddPassNumber adds i to the "pass_number" field.
func (m *PhaseOutputMutation) AddPassNumber(i int) {
	if m.addpass_number != nil {
		*m.addpass_number += i
	} else {
		m.addpass_number = &i
	}
}

// AddedPassNumber returns the value that was added to the "pass_number" field in this mutation.
func (m *PhaseOutputMutation) AddedPassNumber() (r int, exists bool) {
	v := m.addpass_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassNumber resets all changes to the "pass_number" field.
func (m *PhaseOutputMutation) ResetPassNumber() {
	m.pass_number = nil
	m.addpass_number = nil
}

// SetWorkKey sets the "work_key" field.
func (m *PhaseOutputMutation) SetWorkKey(s string) {
	m.work_key = &s
}

// WorkKey returns the value of the "work_key" field in the mutation.
func (m *PhaseOutputMutation) WorkKey() (r string, exists bool) {
	v := m.work_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkKey returns the old "work_key" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldWorkKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkKey: %w", err)
	}
	return oldValue.WorkKey, nil
}

// ResetWorkKey resets all changes to the "work_key" field.
func (m *PhaseOutputMutation) ResetWorkKey() {
	m.work_key = nil
}

// SetStanceKey sets the "stance_key" field.
func (m *PhaseOutputMutation) SetStanceKey(s string) {
	m.stance_key = &s
}

// StanceKey returns the value of the "stance_key" field in the mutation.
func (m *PhaseOutputMutation) StanceKey() (r string, exists bool) {
	v := m.stance_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStanceKey returns the old "stance_key" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldStanceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStanceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStanceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStanceKey: %w", err)
	}
	return oldValue.StanceKey, nil
}

// ClearStanceKey clears the value of the "stance_key" field.
func (m *PhaseOutputMutation) ClearStanceKey() {
	m.stance_key = nil
	m.clearedFields[phaseoutput.FieldStanceKey] = struct{}{}
}

// StanceKeyCleared returns if the "stance_key" field was cleared in this mutation.
func (m *PhaseOutputMutation) StanceKeyCleared() bool {
	_, ok := m.clearedFields[phaseoutput.FieldStanceKey]
	return ok
}

// ResetStanceKey resets all changes to the "stance_key" field.
func (m *PhaseOutputMutation) ResetStanceKey() {
	m.stance_key = nil
	delete(m.clearedFields, phaseoutput.FieldStanceKey)
}

// SetRole sets the "role" field.
func (m *PhaseOutputMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *PhaseOutputMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *PhaseOutputMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *PhaseOutputMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PhaseOutputMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PhaseOutputMutation) ResetContent() {
	m.content = nil
}

// SetModelUsed sets the "model_used" field.
func (m *PhaseOutputMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *PhaseOutputMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *PhaseOutputMutation) ResetModelUsed() {
	m.model_used = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *PhaseOutputMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *PhaseOutputMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *PhaseOutputMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *PhaseOutputMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *PhaseOutputMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *PhaseOutputMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *PhaseOutputMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *PhaseOutputMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *PhaseOutputMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *PhaseOutputMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetParentID sets the "parent_id" field.
func (m *PhaseOutputMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *PhaseOutputMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *PhaseOutputMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[phaseoutput.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *PhaseOutputMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[phaseoutput.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *PhaseOutputMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, phaseoutput.FieldParentID)
}

// SetMetadata sets the "metadata" field.
func (m *PhaseOutputMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PhaseOutputMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PhaseOutputMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[phaseoutput.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PhaseOutputMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[phaseoutput.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PhaseOutputMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, phaseoutput.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *PhaseOutputMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhaseOutputMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhaseOutput entity.
// If the PhaseOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseOutputMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhaseOutputMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the AnalysisJob entity.
func (m *PhaseOutputMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[phaseoutput.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the AnalysisJob entity was cleared.
func (m *PhaseOutputMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *PhaseOutputMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *PhaseOutputMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddCacheEntryIDs adds the "cache_entries" edge to the PresentationCache entity by ids.
func (m *PhaseOutputMutation) AddCacheEntryIDs(ids ...string) {
	if m.cache_entries == nil {
		m.cache_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.cache_entries[ids[i]] = struct{}{}
	}
}

// ClearCacheEntries clears the "cache_entries" edge to the PresentationCache entity.
func (m *PhaseOutputMutation) ClearCacheEntries() {
	m.clearedcache_entries = true
}

// CacheEntriesCleared reports if the "cache_entries" edge to the PresentationCache entity was cleared.
func (m *PhaseOutputMutation) CacheEntriesCleared() bool {
	return m.clearedcache_entries
}

// RemoveCacheEntryIDs removes the "cache_entries" edge to the PresentationCache entity by IDs.
func (m *PhaseOutputMutation) RemoveCacheEntryIDs(ids ...string) {
	if m.removedcache_entries == nil {
		m.removedcache_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cache_entries, ids[i])
		m.removedcache_entries[ids[i]] = struct{}{}
	}
}

// RemovedCacheEntries returns the removed IDs of the "cache_entries" edge to the PresentationCache entity.
func (m *PhaseOutputMutation) RemovedCacheEntriesIDs() (ids []string) {
	for id := range m.removedcache_entries {
		ids = append(ids, id)
	}
	return
}

// CacheEntriesIDs returns the "cache_entries" edge IDs in the mutation.
func (m *PhaseOutputMutation) CacheEntriesIDs() (ids []string) {
	for id := range m.cache_entries {
		ids = append(ids, id)
	}
	return
}

// ResetCacheEntries resets all changes to the "cache_entries" edge.
func (m *PhaseOutputMutation) ResetCacheEntries() {
	m.cache_entries = nil
	m.clearedcache_entries = false
	m.removedcache_entries = nil
}

// Where appends a list predicates to the PhaseOutputMutation builder.
func (m *PhaseOutputMutation) Where(ps ...predicate.PhaseOutput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhaseOutputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhaseOutputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhaseOutput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhaseOutputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhaseOutputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhaseOutput).
func (m *PhaseOutputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhaseOutputMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.job != nil {
		fields = append(fields, phaseoutput.FieldJobID)
	}
	if m.phase_number != nil {
		fields = append(fields, phaseoutput.FieldPhaseNumber)
	}
	if m.engine_key != nil {
		fields = append(fields, phaseoutput.FieldEngineKey)
	}
	if m.pass_number != nil {
		fields = append(fields, phaseoutput.FieldPassNumber)
	}
	if m.work_key != nil {
		fields = append(fields, phaseoutput.FieldWorkKey)
	}
	if m.stance_key != nil {
		fields = append(fields, phaseoutput.FieldStanceKey)
	}
	if m.role != nil {
		fields = append(fields, phaseoutput.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, phaseoutput.FieldContent)
	}
	if m.model_used != nil {
		fields = append(fields, phaseoutput.FieldModelUsed)
	}
	if m.input_tokens != nil {
		fields = append(fields, phaseoutput.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, phaseoutput.FieldOutputTokens)
	}
	if m.parent_id != nil {
		fields = append(fields, phaseoutput.FieldParentID)
	}
	if m.metadata != nil {
		fields = append(fields, phaseoutput.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, phaseoutput.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhaseOutputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phaseoutput.FieldJobID:
		return m.JobID()
	case phaseoutput.FieldPhaseNumber:
		return m.PhaseNumber()
	case phaseoutput.FieldEngineKey:
		return m.EngineKey()
	case phaseoutput.FieldPassNumber:
		return m.PassNumber()
	case phaseoutput.FieldWorkKey:
		return m.WorkKey()
	case phaseoutput.FieldStanceKey:
		return m.StanceKey()
	case phaseoutput.FieldRole:
		return m.Role()
	case phaseoutput.FieldContent:
		return m.Content()
	case phaseoutput.FieldModelUsed:
		return m.ModelUsed()
	case phaseoutput.FieldInputTokens:
		return m.InputTokens()
	case phaseoutput.FieldOutputTokens:
		return m.OutputTokens()
	case phaseoutput.FieldParentID:
		return m.ParentID()
	case phaseoutput.FieldMetadata:
		return m.Metadata()
	case phaseoutput.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhaseOutputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phaseoutput.FieldJobID:
		return m.OldJobID(ctx)
	case phaseoutput.FieldPhaseNumber:
		return m.OldPhaseNumber(ctx)
	case phaseoutput.FieldEngineKey:
		return m.OldEngineKey(ctx)
	case phaseoutput.FieldPassNumber:
		return m.OldPassNumber(ctx)
	case phaseoutput.FieldWorkKey:
		return m.OldWorkKey(ctx)
	case phaseoutput.FieldStanceKey:
		return m.OldStanceKey(ctx)
	case phaseoutput.FieldRole:
		return m.OldRole(ctx)
	case phaseoutput.FieldContent:
		return m.OldContent(ctx)
	case phaseoutput.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case phaseoutput.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case phaseoutput.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case phaseoutput.FieldParentID:
		return m.OldParentID(ctx)
	case phaseoutput.FieldMetadata:
		return m.OldMetadata(ctx)
	case phaseoutput.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhaseOutput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseOutputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phaseoutput.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case phaseoutput.FieldPhaseNumber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseNumber(v)
		return nil
	case phaseoutput.FieldEngineKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineKey(v)
		return nil
	case phaseoutput.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassNumber(v)
		return nil
	case phaseoutput.FieldWorkKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkKey(v)
		return nil
	case phaseoutput.FieldStanceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStanceKey(v)
		return nil
	case phaseoutput.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case phaseoutput.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case phaseoutput.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case phaseoutput.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case phaseoutput.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case phaseoutput.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case phaseoutput.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case phaseoutput.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhaseOutputMutation) AddedFields() []string {
	var fields []string
	if m.addphase_number != nil {
		fields = append(fields, phaseoutput.FieldPhaseNumber)
	}
	if m.addpass_number != nil {
		fields = append(fields, phaseoutput.FieldPassNumber)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, phaseoutput.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, phaseoutput.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhaseOutputMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case phaseoutput.FieldPhaseNumber:
		return m.AddedPhaseNumber()
	case phaseoutput.FieldPassNumber:
		return m.AddedPassNumber()
	case phaseoutput.FieldInputTokens:
		return m.AddedInputTokens()
	case phaseoutput.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseOutputMutation) AddField(name string, value ent.Value) error {
	switch name {
	case phaseoutput.FieldPhaseNumber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseNumber(v)
		return nil
	case phaseoutput.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassNumber(v)
		return nil
	case phaseoutput.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case phaseoutput.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhaseOutputMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phaseoutput.FieldStanceKey) {
		fields = append(fields, phaseoutput.FieldStanceKey)
	}
	if m.FieldCleared(phaseoutput.FieldParentID) {
		fields = append(fields, phaseoutput.FieldParentID)
	}
	if m.FieldCleared(phaseoutput.FieldMetadata) {
		fields = append(fields, phaseoutput.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhaseOutputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhaseOutputMutation) ClearField(name string) error {
	switch name {
	case phaseoutput.FieldStanceKey:
		m.ClearStanceKey()
		return nil
	case phaseoutput.FieldParentID:
		m.ClearParentID()
		return nil
	case phaseoutput.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhaseOutputMutation) ResetField(name string) error {
	switch name {
	case phaseoutput.FieldJobID:
		m.ResetJobID()
		return nil
	case phaseoutput.FieldPhaseNumber:
		m.ResetPhaseNumber()
		return nil
	case phaseoutput.FieldEngineKey:
		m.ResetEngineKey()
		return nil
	case phaseoutput.FieldPassNumber:
		m.ResetPassNumber()
		return nil
	case phaseoutput.FieldWorkKey:
		m.ResetWorkKey()
		return nil
	case phaseoutput.FieldStanceKey:
		m.ResetStanceKey()
		return nil
	case phaseoutput.FieldRole:
		m.ResetRole()
		return nil
	case phaseoutput.FieldContent:
		m.ResetContent()
		return nil
	case phaseoutput.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case phaseoutput.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case phaseoutput.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case phaseoutput.FieldParentID:
		m.ResetParentID()
		return nil
	case phaseoutput.FieldMetadata:
		m.ResetMetadata()
		return nil
	case phaseoutput.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhaseOutputMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, phaseoutput.EdgeJob)
	}
	if m.cache_entries != nil {
		edges = append(edges, phaseoutput.EdgeCacheEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhaseOutputMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case phaseoutput.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case phaseoutput.EdgeCacheEntries:
		ids := make([]ent.Value, 0, len(m.cache_entries))
		for id := range m.cache_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhaseOutputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcache_entries != nil {
		edges = append(edges, phaseoutput.EdgeCacheEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhaseOutputMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case phaseoutput.EdgeCacheEntries:
		ids := make([]ent.Value, 0, len(m.removedcache_entries))
		for id := range m.removedcache_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhaseOutputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, phaseoutput.EdgeJob)
	}
	if m.clearedcache_entries {
		edges = append(edges, phaseoutput.EdgeCacheEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhaseOutputMutation) EdgeCleared(name string) bool {
	switch name {
	case phaseoutput.EdgeJob:
		return m.clearedjob
	case phaseoutput.EdgeCacheEntries:
		return m.clearedcache_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhaseOutputMutation) ClearEdge(name string) error {
	switch name {
	case phaseoutput.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhaseOutputMutation) ResetEdge(name string) error {
	switch name {
	case phaseoutput.EdgeJob:
		m.ResetJob()
		return nil
	case phaseoutput.EdgeCacheEntries:
		m.ResetCacheEntries()
		return nil
	}
	return fmt.Errorf("unknown PhaseOutput edge %s", name)
}

// PolishCacheMutation represents an operation that mutates the PolishCache nodes in the graph.
type PolishCacheMutation struct {
	config
	op               Op
	typ              string
	id               *string
	view_key         *string
	school_key       *string
	prose            *string
	model_used       *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	job              *string
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*PolishCache, error)
	predicates       []predicate.PolishCache
}

var _ ent.Mutation = (*PolishCacheMutation)(nil)

// polishcacheOption allows management of the mutation configuration using functional options.
type polishcacheOption func(*PolishCacheMutation)

// newPolishCacheMutation creates new mutation for the PolishCache entity.
func newPolishCacheMutation(c config, op Op, opts ...polishcacheOption) *PolishCacheMutation {
	m := &PolishCacheMutation{
		config:        c,
		op:            op,
		typ:           TypePolishCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolishCacheID sets the ID field of the mutation.
func withPolishCacheID(id string) polishcacheOption {
	return func(m *PolishCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *PolishCache
		)
		m.oldValue = func(ctx context.Context) (*PolishCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolishCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolishCache sets the old PolishCache of the mutation.
func withPolishCache(node *PolishCache) polishcacheOption {
	return func(m *PolishCacheMutation) {
		m.oldValue = func(context.Context) (*PolishCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolishCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolishCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolishCache entities.
func (m *PolishCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolishCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolishCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolishCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *PolishCacheMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PolishCacheMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PolishCacheMutation) ResetJobID() {
	m.job = nil
}

// SetViewKey sets the "view_key" field.
func (m *PolishCacheMutation) SetViewKey(s string) {
	m.view_key = &s
}

// ViewKey returns the value of the "view_key" field in the mutation.
func (m *PolishCacheMutation) ViewKey() (r string, exists bool) {
	v := m.view_key
	if v == nil {
		return
	}
	return *v, true
}

// OldViewKey returns the old "view_key" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldViewKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewKey: %w", err)
	}
	return oldValue.ViewKey, nil
}

// ResetViewKey resets all changes to the "view_key" field.
func (m *PolishCacheMutation) ResetViewKey() {
	m.view_key = nil
}

// SetSchoolKey sets the "school_key" field.
func (m *PolishCacheMutation) SetSchoolKey(s string) {
	m.school_key = &s
}

// SchoolKey returns the value of the "school_key" field in the mutation.
func (m *PolishCacheMutation) SchoolKey() (r string, exists bool) {
	v := m.school_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolKey returns the old "school_key" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldSchoolKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolKey: %w", err)
	}
	return oldValue.SchoolKey, nil
}

// ResetSchoolKey resets all changes to the "school_key" field.
func (m *PolishCacheMutation) ResetSchoolKey() {
	m.school_key = nil
}

// SetProse sets the "prose" field.
func (m *PolishCacheMutation) SetProse(s string) {
	m.prose = &s
}

// Prose returns the value of the "prose" field in the mutation.
func (m *PolishCacheMutation) Prose() (r string, exists bool) {
	v := m.prose
	if v == nil {
		return
	}
	return *v, true
}

// OldProse returns the old "prose" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldProse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProse: %w", err)
	}
	return oldValue.Prose, nil
}

// ResetProse resets all changes to the "prose" field.
func (m *PolishCacheMutation) ResetProse() {
	m.prose = nil
}

// SetModelUsed sets the "model_used" field.
func (m *PolishCacheMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *PolishCacheMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *PolishCacheMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[polishcache.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *PolishCacheMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[polishcache.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *PolishCacheMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, polishcache.FieldModelUsed)
}

// SetInputTokens sets the "input_tokens" field.
func (m *PolishCacheMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *PolishCacheMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *PolishCacheMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *PolishCacheMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *PolishCacheMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *PolishCacheMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *PolishCacheMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *PolishCacheMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *PolishCacheMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *PolishCacheMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PolishCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolishCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolishCache entity.
// If the PolishCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolishCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolishCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the AnalysisJob entity.
func (m *PolishCacheMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[polishcache.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the AnalysisJob entity was cleared.
func (m *PolishCacheMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *PolishCacheMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *PolishCacheMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the PolishCacheMutation builder.
func (m *PolishCacheMutation) Where(ps ...predicate.PolishCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolishCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolishCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolishCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolishCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolishCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolishCache).
func (m *PolishCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolishCacheMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job != nil {
		fields = append(fields, polishcache.FieldJobID)
	}
	if m.view_key != nil {
		fields = append(fields, polishcache.FieldViewKey)
	}
	if m.school_key != nil {
		fields = append(fields, polishcache.FieldSchoolKey)
	}
	if m.prose != nil {
		fields = append(fields, polishcache.FieldProse)
	}
	if m.model_used != nil {
		fields = append(fields, polishcache.FieldModelUsed)
	}
	if m.input_tokens != nil {
		fields = append(fields, polishcache.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, polishcache.FieldOutputTokens)
	}
	if m.created_at != nil {
		fields = append(fields, polishcache.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolishCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case polishcache.FieldJobID:
		return m.JobID()
	case polishcache.FieldViewKey:
		return m.ViewKey()
	case polishcache.FieldSchoolKey:
		return m.SchoolKey()
	case polishcache.FieldProse:
		return m.Prose()
	case polishcache.FieldModelUsed:
		return m.ModelUsed()
	case polishcache.FieldInputTokens:
		return m.InputTokens()
	case polishcache.FieldOutputTokens:
		return m.OutputTokens()
	case polishcache.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolishCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case polishcache.FieldJobID:
		return m.OldJobID(ctx)
	case polishcache.FieldViewKey:
		return m.OldViewKey(ctx)
	case polishcache.FieldSchoolKey:
		return m.OldSchoolKey(ctx)
	case polishcache.FieldProse:
		return m.OldProse(ctx)
	case polishcache.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case polishcache.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case polishcache.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case polishcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolishCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolishCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case polishcache.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case polishcache.FieldViewKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewKey(v)
		return nil
	case polishcache.FieldSchoolKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolKey(v)
		return nil
	case polishcache.FieldProse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProse(v)
		return nil
	case polishcache.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case polishcache.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case polishcache.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case polishcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolishCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolishCacheMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, polishcache.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, polishcache.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolishCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case polishcache.FieldInputTokens:
		return m.AddedInputTokens()
	case polishcache.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolishCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case polishcache.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case polishcache.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown PolishCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolishCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(polishcache.FieldModelUsed) {
		fields = append(fields, polishcache.FieldModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolishCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolishCacheMutation) ClearField(name string) error {
	switch name {
	case polishcache.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	}
	return fmt.Errorf("unknown PolishCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolishCacheMutation) ResetField(name string) error {
	switch name {
	case polishcache.FieldJobID:
		m.ResetJobID()
		return nil
	case polishcache.FieldViewKey:
		m.ResetViewKey()
		return nil
	case polishcache.FieldSchoolKey:
		m.ResetSchoolKey()
		return nil
	case polishcache.FieldProse:
		m.ResetProse()
		return nil
	case polishcache.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case polishcache.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case polishcache.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case polishcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolishCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolishCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, polishcache.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolishCacheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case polishcache.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolishCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolishCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolishCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, polishcache.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolishCacheMutation) EdgeCleared(name string) bool {
	switch name {
	case polishcache.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolishCacheMutation) ClearEdge(name string) error {
	switch name {
	case polishcache.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown PolishCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolishCacheMutation) ResetEdge(name string) error {
	switch name {
	case polishcache.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown PolishCache edge %s", name)
}

// PresentationCacheMutation represents an operation that mutates the PresentationCache nodes in the graph.
type PresentationCacheMutation struct {
	config
	op              Op
	typ             string
	id              *string
	section_key     *string
	source_hash     *string
	skip_hash_check *bool
	payload         *map[string]interface{}
	model_used      *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	output          *string
	clearedoutput   bool
	done            bool
	oldValue        func(context.Context) (*PresentationCache, error)
	predicates      []predicate.PresentationCache
}

var _ ent.Mutation = (*PresentationCacheMutation)(nil)

// presentationcacheOption allows management of the mutation configuration using functional options.
type presentationcacheOption func(*PresentationCacheMutation)

// newPresentationCacheMutation creates new mutation for the PresentationCache entity.
func newPresentationCacheMutation(c config, op Op, opts ...presentationcacheOption) *PresentationCacheMutation {
	m := &PresentationCacheMutation{
		config:        c,
		op:            op,
		typ:           TypePresentationCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPresentationCacheID sets the ID field of the mutation.
func withPresentationCacheID(id string) presentationcacheOption {
	return func(m *PresentationCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *PresentationCache
		)
		m.oldValue = func(ctx context.Context) (*PresentationCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PresentationCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPresentationCache sets the old PresentationCache of the mutation.
func withPresentationCache(node *PresentationCache) presentationcacheOption {
	return func(m *PresentationCacheMutation) {
		m.oldValue = func(context.Context) (*PresentationCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PresentationCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PresentationCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PresentationCache entities.
func (m *PresentationCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PresentationCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PresentationCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PresentationCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOutputID sets the "output_id" field.
func (m *PresentationCacheMutation) SetOutputID(s string) {
	m.output = &s
}

// OutputID returns the value of the "output_id" field in the mutation.
func (m *PresentationCacheMutation) OutputID() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputID returns the old "output_id" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldOutputID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputID: %w", err)
	}
	return oldValue.OutputID, nil
}

// ResetOutputID resets all changes to the "output_id" field.
func (m *PresentationCacheMutation) ResetOutputID() {
	m.output = nil
}

// SetSectionKey sets the "section_key" field.
func (m *PresentationCacheMutation) SetSectionKey(s string) {
	m.section_key = &s
}

// SectionKey returns the value of the "section_key" field in the mutation.
func (m *PresentationCacheMutation) SectionKey() (r string, exists bool) {
	v := m.section_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionKey returns the old "section_key" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldSectionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionKey: %w", err)
	}
	return oldValue.SectionKey, nil
}

// ResetSectionKey resets all changes to the "section_key" field.
func (m *PresentationCacheMutation) ResetSectionKey() {
	m.section_key = nil
}

// SetSourceHash sets the "source_hash" field.
func (m *PresentationCacheMutation) SetSourceHash(s string) {
	m.source_hash = &s
}

// SourceHash returns the value of the "source_hash" field in the mutation.
func (m *PresentationCacheMutation) SourceHash() (r string, exists bool) {
	v := m.source_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHash returns the old "source_hash" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldSourceHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHash: %w", err)
	}
	return oldValue.SourceHash, nil
}

// ResetSourceHash resets all changes to the "source_hash" field.
func (m *PresentationCacheMutation) ResetSourceHash() {
	m.source_hash = nil
}

// SetSkipHashCheck sets the "skip_hash_check" field.
func (m *PresentationCacheMutation) SetSkipHashCheck(b bool) {
	m.skip_hash_check = &b
}

// SkipHashCheck returns the value of the "skip_hash_check" field in the mutation.
func (m *PresentationCacheMutation) SkipHashCheck() (r bool, exists bool) {
	v := m.skip_hash_check
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipHashCheck returns the old "skip_hash_check" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldSkipHashCheck(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipHashCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipHashCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipHashCheck: %w", err)
	}
	return oldValue.SkipHashCheck, nil
}

// ResetSkipHashCheck resets all changes to the "skip_hash_check" field.
func (m *PresentationCacheMutation) ResetSkipHashCheck() {
	m.skip_hash_check = nil
}

// SetPayload sets the "payload" field.
func (m *PresentationCacheMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PresentationCacheMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *PresentationCacheMutation) ResetPayload() {
	m.payload = nil
}

// SetModelUsed sets the "model_used" field.
func (m *PresentationCacheMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *PresentationCacheMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *PresentationCacheMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[presentationcache.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *PresentationCacheMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[presentationcache.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *PresentationCacheMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, presentationcache.FieldModelUsed)
}

// SetCreatedAt sets the "created_at" field.
func (m *PresentationCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PresentationCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PresentationCache entity.
// If the PresentationCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresentationCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PresentationCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOutput clears the "output" edge to the PhaseOutput entity.
func (m *PresentationCacheMutation) ClearOutput() {
	m.clearedoutput = true
	m.clearedFields[presentationcache.FieldOutputID] = struct{}{}
}

// OutputCleared reports if the "output" edge to the PhaseOutput entity was cleared.
func (m *PresentationCacheMutation) OutputCleared() bool {
	return m.clearedoutput
}

// OutputIDs returns the "output" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OutputID instead. It exists only for internal usage by the builders.
func (m *PresentationCacheMutation) OutputIDs() (ids []string) {
	if id := m.output; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOutput resets all changes to the "output" edge.
func (m *PresentationCacheMutation) ResetOutput() {
	m.output = nil
	m.clearedoutput = false
}

// Where appends a list predicates to the PresentationCacheMutation builder.
func (m *PresentationCacheMutation) Where(ps ...predicate.PresentationCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PresentationCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PresentationCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PresentationCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PresentationCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PresentationCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PresentationCache).
func (m *PresentationCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PresentationCacheMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.output != nil {
		fields = append(fields, presentationcache.FieldOutputID)
	}
	if m.section_key != nil {
		fields = append(fields, presentationcache.FieldSectionKey)
	}
	if m.source_hash != nil {
		fields = append(fields, presentationcache.FieldSourceHash)
	}
	if m.skip_hash_check != nil {
		fields = append(fields, presentationcache.FieldSkipHashCheck)
	}
	if m.payload != nil {
		fields = append(fields, presentationcache.FieldPayload)
	}
	if m.model_used != nil {
		fields = append(fields, presentationcache.FieldModelUsed)
	}
	if m.created_at != nil {
		fields = append(fields, presentationcache.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PresentationCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case presentationcache.FieldOutputID:
		return m.OutputID()
	case presentationcache.FieldSectionKey:
		return m.SectionKey()
	case presentationcache.FieldSourceHash:
		return m.SourceHash()
	case presentationcache.FieldSkipHashCheck:
		return m.SkipHashCheck()
	case presentationcache.FieldPayload:
		return m.Payload()
	case presentationcache.FieldModelUsed:
		return m.ModelUsed()
	case presentationcache.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PresentationCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case presentationcache.FieldOutputID:
		return m.OldOutputID(ctx)
	case presentationcache.FieldSectionKey:
		return m.OldSectionKey(ctx)
	case presentationcache.FieldSourceHash:
		return m.OldSourceHash(ctx)
	case presentationcache.FieldSkipHashCheck:
		return m.OldSkipHashCheck(ctx)
	case presentationcache.FieldPayload:
		return m.OldPayload(ctx)
	case presentationcache.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case presentationcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PresentationCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresentationCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case presentationcache.FieldOutputID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputID(v)
		return nil
	case presentationcache.FieldSectionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionKey(v)
		return nil
	case presentationcache.FieldSourceHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHash(v)
		return nil
	case presentationcache.FieldSkipHashCheck:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipHashCheck(v)
		return nil
	case presentationcache.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case presentationcache.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case presentationcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PresentationCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PresentationCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PresentationCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresentationCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PresentationCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PresentationCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(presentationcache.FieldModelUsed) {
		fields = append(fields, presentationcache.FieldModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PresentationCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PresentationCacheMutation) ClearField(name string) error {
	switch name {
	case presentationcache.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	}
	return fmt.Errorf("unknown PresentationCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PresentationCacheMutation) ResetField(name string) error {
	switch name {
	case presentationcache.FieldOutputID:
		m.ResetOutputID()
		return nil
	case presentationcache.FieldSectionKey:
		m.ResetSectionKey()
		return nil
	case presentationcache.FieldSourceHash:
		m.ResetSourceHash()
		return nil
	case presentationcache.FieldSkipHashCheck:
		m.ResetSkipHashCheck()
		return nil
	case presentationcache.FieldPayload:
		m.ResetPayload()
		return nil
	case presentationcache.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case presentationcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PresentationCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PresentationCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.output != nil {
		edges = append(edges, presentationcache.EdgeOutput)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PresentationCacheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case presentationcache.EdgeOutput:
		if id := m.output; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PresentationCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PresentationCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PresentationCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoutput {
		edges = append(edges, presentationcache.EdgeOutput)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PresentationCacheMutation) EdgeCleared(name string) bool {
	switch name {
	case presentationcache.EdgeOutput:
		return m.clearedoutput
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PresentationCacheMutation) ClearEdge(name string) error {
	switch name {
	case presentationcache.EdgeOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown PresentationCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PresentationCacheMutation) ResetEdge(name string) error {
	switch name {
	case presentationcache.EdgeOutput:
		m.ResetOutput()
		return nil
	}
	return fmt.Errorf("unknown PresentationCache edge %s", name)
}

// ViewRefinementMutation represents an operation that mutates the ViewRefinement nodes in the graph.
type ViewRefinementMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	refined_views       *[]map[string]interface{}
	appendrefined_views []map[string]interface{}
	change_summary      *string
	model_used          *string
	input_tokens        *int
	addinput_tokens     *int
	output_tokens       *int
	addoutput_tokens    *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	job                 *string
	clearedjob          bool
	done                bool
	oldValue            func(context.Context) (*ViewRefinement, error)
	predicates          []predicate.ViewRefinement
}

var _ ent.Mutation = (*ViewRefinementMutation)(nil)

// viewrefinementOption allows management of the mutation configuration using functional options.
type viewrefinementOption func(*ViewRefinementMutation)

// newViewRefinementMutation creates new mutation for the ViewRefinement entity.
func newViewRefinementMutation(c config, op Op, opts ...viewrefinementOption) *ViewRefinementMutation {
	m := &ViewRefinementMutation{
		config:        c,
		op:            op,
		typ:           TypeViewRefinement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withViewRefinementID sets the ID field of the mutation.
func withViewRefinementID(id string) viewrefinementOption {
	return func(m *ViewRefinementMutation) {
		var (
			err   error
			once  sync.Once
			value *ViewRefinement
		)
		m.oldValue = func(ctx context.Context) (*ViewRefinement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ViewRefinement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withViewRefinement sets the old ViewRefinement of the mutation.
func withViewRefinement(node *ViewRefinement) viewrefinementOption {
	return func(m *ViewRefinementMutation) {
		m.oldValue = func(context.Context) (*ViewRefinement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ViewRefinementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ViewRefinementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ViewRefinement entities.
func (m *ViewRefinementMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ViewRefinementMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ViewRefinementMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ViewRefinement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ViewRefinementMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ViewRefinementMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ViewRefinementMutation) ResetJobID() {
	m.job = nil
}

// SetRefinedViews sets the "refined_views" field.
func (m *ViewRefinementMutation) SetRefinedViews(value []map[string]interface{}) {
	m.refined_views = &value
	m.appendrefined_views = nil
}

// RefinedViews returns the value of the "refined_views" field in the mutation.
func (m *ViewRefinementMutation) RefinedViews() (r []map[string]interface{}, exists bool) {
	v := m.refined_views
	if v == nil {
		return
	}
	return *v, true
}

// OldRefinedViews returns the old "refined_views" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldRefinedViews(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefinedViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefinedViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefinedViews: %w", err)
	}
	return oldValue.RefinedViews, nil
}

// AppendRefinedViews adds value to the "refined_views" field.
func (m *ViewRefinementMutation) AppendRefinedViews(value []map[string]interface{}) {
	m.appendrefined_views = append(m.appendrefined_views, value...)
}

// AppendedRefinedViews returns the list of values that were appended to the "refined_views" field in this mutation.
func (m *ViewRefinementMutation) AppendedRefinedViews() ([]map[string]interface{}, bool) {
	if len(m.appendrefined_views) == 0 {
		return nil, false
	}
	return m.appendrefined_views, true
}

// ResetRefinedViews resets all changes to the "refined_views" field.
func (m *ViewRefinementMutation) ResetRefinedViews() {
	m.refined_views = nil
	m.appendrefined_views = nil
}

// SetChangeSummary sets the "change_summary" field.
func (m *ViewRefinementMutation) SetChangeSummary(s string) {
	m.change_summary = &s
}

// ChangeSummary returns the value of the "change_summary" field in the mutation.
func (m *ViewRefinementMutation) ChangeSummary() (r string, exists bool) {
	v := m.change_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeSummary returns the old "change_summary" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldChangeSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeSummary: %w", err)
	}
	return oldValue.ChangeSummary, nil
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (m *ViewRefinementMutation) ClearChangeSummary() {
	m.change_summary = nil
	m.clearedFields[viewrefinement.FieldChangeSummary] = struct{}{}
}

// ChangeSummaryCleared returns if the "change_summary" field was cleared in this mutation.
func (m *ViewRefinementMutation) ChangeSummaryCleared() bool {
	_, ok := m.clearedFields[viewrefinement.FieldChangeSummary]
	return ok
}

// ResetChangeSummary resets all changes to the "change_summary" field.
func (m *ViewRefinementMutation) ResetChangeSummary() {
	m.change_summary = nil
	delete(m.clearedFields, viewrefinement.FieldChangeSummary)
}

// SetModelUsed sets the "model_used" field.
func (m *ViewRefinementMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *ViewRefinementMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *ViewRefinementMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[viewrefinement.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *ViewRefinementMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[viewrefinement.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *ViewRefinementMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, viewrefinement.FieldModelUsed)
}

// SetInputTokens sets the "input_tokens" field.
func (m *ViewRefinementMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ViewRefinementMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ViewRefinementMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ViewRefinementMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ViewRefinementMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ViewRefinementMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ViewRefinementMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ViewRefinementMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ViewRefinementMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ViewRefinementMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ViewRefinementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ViewRefinementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ViewRefinement entity.
// If the ViewRefinement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViewRefinementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ViewRefinementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the AnalysisJob entity.
func (m *ViewRefinementMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[viewrefinement.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the AnalysisJob entity was cleared.
func (m *ViewRefinementMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ViewRefinementMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ViewRefinementMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ViewRefinementMutation builder.
func (m *ViewRefinementMutation) Where(ps ...predicate.ViewRefinement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ViewRefinementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ViewRefinementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ViewRefinement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ViewRefinementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ViewRefinementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ViewRefinement).
func (m *ViewRefinementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ViewRefinementMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, viewrefinement.FieldJobID)
	}
	if m.refined_views != nil {
		fields = append(fields, viewrefinement.FieldRefinedViews)
	}
	if m.change_summary != nil {
		fields = append(fields, viewrefinement.FieldChangeSummary)
	}
	if m.model_used != nil {
		fields = append(fields, viewrefinement.FieldModelUsed)
	}
	if m.input_tokens != nil {
		fields = append(fields, viewrefinement.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, viewrefinement.FieldOutputTokens)
	}
	if m.created_at != nil {
		fields = append(fields, viewrefinement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ViewRefinementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case viewrefinement.FieldJobID:
		return m.JobID()
	case viewrefinement.FieldRefinedViews:
		return m.RefinedViews()
	case viewrefinement.FieldChangeSummary:
		return m.ChangeSummary()
	case viewrefinement.FieldModelUsed:
		return m.ModelUsed()
	case viewrefinement.FieldInputTokens:
		return m.InputTokens()
	case viewrefinement.FieldOutputTokens:
		return m.OutputTokens()
	case viewrefinement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ViewRefinementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case viewrefinement.FieldJobID:
		return m.OldJobID(ctx)
	case viewrefinement.FieldRefinedViews:
		return m.OldRefinedViews(ctx)
	case viewrefinement.FieldChangeSummary:
		return m.OldChangeSummary(ctx)
	case viewrefinement.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case viewrefinement.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case viewrefinement.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case viewrefinement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ViewRefinement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ViewRefinementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case viewrefinement.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case viewrefinement.FieldRefinedViews:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefinedViews(v)
		return nil
	case viewrefinement.FieldChangeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeSummary(v)
		return nil
	case viewrefinement.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case viewrefinement.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case viewrefinement.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case viewrefinement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ViewRefinementMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, viewrefinement.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, viewrefinement.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ViewRefinementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case viewrefinement.FieldInputTokens:
		return m.AddedInputTokens()
	case viewrefinement.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ViewRefinementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case viewrefinement.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case viewrefinement.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ViewRefinementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(viewrefinement.FieldChangeSummary) {
		fields = append(fields, viewrefinement.FieldChangeSummary)
	}
	if m.FieldCleared(viewrefinement.FieldModelUsed) {
		fields = append(fields, viewrefinement.FieldModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ViewRefinementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ViewRefinementMutation) ClearField(name string) error {
	switch name {
	case viewrefinement.FieldChangeSummary:
		m.ClearChangeSummary()
		return nil
	case viewrefinement.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ViewRefinementMutation) ResetField(name string) error {
	switch name {
	case viewrefinement.FieldJobID:
		m.ResetJobID()
		return nil
	case viewrefinement.FieldRefinedViews:
		m.ResetRefinedViews()
		return nil
	case viewrefinement.FieldChangeSummary:
		m.ResetChangeSummary()
		return nil
	case viewrefinement.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case viewrefinement.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case viewrefinement.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case viewrefinement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ViewRefinementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, viewrefinement.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ViewRefinementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case viewrefinement.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ViewRefinementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ViewRefinementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ViewRefinementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, viewrefinement.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ViewRefinementMutation) EdgeCleared(name string) bool {
	switch name {
	case viewrefinement.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ViewRefinementMutation) ClearEdge(name string) error {
	switch name {
	case viewrefinement.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ViewRefinementMutation) ResetEdge(name string) error {
	switch name {
	case viewrefinement.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ViewRefinement edge %s", name)
}
