// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
)

// PhaseOutput is the model entity for the PhaseOutput schema.
type PhaseOutput struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// PhaseNumber holds the value of the "phase_number" field.
	PhaseNumber float64 `json:"phase_number,omitempty"`
	// EngineKey holds the value of the "engine_key" field.
	EngineKey string `json:"engine_key,omitempty"`
	// 1-indexed within the engine for this phase/work
	PassNumber int `json:"pass_number,omitempty"`
	// Empty for non-per-work phases
	WorkKey string `json:"work_key,omitempty"`
	// StanceKey holds the value of the "stance_key" field.
	StanceKey string `json:"stance_key,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// Lineage link to the output this one built on
	ParentID *string `json:"parent_id,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhaseOutputQuery when eager-loading is set.
	Edges        PhaseOutputEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhaseOutputEdges holds the relations/edges for other nodes in the graph.
type PhaseOutputEdges struct {
	// Job holds the value of the job edge.
	Job *AnalysisJob `json:"job,omitempty"`
	// CacheEntries holds the value of the cache_entries edge.
	CacheEntries []*PresentationCache `json:"cache_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhaseOutputEdges) JobOrErr() (*AnalysisJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// CacheEntriesOrErr returns the CacheEntries value or an error if the edge
// was not loaded in eager-loading.
func (e PhaseOutputEdges) CacheEntriesOrErr() ([]*PresentationCache, error) {
	if e.loadedTypes[1] {
		return e.CacheEntries, nil
	}
	return nil, &NotLoadedError{edge: "cache_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhaseOutput) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phaseoutput.FieldMetadata:
			values[i] = new([]byte)
		case phaseoutput.FieldPhaseNumber:
			values[i] = new(sql.NullFloat64)
		case phaseoutput.FieldPassNumber, phaseoutput.FieldInputTokens, phaseoutput.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case phaseoutput.FieldID, phaseoutput.FieldJobID, phaseoutput.FieldEngineKey, phaseoutput.FieldWorkKey, phaseoutput.FieldStanceKey, phaseoutput.FieldRole, phaseoutput.FieldContent, phaseoutput.FieldModelUsed, phaseoutput.FieldParentID:
			values[i] = new(sql.NullString)
		case phaseoutput.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhaseOutput fields.
func (_m *PhaseOutput) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phaseoutput.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case phaseoutput.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case phaseoutput.FieldPhaseNumber:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_number", values[i])
			} else if value.Valid {
				_m.PhaseNumber = value.Float64
			}
		case phaseoutput.FieldEngineKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_key", values[i])
			} else if value.Valid {
				_m.EngineKey = value.String
			}
		case phaseoutput.FieldPassNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_number", values[i])
			} else if value.Valid {
				_m.PassNumber = int(value.Int64)
			}
		case phaseoutput.FieldWorkKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_key", values[i])
			} else if value.Valid {
				_m.WorkKey = value.String
			}
		case phaseoutput.FieldStanceKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stance_key", values[i])
			} else if value.Valid {
				_m.StanceKey = value.String
			}
		case phaseoutput.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case phaseoutput.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case phaseoutput.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case phaseoutput.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case phaseoutput.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case phaseoutput.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case phaseoutput.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case phaseoutput.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhaseOutput.
// This includes values selected through modifiers, order, etc.
func (_m *PhaseOutput) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the PhaseOutput entity.
func (_m *PhaseOutput) QueryJob() *AnalysisJobQuery {
	return NewPhaseOutputClient(_m.config).QueryJob(_m)
}

// QueryCacheEntries queries the "cache_entries" edge of the PhaseOutput entity.
func (_m *PhaseOutput) QueryCacheEntries() *PresentationCacheQuery {
	return NewPhaseOutputClient(_m.config).QueryCacheEntries(_m)
}

// Update returns a builder for updating this PhaseOutput.
// Note that you need to call PhaseOutput.Unwrap() before calling this method if this PhaseOutput
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhaseOutput) Update() *PhaseOutputUpdateOne {
	return NewPhaseOutputClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhaseOutput entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhaseOutput) Unwrap() *PhaseOutput {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhaseOutput is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhaseOutput) String() string {
	var builder strings.Builder
	builder.WriteString("PhaseOutput(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("phase_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseNumber))
	builder.WriteString(", ")
	builder.WriteString("engine_key=")
	builder.WriteString(_m.EngineKey)
	builder.WriteString(", ")
	builder.WriteString("pass_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassNumber))
	builder.WriteString(", ")
	builder.WriteString("work_key=")
	builder.WriteString(_m.WorkKey)
	builder.WriteString(", ")
	builder.WriteString("stance_key=")
	builder.WriteString(_m.StanceKey)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PhaseOutputs is a parsable slice of PhaseOutput.
type PhaseOutputs []*PhaseOutput
