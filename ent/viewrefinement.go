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
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// ViewRefinement is the model entity for the ViewRefinement schema.
type ViewRefinement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// RefinedViews holds the value of the "refined_views" field.
	RefinedViews []map[string]interface{} `json:"refined_views,omitempty"`
	// ChangeSummary holds the value of the "change_summary" field.
	ChangeSummary string `json:"change_summary,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ViewRefinementQuery when eager-loading is set.
	Edges        ViewRefinementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ViewRefinementEdges holds the relations/edges for other nodes in the graph.
type ViewRefinementEdges struct {
	// Job holds the value of the job edge.
	Job *AnalysisJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ViewRefinementEdges) JobOrErr() (*AnalysisJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViewRefinement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case viewrefinement.FieldRefinedViews:
			values[i] = new([]byte)
		case viewrefinement.FieldInputTokens, viewrefinement.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case viewrefinement.FieldID, viewrefinement.FieldJobID, viewrefinement.FieldChangeSummary, viewrefinement.FieldModelUsed:
			values[i] = new(sql.NullString)
		case viewrefinement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViewRefinement fields.
func (_m *ViewRefinement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case viewrefinement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case viewrefinement.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case viewrefinement.FieldRefinedViews:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field refined_views", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RefinedViews); err != nil {
					return fmt.Errorf("unmarshal field refined_views: %w", err)
				}
			}
		case viewrefinement.FieldChangeSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_summary", values[i])
			} else if value.Valid {
				_m.ChangeSummary = value.String
			}
		case viewrefinement.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case viewrefinement.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case viewrefinement.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case viewrefinement.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ViewRefinement.
// This includes values selected through modifiers, order, etc.
func (_m *ViewRefinement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ViewRefinement entity.
func (_m *ViewRefinement) QueryJob() *AnalysisJobQuery {
	return NewViewRefinementClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ViewRefinement.
// Note that you need to call ViewRefinement.Unwrap() before calling this method if this ViewRefinement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ViewRefinement) Update() *ViewRefinementUpdateOne {
	return NewViewRefinementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ViewRefinement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ViewRefinement) Unwrap() *ViewRefinement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViewRefinement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ViewRefinement) String() string {
	var builder strings.Builder
	builder.WriteString("ViewRefinement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("refined_views=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefinedViews))
	builder.WriteString(", ")
	builder.WriteString("change_summary=")
	builder.WriteString(_m.ChangeSummary)
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ViewRefinements is a parsable slice of ViewRefinement.
type ViewRefinements []*ViewRefinement
