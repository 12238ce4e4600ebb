// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/polishcache"
)

// PolishCache is the model entity for the PolishCache schema.
type PolishCache struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// ViewKey holds the value of the "view_key" field.
	ViewKey string `json:"view_key,omitempty"`
	// Stance key the prose was polished under
	SchoolKey string `json:"school_key,omitempty"`
	// Prose holds the value of the "prose" field.
	Prose string `json:"prose,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolishCacheQuery when eager-loading is set.
	Edges        PolishCacheEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolishCacheEdges holds the relations/edges for other nodes in the graph.
type PolishCacheEdges struct {
	// Job holds the value of the job edge.
	Job *AnalysisJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolishCacheEdges) JobOrErr() (*AnalysisJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysisjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolishCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case polishcache.FieldInputTokens, polishcache.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case polishcache.FieldID, polishcache.FieldJobID, polishcache.FieldViewKey, polishcache.FieldSchoolKey, polishcache.FieldProse, polishcache.FieldModelUsed:
			values[i] = new(sql.NullString)
		case polishcache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolishCache fields.
func (_m *PolishCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case polishcache.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case polishcache.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case polishcache.FieldViewKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field view_key", values[i])
			} else if value.Valid {
				_m.ViewKey = value.String
			}
		case polishcache.FieldSchoolKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field school_key", values[i])
			} else if value.Valid {
				_m.SchoolKey = value.String
			}
		case polishcache.FieldProse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prose", values[i])
			} else if value.Valid {
				_m.Prose = value.String
			}
		case polishcache.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case polishcache.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case polishcache.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case polishcache.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PolishCache.
// This includes values selected through modifiers, order, etc.
func (_m *PolishCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the PolishCache entity.
func (_m *PolishCache) QueryJob() *AnalysisJobQuery {
	return NewPolishCacheClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this PolishCache.
// Note that you need to call PolishCache.Unwrap() before calling this method if this PolishCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolishCache) Update() *PolishCacheUpdateOne {
	return NewPolishCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolishCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolishCache) Unwrap() *PolishCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolishCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolishCache) String() string {
	var builder strings.Builder
	builder.WriteString("PolishCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("view_key=")
	builder.WriteString(_m.ViewKey)
	builder.WriteString(", ")
	builder.WriteString("school_key=")
	builder.WriteString(_m.SchoolKey)
	builder.WriteString(", ")
	builder.WriteString("prose=")
	builder.WriteString(_m.Prose)
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

// PolishCaches is a parsable slice of PolishCache.
type PolishCaches []*PolishCache
