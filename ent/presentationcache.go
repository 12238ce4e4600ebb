// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PresentationCache is the model entity for the PresentationCache schema.
type PresentationCache struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OutputID holds the value of the "output_id" field.
	OutputID string `json:"output_id,omitempty"`
	// Template key or dyn:<engine>:<renderer>, plus per-work suffix
	SectionKey string `json:"section_key,omitempty"`
	// SHA-256 of the source content at transformation time
	SourceHash string `json:"source_hash,omitempty"`
	// Set for multi-pass content_override rows — hash never matches any single pass
	SkipHashCheck bool `json:"skip_hash_check,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// ModelUsed holds the value of the "model_used" field.
	ModelUsed string `json:"model_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PresentationCacheQuery when eager-loading is set.
	Edges        PresentationCacheEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PresentationCacheEdges holds the relations/edges for other nodes in the graph.
type PresentationCacheEdges struct {
	// Output holds the value of the output edge.
	Output *PhaseOutput `json:"output,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OutputOrErr returns the Output value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PresentationCacheEdges) OutputOrErr() (*PhaseOutput, error) {
	if e.Output != nil {
		return e.Output, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: phaseoutput.Label}
	}
	return nil, &NotLoadedError{edge: "output"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PresentationCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case presentationcache.FieldPayload:
			values[i] = new([]byte)
		case presentationcache.FieldSkipHashCheck:
			values[i] = new(sql.NullBool)
		case presentationcache.FieldID, presentationcache.FieldOutputID, presentationcache.FieldSectionKey, presentationcache.FieldSourceHash, presentationcache.FieldModelUsed:
			values[i] = new(sql.NullString)
		case presentationcache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PresentationCache fields.
func (_m *PresentationCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case presentationcache.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case presentationcache.FieldOutputID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_id", values[i])
			} else if value.Valid {
				_m.OutputID = value.String
			}
		case presentationcache.FieldSectionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_key", values[i])
			} else if value.Valid {
				_m.SectionKey = value.String
			}
		case presentationcache.FieldSourceHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_hash", values[i])
			} else if value.Valid {
				_m.SourceHash = value.String
			}
		case presentationcache.FieldSkipHashCheck:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_hash_check", values[i])
			} else if value.Valid {
				_m.SkipHashCheck = value.Bool
			}
		case presentationcache.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case presentationcache.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = value.String
			}
		case presentationcache.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PresentationCache.
// This includes values selected through modifiers, order, etc.
func (_m *PresentationCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOutput queries the "output" edge of the PresentationCache entity.
func (_m *PresentationCache) QueryOutput() *PhaseOutputQuery {
	return NewPresentationCacheClient(_m.config).QueryOutput(_m)
}

// Update returns a builder for updating this PresentationCache.
// Note that you need to call PresentationCache.Unwrap() before calling this method if this PresentationCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PresentationCache) Update() *PresentationCacheUpdateOne {
	return NewPresentationCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PresentationCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PresentationCache) Unwrap() *PresentationCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PresentationCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PresentationCache) String() string {
	var builder strings.Builder
	builder.WriteString("PresentationCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("output_id=")
	builder.WriteString(_m.OutputID)
	builder.WriteString(", ")
	builder.WriteString("section_key=")
	builder.WriteString(_m.SectionKey)
	builder.WriteString(", ")
	builder.WriteString("source_hash=")
	builder.WriteString(_m.SourceHash)
	builder.WriteString(", ")
	builder.WriteString("skip_hash_check=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipHashCheck))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("model_used=")
	builder.WriteString(_m.ModelUsed)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PresentationCaches is a parsable slice of PresentationCache.
type PresentationCaches []*PresentationCache
