package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseOutput holds the schema definition for the PhaseOutput entity.
// One row per persisted LLM response. The tuple
// (job_id, phase_number, engine_key, pass_number, work_key) is the
// resume watermark: write-once, never updated.
type PhaseOutput struct {
	ent.Schema
}

// Fields of the PhaseOutput.
func (PhaseOutput) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("output_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Float("phase_number").
			Immutable(),
		field.String("engine_key").
			Immutable(),
		field.Int("pass_number").
			Immutable().
			Comment("1-indexed within the engine for this phase/work"),
		field.String("work_key").
			Default("").
			Immutable().
			Comment("Empty for non-per-work phases"),
		field.String("stance_key").
			Optional(),
		field.String("role").
			Default("extraction"),
		field.Text("content"),
		field.String("model_used"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Lineage link to the output this one built on"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PhaseOutput.
func (PhaseOutput) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", AnalysisJob.Type).
			Ref("outputs").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("cache_entries", PresentationCache.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PhaseOutput.
func (PhaseOutput) Indexes() []ent.Index {
	return []ent.Index{
		// Write-once conflict boundary for resume
		index.Fields("job_id", "phase_number", "engine_key", "pass_number", "work_key").
			Unique(),
		index.Fields("job_id", "phase_number"),
		index.Fields("job_id", "engine_key"),
	}
}
