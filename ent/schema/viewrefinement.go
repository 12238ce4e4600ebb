package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViewRefinement holds the schema definition for the ViewRefinement entity.
// One row per job: post-execution re-ranking of view recommendations.
// Upsert semantics on job_id.
type ViewRefinement struct {
	ent.Schema
}

// Fields of the ViewRefinement.
func (ViewRefinement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("refinement_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.JSON("refined_views", []map[string]interface{}{}),
		field.Text("change_summary").
			Optional(),
		field.String("model_used").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ViewRefinement.
func (ViewRefinement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", AnalysisJob.Type).
			Ref("view_refinement").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ViewRefinement.
func (ViewRefinement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").
			Unique(),
	}
}
