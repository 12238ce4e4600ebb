package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolishCache holds the schema definition for the PolishCache entity.
// One row per (job, view, school): a view's prose rewritten through an
// interpretive school's framing.
type PolishCache struct {
	ent.Schema
}

// Fields of the PolishCache.
func (PolishCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("polish_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("view_key").
			Immutable(),
		field.String("school_key").
			Immutable().
			Comment("Stance key the prose was polished under"),
		field.Text("prose"),
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

// Edges of the PolishCache.
func (PolishCache) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", AnalysisJob.Type).
			Ref("polishes").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PolishCache.
func (PolishCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "view_key", "school_key").
			Unique(),
	}
}
