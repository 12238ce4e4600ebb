package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PresentationCache holds the schema definition for the PresentationCache entity.
// One row per (output, section key) transformation result.
type PresentationCache struct {
	ent.Schema
}

// Fields of the PresentationCache.
func (PresentationCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_id").
			Unique().
			Immutable(),
		field.String("output_id").
			Immutable(),
		field.String("section_key").
			Immutable().
			Comment("Template key or dyn:<engine>:<renderer>, plus per-work suffix"),
		field.String("source_hash").
			Comment("SHA-256 of the source content at transformation time"),
		field.Bool("skip_hash_check").
			Default(false).
			Comment("Set for multi-pass content_override rows — hash never matches any single pass"),
		field.JSON("payload", map[string]interface{}{}),
		field.String("model_used").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the PresentationCache.
func (PresentationCache) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("output", PhaseOutput.Type).
			Ref("cache_entries").
			Field("output_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PresentationCache.
func (PresentationCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("output_id", "section_key").
			Unique(),
	}
}
