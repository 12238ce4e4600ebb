package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisJob holds the schema definition for the AnalysisJob entity.
// One row per orchestrated analysis run.
type AnalysisJob struct {
	ent.Schema
}

// Fields of the AnalysisJob.
func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Comment("Identifier of the plan this job executes"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Float("current_phase").
			Optional().
			Comment("Phase number currently executing (float allows 1.5 insertions)"),
		field.String("current_phase_name").
			Optional(),
		field.String("progress_detail").
			Optional().
			Comment("Free-form progress text for status polling"),
		field.JSON("completed_phases", []float64{}).
			Optional(),
		field.JSON("phase_results", map[string]interface{}{}).
			Optional().
			Comment("Compact per-phase result records: status, duration, tokens, preview"),
		field.Int("total_llm_calls").
			Default(0),
		field.Int("total_input_tokens").
			Default(0),
		field.Int("total_output_tokens").
			Default(0),
		field.JSON("plan_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Frozen ExecutionPlan — makes the job self-sufficient for resume"),
		field.JSON("request_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Original plan request, kept when the plan itself was never generated"),
		field.JSON("document_map", map[string]string{}).
			Optional().
			Comment("work title → document id"),
		field.String("cancel_token").
			Sensitive().
			Comment("Returned only at creation time; required to cancel"),
		field.String("workflow_key").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
	}
}

// Edges of the AnalysisJob.
func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("outputs", PhaseOutput.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("view_refinement", ViewRefinement.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("polishes", PolishCache.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalysisJob.
func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("plan_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
