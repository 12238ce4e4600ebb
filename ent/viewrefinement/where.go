// Code generated by ent, DO NOT EDIT.

package viewrefinement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/exegete-ai/exegete/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldJobID, v))
}

// ChangeSummary applies equality check predicate on the "change_summary" field. It's identical to ChangeSummaryEQ.
func ChangeSummary(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldChangeSummary, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldModelUsed, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldOutputTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContainsFold(FieldJobID, v))
}

// ChangeSummaryEQ applies the EQ predicate on the "change_summary" field.
func ChangeSummaryEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldChangeSummary, v))
}

// ChangeSummaryNEQ applies the NEQ predicate on the "change_summary" field.
func ChangeSummaryNEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldChangeSummary, v))
}

// ChangeSummaryIn applies the In predicate on the "change_summary" field.
func ChangeSummaryIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldChangeSummary, vs...))
}

// ChangeSummaryNotIn applies the NotIn predicate on the "change_summary" field.
func ChangeSummaryNotIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldChangeSummary, vs...))
}

// ChangeSummaryGT applies the GT predicate on the "change_summary" field.
func ChangeSummaryGT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldChangeSummary, v))
}

// ChangeSummaryGTE applies the GTE predicate on the "change_summary" field.
func ChangeSummaryGTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldChangeSummary, v))
}

// ChangeSummaryLT applies the LT predicate on the "change_summary" field.
func ChangeSummaryLT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldChangeSummary, v))
}

// ChangeSummaryLTE applies the LTE predicate on the "change_summary" field.
func ChangeSummaryLTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldChangeSummary, v))
}

// ChangeSummaryContains applies the Contains predicate on the "change_summary" field.
func ChangeSummaryContains(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContains(FieldChangeSummary, v))
}

// ChangeSummaryHasPrefix applies the HasPrefix predicate on the "change_summary" field.
func ChangeSummaryHasPrefix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasPrefix(FieldChangeSummary, v))
}

// ChangeSummaryHasSuffix applies the HasSuffix predicate on the "change_summary" field.
func ChangeSummaryHasSuffix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasSuffix(FieldChangeSummary, v))
}

// ChangeSummaryIsNil applies the IsNil predicate on the "change_summary" field.
func ChangeSummaryIsNil() predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIsNull(FieldChangeSummary))
}

// ChangeSummaryNotNil applies the NotNil predicate on the "change_summary" field.
func ChangeSummaryNotNil() predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotNull(FieldChangeSummary))
}

// ChangeSummaryEqualFold applies the EqualFold predicate on the "change_summary" field.
func ChangeSummaryEqualFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEqualFold(FieldChangeSummary, v))
}

// ChangeSummaryContainsFold applies the ContainsFold predicate on the "change_summary" field.
func ChangeSummaryContainsFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContainsFold(FieldChangeSummary, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldContainsFold(FieldModelUsed, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldOutputTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ViewRefinement {
	return predicate.ViewRefinement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.AnalysisJob) predicate.ViewRefinement {
	return predicate.ViewRefinement(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViewRefinement) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViewRefinement) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViewRefinement) predicate.ViewRefinement {
	return predicate.ViewRefinement(sql.NotPredicates(p))
}
