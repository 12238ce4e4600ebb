// Code generated by ent, DO NOT EDIT.

package polishcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/exegete-ai/exegete/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldJobID, v))
}

// ViewKey applies equality check predicate on the "view_key" field. It's identical to ViewKeyEQ.
func ViewKey(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldViewKey, v))
}

// SchoolKey applies equality check predicate on the "school_key" field. It's identical to SchoolKeyEQ.
func SchoolKey(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldSchoolKey, v))
}

// Prose applies equality check predicate on the "prose" field. It's identical to ProseEQ.
func Prose(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldProse, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldModelUsed, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldOutputTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldJobID, v))
}

// ViewKeyEQ applies the EQ predicate on the "view_key" field.
func ViewKeyEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldViewKey, v))
}

// ViewKeyNEQ applies the NEQ predicate on the "view_key" field.
func ViewKeyNEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldViewKey, v))
}

// ViewKeyIn applies the In predicate on the "view_key" field.
func ViewKeyIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldViewKey, vs...))
}

// ViewKeyNotIn applies the NotIn predicate on the "view_key" field.
func ViewKeyNotIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldViewKey, vs...))
}

// ViewKeyGT applies the GT predicate on the "view_key" field.
func ViewKeyGT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldViewKey, v))
}

// ViewKeyGTE applies the GTE predicate on the "view_key" field.
func ViewKeyGTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldViewKey, v))
}

// ViewKeyLT applies the LT predicate on the "view_key" field.
func ViewKeyLT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldViewKey, v))
}

// ViewKeyLTE applies the LTE predicate on the "view_key" field.
func ViewKeyLTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldViewKey, v))
}

// ViewKeyContains applies the Contains predicate on the "view_key" field.
func ViewKeyContains(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContains(FieldViewKey, v))
}

// ViewKeyHasPrefix applies the HasPrefix predicate on the "view_key" field.
func ViewKeyHasPrefix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasPrefix(FieldViewKey, v))
}

// ViewKeyHasSuffix applies the HasSuffix predicate on the "view_key" field.
func ViewKeyHasSuffix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasSuffix(FieldViewKey, v))
}

// ViewKeyEqualFold applies the EqualFold predicate on the "view_key" field.
func ViewKeyEqualFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldViewKey, v))
}

// ViewKeyContainsFold applies the ContainsFold predicate on the "view_key" field.
func ViewKeyContainsFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldViewKey, v))
}

// SchoolKeyEQ applies the EQ predicate on the "school_key" field.
func SchoolKeyEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldSchoolKey, v))
}

// SchoolKeyNEQ applies the NEQ predicate on the "school_key" field.
func SchoolKeyNEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldSchoolKey, v))
}

// SchoolKeyIn applies the In predicate on the "school_key" field.
func SchoolKeyIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldSchoolKey, vs...))
}

// SchoolKeyNotIn applies the NotIn predicate on the "school_key" field.
func SchoolKeyNotIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldSchoolKey, vs...))
}

// SchoolKeyGT applies the GT predicate on the "school_key" field.
func SchoolKeyGT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldSchoolKey, v))
}

// SchoolKeyGTE applies the GTE predicate on the "school_key" field.
func SchoolKeyGTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldSchoolKey, v))
}

// SchoolKeyLT applies the LT predicate on the "school_key" field.
func SchoolKeyLT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldSchoolKey, v))
}

// SchoolKeyLTE applies the LTE predicate on the "school_key" field.
func SchoolKeyLTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldSchoolKey, v))
}

// SchoolKeyContains applies the Contains predicate on the "school_key" field.
func SchoolKeyContains(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContains(FieldSchoolKey, v))
}

// SchoolKeyHasPrefix applies the HasPrefix predicate on the "school_key" field.
func SchoolKeyHasPrefix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasPrefix(FieldSchoolKey, v))
}

// SchoolKeyHasSuffix applies the HasSuffix predicate on the "school_key" field.
func SchoolKeyHasSuffix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasSuffix(FieldSchoolKey, v))
}

// SchoolKeyEqualFold applies the EqualFold predicate on the "school_key" field.
func SchoolKeyEqualFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldSchoolKey, v))
}

// SchoolKeyContainsFold applies the ContainsFold predicate on the "school_key" field.
func SchoolKeyContainsFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldSchoolKey, v))
}

// ProseEQ applies the EQ predicate on the "prose" field.
func ProseEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldProse, v))
}

// ProseNEQ applies the NEQ predicate on the "prose" field.
func ProseNEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldProse, v))
}

// ProseIn applies the In predicate on the "prose" field.
func ProseIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldProse, vs...))
}

// ProseNotIn applies the NotIn predicate on the "prose" field.
func ProseNotIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldProse, vs...))
}

// ProseGT applies the GT predicate on the "prose" field.
func ProseGT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldProse, v))
}

// ProseGTE applies the GTE predicate on the "prose" field.
func ProseGTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldProse, v))
}

// ProseLT applies the LT predicate on the "prose" field.
func ProseLT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldProse, v))
}

// ProseLTE applies the LTE predicate on the "prose" field.
func ProseLTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldProse, v))
}

// ProseContains applies the Contains predicate on the "prose" field.
func ProseContains(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContains(FieldProse, v))
}

// ProseHasPrefix applies the HasPrefix predicate on the "prose" field.
func ProseHasPrefix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasPrefix(FieldProse, v))
}

// ProseHasSuffix applies the HasSuffix predicate on the "prose" field.
func ProseHasSuffix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasSuffix(FieldProse, v))
}

// ProseEqualFold applies the EqualFold predicate on the "prose" field.
func ProseEqualFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldProse, v))
}

// ProseContainsFold applies the ContainsFold predicate on the "prose" field.
func ProseContainsFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldProse, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldContainsFold(FieldModelUsed, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldOutputTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolishCache {
	return predicate.PolishCache(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.PolishCache {
	return predicate.PolishCache(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.AnalysisJob) predicate.PolishCache {
	return predicate.PolishCache(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolishCache) predicate.PolishCache {
	return predicate.PolishCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolishCache) predicate.PolishCache {
	return predicate.PolishCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolishCache) predicate.PolishCache {
	return predicate.PolishCache(sql.NotPredicates(p))
}
