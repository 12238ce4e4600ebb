// Code generated by ent, DO NOT EDIT.

package presentationcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/exegete-ai/exegete/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContainsFold(FieldID, id))
}

// OutputID applies equality check predicate on the "output_id" field. It's identical to OutputIDEQ.
func OutputID(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldOutputID, v))
}

// SectionKey applies equality check predicate on the "section_key" field. It's identical to SectionKeyEQ.
func SectionKey(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSectionKey, v))
}

// SourceHash applies equality check predicate on the "source_hash" field. It's identical to SourceHashEQ.
func SourceHash(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSourceHash, v))
}

// SkipHashCheck applies equality check predicate on the "skip_hash_check" field. It's identical to SkipHashCheckEQ.
func SkipHashCheck(v bool) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSkipHashCheck, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldModelUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldCreatedAt, v))
}

// OutputIDEQ applies the EQ predicate on the "output_id" field.
func OutputIDEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldOutputID, v))
}

// OutputIDNEQ applies the NEQ predicate on the "output_id" field.
func OutputIDNEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldOutputID, v))
}

// OutputIDIn applies the In predicate on the "output_id" field.
func OutputIDIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldOutputID, vs...))
}

// OutputIDNotIn applies the NotIn predicate on the "output_id" field.
func OutputIDNotIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldOutputID, vs...))
}

// OutputIDGT applies the GT predicate on the "output_id" field.
func OutputIDGT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldOutputID, v))
}

// OutputIDGTE applies the GTE predicate on the "output_id" field.
func OutputIDGTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldOutputID, v))
}

// OutputIDLT applies the LT predicate on the "output_id" field.
func OutputIDLT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldOutputID, v))
}

// OutputIDLTE applies the LTE predicate on the "output_id" field.
func OutputIDLTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldOutputID, v))
}

// OutputIDContains applies the Contains predicate on the "output_id" field.
func OutputIDContains(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContains(FieldOutputID, v))
}

// OutputIDHasPrefix applies the HasPrefix predicate on the "output_id" field.
func OutputIDHasPrefix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasPrefix(FieldOutputID, v))
}

// OutputIDHasSuffix applies the HasSuffix predicate on the "output_id" field.
func OutputIDHasSuffix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasSuffix(FieldOutputID, v))
}

// OutputIDEqualFold applies the EqualFold predicate on the "output_id" field.
func OutputIDEqualFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEqualFold(FieldOutputID, v))
}

// OutputIDContainsFold applies the ContainsFold predicate on the "output_id" field.
func OutputIDContainsFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContainsFold(FieldOutputID, v))
}

// SectionKeyEQ applies the EQ predicate on the "section_key" field.
func SectionKeyEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSectionKey, v))
}

// SectionKeyNEQ applies the NEQ predicate on the "section_key" field.
func SectionKeyNEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldSectionKey, v))
}

// SectionKeyIn applies the In predicate on the "section_key" field.
func SectionKeyIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldSectionKey, vs...))
}

// SectionKeyNotIn applies the NotIn predicate on the "section_key" field.
func SectionKeyNotIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldSectionKey, vs...))
}

// SectionKeyGT applies the GT predicate on the "section_key" field.
func SectionKeyGT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldSectionKey, v))
}

// SectionKeyGTE applies the GTE predicate on the "section_key" field.
func SectionKeyGTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldSectionKey, v))
}

// SectionKeyLT applies the LT predicate on the "section_key" field.
func SectionKeyLT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldSectionKey, v))
}

// SectionKeyLTE applies the LTE predicate on the "section_key" field.
func SectionKeyLTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldSectionKey, v))
}

// SectionKeyContains applies the Contains predicate on the "section_key" field.
func SectionKeyContains(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContains(FieldSectionKey, v))
}

// SectionKeyHasPrefix applies the HasPrefix predicate on the "section_key" field.
func SectionKeyHasPrefix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasPrefix(FieldSectionKey, v))
}

// SectionKeyHasSuffix applies the HasSuffix predicate on the "section_key" field.
func SectionKeyHasSuffix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasSuffix(FieldSectionKey, v))
}

// SectionKeyEqualFold applies the EqualFold predicate on the "section_key" field.
func SectionKeyEqualFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEqualFold(FieldSectionKey, v))
}

// SectionKeyContainsFold applies the ContainsFold predicate on the "section_key" field.
func SectionKeyContainsFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContainsFold(FieldSectionKey, v))
}

// SourceHashEQ applies the EQ predicate on the "source_hash" field.
func SourceHashEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSourceHash, v))
}

// SourceHashNEQ applies the NEQ predicate on the "source_hash" field.
func SourceHashNEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldSourceHash, v))
}

// SourceHashIn applies the In predicate on the "source_hash" field.
func SourceHashIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldSourceHash, vs...))
}

// SourceHashNotIn applies the NotIn predicate on the "source_hash" field.
func SourceHashNotIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldSourceHash, vs...))
}

// SourceHashGT applies the GT predicate on the "source_hash" field.
func SourceHashGT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldSourceHash, v))
}

// SourceHashGTE applies the GTE predicate on the "source_hash" field.
func SourceHashGTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldSourceHash, v))
}

// SourceHashLT applies the LT predicate on the "source_hash" field.
func SourceHashLT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldSourceHash, v))
}

// SourceHashLTE applies the LTE predicate on the "source_hash" field.
func SourceHashLTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldSourceHash, v))
}

// SourceHashContains applies the Contains predicate on the "source_hash" field.
func SourceHashContains(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContains(FieldSourceHash, v))
}

// SourceHashHasPrefix applies the HasPrefix predicate on the "source_hash" field.
func SourceHashHasPrefix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasPrefix(FieldSourceHash, v))
}

// SourceHashHasSuffix applies the HasSuffix predicate on the "source_hash" field.
func SourceHashHasSuffix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasSuffix(FieldSourceHash, v))
}

// SourceHashEqualFold applies the EqualFold predicate on the "source_hash" field.
func SourceHashEqualFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEqualFold(FieldSourceHash, v))
}

// SourceHashContainsFold applies the ContainsFold predicate on the "source_hash" field.
func SourceHashContainsFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContainsFold(FieldSourceHash, v))
}

// SkipHashCheckEQ applies the EQ predicate on the "skip_hash_check" field.
func SkipHashCheckEQ(v bool) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldSkipHashCheck, v))
}

// SkipHashCheckNEQ applies the NEQ predicate on the "skip_hash_check" field.
func SkipHashCheckNEQ(v bool) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldSkipHashCheck, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldContainsFold(FieldModelUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PresentationCache {
	return predicate.PresentationCache(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOutput applies the HasEdge predicate on the "output" edge.
func HasOutput() predicate.PresentationCache {
	return predicate.PresentationCache(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OutputTable, OutputColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutputWith applies the HasEdge predicate on the "output" edge with a given conditions (other predicates).
func HasOutputWith(preds ...predicate.PhaseOutput) predicate.PresentationCache {
	return predicate.PresentationCache(func(s *sql.Selector) {
		step := newOutputStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PresentationCache) predicate.PresentationCache {
	return predicate.PresentationCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PresentationCache) predicate.PresentationCache {
	return predicate.PresentationCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PresentationCache) predicate.PresentationCache {
	return predicate.PresentationCache(sql.NotPredicates(p))
}
