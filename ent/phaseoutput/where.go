// Code generated by ent, DO NOT EDIT.

package phaseoutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/exegete-ai/exegete/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldJobID, v))
}

// PhaseNumber applies equality check predicate on the "phase_number" field. It's identical to PhaseNumberEQ.
func PhaseNumber(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldPhaseNumber, v))
}

// EngineKey applies equality check predicate on the "engine_key" field. It's identical to EngineKeyEQ.
func EngineKey(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldEngineKey, v))
}

// PassNumber applies equality check predicate on the "pass_number" field. It's identical to PassNumberEQ.
func PassNumber(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldPassNumber, v))
}

// WorkKey applies equality check predicate on the "work_key" field. It's identical to WorkKeyEQ.
func WorkKey(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldWorkKey, v))
}

// StanceKey applies equality check predicate on the "stance_key" field. It's identical to StanceKeyEQ.
func StanceKey(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldStanceKey, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldRole, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldContent, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldModelUsed, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldOutputTokens, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldParentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldJobID, v))
}

// PhaseNumberEQ applies the EQ predicate on the "phase_number" field.
func PhaseNumberEQ(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldPhaseNumber, v))
}

// PhaseNumberNEQ applies the NEQ predicate on the "phase_number" field.
func PhaseNumberNEQ(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldPhaseNumber, v))
}

// PhaseNumberIn applies the In predicate on the "phase_number" field.
func PhaseNumberIn(vs ...float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldPhaseNumber, vs...))
}

// PhaseNumberNotIn applies the NotIn predicate on the "phase_number" field.
func PhaseNumberNotIn(vs ...float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldPhaseNumber, vs...))
}

// PhaseNumberGT applies the GT predicate on the "phase_number" field.
func PhaseNumberGT(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldPhaseNumber, v))
}

// PhaseNumberGTE applies the GTE predicate on the "phase_number" field.
func PhaseNumberGTE(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldPhaseNumber, v))
}

// PhaseNumberLT applies the LT predicate on the "phase_number" field.
func PhaseNumberLT(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldPhaseNumber, v))
}

// PhaseNumberLTE applies the LTE predicate on the "phase_number" field.
func PhaseNumberLTE(v float64) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldPhaseNumber, v))
}

// EngineKeyEQ applies the EQ predicate on the "engine_key" field.
func EngineKeyEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldEngineKey, v))
}

// EngineKeyNEQ applies the NEQ predicate on the "engine_key" field.
func EngineKeyNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldEngineKey, v))
}

// EngineKeyIn applies the In predicate on the "engine_key" field.
func EngineKeyIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldEngineKey, vs...))
}

// EngineKeyNotIn applies the NotIn predicate on the "engine_key" field.
func EngineKeyNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldEngineKey, vs...))
}

// EngineKeyGT applies the GT predicate on the "engine_key" field.
func EngineKeyGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldEngineKey, v))
}

// EngineKeyGTE applies the GTE predicate on the "engine_key" field.
func EngineKeyGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldEngineKey, v))
}

// EngineKeyLT applies the LT predicate on the "engine_key" field.
func EngineKeyLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldEngineKey, v))
}

// EngineKeyLTE applies the LTE predicate on the "engine_key" field.
func EngineKeyLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldEngineKey, v))
}

// EngineKeyContains applies the Contains predicate on the "engine_key" field.
func EngineKeyContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldEngineKey, v))
}

// EngineKeyHasPrefix applies the HasPrefix predicate on the "engine_key" field.
func EngineKeyHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldEngineKey, v))
}

// EngineKeyHasSuffix applies the HasSuffix predicate on the "engine_key" field.
func EngineKeyHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldEngineKey, v))
}

// EngineKeyEqualFold applies the EqualFold predicate on the "engine_key" field.
func EngineKeyEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldEngineKey, v))
}

// EngineKeyContainsFold applies the ContainsFold predicate on the "engine_key" field.
func EngineKeyContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldEngineKey, v))
}

// PassNumberEQ applies the EQ predicate on the "pass_number" field.
func PassNumberEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldPassNumber, v))
}

// PassNumberNEQ applies the NEQ predicate on the "pass_number" field.
func PassNumberNEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldPassNumber, v))
}

// PassNumberIn applies the In predicate on the "pass_number" field.
func PassNumberIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldPassNumber, vs...))
}

// PassNumberNotIn applies the NotIn predicate on the "pass_number" field.
func PassNumberNotIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldPassNumber, vs...))
}

// PassNumberGT applies the GT predicate on the "pass_number" field.
func PassNumberGT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldPassNumber, v))
}

// PassNumberGTE applies the GTE predicate on the "pass_number" field.
func PassNumberGTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldPassNumber, v))
}

// PassNumberLT applies the LT predicate on the "pass_number" field.
func PassNumberLT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldPassNumber, v))
}

// PassNumberLTE applies the LTE predicate on the "pass_number" field.
func PassNumberLTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldPassNumber, v))
}

// WorkKeyEQ applies the EQ predicate on the "work_key" field.
func WorkKeyEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldWorkKey, v))
}

// WorkKeyNEQ applies the NEQ predicate on the "work_key" field.
func WorkKeyNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldWorkKey, v))
}

// WorkKeyIn applies the In predicate on the "work_key" field.
func WorkKeyIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldWorkKey, vs...))
}

// WorkKeyNotIn applies the NotIn predicate on the "work_key" field.
func WorkKeyNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldWorkKey, vs...))
}

// WorkKeyGT applies the GT predicate on the "work_key" field.
func WorkKeyGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldWorkKey, v))
}

// WorkKeyGTE applies the GTE predicate on the "work_key" field.
func WorkKeyGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldWorkKey, v))
}

// WorkKeyLT applies the LT predicate on the "work_key" field.
func WorkKeyLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldWorkKey, v))
}

// WorkKeyLTE applies the LTE predicate on the "work_key" field.
func WorkKeyLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldWorkKey, v))
}

// WorkKeyContains applies the Contains predicate on the "work_key" field.
func WorkKeyContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldWorkKey, v))
}

// WorkKeyHasPrefix applies the HasPrefix predicate on the "work_key" field.
func WorkKeyHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldWorkKey, v))
}

// WorkKeyHasSuffix applies the HasSuffix predicate on the "work_key" field.
func WorkKeyHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldWorkKey, v))
}

// WorkKeyEqualFold applies the EqualFold predicate on the "work_key" field.
func WorkKeyEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldWorkKey, v))
}

// WorkKeyContainsFold applies the ContainsFold predicate on the "work_key" field.
func WorkKeyContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldWorkKey, v))
}

// StanceKeyEQ applies the EQ predicate on the "stance_key" field.
func StanceKeyEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldStanceKey, v))
}

// StanceKeyNEQ applies the NEQ predicate on the "stance_key" field.
func StanceKeyNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldStanceKey, v))
}

// StanceKeyIn applies the In predicate on the "stance_key" field.
func StanceKeyIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldStanceKey, vs...))
}

// StanceKeyNotIn applies the NotIn predicate on the "stance_key" field.
func StanceKeyNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldStanceKey, vs...))
}

// StanceKeyGT applies the GT predicate on the "stance_key" field.
func StanceKeyGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldStanceKey, v))
}

// StanceKeyGTE applies the GTE predicate on the "stance_key" field.
func StanceKeyGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldStanceKey, v))
}

// StanceKeyLT applies the LT predicate on the "stance_key" field.
func StanceKeyLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldStanceKey, v))
}

// StanceKeyLTE applies the LTE predicate on the "stance_key" field.
func StanceKeyLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldStanceKey, v))
}

// StanceKeyContains applies the Contains predicate on the "stance_key" field.
func StanceKeyContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldStanceKey, v))
}

// StanceKeyHasPrefix applies the HasPrefix predicate on the "stance_key" field.
func StanceKeyHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldStanceKey, v))
}

// StanceKeyHasSuffix applies the HasSuffix predicate on the "stance_key" field.
func StanceKeyHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldStanceKey, v))
}

// StanceKeyIsNil applies the IsNil predicate on the "stance_key" field.
func StanceKeyIsNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIsNull(FieldStanceKey))
}

// StanceKeyNotNil applies the NotNil predicate on the "stance_key" field.
func StanceKeyNotNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotNull(FieldStanceKey))
}

// StanceKeyEqualFold applies the EqualFold predicate on the "stance_key" field.
func StanceKeyEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldStanceKey, v))
}

// StanceKeyContainsFold applies the ContainsFold predicate on the "stance_key" field.
func StanceKeyContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldStanceKey, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldRole, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldContent, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldModelUsed, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldOutputTokens, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldContainsFold(FieldParentID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.PhaseOutput {
	return predicate.PhaseOutput(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.AnalysisJob) predicate.PhaseOutput {
	return predicate.PhaseOutput(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCacheEntries applies the HasEdge predicate on the "cache_entries" edge.
func HasCacheEntries() predicate.PhaseOutput {
	return predicate.PhaseOutput(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CacheEntriesTable, CacheEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCacheEntriesWith applies the HasEdge predicate on the "cache_entries" edge with a given conditions (other predicates).
func HasCacheEntriesWith(preds ...predicate.PresentationCache) predicate.PhaseOutput {
	return predicate.PhaseOutput(func(s *sql.Selector) {
		step := newCacheEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhaseOutput) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhaseOutput) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhaseOutput) predicate.PhaseOutput {
	return predicate.PhaseOutput(sql.NotPredicates(p))
}
