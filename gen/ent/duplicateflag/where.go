// Code generated by ent, DO NOT EDIT.

package duplicateflag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldOwnerID, v))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldFileID, v))
}

// DuplicateFileID applies equality check predicate on the "duplicate_file_id" field. It's identical to DuplicateFileIDEQ.
func DuplicateFileID(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldDuplicateFileID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldReason, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldStatus, v))
}

// ResolvedFileID applies equality check predicate on the "resolved_file_id" field. It's identical to ResolvedFileIDEQ.
func ResolvedFileID(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldResolvedFileID, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldOwnerID, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldFileID, vs...))
}

// FileIDGT applies the GT predicate on the "file_id" field.
func FileIDGT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldFileID, v))
}

// FileIDGTE applies the GTE predicate on the "file_id" field.
func FileIDGTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldFileID, v))
}

// FileIDLT applies the LT predicate on the "file_id" field.
func FileIDLT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldFileID, v))
}

// FileIDLTE applies the LTE predicate on the "file_id" field.
func FileIDLTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldFileID, v))
}

// DuplicateFileIDEQ applies the EQ predicate on the "duplicate_file_id" field.
func DuplicateFileIDEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldDuplicateFileID, v))
}

// DuplicateFileIDNEQ applies the NEQ predicate on the "duplicate_file_id" field.
func DuplicateFileIDNEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldDuplicateFileID, v))
}

// DuplicateFileIDIn applies the In predicate on the "duplicate_file_id" field.
func DuplicateFileIDIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldDuplicateFileID, vs...))
}

// DuplicateFileIDNotIn applies the NotIn predicate on the "duplicate_file_id" field.
func DuplicateFileIDNotIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldDuplicateFileID, vs...))
}

// DuplicateFileIDGT applies the GT predicate on the "duplicate_file_id" field.
func DuplicateFileIDGT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldDuplicateFileID, v))
}

// DuplicateFileIDGTE applies the GTE predicate on the "duplicate_file_id" field.
func DuplicateFileIDGTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldDuplicateFileID, v))
}

// DuplicateFileIDLT applies the LT predicate on the "duplicate_file_id" field.
func DuplicateFileIDLT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldDuplicateFileID, v))
}

// DuplicateFileIDLTE applies the LTE predicate on the "duplicate_file_id" field.
func DuplicateFileIDLTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldDuplicateFileID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldContainsFold(FieldReason, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldContainsFold(FieldStatus, v))
}

// ResolvedFileIDEQ applies the EQ predicate on the "resolved_file_id" field.
func ResolvedFileIDEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldResolvedFileID, v))
}

// ResolvedFileIDNEQ applies the NEQ predicate on the "resolved_file_id" field.
func ResolvedFileIDNEQ(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldResolvedFileID, v))
}

// ResolvedFileIDIn applies the In predicate on the "resolved_file_id" field.
func ResolvedFileIDIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldResolvedFileID, vs...))
}

// ResolvedFileIDNotIn applies the NotIn predicate on the "resolved_file_id" field.
func ResolvedFileIDNotIn(vs ...uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldResolvedFileID, vs...))
}

// ResolvedFileIDGT applies the GT predicate on the "resolved_file_id" field.
func ResolvedFileIDGT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldResolvedFileID, v))
}

// ResolvedFileIDGTE applies the GTE predicate on the "resolved_file_id" field.
func ResolvedFileIDGTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldResolvedFileID, v))
}

// ResolvedFileIDLT applies the LT predicate on the "resolved_file_id" field.
func ResolvedFileIDLT(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldResolvedFileID, v))
}

// ResolvedFileIDLTE applies the LTE predicate on the "resolved_file_id" field.
func ResolvedFileIDLTE(v uuid.UUID) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldResolvedFileID, v))
}

// ResolvedFileIDIsNil applies the IsNil predicate on the "resolved_file_id" field.
func ResolvedFileIDIsNil() predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIsNull(FieldResolvedFileID))
}

// ResolvedFileIDNotNil applies the NotNil predicate on the "resolved_file_id" field.
func ResolvedFileIDNotNil() predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotNull(FieldResolvedFileID))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DuplicateFlag) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DuplicateFlag) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DuplicateFlag) predicate.DuplicateFlag {
	return predicate.DuplicateFlag(sql.NotPredicates(p))
}
