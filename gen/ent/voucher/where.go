// Code generated by ent, DO NOT EDIT.

package voucher

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldOwnerID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldCode, v))
}

// VoucherType applies equality check predicate on the "voucher_type" field. It's identical to VoucherTypeEQ.
func VoucherType(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldVoucherType, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldValue, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldExpiryDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldOwnerID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldHasSuffix(FieldCode, v))
}

// CodeIsNil applies the IsNil predicate on the "code" field.
func CodeIsNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldIsNull(FieldCode))
}

// CodeNotNil applies the NotNil predicate on the "code" field.
func CodeNotNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldNotNull(FieldCode))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldContainsFold(FieldCode, v))
}

// VoucherTypeEQ applies the EQ predicate on the "voucher_type" field.
func VoucherTypeEQ(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldVoucherType, v))
}

// VoucherTypeNEQ applies the NEQ predicate on the "voucher_type" field.
func VoucherTypeNEQ(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldVoucherType, v))
}

// VoucherTypeIn applies the In predicate on the "voucher_type" field.
func VoucherTypeIn(vs ...string) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldVoucherType, vs...))
}

// VoucherTypeNotIn applies the NotIn predicate on the "voucher_type" field.
func VoucherTypeNotIn(vs ...string) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldVoucherType, vs...))
}

// VoucherTypeGT applies the GT predicate on the "voucher_type" field.
func VoucherTypeGT(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldVoucherType, v))
}

// VoucherTypeGTE applies the GTE predicate on the "voucher_type" field.
func VoucherTypeGTE(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldVoucherType, v))
}

// VoucherTypeLT applies the LT predicate on the "voucher_type" field.
func VoucherTypeLT(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldVoucherType, v))
}

// VoucherTypeLTE applies the LTE predicate on the "voucher_type" field.
func VoucherTypeLTE(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldVoucherType, v))
}

// VoucherTypeContains applies the Contains predicate on the "voucher_type" field.
func VoucherTypeContains(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldContains(FieldVoucherType, v))
}

// VoucherTypeHasPrefix applies the HasPrefix predicate on the "voucher_type" field.
func VoucherTypeHasPrefix(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldHasPrefix(FieldVoucherType, v))
}

// VoucherTypeHasSuffix applies the HasSuffix predicate on the "voucher_type" field.
func VoucherTypeHasSuffix(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldHasSuffix(FieldVoucherType, v))
}

// VoucherTypeIsNil applies the IsNil predicate on the "voucher_type" field.
func VoucherTypeIsNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldIsNull(FieldVoucherType))
}

// VoucherTypeNotNil applies the NotNil predicate on the "voucher_type" field.
func VoucherTypeNotNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldNotNull(FieldVoucherType))
}

// VoucherTypeEqualFold applies the EqualFold predicate on the "voucher_type" field.
func VoucherTypeEqualFold(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldEqualFold(FieldVoucherType, v))
}

// VoucherTypeContainsFold applies the ContainsFold predicate on the "voucher_type" field.
func VoucherTypeContainsFold(v string) predicate.Voucher {
	return predicate.Voucher(sql.FieldContainsFold(FieldVoucherType, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldNotNull(FieldValue))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.Voucher {
	return predicate.Voucher(sql.FieldNotNull(FieldExpiryDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Voucher {
	return predicate.Voucher(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Voucher) predicate.Voucher {
	return predicate.Voucher(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Voucher) predicate.Voucher {
	return predicate.Voucher(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Voucher) predicate.Voucher {
	return predicate.Voucher(sql.NotPredicates(p))
}
