// Code generated by ent, DO NOT EDIT.

package warranty

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldOwnerID, v))
}

// SerialNumber applies equality check predicate on the "serial_number" field. It's identical to SerialNumberEQ.
func SerialNumber(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldSerialNumber, v))
}

// CoveredProduct applies equality check predicate on the "covered_product" field. It's identical to CoveredProductEQ.
func CoveredProduct(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldCoveredProduct, v))
}

// WarrantyStartDate applies equality check predicate on the "warranty_start_date" field. It's identical to WarrantyStartDateEQ.
func WarrantyStartDate(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldWarrantyStartDate, v))
}

// WarrantyEndDate applies equality check predicate on the "warranty_end_date" field. It's identical to WarrantyEndDateEQ.
func WarrantyEndDate(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldWarrantyEndDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldOwnerID, v))
}

// SerialNumberEQ applies the EQ predicate on the "serial_number" field.
func SerialNumberEQ(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldSerialNumber, v))
}

// SerialNumberNEQ applies the NEQ predicate on the "serial_number" field.
func SerialNumberNEQ(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldSerialNumber, v))
}

// SerialNumberIn applies the In predicate on the "serial_number" field.
func SerialNumberIn(vs ...string) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldSerialNumber, vs...))
}

// SerialNumberNotIn applies the NotIn predicate on the "serial_number" field.
func SerialNumberNotIn(vs ...string) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldSerialNumber, vs...))
}

// SerialNumberGT applies the GT predicate on the "serial_number" field.
func SerialNumberGT(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldSerialNumber, v))
}

// SerialNumberGTE applies the GTE predicate on the "serial_number" field.
func SerialNumberGTE(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldSerialNumber, v))
}

// SerialNumberLT applies the LT predicate on the "serial_number" field.
func SerialNumberLT(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldSerialNumber, v))
}

// SerialNumberLTE applies the LTE predicate on the "serial_number" field.
func SerialNumberLTE(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldSerialNumber, v))
}

// SerialNumberContains applies the Contains predicate on the "serial_number" field.
func SerialNumberContains(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldContains(FieldSerialNumber, v))
}

// SerialNumberHasPrefix applies the HasPrefix predicate on the "serial_number" field.
func SerialNumberHasPrefix(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldHasPrefix(FieldSerialNumber, v))
}

// SerialNumberHasSuffix applies the HasSuffix predicate on the "serial_number" field.
func SerialNumberHasSuffix(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldHasSuffix(FieldSerialNumber, v))
}

// SerialNumberIsNil applies the IsNil predicate on the "serial_number" field.
func SerialNumberIsNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldIsNull(FieldSerialNumber))
}

// SerialNumberNotNil applies the NotNil predicate on the "serial_number" field.
func SerialNumberNotNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldNotNull(FieldSerialNumber))
}

// SerialNumberEqualFold applies the EqualFold predicate on the "serial_number" field.
func SerialNumberEqualFold(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEqualFold(FieldSerialNumber, v))
}

// SerialNumberContainsFold applies the ContainsFold predicate on the "serial_number" field.
func SerialNumberContainsFold(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldContainsFold(FieldSerialNumber, v))
}

// CoveredProductEQ applies the EQ predicate on the "covered_product" field.
func CoveredProductEQ(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldCoveredProduct, v))
}

// CoveredProductNEQ applies the NEQ predicate on the "covered_product" field.
func CoveredProductNEQ(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldCoveredProduct, v))
}

// CoveredProductIn applies the In predicate on the "covered_product" field.
func CoveredProductIn(vs ...string) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldCoveredProduct, vs...))
}

// CoveredProductNotIn applies the NotIn predicate on the "covered_product" field.
func CoveredProductNotIn(vs ...string) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldCoveredProduct, vs...))
}

// CoveredProductGT applies the GT predicate on the "covered_product" field.
func CoveredProductGT(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldCoveredProduct, v))
}

// CoveredProductGTE applies the GTE predicate on the "covered_product" field.
func CoveredProductGTE(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldCoveredProduct, v))
}

// CoveredProductLT applies the LT predicate on the "covered_product" field.
func CoveredProductLT(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldCoveredProduct, v))
}

// CoveredProductLTE applies the LTE predicate on the "covered_product" field.
func CoveredProductLTE(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldCoveredProduct, v))
}

// CoveredProductContains applies the Contains predicate on the "covered_product" field.
func CoveredProductContains(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldContains(FieldCoveredProduct, v))
}

// CoveredProductHasPrefix applies the HasPrefix predicate on the "covered_product" field.
func CoveredProductHasPrefix(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldHasPrefix(FieldCoveredProduct, v))
}

// CoveredProductHasSuffix applies the HasSuffix predicate on the "covered_product" field.
func CoveredProductHasSuffix(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldHasSuffix(FieldCoveredProduct, v))
}

// CoveredProductIsNil applies the IsNil predicate on the "covered_product" field.
func CoveredProductIsNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldIsNull(FieldCoveredProduct))
}

// CoveredProductNotNil applies the NotNil predicate on the "covered_product" field.
func CoveredProductNotNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldNotNull(FieldCoveredProduct))
}

// CoveredProductEqualFold applies the EqualFold predicate on the "covered_product" field.
func CoveredProductEqualFold(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldEqualFold(FieldCoveredProduct, v))
}

// CoveredProductContainsFold applies the ContainsFold predicate on the "covered_product" field.
func CoveredProductContainsFold(v string) predicate.Warranty {
	return predicate.Warranty(sql.FieldContainsFold(FieldCoveredProduct, v))
}

// WarrantyStartDateEQ applies the EQ predicate on the "warranty_start_date" field.
func WarrantyStartDateEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldWarrantyStartDate, v))
}

// WarrantyStartDateNEQ applies the NEQ predicate on the "warranty_start_date" field.
func WarrantyStartDateNEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldWarrantyStartDate, v))
}

// WarrantyStartDateIn applies the In predicate on the "warranty_start_date" field.
func WarrantyStartDateIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldWarrantyStartDate, vs...))
}

// WarrantyStartDateNotIn applies the NotIn predicate on the "warranty_start_date" field.
func WarrantyStartDateNotIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldWarrantyStartDate, vs...))
}

// WarrantyStartDateGT applies the GT predicate on the "warranty_start_date" field.
func WarrantyStartDateGT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldWarrantyStartDate, v))
}

// WarrantyStartDateGTE applies the GTE predicate on the "warranty_start_date" field.
func WarrantyStartDateGTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldWarrantyStartDate, v))
}

// WarrantyStartDateLT applies the LT predicate on the "warranty_start_date" field.
func WarrantyStartDateLT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldWarrantyStartDate, v))
}

// WarrantyStartDateLTE applies the LTE predicate on the "warranty_start_date" field.
func WarrantyStartDateLTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldWarrantyStartDate, v))
}

// WarrantyStartDateIsNil applies the IsNil predicate on the "warranty_start_date" field.
func WarrantyStartDateIsNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldIsNull(FieldWarrantyStartDate))
}

// WarrantyStartDateNotNil applies the NotNil predicate on the "warranty_start_date" field.
func WarrantyStartDateNotNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldNotNull(FieldWarrantyStartDate))
}

// WarrantyEndDateEQ applies the EQ predicate on the "warranty_end_date" field.
func WarrantyEndDateEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldWarrantyEndDate, v))
}

// WarrantyEndDateNEQ applies the NEQ predicate on the "warranty_end_date" field.
func WarrantyEndDateNEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldWarrantyEndDate, v))
}

// WarrantyEndDateIn applies the In predicate on the "warranty_end_date" field.
func WarrantyEndDateIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldWarrantyEndDate, vs...))
}

// WarrantyEndDateNotIn applies the NotIn predicate on the "warranty_end_date" field.
func WarrantyEndDateNotIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldWarrantyEndDate, vs...))
}

// WarrantyEndDateGT applies the GT predicate on the "warranty_end_date" field.
func WarrantyEndDateGT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldWarrantyEndDate, v))
}

// WarrantyEndDateGTE applies the GTE predicate on the "warranty_end_date" field.
func WarrantyEndDateGTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldWarrantyEndDate, v))
}

// WarrantyEndDateLT applies the LT predicate on the "warranty_end_date" field.
func WarrantyEndDateLT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldWarrantyEndDate, v))
}

// WarrantyEndDateLTE applies the LTE predicate on the "warranty_end_date" field.
func WarrantyEndDateLTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldWarrantyEndDate, v))
}

// WarrantyEndDateIsNil applies the IsNil predicate on the "warranty_end_date" field.
func WarrantyEndDateIsNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldIsNull(FieldWarrantyEndDate))
}

// WarrantyEndDateNotNil applies the NotNil predicate on the "warranty_end_date" field.
func WarrantyEndDateNotNil() predicate.Warranty {
	return predicate.Warranty(sql.FieldNotNull(FieldWarrantyEndDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Warranty {
	return predicate.Warranty(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Warranty) predicate.Warranty {
	return predicate.Warranty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Warranty) predicate.Warranty {
	return predicate.Warranty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Warranty) predicate.Warranty {
	return predicate.Warranty(sql.NotPredicates(p))
}
