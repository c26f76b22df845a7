// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOwnerID, v))
}

// ContractNumber applies equality check predicate on the "contract_number" field. It's identical to ContractNumberEQ.
func ContractNumber(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// TerminationDate applies equality check predicate on the "termination_date" field. It's identical to TerminationDateEQ.
func TerminationDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTerminationDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldOwnerID, v))
}

// ContractNumberEQ applies the EQ predicate on the "contract_number" field.
func ContractNumberEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNumber, v))
}

// ContractNumberNEQ applies the NEQ predicate on the "contract_number" field.
func ContractNumberNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractNumber, v))
}

// ContractNumberIn applies the In predicate on the "contract_number" field.
func ContractNumberIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractNumber, vs...))
}

// ContractNumberNotIn applies the NotIn predicate on the "contract_number" field.
func ContractNumberNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractNumber, vs...))
}

// ContractNumberGT applies the GT predicate on the "contract_number" field.
func ContractNumberGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractNumber, v))
}

// ContractNumberGTE applies the GTE predicate on the "contract_number" field.
func ContractNumberGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractNumber, v))
}

// ContractNumberLT applies the LT predicate on the "contract_number" field.
func ContractNumberLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractNumber, v))
}

// ContractNumberLTE applies the LTE predicate on the "contract_number" field.
func ContractNumberLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractNumber, v))
}

// ContractNumberContains applies the Contains predicate on the "contract_number" field.
func ContractNumberContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractNumber, v))
}

// ContractNumberHasPrefix applies the HasPrefix predicate on the "contract_number" field.
func ContractNumberHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractNumber, v))
}

// ContractNumberHasSuffix applies the HasSuffix predicate on the "contract_number" field.
func ContractNumberHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractNumber, v))
}

// ContractNumberIsNil applies the IsNil predicate on the "contract_number" field.
func ContractNumberIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractNumber))
}

// ContractNumberNotNil applies the NotNil predicate on the "contract_number" field.
func ContractNumberNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractNumber))
}

// ContractNumberEqualFold applies the EqualFold predicate on the "contract_number" field.
func ContractNumberEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractNumber, v))
}

// ContractNumberContainsFold applies the ContainsFold predicate on the "contract_number" field.
func ContractNumberContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractNumber, v))
}

// PartiesIsNil applies the IsNil predicate on the "parties" field.
func PartiesIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldParties))
}

// PartiesNotNil applies the NotNil predicate on the "parties" field.
func PartiesNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldParties))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEffectiveDate))
}

// TerminationDateEQ applies the EQ predicate on the "termination_date" field.
func TerminationDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTerminationDate, v))
}

// TerminationDateNEQ applies the NEQ predicate on the "termination_date" field.
func TerminationDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTerminationDate, v))
}

// TerminationDateIn applies the In predicate on the "termination_date" field.
func TerminationDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTerminationDate, vs...))
}

// TerminationDateNotIn applies the NotIn predicate on the "termination_date" field.
func TerminationDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTerminationDate, vs...))
}

// TerminationDateGT applies the GT predicate on the "termination_date" field.
func TerminationDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTerminationDate, v))
}

// TerminationDateGTE applies the GTE predicate on the "termination_date" field.
func TerminationDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTerminationDate, v))
}

// TerminationDateLT applies the LT predicate on the "termination_date" field.
func TerminationDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTerminationDate, v))
}

// TerminationDateLTE applies the LTE predicate on the "termination_date" field.
func TerminationDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTerminationDate, v))
}

// TerminationDateIsNil applies the IsNil predicate on the "termination_date" field.
func TerminationDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTerminationDate))
}

// TerminationDateNotNil applies the NotNil predicate on the "termination_date" field.
func TerminationDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTerminationDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
