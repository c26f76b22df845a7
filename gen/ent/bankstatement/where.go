// Code generated by ent, DO NOT EDIT.

package bankstatement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldOwnerID, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldBankName, v))
}

// AccountNumber applies equality check predicate on the "account_number" field. It's identical to AccountNumberEQ.
func AccountNumber(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldAccountNumber, v))
}

// Iban applies equality check predicate on the "iban" field. It's identical to IbanEQ.
func Iban(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldIban, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldPeriodEnd, v))
}

// OpeningBalance applies equality check predicate on the "opening_balance" field. It's identical to OpeningBalanceEQ.
func OpeningBalance(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldOpeningBalance, v))
}

// ClosingBalance applies equality check predicate on the "closing_balance" field. It's identical to ClosingBalanceEQ.
func ClosingBalance(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldClosingBalance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldOwnerID, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContainsFold(FieldBankName, v))
}

// AccountNumberEQ applies the EQ predicate on the "account_number" field.
func AccountNumberEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldAccountNumber, v))
}

// AccountNumberNEQ applies the NEQ predicate on the "account_number" field.
func AccountNumberNEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldAccountNumber, v))
}

// AccountNumberIn applies the In predicate on the "account_number" field.
func AccountNumberIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldAccountNumber, vs...))
}

// AccountNumberNotIn applies the NotIn predicate on the "account_number" field.
func AccountNumberNotIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldAccountNumber, vs...))
}

// AccountNumberGT applies the GT predicate on the "account_number" field.
func AccountNumberGT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldAccountNumber, v))
}

// AccountNumberGTE applies the GTE predicate on the "account_number" field.
func AccountNumberGTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldAccountNumber, v))
}

// AccountNumberLT applies the LT predicate on the "account_number" field.
func AccountNumberLT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldAccountNumber, v))
}

// AccountNumberLTE applies the LTE predicate on the "account_number" field.
func AccountNumberLTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldAccountNumber, v))
}

// AccountNumberContains applies the Contains predicate on the "account_number" field.
func AccountNumberContains(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContains(FieldAccountNumber, v))
}

// AccountNumberHasPrefix applies the HasPrefix predicate on the "account_number" field.
func AccountNumberHasPrefix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasPrefix(FieldAccountNumber, v))
}

// AccountNumberHasSuffix applies the HasSuffix predicate on the "account_number" field.
func AccountNumberHasSuffix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasSuffix(FieldAccountNumber, v))
}

// AccountNumberIsNil applies the IsNil predicate on the "account_number" field.
func AccountNumberIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldAccountNumber))
}

// AccountNumberNotNil applies the NotNil predicate on the "account_number" field.
func AccountNumberNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldAccountNumber))
}

// AccountNumberEqualFold applies the EqualFold predicate on the "account_number" field.
func AccountNumberEqualFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEqualFold(FieldAccountNumber, v))
}

// AccountNumberContainsFold applies the ContainsFold predicate on the "account_number" field.
func AccountNumberContainsFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContainsFold(FieldAccountNumber, v))
}

// IbanEQ applies the EQ predicate on the "iban" field.
func IbanEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldIban, v))
}

// IbanNEQ applies the NEQ predicate on the "iban" field.
func IbanNEQ(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldIban, v))
}

// IbanIn applies the In predicate on the "iban" field.
func IbanIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldIban, vs...))
}

// IbanNotIn applies the NotIn predicate on the "iban" field.
func IbanNotIn(vs ...string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldIban, vs...))
}

// IbanGT applies the GT predicate on the "iban" field.
func IbanGT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldIban, v))
}

// IbanGTE applies the GTE predicate on the "iban" field.
func IbanGTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldIban, v))
}

// IbanLT applies the LT predicate on the "iban" field.
func IbanLT(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldIban, v))
}

// IbanLTE applies the LTE predicate on the "iban" field.
func IbanLTE(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldIban, v))
}

// IbanContains applies the Contains predicate on the "iban" field.
func IbanContains(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContains(FieldIban, v))
}

// IbanHasPrefix applies the HasPrefix predicate on the "iban" field.
func IbanHasPrefix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasPrefix(FieldIban, v))
}

// IbanHasSuffix applies the HasSuffix predicate on the "iban" field.
func IbanHasSuffix(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldHasSuffix(FieldIban, v))
}

// IbanIsNil applies the IsNil predicate on the "iban" field.
func IbanIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldIban))
}

// IbanNotNil applies the NotNil predicate on the "iban" field.
func IbanNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldIban))
}

// IbanEqualFold applies the EqualFold predicate on the "iban" field.
func IbanEqualFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEqualFold(FieldIban, v))
}

// IbanContainsFold applies the ContainsFold predicate on the "iban" field.
func IbanContainsFold(v string) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldContainsFold(FieldIban, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldPeriodEnd))
}

// OpeningBalanceEQ applies the EQ predicate on the "opening_balance" field.
func OpeningBalanceEQ(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldOpeningBalance, v))
}

// OpeningBalanceNEQ applies the NEQ predicate on the "opening_balance" field.
func OpeningBalanceNEQ(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldOpeningBalance, v))
}

// OpeningBalanceIn applies the In predicate on the "opening_balance" field.
func OpeningBalanceIn(vs ...float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldOpeningBalance, vs...))
}

// OpeningBalanceNotIn applies the NotIn predicate on the "opening_balance" field.
func OpeningBalanceNotIn(vs ...float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldOpeningBalance, vs...))
}

// OpeningBalanceGT applies the GT predicate on the "opening_balance" field.
func OpeningBalanceGT(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldOpeningBalance, v))
}

// OpeningBalanceGTE applies the GTE predicate on the "opening_balance" field.
func OpeningBalanceGTE(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldOpeningBalance, v))
}

// OpeningBalanceLT applies the LT predicate on the "opening_balance" field.
func OpeningBalanceLT(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldOpeningBalance, v))
}

// OpeningBalanceLTE applies the LTE predicate on the "opening_balance" field.
func OpeningBalanceLTE(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldOpeningBalance, v))
}

// OpeningBalanceIsNil applies the IsNil predicate on the "opening_balance" field.
func OpeningBalanceIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldOpeningBalance))
}

// OpeningBalanceNotNil applies the NotNil predicate on the "opening_balance" field.
func OpeningBalanceNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldOpeningBalance))
}

// ClosingBalanceEQ applies the EQ predicate on the "closing_balance" field.
func ClosingBalanceEQ(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldClosingBalance, v))
}

// ClosingBalanceNEQ applies the NEQ predicate on the "closing_balance" field.
func ClosingBalanceNEQ(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldClosingBalance, v))
}

// ClosingBalanceIn applies the In predicate on the "closing_balance" field.
func ClosingBalanceIn(vs ...float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldClosingBalance, vs...))
}

// ClosingBalanceNotIn applies the NotIn predicate on the "closing_balance" field.
func ClosingBalanceNotIn(vs ...float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldClosingBalance, vs...))
}

// ClosingBalanceGT applies the GT predicate on the "closing_balance" field.
func ClosingBalanceGT(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldClosingBalance, v))
}

// ClosingBalanceGTE applies the GTE predicate on the "closing_balance" field.
func ClosingBalanceGTE(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldClosingBalance, v))
}

// ClosingBalanceLT applies the LT predicate on the "closing_balance" field.
func ClosingBalanceLT(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldClosingBalance, v))
}

// ClosingBalanceLTE applies the LTE predicate on the "closing_balance" field.
func ClosingBalanceLTE(v float64) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldClosingBalance, v))
}

// ClosingBalanceIsNil applies the IsNil predicate on the "closing_balance" field.
func ClosingBalanceIsNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIsNull(FieldClosingBalance))
}

// ClosingBalanceNotNil applies the NotNil predicate on the "closing_balance" field.
func ClosingBalanceNotNil() predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotNull(FieldClosingBalance))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BankStatement {
	return predicate.BankStatement(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BankStatement) predicate.BankStatement {
	return predicate.BankStatement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BankStatement) predicate.BankStatement {
	return predicate.BankStatement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BankStatement) predicate.BankStatement {
	return predicate.BankStatement(sql.NotPredicates(p))
}
