// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docintel/gen/ent/bankstatement"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// BankStatementUpdate is the builder for updating BankStatement entities.
type BankStatementUpdate struct {
	config
	hooks    []Hook
	mutation *BankStatementMutation
}

// Where appends a list predicates to the BankStatementUpdate builder.
func (_u *BankStatementUpdate) Where(ps ...predicate.BankStatement) *BankStatementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *BankStatementUpdate) SetBankName(v string) *BankStatementUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillableBankName(v *string) *BankStatementUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *BankStatementUpdate) ClearBankName() *BankStatementUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *BankStatementUpdate) SetAccountNumber(v string) *BankStatementUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillableAccountNumber(v *string) *BankStatementUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *BankStatementUpdate) ClearAccountNumber() *BankStatementUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetIban sets the "iban" field.
func (_u *BankStatementUpdate) SetIban(v string) *BankStatementUpdate {
	_u.mutation.SetIban(v)
	return _u
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillableIban(v *string) *BankStatementUpdate {
	if v != nil {
		_u.SetIban(*v)
	}
	return _u
}

// ClearIban clears the value of the "iban" field.
func (_u *BankStatementUpdate) ClearIban() *BankStatementUpdate {
	_u.mutation.ClearIban()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *BankStatementUpdate) SetPeriodStart(v time.Time) *BankStatementUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillablePeriodStart(v *time.Time) *BankStatementUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *BankStatementUpdate) ClearPeriodStart() *BankStatementUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *BankStatementUpdate) SetPeriodEnd(v time.Time) *BankStatementUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillablePeriodEnd(v *time.Time) *BankStatementUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *BankStatementUpdate) ClearPeriodEnd() *BankStatementUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetOpeningBalance sets the "opening_balance" field.
func (_u *BankStatementUpdate) SetOpeningBalance(v float64) *BankStatementUpdate {
	_u.mutation.ResetOpeningBalance()
	_u.mutation.SetOpeningBalance(v)
	return _u
}

// SetNillableOpeningBalance sets the "opening_balance" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillableOpeningBalance(v *float64) *BankStatementUpdate {
	if v != nil {
		_u.SetOpeningBalance(*v)
	}
	return _u
}

// AddOpeningBalance adds value to the "opening_balance" field.
func (_u *BankStatementUpdate) AddOpeningBalance(v float64) *BankStatementUpdate {
	_u.mutation.AddOpeningBalance(v)
	return _u
}

// ClearOpeningBalance clears the value of the "opening_balance" field.
func (_u *BankStatementUpdate) ClearOpeningBalance() *BankStatementUpdate {
	_u.mutation.ClearOpeningBalance()
	return _u
}

// SetClosingBalance sets the "closing_balance" field.
func (_u *BankStatementUpdate) SetClosingBalance(v float64) *BankStatementUpdate {
	_u.mutation.ResetClosingBalance()
	_u.mutation.SetClosingBalance(v)
	return _u
}

// SetNillableClosingBalance sets the "closing_balance" field if the given value is not nil.
func (_u *BankStatementUpdate) SetNillableClosingBalance(v *float64) *BankStatementUpdate {
	if v != nil {
		_u.SetClosingBalance(*v)
	}
	return _u
}

// AddClosingBalance adds value to the "closing_balance" field.
func (_u *BankStatementUpdate) AddClosingBalance(v float64) *BankStatementUpdate {
	_u.mutation.AddClosingBalance(v)
	return _u
}

// ClearClosingBalance clears the value of the "closing_balance" field.
func (_u *BankStatementUpdate) ClearClosingBalance() *BankStatementUpdate {
	_u.mutation.ClearClosingBalance()
	return _u
}

// Mutation returns the BankStatementMutation object of the builder.
func (_u *BankStatementUpdate) Mutation() *BankStatementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BankStatementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankStatementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BankStatementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankStatementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BankStatementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(bankstatement.Table, bankstatement.Columns, sqlgraph.NewFieldSpec(bankstatement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bankstatement.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(bankstatement.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(bankstatement.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(bankstatement.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Iban(); ok {
		_spec.SetField(bankstatement.FieldIban, field.TypeString, value)
	}
	if _u.mutation.IbanCleared() {
		_spec.ClearField(bankstatement.FieldIban, field.TypeString)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(bankstatement.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(bankstatement.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(bankstatement.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(bankstatement.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.OpeningBalance(); ok {
		_spec.SetField(bankstatement.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOpeningBalance(); ok {
		_spec.AddField(bankstatement.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if _u.mutation.OpeningBalanceCleared() {
		_spec.ClearField(bankstatement.FieldOpeningBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClosingBalance(); ok {
		_spec.SetField(bankstatement.FieldClosingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClosingBalance(); ok {
		_spec.AddField(bankstatement.FieldClosingBalance, field.TypeFloat64, value)
	}
	if _u.mutation.ClosingBalanceCleared() {
		_spec.ClearField(bankstatement.FieldClosingBalance, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BankStatementUpdateOne is the builder for updating a single BankStatement entity.
type BankStatementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BankStatementMutation
}

// SetBankName sets the "bank_name" field.
func (_u *BankStatementUpdateOne) SetBankName(v string) *BankStatementUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillableBankName(v *string) *BankStatementUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *BankStatementUpdateOne) ClearBankName() *BankStatementUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *BankStatementUpdateOne) SetAccountNumber(v string) *BankStatementUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillableAccountNumber(v *string) *BankStatementUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *BankStatementUpdateOne) ClearAccountNumber() *BankStatementUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetIban sets the "iban" field.
func (_u *BankStatementUpdateOne) SetIban(v string) *BankStatementUpdateOne {
	_u.mutation.SetIban(v)
	return _u
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillableIban(v *string) *BankStatementUpdateOne {
	if v != nil {
		_u.SetIban(*v)
	}
	return _u
}

// ClearIban clears the value of the "iban" field.
func (_u *BankStatementUpdateOne) ClearIban() *BankStatementUpdateOne {
	_u.mutation.ClearIban()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *BankStatementUpdateOne) SetPeriodStart(v time.Time) *BankStatementUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillablePeriodStart(v *time.Time) *BankStatementUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *BankStatementUpdateOne) ClearPeriodStart() *BankStatementUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *BankStatementUpdateOne) SetPeriodEnd(v time.Time) *BankStatementUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillablePeriodEnd(v *time.Time) *BankStatementUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *BankStatementUpdateOne) ClearPeriodEnd() *BankStatementUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetOpeningBalance sets the "opening_balance" field.
func (_u *BankStatementUpdateOne) SetOpeningBalance(v float64) *BankStatementUpdateOne {
	_u.mutation.ResetOpeningBalance()
	_u.mutation.SetOpeningBalance(v)
	return _u
}

// SetNillableOpeningBalance sets the "opening_balance" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillableOpeningBalance(v *float64) *BankStatementUpdateOne {
	if v != nil {
		_u.SetOpeningBalance(*v)
	}
	return _u
}

// AddOpeningBalance adds value to the "opening_balance" field.
func (_u *BankStatementUpdateOne) AddOpeningBalance(v float64) *BankStatementUpdateOne {
	_u.mutation.AddOpeningBalance(v)
	return _u
}

// ClearOpeningBalance clears the value of the "opening_balance" field.
func (_u *BankStatementUpdateOne) ClearOpeningBalance() *BankStatementUpdateOne {
	_u.mutation.ClearOpeningBalance()
	return _u
}

// SetClosingBalance sets the "closing_balance" field.
func (_u *BankStatementUpdateOne) SetClosingBalance(v float64) *BankStatementUpdateOne {
	_u.mutation.ResetClosingBalance()
	_u.mutation.SetClosingBalance(v)
	return _u
}

// SetNillableClosingBalance sets the "closing_balance" field if the given value is not nil.
func (_u *BankStatementUpdateOne) SetNillableClosingBalance(v *float64) *BankStatementUpdateOne {
	if v != nil {
		_u.SetClosingBalance(*v)
	}
	return _u
}

// AddClosingBalance adds value to the "closing_balance" field.
func (_u *BankStatementUpdateOne) AddClosingBalance(v float64) *BankStatementUpdateOne {
	_u.mutation.AddClosingBalance(v)
	return _u
}

// ClearClosingBalance clears the value of the "closing_balance" field.
func (_u *BankStatementUpdateOne) ClearClosingBalance() *BankStatementUpdateOne {
	_u.mutation.ClearClosingBalance()
	return _u
}

// Mutation returns the BankStatementMutation object of the builder.
func (_u *BankStatementUpdateOne) Mutation() *BankStatementMutation {
	return _u.mutation
}

// Where appends a list predicates to the BankStatementUpdate builder.
func (_u *BankStatementUpdateOne) Where(ps ...predicate.BankStatement) *BankStatementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BankStatementUpdateOne) Select(field string, fields ...string) *BankStatementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BankStatement entity.
func (_u *BankStatementUpdateOne) Save(ctx context.Context) (*BankStatement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankStatementUpdateOne) SaveX(ctx context.Context) *BankStatement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BankStatementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankStatementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BankStatementUpdateOne) sqlSave(ctx context.Context) (_node *BankStatement, err error) {
	_spec := sqlgraph.NewUpdateSpec(bankstatement.Table, bankstatement.Columns, sqlgraph.NewFieldSpec(bankstatement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BankStatement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bankstatement.FieldID)
		for _, f := range fields {
			if !bankstatement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bankstatement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bankstatement.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(bankstatement.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(bankstatement.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(bankstatement.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Iban(); ok {
		_spec.SetField(bankstatement.FieldIban, field.TypeString, value)
	}
	if _u.mutation.IbanCleared() {
		_spec.ClearField(bankstatement.FieldIban, field.TypeString)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(bankstatement.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(bankstatement.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(bankstatement.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(bankstatement.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.OpeningBalance(); ok {
		_spec.SetField(bankstatement.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOpeningBalance(); ok {
		_spec.AddField(bankstatement.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if _u.mutation.OpeningBalanceCleared() {
		_spec.ClearField(bankstatement.FieldOpeningBalance, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClosingBalance(); ok {
		_spec.SetField(bankstatement.FieldClosingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClosingBalance(); ok {
		_spec.AddField(bankstatement.FieldClosingBalance, field.TypeFloat64, value)
	}
	if _u.mutation.ClosingBalanceCleared() {
		_spec.ClearField(bankstatement.FieldClosingBalance, field.TypeFloat64)
	}
	_node = &BankStatement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankstatement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
