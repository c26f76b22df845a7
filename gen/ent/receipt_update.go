// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
	"github.com/joseph-ayodele/docintel/gen/ent/receipt"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptUpdate) SetMerchantName(v string) *ReceiptUpdate {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableMerchantName(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// SetReceiptNumber sets the "receipt_number" field.
func (_u *ReceiptUpdate) SetReceiptNumber(v string) *ReceiptUpdate {
	_u.mutation.SetReceiptNumber(v)
	return _u
}

// SetNillableReceiptNumber sets the "receipt_number" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableReceiptNumber(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetReceiptNumber(*v)
	}
	return _u
}

// ClearReceiptNumber clears the value of the "receipt_number" field.
func (_u *ReceiptUpdate) ClearReceiptNumber() *ReceiptUpdate {
	_u.mutation.ClearReceiptNumber()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdate) SetTxDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTxDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// ClearTxDate clears the value of the "tx_date" field.
func (_u *ReceiptUpdate) ClearTxDate() *ReceiptUpdate {
	_u.mutation.ClearTxDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdate) SetSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSubtotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdate) AddSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptUpdate) ClearSubtotal() *ReceiptUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdate) SetTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTaxAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdate) AddTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdate) ClearTaxAmount() *ReceiptUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptUpdate) SetTotalAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ReceiptUpdate) AddTotalAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptUpdate) ClearTotalAmount() *ReceiptUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetTotalDiscount sets the "total_discount" field.
func (_u *ReceiptUpdate) SetTotalDiscount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotalDiscount()
	_u.mutation.SetTotalDiscount(v)
	return _u
}

// SetNillableTotalDiscount sets the "total_discount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalDiscount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalDiscount(*v)
	}
	return _u
}

// AddTotalDiscount adds value to the "total_discount" field.
func (_u *ReceiptUpdate) AddTotalDiscount(v float64) *ReceiptUpdate {
	_u.mutation.AddTotalDiscount(v)
	return _u
}

// ClearTotalDiscount clears the value of the "total_discount" field.
func (_u *ReceiptUpdate) ClearTotalDiscount() *ReceiptUpdate {
	_u.mutation.ClearTotalDiscount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ReceiptUpdate) SetCurrencyCode(v string) *ReceiptUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCurrencyCode(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ReceiptUpdate) ClearCurrencyCode() *ReceiptUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdate) SetPaymentMethod(v string) *ReceiptUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentMethod(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptUpdate) ClearPaymentMethod() *ReceiptUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetItems sets the "items" field.
func (_u *ReceiptUpdate) SetItems(v []map[string]interface{}) *ReceiptUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ReceiptUpdate) AppendItems(v []map[string]interface{}) *ReceiptUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ReceiptUpdate) ClearItems() *ReceiptUpdate {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.MerchantName(); ok {
		if err := receipt.MerchantNameValidator(v); err != nil {
			return &ValidationError{Name: "merchant_name", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiptNumber(); ok {
		_spec.SetField(receipt.FieldReceiptNumber, field.TypeString, value)
	}
	if _u.mutation.ReceiptNumberCleared() {
		_spec.ClearField(receipt.FieldReceiptNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if _u.mutation.TxDateCleared() {
		_spec.ClearField(receipt.FieldTxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receipt.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receipt.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDiscount(); ok {
		_spec.SetField(receipt.FieldTotalDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDiscount(); ok {
		_spec.AddField(receipt.FieldTotalDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDiscountCleared() {
		_spec.ClearField(receipt.FieldTotalDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(receipt.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receipt.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(receipt.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(receipt.FieldItems, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptUpdateOne) SetMerchantName(v string) *ReceiptUpdateOne {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableMerchantName(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// SetReceiptNumber sets the "receipt_number" field.
func (_u *ReceiptUpdateOne) SetReceiptNumber(v string) *ReceiptUpdateOne {
	_u.mutation.SetReceiptNumber(v)
	return _u
}

// SetNillableReceiptNumber sets the "receipt_number" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableReceiptNumber(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetReceiptNumber(*v)
	}
	return _u
}

// ClearReceiptNumber clears the value of the "receipt_number" field.
func (_u *ReceiptUpdateOne) ClearReceiptNumber() *ReceiptUpdateOne {
	_u.mutation.ClearReceiptNumber()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdateOne) SetTxDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTxDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// ClearTxDate clears the value of the "tx_date" field.
func (_u *ReceiptUpdateOne) ClearTxDate() *ReceiptUpdateOne {
	_u.mutation.ClearTxDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdateOne) SetSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSubtotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdateOne) AddSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *ReceiptUpdateOne) ClearSubtotal() *ReceiptUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdateOne) SetTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTaxAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdateOne) AddTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdateOne) ClearTaxAmount() *ReceiptUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptUpdateOne) SetTotalAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ReceiptUpdateOne) AddTotalAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptUpdateOne) ClearTotalAmount() *ReceiptUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetTotalDiscount sets the "total_discount" field.
func (_u *ReceiptUpdateOne) SetTotalDiscount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotalDiscount()
	_u.mutation.SetTotalDiscount(v)
	return _u
}

// SetNillableTotalDiscount sets the "total_discount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalDiscount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalDiscount(*v)
	}
	return _u
}

// AddTotalDiscount adds value to the "total_discount" field.
func (_u *ReceiptUpdateOne) AddTotalDiscount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotalDiscount(v)
	return _u
}

// ClearTotalDiscount clears the value of the "total_discount" field.
func (_u *ReceiptUpdateOne) ClearTotalDiscount() *ReceiptUpdateOne {
	_u.mutation.ClearTotalDiscount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ReceiptUpdateOne) SetCurrencyCode(v string) *ReceiptUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCurrencyCode(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ReceiptUpdateOne) ClearCurrencyCode() *ReceiptUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdateOne) SetPaymentMethod(v string) *ReceiptUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentMethod(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptUpdateOne) ClearPaymentMethod() *ReceiptUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetItems sets the "items" field.
func (_u *ReceiptUpdateOne) SetItems(v []map[string]interface{}) *ReceiptUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ReceiptUpdateOne) AppendItems(v []map[string]interface{}) *ReceiptUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ReceiptUpdateOne) ClearItems() *ReceiptUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.MerchantName(); ok {
		if err := receipt.MerchantNameValidator(v); err != nil {
			return &ValidationError{Name: "merchant_name", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceiptNumber(); ok {
		_spec.SetField(receipt.FieldReceiptNumber, field.TypeString, value)
	}
	if _u.mutation.ReceiptNumberCleared() {
		_spec.ClearField(receipt.FieldReceiptNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if _u.mutation.TxDateCleared() {
		_spec.ClearField(receipt.FieldTxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(receipt.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receipt.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDiscount(); ok {
		_spec.SetField(receipt.FieldTotalDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDiscount(); ok {
		_spec.AddField(receipt.FieldTotalDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDiscountCleared() {
		_spec.ClearField(receipt.FieldTotalDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(receipt.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receipt.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(receipt.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(receipt.FieldItems, field.TypeJSON)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
