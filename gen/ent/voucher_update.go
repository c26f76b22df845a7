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
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
	"github.com/joseph-ayodele/docintel/gen/ent/voucher"
)

// VoucherUpdate is the builder for updating Voucher entities.
type VoucherUpdate struct {
	config
	hooks    []Hook
	mutation *VoucherMutation
}

// Where appends a list predicates to the VoucherUpdate builder.
func (_u *VoucherUpdate) Where(ps ...predicate.Voucher) *VoucherUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *VoucherUpdate) SetCode(v string) *VoucherUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *VoucherUpdate) SetNillableCode(v *string) *VoucherUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *VoucherUpdate) ClearCode() *VoucherUpdate {
	_u.mutation.ClearCode()
	return _u
}

// SetVoucherType sets the "voucher_type" field.
func (_u *VoucherUpdate) SetVoucherType(v string) *VoucherUpdate {
	_u.mutation.SetVoucherType(v)
	return _u
}

// SetNillableVoucherType sets the "voucher_type" field if the given value is not nil.
func (_u *VoucherUpdate) SetNillableVoucherType(v *string) *VoucherUpdate {
	if v != nil {
		_u.SetVoucherType(*v)
	}
	return _u
}

// ClearVoucherType clears the value of the "voucher_type" field.
func (_u *VoucherUpdate) ClearVoucherType() *VoucherUpdate {
	_u.mutation.ClearVoucherType()
	return _u
}

// SetValue sets the "value" field.
func (_u *VoucherUpdate) SetValue(v float64) *VoucherUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *VoucherUpdate) SetNillableValue(v *float64) *VoucherUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *VoucherUpdate) AddValue(v float64) *VoucherUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *VoucherUpdate) ClearValue() *VoucherUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *VoucherUpdate) SetExpiryDate(v time.Time) *VoucherUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *VoucherUpdate) SetNillableExpiryDate(v *time.Time) *VoucherUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *VoucherUpdate) ClearExpiryDate() *VoucherUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// Mutation returns the VoucherMutation object of the builder.
func (_u *VoucherUpdate) Mutation() *VoucherMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoucherUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoucherUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoucherUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoucherUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoucherUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(voucher.Table, voucher.Columns, sqlgraph.NewFieldSpec(voucher.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(voucher.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(voucher.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.VoucherType(); ok {
		_spec.SetField(voucher.FieldVoucherType, field.TypeString, value)
	}
	if _u.mutation.VoucherTypeCleared() {
		_spec.ClearField(voucher.FieldVoucherType, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(voucher.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(voucher.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(voucher.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(voucher.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(voucher.FieldExpiryDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voucher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoucherUpdateOne is the builder for updating a single Voucher entity.
type VoucherUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoucherMutation
}

// SetCode sets the "code" field.
func (_u *VoucherUpdateOne) SetCode(v string) *VoucherUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *VoucherUpdateOne) SetNillableCode(v *string) *VoucherUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *VoucherUpdateOne) ClearCode() *VoucherUpdateOne {
	_u.mutation.ClearCode()
	return _u
}

// SetVoucherType sets the "voucher_type" field.
func (_u *VoucherUpdateOne) SetVoucherType(v string) *VoucherUpdateOne {
	_u.mutation.SetVoucherType(v)
	return _u
}

// SetNillableVoucherType sets the "voucher_type" field if the given value is not nil.
func (_u *VoucherUpdateOne) SetNillableVoucherType(v *string) *VoucherUpdateOne {
	if v != nil {
		_u.SetVoucherType(*v)
	}
	return _u
}

// ClearVoucherType clears the value of the "voucher_type" field.
func (_u *VoucherUpdateOne) ClearVoucherType() *VoucherUpdateOne {
	_u.mutation.ClearVoucherType()
	return _u
}

// SetValue sets the "value" field.
func (_u *VoucherUpdateOne) SetValue(v float64) *VoucherUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *VoucherUpdateOne) SetNillableValue(v *float64) *VoucherUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *VoucherUpdateOne) AddValue(v float64) *VoucherUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *VoucherUpdateOne) ClearValue() *VoucherUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *VoucherUpdateOne) SetExpiryDate(v time.Time) *VoucherUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *VoucherUpdateOne) SetNillableExpiryDate(v *time.Time) *VoucherUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *VoucherUpdateOne) ClearExpiryDate() *VoucherUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// Mutation returns the VoucherMutation object of the builder.
func (_u *VoucherUpdateOne) Mutation() *VoucherMutation {
	return _u.mutation
}

// Where appends a list predicates to the VoucherUpdate builder.
func (_u *VoucherUpdateOne) Where(ps ...predicate.Voucher) *VoucherUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoucherUpdateOne) Select(field string, fields ...string) *VoucherUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Voucher entity.
func (_u *VoucherUpdateOne) Save(ctx context.Context) (*Voucher, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoucherUpdateOne) SaveX(ctx context.Context) *Voucher {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoucherUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoucherUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoucherUpdateOne) sqlSave(ctx context.Context) (_node *Voucher, err error) {
	_spec := sqlgraph.NewUpdateSpec(voucher.Table, voucher.Columns, sqlgraph.NewFieldSpec(voucher.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Voucher.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voucher.FieldID)
		for _, f := range fields {
			if !voucher.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voucher.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(voucher.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(voucher.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.VoucherType(); ok {
		_spec.SetField(voucher.FieldVoucherType, field.TypeString, value)
	}
	if _u.mutation.VoucherTypeCleared() {
		_spec.ClearField(voucher.FieldVoucherType, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(voucher.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(voucher.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(voucher.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(voucher.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(voucher.FieldExpiryDate, field.TypeTime)
	}
	_node = &Voucher{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voucher.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
