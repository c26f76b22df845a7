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
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

// WarrantyUpdate is the builder for updating Warranty entities.
type WarrantyUpdate struct {
	config
	hooks    []Hook
	mutation *WarrantyMutation
}

// Where appends a list predicates to the WarrantyUpdate builder.
func (_u *WarrantyUpdate) Where(ps ...predicate.Warranty) *WarrantyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *WarrantyUpdate) SetSerialNumber(v string) *WarrantyUpdate {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *WarrantyUpdate) SetNillableSerialNumber(v *string) *WarrantyUpdate {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *WarrantyUpdate) ClearSerialNumber() *WarrantyUpdate {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetCoveredProduct sets the "covered_product" field.
func (_u *WarrantyUpdate) SetCoveredProduct(v string) *WarrantyUpdate {
	_u.mutation.SetCoveredProduct(v)
	return _u
}

// SetNillableCoveredProduct sets the "covered_product" field if the given value is not nil.
func (_u *WarrantyUpdate) SetNillableCoveredProduct(v *string) *WarrantyUpdate {
	if v != nil {
		_u.SetCoveredProduct(*v)
	}
	return _u
}

// ClearCoveredProduct clears the value of the "covered_product" field.
func (_u *WarrantyUpdate) ClearCoveredProduct() *WarrantyUpdate {
	_u.mutation.ClearCoveredProduct()
	return _u
}

// SetWarrantyStartDate sets the "warranty_start_date" field.
func (_u *WarrantyUpdate) SetWarrantyStartDate(v time.Time) *WarrantyUpdate {
	_u.mutation.SetWarrantyStartDate(v)
	return _u
}

// SetNillableWarrantyStartDate sets the "warranty_start_date" field if the given value is not nil.
func (_u *WarrantyUpdate) SetNillableWarrantyStartDate(v *time.Time) *WarrantyUpdate {
	if v != nil {
		_u.SetWarrantyStartDate(*v)
	}
	return _u
}

// ClearWarrantyStartDate clears the value of the "warranty_start_date" field.
func (_u *WarrantyUpdate) ClearWarrantyStartDate() *WarrantyUpdate {
	_u.mutation.ClearWarrantyStartDate()
	return _u
}

// SetWarrantyEndDate sets the "warranty_end_date" field.
func (_u *WarrantyUpdate) SetWarrantyEndDate(v time.Time) *WarrantyUpdate {
	_u.mutation.SetWarrantyEndDate(v)
	return _u
}

// SetNillableWarrantyEndDate sets the "warranty_end_date" field if the given value is not nil.
func (_u *WarrantyUpdate) SetNillableWarrantyEndDate(v *time.Time) *WarrantyUpdate {
	if v != nil {
		_u.SetWarrantyEndDate(*v)
	}
	return _u
}

// ClearWarrantyEndDate clears the value of the "warranty_end_date" field.
func (_u *WarrantyUpdate) ClearWarrantyEndDate() *WarrantyUpdate {
	_u.mutation.ClearWarrantyEndDate()
	return _u
}

// Mutation returns the WarrantyMutation object of the builder.
func (_u *WarrantyUpdate) Mutation() *WarrantyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WarrantyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarrantyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WarrantyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarrantyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WarrantyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(warranty.Table, warranty.Columns, sqlgraph.NewFieldSpec(warranty.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(warranty.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(warranty.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CoveredProduct(); ok {
		_spec.SetField(warranty.FieldCoveredProduct, field.TypeString, value)
	}
	if _u.mutation.CoveredProductCleared() {
		_spec.ClearField(warranty.FieldCoveredProduct, field.TypeString)
	}
	if value, ok := _u.mutation.WarrantyStartDate(); ok {
		_spec.SetField(warranty.FieldWarrantyStartDate, field.TypeTime, value)
	}
	if _u.mutation.WarrantyStartDateCleared() {
		_spec.ClearField(warranty.FieldWarrantyStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.WarrantyEndDate(); ok {
		_spec.SetField(warranty.FieldWarrantyEndDate, field.TypeTime, value)
	}
	if _u.mutation.WarrantyEndDateCleared() {
		_spec.ClearField(warranty.FieldWarrantyEndDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warranty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WarrantyUpdateOne is the builder for updating a single Warranty entity.
type WarrantyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WarrantyMutation
}

// SetSerialNumber sets the "serial_number" field.
func (_u *WarrantyUpdateOne) SetSerialNumber(v string) *WarrantyUpdateOne {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *WarrantyUpdateOne) SetNillableSerialNumber(v *string) *WarrantyUpdateOne {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *WarrantyUpdateOne) ClearSerialNumber() *WarrantyUpdateOne {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetCoveredProduct sets the "covered_product" field.
func (_u *WarrantyUpdateOne) SetCoveredProduct(v string) *WarrantyUpdateOne {
	_u.mutation.SetCoveredProduct(v)
	return _u
}

// SetNillableCoveredProduct sets the "covered_product" field if the given value is not nil.
func (_u *WarrantyUpdateOne) SetNillableCoveredProduct(v *string) *WarrantyUpdateOne {
	if v != nil {
		_u.SetCoveredProduct(*v)
	}
	return _u
}

// ClearCoveredProduct clears the value of the "covered_product" field.
func (_u *WarrantyUpdateOne) ClearCoveredProduct() *WarrantyUpdateOne {
	_u.mutation.ClearCoveredProduct()
	return _u
}

// SetWarrantyStartDate sets the "warranty_start_date" field.
func (_u *WarrantyUpdateOne) SetWarrantyStartDate(v time.Time) *WarrantyUpdateOne {
	_u.mutation.SetWarrantyStartDate(v)
	return _u
}

// SetNillableWarrantyStartDate sets the "warranty_start_date" field if the given value is not nil.
func (_u *WarrantyUpdateOne) SetNillableWarrantyStartDate(v *time.Time) *WarrantyUpdateOne {
	if v != nil {
		_u.SetWarrantyStartDate(*v)
	}
	return _u
}

// ClearWarrantyStartDate clears the value of the "warranty_start_date" field.
func (_u *WarrantyUpdateOne) ClearWarrantyStartDate() *WarrantyUpdateOne {
	_u.mutation.ClearWarrantyStartDate()
	return _u
}

// SetWarrantyEndDate sets the "warranty_end_date" field.
func (_u *WarrantyUpdateOne) SetWarrantyEndDate(v time.Time) *WarrantyUpdateOne {
	_u.mutation.SetWarrantyEndDate(v)
	return _u
}

// SetNillableWarrantyEndDate sets the "warranty_end_date" field if the given value is not nil.
func (_u *WarrantyUpdateOne) SetNillableWarrantyEndDate(v *time.Time) *WarrantyUpdateOne {
	if v != nil {
		_u.SetWarrantyEndDate(*v)
	}
	return _u
}

// ClearWarrantyEndDate clears the value of the "warranty_end_date" field.
func (_u *WarrantyUpdateOne) ClearWarrantyEndDate() *WarrantyUpdateOne {
	_u.mutation.ClearWarrantyEndDate()
	return _u
}

// Mutation returns the WarrantyMutation object of the builder.
func (_u *WarrantyUpdateOne) Mutation() *WarrantyMutation {
	return _u.mutation
}

// Where appends a list predicates to the WarrantyUpdate builder.
func (_u *WarrantyUpdateOne) Where(ps ...predicate.Warranty) *WarrantyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WarrantyUpdateOne) Select(field string, fields ...string) *WarrantyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Warranty entity.
func (_u *WarrantyUpdateOne) Save(ctx context.Context) (*Warranty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WarrantyUpdateOne) SaveX(ctx context.Context) *Warranty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WarrantyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WarrantyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WarrantyUpdateOne) sqlSave(ctx context.Context) (_node *Warranty, err error) {
	_spec := sqlgraph.NewUpdateSpec(warranty.Table, warranty.Columns, sqlgraph.NewFieldSpec(warranty.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Warranty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, warranty.FieldID)
		for _, f := range fields {
			if !warranty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != warranty.FieldID {
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
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(warranty.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(warranty.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CoveredProduct(); ok {
		_spec.SetField(warranty.FieldCoveredProduct, field.TypeString, value)
	}
	if _u.mutation.CoveredProductCleared() {
		_spec.ClearField(warranty.FieldCoveredProduct, field.TypeString)
	}
	if value, ok := _u.mutation.WarrantyStartDate(); ok {
		_spec.SetField(warranty.FieldWarrantyStartDate, field.TypeTime, value)
	}
	if _u.mutation.WarrantyStartDateCleared() {
		_spec.ClearField(warranty.FieldWarrantyStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.WarrantyEndDate(); ok {
		_spec.SetField(warranty.FieldWarrantyEndDate, field.TypeTime, value)
	}
	if _u.mutation.WarrantyEndDateCleared() {
		_spec.ClearField(warranty.FieldWarrantyEndDate, field.TypeTime)
	}
	_node = &Warranty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{warranty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
