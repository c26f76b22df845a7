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
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// DuplicateFlagUpdate is the builder for updating DuplicateFlag entities.
type DuplicateFlagUpdate struct {
	config
	hooks    []Hook
	mutation *DuplicateFlagMutation
}

// Where appends a list predicates to the DuplicateFlagUpdate builder.
func (_u *DuplicateFlagUpdate) Where(ps ...predicate.DuplicateFlag) *DuplicateFlagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReason sets the "reason" field.
func (_u *DuplicateFlagUpdate) SetReason(v string) *DuplicateFlagUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DuplicateFlagUpdate) SetNillableReason(v *string) *DuplicateFlagUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicateFlagUpdate) SetStatus(v string) *DuplicateFlagUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicateFlagUpdate) SetNillableStatus(v *string) *DuplicateFlagUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedFileID sets the "resolved_file_id" field.
func (_u *DuplicateFlagUpdate) SetResolvedFileID(v uuid.UUID) *DuplicateFlagUpdate {
	_u.mutation.SetResolvedFileID(v)
	return _u
}

// SetNillableResolvedFileID sets the "resolved_file_id" field if the given value is not nil.
func (_u *DuplicateFlagUpdate) SetNillableResolvedFileID(v *uuid.UUID) *DuplicateFlagUpdate {
	if v != nil {
		_u.SetResolvedFileID(*v)
	}
	return _u
}

// ClearResolvedFileID clears the value of the "resolved_file_id" field.
func (_u *DuplicateFlagUpdate) ClearResolvedFileID() *DuplicateFlagUpdate {
	_u.mutation.ClearResolvedFileID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicateFlagUpdate) SetResolvedAt(v time.Time) *DuplicateFlagUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicateFlagUpdate) SetNillableResolvedAt(v *time.Time) *DuplicateFlagUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicateFlagUpdate) ClearResolvedAt() *DuplicateFlagUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DuplicateFlagMutation object of the builder.
func (_u *DuplicateFlagUpdate) Mutation() *DuplicateFlagMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DuplicateFlagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateFlagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DuplicateFlagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateFlagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateFlagUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicateflag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateFlag.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicateFlagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicateflag.Table, duplicateflag.Columns, sqlgraph.NewFieldSpec(duplicateflag.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(duplicateflag.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicateflag.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedFileID(); ok {
		_spec.SetField(duplicateflag.FieldResolvedFileID, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedFileIDCleared() {
		_spec.ClearField(duplicateflag.FieldResolvedFileID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicateflag.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicateflag.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicateflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DuplicateFlagUpdateOne is the builder for updating a single DuplicateFlag entity.
type DuplicateFlagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DuplicateFlagMutation
}

// SetReason sets the "reason" field.
func (_u *DuplicateFlagUpdateOne) SetReason(v string) *DuplicateFlagUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DuplicateFlagUpdateOne) SetNillableReason(v *string) *DuplicateFlagUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicateFlagUpdateOne) SetStatus(v string) *DuplicateFlagUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicateFlagUpdateOne) SetNillableStatus(v *string) *DuplicateFlagUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedFileID sets the "resolved_file_id" field.
func (_u *DuplicateFlagUpdateOne) SetResolvedFileID(v uuid.UUID) *DuplicateFlagUpdateOne {
	_u.mutation.SetResolvedFileID(v)
	return _u
}

// SetNillableResolvedFileID sets the "resolved_file_id" field if the given value is not nil.
func (_u *DuplicateFlagUpdateOne) SetNillableResolvedFileID(v *uuid.UUID) *DuplicateFlagUpdateOne {
	if v != nil {
		_u.SetResolvedFileID(*v)
	}
	return _u
}

// ClearResolvedFileID clears the value of the "resolved_file_id" field.
func (_u *DuplicateFlagUpdateOne) ClearResolvedFileID() *DuplicateFlagUpdateOne {
	_u.mutation.ClearResolvedFileID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicateFlagUpdateOne) SetResolvedAt(v time.Time) *DuplicateFlagUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicateFlagUpdateOne) SetNillableResolvedAt(v *time.Time) *DuplicateFlagUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicateFlagUpdateOne) ClearResolvedAt() *DuplicateFlagUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DuplicateFlagMutation object of the builder.
func (_u *DuplicateFlagUpdateOne) Mutation() *DuplicateFlagMutation {
	return _u.mutation
}

// Where appends a list predicates to the DuplicateFlagUpdate builder.
func (_u *DuplicateFlagUpdateOne) Where(ps ...predicate.DuplicateFlag) *DuplicateFlagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DuplicateFlagUpdateOne) Select(field string, fields ...string) *DuplicateFlagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DuplicateFlag entity.
func (_u *DuplicateFlagUpdateOne) Save(ctx context.Context) (*DuplicateFlag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateFlagUpdateOne) SaveX(ctx context.Context) *DuplicateFlag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DuplicateFlagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateFlagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateFlagUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicateflag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateFlag.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicateFlagUpdateOne) sqlSave(ctx context.Context) (_node *DuplicateFlag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicateflag.Table, duplicateflag.Columns, sqlgraph.NewFieldSpec(duplicateflag.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DuplicateFlag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicateflag.FieldID)
		for _, f := range fields {
			if !duplicateflag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != duplicateflag.FieldID {
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
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(duplicateflag.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicateflag.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedFileID(); ok {
		_spec.SetField(duplicateflag.FieldResolvedFileID, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedFileIDCleared() {
		_spec.ClearField(duplicateflag.FieldResolvedFileID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicateflag.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicateflag.FieldResolvedAt, field.TypeTime)
	}
	_node = &DuplicateFlag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicateflag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
