// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docintel/gen/ent/documentrecord"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// DocumentRecordUpdate is the builder for updating DocumentRecord entities.
type DocumentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentRecordMutation
}

// Where appends a list predicates to the DocumentRecordUpdate builder.
func (_u *DocumentRecordUpdate) Where(ps ...predicate.DocumentRecord) *DocumentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentRecordUpdate) SetTitle(v string) *DocumentRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentRecordUpdate) SetNillableTitle(v *string) *DocumentRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentRecordUpdate) ClearTitle() *DocumentRecordUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentRecordUpdate) SetSummary(v string) *DocumentRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentRecordUpdate) SetNillableSummary(v *string) *DocumentRecordUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentRecordUpdate) ClearSummary() *DocumentRecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the DocumentRecordMutation object of the builder.
func (_u *DocumentRecordUpdate) Mutation() *DocumentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentrecord.Table, documentrecord.Columns, sqlgraph.NewFieldSpec(documentrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentrecord.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(documentrecord.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(documentrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(documentrecord.FieldSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentRecordUpdateOne is the builder for updating a single DocumentRecord entity.
type DocumentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentRecordMutation
}

// SetTitle sets the "title" field.
func (_u *DocumentRecordUpdateOne) SetTitle(v string) *DocumentRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentRecordUpdateOne) SetNillableTitle(v *string) *DocumentRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentRecordUpdateOne) ClearTitle() *DocumentRecordUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentRecordUpdateOne) SetSummary(v string) *DocumentRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentRecordUpdateOne) SetNillableSummary(v *string) *DocumentRecordUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentRecordUpdateOne) ClearSummary() *DocumentRecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the DocumentRecordMutation object of the builder.
func (_u *DocumentRecordUpdateOne) Mutation() *DocumentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentRecordUpdate builder.
func (_u *DocumentRecordUpdateOne) Where(ps ...predicate.DocumentRecord) *DocumentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentRecordUpdateOne) Select(field string, fields ...string) *DocumentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentRecord entity.
func (_u *DocumentRecordUpdateOne) Save(ctx context.Context) (*DocumentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentRecordUpdateOne) SaveX(ctx context.Context) *DocumentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentRecordUpdateOne) sqlSave(ctx context.Context) (_node *DocumentRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentrecord.Table, documentrecord.Columns, sqlgraph.NewFieldSpec(documentrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentrecord.FieldID)
		for _, f := range fields {
			if !documentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentrecord.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentrecord.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(documentrecord.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(documentrecord.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(documentrecord.FieldSummary, field.TypeString)
	}
	_node = &DocumentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
