// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// DuplicateFlagDelete is the builder for deleting a DuplicateFlag entity.
type DuplicateFlagDelete struct {
	config
	hooks    []Hook
	mutation *DuplicateFlagMutation
}

// Where appends a list predicates to the DuplicateFlagDelete builder.
func (_d *DuplicateFlagDelete) Where(ps ...predicate.DuplicateFlag) *DuplicateFlagDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DuplicateFlagDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateFlagDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DuplicateFlagDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(duplicateflag.Table, sqlgraph.NewFieldSpec(duplicateflag.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DuplicateFlagDeleteOne is the builder for deleting a single DuplicateFlag entity.
type DuplicateFlagDeleteOne struct {
	_d *DuplicateFlagDelete
}

// Where appends a list predicates to the DuplicateFlagDelete builder.
func (_d *DuplicateFlagDeleteOne) Where(ps ...predicate.DuplicateFlag) *DuplicateFlagDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DuplicateFlagDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{duplicateflag.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateFlagDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
