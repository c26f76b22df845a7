// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
)

// DuplicateFlagCreate is the builder for creating a DuplicateFlag entity.
type DuplicateFlagCreate struct {
	config
	mutation *DuplicateFlagMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *DuplicateFlagCreate) SetOwnerID(v uuid.UUID) *DuplicateFlagCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFileID sets the "file_id" field.
func (_c *DuplicateFlagCreate) SetFileID(v uuid.UUID) *DuplicateFlagCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetDuplicateFileID sets the "duplicate_file_id" field.
func (_c *DuplicateFlagCreate) SetDuplicateFileID(v uuid.UUID) *DuplicateFlagCreate {
	_c.mutation.SetDuplicateFileID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DuplicateFlagCreate) SetReason(v string) *DuplicateFlagCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableReason(v *string) *DuplicateFlagCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DuplicateFlagCreate) SetStatus(v string) *DuplicateFlagCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableStatus(v *string) *DuplicateFlagCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolvedFileID sets the "resolved_file_id" field.
func (_c *DuplicateFlagCreate) SetResolvedFileID(v uuid.UUID) *DuplicateFlagCreate {
	_c.mutation.SetResolvedFileID(v)
	return _c
}

// SetNillableResolvedFileID sets the "resolved_file_id" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableResolvedFileID(v *uuid.UUID) *DuplicateFlagCreate {
	if v != nil {
		_c.SetResolvedFileID(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DuplicateFlagCreate) SetResolvedAt(v time.Time) *DuplicateFlagCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableResolvedAt(v *time.Time) *DuplicateFlagCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DuplicateFlagCreate) SetCreatedAt(v time.Time) *DuplicateFlagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableCreatedAt(v *time.Time) *DuplicateFlagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DuplicateFlagCreate) SetID(v uuid.UUID) *DuplicateFlagCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DuplicateFlagCreate) SetNillableID(v *uuid.UUID) *DuplicateFlagCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DuplicateFlagMutation object of the builder.
func (_c *DuplicateFlagCreate) Mutation() *DuplicateFlagMutation {
	return _c.mutation
}

// Save creates the DuplicateFlag in the database.
func (_c *DuplicateFlagCreate) Save(ctx context.Context) (*DuplicateFlag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DuplicateFlagCreate) SaveX(ctx context.Context) *DuplicateFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateFlagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateFlagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DuplicateFlagCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := duplicateflag.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := duplicateflag.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := duplicateflag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := duplicateflag.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DuplicateFlagCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "DuplicateFlag.owner_id"`)}
	}
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "DuplicateFlag.file_id"`)}
	}
	if _, ok := _c.mutation.DuplicateFileID(); !ok {
		return &ValidationError{Name: "duplicate_file_id", err: errors.New(`ent: missing required field "DuplicateFlag.duplicate_file_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "DuplicateFlag.reason"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DuplicateFlag.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := duplicateflag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateFlag.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DuplicateFlag.created_at"`)}
	}
	return nil
}

func (_c *DuplicateFlagCreate) sqlSave(ctx context.Context) (*DuplicateFlag, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DuplicateFlagCreate) createSpec() (*DuplicateFlag, *sqlgraph.CreateSpec) {
	var (
		_node = &DuplicateFlag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(duplicateflag.Table, sqlgraph.NewFieldSpec(duplicateflag.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(duplicateflag.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.FileID(); ok {
		_spec.SetField(duplicateflag.FieldFileID, field.TypeUUID, value)
		_node.FileID = value
	}
	if value, ok := _c.mutation.DuplicateFileID(); ok {
		_spec.SetField(duplicateflag.FieldDuplicateFileID, field.TypeUUID, value)
		_node.DuplicateFileID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(duplicateflag.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(duplicateflag.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolvedFileID(); ok {
		_spec.SetField(duplicateflag.FieldResolvedFileID, field.TypeUUID, value)
		_node.ResolvedFileID = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicateflag.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(duplicateflag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DuplicateFlagCreateBulk is the builder for creating many DuplicateFlag entities in bulk.
type DuplicateFlagCreateBulk struct {
	config
	err      error
	builders []*DuplicateFlagCreate
}

// Save creates the DuplicateFlag entities in the database.
func (_c *DuplicateFlagCreateBulk) Save(ctx context.Context) ([]*DuplicateFlag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DuplicateFlag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DuplicateFlagMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DuplicateFlagCreateBulk) SaveX(ctx context.Context) []*DuplicateFlag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateFlagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateFlagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
