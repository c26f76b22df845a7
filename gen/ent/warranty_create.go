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
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

// WarrantyCreate is the builder for creating a Warranty entity.
type WarrantyCreate struct {
	config
	mutation *WarrantyMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *WarrantyCreate) SetOwnerID(v uuid.UUID) *WarrantyCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSerialNumber sets the "serial_number" field.
func (_c *WarrantyCreate) SetSerialNumber(v string) *WarrantyCreate {
	_c.mutation.SetSerialNumber(v)
	return _c
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableSerialNumber(v *string) *WarrantyCreate {
	if v != nil {
		_c.SetSerialNumber(*v)
	}
	return _c
}

// SetCoveredProduct sets the "covered_product" field.
func (_c *WarrantyCreate) SetCoveredProduct(v string) *WarrantyCreate {
	_c.mutation.SetCoveredProduct(v)
	return _c
}

// SetNillableCoveredProduct sets the "covered_product" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableCoveredProduct(v *string) *WarrantyCreate {
	if v != nil {
		_c.SetCoveredProduct(*v)
	}
	return _c
}

// SetWarrantyStartDate sets the "warranty_start_date" field.
func (_c *WarrantyCreate) SetWarrantyStartDate(v time.Time) *WarrantyCreate {
	_c.mutation.SetWarrantyStartDate(v)
	return _c
}

// SetNillableWarrantyStartDate sets the "warranty_start_date" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableWarrantyStartDate(v *time.Time) *WarrantyCreate {
	if v != nil {
		_c.SetWarrantyStartDate(*v)
	}
	return _c
}

// SetWarrantyEndDate sets the "warranty_end_date" field.
func (_c *WarrantyCreate) SetWarrantyEndDate(v time.Time) *WarrantyCreate {
	_c.mutation.SetWarrantyEndDate(v)
	return _c
}

// SetNillableWarrantyEndDate sets the "warranty_end_date" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableWarrantyEndDate(v *time.Time) *WarrantyCreate {
	if v != nil {
		_c.SetWarrantyEndDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WarrantyCreate) SetCreatedAt(v time.Time) *WarrantyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableCreatedAt(v *time.Time) *WarrantyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WarrantyCreate) SetID(v uuid.UUID) *WarrantyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WarrantyCreate) SetNillableID(v *uuid.UUID) *WarrantyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WarrantyMutation object of the builder.
func (_c *WarrantyCreate) Mutation() *WarrantyMutation {
	return _c.mutation
}

// Save creates the Warranty in the database.
func (_c *WarrantyCreate) Save(ctx context.Context) (*Warranty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WarrantyCreate) SaveX(ctx context.Context) *Warranty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarrantyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarrantyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WarrantyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := warranty.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := warranty.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WarrantyCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Warranty.owner_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Warranty.created_at"`)}
	}
	return nil
}

func (_c *WarrantyCreate) sqlSave(ctx context.Context) (*Warranty, error) {
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

func (_c *WarrantyCreate) createSpec() (*Warranty, *sqlgraph.CreateSpec) {
	var (
		_node = &Warranty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(warranty.Table, sqlgraph.NewFieldSpec(warranty.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(warranty.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.SerialNumber(); ok {
		_spec.SetField(warranty.FieldSerialNumber, field.TypeString, value)
		_node.SerialNumber = value
	}
	if value, ok := _c.mutation.CoveredProduct(); ok {
		_spec.SetField(warranty.FieldCoveredProduct, field.TypeString, value)
		_node.CoveredProduct = value
	}
	if value, ok := _c.mutation.WarrantyStartDate(); ok {
		_spec.SetField(warranty.FieldWarrantyStartDate, field.TypeTime, value)
		_node.WarrantyStartDate = &value
	}
	if value, ok := _c.mutation.WarrantyEndDate(); ok {
		_spec.SetField(warranty.FieldWarrantyEndDate, field.TypeTime, value)
		_node.WarrantyEndDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(warranty.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WarrantyCreateBulk is the builder for creating many Warranty entities in bulk.
type WarrantyCreateBulk struct {
	config
	err      error
	builders []*WarrantyCreate
}

// Save creates the Warranty entities in the database.
func (_c *WarrantyCreateBulk) Save(ctx context.Context) ([]*Warranty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Warranty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WarrantyMutation)
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
func (_c *WarrantyCreateBulk) SaveX(ctx context.Context) []*Warranty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WarrantyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WarrantyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
