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
	"github.com/joseph-ayodele/docintel/gen/ent/voucher"
)

// VoucherCreate is the builder for creating a Voucher entity.
type VoucherCreate struct {
	config
	mutation *VoucherMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *VoucherCreate) SetOwnerID(v uuid.UUID) *VoucherCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *VoucherCreate) SetCode(v string) *VoucherCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableCode(v *string) *VoucherCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// SetVoucherType sets the "voucher_type" field.
func (_c *VoucherCreate) SetVoucherType(v string) *VoucherCreate {
	_c.mutation.SetVoucherType(v)
	return _c
}

// SetNillableVoucherType sets the "voucher_type" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableVoucherType(v *string) *VoucherCreate {
	if v != nil {
		_c.SetVoucherType(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *VoucherCreate) SetValue(v float64) *VoucherCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableValue(v *float64) *VoucherCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *VoucherCreate) SetExpiryDate(v time.Time) *VoucherCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableExpiryDate(v *time.Time) *VoucherCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoucherCreate) SetCreatedAt(v time.Time) *VoucherCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableCreatedAt(v *time.Time) *VoucherCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VoucherCreate) SetID(v uuid.UUID) *VoucherCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VoucherCreate) SetNillableID(v *uuid.UUID) *VoucherCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VoucherMutation object of the builder.
func (_c *VoucherCreate) Mutation() *VoucherMutation {
	return _c.mutation
}

// Save creates the Voucher in the database.
func (_c *VoucherCreate) Save(ctx context.Context) (*Voucher, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoucherCreate) SaveX(ctx context.Context) *Voucher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoucherCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoucherCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoucherCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := voucher.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := voucher.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoucherCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Voucher.owner_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Voucher.created_at"`)}
	}
	return nil
}

func (_c *VoucherCreate) sqlSave(ctx context.Context) (*Voucher, error) {
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

func (_c *VoucherCreate) createSpec() (*Voucher, *sqlgraph.CreateSpec) {
	var (
		_node = &Voucher{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(voucher.Table, sqlgraph.NewFieldSpec(voucher.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(voucher.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(voucher.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.VoucherType(); ok {
		_spec.SetField(voucher.FieldVoucherType, field.TypeString, value)
		_node.VoucherType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(voucher.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(voucher.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(voucher.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VoucherCreateBulk is the builder for creating many Voucher entities in bulk.
type VoucherCreateBulk struct {
	config
	err      error
	builders []*VoucherCreate
}

// Save creates the Voucher entities in the database.
func (_c *VoucherCreateBulk) Save(ctx context.Context) ([]*Voucher, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Voucher, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoucherMutation)
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
func (_c *VoucherCreateBulk) SaveX(ctx context.Context) []*Voucher {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoucherCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoucherCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
