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
	"github.com/joseph-ayodele/docintel/gen/ent/bankstatement"
)

// BankStatementCreate is the builder for creating a BankStatement entity.
type BankStatementCreate struct {
	config
	mutation *BankStatementMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *BankStatementCreate) SetOwnerID(v uuid.UUID) *BankStatementCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *BankStatementCreate) SetBankName(v string) *BankStatementCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableBankName(v *string) *BankStatementCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetAccountNumber sets the "account_number" field.
func (_c *BankStatementCreate) SetAccountNumber(v string) *BankStatementCreate {
	_c.mutation.SetAccountNumber(v)
	return _c
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableAccountNumber(v *string) *BankStatementCreate {
	if v != nil {
		_c.SetAccountNumber(*v)
	}
	return _c
}

// SetIban sets the "iban" field.
func (_c *BankStatementCreate) SetIban(v string) *BankStatementCreate {
	_c.mutation.SetIban(v)
	return _c
}

// SetNillableIban sets the "iban" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableIban(v *string) *BankStatementCreate {
	if v != nil {
		_c.SetIban(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *BankStatementCreate) SetPeriodStart(v time.Time) *BankStatementCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillablePeriodStart(v *time.Time) *BankStatementCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *BankStatementCreate) SetPeriodEnd(v time.Time) *BankStatementCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillablePeriodEnd(v *time.Time) *BankStatementCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetOpeningBalance sets the "opening_balance" field.
func (_c *BankStatementCreate) SetOpeningBalance(v float64) *BankStatementCreate {
	_c.mutation.SetOpeningBalance(v)
	return _c
}

// SetNillableOpeningBalance sets the "opening_balance" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableOpeningBalance(v *float64) *BankStatementCreate {
	if v != nil {
		_c.SetOpeningBalance(*v)
	}
	return _c
}

// SetClosingBalance sets the "closing_balance" field.
func (_c *BankStatementCreate) SetClosingBalance(v float64) *BankStatementCreate {
	_c.mutation.SetClosingBalance(v)
	return _c
}

// SetNillableClosingBalance sets the "closing_balance" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableClosingBalance(v *float64) *BankStatementCreate {
	if v != nil {
		_c.SetClosingBalance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BankStatementCreate) SetCreatedAt(v time.Time) *BankStatementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableCreatedAt(v *time.Time) *BankStatementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BankStatementCreate) SetID(v uuid.UUID) *BankStatementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BankStatementCreate) SetNillableID(v *uuid.UUID) *BankStatementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BankStatementMutation object of the builder.
func (_c *BankStatementCreate) Mutation() *BankStatementMutation {
	return _c.mutation
}

// Save creates the BankStatement in the database.
func (_c *BankStatementCreate) Save(ctx context.Context) (*BankStatement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BankStatementCreate) SaveX(ctx context.Context) *BankStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankStatementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankStatementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BankStatementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bankstatement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bankstatement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BankStatementCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BankStatement.owner_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BankStatement.created_at"`)}
	}
	return nil
}

func (_c *BankStatementCreate) sqlSave(ctx context.Context) (*BankStatement, error) {
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

func (_c *BankStatementCreate) createSpec() (*BankStatement, *sqlgraph.CreateSpec) {
	var (
		_node = &BankStatement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bankstatement.Table, sqlgraph.NewFieldSpec(bankstatement.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(bankstatement.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(bankstatement.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.AccountNumber(); ok {
		_spec.SetField(bankstatement.FieldAccountNumber, field.TypeString, value)
		_node.AccountNumber = value
	}
	if value, ok := _c.mutation.Iban(); ok {
		_spec.SetField(bankstatement.FieldIban, field.TypeString, value)
		_node.Iban = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(bankstatement.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(bankstatement.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.OpeningBalance(); ok {
		_spec.SetField(bankstatement.FieldOpeningBalance, field.TypeFloat64, value)
		_node.OpeningBalance = &value
	}
	if value, ok := _c.mutation.ClosingBalance(); ok {
		_spec.SetField(bankstatement.FieldClosingBalance, field.TypeFloat64, value)
		_node.ClosingBalance = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bankstatement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BankStatementCreateBulk is the builder for creating many BankStatement entities in bulk.
type BankStatementCreateBulk struct {
	config
	err      error
	builders []*BankStatementCreate
}

// Save creates the BankStatement entities in the database.
func (_c *BankStatementCreateBulk) Save(ctx context.Context) ([]*BankStatement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BankStatement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BankStatementMutation)
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
func (_c *BankStatementCreateBulk) SaveX(ctx context.Context) []*BankStatement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankStatementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankStatementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
