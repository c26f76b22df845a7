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
	"github.com/joseph-ayodele/docintel/gen/ent/receipt"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ReceiptCreate) SetOwnerID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetMerchantName sets the "merchant_name" field.
func (_c *ReceiptCreate) SetMerchantName(v string) *ReceiptCreate {
	_c.mutation.SetMerchantName(v)
	return _c
}

// SetReceiptNumber sets the "receipt_number" field.
func (_c *ReceiptCreate) SetReceiptNumber(v string) *ReceiptCreate {
	_c.mutation.SetReceiptNumber(v)
	return _c
}

// SetNillableReceiptNumber sets the "receipt_number" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableReceiptNumber(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetReceiptNumber(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *ReceiptCreate) SetTxDate(v time.Time) *ReceiptCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTxDate(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetTxDate(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *ReceiptCreate) SetSubtotal(v float64) *ReceiptCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableSubtotal(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *ReceiptCreate) SetTaxAmount(v float64) *ReceiptCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTaxAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *ReceiptCreate) SetTotalAmount(v float64) *ReceiptCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetTotalDiscount sets the "total_discount" field.
func (_c *ReceiptCreate) SetTotalDiscount(v float64) *ReceiptCreate {
	_c.mutation.SetTotalDiscount(v)
	return _c
}

// SetNillableTotalDiscount sets the "total_discount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalDiscount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTotalDiscount(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ReceiptCreate) SetCurrencyCode(v string) *ReceiptCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCurrencyCode(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ReceiptCreate) SetPaymentMethod(v string) *ReceiptCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillablePaymentMethod(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *ReceiptCreate) SetItems(v []map[string]interface{}) *ReceiptCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Receipt.owner_id"`)}
	}
	if _, ok := _c.mutation.MerchantName(); !ok {
		return &ValidationError{Name: "merchant_name", err: errors.New(`ent: missing required field "Receipt.merchant_name"`)}
	}
	if v, ok := _c.mutation.MerchantName(); ok {
		if err := receipt.MerchantNameValidator(v); err != nil {
			return &ValidationError{Name: "merchant_name", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
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

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(receipt.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
		_node.MerchantName = value
	}
	if value, ok := _c.mutation.ReceiptNumber(); ok {
		_spec.SetField(receipt.FieldReceiptNumber, field.TypeString, value)
		_node.ReceiptNumber = value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
		_node.TxDate = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.TotalDiscount(); ok {
		_spec.SetField(receipt.FieldTotalDiscount, field.TypeFloat64, value)
		_node.TotalDiscount = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(receipt.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
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
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
