// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/docintel/gen/ent/contract"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdate) SetContractNumber(v string) *ContractUpdate {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractNumber(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// ClearContractNumber clears the value of the "contract_number" field.
func (_u *ContractUpdate) ClearContractNumber() *ContractUpdate {
	_u.mutation.ClearContractNumber()
	return _u
}

// SetParties sets the "parties" field.
func (_u *ContractUpdate) SetParties(v []string) *ContractUpdate {
	_u.mutation.SetParties(v)
	return _u
}

// AppendParties appends value to the "parties" field.
func (_u *ContractUpdate) AppendParties(v []string) *ContractUpdate {
	_u.mutation.AppendParties(v)
	return _u
}

// ClearParties clears the value of the "parties" field.
func (_u *ContractUpdate) ClearParties() *ContractUpdate {
	_u.mutation.ClearParties()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdate) SetEffectiveDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEffectiveDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdate) ClearEffectiveDate() *ContractUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetTerminationDate sets the "termination_date" field.
func (_u *ContractUpdate) SetTerminationDate(v time.Time) *ContractUpdate {
	_u.mutation.SetTerminationDate(v)
	return _u
}

// SetNillableTerminationDate sets the "termination_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTerminationDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetTerminationDate(*v)
	}
	return _u
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (_u *ContractUpdate) ClearTerminationDate() *ContractUpdate {
	_u.mutation.ClearTerminationDate()
	return _u
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if _u.mutation.ContractNumberCleared() {
		_spec.ClearField(contract.FieldContractNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(contract.FieldParties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldParties, value)
		})
	}
	if _u.mutation.PartiesCleared() {
		_spec.ClearField(contract.FieldParties, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminationDate(); ok {
		_spec.SetField(contract.FieldTerminationDate, field.TypeTime, value)
	}
	if _u.mutation.TerminationDateCleared() {
		_spec.ClearField(contract.FieldTerminationDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetContractNumber sets the "contract_number" field.
func (_u *ContractUpdateOne) SetContractNumber(v string) *ContractUpdateOne {
	_u.mutation.SetContractNumber(v)
	return _u
}

// SetNillableContractNumber sets the "contract_number" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractNumber(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractNumber(*v)
	}
	return _u
}

// ClearContractNumber clears the value of the "contract_number" field.
func (_u *ContractUpdateOne) ClearContractNumber() *ContractUpdateOne {
	_u.mutation.ClearContractNumber()
	return _u
}

// SetParties sets the "parties" field.
func (_u *ContractUpdateOne) SetParties(v []string) *ContractUpdateOne {
	_u.mutation.SetParties(v)
	return _u
}

// AppendParties appends value to the "parties" field.
func (_u *ContractUpdateOne) AppendParties(v []string) *ContractUpdateOne {
	_u.mutation.AppendParties(v)
	return _u
}

// ClearParties clears the value of the "parties" field.
func (_u *ContractUpdateOne) ClearParties() *ContractUpdateOne {
	_u.mutation.ClearParties()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdateOne) SetEffectiveDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEffectiveDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdateOne) ClearEffectiveDate() *ContractUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetTerminationDate sets the "termination_date" field.
func (_u *ContractUpdateOne) SetTerminationDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetTerminationDate(v)
	return _u
}

// SetNillableTerminationDate sets the "termination_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTerminationDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetTerminationDate(*v)
	}
	return _u
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (_u *ContractUpdateOne) ClearTerminationDate() *ContractUpdateOne {
	_u.mutation.ClearTerminationDate()
	return _u
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.ContractNumber(); ok {
		_spec.SetField(contract.FieldContractNumber, field.TypeString, value)
	}
	if _u.mutation.ContractNumberCleared() {
		_spec.ClearField(contract.FieldContractNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Parties(); ok {
		_spec.SetField(contract.FieldParties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldParties, value)
		})
	}
	if _u.mutation.PartiesCleared() {
		_spec.ClearField(contract.FieldParties, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminationDate(); ok {
		_spec.SetField(contract.FieldTerminationDate, field.TypeTime, value)
	}
	if _u.mutation.TerminationDateCleared() {
		_spec.ClearField(contract.FieldTerminationDate, field.TypeTime)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
