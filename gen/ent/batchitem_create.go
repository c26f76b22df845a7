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
	"github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	"github.com/joseph-ayodele/docintel/gen/ent/batchjob"
)

// BatchItemCreate is the builder for creating a BatchItem entity.
type BatchItemCreate struct {
	config
	mutation *BatchItemMutation
	hooks    []Hook
}

// SetBatchJobID sets the "batch_job_id" field.
func (_c *BatchItemCreate) SetBatchJobID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetBatchJobID(v)
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *BatchItemCreate) SetItemIndex(v int) *BatchItemCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *BatchItemCreate) SetSource(v string) *BatchItemCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *BatchItemCreate) SetItemType(v string) *BatchItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *BatchItemCreate) SetOptions(v map[string]interface{}) *BatchItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchItemCreate) SetStatus(v string) *BatchItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableStatus(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *BatchItemCreate) SetResult(v map[string]interface{}) *BatchItemCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchItemCreate) SetErrorMessage(v string) *BatchItemCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableErrorMessage(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *BatchItemCreate) SetProcessingTimeMs(v int64) *BatchItemCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableProcessingTimeMs(v *int64) *BatchItemCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *BatchItemCreate) SetCost(v float64) *BatchItemCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableCost(v *float64) *BatchItemCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *BatchItemCreate) SetRetries(v int) *BatchItemCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableRetries(v *int) *BatchItemCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *BatchItemCreate) SetProcessedAt(v time.Time) *BatchItemCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableProcessedAt(v *time.Time) *BatchItemCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchItemCreate) SetID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableID(v *uuid.UUID) *BatchItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJobID sets the "job" edge to the BatchJob entity by ID.
func (_c *BatchItemCreate) SetJobID(id uuid.UUID) *BatchItemCreate {
	_c.mutation.SetJobID(id)
	return _c
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_c *BatchItemCreate) SetJob(v *BatchJob) *BatchItemCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_c *BatchItemCreate) Mutation() *BatchItemMutation {
	return _c.mutation
}

// Save creates the BatchItem in the database.
func (_c *BatchItemCreate) Save(ctx context.Context) (*BatchItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchItemCreate) SaveX(ctx context.Context) *BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batchitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := batchitem.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := batchitem.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := batchitem.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batchitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchItemCreate) check() error {
	if _, ok := _c.mutation.BatchJobID(); !ok {
		return &ValidationError{Name: "batch_job_id", err: errors.New(`ent: missing required field "BatchItem.batch_job_id"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "BatchItem.item_index"`)}
	}
	if v, ok := _c.mutation.ItemIndex(); ok {
		if err := batchitem.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "BatchItem.item_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "BatchItem.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := batchitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "BatchItem.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "BatchItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := batchitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "BatchItem.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "BatchItem.processing_time_ms"`)}
	}
	if v, ok := _c.mutation.ProcessingTimeMs(); ok {
		if err := batchitem.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "BatchItem.processing_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "BatchItem.cost"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "BatchItem.retries"`)}
	}
	if v, ok := _c.mutation.Retries(); ok {
		if err := batchitem.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retries": %w`, err)}
		}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "BatchItem.job"`)}
	}
	return nil
}

func (_c *BatchItemCreate) sqlSave(ctx context.Context) (*BatchItem, error) {
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

func (_c *BatchItemCreate) createSpec() (*BatchItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchitem.Table, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(batchitem.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(batchitem.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(batchitem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(batchitem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(batchitem.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(batchitem.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(batchitem.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(batchitem.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.JobTable,
			Columns: []string{batchitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BatchJobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchItemCreateBulk is the builder for creating many BatchItem entities in bulk.
type BatchItemCreateBulk struct {
	config
	err      error
	builders []*BatchItemCreate
}

// Save creates the BatchItem entities in the database.
func (_c *BatchItemCreateBulk) Save(ctx context.Context) ([]*BatchItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchItemMutation)
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
func (_c *BatchItemCreateBulk) SaveX(ctx context.Context) []*BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
