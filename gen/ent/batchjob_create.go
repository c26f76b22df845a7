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

// BatchJobCreate is the builder for creating a BatchJob entity.
type BatchJobCreate struct {
	config
	mutation *BatchJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *BatchJobCreate) SetOwnerID(v uuid.UUID) *BatchJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *BatchJobCreate) SetJobType(v string) *BatchJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *BatchJobCreate) SetTotalItems(v int) *BatchJobCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetProcessedItems sets the "processed_items" field.
func (_c *BatchJobCreate) SetProcessedItems(v int) *BatchJobCreate {
	_c.mutation.SetProcessedItems(v)
	return _c
}

// SetNillableProcessedItems sets the "processed_items" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableProcessedItems(v *int) *BatchJobCreate {
	if v != nil {
		_c.SetProcessedItems(*v)
	}
	return _c
}

// SetFailedItems sets the "failed_items" field.
func (_c *BatchJobCreate) SetFailedItems(v int) *BatchJobCreate {
	_c.mutation.SetFailedItems(v)
	return _c
}

// SetNillableFailedItems sets the "failed_items" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableFailedItems(v *int) *BatchJobCreate {
	if v != nil {
		_c.SetFailedItems(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchJobCreate) SetStatus(v string) *BatchJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableStatus(v *string) *BatchJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *BatchJobCreate) SetOptions(v map[string]interface{}) *BatchJobCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *BatchJobCreate) SetEstimatedCost(v float64) *BatchJobCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableEstimatedCost(v *float64) *BatchJobCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetActualCost sets the "actual_cost" field.
func (_c *BatchJobCreate) SetActualCost(v float64) *BatchJobCreate {
	_c.mutation.SetActualCost(v)
	return _c
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableActualCost(v *float64) *BatchJobCreate {
	if v != nil {
		_c.SetActualCost(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BatchJobCreate) SetStartedAt(v time.Time) *BatchJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableStartedAt(v *time.Time) *BatchJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BatchJobCreate) SetCompletedAt(v time.Time) *BatchJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableCompletedAt(v *time.Time) *BatchJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchJobCreate) SetErrorMessage(v string) *BatchJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableErrorMessage(v *string) *BatchJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchJobCreate) SetCreatedAt(v time.Time) *BatchJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableCreatedAt(v *time.Time) *BatchJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchJobCreate) SetID(v uuid.UUID) *BatchJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchJobCreate) SetNillableID(v *uuid.UUID) *BatchJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_c *BatchJobCreate) AddItemIDs(ids ...uuid.UUID) *BatchJobCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_c *BatchJobCreate) AddItems(v ...*BatchItem) *BatchJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the BatchJobMutation object of the builder.
func (_c *BatchJobCreate) Mutation() *BatchJobMutation {
	return _c.mutation
}

// Save creates the BatchJob in the database.
func (_c *BatchJobCreate) Save(ctx context.Context) (*BatchJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchJobCreate) SaveX(ctx context.Context) *BatchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchJobCreate) defaults() {
	if _, ok := _c.mutation.ProcessedItems(); !ok {
		v := batchjob.DefaultProcessedItems
		_c.mutation.SetProcessedItems(v)
	}
	if _, ok := _c.mutation.FailedItems(); !ok {
		v := batchjob.DefaultFailedItems
		_c.mutation.SetFailedItems(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := batchjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		v := batchjob.DefaultEstimatedCost
		_c.mutation.SetEstimatedCost(v)
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		v := batchjob.DefaultActualCost
		_c.mutation.SetActualCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batchjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batchjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchJobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BatchJob.owner_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "BatchJob.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := batchjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "BatchJob.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "BatchJob.total_items"`)}
	}
	if v, ok := _c.mutation.TotalItems(); ok {
		if err := batchjob.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.total_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedItems(); !ok {
		return &ValidationError{Name: "processed_items", err: errors.New(`ent: missing required field "BatchJob.processed_items"`)}
	}
	if v, ok := _c.mutation.ProcessedItems(); ok {
		if err := batchjob.ProcessedItemsValidator(v); err != nil {
			return &ValidationError{Name: "processed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.processed_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedItems(); !ok {
		return &ValidationError{Name: "failed_items", err: errors.New(`ent: missing required field "BatchJob.failed_items"`)}
	}
	if v, ok := _c.mutation.FailedItems(); ok {
		if err := batchjob.FailedItemsValidator(v); err != nil {
			return &ValidationError{Name: "failed_items", err: fmt.Errorf(`ent: validator failed for field "BatchJob.failed_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		return &ValidationError{Name: "estimated_cost", err: errors.New(`ent: missing required field "BatchJob.estimated_cost"`)}
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		return &ValidationError{Name: "actual_cost", err: errors.New(`ent: missing required field "BatchJob.actual_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BatchJob.created_at"`)}
	}
	return nil
}

func (_c *BatchJobCreate) sqlSave(ctx context.Context) (*BatchJob, error) {
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

func (_c *BatchJobCreate) createSpec() (*BatchJob, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchjob.Table, sqlgraph.NewFieldSpec(batchjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(batchjob.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(batchjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(batchjob.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := _c.mutation.ProcessedItems(); ok {
		_spec.SetField(batchjob.FieldProcessedItems, field.TypeInt, value)
		_node.ProcessedItems = value
	}
	if value, ok := _c.mutation.FailedItems(); ok {
		_spec.SetField(batchjob.FieldFailedItems, field.TypeInt, value)
		_node.FailedItems = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(batchjob.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(batchjob.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.ActualCost(); ok {
		_spec.SetField(batchjob.FieldActualCost, field.TypeFloat64, value)
		_node.ActualCost = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(batchjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(batchjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batchjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batchjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchjob.ItemsTable,
			Columns: []string{batchjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchJobCreateBulk is the builder for creating many BatchJob entities in bulk.
type BatchJobCreateBulk struct {
	config
	err      error
	builders []*BatchJobCreate
}

// Save creates the BatchJob entities in the database.
func (_c *BatchJobCreateBulk) Save(ctx context.Context) ([]*BatchJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchJobMutation)
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
func (_c *BatchJobCreateBulk) SaveX(ctx context.Context) []*BatchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
