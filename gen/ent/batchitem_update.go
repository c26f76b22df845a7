// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	"github.com/joseph-ayodele/docintel/gen/ent/batchjob"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// BatchItemUpdate is the builder for updating BatchItem entities.
type BatchItemUpdate struct {
	config
	hooks    []Hook
	mutation *BatchItemMutation
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdate) Where(ps ...predicate.BatchItem) *BatchItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchJobID sets the "batch_job_id" field.
func (_u *BatchItemUpdate) SetBatchJobID(v uuid.UUID) *BatchItemUpdate {
	_u.mutation.SetBatchJobID(v)
	return _u
}

// SetNillableBatchJobID sets the "batch_job_id" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableBatchJobID(v *uuid.UUID) *BatchItemUpdate {
	if v != nil {
		_u.SetBatchJobID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BatchItemUpdate) SetSource(v string) *BatchItemUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableSource(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *BatchItemUpdate) SetItemType(v string) *BatchItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableItemType(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *BatchItemUpdate) SetOptions(v map[string]interface{}) *BatchItemUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *BatchItemUpdate) ClearOptions() *BatchItemUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdate) SetStatus(v string) *BatchItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableStatus(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *BatchItemUpdate) SetResult(v map[string]interface{}) *BatchItemUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *BatchItemUpdate) ClearResult() *BatchItemUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchItemUpdate) SetErrorMessage(v string) *BatchItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableErrorMessage(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchItemUpdate) ClearErrorMessage() *BatchItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *BatchItemUpdate) SetProcessingTimeMs(v int64) *BatchItemUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableProcessingTimeMs(v *int64) *BatchItemUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *BatchItemUpdate) AddProcessingTimeMs(v int64) *BatchItemUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *BatchItemUpdate) SetCost(v float64) *BatchItemUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableCost(v *float64) *BatchItemUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *BatchItemUpdate) AddCost(v float64) *BatchItemUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *BatchItemUpdate) SetRetries(v int) *BatchItemUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableRetries(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *BatchItemUpdate) AddRetries(v int) *BatchItemUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *BatchItemUpdate) SetProcessedAt(v time.Time) *BatchItemUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableProcessedAt(v *time.Time) *BatchItemUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *BatchItemUpdate) ClearProcessedAt() *BatchItemUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetJobID sets the "job" edge to the BatchJob entity by ID.
func (_u *BatchItemUpdate) SetJobID(id uuid.UUID) *BatchItemUpdate {
	_u.mutation.SetJobID(id)
	return _u
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdate) SetJob(v *BatchJob) *BatchItemUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdate) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdate) ClearJob() *BatchItemUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := batchitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "BatchItem.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := batchitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "BatchItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingTimeMs(); ok {
		if err := batchitem.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "BatchItem.processing_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := batchitem.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retries": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.job"`)
	}
	return nil
}

func (_u *BatchItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(batchitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(batchitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(batchitem.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(batchitem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(batchitem.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(batchitem.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(batchitem.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(batchitem.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(batchitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(batchitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(batchitem.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(batchitem.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(batchitem.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchItemUpdateOne is the builder for updating a single BatchItem entity.
type BatchItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchItemMutation
}

// SetBatchJobID sets the "batch_job_id" field.
func (_u *BatchItemUpdateOne) SetBatchJobID(v uuid.UUID) *BatchItemUpdateOne {
	_u.mutation.SetBatchJobID(v)
	return _u
}

// SetNillableBatchJobID sets the "batch_job_id" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableBatchJobID(v *uuid.UUID) *BatchItemUpdateOne {
	if v != nil {
		_u.SetBatchJobID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *BatchItemUpdateOne) SetSource(v string) *BatchItemUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableSource(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *BatchItemUpdateOne) SetItemType(v string) *BatchItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableItemType(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *BatchItemUpdateOne) SetOptions(v map[string]interface{}) *BatchItemUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *BatchItemUpdateOne) ClearOptions() *BatchItemUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdateOne) SetStatus(v string) *BatchItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableStatus(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *BatchItemUpdateOne) SetResult(v map[string]interface{}) *BatchItemUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *BatchItemUpdateOne) ClearResult() *BatchItemUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchItemUpdateOne) SetErrorMessage(v string) *BatchItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableErrorMessage(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchItemUpdateOne) ClearErrorMessage() *BatchItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *BatchItemUpdateOne) SetProcessingTimeMs(v int64) *BatchItemUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableProcessingTimeMs(v *int64) *BatchItemUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *BatchItemUpdateOne) AddProcessingTimeMs(v int64) *BatchItemUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *BatchItemUpdateOne) SetCost(v float64) *BatchItemUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableCost(v *float64) *BatchItemUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *BatchItemUpdateOne) AddCost(v float64) *BatchItemUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *BatchItemUpdateOne) SetRetries(v int) *BatchItemUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableRetries(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *BatchItemUpdateOne) AddRetries(v int) *BatchItemUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *BatchItemUpdateOne) SetProcessedAt(v time.Time) *BatchItemUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableProcessedAt(v *time.Time) *BatchItemUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *BatchItemUpdateOne) ClearProcessedAt() *BatchItemUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetJobID sets the "job" edge to the BatchJob entity by ID.
func (_u *BatchItemUpdateOne) SetJobID(id uuid.UUID) *BatchItemUpdateOne {
	_u.mutation.SetJobID(id)
	return _u
}

// SetJob sets the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdateOne) SetJob(v *BatchJob) *BatchItemUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdateOne) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (_u *BatchItemUpdateOne) ClearJob() *BatchItemUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdateOne) Where(ps ...predicate.BatchItem) *BatchItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchItemUpdateOne) Select(field string, fields ...string) *BatchItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchItem entity.
func (_u *BatchItemUpdateOne) Save(ctx context.Context) (*BatchItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdateOne) SaveX(ctx context.Context) *BatchItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := batchitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "BatchItem.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := batchitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "BatchItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingTimeMs(); ok {
		if err := batchitem.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "BatchItem.processing_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := batchitem.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "BatchItem.retries": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.job"`)
	}
	return nil
}

func (_u *BatchItemUpdateOne) sqlSave(ctx context.Context) (_node *BatchItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchitem.FieldID)
		for _, f := range fields {
			if !batchitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchitem.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(batchitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(batchitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(batchitem.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(batchitem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(batchitem.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(batchitem.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batchitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batchitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(batchitem.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(batchitem.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(batchitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(batchitem.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(batchitem.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(batchitem.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(batchitem.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(batchitem.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
