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
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
)

// EntityLinkUpdate is the builder for updating EntityLink entities.
type EntityLinkUpdate struct {
	config
	hooks    []Hook
	mutation *EntityLinkMutation
}

// Where appends a list predicates to the EntityLinkUpdate builder.
func (_u *EntityLinkUpdate) Where(ps ...predicate.EntityLink) *EntityLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *EntityLinkUpdate) SetFileID(v uuid.UUID) *EntityLinkUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableFileID(v *uuid.UUID) *EntityLinkUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityLinkUpdate) SetEntityType(v string) *EntityLinkUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableEntityType(v *string) *EntityLinkUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityLinkUpdate) SetEntityID(v uuid.UUID) *EntityLinkUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableEntityID(v *uuid.UUID) *EntityLinkUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EntityLinkUpdate) SetIsPrimary(v bool) *EntityLinkUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableIsPrimary(v *bool) *EntityLinkUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EntityLinkUpdate) SetConfidenceScore(v float64) *EntityLinkUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableConfidenceScore(v *float64) *EntityLinkUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EntityLinkUpdate) AddConfidenceScore(v float64) *EntityLinkUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractionProvider sets the "extraction_provider" field.
func (_u *EntityLinkUpdate) SetExtractionProvider(v string) *EntityLinkUpdate {
	_u.mutation.SetExtractionProvider(v)
	return _u
}

// SetNillableExtractionProvider sets the "extraction_provider" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableExtractionProvider(v *string) *EntityLinkUpdate {
	if v != nil {
		_u.SetExtractionProvider(*v)
	}
	return _u
}

// ClearExtractionProvider clears the value of the "extraction_provider" field.
func (_u *EntityLinkUpdate) ClearExtractionProvider() *EntityLinkUpdate {
	_u.mutation.ClearExtractionProvider()
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *EntityLinkUpdate) SetExtractionModel(v string) *EntityLinkUpdate {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableExtractionModel(v *string) *EntityLinkUpdate {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (_u *EntityLinkUpdate) ClearExtractionModel() *EntityLinkUpdate {
	_u.mutation.ClearExtractionModel()
	return _u
}

// SetExtractionMetadata sets the "extraction_metadata" field.
func (_u *EntityLinkUpdate) SetExtractionMetadata(v map[string]interface{}) *EntityLinkUpdate {
	_u.mutation.SetExtractionMetadata(v)
	return _u
}

// ClearExtractionMetadata clears the value of the "extraction_metadata" field.
func (_u *EntityLinkUpdate) ClearExtractionMetadata() *EntityLinkUpdate {
	_u.mutation.ClearExtractionMetadata()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EntityLinkUpdate) SetExtractedAt(v time.Time) *EntityLinkUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableExtractedAt(v *time.Time) *EntityLinkUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityLinkUpdate) SetDeletedAt(v time.Time) *EntityLinkUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityLinkUpdate) SetNillableDeletedAt(v *time.Time) *EntityLinkUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityLinkUpdate) ClearDeletedAt() *EntityLinkUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFile sets the "file" edge to the File entity.
func (_u *EntityLinkUpdate) SetFile(v *File) *EntityLinkUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the EntityLinkMutation object of the builder.
func (_u *EntityLinkUpdate) Mutation() *EntityLinkMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the File entity.
func (_u *EntityLinkUpdate) ClearFile() *EntityLinkUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityLinkUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entitylink.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntityLink.entity_type": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityLink.file"`)
	}
	return nil
}

func (_u *EntityLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitylink.Table, entitylink.Columns, sqlgraph.NewFieldSpec(entitylink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitylink.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitylink.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(entitylink.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(entitylink.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(entitylink.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractionProvider(); ok {
		_spec.SetField(entitylink.FieldExtractionProvider, field.TypeString, value)
	}
	if _u.mutation.ExtractionProviderCleared() {
		_spec.ClearField(entitylink.FieldExtractionProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(entitylink.FieldExtractionModel, field.TypeString, value)
	}
	if _u.mutation.ExtractionModelCleared() {
		_spec.ClearField(entitylink.FieldExtractionModel, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionMetadata(); ok {
		_spec.SetField(entitylink.FieldExtractionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionMetadataCleared() {
		_spec.ClearField(entitylink.FieldExtractionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(entitylink.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entitylink.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entitylink.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitylink.FileTable,
			Columns: []string{entitylink.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitylink.FileTable,
			Columns: []string{entitylink.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityLinkUpdateOne is the builder for updating a single EntityLink entity.
type EntityLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityLinkMutation
}

// SetFileID sets the "file_id" field.
func (_u *EntityLinkUpdateOne) SetFileID(v uuid.UUID) *EntityLinkUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableFileID(v *uuid.UUID) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityLinkUpdateOne) SetEntityType(v string) *EntityLinkUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableEntityType(v *string) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityLinkUpdateOne) SetEntityID(v uuid.UUID) *EntityLinkUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableEntityID(v *uuid.UUID) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EntityLinkUpdateOne) SetIsPrimary(v bool) *EntityLinkUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableIsPrimary(v *bool) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EntityLinkUpdateOne) SetConfidenceScore(v float64) *EntityLinkUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableConfidenceScore(v *float64) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EntityLinkUpdateOne) AddConfidenceScore(v float64) *EntityLinkUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractionProvider sets the "extraction_provider" field.
func (_u *EntityLinkUpdateOne) SetExtractionProvider(v string) *EntityLinkUpdateOne {
	_u.mutation.SetExtractionProvider(v)
	return _u
}

// SetNillableExtractionProvider sets the "extraction_provider" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableExtractionProvider(v *string) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetExtractionProvider(*v)
	}
	return _u
}

// ClearExtractionProvider clears the value of the "extraction_provider" field.
func (_u *EntityLinkUpdateOne) ClearExtractionProvider() *EntityLinkUpdateOne {
	_u.mutation.ClearExtractionProvider()
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *EntityLinkUpdateOne) SetExtractionModel(v string) *EntityLinkUpdateOne {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableExtractionModel(v *string) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (_u *EntityLinkUpdateOne) ClearExtractionModel() *EntityLinkUpdateOne {
	_u.mutation.ClearExtractionModel()
	return _u
}

// SetExtractionMetadata sets the "extraction_metadata" field.
func (_u *EntityLinkUpdateOne) SetExtractionMetadata(v map[string]interface{}) *EntityLinkUpdateOne {
	_u.mutation.SetExtractionMetadata(v)
	return _u
}

// ClearExtractionMetadata clears the value of the "extraction_metadata" field.
func (_u *EntityLinkUpdateOne) ClearExtractionMetadata() *EntityLinkUpdateOne {
	_u.mutation.ClearExtractionMetadata()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EntityLinkUpdateOne) SetExtractedAt(v time.Time) *EntityLinkUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableExtractedAt(v *time.Time) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EntityLinkUpdateOne) SetDeletedAt(v time.Time) *EntityLinkUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EntityLinkUpdateOne) SetNillableDeletedAt(v *time.Time) *EntityLinkUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EntityLinkUpdateOne) ClearDeletedAt() *EntityLinkUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFile sets the "file" edge to the File entity.
func (_u *EntityLinkUpdateOne) SetFile(v *File) *EntityLinkUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the EntityLinkMutation object of the builder.
func (_u *EntityLinkUpdateOne) Mutation() *EntityLinkMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the File entity.
func (_u *EntityLinkUpdateOne) ClearFile() *EntityLinkUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the EntityLinkUpdate builder.
func (_u *EntityLinkUpdateOne) Where(ps ...predicate.EntityLink) *EntityLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityLinkUpdateOne) Select(field string, fields ...string) *EntityLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityLink entity.
func (_u *EntityLinkUpdateOne) Save(ctx context.Context) (*EntityLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityLinkUpdateOne) SaveX(ctx context.Context) *EntityLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityLinkUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entitylink.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntityLink.entity_type": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityLink.file"`)
	}
	return nil
}

func (_u *EntityLinkUpdateOne) sqlSave(ctx context.Context) (_node *EntityLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitylink.Table, entitylink.Columns, sqlgraph.NewFieldSpec(entitylink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitylink.FieldID)
		for _, f := range fields {
			if !entitylink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitylink.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitylink.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitylink.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(entitylink.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(entitylink.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(entitylink.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractionProvider(); ok {
		_spec.SetField(entitylink.FieldExtractionProvider, field.TypeString, value)
	}
	if _u.mutation.ExtractionProviderCleared() {
		_spec.ClearField(entitylink.FieldExtractionProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(entitylink.FieldExtractionModel, field.TypeString, value)
	}
	if _u.mutation.ExtractionModelCleared() {
		_spec.ClearField(entitylink.FieldExtractionModel, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionMetadata(); ok {
		_spec.SetField(entitylink.FieldExtractionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionMetadataCleared() {
		_spec.ClearField(entitylink.FieldExtractionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(entitylink.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(entitylink.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(entitylink.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitylink.FileTable,
			Columns: []string{entitylink.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitylink.FileTable,
			Columns: []string{entitylink.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntityLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
