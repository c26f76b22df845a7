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
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
)

// EntityLinkCreate is the builder for creating a EntityLink entity.
type EntityLinkCreate struct {
	config
	mutation *EntityLinkMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *EntityLinkCreate) SetFileID(v uuid.UUID) *EntityLinkCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *EntityLinkCreate) SetOwnerID(v uuid.UUID) *EntityLinkCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityLinkCreate) SetEntityType(v string) *EntityLinkCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityLinkCreate) SetEntityID(v uuid.UUID) *EntityLinkCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *EntityLinkCreate) SetIsPrimary(v bool) *EntityLinkCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableIsPrimary(v *bool) *EntityLinkCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *EntityLinkCreate) SetConfidenceScore(v float64) *EntityLinkCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableConfidenceScore(v *float64) *EntityLinkCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetExtractionProvider sets the "extraction_provider" field.
func (_c *EntityLinkCreate) SetExtractionProvider(v string) *EntityLinkCreate {
	_c.mutation.SetExtractionProvider(v)
	return _c
}

// SetNillableExtractionProvider sets the "extraction_provider" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableExtractionProvider(v *string) *EntityLinkCreate {
	if v != nil {
		_c.SetExtractionProvider(*v)
	}
	return _c
}

// SetExtractionModel sets the "extraction_model" field.
func (_c *EntityLinkCreate) SetExtractionModel(v string) *EntityLinkCreate {
	_c.mutation.SetExtractionModel(v)
	return _c
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableExtractionModel(v *string) *EntityLinkCreate {
	if v != nil {
		_c.SetExtractionModel(*v)
	}
	return _c
}

// SetExtractionMetadata sets the "extraction_metadata" field.
func (_c *EntityLinkCreate) SetExtractionMetadata(v map[string]interface{}) *EntityLinkCreate {
	_c.mutation.SetExtractionMetadata(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *EntityLinkCreate) SetExtractedAt(v time.Time) *EntityLinkCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableExtractedAt(v *time.Time) *EntityLinkCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EntityLinkCreate) SetDeletedAt(v time.Time) *EntityLinkCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableDeletedAt(v *time.Time) *EntityLinkCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityLinkCreate) SetID(v uuid.UUID) *EntityLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EntityLinkCreate) SetNillableID(v *uuid.UUID) *EntityLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the File entity.
func (_c *EntityLinkCreate) SetFile(v *File) *EntityLinkCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the EntityLinkMutation object of the builder.
func (_c *EntityLinkCreate) Mutation() *EntityLinkMutation {
	return _c.mutation
}

// Save creates the EntityLink in the database.
func (_c *EntityLinkCreate) Save(ctx context.Context) (*EntityLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityLinkCreate) SaveX(ctx context.Context) *EntityLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityLinkCreate) defaults() {
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := entitylink.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := entitylink.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := entitylink.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entitylink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityLinkCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "EntityLink.file_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "EntityLink.owner_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityLink.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entitylink.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntityLink.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityLink.entity_id"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "EntityLink.is_primary"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "EntityLink.confidence_score"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "EntityLink.extracted_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "EntityLink.file"`)}
	}
	return nil
}

func (_c *EntityLinkCreate) sqlSave(ctx context.Context) (*EntityLink, error) {
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

func (_c *EntityLinkCreate) createSpec() (*EntityLink, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitylink.Table, sqlgraph.NewFieldSpec(entitylink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(entitylink.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitylink.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitylink.FieldEntityID, field.TypeUUID, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(entitylink.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(entitylink.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ExtractionProvider(); ok {
		_spec.SetField(entitylink.FieldExtractionProvider, field.TypeString, value)
		_node.ExtractionProvider = value
	}
	if value, ok := _c.mutation.ExtractionModel(); ok {
		_spec.SetField(entitylink.FieldExtractionModel, field.TypeString, value)
		_node.ExtractionModel = value
	}
	if value, ok := _c.mutation.ExtractionMetadata(); ok {
		_spec.SetField(entitylink.FieldExtractionMetadata, field.TypeJSON, value)
		_node.ExtractionMetadata = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(entitylink.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(entitylink.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityLinkCreateBulk is the builder for creating many EntityLink entities in bulk.
type EntityLinkCreateBulk struct {
	config
	err      error
	builders []*EntityLinkCreate
}

// Save creates the EntityLink entities in the database.
func (_c *EntityLinkCreateBulk) Save(ctx context.Context) ([]*EntityLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityLinkMutation)
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
func (_c *EntityLinkCreateBulk) SaveX(ctx context.Context) []*EntityLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
