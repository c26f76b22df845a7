// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
)

// EntityLink is the model entity for the EntityLink schema.
type EntityLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID uuid.UUID `json:"entity_id,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// ExtractionProvider holds the value of the "extraction_provider" field.
	ExtractionProvider string `json:"extraction_provider,omitempty"`
	// ExtractionModel holds the value of the "extraction_model" field.
	ExtractionModel string `json:"extraction_model,omitempty"`
	// ExtractionMetadata holds the value of the "extraction_metadata" field.
	ExtractionMetadata map[string]interface{} `json:"extraction_metadata,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityLinkQuery when eager-loading is set.
	Edges        EntityLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityLinkEdges holds the relations/edges for other nodes in the graph.
type EntityLinkEdges struct {
	// File holds the value of the file edge.
	File *File `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityLinkEdges) FileOrErr() (*File, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: file.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitylink.FieldExtractionMetadata:
			values[i] = new([]byte)
		case entitylink.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case entitylink.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case entitylink.FieldEntityType, entitylink.FieldExtractionProvider, entitylink.FieldExtractionModel:
			values[i] = new(sql.NullString)
		case entitylink.FieldExtractedAt, entitylink.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case entitylink.FieldID, entitylink.FieldFileID, entitylink.FieldOwnerID, entitylink.FieldEntityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityLink fields.
func (_m *EntityLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitylink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case entitylink.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case entitylink.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case entitylink.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case entitylink.FieldEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value != nil {
				_m.EntityID = *value
			}
		case entitylink.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case entitylink.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case entitylink.FieldExtractionProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_provider", values[i])
			} else if value.Valid {
				_m.ExtractionProvider = value.String
			}
		case entitylink.FieldExtractionModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_model", values[i])
			} else if value.Valid {
				_m.ExtractionModel = value.String
			}
		case entitylink.FieldExtractionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionMetadata); err != nil {
					return fmt.Errorf("unmarshal field extraction_metadata: %w", err)
				}
			}
		case entitylink.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case entitylink.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityLink.
// This includes values selected through modifiers, order, etc.
func (_m *EntityLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the EntityLink entity.
func (_m *EntityLink) QueryFile() *FileQuery {
	return NewEntityLinkClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this EntityLink.
// Note that you need to call EntityLink.Unwrap() before calling this method if this EntityLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityLink) Update() *EntityLinkUpdateOne {
	return NewEntityLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityLink) Unwrap() *EntityLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityLink) String() string {
	var builder strings.Builder
	builder.WriteString("EntityLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("extraction_provider=")
	builder.WriteString(_m.ExtractionProvider)
	builder.WriteString(", ")
	builder.WriteString("extraction_model=")
	builder.WriteString(_m.ExtractionModel)
	builder.WriteString(", ")
	builder.WriteString("extraction_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionMetadata))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// EntityLinks is a parsable slice of EntityLink.
type EntityLinks []*EntityLink
