// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
)

// DuplicateFlag is the model entity for the DuplicateFlag schema.
type DuplicateFlag struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// DuplicateFileID holds the value of the "duplicate_file_id" field.
	DuplicateFileID uuid.UUID `json:"duplicate_file_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ResolvedFileID holds the value of the "resolved_file_id" field.
	ResolvedFileID *uuid.UUID `json:"resolved_file_id,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DuplicateFlag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case duplicateflag.FieldResolvedFileID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case duplicateflag.FieldReason, duplicateflag.FieldStatus:
			values[i] = new(sql.NullString)
		case duplicateflag.FieldResolvedAt, duplicateflag.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case duplicateflag.FieldID, duplicateflag.FieldOwnerID, duplicateflag.FieldFileID, duplicateflag.FieldDuplicateFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DuplicateFlag fields.
func (_m *DuplicateFlag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case duplicateflag.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case duplicateflag.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case duplicateflag.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case duplicateflag.FieldDuplicateFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_file_id", values[i])
			} else if value != nil {
				_m.DuplicateFileID = *value
			}
		case duplicateflag.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case duplicateflag.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case duplicateflag.FieldResolvedFileID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_file_id", values[i])
			} else if value.Valid {
				_m.ResolvedFileID = new(uuid.UUID)
				*_m.ResolvedFileID = *value.S.(*uuid.UUID)
			}
		case duplicateflag.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case duplicateflag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DuplicateFlag.
// This includes values selected through modifiers, order, etc.
func (_m *DuplicateFlag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DuplicateFlag.
// Note that you need to call DuplicateFlag.Unwrap() before calling this method if this DuplicateFlag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DuplicateFlag) Update() *DuplicateFlagUpdateOne {
	return NewDuplicateFlagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DuplicateFlag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DuplicateFlag) Unwrap() *DuplicateFlag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DuplicateFlag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DuplicateFlag) String() string {
	var builder strings.Builder
	builder.WriteString("DuplicateFlag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("duplicate_file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DuplicateFileID))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ResolvedFileID; v != nil {
		builder.WriteString("resolved_file_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DuplicateFlags is a parsable slice of DuplicateFlag.
type DuplicateFlags []*DuplicateFlag
