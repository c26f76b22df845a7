// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

// Warranty is the model entity for the Warranty schema.
type Warranty struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// SerialNumber holds the value of the "serial_number" field.
	SerialNumber string `json:"serial_number,omitempty"`
	// CoveredProduct holds the value of the "covered_product" field.
	CoveredProduct string `json:"covered_product,omitempty"`
	// WarrantyStartDate holds the value of the "warranty_start_date" field.
	WarrantyStartDate *time.Time `json:"warranty_start_date,omitempty"`
	// WarrantyEndDate holds the value of the "warranty_end_date" field.
	WarrantyEndDate *time.Time `json:"warranty_end_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Warranty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case warranty.FieldSerialNumber, warranty.FieldCoveredProduct:
			values[i] = new(sql.NullString)
		case warranty.FieldWarrantyStartDate, warranty.FieldWarrantyEndDate, warranty.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case warranty.FieldID, warranty.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Warranty fields.
func (_m *Warranty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case warranty.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case warranty.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case warranty.FieldSerialNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial_number", values[i])
			} else if value.Valid {
				_m.SerialNumber = value.String
			}
		case warranty.FieldCoveredProduct:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field covered_product", values[i])
			} else if value.Valid {
				_m.CoveredProduct = value.String
			}
		case warranty.FieldWarrantyStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field warranty_start_date", values[i])
			} else if value.Valid {
				_m.WarrantyStartDate = new(time.Time)
				*_m.WarrantyStartDate = value.Time
			}
		case warranty.FieldWarrantyEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field warranty_end_date", values[i])
			} else if value.Valid {
				_m.WarrantyEndDate = new(time.Time)
				*_m.WarrantyEndDate = value.Time
			}
		case warranty.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Warranty.
// This includes values selected through modifiers, order, etc.
func (_m *Warranty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Warranty.
// Note that you need to call Warranty.Unwrap() before calling this method if this Warranty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Warranty) Update() *WarrantyUpdateOne {
	return NewWarrantyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Warranty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Warranty) Unwrap() *Warranty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Warranty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Warranty) String() string {
	var builder strings.Builder
	builder.WriteString("Warranty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("serial_number=")
	builder.WriteString(_m.SerialNumber)
	builder.WriteString(", ")
	builder.WriteString("covered_product=")
	builder.WriteString(_m.CoveredProduct)
	builder.WriteString(", ")
	if v := _m.WarrantyStartDate; v != nil {
		builder.WriteString("warranty_start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.WarrantyEndDate; v != nil {
		builder.WriteString("warranty_end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Warranties is a parsable slice of Warranty.
type Warranties []*Warranty
