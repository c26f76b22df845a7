// Code generated by ent, DO NOT EDIT.

package warranty

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the warranty type in the database.
	Label = "warranty"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldSerialNumber holds the string denoting the serial_number field in the database.
	FieldSerialNumber = "serial_number"
	// FieldCoveredProduct holds the string denoting the covered_product field in the database.
	FieldCoveredProduct = "covered_product"
	// FieldWarrantyStartDate holds the string denoting the warranty_start_date field in the database.
	FieldWarrantyStartDate = "warranty_start_date"
	// FieldWarrantyEndDate holds the string denoting the warranty_end_date field in the database.
	FieldWarrantyEndDate = "warranty_end_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the warranty in the database.
	Table = "warranties"
)

// Columns holds all SQL columns for warranty fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldSerialNumber,
	FieldCoveredProduct,
	FieldWarrantyStartDate,
	FieldWarrantyEndDate,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Warranty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// BySerialNumber orders the results by the serial_number field.
func BySerialNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerialNumber, opts...).ToFunc()
}

// ByCoveredProduct orders the results by the covered_product field.
func ByCoveredProduct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoveredProduct, opts...).ToFunc()
}

// ByWarrantyStartDate orders the results by the warranty_start_date field.
func ByWarrantyStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarrantyStartDate, opts...).ToFunc()
}

// ByWarrantyEndDate orders the results by the warranty_end_date field.
func ByWarrantyEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarrantyEndDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
