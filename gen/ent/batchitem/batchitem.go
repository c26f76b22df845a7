// Code generated by ent, DO NOT EDIT.

package batchitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batchitem type in the database.
	Label = "batch_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBatchJobID holds the string denoting the batch_job_id field in the database.
	FieldBatchJobID = "batch_job_id"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldRetries holds the string denoting the retries field in the database.
	FieldRetries = "retries"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the batchitem in the database.
	Table = "batch_items"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "batch_items"
	// JobInverseTable is the table name for the BatchJob entity.
	// It exists in this package in order to avoid circular dependency with the "batchjob" package.
	JobInverseTable = "batch_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "batch_job_id"
)

// Columns holds all SQL columns for batchitem fields.
var Columns = []string{
	FieldID,
	FieldBatchJobID,
	FieldItemIndex,
	FieldSource,
	FieldItemType,
	FieldOptions,
	FieldStatus,
	FieldResult,
	FieldErrorMessage,
	FieldProcessingTimeMs,
	FieldCost,
	FieldRetries,
	FieldProcessedAt,
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
	// ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	ItemIndexValidator func(int) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	ItemTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProcessingTimeMs holds the default value on creation for the "processing_time_ms" field.
	DefaultProcessingTimeMs int64
	// ProcessingTimeMsValidator is a validator for the "processing_time_ms" field. It is called by the builders before save.
	ProcessingTimeMsValidator func(int64) error
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultRetries holds the default value on creation for the "retries" field.
	DefaultRetries int
	// RetriesValidator is a validator for the "retries" field. It is called by the builders before save.
	RetriesValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BatchItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBatchJobID orders the results by the batch_job_id field.
func ByBatchJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchJobID, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByRetries orders the results by the retries field.
func ByRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetries, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
