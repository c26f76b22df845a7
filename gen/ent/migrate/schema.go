// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BankStatementsColumns holds the columns for the "bank_statements" table.
	BankStatementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "account_number", Type: field.TypeString, Nullable: true},
		{Name: "iban", Type: field.TypeString, Nullable: true},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "opening_balance", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "closing_balance", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BankStatementsTable holds the schema information for the "bank_statements" table.
	BankStatementsTable = &schema.Table{
		Name:       "bank_statements",
		Columns:    BankStatementsColumns,
		PrimaryKey: []*schema.Column{BankStatementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bankstatement_owner_id_period_end",
				Unique:  false,
				Columns: []*schema.Column{BankStatementsColumns[1], BankStatementsColumns[6]},
			},
		},
	}
	// BatchItemsColumns holds the columns for the "batch_items" table.
	BatchItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_index", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,6)"}},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_job_id", Type: field.TypeUUID},
	}
	// BatchItemsTable holds the schema information for the "batch_items" table.
	BatchItemsTable = &schema.Table{
		Name:       "batch_items",
		Columns:    BatchItemsColumns,
		PrimaryKey: []*schema.Column{BatchItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_items_batch_jobs_items",
				Columns:    []*schema.Column{BatchItemsColumns[12]},
				RefColumns: []*schema.Column{BatchJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batchitem_batch_job_id_item_index",
				Unique:  true,
				Columns: []*schema.Column{BatchItemsColumns[12], BatchItemsColumns[1]},
			},
			{
				Name:    "batchitem_batch_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{BatchItemsColumns[12], BatchItemsColumns[5]},
			},
		},
	}
	// BatchJobsColumns holds the columns for the "batch_jobs" table.
	BatchJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "total_items", Type: field.TypeInt},
		{Name: "processed_items", Type: field.TypeInt, Default: 0},
		{Name: "failed_items", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,6)"}},
		{Name: "actual_cost", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,6)"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BatchJobsTable holds the schema information for the "batch_jobs" table.
	BatchJobsTable = &schema.Table{
		Name:       "batch_jobs",
		Columns:    BatchJobsColumns,
		PrimaryKey: []*schema.Column{BatchJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batchjob_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{BatchJobsColumns[1], BatchJobsColumns[6]},
			},
			{
				Name:    "batchjob_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchJobsColumns[1], BatchJobsColumns[13]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "contract_number", Type: field.TypeString, Nullable: true},
		{Name: "parties", Type: field.TypeJSON, Nullable: true},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "termination_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
	}
	// DocumentRecordsColumns holds the columns for the "document_records" table.
	DocumentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentRecordsTable holds the schema information for the "document_records" table.
	DocumentRecordsTable = &schema.Table{
		Name:       "document_records",
		Columns:    DocumentRecordsColumns,
		PrimaryKey: []*schema.Column{DocumentRecordsColumns[0]},
	}
	// DuplicateFlagsColumns holds the columns for the "duplicate_flags" table.
	DuplicateFlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "duplicate_file_id", Type: field.TypeUUID},
		{Name: "reason", Type: field.TypeString, Default: "hash_match"},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "resolved_file_id", Type: field.TypeUUID, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DuplicateFlagsTable holds the schema information for the "duplicate_flags" table.
	DuplicateFlagsTable = &schema.Table{
		Name:       "duplicate_flags",
		Columns:    DuplicateFlagsColumns,
		PrimaryKey: []*schema.Column{DuplicateFlagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "duplicateflag_owner_id_file_id_duplicate_file_id",
				Unique:  true,
				Columns: []*schema.Column{DuplicateFlagsColumns[1], DuplicateFlagsColumns[2], DuplicateFlagsColumns[3]},
			},
			{
				Name:    "duplicateflag_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{DuplicateFlagsColumns[1], DuplicateFlagsColumns[5]},
			},
		},
	}
	// EntityLinksColumns holds the columns for the "entity_links" table.
	EntityLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "extraction_provider", Type: field.TypeString, Nullable: true},
		{Name: "extraction_model", Type: field.TypeString, Nullable: true},
		{Name: "extraction_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// EntityLinksTable holds the schema information for the "entity_links" table.
	EntityLinksTable = &schema.Table{
		Name:       "entity_links",
		Columns:    EntityLinksColumns,
		PrimaryKey: []*schema.Column{EntityLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_links_files_entity_links",
				Columns:    []*schema.Column{EntityLinksColumns[11]},
				RefColumns: []*schema.Column{FilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitylink_entity_type_entity_id",
				Unique:  true,
				Columns: []*schema.Column{EntityLinksColumns[2], EntityLinksColumns[3]},
			},
			{
				Name:    "entitylink_file_id",
				Unique:  false,
				Columns: []*schema.Column{EntityLinksColumns[11]},
			},
			{
				Name:    "entitylink_owner_id_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntityLinksColumns[1], EntityLinksColumns[2]},
			},
		},
	}
	// FilesColumns holds the columns for the "files" table.
	FilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// FilesTable holds the schema information for the "files" table.
	FilesTable = &schema.Table{
		Name:       "files",
		Columns:    FilesColumns,
		PrimaryKey: []*schema.Column{FilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "file_owner_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[1], FilesColumns[3]},
			},
			{
				Name:    "file_owner_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[1], FilesColumns[8]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "from_name", Type: field.TypeString, Nullable: true},
		{Name: "to_name", Type: field.TypeString, Nullable: true},
		{Name: "issue_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_owner_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[6]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "merchant_name", Type: field.TypeString},
		{Name: "receipt_number", Type: field.TypeString, Nullable: true},
		{Name: "tx_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_discount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_owner_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[4]},
			},
		},
	}
	// VouchersColumns holds the columns for the "vouchers" table.
	VouchersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Nullable: true},
		{Name: "voucher_type", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VouchersTable holds the schema information for the "vouchers" table.
	VouchersTable = &schema.Table{
		Name:       "vouchers",
		Columns:    VouchersColumns,
		PrimaryKey: []*schema.Column{VouchersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "voucher_owner_id_expiry_date",
				Unique:  false,
				Columns: []*schema.Column{VouchersColumns[1], VouchersColumns[5]},
			},
		},
	}
	// WarrantiesColumns holds the columns for the "warranties" table.
	WarrantiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "serial_number", Type: field.TypeString, Nullable: true},
		{Name: "covered_product", Type: field.TypeString, Nullable: true},
		{Name: "warranty_start_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "warranty_end_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WarrantiesTable holds the schema information for the "warranties" table.
	WarrantiesTable = &schema.Table{
		Name:       "warranties",
		Columns:    WarrantiesColumns,
		PrimaryKey: []*schema.Column{WarrantiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "warranty_owner_id_warranty_end_date",
				Unique:  false,
				Columns: []*schema.Column{WarrantiesColumns[1], WarrantiesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BankStatementsTable,
		BatchItemsTable,
		BatchJobsTable,
		ContractsTable,
		DocumentRecordsTable,
		DuplicateFlagsTable,
		EntityLinksTable,
		FilesTable,
		InvoicesTable,
		ReceiptsTable,
		VouchersTable,
		WarrantiesTable,
	}
)

func init() {
	BankStatementsTable.Annotation = &entsql.Annotation{
		Table: "bank_statements",
	}
	BatchItemsTable.ForeignKeys[0].RefTable = BatchJobsTable
	BatchItemsTable.Annotation = &entsql.Annotation{
		Table: "batch_items",
	}
	BatchJobsTable.Annotation = &entsql.Annotation{
		Table: "batch_jobs",
	}
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	DocumentRecordsTable.Annotation = &entsql.Annotation{
		Table: "document_records",
	}
	DuplicateFlagsTable.Annotation = &entsql.Annotation{
		Table: "duplicate_flags",
	}
	EntityLinksTable.ForeignKeys[0].RefTable = FilesTable
	EntityLinksTable.Annotation = &entsql.Annotation{
		Table: "entity_links",
	}
	FilesTable.Annotation = &entsql.Annotation{
		Table: "files",
	}
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	VouchersTable.Annotation = &entsql.Annotation{
		Table: "vouchers",
	}
	WarrantiesTable.Annotation = &entsql.Annotation{
		Table: "warranties",
	}
}
