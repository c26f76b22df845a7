// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BankStatement is the predicate function for bankstatement builders.
type BankStatement func(*sql.Selector)

// BatchItem is the predicate function for batchitem builders.
type BatchItem func(*sql.Selector)

// BatchJob is the predicate function for batchjob builders.
type BatchJob func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// DocumentRecord is the predicate function for documentrecord builders.
type DocumentRecord func(*sql.Selector)

// DuplicateFlag is the predicate function for duplicateflag builders.
type DuplicateFlag func(*sql.Selector)

// EntityLink is the predicate function for entitylink builders.
type EntityLink func(*sql.Selector)

// File is the predicate function for file builders.
type File func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// Voucher is the predicate function for voucher builders.
type Voucher func(*sql.Selector)

// Warranty is the predicate function for warranty builders.
type Warranty func(*sql.Selector)
