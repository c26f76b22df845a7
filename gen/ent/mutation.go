// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/bankstatement"
	"github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	"github.com/joseph-ayodele/docintel/gen/ent/batchjob"
	"github.com/joseph-ayodele/docintel/gen/ent/contract"
	"github.com/joseph-ayodele/docintel/gen/ent/documentrecord"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
	"github.com/joseph-ayodele/docintel/gen/ent/invoice"
	"github.com/joseph-ayodele/docintel/gen/ent/predicate"
	"github.com/joseph-ayodele/docintel/gen/ent/receipt"
	"github.com/joseph-ayodele/docintel/gen/ent/voucher"
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBankStatement  = "BankStatement"
	TypeBatchItem      = "BatchItem"
	TypeBatchJob       = "BatchJob"
	TypeContract       = "Contract"
	TypeDocumentRecord = "DocumentRecord"
	TypeDuplicateFlag  = "DuplicateFlag"
	TypeEntityLink     = "EntityLink"
	TypeFile           = "File"
	TypeInvoice        = "Invoice"
	TypeReceipt        = "Receipt"
	TypeVoucher        = "Voucher"
	TypeWarranty       = "Warranty"
)

// BankStatementMutation represents an operation that mutates the BankStatement nodes in the graph.
type BankStatementMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	bank_name          *string
	account_number     *string
	iban               *string
	period_start       *time.Time
	period_end         *time.Time
	opening_balance    *float64
	addopening_balance *float64
	closing_balance    *float64
	addclosing_balance *float64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*BankStatement, error)
	predicates         []predicate.BankStatement
}

var _ ent.Mutation = (*BankStatementMutation)(nil)

// bankstatementOption allows management of the mutation configuration using functional options.
type bankstatementOption func(*BankStatementMutation)

// newBankStatementMutation creates new mutation for the BankStatement entity.
func newBankStatementMutation(c config, op Op, opts ...bankstatementOption) *BankStatementMutation {
	m := &BankStatementMutation{
		config:        c,
		op:            op,
		typ:           TypeBankStatement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBankStatementID sets the ID field of the mutation.
func withBankStatementID(id uuid.UUID) bankstatementOption {
	return func(m *BankStatementMutation) {
		var (
			err   error
			once  sync.Once
			value *BankStatement
		)
		m.oldValue = func(ctx context.Context) (*BankStatement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BankStatement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBankStatement sets the old BankStatement of the mutation.
func withBankStatement(node *BankStatement) bankstatementOption {
	return func(m *BankStatementMutation) {
		m.oldValue = func(context.Context) (*BankStatement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BankStatementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BankStatementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BankStatement entities.
func (m *BankStatementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BankStatementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BankStatementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BankStatement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *BankStatementMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BankStatementMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BankStatementMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetBankName sets the "bank_name" field.
func (m *BankStatementMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *BankStatementMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldBankName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *BankStatementMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[bankstatement.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *BankStatementMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *BankStatementMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, bankstatement.FieldBankName)
}

// SetAccountNumber sets the "account_number" field.
func (m *BankStatementMutation) SetAccountNumber(s string) {
	m.account_number = &s
}

// AccountNumber returns the value of the "account_number" field in the mutation.
func (m *BankStatementMutation) AccountNumber() (r string, exists bool) {
	v := m.account_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountNumber returns the old "account_number" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldAccountNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountNumber: %w", err)
	}
	return oldValue.AccountNumber, nil
}

// ClearAccountNumber clears the value of the "account_number" field.
func (m *BankStatementMutation) ClearAccountNumber() {
	m.account_number = nil
	m.clearedFields[bankstatement.FieldAccountNumber] = struct{}{}
}

// AccountNumberCleared returns if the "account_number" field was cleared in this mutation.
func (m *BankStatementMutation) AccountNumberCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldAccountNumber]
	return ok
}

// ResetAccountNumber resets all changes to the "account_number" field.
func (m *BankStatementMutation) ResetAccountNumber() {
	m.account_number = nil
	delete(m.clearedFields, bankstatement.FieldAccountNumber)
}

// SetIban sets the "iban" field.
func (m *BankStatementMutation) SetIban(s string) {
	m.iban = &s
}

// Iban returns the value of the "iban" field in the mutation.
func (m *BankStatementMutation) Iban() (r string, exists bool) {
	v := m.iban
	if v == nil {
		return
	}
	return *v, true
}

// OldIban returns the old "iban" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldIban(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIban is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIban requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIban: %w", err)
	}
	return oldValue.Iban, nil
}

// ClearIban clears the value of the "iban" field.
func (m *BankStatementMutation) ClearIban() {
	m.iban = nil
	m.clearedFields[bankstatement.FieldIban] = struct{}{}
}

// IbanCleared returns if the "iban" field was cleared in this mutation.
func (m *BankStatementMutation) IbanCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldIban]
	return ok
}

// ResetIban resets all changes to the "iban" field.
func (m *BankStatementMutation) ResetIban() {
	m.iban = nil
	delete(m.clearedFields, bankstatement.FieldIban)
}

// SetPeriodStart sets the "period_start" field.
func (m *BankStatementMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *BankStatementMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *BankStatementMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[bankstatement.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *BankStatementMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *BankStatementMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, bankstatement.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *BankStatementMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *BankStatementMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *BankStatementMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[bankstatement.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *BankStatementMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *BankStatementMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, bankstatement.FieldPeriodEnd)
}

// SetOpeningBalance sets the "opening_balance" field.
func (m *BankStatementMutation) SetOpeningBalance(f float64) {
	m.opening_balance = &f
	m.addopening_balance = nil
}

// OpeningBalance returns the value of the "opening_balance" field in the mutation.
func (m *BankStatementMutation) OpeningBalance() (r float64, exists bool) {
	v := m.opening_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningBalance returns the old "opening_balance" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldOpeningBalance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningBalance: %w", err)
	}
	return oldValue.OpeningBalance, nil
}

// AddOpeningBalance adds f to the "opening_balance" field.
func (m *BankStatementMutation) AddOpeningBalance(f float64) {
	if m.addopening_balance != nil {
		*m.addopening_balance += f
	} else {
		m.addopening_balance = &f
	}
}

// AddedOpeningBalance returns the value that was added to the "opening_balance" field in this mutation.
func (m *BankStatementMutation) AddedOpeningBalance() (r float64, exists bool) {
	v := m.addopening_balance
	if v == nil {
		return
	}
	return *v, true
}

// ClearOpeningBalance clears the value of the "opening_balance" field.
func (m *BankStatementMutation) ClearOpeningBalance() {
	m.opening_balance = nil
	m.addopening_balance = nil
	m.clearedFields[bankstatement.FieldOpeningBalance] = struct{}{}
}

// OpeningBalanceCleared returns if the "opening_balance" field was cleared in this mutation.
func (m *BankStatementMutation) OpeningBalanceCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldOpeningBalance]
	return ok
}

// ResetOpeningBalance resets all changes to the "opening_balance" field.
func (m *BankStatementMutation) ResetOpeningBalance() {
	m.opening_balance = nil
	m.addopening_balance = nil
	delete(m.clearedFields, bankstatement.FieldOpeningBalance)
}

// SetClosingBalance sets the "closing_balance" field.
func (m *BankStatementMutation) SetClosingBalance(f float64) {
	m.closing_balance = &f
	m.addclosing_balance = nil
}

// ClosingBalance returns the value of the "closing_balance" field in the mutation.
func (m *BankStatementMutation) ClosingBalance() (r float64, exists bool) {
	v := m.closing_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldClosingBalance returns the old "closing_balance" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldClosingBalance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosingBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosingBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosingBalance: %w", err)
	}
	return oldValue.ClosingBalance, nil
}

// AddClosingBalance adds f to the "closing_balance" field.
func (m *BankStatementMutation) AddClosingBalance(f float64) {
	if m.addclosing_balance != nil {
		*m.addclosing_balance += f
	} else {
		m.addclosing_balance = &f
	}
}

// AddedClosingBalance returns the value that was added to the "closing_balance" field in this mutation.
func (m *BankStatementMutation) AddedClosingBalance() (r float64, exists bool) {
	v := m.addclosing_balance
	if v == nil {
		return
	}
	return *v, true
}

// ClearClosingBalance clears the value of the "closing_balance" field.
func (m *BankStatementMutation) ClearClosingBalance() {
	m.closing_balance = nil
	m.addclosing_balance = nil
	m.clearedFields[bankstatement.FieldClosingBalance] = struct{}{}
}

// ClosingBalanceCleared returns if the "closing_balance" field was cleared in this mutation.
func (m *BankStatementMutation) ClosingBalanceCleared() bool {
	_, ok := m.clearedFields[bankstatement.FieldClosingBalance]
	return ok
}

// ResetClosingBalance resets all changes to the "closing_balance" field.
func (m *BankStatementMutation) ResetClosingBalance() {
	m.closing_balance = nil
	m.addclosing_balance = nil
	delete(m.clearedFields, bankstatement.FieldClosingBalance)
}

// SetCreatedAt sets the "created_at" field.
func (m *BankStatementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BankStatementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BankStatement entity.
// If the BankStatement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BankStatementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BankStatementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BankStatementMutation builder.
func (m *BankStatementMutation) Where(ps ...predicate.BankStatement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BankStatementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BankStatementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BankStatement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BankStatementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BankStatementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BankStatement).
func (m *BankStatementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BankStatementMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, bankstatement.FieldOwnerID)
	}
	if m.bank_name != nil {
		fields = append(fields, bankstatement.FieldBankName)
	}
	if m.account_number != nil {
		fields = append(fields, bankstatement.FieldAccountNumber)
	}
	if m.iban != nil {
		fields = append(fields, bankstatement.FieldIban)
	}
	if m.period_start != nil {
		fields = append(fields, bankstatement.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, bankstatement.FieldPeriodEnd)
	}
	if m.opening_balance != nil {
		fields = append(fields, bankstatement.FieldOpeningBalance)
	}
	if m.closing_balance != nil {
		fields = append(fields, bankstatement.FieldClosingBalance)
	}
	if m.created_at != nil {
		fields = append(fields, bankstatement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BankStatementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bankstatement.FieldOwnerID:
		return m.OwnerID()
	case bankstatement.FieldBankName:
		return m.BankName()
	case bankstatement.FieldAccountNumber:
		return m.AccountNumber()
	case bankstatement.FieldIban:
		return m.Iban()
	case bankstatement.FieldPeriodStart:
		return m.PeriodStart()
	case bankstatement.FieldPeriodEnd:
		return m.PeriodEnd()
	case bankstatement.FieldOpeningBalance:
		return m.OpeningBalance()
	case bankstatement.FieldClosingBalance:
		return m.ClosingBalance()
	case bankstatement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BankStatementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bankstatement.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case bankstatement.FieldBankName:
		return m.OldBankName(ctx)
	case bankstatement.FieldAccountNumber:
		return m.OldAccountNumber(ctx)
	case bankstatement.FieldIban:
		return m.OldIban(ctx)
	case bankstatement.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case bankstatement.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case bankstatement.FieldOpeningBalance:
		return m.OldOpeningBalance(ctx)
	case bankstatement.FieldClosingBalance:
		return m.OldClosingBalance(ctx)
	case bankstatement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BankStatement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankStatementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bankstatement.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case bankstatement.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case bankstatement.FieldAccountNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountNumber(v)
		return nil
	case bankstatement.FieldIban:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIban(v)
		return nil
	case bankstatement.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case bankstatement.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case bankstatement.FieldOpeningBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningBalance(v)
		return nil
	case bankstatement.FieldClosingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosingBalance(v)
		return nil
	case bankstatement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BankStatement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BankStatementMutation) AddedFields() []string {
	var fields []string
	if m.addopening_balance != nil {
		fields = append(fields, bankstatement.FieldOpeningBalance)
	}
	if m.addclosing_balance != nil {
		fields = append(fields, bankstatement.FieldClosingBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BankStatementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bankstatement.FieldOpeningBalance:
		return m.AddedOpeningBalance()
	case bankstatement.FieldClosingBalance:
		return m.AddedClosingBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BankStatementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bankstatement.FieldOpeningBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpeningBalance(v)
		return nil
	case bankstatement.FieldClosingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClosingBalance(v)
		return nil
	}
	return fmt.Errorf("unknown BankStatement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BankStatementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bankstatement.FieldBankName) {
		fields = append(fields, bankstatement.FieldBankName)
	}
	if m.FieldCleared(bankstatement.FieldAccountNumber) {
		fields = append(fields, bankstatement.FieldAccountNumber)
	}
	if m.FieldCleared(bankstatement.FieldIban) {
		fields = append(fields, bankstatement.FieldIban)
	}
	if m.FieldCleared(bankstatement.FieldPeriodStart) {
		fields = append(fields, bankstatement.FieldPeriodStart)
	}
	if m.FieldCleared(bankstatement.FieldPeriodEnd) {
		fields = append(fields, bankstatement.FieldPeriodEnd)
	}
	if m.FieldCleared(bankstatement.FieldOpeningBalance) {
		fields = append(fields, bankstatement.FieldOpeningBalance)
	}
	if m.FieldCleared(bankstatement.FieldClosingBalance) {
		fields = append(fields, bankstatement.FieldClosingBalance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BankStatementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BankStatementMutation) ClearField(name string) error {
	switch name {
	case bankstatement.FieldBankName:
		m.ClearBankName()
		return nil
	case bankstatement.FieldAccountNumber:
		m.ClearAccountNumber()
		return nil
	case bankstatement.FieldIban:
		m.ClearIban()
		return nil
	case bankstatement.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case bankstatement.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case bankstatement.FieldOpeningBalance:
		m.ClearOpeningBalance()
		return nil
	case bankstatement.FieldClosingBalance:
		m.ClearClosingBalance()
		return nil
	}
	return fmt.Errorf("unknown BankStatement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BankStatementMutation) ResetField(name string) error {
	switch name {
	case bankstatement.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case bankstatement.FieldBankName:
		m.ResetBankName()
		return nil
	case bankstatement.FieldAccountNumber:
		m.ResetAccountNumber()
		return nil
	case bankstatement.FieldIban:
		m.ResetIban()
		return nil
	case bankstatement.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case bankstatement.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case bankstatement.FieldOpeningBalance:
		m.ResetOpeningBalance()
		return nil
	case bankstatement.FieldClosingBalance:
		m.ResetClosingBalance()
		return nil
	case bankstatement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BankStatement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BankStatementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BankStatementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BankStatementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BankStatementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BankStatementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BankStatementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BankStatementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BankStatement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BankStatementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BankStatement edge %s", name)
}

// BatchItemMutation represents an operation that mutates the BatchItem nodes in the graph.
type BatchItemMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	item_index            *int
	additem_index         *int
	source                *string
	item_type             *string
	options               *map[string]interface{}
	status                *string
	result                *map[string]interface{}
	error_message         *string
	processing_time_ms    *int64
	addprocessing_time_ms *int64
	cost                  *float64
	addcost               *float64
	retries               *int
	addretries            *int
	processed_at          *time.Time
	clearedFields         map[string]struct{}
	job                   *uuid.UUID
	clearedjob            bool
	done                  bool
	oldValue              func(context.Context) (*BatchItem, error)
	predicates            []predicate.BatchItem
}

var _ ent.Mutation = (*BatchItemMutation)(nil)

// batchitemOption allows management of the mutation configuration using functional options.
type batchitemOption func(*BatchItemMutation)

// newBatchItemMutation creates new mutation for the BatchItem entity.
func newBatchItemMutation(c config, op Op, opts ...batchitemOption) *BatchItemMutation {
	m := &BatchItemMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchItemID sets the ID field of the mutation.
func withBatchItemID(id uuid.UUID) batchitemOption {
	return func(m *BatchItemMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchItem
		)
		m.oldValue = func(ctx context.Context) (*BatchItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchItem sets the old BatchItem of the mutation.
func withBatchItem(node *BatchItem) batchitemOption {
	return func(m *BatchItemMutation) {
		m.oldValue = func(context.Context) (*BatchItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchItem entities.
func (m *BatchItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchJobID sets the "batch_job_id" field.
func (m *BatchItemMutation) SetBatchJobID(u uuid.UUID) {
	m.job = &u
}

// BatchJobID returns the value of the "batch_job_id" field in the mutation.
func (m *BatchItemMutation) BatchJobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchJobID returns the old "batch_job_id" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldBatchJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchJobID: %w", err)
	}
	return oldValue.BatchJobID, nil
}

// ResetBatchJobID resets all changes to the "batch_job_id" field.
func (m *BatchItemMutation) ResetBatchJobID() {
	m.job = nil
}

// SetItemIndex sets the "item_index" field.
func (m *BatchItemMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *BatchItemMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldItemIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *BatchItemMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *BatchItemMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *BatchItemMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
}

// SetSource sets the "source" field.
func (m *BatchItemMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *BatchItemMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *BatchItemMutation) ResetSource() {
	m.source = nil
}

// SetItemType sets the "item_type" field.
func (m *BatchItemMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *BatchItemMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *BatchItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetOptions sets the "options" field.
func (m *BatchItemMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *BatchItemMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *BatchItemMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[batchitem.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *BatchItemMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *BatchItemMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, batchitem.FieldOptions)
}

// SetStatus sets the "status" field.
func (m *BatchItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchItemMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *BatchItemMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *BatchItemMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *BatchItemMutation) ClearResult() {
	m.result = nil
	m.clearedFields[batchitem.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *BatchItemMutation) ResultCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *BatchItemMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, batchitem.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batchitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batchitem.FieldErrorMessage)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *BatchItemMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *BatchItemMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *BatchItemMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *BatchItemMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *BatchItemMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetCost sets the "cost" field.
func (m *BatchItemMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *BatchItemMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *BatchItemMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *BatchItemMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *BatchItemMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetRetries sets the "retries" field.
func (m *BatchItemMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *BatchItemMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *BatchItemMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *BatchItemMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *BatchItemMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *BatchItemMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *BatchItemMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *BatchItemMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[batchitem.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *BatchItemMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *BatchItemMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, batchitem.FieldProcessedAt)
}

// SetJobID sets the "job" edge to the BatchJob entity by id.
func (m *BatchItemMutation) SetJobID(id uuid.UUID) {
	m.job = &id
}

// ClearJob clears the "job" edge to the BatchJob entity.
func (m *BatchItemMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[batchitem.FieldBatchJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the BatchJob entity was cleared.
func (m *BatchItemMutation) JobCleared() bool {
	return m.clearedjob
}

// JobID returns the "job" edge ID in the mutation.
func (m *BatchItemMutation) JobID() (id uuid.UUID, exists bool) {
	if m.job != nil {
		return *m.job, true
	}
	return
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *BatchItemMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *BatchItemMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the BatchItemMutation builder.
func (m *BatchItemMutation) Where(ps ...predicate.BatchItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchItem).
func (m *BatchItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, batchitem.FieldBatchJobID)
	}
	if m.item_index != nil {
		fields = append(fields, batchitem.FieldItemIndex)
	}
	if m.source != nil {
		fields = append(fields, batchitem.FieldSource)
	}
	if m.item_type != nil {
		fields = append(fields, batchitem.FieldItemType)
	}
	if m.options != nil {
		fields = append(fields, batchitem.FieldOptions)
	}
	if m.status != nil {
		fields = append(fields, batchitem.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, batchitem.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, batchitem.FieldErrorMessage)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, batchitem.FieldProcessingTimeMs)
	}
	if m.cost != nil {
		fields = append(fields, batchitem.FieldCost)
	}
	if m.retries != nil {
		fields = append(fields, batchitem.FieldRetries)
	}
	if m.processed_at != nil {
		fields = append(fields, batchitem.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldBatchJobID:
		return m.BatchJobID()
	case batchitem.FieldItemIndex:
		return m.ItemIndex()
	case batchitem.FieldSource:
		return m.Source()
	case batchitem.FieldItemType:
		return m.ItemType()
	case batchitem.FieldOptions:
		return m.Options()
	case batchitem.FieldStatus:
		return m.Status()
	case batchitem.FieldResult:
		return m.Result()
	case batchitem.FieldErrorMessage:
		return m.ErrorMessage()
	case batchitem.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case batchitem.FieldCost:
		return m.Cost()
	case batchitem.FieldRetries:
		return m.Retries()
	case batchitem.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchitem.FieldBatchJobID:
		return m.OldBatchJobID(ctx)
	case batchitem.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case batchitem.FieldSource:
		return m.OldSource(ctx)
	case batchitem.FieldItemType:
		return m.OldItemType(ctx)
	case batchitem.FieldOptions:
		return m.OldOptions(ctx)
	case batchitem.FieldStatus:
		return m.OldStatus(ctx)
	case batchitem.FieldResult:
		return m.OldResult(ctx)
	case batchitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batchitem.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case batchitem.FieldCost:
		return m.OldCost(ctx)
	case batchitem.FieldRetries:
		return m.OldRetries(ctx)
	case batchitem.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldBatchJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchJobID(v)
		return nil
	case batchitem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case batchitem.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case batchitem.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case batchitem.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case batchitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchitem.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case batchitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batchitem.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case batchitem.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case batchitem.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case batchitem.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchItemMutation) AddedFields() []string {
	var fields []string
	if m.additem_index != nil {
		fields = append(fields, batchitem.FieldItemIndex)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, batchitem.FieldProcessingTimeMs)
	}
	if m.addcost != nil {
		fields = append(fields, batchitem.FieldCost)
	}
	if m.addretries != nil {
		fields = append(fields, batchitem.FieldRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldItemIndex:
		return m.AddedItemIndex()
	case batchitem.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	case batchitem.FieldCost:
		return m.AddedCost()
	case batchitem.FieldRetries:
		return m.AddedRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	case batchitem.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	case batchitem.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case batchitem.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchitem.FieldOptions) {
		fields = append(fields, batchitem.FieldOptions)
	}
	if m.FieldCleared(batchitem.FieldResult) {
		fields = append(fields, batchitem.FieldResult)
	}
	if m.FieldCleared(batchitem.FieldErrorMessage) {
		fields = append(fields, batchitem.FieldErrorMessage)
	}
	if m.FieldCleared(batchitem.FieldProcessedAt) {
		fields = append(fields, batchitem.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchItemMutation) ClearField(name string) error {
	switch name {
	case batchitem.FieldOptions:
		m.ClearOptions()
		return nil
	case batchitem.FieldResult:
		m.ClearResult()
		return nil
	case batchitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case batchitem.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchItemMutation) ResetField(name string) error {
	switch name {
	case batchitem.FieldBatchJobID:
		m.ResetBatchJobID()
		return nil
	case batchitem.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case batchitem.FieldSource:
		m.ResetSource()
		return nil
	case batchitem.FieldItemType:
		m.ResetItemType()
		return nil
	case batchitem.FieldOptions:
		m.ResetOptions()
		return nil
	case batchitem.FieldStatus:
		m.ResetStatus()
		return nil
	case batchitem.FieldResult:
		m.ResetResult()
		return nil
	case batchitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batchitem.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case batchitem.FieldCost:
		m.ResetCost()
		return nil
	case batchitem.FieldRetries:
		m.ResetRetries()
		return nil
	case batchitem.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, batchitem.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchitem.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, batchitem.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchItemMutation) EdgeCleared(name string) bool {
	switch name {
	case batchitem.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchItemMutation) ClearEdge(name string) error {
	switch name {
	case batchitem.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown BatchItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchItemMutation) ResetEdge(name string) error {
	switch name {
	case batchitem.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown BatchItem edge %s", name)
}

// BatchJobMutation represents an operation that mutates the BatchJob nodes in the graph.
type BatchJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	job_type           *string
	total_items        *int
	addtotal_items     *int
	processed_items    *int
	addprocessed_items *int
	failed_items       *int
	addfailed_items    *int
	status             *string
	options            *map[string]interface{}
	estimated_cost     *float64
	addestimated_cost  *float64
	actual_cost        *float64
	addactual_cost     *float64
	started_at         *time.Time
	completed_at       *time.Time
	error_message      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*BatchJob, error)
	predicates         []predicate.BatchJob
}

var _ ent.Mutation = (*BatchJobMutation)(nil)

// batchjobOption allows management of the mutation configuration using functional options.
type batchjobOption func(*BatchJobMutation)

// newBatchJobMutation creates new mutation for the BatchJob entity.
func newBatchJobMutation(c config, op Op, opts ...batchjobOption) *BatchJobMutation {
	m := &BatchJobMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchJobID sets the ID field of the mutation.
func withBatchJobID(id uuid.UUID) batchjobOption {
	return func(m *BatchJobMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchJob
		)
		m.oldValue = func(ctx context.Context) (*BatchJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchJob sets the old BatchJob of the mutation.
func withBatchJob(node *BatchJob) batchjobOption {
	return func(m *BatchJobMutation) {
		m.oldValue = func(context.Context) (*BatchJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchJob entities.
func (m *BatchJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *BatchJobMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BatchJobMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BatchJobMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetJobType sets the "job_type" field.
func (m *BatchJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *BatchJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *BatchJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetTotalItems sets the "total_items" field.
func (m *BatchJobMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *BatchJobMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *BatchJobMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *BatchJobMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *BatchJobMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetProcessedItems sets the "processed_items" field.
func (m *BatchJobMutation) SetProcessedItems(i int) {
	m.processed_items = &i
	m.addprocessed_items = nil
}

// ProcessedItems returns the value of the "processed_items" field in the mutation.
func (m *BatchJobMutation) ProcessedItems() (r int, exists bool) {
	v := m.processed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedItems returns the old "processed_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldProcessedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedItems: %w", err)
	}
	return oldValue.ProcessedItems, nil
}

// AddProcessedItems adds i to the "processed_items" field.
func (m *BatchJobMutation) AddProcessedItems(i int) {
	if m.addprocessed_items != nil {
		*m.addprocessed_items += i
	} else {
		m.addprocessed_items = &i
	}
}

// AddedProcessedItems returns the value that was added to the "processed_items" field in this mutation.
func (m *BatchJobMutation) AddedProcessedItems() (r int, exists bool) {
	v := m.addprocessed_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedItems resets all changes to the "processed_items" field.
func (m *BatchJobMutation) ResetProcessedItems() {
	m.processed_items = nil
	m.addprocessed_items = nil
}

// SetFailedItems sets the "failed_items" field.
func (m *BatchJobMutation) SetFailedItems(i int) {
	m.failed_items = &i
	m.addfailed_items = nil
}

// FailedItems returns the value of the "failed_items" field in the mutation.
func (m *BatchJobMutation) FailedItems() (r int, exists bool) {
	v := m.failed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedItems returns the old "failed_items" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldFailedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedItems: %w", err)
	}
	return oldValue.FailedItems, nil
}

// AddFailedItems adds i to the "failed_items" field.
func (m *BatchJobMutation) AddFailedItems(i int) {
	if m.addfailed_items != nil {
		*m.addfailed_items += i
	} else {
		m.addfailed_items = &i
	}
}

// AddedFailedItems returns the value that was added to the "failed_items" field in this mutation.
func (m *BatchJobMutation) AddedFailedItems() (r int, exists bool) {
	v := m.addfailed_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedItems resets all changes to the "failed_items" field.
func (m *BatchJobMutation) ResetFailedItems() {
	m.failed_items = nil
	m.addfailed_items = nil
}

// SetStatus sets the "status" field.
func (m *BatchJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchJobMutation) ResetStatus() {
	m.status = nil
}

// SetOptions sets the "options" field.
func (m *BatchJobMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *BatchJobMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *BatchJobMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[batchjob.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *BatchJobMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *BatchJobMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, batchjob.FieldOptions)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *BatchJobMutation) SetEstimatedCost(f float64) {
	m.estimated_cost = &f
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *BatchJobMutation) EstimatedCost() (r float64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldEstimatedCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds f to the "estimated_cost" field.
func (m *BatchJobMutation) AddEstimatedCost(f float64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += f
	} else {
		m.addestimated_cost = &f
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *BatchJobMutation) AddedEstimatedCost() (r float64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *BatchJobMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
}

// SetActualCost sets the "actual_cost" field.
func (m *BatchJobMutation) SetActualCost(f float64) {
	m.actual_cost = &f
	m.addactual_cost = nil
}

// ActualCost returns the value of the "actual_cost" field in the mutation.
func (m *BatchJobMutation) ActualCost() (r float64, exists bool) {
	v := m.actual_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCost returns the old "actual_cost" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldActualCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCost: %w", err)
	}
	return oldValue.ActualCost, nil
}

// AddActualCost adds f to the "actual_cost" field.
func (m *BatchJobMutation) AddActualCost(f float64) {
	if m.addactual_cost != nil {
		*m.addactual_cost += f
	} else {
		m.addactual_cost = &f
	}
}

// AddedActualCost returns the value that was added to the "actual_cost" field in this mutation.
func (m *BatchJobMutation) AddedActualCost() (r float64, exists bool) {
	v := m.addactual_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCost resets all changes to the "actual_cost" field.
func (m *BatchJobMutation) ResetActualCost() {
	m.actual_cost = nil
	m.addactual_cost = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *BatchJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[batchjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *BatchJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, batchjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *BatchJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BatchJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BatchJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[batchjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BatchJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BatchJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, batchjob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batchjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batchjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batchjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BatchJob entity.
// If the BatchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddItemIDs adds the "items" edge to the BatchItem entity by ids.
func (m *BatchJobMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the BatchItem entity.
func (m *BatchJobMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the BatchItem entity was cleared.
func (m *BatchJobMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the BatchItem entity by IDs.
func (m *BatchJobMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the BatchItem entity.
func (m *BatchJobMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *BatchJobMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *BatchJobMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the BatchJobMutation builder.
func (m *BatchJobMutation) Where(ps ...predicate.BatchJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchJob).
func (m *BatchJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, batchjob.FieldOwnerID)
	}
	if m.job_type != nil {
		fields = append(fields, batchjob.FieldJobType)
	}
	if m.total_items != nil {
		fields = append(fields, batchjob.FieldTotalItems)
	}
	if m.processed_items != nil {
		fields = append(fields, batchjob.FieldProcessedItems)
	}
	if m.failed_items != nil {
		fields = append(fields, batchjob.FieldFailedItems)
	}
	if m.status != nil {
		fields = append(fields, batchjob.FieldStatus)
	}
	if m.options != nil {
		fields = append(fields, batchjob.FieldOptions)
	}
	if m.estimated_cost != nil {
		fields = append(fields, batchjob.FieldEstimatedCost)
	}
	if m.actual_cost != nil {
		fields = append(fields, batchjob.FieldActualCost)
	}
	if m.started_at != nil {
		fields = append(fields, batchjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, batchjob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, batchjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, batchjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchjob.FieldOwnerID:
		return m.OwnerID()
	case batchjob.FieldJobType:
		return m.JobType()
	case batchjob.FieldTotalItems:
		return m.TotalItems()
	case batchjob.FieldProcessedItems:
		return m.ProcessedItems()
	case batchjob.FieldFailedItems:
		return m.FailedItems()
	case batchjob.FieldStatus:
		return m.Status()
	case batchjob.FieldOptions:
		return m.Options()
	case batchjob.FieldEstimatedCost:
		return m.EstimatedCost()
	case batchjob.FieldActualCost:
		return m.ActualCost()
	case batchjob.FieldStartedAt:
		return m.StartedAt()
	case batchjob.FieldCompletedAt:
		return m.CompletedAt()
	case batchjob.FieldErrorMessage:
		return m.ErrorMessage()
	case batchjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case batchjob.FieldJobType:
		return m.OldJobType(ctx)
	case batchjob.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case batchjob.FieldProcessedItems:
		return m.OldProcessedItems(ctx)
	case batchjob.FieldFailedItems:
		return m.OldFailedItems(ctx)
	case batchjob.FieldStatus:
		return m.OldStatus(ctx)
	case batchjob.FieldOptions:
		return m.OldOptions(ctx)
	case batchjob.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case batchjob.FieldActualCost:
		return m.OldActualCost(ctx)
	case batchjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batchjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case batchjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batchjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BatchJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchjob.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case batchjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case batchjob.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case batchjob.FieldProcessedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedItems(v)
		return nil
	case batchjob.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedItems(v)
		return nil
	case batchjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchjob.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case batchjob.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case batchjob.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCost(v)
		return nil
	case batchjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batchjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case batchjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batchjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BatchJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, batchjob.FieldTotalItems)
	}
	if m.addprocessed_items != nil {
		fields = append(fields, batchjob.FieldProcessedItems)
	}
	if m.addfailed_items != nil {
		fields = append(fields, batchjob.FieldFailedItems)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, batchjob.FieldEstimatedCost)
	}
	if m.addactual_cost != nil {
		fields = append(fields, batchjob.FieldActualCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchjob.FieldTotalItems:
		return m.AddedTotalItems()
	case batchjob.FieldProcessedItems:
		return m.AddedProcessedItems()
	case batchjob.FieldFailedItems:
		return m.AddedFailedItems()
	case batchjob.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case batchjob.FieldActualCost:
		return m.AddedActualCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchjob.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case batchjob.FieldProcessedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedItems(v)
		return nil
	case batchjob.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedItems(v)
		return nil
	case batchjob.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case batchjob.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCost(v)
		return nil
	}
	return fmt.Errorf("unknown BatchJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchjob.FieldOptions) {
		fields = append(fields, batchjob.FieldOptions)
	}
	if m.FieldCleared(batchjob.FieldStartedAt) {
		fields = append(fields, batchjob.FieldStartedAt)
	}
	if m.FieldCleared(batchjob.FieldCompletedAt) {
		fields = append(fields, batchjob.FieldCompletedAt)
	}
	if m.FieldCleared(batchjob.FieldErrorMessage) {
		fields = append(fields, batchjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchJobMutation) ClearField(name string) error {
	switch name {
	case batchjob.FieldOptions:
		m.ClearOptions()
		return nil
	case batchjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case batchjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case batchjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown BatchJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchJobMutation) ResetField(name string) error {
	switch name {
	case batchjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case batchjob.FieldJobType:
		m.ResetJobType()
		return nil
	case batchjob.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case batchjob.FieldProcessedItems:
		m.ResetProcessedItems()
		return nil
	case batchjob.FieldFailedItems:
		m.ResetFailedItems()
		return nil
	case batchjob.FieldStatus:
		m.ResetStatus()
		return nil
	case batchjob.FieldOptions:
		m.ResetOptions()
		return nil
	case batchjob.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case batchjob.FieldActualCost:
		m.ResetActualCost()
		return nil
	case batchjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batchjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case batchjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batchjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batchjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, batchjob.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchJobMutation) EdgeCleared(name string) bool {
	switch name {
	case batchjob.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BatchJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchJobMutation) ResetEdge(name string) error {
	switch name {
	case batchjob.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown BatchJob edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	owner_id         *uuid.UUID
	contract_number  *string
	parties          *[]string
	appendparties    []string
	effective_date   *time.Time
	termination_date *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Contract, error)
	predicates       []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ContractMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ContractMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ContractMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetContractNumber sets the "contract_number" field.
func (m *ContractMutation) SetContractNumber(s string) {
	m.contract_number = &s
}

// ContractNumber returns the value of the "contract_number" field in the mutation.
func (m *ContractMutation) ContractNumber() (r string, exists bool) {
	v := m.contract_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContractNumber returns the old "contract_number" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractNumber: %w", err)
	}
	return oldValue.ContractNumber, nil
}

// ClearContractNumber clears the value of the "contract_number" field.
func (m *ContractMutation) ClearContractNumber() {
	m.contract_number = nil
	m.clearedFields[contract.FieldContractNumber] = struct{}{}
}

// ContractNumberCleared returns if the "contract_number" field was cleared in this mutation.
func (m *ContractMutation) ContractNumberCleared() bool {
	_, ok := m.clearedFields[contract.FieldContractNumber]
	return ok
}

// ResetContractNumber resets all changes to the "contract_number" field.
func (m *ContractMutation) ResetContractNumber() {
	m.contract_number = nil
	delete(m.clearedFields, contract.FieldContractNumber)
}

// SetParties sets the "parties" field.
func (m *ContractMutation) SetParties(s []string) {
	m.parties = &s
	m.appendparties = nil
}

// Parties returns the value of the "parties" field in the mutation.
func (m *ContractMutation) Parties() (r []string, exists bool) {
	v := m.parties
	if v == nil {
		return
	}
	return *v, true
}

// OldParties returns the old "parties" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldParties(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParties: %w", err)
	}
	return oldValue.Parties, nil
}

// AppendParties adds s to the "parties" field.
func (m *ContractMutation) AppendParties(s []string) {
	m.appendparties = append(m.appendparties, s...)
}

// AppendedParties returns the list of values that were appended to the "parties" field in this mutation.
func (m *ContractMutation) AppendedParties() ([]string, bool) {
	if len(m.appendparties) == 0 {
		return nil, false
	}
	return m.appendparties, true
}

// ClearParties clears the value of the "parties" field.
func (m *ContractMutation) ClearParties() {
	m.parties = nil
	m.appendparties = nil
	m.clearedFields[contract.FieldParties] = struct{}{}
}

// PartiesCleared returns if the "parties" field was cleared in this mutation.
func (m *ContractMutation) PartiesCleared() bool {
	_, ok := m.clearedFields[contract.FieldParties]
	return ok
}

// ResetParties resets all changes to the "parties" field.
func (m *ContractMutation) ResetParties() {
	m.parties = nil
	m.appendparties = nil
	delete(m.clearedFields, contract.FieldParties)
}

// SetEffectiveDate sets the "effective_date" field.
func (m *ContractMutation) SetEffectiveDate(t time.Time) {
	m.effective_date = &t
}

// EffectiveDate returns the value of the "effective_date" field in the mutation.
func (m *ContractMutation) EffectiveDate() (r time.Time, exists bool) {
	v := m.effective_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveDate returns the old "effective_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEffectiveDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveDate: %w", err)
	}
	return oldValue.EffectiveDate, nil
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (m *ContractMutation) ClearEffectiveDate() {
	m.effective_date = nil
	m.clearedFields[contract.FieldEffectiveDate] = struct{}{}
}

// EffectiveDateCleared returns if the "effective_date" field was cleared in this mutation.
func (m *ContractMutation) EffectiveDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldEffectiveDate]
	return ok
}

// ResetEffectiveDate resets all changes to the "effective_date" field.
func (m *ContractMutation) ResetEffectiveDate() {
	m.effective_date = nil
	delete(m.clearedFields, contract.FieldEffectiveDate)
}

// SetTerminationDate sets the "termination_date" field.
func (m *ContractMutation) SetTerminationDate(t time.Time) {
	m.termination_date = &t
}

// TerminationDate returns the value of the "termination_date" field in the mutation.
func (m *ContractMutation) TerminationDate() (r time.Time, exists bool) {
	v := m.termination_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationDate returns the old "termination_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTerminationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationDate: %w", err)
	}
	return oldValue.TerminationDate, nil
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (m *ContractMutation) ClearTerminationDate() {
	m.termination_date = nil
	m.clearedFields[contract.FieldTerminationDate] = struct{}{}
}

// TerminationDateCleared returns if the "termination_date" field was cleared in this mutation.
func (m *ContractMutation) TerminationDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldTerminationDate]
	return ok
}

// ResetTerminationDate resets all changes to the "termination_date" field.
func (m *ContractMutation) ResetTerminationDate() {
	m.termination_date = nil
	delete(m.clearedFields, contract.FieldTerminationDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, contract.FieldOwnerID)
	}
	if m.contract_number != nil {
		fields = append(fields, contract.FieldContractNumber)
	}
	if m.parties != nil {
		fields = append(fields, contract.FieldParties)
	}
	if m.effective_date != nil {
		fields = append(fields, contract.FieldEffectiveDate)
	}
	if m.termination_date != nil {
		fields = append(fields, contract.FieldTerminationDate)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldOwnerID:
		return m.OwnerID()
	case contract.FieldContractNumber:
		return m.ContractNumber()
	case contract.FieldParties:
		return m.Parties()
	case contract.FieldEffectiveDate:
		return m.EffectiveDate()
	case contract.FieldTerminationDate:
		return m.TerminationDate()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case contract.FieldContractNumber:
		return m.OldContractNumber(ctx)
	case contract.FieldParties:
		return m.OldParties(ctx)
	case contract.FieldEffectiveDate:
		return m.OldEffectiveDate(ctx)
	case contract.FieldTerminationDate:
		return m.OldTerminationDate(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case contract.FieldContractNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractNumber(v)
		return nil
	case contract.FieldParties:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParties(v)
		return nil
	case contract.FieldEffectiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveDate(v)
		return nil
	case contract.FieldTerminationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationDate(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldContractNumber) {
		fields = append(fields, contract.FieldContractNumber)
	}
	if m.FieldCleared(contract.FieldParties) {
		fields = append(fields, contract.FieldParties)
	}
	if m.FieldCleared(contract.FieldEffectiveDate) {
		fields = append(fields, contract.FieldEffectiveDate)
	}
	if m.FieldCleared(contract.FieldTerminationDate) {
		fields = append(fields, contract.FieldTerminationDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldContractNumber:
		m.ClearContractNumber()
		return nil
	case contract.FieldParties:
		m.ClearParties()
		return nil
	case contract.FieldEffectiveDate:
		m.ClearEffectiveDate()
		return nil
	case contract.FieldTerminationDate:
		m.ClearTerminationDate()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case contract.FieldContractNumber:
		m.ResetContractNumber()
		return nil
	case contract.FieldParties:
		m.ResetParties()
		return nil
	case contract.FieldEffectiveDate:
		m.ResetEffectiveDate()
		return nil
	case contract.FieldTerminationDate:
		m.ResetTerminationDate()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Contract edge %s", name)
}

// DocumentRecordMutation represents an operation that mutates the DocumentRecord nodes in the graph.
type DocumentRecordMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_id      *uuid.UUID
	title         *string
	summary       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DocumentRecord, error)
	predicates    []predicate.DocumentRecord
}

var _ ent.Mutation = (*DocumentRecordMutation)(nil)

// documentrecordOption allows management of the mutation configuration using functional options.
type documentrecordOption func(*DocumentRecordMutation)

// newDocumentRecordMutation creates new mutation for the DocumentRecord entity.
func newDocumentRecordMutation(c config, op Op, opts ...documentrecordOption) *DocumentRecordMutation {
	m := &DocumentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentRecordID sets the ID field of the mutation.
func withDocumentRecordID(id uuid.UUID) documentrecordOption {
	return func(m *DocumentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentRecord
		)
		m.oldValue = func(ctx context.Context) (*DocumentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentRecord sets the old DocumentRecord of the mutation.
func withDocumentRecord(node *DocumentRecord) documentrecordOption {
	return func(m *DocumentRecordMutation) {
		m.oldValue = func(context.Context) (*DocumentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentRecord entities.
func (m *DocumentRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *DocumentRecordMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *DocumentRecordMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the DocumentRecord entity.
// If the DocumentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentRecordMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *DocumentRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTitle sets the "title" field.
func (m *DocumentRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DocumentRecord entity.
// If the DocumentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentRecordMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[documentrecord.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentRecordMutation) TitleCleared() bool {
	_, ok := m.clearedFields[documentrecord.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentRecordMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, documentrecord.FieldTitle)
}

// SetSummary sets the "summary" field.
func (m *DocumentRecordMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DocumentRecordMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the DocumentRecord entity.
// If the DocumentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentRecordMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *DocumentRecordMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[documentrecord.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *DocumentRecordMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[documentrecord.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *DocumentRecordMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, documentrecord.FieldSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentRecord entity.
// If the DocumentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DocumentRecordMutation builder.
func (m *DocumentRecordMutation) Where(ps ...predicate.DocumentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentRecord).
func (m *DocumentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.owner_id != nil {
		fields = append(fields, documentrecord.FieldOwnerID)
	}
	if m.title != nil {
		fields = append(fields, documentrecord.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, documentrecord.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, documentrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentrecord.FieldOwnerID:
		return m.OwnerID()
	case documentrecord.FieldTitle:
		return m.Title()
	case documentrecord.FieldSummary:
		return m.Summary()
	case documentrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentrecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case documentrecord.FieldTitle:
		return m.OldTitle(ctx)
	case documentrecord.FieldSummary:
		return m.OldSummary(ctx)
	case documentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentrecord.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case documentrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case documentrecord.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case documentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentrecord.FieldTitle) {
		fields = append(fields, documentrecord.FieldTitle)
	}
	if m.FieldCleared(documentrecord.FieldSummary) {
		fields = append(fields, documentrecord.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentRecordMutation) ClearField(name string) error {
	switch name {
	case documentrecord.FieldTitle:
		m.ClearTitle()
		return nil
	case documentrecord.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown DocumentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentRecordMutation) ResetField(name string) error {
	switch name {
	case documentrecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case documentrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case documentrecord.FieldSummary:
		m.ResetSummary()
		return nil
	case documentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocumentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocumentRecord edge %s", name)
}

// DuplicateFlagMutation represents an operation that mutates the DuplicateFlag nodes in the graph.
type DuplicateFlagMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	owner_id          *uuid.UUID
	file_id           *uuid.UUID
	duplicate_file_id *uuid.UUID
	reason            *string
	status            *string
	resolved_file_id  *uuid.UUID
	resolved_at       *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DuplicateFlag, error)
	predicates        []predicate.DuplicateFlag
}

var _ ent.Mutation = (*DuplicateFlagMutation)(nil)

// duplicateflagOption allows management of the mutation configuration using functional options.
type duplicateflagOption func(*DuplicateFlagMutation)

// newDuplicateFlagMutation creates new mutation for the DuplicateFlag entity.
func newDuplicateFlagMutation(c config, op Op, opts ...duplicateflagOption) *DuplicateFlagMutation {
	m := &DuplicateFlagMutation{
		config:        c,
		op:            op,
		typ:           TypeDuplicateFlag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDuplicateFlagID sets the ID field of the mutation.
func withDuplicateFlagID(id uuid.UUID) duplicateflagOption {
	return func(m *DuplicateFlagMutation) {
		var (
			err   error
			once  sync.Once
			value *DuplicateFlag
		)
		m.oldValue = func(ctx context.Context) (*DuplicateFlag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DuplicateFlag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDuplicateFlag sets the old DuplicateFlag of the mutation.
func withDuplicateFlag(node *DuplicateFlag) duplicateflagOption {
	return func(m *DuplicateFlagMutation) {
		m.oldValue = func(context.Context) (*DuplicateFlag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DuplicateFlagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DuplicateFlagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DuplicateFlag entities.
func (m *DuplicateFlagMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DuplicateFlagMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DuplicateFlagMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DuplicateFlag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *DuplicateFlagMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *DuplicateFlagMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *DuplicateFlagMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFileID sets the "file_id" field.
func (m *DuplicateFlagMutation) SetFileID(u uuid.UUID) {
	m.file_id = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *DuplicateFlagMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *DuplicateFlagMutation) ResetFileID() {
	m.file_id = nil
}

// SetDuplicateFileID sets the "duplicate_file_id" field.
func (m *DuplicateFlagMutation) SetDuplicateFileID(u uuid.UUID) {
	m.duplicate_file_id = &u
}

// DuplicateFileID returns the value of the "duplicate_file_id" field in the mutation.
func (m *DuplicateFlagMutation) DuplicateFileID() (r uuid.UUID, exists bool) {
	v := m.duplicate_file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateFileID returns the old "duplicate_file_id" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldDuplicateFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateFileID: %w", err)
	}
	return oldValue.DuplicateFileID, nil
}

// ResetDuplicateFileID resets all changes to the "duplicate_file_id" field.
func (m *DuplicateFlagMutation) ResetDuplicateFileID() {
	m.duplicate_file_id = nil
}

// SetReason sets the "reason" field.
func (m *DuplicateFlagMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DuplicateFlagMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *DuplicateFlagMutation) ResetReason() {
	m.reason = nil
}

// SetStatus sets the "status" field.
func (m *DuplicateFlagMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DuplicateFlagMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DuplicateFlagMutation) ResetStatus() {
	m.status = nil
}

// SetResolvedFileID sets the "resolved_file_id" field.
func (m *DuplicateFlagMutation) SetResolvedFileID(u uuid.UUID) {
	m.resolved_file_id = &u
}

// ResolvedFileID returns the value of the "resolved_file_id" field in the mutation.
func (m *DuplicateFlagMutation) ResolvedFileID() (r uuid.UUID, exists bool) {
	v := m.resolved_file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedFileID returns the old "resolved_file_id" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldResolvedFileID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedFileID: %w", err)
	}
	return oldValue.ResolvedFileID, nil
}

// ClearResolvedFileID clears the value of the "resolved_file_id" field.
func (m *DuplicateFlagMutation) ClearResolvedFileID() {
	m.resolved_file_id = nil
	m.clearedFields[duplicateflag.FieldResolvedFileID] = struct{}{}
}

// ResolvedFileIDCleared returns if the "resolved_file_id" field was cleared in this mutation.
func (m *DuplicateFlagMutation) ResolvedFileIDCleared() bool {
	_, ok := m.clearedFields[duplicateflag.FieldResolvedFileID]
	return ok
}

// ResetResolvedFileID resets all changes to the "resolved_file_id" field.
func (m *DuplicateFlagMutation) ResetResolvedFileID() {
	m.resolved_file_id = nil
	delete(m.clearedFields, duplicateflag.FieldResolvedFileID)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DuplicateFlagMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DuplicateFlagMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DuplicateFlagMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[duplicateflag.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DuplicateFlagMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[duplicateflag.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DuplicateFlagMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, duplicateflag.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DuplicateFlagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DuplicateFlagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DuplicateFlag entity.
// If the DuplicateFlag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateFlagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DuplicateFlagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DuplicateFlagMutation builder.
func (m *DuplicateFlagMutation) Where(ps ...predicate.DuplicateFlag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DuplicateFlagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DuplicateFlagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DuplicateFlag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DuplicateFlagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DuplicateFlagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DuplicateFlag).
func (m *DuplicateFlagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DuplicateFlagMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, duplicateflag.FieldOwnerID)
	}
	if m.file_id != nil {
		fields = append(fields, duplicateflag.FieldFileID)
	}
	if m.duplicate_file_id != nil {
		fields = append(fields, duplicateflag.FieldDuplicateFileID)
	}
	if m.reason != nil {
		fields = append(fields, duplicateflag.FieldReason)
	}
	if m.status != nil {
		fields = append(fields, duplicateflag.FieldStatus)
	}
	if m.resolved_file_id != nil {
		fields = append(fields, duplicateflag.FieldResolvedFileID)
	}
	if m.resolved_at != nil {
		fields = append(fields, duplicateflag.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, duplicateflag.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DuplicateFlagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case duplicateflag.FieldOwnerID:
		return m.OwnerID()
	case duplicateflag.FieldFileID:
		return m.FileID()
	case duplicateflag.FieldDuplicateFileID:
		return m.DuplicateFileID()
	case duplicateflag.FieldReason:
		return m.Reason()
	case duplicateflag.FieldStatus:
		return m.Status()
	case duplicateflag.FieldResolvedFileID:
		return m.ResolvedFileID()
	case duplicateflag.FieldResolvedAt:
		return m.ResolvedAt()
	case duplicateflag.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DuplicateFlagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case duplicateflag.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case duplicateflag.FieldFileID:
		return m.OldFileID(ctx)
	case duplicateflag.FieldDuplicateFileID:
		return m.OldDuplicateFileID(ctx)
	case duplicateflag.FieldReason:
		return m.OldReason(ctx)
	case duplicateflag.FieldStatus:
		return m.OldStatus(ctx)
	case duplicateflag.FieldResolvedFileID:
		return m.OldResolvedFileID(ctx)
	case duplicateflag.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case duplicateflag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DuplicateFlag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateFlagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case duplicateflag.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case duplicateflag.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case duplicateflag.FieldDuplicateFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateFileID(v)
		return nil
	case duplicateflag.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case duplicateflag.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case duplicateflag.FieldResolvedFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedFileID(v)
		return nil
	case duplicateflag.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case duplicateflag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateFlag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DuplicateFlagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DuplicateFlagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateFlagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DuplicateFlag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DuplicateFlagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(duplicateflag.FieldResolvedFileID) {
		fields = append(fields, duplicateflag.FieldResolvedFileID)
	}
	if m.FieldCleared(duplicateflag.FieldResolvedAt) {
		fields = append(fields, duplicateflag.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DuplicateFlagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DuplicateFlagMutation) ClearField(name string) error {
	switch name {
	case duplicateflag.FieldResolvedFileID:
		m.ClearResolvedFileID()
		return nil
	case duplicateflag.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown DuplicateFlag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DuplicateFlagMutation) ResetField(name string) error {
	switch name {
	case duplicateflag.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case duplicateflag.FieldFileID:
		m.ResetFileID()
		return nil
	case duplicateflag.FieldDuplicateFileID:
		m.ResetDuplicateFileID()
		return nil
	case duplicateflag.FieldReason:
		m.ResetReason()
		return nil
	case duplicateflag.FieldStatus:
		m.ResetStatus()
		return nil
	case duplicateflag.FieldResolvedFileID:
		m.ResetResolvedFileID()
		return nil
	case duplicateflag.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case duplicateflag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DuplicateFlag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DuplicateFlagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DuplicateFlagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DuplicateFlagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DuplicateFlagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DuplicateFlagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DuplicateFlagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DuplicateFlagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DuplicateFlag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DuplicateFlagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DuplicateFlag edge %s", name)
}

// EntityLinkMutation represents an operation that mutates the EntityLink nodes in the graph.
type EntityLinkMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	owner_id            *uuid.UUID
	entity_type         *string
	entity_id           *uuid.UUID
	is_primary          *bool
	confidence_score    *float64
	addconfidence_score *float64
	extraction_provider *string
	extraction_model    *string
	extraction_metadata *map[string]interface{}
	extracted_at        *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	file                *uuid.UUID
	clearedfile         bool
	done                bool
	oldValue            func(context.Context) (*EntityLink, error)
	predicates          []predicate.EntityLink
}

var _ ent.Mutation = (*EntityLinkMutation)(nil)

// entitylinkOption allows management of the mutation configuration using functional options.
type entitylinkOption func(*EntityLinkMutation)

// newEntityLinkMutation creates new mutation for the EntityLink entity.
func newEntityLinkMutation(c config, op Op, opts ...entitylinkOption) *EntityLinkMutation {
	m := &EntityLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityLinkID sets the ID field of the mutation.
func withEntityLinkID(id uuid.UUID) entitylinkOption {
	return func(m *EntityLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityLink
		)
		m.oldValue = func(ctx context.Context) (*EntityLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityLink sets the old EntityLink of the mutation.
func withEntityLink(node *EntityLink) entitylinkOption {
	return func(m *EntityLinkMutation) {
		m.oldValue = func(context.Context) (*EntityLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityLink entities.
func (m *EntityLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *EntityLinkMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *EntityLinkMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *EntityLinkMutation) ResetFileID() {
	m.file = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *EntityLinkMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EntityLinkMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EntityLinkMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityLinkMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityLinkMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityLinkMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntityLinkMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityLinkMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityLinkMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *EntityLinkMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *EntityLinkMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *EntityLinkMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *EntityLinkMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *EntityLinkMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *EntityLinkMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *EntityLinkMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *EntityLinkMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetExtractionProvider sets the "extraction_provider" field.
func (m *EntityLinkMutation) SetExtractionProvider(s string) {
	m.extraction_provider = &s
}

// ExtractionProvider returns the value of the "extraction_provider" field in the mutation.
func (m *EntityLinkMutation) ExtractionProvider() (r string, exists bool) {
	v := m.extraction_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionProvider returns the old "extraction_provider" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldExtractionProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionProvider: %w", err)
	}
	return oldValue.ExtractionProvider, nil
}

// ClearExtractionProvider clears the value of the "extraction_provider" field.
func (m *EntityLinkMutation) ClearExtractionProvider() {
	m.extraction_provider = nil
	m.clearedFields[entitylink.FieldExtractionProvider] = struct{}{}
}

// ExtractionProviderCleared returns if the "extraction_provider" field was cleared in this mutation.
func (m *EntityLinkMutation) ExtractionProviderCleared() bool {
	_, ok := m.clearedFields[entitylink.FieldExtractionProvider]
	return ok
}

// ResetExtractionProvider resets all changes to the "extraction_provider" field.
func (m *EntityLinkMutation) ResetExtractionProvider() {
	m.extraction_provider = nil
	delete(m.clearedFields, entitylink.FieldExtractionProvider)
}

// SetExtractionModel sets the "extraction_model" field.
func (m *EntityLinkMutation) SetExtractionModel(s string) {
	m.extraction_model = &s
}

// ExtractionModel returns the value of the "extraction_model" field in the mutation.
func (m *EntityLinkMutation) ExtractionModel() (r string, exists bool) {
	v := m.extraction_model
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionModel returns the old "extraction_model" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldExtractionModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionModel: %w", err)
	}
	return oldValue.ExtractionModel, nil
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (m *EntityLinkMutation) ClearExtractionModel() {
	m.extraction_model = nil
	m.clearedFields[entitylink.FieldExtractionModel] = struct{}{}
}

// ExtractionModelCleared returns if the "extraction_model" field was cleared in this mutation.
func (m *EntityLinkMutation) ExtractionModelCleared() bool {
	_, ok := m.clearedFields[entitylink.FieldExtractionModel]
	return ok
}

// ResetExtractionModel resets all changes to the "extraction_model" field.
func (m *EntityLinkMutation) ResetExtractionModel() {
	m.extraction_model = nil
	delete(m.clearedFields, entitylink.FieldExtractionModel)
}

// SetExtractionMetadata sets the "extraction_metadata" field.
func (m *EntityLinkMutation) SetExtractionMetadata(value map[string]interface{}) {
	m.extraction_metadata = &value
}

// ExtractionMetadata returns the value of the "extraction_metadata" field in the mutation.
func (m *EntityLinkMutation) ExtractionMetadata() (r map[string]interface{}, exists bool) {
	v := m.extraction_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMetadata returns the old "extraction_metadata" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldExtractionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMetadata: %w", err)
	}
	return oldValue.ExtractionMetadata, nil
}

// ClearExtractionMetadata clears the value of the "extraction_metadata" field.
func (m *EntityLinkMutation) ClearExtractionMetadata() {
	m.extraction_metadata = nil
	m.clearedFields[entitylink.FieldExtractionMetadata] = struct{}{}
}

// ExtractionMetadataCleared returns if the "extraction_metadata" field was cleared in this mutation.
func (m *EntityLinkMutation) ExtractionMetadataCleared() bool {
	_, ok := m.clearedFields[entitylink.FieldExtractionMetadata]
	return ok
}

// ResetExtractionMetadata resets all changes to the "extraction_metadata" field.
func (m *EntityLinkMutation) ResetExtractionMetadata() {
	m.extraction_metadata = nil
	delete(m.clearedFields, entitylink.FieldExtractionMetadata)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *EntityLinkMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *EntityLinkMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *EntityLinkMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EntityLinkMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EntityLinkMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the EntityLink entity.
// If the EntityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityLinkMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EntityLinkMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[entitylink.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EntityLinkMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[entitylink.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EntityLinkMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, entitylink.FieldDeletedAt)
}

// ClearFile clears the "file" edge to the File entity.
func (m *EntityLinkMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[entitylink.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the File entity was cleared.
func (m *EntityLinkMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *EntityLinkMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *EntityLinkMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the EntityLinkMutation builder.
func (m *EntityLinkMutation) Where(ps ...predicate.EntityLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityLink).
func (m *EntityLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityLinkMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file != nil {
		fields = append(fields, entitylink.FieldFileID)
	}
	if m.owner_id != nil {
		fields = append(fields, entitylink.FieldOwnerID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitylink.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, entitylink.FieldEntityID)
	}
	if m.is_primary != nil {
		fields = append(fields, entitylink.FieldIsPrimary)
	}
	if m.confidence_score != nil {
		fields = append(fields, entitylink.FieldConfidenceScore)
	}
	if m.extraction_provider != nil {
		fields = append(fields, entitylink.FieldExtractionProvider)
	}
	if m.extraction_model != nil {
		fields = append(fields, entitylink.FieldExtractionModel)
	}
	if m.extraction_metadata != nil {
		fields = append(fields, entitylink.FieldExtractionMetadata)
	}
	if m.extracted_at != nil {
		fields = append(fields, entitylink.FieldExtractedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, entitylink.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitylink.FieldFileID:
		return m.FileID()
	case entitylink.FieldOwnerID:
		return m.OwnerID()
	case entitylink.FieldEntityType:
		return m.EntityType()
	case entitylink.FieldEntityID:
		return m.EntityID()
	case entitylink.FieldIsPrimary:
		return m.IsPrimary()
	case entitylink.FieldConfidenceScore:
		return m.ConfidenceScore()
	case entitylink.FieldExtractionProvider:
		return m.ExtractionProvider()
	case entitylink.FieldExtractionModel:
		return m.ExtractionModel()
	case entitylink.FieldExtractionMetadata:
		return m.ExtractionMetadata()
	case entitylink.FieldExtractedAt:
		return m.ExtractedAt()
	case entitylink.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitylink.FieldFileID:
		return m.OldFileID(ctx)
	case entitylink.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case entitylink.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitylink.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitylink.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case entitylink.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case entitylink.FieldExtractionProvider:
		return m.OldExtractionProvider(ctx)
	case entitylink.FieldExtractionModel:
		return m.OldExtractionModel(ctx)
	case entitylink.FieldExtractionMetadata:
		return m.OldExtractionMetadata(ctx)
	case entitylink.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case entitylink.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitylink.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case entitylink.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case entitylink.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitylink.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitylink.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case entitylink.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case entitylink.FieldExtractionProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionProvider(v)
		return nil
	case entitylink.FieldExtractionModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionModel(v)
		return nil
	case entitylink.FieldExtractionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMetadata(v)
		return nil
	case entitylink.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case entitylink.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityLinkMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, entitylink.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitylink.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitylink.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown EntityLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitylink.FieldExtractionProvider) {
		fields = append(fields, entitylink.FieldExtractionProvider)
	}
	if m.FieldCleared(entitylink.FieldExtractionModel) {
		fields = append(fields, entitylink.FieldExtractionModel)
	}
	if m.FieldCleared(entitylink.FieldExtractionMetadata) {
		fields = append(fields, entitylink.FieldExtractionMetadata)
	}
	if m.FieldCleared(entitylink.FieldDeletedAt) {
		fields = append(fields, entitylink.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityLinkMutation) ClearField(name string) error {
	switch name {
	case entitylink.FieldExtractionProvider:
		m.ClearExtractionProvider()
		return nil
	case entitylink.FieldExtractionModel:
		m.ClearExtractionModel()
		return nil
	case entitylink.FieldExtractionMetadata:
		m.ClearExtractionMetadata()
		return nil
	case entitylink.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityLinkMutation) ResetField(name string) error {
	switch name {
	case entitylink.FieldFileID:
		m.ResetFileID()
		return nil
	case entitylink.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case entitylink.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitylink.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitylink.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case entitylink.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case entitylink.FieldExtractionProvider:
		m.ResetExtractionProvider()
		return nil
	case entitylink.FieldExtractionModel:
		m.ResetExtractionModel()
		return nil
	case entitylink.FieldExtractionMetadata:
		m.ResetExtractionMetadata()
		return nil
	case entitylink.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case entitylink.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, entitylink.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitylink.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, entitylink.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case entitylink.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityLinkMutation) ClearEdge(name string) error {
	switch name {
	case entitylink.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown EntityLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityLinkMutation) ResetEdge(name string) error {
	switch name {
	case entitylink.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown EntityLink edge %s", name)
}

// FileMutation represents an operation that mutates the File nodes in the graph.
type FileMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	owner_id            *uuid.UUID
	source_path         *string
	content_hash        *[]byte
	filename            *string
	file_ext            *string
	mime_type           *string
	file_size           *int
	addfile_size        *int
	uploaded_at         *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	entity_links        map[uuid.UUID]struct{}
	removedentity_links map[uuid.UUID]struct{}
	clearedentity_links bool
	done                bool
	oldValue            func(context.Context) (*File, error)
	predicates          []predicate.File
}

var _ ent.Mutation = (*FileMutation)(nil)

// fileOption allows management of the mutation configuration using functional options.
type fileOption func(*FileMutation)

// newFileMutation creates new mutation for the File entity.
func newFileMutation(c config, op Op, opts ...fileOption) *FileMutation {
	m := &FileMutation{
		config:        c,
		op:            op,
		typ:           TypeFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileID sets the ID field of the mutation.
func withFileID(id uuid.UUID) fileOption {
	return func(m *FileMutation) {
		var (
			err   error
			once  sync.Once
			value *File
		)
		m.oldValue = func(ctx context.Context) (*File, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().File.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFile sets the old File of the mutation.
func withFile(node *File) fileOption {
	return func(m *FileMutation) {
		m.oldValue = func(context.Context) (*File, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of File entities.
func (m *FileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().File.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *FileMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *FileMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *FileMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetSourcePath sets the "source_path" field.
func (m *FileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *FileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *FileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *FileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *FileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *FileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *FileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *FileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *FileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *FileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *FileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *FileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetMimeType sets the "mime_type" field.
func (m *FileMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *FileMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *FileMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *FileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *FileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *FileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *FileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *FileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *FileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *FileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *FileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *FileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *FileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *FileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[file.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *FileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[file.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *FileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, file.FieldDeletedAt)
}

// AddEntityLinkIDs adds the "entity_links" edge to the EntityLink entity by ids.
func (m *FileMutation) AddEntityLinkIDs(ids ...uuid.UUID) {
	if m.entity_links == nil {
		m.entity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entity_links[ids[i]] = struct{}{}
	}
}

// ClearEntityLinks clears the "entity_links" edge to the EntityLink entity.
func (m *FileMutation) ClearEntityLinks() {
	m.clearedentity_links = true
}

// EntityLinksCleared reports if the "entity_links" edge to the EntityLink entity was cleared.
func (m *FileMutation) EntityLinksCleared() bool {
	return m.clearedentity_links
}

// RemoveEntityLinkIDs removes the "entity_links" edge to the EntityLink entity by IDs.
func (m *FileMutation) RemoveEntityLinkIDs(ids ...uuid.UUID) {
	if m.removedentity_links == nil {
		m.removedentity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entity_links, ids[i])
		m.removedentity_links[ids[i]] = struct{}{}
	}
}

// RemovedEntityLinks returns the removed IDs of the "entity_links" edge to the EntityLink entity.
func (m *FileMutation) RemovedEntityLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedentity_links {
		ids = append(ids, id)
	}
	return
}

// EntityLinksIDs returns the "entity_links" edge IDs in the mutation.
func (m *FileMutation) EntityLinksIDs() (ids []uuid.UUID) {
	for id := range m.entity_links {
		ids = append(ids, id)
	}
	return
}

// ResetEntityLinks resets all changes to the "entity_links" edge.
func (m *FileMutation) ResetEntityLinks() {
	m.entity_links = nil
	m.clearedentity_links = false
	m.removedentity_links = nil
}

// Where appends a list predicates to the FileMutation builder.
func (m *FileMutation) Where(ps ...predicate.File) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.File, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (File).
func (m *FileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, file.FieldOwnerID)
	}
	if m.source_path != nil {
		fields = append(fields, file.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, file.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, file.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, file.FieldFileExt)
	}
	if m.mime_type != nil {
		fields = append(fields, file.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, file.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, file.FieldUploadedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, file.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case file.FieldOwnerID:
		return m.OwnerID()
	case file.FieldSourcePath:
		return m.SourcePath()
	case file.FieldContentHash:
		return m.ContentHash()
	case file.FieldFilename:
		return m.Filename()
	case file.FieldFileExt:
		return m.FileExt()
	case file.FieldMimeType:
		return m.MimeType()
	case file.FieldFileSize:
		return m.FileSize()
	case file.FieldUploadedAt:
		return m.UploadedAt()
	case file.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case file.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case file.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case file.FieldContentHash:
		return m.OldContentHash(ctx)
	case file.FieldFilename:
		return m.OldFilename(ctx)
	case file.FieldFileExt:
		return m.OldFileExt(ctx)
	case file.FieldMimeType:
		return m.OldMimeType(ctx)
	case file.FieldFileSize:
		return m.OldFileSize(ctx)
	case file.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case file.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown File field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case file.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case file.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case file.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case file.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case file.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case file.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case file.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case file.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case file.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, file.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case file.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case file.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown File numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(file.FieldDeletedAt) {
		fields = append(fields, file.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileMutation) ClearField(name string) error {
	switch name {
	case file.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown File nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileMutation) ResetField(name string) error {
	switch name {
	case file.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case file.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case file.FieldContentHash:
		m.ResetContentHash()
		return nil
	case file.FieldFilename:
		m.ResetFilename()
		return nil
	case file.FieldFileExt:
		m.ResetFileExt()
		return nil
	case file.FieldMimeType:
		m.ResetMimeType()
		return nil
	case file.FieldFileSize:
		m.ResetFileSize()
		return nil
	case file.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case file.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entity_links != nil {
		edges = append(edges, file.EdgeEntityLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeEntityLinks:
		ids := make([]ent.Value, 0, len(m.entity_links))
		for id := range m.entity_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedentity_links != nil {
		edges = append(edges, file.EdgeEntityLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeEntityLinks:
		ids := make([]ent.Value, 0, len(m.removedentity_links))
		for id := range m.removedentity_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentity_links {
		edges = append(edges, file.EdgeEntityLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileMutation) EdgeCleared(name string) bool {
	switch name {
	case file.EdgeEntityLinks:
		return m.clearedentity_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown File unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileMutation) ResetEdge(name string) error {
	switch name {
	case file.EdgeEntityLinks:
		m.ResetEntityLinks()
		return nil
	}
	return fmt.Errorf("unknown File edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *uuid.UUID
	invoice_number  *string
	from_name       *string
	to_name         *string
	issue_date      *time.Time
	due_date        *time.Time
	total_amount    *float64
	addtotal_amount *float64
	currency_code   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Invoice, error)
	predicates      []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *InvoiceMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *InvoiceMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *InvoiceMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetFromName sets the "from_name" field.
func (m *InvoiceMutation) SetFromName(s string) {
	m.from_name = &s
}

// FromName returns the value of the "from_name" field in the mutation.
func (m *InvoiceMutation) FromName() (r string, exists bool) {
	v := m.from_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFromName returns the old "from_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFromName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromName: %w", err)
	}
	return oldValue.FromName, nil
}

// ClearFromName clears the value of the "from_name" field.
func (m *InvoiceMutation) ClearFromName() {
	m.from_name = nil
	m.clearedFields[invoice.FieldFromName] = struct{}{}
}

// FromNameCleared returns if the "from_name" field was cleared in this mutation.
func (m *InvoiceMutation) FromNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldFromName]
	return ok
}

// ResetFromName resets all changes to the "from_name" field.
func (m *InvoiceMutation) ResetFromName() {
	m.from_name = nil
	delete(m.clearedFields, invoice.FieldFromName)
}

// SetToName sets the "to_name" field.
func (m *InvoiceMutation) SetToName(s string) {
	m.to_name = &s
}

// ToName returns the value of the "to_name" field in the mutation.
func (m *InvoiceMutation) ToName() (r string, exists bool) {
	v := m.to_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToName returns the old "to_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldToName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToName: %w", err)
	}
	return oldValue.ToName, nil
}

// ClearToName clears the value of the "to_name" field.
func (m *InvoiceMutation) ClearToName() {
	m.to_name = nil
	m.clearedFields[invoice.FieldToName] = struct{}{}
}

// ToNameCleared returns if the "to_name" field was cleared in this mutation.
func (m *InvoiceMutation) ToNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldToName]
	return ok
}

// ResetToName resets all changes to the "to_name" field.
func (m *InvoiceMutation) ResetToName() {
	m.to_name = nil
	delete(m.clearedFields, invoice.FieldToName)
}

// SetIssueDate sets the "issue_date" field.
func (m *InvoiceMutation) SetIssueDate(t time.Time) {
	m.issue_date = &t
}

// IssueDate returns the value of the "issue_date" field in the mutation.
func (m *InvoiceMutation) IssueDate() (r time.Time, exists bool) {
	v := m.issue_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDate returns the old "issue_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIssueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDate: %w", err)
	}
	return oldValue.IssueDate, nil
}

// ClearIssueDate clears the value of the "issue_date" field.
func (m *InvoiceMutation) ClearIssueDate() {
	m.issue_date = nil
	m.clearedFields[invoice.FieldIssueDate] = struct{}{}
}

// IssueDateCleared returns if the "issue_date" field was cleared in this mutation.
func (m *InvoiceMutation) IssueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldIssueDate]
	return ok
}

// ResetIssueDate resets all changes to the "issue_date" field.
func (m *InvoiceMutation) ResetIssueDate() {
	m.issue_date = nil
	delete(m.clearedFields, invoice.FieldIssueDate)
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *InvoiceMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[invoice.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *InvoiceMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, invoice.FieldDueDate)
}

// SetTotalAmount sets the "total_amount" field.
func (m *InvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *InvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *InvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *InvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *InvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[invoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *InvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, invoice.FieldTotalAmount)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *InvoiceMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *InvoiceMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *InvoiceMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[invoice.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *InvoiceMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[invoice.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *InvoiceMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, invoice.FieldCurrencyCode)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, invoice.FieldOwnerID)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.from_name != nil {
		fields = append(fields, invoice.FieldFromName)
	}
	if m.to_name != nil {
		fields = append(fields, invoice.FieldToName)
	}
	if m.issue_date != nil {
		fields = append(fields, invoice.FieldIssueDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.total_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldOwnerID:
		return m.OwnerID()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldFromName:
		return m.FromName()
	case invoice.FieldToName:
		return m.ToName()
	case invoice.FieldIssueDate:
		return m.IssueDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldTotalAmount:
		return m.TotalAmount()
	case invoice.FieldCurrencyCode:
		return m.CurrencyCode()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldFromName:
		return m.OldFromName(ctx)
	case invoice.FieldToName:
		return m.OldToName(ctx)
	case invoice.FieldIssueDate:
		return m.OldIssueDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case invoice.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldFromName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromName(v)
		return nil
	case invoice.FieldToName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToName(v)
		return nil
	case invoice.FieldIssueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case invoice.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldFromName) {
		fields = append(fields, invoice.FieldFromName)
	}
	if m.FieldCleared(invoice.FieldToName) {
		fields = append(fields, invoice.FieldToName)
	}
	if m.FieldCleared(invoice.FieldIssueDate) {
		fields = append(fields, invoice.FieldIssueDate)
	}
	if m.FieldCleared(invoice.FieldDueDate) {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.FieldCleared(invoice.FieldTotalAmount) {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.FieldCleared(invoice.FieldCurrencyCode) {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldFromName:
		m.ClearFromName()
		return nil
	case invoice.FieldToName:
		m.ClearToName()
		return nil
	case invoice.FieldIssueDate:
		m.ClearIssueDate()
		return nil
	case invoice.FieldDueDate:
		m.ClearDueDate()
		return nil
	case invoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case invoice.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldFromName:
		m.ResetFromName()
		return nil
	case invoice.FieldToName:
		m.ResetToName()
		return nil
	case invoice.FieldIssueDate:
		m.ResetIssueDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case invoice.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	owner_id          *uuid.UUID
	merchant_name     *string
	receipt_number    *string
	tx_date           *time.Time
	subtotal          *float64
	addsubtotal       *float64
	tax_amount        *float64
	addtax_amount     *float64
	total_amount      *float64
	addtotal_amount   *float64
	total_discount    *float64
	addtotal_discount *float64
	currency_code     *string
	payment_method    *string
	items             *[]map[string]interface{}
	appenditems       []map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Receipt, error)
	predicates        []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ReceiptMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ReceiptMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ReceiptMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetMerchantName sets the "merchant_name" field.
func (m *ReceiptMutation) SetMerchantName(s string) {
	m.merchant_name = &s
}

// MerchantName returns the value of the "merchant_name" field in the mutation.
func (m *ReceiptMutation) MerchantName() (r string, exists bool) {
	v := m.merchant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantName returns the old "merchant_name" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldMerchantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantName: %w", err)
	}
	return oldValue.MerchantName, nil
}

// ResetMerchantName resets all changes to the "merchant_name" field.
func (m *ReceiptMutation) ResetMerchantName() {
	m.merchant_name = nil
}

// SetReceiptNumber sets the "receipt_number" field.
func (m *ReceiptMutation) SetReceiptNumber(s string) {
	m.receipt_number = &s
}

// ReceiptNumber returns the value of the "receipt_number" field in the mutation.
func (m *ReceiptMutation) ReceiptNumber() (r string, exists bool) {
	v := m.receipt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptNumber returns the old "receipt_number" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldReceiptNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptNumber: %w", err)
	}
	return oldValue.ReceiptNumber, nil
}

// ClearReceiptNumber clears the value of the "receipt_number" field.
func (m *ReceiptMutation) ClearReceiptNumber() {
	m.receipt_number = nil
	m.clearedFields[receipt.FieldReceiptNumber] = struct{}{}
}

// ReceiptNumberCleared returns if the "receipt_number" field was cleared in this mutation.
func (m *ReceiptMutation) ReceiptNumberCleared() bool {
	_, ok := m.clearedFields[receipt.FieldReceiptNumber]
	return ok
}

// ResetReceiptNumber resets all changes to the "receipt_number" field.
func (m *ReceiptMutation) ResetReceiptNumber() {
	m.receipt_number = nil
	delete(m.clearedFields, receipt.FieldReceiptNumber)
}

// SetTxDate sets the "tx_date" field.
func (m *ReceiptMutation) SetTxDate(t time.Time) {
	m.tx_date = &t
}

// TxDate returns the value of the "tx_date" field in the mutation.
func (m *ReceiptMutation) TxDate() (r time.Time, exists bool) {
	v := m.tx_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTxDate returns the old "tx_date" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTxDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxDate: %w", err)
	}
	return oldValue.TxDate, nil
}

// ClearTxDate clears the value of the "tx_date" field.
func (m *ReceiptMutation) ClearTxDate() {
	m.tx_date = nil
	m.clearedFields[receipt.FieldTxDate] = struct{}{}
}

// TxDateCleared returns if the "tx_date" field was cleared in this mutation.
func (m *ReceiptMutation) TxDateCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTxDate]
	return ok
}

// ResetTxDate resets all changes to the "tx_date" field.
func (m *ReceiptMutation) ResetTxDate() {
	m.tx_date = nil
	delete(m.clearedFields, receipt.FieldTxDate)
}

// SetSubtotal sets the "subtotal" field.
func (m *ReceiptMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *ReceiptMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldSubtotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *ReceiptMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *ReceiptMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *ReceiptMutation) ClearSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	m.clearedFields[receipt.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *ReceiptMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[receipt.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *ReceiptMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	delete(m.clearedFields, receipt.FieldSubtotal)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *ReceiptMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *ReceiptMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *ReceiptMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *ReceiptMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *ReceiptMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[receipt.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *ReceiptMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *ReceiptMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, receipt.FieldTaxAmount)
}

// SetTotalAmount sets the "total_amount" field.
func (m *ReceiptMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *ReceiptMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *ReceiptMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *ReceiptMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *ReceiptMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[receipt.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *ReceiptMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *ReceiptMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, receipt.FieldTotalAmount)
}

// SetTotalDiscount sets the "total_discount" field.
func (m *ReceiptMutation) SetTotalDiscount(f float64) {
	m.total_discount = &f
	m.addtotal_discount = nil
}

// TotalDiscount returns the value of the "total_discount" field in the mutation.
func (m *ReceiptMutation) TotalDiscount() (r float64, exists bool) {
	v := m.total_discount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDiscount returns the old "total_discount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalDiscount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDiscount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDiscount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDiscount: %w", err)
	}
	return oldValue.TotalDiscount, nil
}

// AddTotalDiscount adds f to the "total_discount" field.
func (m *ReceiptMutation) AddTotalDiscount(f float64) {
	if m.addtotal_discount != nil {
		*m.addtotal_discount += f
	} else {
		m.addtotal_discount = &f
	}
}

// AddedTotalDiscount returns the value that was added to the "total_discount" field in this mutation.
func (m *ReceiptMutation) AddedTotalDiscount() (r float64, exists bool) {
	v := m.addtotal_discount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDiscount clears the value of the "total_discount" field.
func (m *ReceiptMutation) ClearTotalDiscount() {
	m.total_discount = nil
	m.addtotal_discount = nil
	m.clearedFields[receipt.FieldTotalDiscount] = struct{}{}
}

// TotalDiscountCleared returns if the "total_discount" field was cleared in this mutation.
func (m *ReceiptMutation) TotalDiscountCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotalDiscount]
	return ok
}

// ResetTotalDiscount resets all changes to the "total_discount" field.
func (m *ReceiptMutation) ResetTotalDiscount() {
	m.total_discount = nil
	m.addtotal_discount = nil
	delete(m.clearedFields, receipt.FieldTotalDiscount)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *ReceiptMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *ReceiptMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *ReceiptMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[receipt.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *ReceiptMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[receipt.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *ReceiptMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, receipt.FieldCurrencyCode)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ReceiptMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ReceiptMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *ReceiptMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[receipt.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *ReceiptMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[receipt.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ReceiptMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, receipt.FieldPaymentMethod)
}

// SetItems sets the "items" field.
func (m *ReceiptMutation) SetItems(value []map[string]interface{}) {
	m.items = &value
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *ReceiptMutation) Items() (r []map[string]interface{}, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldItems(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds value to the "items" field.
func (m *ReceiptMutation) AppendItems(value []map[string]interface{}) {
	m.appenditems = append(m.appenditems, value...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *ReceiptMutation) AppendedItems() ([]map[string]interface{}, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ClearItems clears the value of the "items" field.
func (m *ReceiptMutation) ClearItems() {
	m.items = nil
	m.appenditems = nil
	m.clearedFields[receipt.FieldItems] = struct{}{}
}

// ItemsCleared returns if the "items" field was cleared in this mutation.
func (m *ReceiptMutation) ItemsCleared() bool {
	_, ok := m.clearedFields[receipt.FieldItems]
	return ok
}

// ResetItems resets all changes to the "items" field.
func (m *ReceiptMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
	delete(m.clearedFields, receipt.FieldItems)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.owner_id != nil {
		fields = append(fields, receipt.FieldOwnerID)
	}
	if m.merchant_name != nil {
		fields = append(fields, receipt.FieldMerchantName)
	}
	if m.receipt_number != nil {
		fields = append(fields, receipt.FieldReceiptNumber)
	}
	if m.tx_date != nil {
		fields = append(fields, receipt.FieldTxDate)
	}
	if m.subtotal != nil {
		fields = append(fields, receipt.FieldSubtotal)
	}
	if m.tax_amount != nil {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	if m.total_amount != nil {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.total_discount != nil {
		fields = append(fields, receipt.FieldTotalDiscount)
	}
	if m.currency_code != nil {
		fields = append(fields, receipt.FieldCurrencyCode)
	}
	if m.payment_method != nil {
		fields = append(fields, receipt.FieldPaymentMethod)
	}
	if m.items != nil {
		fields = append(fields, receipt.FieldItems)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldOwnerID:
		return m.OwnerID()
	case receipt.FieldMerchantName:
		return m.MerchantName()
	case receipt.FieldReceiptNumber:
		return m.ReceiptNumber()
	case receipt.FieldTxDate:
		return m.TxDate()
	case receipt.FieldSubtotal:
		return m.Subtotal()
	case receipt.FieldTaxAmount:
		return m.TaxAmount()
	case receipt.FieldTotalAmount:
		return m.TotalAmount()
	case receipt.FieldTotalDiscount:
		return m.TotalDiscount()
	case receipt.FieldCurrencyCode:
		return m.CurrencyCode()
	case receipt.FieldPaymentMethod:
		return m.PaymentMethod()
	case receipt.FieldItems:
		return m.Items()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case receipt.FieldMerchantName:
		return m.OldMerchantName(ctx)
	case receipt.FieldReceiptNumber:
		return m.OldReceiptNumber(ctx)
	case receipt.FieldTxDate:
		return m.OldTxDate(ctx)
	case receipt.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case receipt.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case receipt.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case receipt.FieldTotalDiscount:
		return m.OldTotalDiscount(ctx)
	case receipt.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case receipt.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case receipt.FieldItems:
		return m.OldItems(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case receipt.FieldMerchantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantName(v)
		return nil
	case receipt.FieldReceiptNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptNumber(v)
		return nil
	case receipt.FieldTxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxDate(v)
		return nil
	case receipt.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case receipt.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case receipt.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case receipt.FieldTotalDiscount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDiscount(v)
		return nil
	case receipt.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case receipt.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case receipt.FieldItems:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, receipt.FieldSubtotal)
	}
	if m.addtax_amount != nil {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.addtotal_discount != nil {
		fields = append(fields, receipt.FieldTotalDiscount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldSubtotal:
		return m.AddedSubtotal()
	case receipt.FieldTaxAmount:
		return m.AddedTaxAmount()
	case receipt.FieldTotalAmount:
		return m.AddedTotalAmount()
	case receipt.FieldTotalDiscount:
		return m.AddedTotalDiscount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case receipt.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case receipt.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case receipt.FieldTotalDiscount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDiscount(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldReceiptNumber) {
		fields = append(fields, receipt.FieldReceiptNumber)
	}
	if m.FieldCleared(receipt.FieldTxDate) {
		fields = append(fields, receipt.FieldTxDate)
	}
	if m.FieldCleared(receipt.FieldSubtotal) {
		fields = append(fields, receipt.FieldSubtotal)
	}
	if m.FieldCleared(receipt.FieldTaxAmount) {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	if m.FieldCleared(receipt.FieldTotalAmount) {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.FieldCleared(receipt.FieldTotalDiscount) {
		fields = append(fields, receipt.FieldTotalDiscount)
	}
	if m.FieldCleared(receipt.FieldCurrencyCode) {
		fields = append(fields, receipt.FieldCurrencyCode)
	}
	if m.FieldCleared(receipt.FieldPaymentMethod) {
		fields = append(fields, receipt.FieldPaymentMethod)
	}
	if m.FieldCleared(receipt.FieldItems) {
		fields = append(fields, receipt.FieldItems)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldReceiptNumber:
		m.ClearReceiptNumber()
		return nil
	case receipt.FieldTxDate:
		m.ClearTxDate()
		return nil
	case receipt.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case receipt.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case receipt.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case receipt.FieldTotalDiscount:
		m.ClearTotalDiscount()
		return nil
	case receipt.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case receipt.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case receipt.FieldItems:
		m.ClearItems()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case receipt.FieldMerchantName:
		m.ResetMerchantName()
		return nil
	case receipt.FieldReceiptNumber:
		m.ResetReceiptNumber()
		return nil
	case receipt.FieldTxDate:
		m.ResetTxDate()
		return nil
	case receipt.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case receipt.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case receipt.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case receipt.FieldTotalDiscount:
		m.ResetTotalDiscount()
		return nil
	case receipt.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case receipt.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case receipt.FieldItems:
		m.ResetItems()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// VoucherMutation represents an operation that mutates the Voucher nodes in the graph.
type VoucherMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_id      *uuid.UUID
	code          *string
	voucher_type  *string
	value         *float64
	addvalue      *float64
	expiry_date   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Voucher, error)
	predicates    []predicate.Voucher
}

var _ ent.Mutation = (*VoucherMutation)(nil)

// voucherOption allows management of the mutation configuration using functional options.
type voucherOption func(*VoucherMutation)

// newVoucherMutation creates new mutation for the Voucher entity.
func newVoucherMutation(c config, op Op, opts ...voucherOption) *VoucherMutation {
	m := &VoucherMutation{
		config:        c,
		op:            op,
		typ:           TypeVoucher,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoucherID sets the ID field of the mutation.
func withVoucherID(id uuid.UUID) voucherOption {
	return func(m *VoucherMutation) {
		var (
			err   error
			once  sync.Once
			value *Voucher
		)
		m.oldValue = func(ctx context.Context) (*Voucher, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Voucher.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoucher sets the old Voucher of the mutation.
func withVoucher(node *Voucher) voucherOption {
	return func(m *VoucherMutation) {
		m.oldValue = func(context.Context) (*Voucher, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoucherMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoucherMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Voucher entities.
func (m *VoucherMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoucherMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoucherMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Voucher.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *VoucherMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *VoucherMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *VoucherMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetCode sets the "code" field.
func (m *VoucherMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *VoucherMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ClearCode clears the value of the "code" field.
func (m *VoucherMutation) ClearCode() {
	m.code = nil
	m.clearedFields[voucher.FieldCode] = struct{}{}
}

// CodeCleared returns if the "code" field was cleared in this mutation.
func (m *VoucherMutation) CodeCleared() bool {
	_, ok := m.clearedFields[voucher.FieldCode]
	return ok
}

// ResetCode resets all changes to the "code" field.
func (m *VoucherMutation) ResetCode() {
	m.code = nil
	delete(m.clearedFields, voucher.FieldCode)
}

// SetVoucherType sets the "voucher_type" field.
func (m *VoucherMutation) SetVoucherType(s string) {
	m.voucher_type = &s
}

// VoucherType returns the value of the "voucher_type" field in the mutation.
func (m *VoucherMutation) VoucherType() (r string, exists bool) {
	v := m.voucher_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVoucherType returns the old "voucher_type" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldVoucherType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoucherType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoucherType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoucherType: %w", err)
	}
	return oldValue.VoucherType, nil
}

// ClearVoucherType clears the value of the "voucher_type" field.
func (m *VoucherMutation) ClearVoucherType() {
	m.voucher_type = nil
	m.clearedFields[voucher.FieldVoucherType] = struct{}{}
}

// VoucherTypeCleared returns if the "voucher_type" field was cleared in this mutation.
func (m *VoucherMutation) VoucherTypeCleared() bool {
	_, ok := m.clearedFields[voucher.FieldVoucherType]
	return ok
}

// ResetVoucherType resets all changes to the "voucher_type" field.
func (m *VoucherMutation) ResetVoucherType() {
	m.voucher_type = nil
	delete(m.clearedFields, voucher.FieldVoucherType)
}

// SetValue sets the "value" field.
func (m *VoucherMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *VoucherMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *VoucherMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *VoucherMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *VoucherMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[voucher.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *VoucherMutation) ValueCleared() bool {
	_, ok := m.clearedFields[voucher.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *VoucherMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, voucher.FieldValue)
}

// SetExpiryDate sets the "expiry_date" field.
func (m *VoucherMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *VoucherMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *VoucherMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[voucher.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *VoucherMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[voucher.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *VoucherMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, voucher.FieldExpiryDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *VoucherMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoucherMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Voucher entity.
// If the Voucher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoucherMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoucherMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VoucherMutation builder.
func (m *VoucherMutation) Where(ps ...predicate.Voucher) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoucherMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoucherMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Voucher, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoucherMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoucherMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Voucher).
func (m *VoucherMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoucherMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, voucher.FieldOwnerID)
	}
	if m.code != nil {
		fields = append(fields, voucher.FieldCode)
	}
	if m.voucher_type != nil {
		fields = append(fields, voucher.FieldVoucherType)
	}
	if m.value != nil {
		fields = append(fields, voucher.FieldValue)
	}
	if m.expiry_date != nil {
		fields = append(fields, voucher.FieldExpiryDate)
	}
	if m.created_at != nil {
		fields = append(fields, voucher.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoucherMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voucher.FieldOwnerID:
		return m.OwnerID()
	case voucher.FieldCode:
		return m.Code()
	case voucher.FieldVoucherType:
		return m.VoucherType()
	case voucher.FieldValue:
		return m.Value()
	case voucher.FieldExpiryDate:
		return m.ExpiryDate()
	case voucher.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoucherMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voucher.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case voucher.FieldCode:
		return m.OldCode(ctx)
	case voucher.FieldVoucherType:
		return m.OldVoucherType(ctx)
	case voucher.FieldValue:
		return m.OldValue(ctx)
	case voucher.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case voucher.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Voucher field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoucherMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voucher.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case voucher.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case voucher.FieldVoucherType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoucherType(v)
		return nil
	case voucher.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case voucher.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case voucher.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Voucher field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoucherMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, voucher.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoucherMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case voucher.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoucherMutation) AddField(name string, value ent.Value) error {
	switch name {
	case voucher.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Voucher numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoucherMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(voucher.FieldCode) {
		fields = append(fields, voucher.FieldCode)
	}
	if m.FieldCleared(voucher.FieldVoucherType) {
		fields = append(fields, voucher.FieldVoucherType)
	}
	if m.FieldCleared(voucher.FieldValue) {
		fields = append(fields, voucher.FieldValue)
	}
	if m.FieldCleared(voucher.FieldExpiryDate) {
		fields = append(fields, voucher.FieldExpiryDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoucherMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoucherMutation) ClearField(name string) error {
	switch name {
	case voucher.FieldCode:
		m.ClearCode()
		return nil
	case voucher.FieldVoucherType:
		m.ClearVoucherType()
		return nil
	case voucher.FieldValue:
		m.ClearValue()
		return nil
	case voucher.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	}
	return fmt.Errorf("unknown Voucher nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoucherMutation) ResetField(name string) error {
	switch name {
	case voucher.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case voucher.FieldCode:
		m.ResetCode()
		return nil
	case voucher.FieldVoucherType:
		m.ResetVoucherType()
		return nil
	case voucher.FieldValue:
		m.ResetValue()
		return nil
	case voucher.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case voucher.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Voucher field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoucherMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoucherMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoucherMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoucherMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoucherMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoucherMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoucherMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Voucher unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoucherMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Voucher edge %s", name)
}

// WarrantyMutation represents an operation that mutates the Warranty nodes in the graph.
type WarrantyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	owner_id            *uuid.UUID
	serial_number       *string
	covered_product     *string
	warranty_start_date *time.Time
	warranty_end_date   *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Warranty, error)
	predicates          []predicate.Warranty
}

var _ ent.Mutation = (*WarrantyMutation)(nil)

// warrantyOption allows management of the mutation configuration using functional options.
type warrantyOption func(*WarrantyMutation)

// newWarrantyMutation creates new mutation for the Warranty entity.
func newWarrantyMutation(c config, op Op, opts ...warrantyOption) *WarrantyMutation {
	m := &WarrantyMutation{
		config:        c,
		op:            op,
		typ:           TypeWarranty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWarrantyID sets the ID field of the mutation.
func withWarrantyID(id uuid.UUID) warrantyOption {
	return func(m *WarrantyMutation) {
		var (
			err   error
			once  sync.Once
			value *Warranty
		)
		m.oldValue = func(ctx context.Context) (*Warranty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Warranty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWarranty sets the old Warranty of the mutation.
func withWarranty(node *Warranty) warrantyOption {
	return func(m *WarrantyMutation) {
		m.oldValue = func(context.Context) (*Warranty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WarrantyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WarrantyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Warranty entities.
func (m *WarrantyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WarrantyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WarrantyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Warranty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *WarrantyMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *WarrantyMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *WarrantyMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetSerialNumber sets the "serial_number" field.
func (m *WarrantyMutation) SetSerialNumber(s string) {
	m.serial_number = &s
}

// SerialNumber returns the value of the "serial_number" field in the mutation.
func (m *WarrantyMutation) SerialNumber() (r string, exists bool) {
	v := m.serial_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSerialNumber returns the old "serial_number" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldSerialNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerialNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerialNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerialNumber: %w", err)
	}
	return oldValue.SerialNumber, nil
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (m *WarrantyMutation) ClearSerialNumber() {
	m.serial_number = nil
	m.clearedFields[warranty.FieldSerialNumber] = struct{}{}
}

// SerialNumberCleared returns if the "serial_number" field was cleared in this mutation.
func (m *WarrantyMutation) SerialNumberCleared() bool {
	_, ok := m.clearedFields[warranty.FieldSerialNumber]
	return ok
}

// ResetSerialNumber resets all changes to the "serial_number" field.
func (m *WarrantyMutation) ResetSerialNumber() {
	m.serial_number = nil
	delete(m.clearedFields, warranty.FieldSerialNumber)
}

// SetCoveredProduct sets the "covered_product" field.
func (m *WarrantyMutation) SetCoveredProduct(s string) {
	m.covered_product = &s
}

// CoveredProduct returns the value of the "covered_product" field in the mutation.
func (m *WarrantyMutation) CoveredProduct() (r string, exists bool) {
	v := m.covered_product
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveredProduct returns the old "covered_product" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldCoveredProduct(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveredProduct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveredProduct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveredProduct: %w", err)
	}
	return oldValue.CoveredProduct, nil
}

// ClearCoveredProduct clears the value of the "covered_product" field.
func (m *WarrantyMutation) ClearCoveredProduct() {
	m.covered_product = nil
	m.clearedFields[warranty.FieldCoveredProduct] = struct{}{}
}

// CoveredProductCleared returns if the "covered_product" field was cleared in this mutation.
func (m *WarrantyMutation) CoveredProductCleared() bool {
	_, ok := m.clearedFields[warranty.FieldCoveredProduct]
	return ok
}

// ResetCoveredProduct resets all changes to the "covered_product" field.
func (m *WarrantyMutation) ResetCoveredProduct() {
	m.covered_product = nil
	delete(m.clearedFields, warranty.FieldCoveredProduct)
}

// SetWarrantyStartDate sets the "warranty_start_date" field.
func (m *WarrantyMutation) SetWarrantyStartDate(t time.Time) {
	m.warranty_start_date = &t
}

// WarrantyStartDate returns the value of the "warranty_start_date" field in the mutation.
func (m *WarrantyMutation) WarrantyStartDate() (r time.Time, exists bool) {
	v := m.warranty_start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldWarrantyStartDate returns the old "warranty_start_date" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldWarrantyStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarrantyStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarrantyStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarrantyStartDate: %w", err)
	}
	return oldValue.WarrantyStartDate, nil
}

// ClearWarrantyStartDate clears the value of the "warranty_start_date" field.
func (m *WarrantyMutation) ClearWarrantyStartDate() {
	m.warranty_start_date = nil
	m.clearedFields[warranty.FieldWarrantyStartDate] = struct{}{}
}

// WarrantyStartDateCleared returns if the "warranty_start_date" field was cleared in this mutation.
func (m *WarrantyMutation) WarrantyStartDateCleared() bool {
	_, ok := m.clearedFields[warranty.FieldWarrantyStartDate]
	return ok
}

// ResetWarrantyStartDate resets all changes to the "warranty_start_date" field.
func (m *WarrantyMutation) ResetWarrantyStartDate() {
	m.warranty_start_date = nil
	delete(m.clearedFields, warranty.FieldWarrantyStartDate)
}

// SetWarrantyEndDate sets the "warranty_end_date" field.
func (m *WarrantyMutation) SetWarrantyEndDate(t time.Time) {
	m.warranty_end_date = &t
}

// WarrantyEndDate returns the value of the "warranty_end_date" field in the mutation.
func (m *WarrantyMutation) WarrantyEndDate() (r time.Time, exists bool) {
	v := m.warranty_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldWarrantyEndDate returns the old "warranty_end_date" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldWarrantyEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarrantyEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarrantyEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarrantyEndDate: %w", err)
	}
	return oldValue.WarrantyEndDate, nil
}

// ClearWarrantyEndDate clears the value of the "warranty_end_date" field.
func (m *WarrantyMutation) ClearWarrantyEndDate() {
	m.warranty_end_date = nil
	m.clearedFields[warranty.FieldWarrantyEndDate] = struct{}{}
}

// WarrantyEndDateCleared returns if the "warranty_end_date" field was cleared in this mutation.
func (m *WarrantyMutation) WarrantyEndDateCleared() bool {
	_, ok := m.clearedFields[warranty.FieldWarrantyEndDate]
	return ok
}

// ResetWarrantyEndDate resets all changes to the "warranty_end_date" field.
func (m *WarrantyMutation) ResetWarrantyEndDate() {
	m.warranty_end_date = nil
	delete(m.clearedFields, warranty.FieldWarrantyEndDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *WarrantyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WarrantyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Warranty entity.
// If the Warranty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarrantyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WarrantyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WarrantyMutation builder.
func (m *WarrantyMutation) Where(ps ...predicate.Warranty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WarrantyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WarrantyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Warranty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WarrantyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WarrantyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Warranty).
func (m *WarrantyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WarrantyMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, warranty.FieldOwnerID)
	}
	if m.serial_number != nil {
		fields = append(fields, warranty.FieldSerialNumber)
	}
	if m.covered_product != nil {
		fields = append(fields, warranty.FieldCoveredProduct)
	}
	if m.warranty_start_date != nil {
		fields = append(fields, warranty.FieldWarrantyStartDate)
	}
	if m.warranty_end_date != nil {
		fields = append(fields, warranty.FieldWarrantyEndDate)
	}
	if m.created_at != nil {
		fields = append(fields, warranty.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WarrantyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case warranty.FieldOwnerID:
		return m.OwnerID()
	case warranty.FieldSerialNumber:
		return m.SerialNumber()
	case warranty.FieldCoveredProduct:
		return m.CoveredProduct()
	case warranty.FieldWarrantyStartDate:
		return m.WarrantyStartDate()
	case warranty.FieldWarrantyEndDate:
		return m.WarrantyEndDate()
	case warranty.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WarrantyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case warranty.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case warranty.FieldSerialNumber:
		return m.OldSerialNumber(ctx)
	case warranty.FieldCoveredProduct:
		return m.OldCoveredProduct(ctx)
	case warranty.FieldWarrantyStartDate:
		return m.OldWarrantyStartDate(ctx)
	case warranty.FieldWarrantyEndDate:
		return m.OldWarrantyEndDate(ctx)
	case warranty.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Warranty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarrantyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case warranty.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case warranty.FieldSerialNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerialNumber(v)
		return nil
	case warranty.FieldCoveredProduct:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveredProduct(v)
		return nil
	case warranty.FieldWarrantyStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarrantyStartDate(v)
		return nil
	case warranty.FieldWarrantyEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarrantyEndDate(v)
		return nil
	case warranty.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Warranty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WarrantyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WarrantyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarrantyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Warranty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WarrantyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(warranty.FieldSerialNumber) {
		fields = append(fields, warranty.FieldSerialNumber)
	}
	if m.FieldCleared(warranty.FieldCoveredProduct) {
		fields = append(fields, warranty.FieldCoveredProduct)
	}
	if m.FieldCleared(warranty.FieldWarrantyStartDate) {
		fields = append(fields, warranty.FieldWarrantyStartDate)
	}
	if m.FieldCleared(warranty.FieldWarrantyEndDate) {
		fields = append(fields, warranty.FieldWarrantyEndDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WarrantyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WarrantyMutation) ClearField(name string) error {
	switch name {
	case warranty.FieldSerialNumber:
		m.ClearSerialNumber()
		return nil
	case warranty.FieldCoveredProduct:
		m.ClearCoveredProduct()
		return nil
	case warranty.FieldWarrantyStartDate:
		m.ClearWarrantyStartDate()
		return nil
	case warranty.FieldWarrantyEndDate:
		m.ClearWarrantyEndDate()
		return nil
	}
	return fmt.Errorf("unknown Warranty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WarrantyMutation) ResetField(name string) error {
	switch name {
	case warranty.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case warranty.FieldSerialNumber:
		m.ResetSerialNumber()
		return nil
	case warranty.FieldCoveredProduct:
		m.ResetCoveredProduct()
		return nil
	case warranty.FieldWarrantyStartDate:
		m.ResetWarrantyStartDate()
		return nil
	case warranty.FieldWarrantyEndDate:
		m.ResetWarrantyEndDate()
		return nil
	case warranty.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Warranty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WarrantyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WarrantyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WarrantyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WarrantyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WarrantyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WarrantyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WarrantyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Warranty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WarrantyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Warranty edge %s", name)
}
