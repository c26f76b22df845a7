package entity

import (
	"time"

	"github.com/google/uuid"
)

// Typed entity shapes persisted from extraction output. These mirror the
// storage rows; each one is reachable from an ExtractableEntity link via
// (entity_type, entity_id).

// Receipt represents a purchase receipt for data transfer between layers.
type Receipt struct {
	ID            uuid.UUID        `json:"id"`
	OwnerID       uuid.UUID        `json:"owner_id"`
	MerchantName  string           `json:"merchant_name"`
	ReceiptNumber string           `json:"receipt_number,omitempty"`
	TxDate        *time.Time       `json:"tx_date,omitempty"`
	Subtotal      *float64         `json:"subtotal,omitempty"`
	TaxAmount     *float64         `json:"tax_amount,omitempty"`
	TotalAmount   *float64         `json:"total_amount,omitempty"`
	TotalDiscount *float64         `json:"total_discount,omitempty"`
	CurrencyCode  string           `json:"currency_code,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Items         []map[string]any `json:"items,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Invoice represents an invoice row.
type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	FromName      string     `json:"from_name,omitempty"`
	ToName        string     `json:"to_name,omitempty"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	TotalAmount   *float64   `json:"total_amount,omitempty"`
	CurrencyCode  string     `json:"currency_code,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Contract represents a contract row.
type Contract struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	ContractNumber  string     `json:"contract_number,omitempty"`
	Parties         []string   `json:"parties,omitempty"`
	EffectiveDate   *time.Time `json:"effective_date,omitempty"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Voucher represents a voucher/gift-card row.
type Voucher struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Code        string     `json:"code,omitempty"`
	VoucherType string     `json:"voucher_type,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Warranty represents a warranty row.
type Warranty struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	SerialNumber   string     `json:"serial_number,omitempty"`
	CoveredProduct string     `json:"covered_product,omitempty"`
	StartDate      *time.Time `json:"warranty_start_date,omitempty"`
	EndDate        *time.Time `json:"warranty_end_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BankStatement represents a bank-statement row.
type BankStatement struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	BankName       string     `json:"bank_name,omitempty"`
	AccountNumber  string     `json:"account_number,omitempty"`
	IBAN           string     `json:"iban,omitempty"`
	PeriodStart    *time.Time `json:"period_start,omitempty"`
	PeriodEnd      *time.Time `json:"period_end,omitempty"`
	OpeningBalance *float64   `json:"opening_balance,omitempty"`
	ClosingBalance *float64   `json:"closing_balance,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DocumentRecord is the catch-all typed row for documents that fit no
// narrower shape.
type DocumentRecord struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
