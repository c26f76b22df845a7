package constants

import (
	"strings"
)

// DocType is the canonical document/entity type produced by extraction.
type DocType string

const (
	Receipt       DocType = "receipt"
	Invoice       DocType = "invoice"
	Contract      DocType = "contract"
	Voucher       DocType = "voucher"
	Warranty      DocType = "warranty"
	BankStatement DocType = "bank_statement"
	Document      DocType = "document"
	Other         DocType = "other"
)

var allDocTypes = []DocType{
	Receipt,
	Invoice,
	Contract,
	Voucher,
	Warranty,
	BankStatement,
	Document,
}

// AsStringSlice returns the canonical document types as plain strings.
func AsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// IsKnownDocType reports whether s names a canonical document type.
func IsKnownDocType(s string) bool {
	_, ok := Canonicalize(s)
	return ok
}

// Canonicalize maps a free-form type label to a canonical DocType.
func Canonicalize(input string) (DocType, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	// synonyms map
	synonyms := map[string]DocType{
		"bill":              Invoice,
		"purchase_order":    Invoice,
		"agreement":         Contract,
		"lease":             Contract,
		"coupon":            Voucher,
		"gift_card":         Voucher,
		"giftcard":          Voucher,
		"guarantee":         Warranty,
		"statement":         BankStatement,
		"account_statement": BankStatement,
		"ticket":            Receipt,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return Other, false
}

// TypeDetectionRule describes the field-presence heuristic for one document
// type. Required fields all have to be present; otherwise any two suggestive
// fields are enough. Adding a document type is a table edit here plus a
// schema entry, not a code change.
type TypeDetectionRule struct {
	Type       DocType
	Required   []string
	Suggestive []string
}

// DetectionRules is consulted in order; the first matching rule wins.
var DetectionRules = []TypeDetectionRule{
	{Type: Receipt, Suggestive: []string{"merchant", "merchant_name", "receipt_number", "purchase_items", "payment_method", "total"}},
	{Type: Voucher, Suggestive: []string{"code", "voucher_type", "expiry_date", "redemption_terms"}},
	{Type: Invoice, Suggestive: []string{"invoice_number", "from_name", "to_name", "due_date", "line_items"}},
	{Type: Contract, Suggestive: []string{"contract_number", "parties", "effective_date", "termination_date"}},
	{Type: BankStatement, Suggestive: []string{"account_number", "iban", "bank_name", "opening_balance", "closing_balance"}},
	{Type: Warranty, Suggestive: []string{"serial_number", "warranty_end_date", "warranty_start_date", "covered_product"}},
}

// EntityTypeTokens is the fixed vocabulary used by the JSON repair chain to
// spot sibling entities collapsed into one object as duplicate keys.
var EntityTypeTokens = []string{
	"receipt", "invoice", "contract", "voucher", "warranty",
	"bank_statement", "document", "merchant", "line_items", "purchase_items",
}
