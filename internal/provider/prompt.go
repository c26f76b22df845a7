package provider

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/docintel/constants"
)

// BuildClassificationPrompt composes the pass-1 instruction. The model sees
// the document itself as an attachment; the prompt only constrains output.
func BuildClassificationPrompt() string {
	parts := []string{
		"You are a document classifier. Look at the attached document and decide its type.",
		"Allowed types (enum): " + strings.Join(constants.AsStringSlice(), ", ") + ".",
		"Return ONLY JSON matching the provided schema: document_type, confidence (0..1), and a one-sentence reasoning.",
		"If nothing fits, use 'document'.",
	}
	return strings.Join(parts, " ")
}

// BuildExtractionPrompt composes the pass-2 instruction for a detected type.
// The override, when set, replaces the per-type guidance but keeps the
// formatting rules.
func BuildExtractionPrompt(dt constants.DocType, override string) string {
	guidance := typeGuidance(dt)
	if strings.TrimSpace(override) != "" {
		guidance = strings.TrimSpace(override)
	}
	parts := []string{
		"You are a document data extractor. Extract structured data from the attached document.",
		guidance,
		"Return ONLY JSON matching the provided schema: an 'entities' array where each entry has 'type', 'confidence_score' (0..1) and 'data'.",
		"Use ISO-8601 dates (YYYY-MM-DD). Currency must be a 3-letter ISO 4217 code.",
		"Never output null. If a field is not present, omit it.",
		"Emit one entities element per distinct record; never merge two records into one object.",
	}
	return strings.Join(parts, " ")
}

func typeGuidance(dt constants.DocType) string {
	switch dt {
	case constants.Receipt:
		return "This is a receipt. Group fields under 'merchant', 'totals', 'receipt_info', 'payment' and 'items'. Put taxes in totals.tax_amount, never inside items."
	case constants.Invoice:
		return "This is an invoice. Capture invoice_number, the issuing and receiving party names, issue and due dates, line items and the total."
	case constants.Contract:
		return "This is a contract. Capture contract_number, all named parties, and the effective and termination dates."
	case constants.Voucher:
		return "This is a voucher or gift card. Capture the code, voucher_type, value and expiry_date; include redemption terms verbatim if short."
	case constants.Warranty:
		return "This is a warranty. Capture serial_number, the covered product and the warranty start and end dates."
	case constants.BankStatement:
		return "This is a bank statement. Capture bank_name, account_number or IBAN, the statement period and the opening and closing balances."
	default:
		return "Capture a short title and a concise summary of the document."
	}
}

// BuildSummaryPrompt asks for a plain-text summary bounded to maxLen characters.
func BuildSummaryPrompt(text string, maxLen int) string {
	return fmt.Sprintf(
		"Summarize the following document text in at most %d characters. Return plain text only, no markdown.\n\n%s",
		maxLen, Truncate(text, 12000))
}

// BuildTagsPrompt asks for up to maxTags short tags as a JSON string array.
func BuildTagsPrompt(text string, maxTags int) string {
	return fmt.Sprintf(
		"Suggest at most %d short lowercase tags for the following document. Return ONLY a JSON array of strings.\n\n%s",
		maxTags, Truncate(text, 12000))
}

// Truncate bounds s to roughly n bytes for prompt payloads, marking the cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return TruncateRunes(s, n) + "\n…(truncated)"
}

// TruncateRunes bounds s to at most n bytes, backing off to the previous
// rune boundary so the cut never yields invalid UTF-8.
func TruncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// MustJSON renders v for embedding schemas into prompts.
func MustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
