package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/docintel/constants"
)

// BuildClassificationJSONSchema returns the small pass-1 schema: document
// type, confidence and a short reasoning string.
func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type": map[string]any{
				"type": "string",
				"enum": constants.AsStringSlice(),
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"reasoning":  map[string]any{"type": "string"},
		},
		"required": []string{"document_type", "confidence"},
	}
}

// BuildExtractionJSONSchema returns the full pass-2 schema for a document
// type: an object with an ordered entities array of {type, confidence_score,
// data} records. The data shape is per-type.
func BuildExtractionJSONSchema(dt constants.DocType) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"entities": map[string]any{
				"type":  "array",
				"items": entitySchema(dt),
			},
		},
		"required": []string{"entities"},
	}
}

func entitySchema(dt constants.DocType) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type":             map[string]any{"type": "string"},
			"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"data":             dataSchema(dt),
		},
		"required": []string{"data"},
	}
}

func dataSchema(dt constants.DocType) map[string]any {
	switch dt {
	case constants.Receipt:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"merchant": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":    map[string]any{"type": "string"},
						"address": map[string]any{"type": "string"},
						"phone":   map[string]any{"type": "string"},
						"tax_id":  map[string]any{"type": "string"},
					},
				},
				"totals": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"subtotal":       map[string]any{"type": "number"},
						"tax_amount":     map[string]any{"type": "number"},
						"total_amount":   map[string]any{"type": "number"},
						"total_discount": map[string]any{"type": "number"},
						"currency_code":  currencyProp(),
					},
				},
				"receipt_info": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"receipt_number": map[string]any{"type": "string"},
						"date":           dateProp(),
						"time":           map[string]any{"type": "string"},
					},
				},
				"payment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"method": map[string]any{"type": "string"},
						"last4":  map[string]any{"type": "string", "pattern": `^\d{4}$`},
					},
				},
				"items": lineItemsProp(),
			},
		}
	case constants.Invoice:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"invoice_number": map[string]any{"type": "string"},
				"from_name":      map[string]any{"type": "string"},
				"to_name":        map[string]any{"type": "string"},
				"issue_date":     dateProp(),
				"due_date":       dateProp(),
				"total_amount":   map[string]any{"type": "number"},
				"currency_code":  currencyProp(),
				"line_items":     lineItemsProp(),
			},
		}
	case constants.Contract:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contract_number":  map[string]any{"type": "string"},
				"parties":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"effective_date":   dateProp(),
				"termination_date": dateProp(),
				"subject":          map[string]any{"type": "string"},
			},
		}
	case constants.Voucher:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"code":             map[string]any{"type": "string"},
				"voucher_type":     map[string]any{"type": "string"},
				"value":            map[string]any{"type": "number"},
				"currency_code":    currencyProp(),
				"expiry_date":      dateProp(),
				"redemption_terms": map[string]any{"type": "string"},
			},
		}
	case constants.Warranty:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"serial_number":       map[string]any{"type": "string"},
				"covered_product":     map[string]any{"type": "string"},
				"warranty_start_date": dateProp(),
				"warranty_end_date":   dateProp(),
				"provider_name":       map[string]any{"type": "string"},
			},
		}
	case constants.BankStatement:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"bank_name":       map[string]any{"type": "string"},
				"account_number":  map[string]any{"type": "string"},
				"iban":            map[string]any{"type": "string"},
				"period_start":    dateProp(),
				"period_end":      dateProp(),
				"opening_balance": map[string]any{"type": "number"},
				"closing_balance": map[string]any{"type": "number"},
				"currency_code":   currencyProp(),
			},
		}
	default:
		return map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":   map[string]any{"type": "string"},
				"summary": map[string]any{"type": "string"},
				"date":    dateProp(),
			},
		}
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func currencyProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 3, "maxLength": 3}
}

func lineItemsProp() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{"type": "string"},
				"quantity":    map[string]any{"type": "number"},
				"unit_price":  map[string]any{"type": "number"},
				"amount":      map[string]any{"type": "number"},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates doc against a schema expressed as a
// generic map, the same map we ship to providers as the generation config.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiled, err := jsonschema.CompileString("schema.json", string(sb))
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return compiled.Validate(v)
}

// ValidateParsed re-encodes an already-parsed document and validates it, so
// the repaired form is what gets checked rather than the raw model output.
func ValidateParsed(schema map[string]any, doc map[string]any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return ValidateJSONAgainstSchema(schema, b)
}
