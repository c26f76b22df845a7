// Package normalize reshapes raw provider output into the canonical nested
// entity model. Providers sometimes ignore the requested schema and return a
// flat key/value map; normalization detects this and regroups losslessly.
package normalize

import (
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// Entities pulls the entities array out of a parsed provider response and
// normalizes every element. A response with no entities array is treated as
// a single flat entity payload.
func Entities(parsed map[string]any, primary constants.DocType) []entity.Entity {
	raw, ok := parsed["entities"].([]any)
	if !ok {
		if len(parsed) == 0 {
			return nil
		}
		return []entity.Entity{Entity(parsed, primary, true)}
	}

	out := make([]entity.Entity, 0, len(raw))
	for i, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Entity(m, primary, i == 0))
	}
	return out
}

// Entity normalizes one raw entity object. Canonical {type, data} input is
// passed through unchanged (a fixed point); anything else is detected,
// stripped of meta fields, and — for receipts — regrouped into the nested
// canonical groups.
func Entity(raw map[string]any, primary constants.DocType, first bool) entity.Entity {
	conf := confidenceOf(raw)

	// already canonical?
	if data, ok := raw["data"].(map[string]any); ok {
		dt := detectType(raw, nil, primary, first)
		return entity.Entity{Type: dt, ConfidenceScore: conf, Data: data}
	}

	dt := detectType(raw, raw, primary, first)

	data := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "type", "confidence_score", "confidence":
			// meta fields stay out of the payload
			continue
		}
		data[k] = v
	}

	if dt == constants.Receipt {
		data = regroupReceipt(data)
	}
	return entity.Entity{Type: dt, ConfidenceScore: conf, Data: data}
}

func confidenceOf(raw map[string]any) float64 {
	if f, ok := raw["confidence_score"].(float64); ok {
		return clamp01(f)
	}
	if f, ok := raw["confidence"].(float64); ok {
		return clamp01(f)
	}
	return 0
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// detectType applies the ordered chain: explicit type field, field-presence
// heuristics, schema primary type (first entity only), generic document.
func detectType(raw, fields map[string]any, primary constants.DocType, first bool) constants.DocType {
	if s, ok := raw["type"].(string); ok {
		if dt, known := constants.Canonicalize(s); known {
			return dt
		}
	}

	if fields != nil {
		for _, rule := range constants.DetectionRules {
			if matchesRule(fields, rule) {
				return rule.Type
			}
		}
	}

	if first && primary != "" && primary != constants.Other {
		return primary
	}
	return constants.Document
}

// matchesRule: all required fields present, or at least two suggestive ones
// (one is enough when the rule lists a single suggestive field).
func matchesRule(fields map[string]any, rule constants.TypeDetectionRule) bool {
	for _, f := range rule.Required {
		if _, ok := fields[f]; !ok {
			return false
		}
	}
	if len(rule.Required) > 0 {
		return true
	}
	need := 2
	if len(rule.Suggestive) < 2 {
		need = len(rule.Suggestive)
	}
	hits := 0
	for _, f := range rule.Suggestive {
		if _, ok := fields[f]; ok {
			hits++
			if hits >= need {
				return true
			}
		}
	}
	return false
}

// receiptFieldGroups maps flat receipt fields onto "group.field" targets.
// A bare group name means the value lands as (or merges into) the group
// itself.
var receiptFieldGroups = map[string]string{
	"merchant":         "merchant",
	"merchant_name":    "merchant.name",
	"merchant_address": "merchant.address",
	"merchant_phone":   "merchant.phone",
	"totals":           "totals",
	"subtotal":         "totals.subtotal",
	"total":            "totals.total_amount",
	"total_amount":     "totals.total_amount",
	"tax":              "totals.tax_amount",
	"tax_amount":       "totals.tax_amount",
	"discount":         "totals.total_discount",
	"total_discount":   "totals.total_discount",
	"currency":         "totals.currency_code",
	"currency_code":    "totals.currency_code",
	"receipt_info":     "receipt_info",
	"receipt_number":   "receipt_info.receipt_number",
	"date":             "receipt_info.date",
	"time":             "receipt_info.time",
	"payment":          "payment",
	"payment_method":   "payment.method",
	"payment_last4":    "payment.last4",
	"items":            "items",
	"purchase_items":   "items",
	"vendors":          "vendors",
	"summary":          "summary",
}

// regroupReceipt rebuilds a flat receipt payload into the canonical nested
// groups. Fields with no mapping are carried through unchanged at the top
// level — regrouping must never drop data.
func regroupReceipt(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))

	for k, v := range flat {
		target, ok := receiptFieldGroups[k]
		if !ok {
			out[k] = v
			continue
		}

		group, field, nested := strings.Cut(target, ".")
		if !nested {
			switch group {
			case "items", "vendors", "summary":
				out[group] = v
			default:
				m, isMap := v.(map[string]any)
				if existing, ok := out[group].(map[string]any); ok && isMap {
					for mk, mv := range m {
						if _, dup := existing[mk]; !dup {
							existing[mk] = mv
						}
					}
				} else if isMap {
					out[group] = m
				} else {
					// scalar under a group name, e.g. "merchant": "ACME"
					out[group] = map[string]any{"name": v}
				}
			}
			continue
		}

		g, ok := out[group].(map[string]any)
		if !ok {
			g = make(map[string]any)
			out[group] = g
		}
		if _, dup := g[field]; !dup {
			g[field] = v
		}
	}
	return out
}
