package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

func TestEntityCanonicalPassthrough(t *testing.T) {
	raw := map[string]any{
		"type":             "receipt",
		"confidence_score": 0.9,
		"data": map[string]any{
			"merchant": map[string]any{"name": "ACME"},
			"totals":   map[string]any{"total_amount": 10.0},
		},
	}

	e := Entity(raw, constants.Receipt, true)
	assert.Equal(t, constants.Receipt, e.Type)
	assert.Equal(t, 0.9, e.ConfidenceScore)
	// canonical input is a fixed point
	assert.Equal(t, raw["data"], e.Data)

	again := map[string]any{
		"type":             string(e.Type),
		"confidence_score": e.ConfidenceScore,
		"data":             e.Data,
	}
	e2 := Entity(again, constants.Receipt, true)
	assert.Equal(t, e, e2)
}

func TestEntityRegroupsFlatReceipt(t *testing.T) {
	raw := map[string]any{
		"type":           "receipt",
		"merchant_name":  "ACME Hardware",
		"receipt_number": "R-100",
		"total":          24.99,
		"tax":            2.0,
		"discount":       1.5,
		"payment_method": "card",
		"loyalty_id":     "L-7",
	}

	e := Entity(raw, constants.Receipt, true)
	require.Equal(t, constants.Receipt, e.Type)

	merchant, ok := e.Data["merchant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ACME Hardware", merchant["name"])

	totals, ok := e.Data["totals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 24.99, totals["total_amount"])
	assert.Equal(t, 2.0, totals["tax_amount"])
	assert.Equal(t, 1.5, totals["total_discount"])

	info, ok := e.Data["receipt_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "R-100", info["receipt_number"])

	payment, ok := e.Data["payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "card", payment["method"])

	// unmapped fields are carried through, meta fields are not
	assert.Equal(t, "L-7", e.Data["loyalty_id"])
	assert.NotContains(t, e.Data, "type")
	assert.NotContains(t, e.Data, "confidence_score")
}

func TestEntityScalarMerchantBecomesGroup(t *testing.T) {
	raw := map[string]any{
		"type":     "receipt",
		"merchant": "Corner Deli",
		"total":    5.0,
	}
	e := Entity(raw, constants.Receipt, true)
	merchant, ok := e.Data["merchant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Corner Deli", merchant["name"])
}

func TestDetectTypeExplicitWins(t *testing.T) {
	raw := map[string]any{
		"type":           "bill", // synonym for invoice
		"invoice_number": "I-1",
	}
	e := Entity(raw, constants.Receipt, true)
	assert.Equal(t, constants.Invoice, e.Type)
}

func TestDetectTypeHeuristic(t *testing.T) {
	raw := map[string]any{
		"invoice_number": "I-1",
		"due_date":       "2026-09-01",
	}
	e := Entity(raw, "", false)
	assert.Equal(t, constants.Invoice, e.Type)

	voucher := map[string]any{
		"code":        "SAVE20",
		"expiry_date": "2026-12-31",
	}
	e = Entity(voucher, "", false)
	assert.Equal(t, constants.Voucher, e.Type)
}

func TestDetectTypeFallbacks(t *testing.T) {
	opaque := map[string]any{"field_a": 1.0, "field_b": 2.0}

	// first entity inherits the requested schema type
	e := Entity(opaque, constants.Warranty, true)
	assert.Equal(t, constants.Warranty, e.Type)

	// later entities do not
	e = Entity(opaque, constants.Warranty, false)
	assert.Equal(t, constants.Document, e.Type)
}

func TestEntitiesArrayAndFlatFallback(t *testing.T) {
	parsed := map[string]any{
		"entities": []any{
			map[string]any{"type": "receipt", "merchant_name": "A"},
			map[string]any{"type": "voucher", "code": "X"},
			"not an object",
		},
	}
	out := Entities(parsed, constants.Receipt)
	require.Len(t, out, 2)
	assert.Equal(t, constants.Receipt, out[0].Type)
	assert.Equal(t, constants.Voucher, out[1].Type)

	flat := map[string]any{"merchant_name": "A", "total": 3.0}
	out = Entities(flat, constants.Receipt)
	require.Len(t, out, 1)
	assert.Equal(t, constants.Receipt, out[0].Type)

	assert.Nil(t, Entities(map[string]any{}, constants.Receipt))
}

func TestConfidenceClamped(t *testing.T) {
	e := Entity(map[string]any{"confidence": 1.7, "merchant_name": "A", "total": 1.0}, constants.Receipt, true)
	assert.Equal(t, 1.0, e.ConfidenceScore)

	e = Entity(map[string]any{"confidence_score": -0.2, "merchant_name": "A", "total": 1.0}, constants.Receipt, true)
	assert.Equal(t, 0.0, e.ConfidenceScore)
}
