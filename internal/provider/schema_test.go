package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

func TestValidateParsedAcceptsCanonicalShape(t *testing.T) {
	schema := BuildExtractionJSONSchema(constants.Receipt)
	doc := map[string]any{
		"entities": []any{
			map[string]any{
				"type":             "receipt",
				"confidence_score": 0.9,
				"data": map[string]any{
					"merchant": map[string]any{"name": "ACME"},
					"totals":   map[string]any{"total_amount": 12.5, "currency_code": "USD"},
				},
			},
		},
	}
	assert.NoError(t, ValidateParsed(schema, doc))
}

func TestValidateParsedRejectsExtraRootKeys(t *testing.T) {
	schema := BuildExtractionJSONSchema(constants.Receipt)
	doc := map[string]any{
		"entities": []any{},
		"comment":  "models sometimes chat outside the schema",
	}
	assert.Error(t, ValidateParsed(schema, doc))
}

func TestValidateParsedRejectsEntityWithoutData(t *testing.T) {
	schema := BuildExtractionJSONSchema(constants.Invoice)
	doc := map[string]any{
		"entities": []any{map[string]any{"type": "invoice"}},
	}
	assert.Error(t, ValidateParsed(schema, doc))
}

func TestValidateJSONAgainstSchemaDatePattern(t *testing.T) {
	schema := BuildExtractionJSONSchema(constants.Invoice)
	doc := []byte(`{"entities":[{"data":{"invoice_number":"INV-1","issue_date":"17 March 2024"}}]}`)
	require.Error(t, ValidateJSONAgainstSchema(schema, doc))
}
