package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/internal/common"
)

func TestRepairDirect(t *testing.T) {
	m, stage, err := Repair([]byte(`{"entities":[{"type":"receipt","merchant_name":"ACME"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "direct", stage)
	assert.Len(t, m["entities"], 1)
}

func TestRepairFencedBlock(t *testing.T) {
	raw := "Here is the extraction you asked for:\n```json\n{\"merchant_name\": \"ACME\", \"total\": 12.5}\n```\nLet me know if you need anything else."
	m, stage, err := Repair([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "extract", stage)
	assert.Equal(t, "ACME", m["merchant_name"])
}

func TestRepairProseWrapped(t *testing.T) {
	raw := `Sure! The document contains: {"invoice_number": "INV-42", "total_amount": 99.0} as requested.`
	m, stage, err := Repair([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "extract", stage)
	assert.Equal(t, "INV-42", m["invoice_number"])
}

func TestRepairTrailingCommas(t *testing.T) {
	raw := `{"merchant_name": "ACME", "items": [{"name": "a"}, {"name": "b"},],}`
	m, stage, err := Repair([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "cleanup", stage)
	assert.Len(t, m["items"], 2)
}

func TestRepairBareArray(t *testing.T) {
	m, stage, err := Repair([]byte(`[{"type":"receipt"},{"type":"invoice"}]`))
	require.NoError(t, err)
	assert.Equal(t, "direct", stage)
	assert.Len(t, m["entities"], 2)
}

func TestRepairNullOnlyArraysCollapse(t *testing.T) {
	m, _, err := Repair([]byte(`{"items": [null, null, null], "vendors": [{"name":"x"}, null]}`))
	require.NoError(t, err)
	assert.Empty(t, m["items"])
	// mixed arrays are left alone
	assert.Len(t, m["vendors"], 2)
}

func TestRepairDuplicateSiblingKeys(t *testing.T) {
	// two receipts collapsed into one object as duplicate keys
	raw := `{"entities": [{"merchant": {"name": "A"}, "total": 1.0, "merchant": {"name": "B"}, "total": 2.0}]}`
	m, stage, err := Repair([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "structural", stage)

	entities, ok := m["entities"].([]any)
	require.True(t, ok)
	require.Len(t, entities, 2)

	first := entities[0].(map[string]any)
	second := entities[1].(map[string]any)
	assert.Equal(t, "A", first["merchant"].(map[string]any)["name"])
	assert.Equal(t, "B", second["merchant"].(map[string]any)["name"])
	assert.Equal(t, 1.0, first["total"])
	assert.Equal(t, 2.0, second["total"])
}

func TestRepairDuplicateSiblingKeysInFencedBlock(t *testing.T) {
	raw := "```json\n{\"entities\": [{\"merchant\": {\"name\": \"A\"}, \"merchant\": {\"name\": \"B\"}}]}\n```"
	m, stage, err := Repair([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "structural", stage)
	assert.Len(t, m["entities"], 2)
}

func TestRepairDeterministicAcrossStages(t *testing.T) {
	clean := []byte(`{"merchant_name": "ACME", "items": []}`)
	dirty := []byte("```json\n{\"merchant_name\": \"ACME\", \"items\": [null],}\n```")

	a, _, err := Repair(clean)
	require.NoError(t, err)
	b, _, err := Repair(dirty)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRepairUnparsable(t *testing.T) {
	_, _, err := Repair([]byte("no structured content here at all"))
	require.Error(t, err)
	assert.Equal(t, common.KindResponseInvalid, common.KindOf(err))
	assert.False(t, common.IsRetryable(err))
}
