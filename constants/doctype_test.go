package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := map[string]DocType{
		"receipt":           Receipt,
		"Receipt":           Receipt,
		"  INVOICE  ":       Invoice,
		"bill":              Invoice,
		"purchase order":    Invoice,
		"gift-card":         Voucher,
		"agreement":         Contract,
		"guarantee":         Warranty,
		"account statement": BankStatement,
		"bank_statement":    BankStatement,
		"ticket":            Receipt,
		"document":          Document,
	}
	for input, want := range cases {
		got, ok := Canonicalize(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestCanonicalizeUnknown(t *testing.T) {
	for _, input := range []string{"", "hologram", "other"} {
		got, ok := Canonicalize(input)
		assert.False(t, ok, "input %q", input)
		assert.Equal(t, Other, got)
	}
}

func TestUnitCostFallback(t *testing.T) {
	assert.Equal(t, UnitCostByType[Receipt], UnitCost(Receipt))
	assert.Equal(t, UnitCostByType[Document], UnitCost(Other))
	assert.Equal(t, UnitCostByType[Document], UnitCost("hologram"))
}

func TestExtensionList(t *testing.T) {
	assert.Equal(t, []string{"jpeg", "jpg", "pdf", "png", "tiff", "webp"}, ExtensionList())
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpg", NormalizeExt("jpg"))
}
