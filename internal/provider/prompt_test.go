package provider

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunesBacksOffToBoundary(t *testing.T) {
	s := "日本語" // three runes, three bytes each
	got := TruncateRunes(s, 4)
	assert.Equal(t, "日", got)
	assert.True(t, utf8.ValidString(got))
}

func TestTruncateRunesWithinBound(t *testing.T) {
	assert.Equal(t, "héllo", TruncateRunes("héllo", 10))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
}

func TestTruncateMarksCut(t *testing.T) {
	got := Truncate("café au lait", 4)
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "(truncated)")
	assert.Equal(t, "caf", got[:3])
}
