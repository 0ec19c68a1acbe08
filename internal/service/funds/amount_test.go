package funds

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		crore    string
		expected string
	}{
		{"0.5", "₹50,00,000"},
		{"1", "₹1,00,00,000"},
		{"0.0000123", "₹123"},
		{"0.00012", "₹1,200"},
		{"12.3456789", "₹12,34,56,789"},
		{"100", "₹1,00,00,00,000"},
	}

	for _, tc := range cases {
		crore := decimal.RequireFromString(tc.crore)
		assert.Equal(t, tc.expected, FormatINR(crore), "%s crore", tc.crore)
	}
}

func TestParseCroreAmount(t *testing.T) {
	amount, ok := ParseCroreAmount(" 0.5 ")
	require.True(t, ok)
	assert.Equal(t, "0.5", amount.String())

	for _, raw := range []string{"", "abc", "12,5", "-1", "0"} {
		_, ok = ParseCroreAmount(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}
