package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{
			name:     "Zero",
			amount:   0,
			expected: "₹0",
		},
		{
			name:     "Below one thousand",
			amount:   999,
			expected: "₹999",
		},
		{
			name:     "Catalog price",
			amount:   18999,
			expected: "₹18,999",
		},
		{
			name:     "Cart total",
			amount:   56997,
			expected: "₹56,997",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.amount))
		})
	}
}

func TestFormatINR_NoFractionDigits(t *testing.T) {
	assert.NotContains(t, FormatINR(3999), ".")
}
