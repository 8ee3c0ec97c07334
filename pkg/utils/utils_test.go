package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "menor que mil", amount: 999.5, want: "999.50"},
		{name: "milhar", amount: 1234, want: "1,234.00"},
		{name: "lakh", amount: 123456.78, want: "1,23,456.78"},
		{name: "working fund", amount: 518425409, want: "51,84,25,409.00"},
		{name: "negativo", amount: -13436, want: "-13,436.00"},
		{name: "zero", amount: 0, want: "0.00"},
		{name: "crore", amount: 12345678.9, want: "1,23,45,678.90"},
		{name: "arredonda centavos", amount: 1000.006, want: "1,000.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}

func TestPercentAndSafeDiv(t *testing.T) {
	assert.True(t, Percent(decimal.NewFromInt(5), decimal.NewFromInt(20)).Equal(decimal.NewFromInt(25)))
	assert.True(t, Percent(decimal.NewFromInt(5), decimal.Zero).IsZero())
	assert.True(t, Percent(decimal.NewFromInt(5), decimal.NewFromInt(-1)).IsZero())
	assert.True(t, SafeDiv(decimal.NewFromInt(9), decimal.NewFromInt(3)).Equal(decimal.NewFromInt(3)))
	assert.True(t, SafeDiv(decimal.NewFromInt(9), decimal.Zero).IsZero())
}
