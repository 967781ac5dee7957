package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name  string
		input any
		want  float64
	}

	tests := []testCase{
		{name: "NumberPassesThrough", input: 123.45, want: 123.45},
		{name: "IntPassesThrough", input: 70000, want: 70000},
		{name: "Nil", input: nil, want: 0},
		{name: "EmptyString", input: "", want: 0},
		{name: "CurrencyPrefixAndCommas", input: "Rp12,345", want: 12345},
		{name: "Negative", input: "-123", want: -123},
		{name: "MultipleDecimalPoints", input: "1.2.3", want: 1.2},
		{name: "MisplacedHyphen", input: "5-5", want: 5},
		{name: "NoDigits", input: "abc", want: 0},
		{name: "LeadingGarbage", input: "approx 250 per month", want: 250},
		{name: "ThousandsSeparators", input: "1,234,567", want: 1234567},
		{name: "NaNCollapses", input: math.NaN(), want: 0},
		{name: "InfCollapses", input: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, money.Parse(tt.input), 1e-9)
		})
	}
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp12.345", money.FormatIDR(12345))
	assert.Equal(t, "Rp0", money.FormatIDR(0))
	assert.Equal(t, "Rp1.234.568", money.FormatIDR(1234567.6))
	assert.Equal(t, "-", money.FormatIDR(math.NaN()))
}
