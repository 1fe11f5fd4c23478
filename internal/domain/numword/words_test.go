package numword_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/numword"
)

func TestInWords_Vectors(t *testing.T) {
	cases := []struct {
		amount   float64
		expected string
	}{
		{0, "zero"},
		{0.99, "zero"},
		{1, "Rupees one Only"},
		{19, "Rupees nineteen Only"},
		{20, "Rupees twenty Only"},
		{45, "Rupees forty five Only"},
		{100, "Rupees one hundred Only"},
		{105, "Rupees one hundred and five Only"},
		{220, "Rupees two hundred and twenty Only"},
		{1000, "Rupees one thousand Only"},
		{1001, "Rupees one thousand and one Only"},
		{55000, "Rupees fifty five thousand Only"},
		{100000, "Rupees one lakh Only"},
		{1234567, "Rupees twelve lakh thirty four thousand five hundred and sixty seven Only"},
		{9999999, "Rupees ninety nine lakh ninety nine thousand nine hundred and ninety nine Only"},
	}

	for _, tc := range cases {
		got := numword.InWords(decimal.NewFromFloat(tc.amount))
		assert.Equal(t, tc.expected, got, "amount %v", tc.amount)
	}
}

func TestInWords_TruncatesFraction(t *testing.T) {
	got := numword.InWords(decimal.NewFromFloat(220.75))
	assert.Equal(t, "Rupees two hundred and twenty Only", got)
}

func TestInWords_AboveMax(t *testing.T) {
	assert.Equal(t, "Value too large", numword.InWords(decimal.NewFromInt(numword.Max+1)))
	assert.Equal(t, "Value too large", numword.InWords(decimal.NewFromInt(50_000_000)))
}

func TestInWords_NeverContainsDigits(t *testing.T) {
	for _, n := range []int64{7, 86, 305, 4021, 999999, 9999999} {
		got := numword.InWords(decimal.NewFromInt(n))
		assert.False(t, strings.ContainsAny(got, "0123456789"), "words for %d contain digits: %q", n, got)
		assert.True(t, strings.HasPrefix(got, "Rupees "), "words for %d: %q", n, got)
		assert.True(t, strings.HasSuffix(got, " Only"), "words for %d: %q", n, got)
		assert.NotContains(t, got, "  ", "double space in %q", got)
	}
}
