package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney_IndianGrouping(t *testing.T) {
	cases := map[string]string{
		"0.00":        "0.00",
		"999.00":      "999.00",
		"1000.00":     "1,000.00",
		"99999.50":    "99,999.50",
		"100000.00":   "1,00,000.00",
		"1234567.00":  "12,34,567.00",
		"9999999.99":  "99,99,999.99",
		"12345678.00": "1,23,45,678.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), "input %s", in)
	}
}
