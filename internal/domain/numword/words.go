// Package numword spells out rupee amounts in the Indian numbering system
// (crore, lakh, thousand, hundred) for printed invoices.
package numword

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Max is the largest amount that can be spelled out.
const Max = 9999999

var ones = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// InWords renders a non-negative rupee amount as words, e.g.
// "Rupees twelve lakh thirty four thousand five hundred and sixty seven Only".
// The fractional part is truncated. Zero (or anything below one rupee)
// returns "zero". Amounts above Max return "Value too large".
func InWords(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n <= 0 {
		return "zero"
	}
	if n > Max {
		return "Value too large"
	}

	// Groups of the 9-digit Indian layout: 2-2-2-1-2.
	crore := n / 10000000
	lakh := (n / 100000) % 100
	thousand := (n / 1000) % 100
	hundred := (n / 100) % 10
	rem := n % 100

	var str string
	if crore != 0 {
		str += upToNinetyNine(crore) + " crore "
	}
	if lakh != 0 {
		str += upToNinetyNine(lakh) + " lakh "
	}
	if thousand != 0 {
		str += upToNinetyNine(thousand) + " thousand "
	}
	if hundred != 0 {
		str += ones[hundred] + " hundred "
	}
	if rem != 0 {
		if str != "" {
			str += "and "
		}
		str += upToNinetyNine(rem) + " "
	}

	return "Rupees " + strings.TrimSpace(str) + " Only"
}

func upToNinetyNine(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}
