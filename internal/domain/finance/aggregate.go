// Package finance holds the pure day-book arithmetic: income/expense
// splits, balances and sales-velocity figures.
package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// Summary totals a set of transactions. Balance may be negative.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Summarize totals income and expense and nets the balance.
func Summarize(txns []entity.Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case entity.TxnIncome:
			income = income.Add(t.Amount)
		case entity.TxnExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// SplitByType partitions transactions into income and expense slices,
// preserving order. Unknown types are dropped.
func SplitByType(txns []entity.Transaction) (income, expense []entity.Transaction) {
	for _, t := range txns {
		switch t.Type {
		case entity.TxnIncome:
			income = append(income, t)
		case entity.TxnExpense:
			expense = append(expense, t)
		}
	}
	return income, expense
}

// DaysElapsedInMonth returns how many days of yearMonth ("2006-01") have
// passed as of ref: the day of month when ref falls inside that month,
// otherwise the full calendar length of the month (leap aware).
func DaysElapsedInMonth(yearMonth string, ref time.Time) (int, error) {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", yearMonth, err)
	}
	if t.Year() == ref.Year() && t.Month() == ref.Month() {
		return ref.Day(), nil
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// AverageDailySales divides the month's income by the days elapsed so far.
// Zero when the divisor is zero or the month string is malformed.
func AverageDailySales(income decimal.Decimal, yearMonth string, ref time.Time) decimal.Decimal {
	days, err := DaysElapsedInMonth(yearMonth, ref)
	if err != nil || days == 0 {
		return decimal.Zero
	}
	return income.Div(decimal.NewFromInt(int64(days)))
}

// Today formats ref's calendar date in ref's own location. The wall-clock
// date matters here: converting to UTC first would shift late-evening IST
// entries onto the previous day.
func Today(ref time.Time) string {
	return ref.Format("2006-01-02")
}

// Month formats ref's calendar month ("2006-01") in ref's own location.
func Month(ref time.Time) string {
	return ref.Format("2006-01")
}
