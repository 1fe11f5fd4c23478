package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/finance"
)

func txn(typ string, amount float64) entity.Transaction {
	return entity.Transaction{Type: typ, Amount: decimal.NewFromFloat(amount)}
}

func TestSummarize(t *testing.T) {
	s := finance.Summarize([]entity.Transaction{
		txn(entity.TxnIncome, 500),
		txn(entity.TxnExpense, 200),
		txn(entity.TxnIncome, 300),
	})
	assert.True(t, s.Income.Equal(decimal.NewFromInt(800)), "income = %s", s.Income)
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(200)), "expense = %s", s.Expense)
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(600)), "balance = %s", s.Balance)
}

func TestSummarize_NegativeBalance(t *testing.T) {
	s := finance.Summarize([]entity.Transaction{
		txn(entity.TxnIncome, 100),
		txn(entity.TxnExpense, 400),
	})
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(-300)), "balance = %s", s.Balance)
}

func TestSummarize_Empty(t *testing.T) {
	s := finance.Summarize(nil)
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Balance.IsZero())
}

func TestSplitByType(t *testing.T) {
	income, expense := finance.SplitByType([]entity.Transaction{
		txn(entity.TxnIncome, 1),
		txn(entity.TxnExpense, 2),
		txn(entity.TxnIncome, 3),
		{Type: "transfer", Amount: decimal.NewFromInt(9)}, // unknown type dropped
	})
	require.Len(t, income, 2)
	require.Len(t, expense, 1)
	assert.True(t, income[1].Amount.Equal(decimal.NewFromInt(3)), "order preserved")
}

func TestDaysElapsedInMonth(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	days, err := finance.DaysElapsedInMonth("2024-03", ref)
	require.NoError(t, err)
	assert.Equal(t, 15, days, "current month counts up to today")

	days, err = finance.DaysElapsedInMonth("2024-02", ref)
	require.NoError(t, err)
	assert.Equal(t, 29, days, "2024 February is a leap month")

	days, err = finance.DaysElapsedInMonth("2023-02", ref)
	require.NoError(t, err)
	assert.Equal(t, 28, days)

	days, err = finance.DaysElapsedInMonth("2023-12", ref)
	require.NoError(t, err)
	assert.Equal(t, 31, days, "December rollover")

	_, err = finance.DaysElapsedInMonth("March-2024", ref)
	assert.Error(t, err)
}

func TestAverageDailySales(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	avg := finance.AverageDailySales(decimal.NewFromInt(3000), "2024-03", ref)
	assert.True(t, avg.Equal(decimal.NewFromInt(200)), "avg = %s", avg)

	avg = finance.AverageDailySales(decimal.Zero, "2024-03", ref)
	assert.True(t, avg.IsZero())

	avg = finance.AverageDailySales(decimal.NewFromInt(3000), "garbage", ref)
	assert.True(t, avg.IsZero(), "malformed month yields zero, not a panic")
}

func TestToday_UsesLocalWallClock(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 00:30 IST on March 16th is still March 15th in UTC.
	ref := time.Date(2024, 3, 16, 0, 30, 0, 0, ist)

	assert.Equal(t, "2024-03-16", finance.Today(ref))
	assert.Equal(t, "2024-03-15", finance.Today(ref.UTC()), "UTC conversion shifts the date")
	assert.Equal(t, "2024-03", finance.Month(ref))
}
