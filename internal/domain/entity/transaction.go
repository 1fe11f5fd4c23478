package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account types.
const (
	AccountCash  = "cash"
	AccountBank  = "bank"
	AccountUPI   = "upi"
	AccountOther = "other"
)

// Transaction types.
const (
	TxnIncome  = "income"
	TxnExpense = "expense"
)

// Account is a money holding (the default is a Cash account created lazily).
type Account struct {
	ID        string
	OwnerID   string
	Name      string
	Type      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is one entry in the day-book. Income raises the target
// account's balance, expense lowers the source account's balance.
type Transaction struct {
	ID            string
	OwnerID       string
	Description   string
	Amount        decimal.Decimal // always positive; Type carries the sign
	Type          string          // income, expense
	CustomerName  string
	HandlerName   string
	PaymentMethod string
	Category      string
	Notes         string
	SaleID        string // set when auto-logged from a bill
	AccountID     string
	CreatedByID   string
	Date          time.Time
	CreatedAt     time.Time
}
