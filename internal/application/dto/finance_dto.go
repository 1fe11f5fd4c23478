package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/finance"
)

// CreateTransactionRequest body for POST /api/transactions.
type CreateTransactionRequest struct {
	Description   string          `json:"description" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	CustomerName  string          `json:"customer_name,omitempty"`
	HandlerName   string          `json:"handler_name,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Category      string          `json:"category,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Date          time.Time       `json:"date,omitempty"`
}

// TransactionResponse one day-book entry.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CustomerName  string          `json:"customer_name,omitempty"`
	HandlerName   string          `json:"handler_name,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Category      string          `json:"category,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Date          time.Time       `json:"date"`
}

// FinanceSummaryResponse dashboard figures for GET /api/finance/summary.
type FinanceSummaryResponse struct {
	Date              string          `json:"date"`
	Month             string          `json:"month"`
	Daily             finance.Summary `json:"daily"`
	Monthly           finance.Summary `json:"monthly"`
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
	DaysElapsed       int             `json:"days_elapsed"`
}
