package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentUPI          = "upi"
	PaymentBankTransfer = "bank_transfer"
	PaymentCredit       = "credit"
)

// Sale statuses.
const (
	SaleCompleted = "COMPLETED"
	SaleCancelled = "CANCELLED"
)

// Sale is the header of a generated bill.
type Sale struct {
	ID             string
	OwnerID        string
	InvoiceNumber  string // INV-{owner prefix}-{seq}, unique per owner
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	TotalAmount    decimal.Decimal // subtotal before discount
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal // max(0, subtotal - discount)
	PaymentMethod  string
	Status         string
	CreatedByID    string
	PDFFilePath    string // empty until the PDF has been written to disk
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem is one line of a sale. TotalPrice is always Quantity x UnitPrice.
type SaleItem struct {
	ID           string
	SaleID       string
	StockID      string
	ProductName  string
	Quantity     int64
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	CustomFields map[string]string // extra per-line values from the invoice template
}
