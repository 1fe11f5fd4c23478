package ports

import (
	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

// BillForPDF is everything the generator needs to render one invoice.
type BillForPDF struct {
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	InvoiceNumber   string
	Date            string
	CustomerName    string
	CustomerPhone   string
	PaymentMethod   string
	Items           []entity.SaleItem
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	GrandTotal      decimal.Decimal
	AmountInWords   string
	// Labels come from the owner's template mapping; zero value falls back
	// to the defaults.
	Labels template.Labels
}

// InvoicePDFGenerator renders a bill into PDF bytes.
type InvoicePDFGenerator interface {
	Generate(bill BillForPDF) ([]byte, error)
}
