package dto

import "github.com/shopspring/decimal"

// GenerateBillRequest body for POST /api/billing/generate.
type GenerateBillRequest struct {
	CustomerName   string            `json:"customer_name"`
	CustomerPhone  string            `json:"customer_phone"`
	CustomerEmail  string            `json:"customer_email,omitempty"`
	Items          []BillItemRequest `json:"items"`
	PaymentMethod  string            `json:"payment_method,omitempty"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	SendEmail      bool              `json:"send_email"`
}

// BillItemRequest one cart line in a generation request.
type BillItemRequest struct {
	ProductID    string            `json:"product_id"`
	ProductName  string            `json:"product_name"`
	Quantity     int64             `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// GenerateBillResponse result of a successful generation.
type GenerateBillResponse struct {
	SaleID         string          `json:"sale_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	AmountInWords  string          `json:"amount_in_words"`
	PDFBase64      string          `json:"pdf_base64,omitempty"`
	EmailSent      bool            `json:"email_sent"`
}

// BillResponse a stored bill with its items, for GET /api/billing/:id.
type BillResponse struct {
	SaleID         string          `json:"sale_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	Date           string          `json:"date"`
	PaymentMethod  string          `json:"payment_method"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	Items          []BillItem      `json:"items"`
}

// BillItem one stored sale line.
type BillItem struct {
	ProductName  string            `json:"product_name"`
	Quantity     int64             `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// BillHistoryGroup bills of one calendar day, labeled Today / Yesterday /
// "January 02, 2006".
type BillHistoryGroup struct {
	Label string            `json:"label"`
	Date  string            `json:"date"`
	Bills []BillHistoryItem `json:"bills"`
}

// BillHistoryItem one row in the grouped history listing.
type BillHistoryItem struct {
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	PaymentMethod string          `json:"payment_method"`
	Time          string          `json:"time"`
	PDFReady      bool            `json:"pdf_ready"`
}
