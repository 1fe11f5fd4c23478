package ports

// Mailer is the outbound mail port. Implementations must be safe to call
// with mail disabled: sends become no-ops, never errors that abort billing.
type Mailer interface {
	// SendInvoice mails the generated bill PDF to the customer.
	SendInvoice(to, customerName, businessName, invoiceNumber string, pdf []byte) error
	// SendLowStockAlert warns the owner that an item fell to or below its
	// threshold.
	SendLowStockAlert(to, productName, companyName string, quantity, threshold int64) error
}
