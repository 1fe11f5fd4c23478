package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

// BillingTxRunner runs fn inside one database transaction with repositories
// bound to that transaction. An error from fn rolls everything back.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// IncomeLogger records the auto-generated income entry after a bill.
// Implemented by the finance use case; a failure must not void the sale.
type IncomeLogger interface {
	LogIncome(ownerID, createdByID, handlerName, customerName, description, paymentMethod, saleID string, amount decimal.Decimal, when time.Time) error
}
