package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultThreshold is the low-stock alert level used when none is given.
const DefaultThreshold = 5

// Stock is one product line in an owner's inventory. Product identity is
// the (product name, company name) pair, matched case-insensitively.
type Stock struct {
	ID                string
	OwnerID           string
	ProductName       string
	CompanyName       string
	Category          string
	Quantity          int64
	SellingPrice      decimal.Decimal
	ThresholdQuantity int64
	LastAlertSent     *time.Time // last low-stock alert, for the cooldown
	LastUpdatedBy     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LowStock reports whether the item is at or below its alert threshold.
func (s *Stock) LowStock() bool {
	return s.Quantity <= s.ThresholdQuantity
}
