package dto

import "github.com/shopspring/decimal"

// AddOrUpdateStockRequest body for POST /api/stock/add-or-update.
// Quantity is a delta: positive restocks, negative corrects.
type AddOrUpdateStockRequest struct {
	ProductName       string          `json:"product_name" validate:"required"`
	CompanyName       string          `json:"company_name" validate:"required"`
	Category          string          `json:"category,omitempty"`
	Quantity          int64           `json:"quantity"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	ThresholdQuantity int64           `json:"threshold_quantity,omitempty"`
}

// StockResponse one inventory item.
type StockResponse struct {
	ID                string          `json:"id"`
	ProductName       string          `json:"product_name"`
	CompanyName       string          `json:"company_name"`
	Category          string          `json:"category,omitempty"`
	Quantity          int64           `json:"quantity"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	ThresholdQuantity int64           `json:"threshold_quantity"`
	LowStock          bool            `json:"low_stock"`
	LastUpdatedBy     string          `json:"last_updated_by,omitempty"`
}

// ProductSuggestion one autocomplete entry for the add-stock form.
type ProductSuggestion struct {
	ProductName string `json:"product_name"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category,omitempty"`
}
