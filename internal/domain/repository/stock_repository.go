package repository

import "github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"

// StockRepository is the persistence port for inventory items. It is used
// both standalone and inside transactions for bill generation.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	// GetByName matches (product name, company name) case-insensitively
	// within an owner's inventory.
	GetByName(ownerID, productName, companyName string) (*entity.Stock, error)
	Update(stock *entity.Stock) error
	// ListByOwner returns the owner's items, most recently updated first.
	ListByOwner(ownerID string) ([]*entity.Stock, error)
	// DistinctCompanies returns company names already present in the owner's
	// inventory, sorted.
	DistinctCompanies(ownerID string) ([]string, error)
	Delete(id string) error
	// GetForUpdate locks the row (SELECT FOR UPDATE) for stock deduction.
	GetForUpdate(id string) (*entity.Stock, error)
	// MarkAlertSent stamps last_alert_sent for the low-stock cooldown.
	MarkAlertSent(id string) error
}
