package repository

import (
	"time"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// SaleRepository is the persistence port for sales and their items.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	// LastInvoiceNumber returns the highest invoice number with the given
	// prefix, or "" when none exists yet.
	LastInvoiceNumber(ownerID, prefix string) (string, error)
	// ListSince returns the owner's sales created at or after the cutoff,
	// newest first.
	ListSince(ownerID string, cutoff time.Time) ([]*entity.Sale, error)
	// UpdatePDFPath records where the rendered invoice PDF was written.
	UpdatePDFPath(id, path string) error
	Delete(id string) error
}
