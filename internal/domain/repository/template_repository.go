package repository

import "github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"

// TemplateRepository is the persistence port for invoice templates
// (one per owner, upserted on save).
type TemplateRepository interface {
	GetByOwner(ownerID string) (*entity.InvoiceTemplate, error)
	Save(tpl *entity.InvoiceTemplate) error
}
