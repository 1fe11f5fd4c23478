package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implements TemplateRepository on PostgreSQL. One row per owner.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository builds the persistence adapter for invoice templates.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// GetByOwner returns the owner's template, nil when none is saved yet.
func (r *TemplateRepo) GetByOwner(ownerID string) (*entity.InvoiceTemplate, error) {
	query := `
		SELECT id, owner_id, html, mapping, created_at, updated_at
		FROM invoice_templates WHERE owner_id = $1`
	var t entity.InvoiceTemplate
	var mapping *string
	err := r.pool.QueryRow(context.Background(), query, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.HTML, &mapping, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template by owner: %w", err)
	}
	t.Mapping = orEmpty(mapping)
	return &t, nil
}

// Save upserts the owner's template.
func (r *TemplateRepo) Save(tpl *entity.InvoiceTemplate) error {
	query := `
		INSERT INTO invoice_templates (id, owner_id, html, mapping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id)
		DO UPDATE SET html = EXCLUDED.html, mapping = EXCLUDED.mapping, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		tpl.ID, tpl.OwnerID, tpl.HTML, nullIfEmpty(tpl.Mapping), tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
