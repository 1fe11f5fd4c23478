package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, owner_id, invoice_number, customer_name, customer_phone, customer_email,
		total_amount, discount_amount, final_amount, payment_method, status, created_by_id,
		pdf_file_path, created_at, updated_at`

// SaleRepo implements SaleRepository on PostgreSQL (usable with pool or tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the sale adapter. Pass a pool or tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persists a sale header.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, owner_id, invoice_number, customer_name, customer_phone, customer_email,
			total_amount, discount_amount, final_amount, payment_method, status, created_by_id,
			pdf_file_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.OwnerID, sale.InvoiceNumber, sale.CustomerName, sale.CustomerPhone,
		nullIfEmpty(sale.CustomerEmail), sale.TotalAmount, sale.DiscountAmount, sale.FinalAmount,
		sale.PaymentMethod, sale.Status, sale.CreatedByID, nullIfEmpty(sale.PDFFilePath),
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persists one sale line. CustomFields go in as JSONB.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	custom, err := json.Marshal(item.CustomFields)
	if err != nil {
		return fmt.Errorf("marshal custom fields: %w", err)
	}
	query := `
		INSERT INTO sale_items (id, sale_id, stock_id, product_name, quantity, unit_price, total_price, custom_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.StockID, item.ProductName, item.Quantity,
		item.UnitPrice, item.TotalPrice, custom,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID returns a sale by ID, nil when absent.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return s, nil
}

// GetItemsBySaleID returns the lines of a sale in insertion order.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, stock_id, product_name, quantity, unit_price, total_price, custom_fields
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		var custom []byte
		if err := rows.Scan(&it.ID, &it.SaleID, &it.StockID, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &custom); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if len(custom) > 0 {
			if err := json.Unmarshal(custom, &it.CustomFields); err != nil {
				return nil, fmt.Errorf("unmarshal custom fields: %w", err)
			}
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// LastInvoiceNumber returns the highest invoice number with the given prefix,
// or "" when the owner has no bills yet. Ordering on the zero-padded sequence
// suffix keeps numbers comparable as text.
func (r *SaleRepo) LastInvoiceNumber(ownerID, prefix string) (string, error) {
	query := `
		SELECT invoice_number FROM sales
		WHERE owner_id = $1 AND invoice_number LIKE $2 || '%'
		ORDER BY invoice_number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, ownerID, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}

// ListSince returns the owner's sales created at or after the cutoff, newest first.
func (r *SaleRepo) ListSince(ownerID string, cutoff time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE owner_id = $1 AND created_at >= $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdatePDFPath records where the rendered invoice PDF was written.
func (r *SaleRepo) UpdatePDFPath(id, path string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET pdf_file_path = $2, updated_at = now() WHERE id = $1`, id, nullIfEmpty(path))
	if err != nil {
		return fmt.Errorf("update sale pdf path: %w", err)
	}
	return nil
}

// Delete removes a sale; sale_items go with it via ON DELETE CASCADE.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var email, pdfPath *string
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.InvoiceNumber, &s.CustomerName, &s.CustomerPhone, &email,
		&s.TotalAmount, &s.DiscountAmount, &s.FinalAmount, &s.PaymentMethod, &s.Status,
		&s.CreatedByID, &pdfPath, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.CustomerEmail = orEmpty(email)
	s.PDFFilePath = orEmpty(pdfPath)
	return &s, nil
}
