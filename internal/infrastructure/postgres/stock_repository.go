package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, owner_id, product_name, company_name, category, quantity,
		selling_price, threshold_quantity, last_alert_sent, last_updated_by, created_at, updated_at`

// StockRepo implements StockRepository on PostgreSQL (usable with pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass a pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persists a new inventory item.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, owner_id, product_name, company_name, category, quantity,
			selling_price, threshold_quantity, last_alert_sent, last_updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.OwnerID, stock.ProductName, stock.CompanyName, stock.Category, stock.Quantity,
		stock.SellingPrice, stock.ThresholdQuantity, stock.LastAlertSent, stock.LastUpdatedBy,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID returns an inventory item by ID, nil when absent.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock by id")
}

// GetByName matches (product name, company name) case-insensitively within
// an owner's inventory.
func (r *StockRepo) GetByName(ownerID, productName, companyName string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE owner_id = $1 AND lower(product_name) = lower($2) AND lower(company_name) = lower($3)
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID, productName, companyName), "get stock by name")
}

// Update persists changes to an inventory item.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET product_name = $2, company_name = $3, category = $4, quantity = $5,
			selling_price = $6, threshold_quantity = $7, last_updated_by = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductName, stock.CompanyName, stock.Category, stock.Quantity,
		stock.SellingPrice, stock.ThresholdQuantity, stock.LastUpdatedBy, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's items, most recently updated first.
func (r *StockRepo) ListByOwner(ownerID string) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE owner_id = $1 ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DistinctCompanies returns company names present in the owner's inventory, sorted.
func (r *StockRepo) DistinctCompanies(ownerID string) ([]string, error) {
	query := `
		SELECT DISTINCT company_name FROM stocks
		WHERE owner_id = $1 AND company_name <> ''
		ORDER BY company_name`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes an inventory item. Items referenced by past sales stay.
func (r *StockRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate locks the row (SELECT FOR UPDATE) for stock deduction.
func (r *StockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock for update")
}

// MarkAlertSent stamps last_alert_sent for the low-stock cooldown.
func (r *StockRepo) MarkAlertSent(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stocks SET last_alert_sent = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert sent: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.ProductName, &s.CompanyName, &s.Category, &s.Quantity,
		&s.SellingPrice, &s.ThresholdQuantity, &s.LastAlertSent, &s.LastUpdatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
