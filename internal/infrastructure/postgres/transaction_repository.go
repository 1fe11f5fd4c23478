package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implements AccountRepository on PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository builds the persistence adapter for accounts.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persists a new account.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, owner_id, name, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.OwnerID, account.Name, account.Type, account.Balance,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID returns an account by ID, nil when absent.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `SELECT id, owner_id, name, type, balance, created_at, updated_at FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &a, nil
}

// GetDefault returns the owner's cash account, nil when not created yet.
func (r *AccountRepo) GetDefault(ownerID string) (*entity.Account, error) {
	query := `
		SELECT id, owner_id, name, type, balance, created_at, updated_at
		FROM accounts WHERE owner_id = $1 AND type = $2
		ORDER BY created_at LIMIT 1`
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, ownerID, entity.AccountCash).Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default account: %w", err)
	}
	return &a, nil
}

// AdjustBalance applies a signed delta to the account balance atomically.
func (r *AccountRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE accounts SET balance = balance + $2, updated_at = now() WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const txnColumns = `id, owner_id, description, amount, type, customer_name, handler_name,
		payment_method, category, notes, sale_id, account_id, created_by_id, date, created_at`

// TransactionRepo implements TransactionRepository on PostgreSQL.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository builds the persistence adapter for transactions.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create persists a day-book entry.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, owner_id, description, amount, type, customer_name, handler_name,
			payment_method, category, notes, sale_id, account_id, created_by_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(context.Background(), query,
		txn.ID, txn.OwnerID, txn.Description, txn.Amount, txn.Type, txn.CustomerName, txn.HandlerName,
		txn.PaymentMethod, txn.Category, txn.Notes, nullIfEmpty(txn.SaleID), txn.AccountID,
		txn.CreatedByID, txn.Date, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID returns a transaction by ID, nil when absent.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// ListByDay returns an owner's transactions for one calendar day, newest
// first. Day boundaries come from the caller's timezone via the day argument.
func (r *TransactionRepo) ListByDay(ownerID string, day time.Time, limit int) ([]*entity.Transaction, error) {
	start := day
	end := day.AddDate(0, 0, 1)
	return r.listRange(ownerID, start, end, limit, "list transactions by day")
}

// ListByMonth returns an owner's transactions for one calendar month, newest first.
func (r *TransactionRepo) ListByMonth(ownerID string, year int, month time.Month, limit int) ([]*entity.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return r.listRange(ownerID, start, end, limit, "list transactions by month")
}

func (r *TransactionRepo) listRange(ownerID string, start, end time.Time, limit int, op string) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + txnColumns + ` FROM transactions
		WHERE owner_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, created_at DESC LIMIT $4`
	rows, err := r.pool.Query(context.Background(), query, ownerID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete removes a transaction by ID.
func (r *TransactionRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var saleID *string
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Description, &t.Amount, &t.Type, &t.CustomerName, &t.HandlerName,
		&t.PaymentMethod, &t.Category, &t.Notes, &saleID, &t.AccountID, &t.CreatedByID,
		&t.Date, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.SaleID = orEmpty(saleID)
	return &t, nil
}
