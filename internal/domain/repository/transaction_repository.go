package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// AccountRepository is the persistence port for money accounts.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	// GetDefault returns the owner's default Cash account, ErrNotFound when
	// it has not been created yet.
	GetDefault(ownerID string) (*entity.Account, error)
	// AdjustBalance applies a signed delta to the account balance.
	AdjustBalance(id string, delta decimal.Decimal) error
}

// TransactionRepository is the persistence port for day-book entries.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// ListByDay returns an owner's transactions for one calendar day
	// (local dates), newest first, capped at limit.
	ListByDay(ownerID string, day time.Time, limit int) ([]*entity.Transaction, error)
	// ListByMonth returns an owner's transactions for one calendar month,
	// newest first, capped at limit.
	ListByMonth(ownerID string, year int, month time.Month, limit int) ([]*entity.Transaction, error)
	Delete(id string) error
}
