// Package finance contains the day-book use cases: transaction CRUD with
// account balance upkeep and the daily/monthly summary.
package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	domfinance "github.com/aryaman2519/My-Bussiness-Manager/internal/domain/finance"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
)

const defaultListLimit = 1000

// UseCase day-book operations for one business.
type UseCase struct {
	txnRepo     repository.TransactionRepository
	accountRepo repository.AccountRepository
	loc         *time.Location
	now         func() time.Time
}

// NewUseCase builds the finance use case. loc is the business timezone that
// decides what "today" means.
func NewUseCase(txnRepo repository.TransactionRepository, accountRepo repository.AccountRepository, loc *time.Location) *UseCase {
	return &UseCase{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// List returns the owner's transactions for one day ("2006-01-02") or one
// month ("2006-01"). With neither filter it lists the current day.
func (uc *UseCase) List(ownerID, dateStr, monthStr string, limit int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	var (
		txns []*entity.Transaction
		err  error
	)
	switch {
	case dateStr != "":
		day, perr := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
		if perr != nil {
			return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, dateStr)
		}
		txns, err = uc.txnRepo.ListByDay(ownerID, day, limit)
	case monthStr != "":
		month, perr := time.ParseInLocation("2006-01", monthStr, uc.loc)
		if perr != nil {
			return nil, fmt.Errorf("%w: month %q", domain.ErrInvalidInput, monthStr)
		}
		txns, err = uc.txnRepo.ListByMonth(ownerID, month.Year(), month.Month(), limit)
	default:
		today := uc.now().In(uc.loc)
		txns, err = uc.txnRepo.ListByDay(ownerID, today, limit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// Create records a manual day-book entry and applies it to the default Cash
// account: income raises the balance, expense lowers it.
func (uc *UseCase) Create(ownerID, createdByID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	if in.Type != entity.TxnIncome && in.Type != entity.TxnExpense {
		return nil, fmt.Errorf("%w: type %q", domain.ErrInvalidInput, in.Type)
	}

	date := in.Date
	if date.IsZero() {
		date = uc.now().In(uc.loc)
	}
	txn := &entity.Transaction{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Description:   in.Description,
		Amount:        in.Amount,
		Type:          in.Type,
		CustomerName:  in.CustomerName,
		HandlerName:   in.HandlerName,
		PaymentMethod: in.PaymentMethod,
		Category:      in.Category,
		Notes:         in.Notes,
		CreatedByID:   createdByID,
		Date:          date,
		CreatedAt:     uc.now().In(uc.loc),
	}
	if err := uc.record(txn); err != nil {
		return nil, err
	}
	return toTransactionResponse(txn), nil
}

// Delete reverses the entry's balance impact and removes it.
func (uc *UseCase) Delete(ownerID, id string) error {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	if txn.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	if txn.AccountID != "" {
		delta := txn.Amount.Neg() // undo income
		if txn.Type == entity.TxnExpense {
			delta = txn.Amount // undo expense
		}
		if err := uc.accountRepo.AdjustBalance(txn.AccountID, delta); err != nil {
			return fmt.Errorf("reverse balance: %w", err)
		}
	}
	return uc.txnRepo.Delete(id)
}

// Summary computes the daily and monthly figures plus the average daily
// sales for the requested month (defaults to the current one). The two
// listings run in parallel.
func (uc *UseCase) Summary(ownerID, monthStr string) (*dto.FinanceSummaryResponse, error) {
	now := uc.now().In(uc.loc)
	if monthStr == "" {
		monthStr = domfinance.Month(now)
	}
	month, err := time.ParseInLocation("2006-01", monthStr, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: month %q", domain.ErrInvalidInput, monthStr)
	}

	type listResult struct {
		txns []*entity.Transaction
		err  error
	}
	dayCh := make(chan listResult, 1)
	monthCh := make(chan listResult, 1)

	go func() {
		txns, err := uc.txnRepo.ListByDay(ownerID, now, defaultListLimit)
		dayCh <- listResult{txns, err}
	}()
	go func() {
		txns, err := uc.txnRepo.ListByMonth(ownerID, month.Year(), month.Month(), defaultListLimit)
		monthCh <- listResult{txns, err}
	}()

	day := <-dayCh
	mon := <-monthCh
	if day.err != nil {
		return nil, fmt.Errorf("summary: today's transactions: %w", day.err)
	}
	if mon.err != nil {
		return nil, fmt.Errorf("summary: month's transactions: %w", mon.err)
	}

	daily := domfinance.Summarize(deref(day.txns))
	monthly := domfinance.Summarize(deref(mon.txns))
	days, _ := domfinance.DaysElapsedInMonth(monthStr, now)

	return &dto.FinanceSummaryResponse{
		Date:              domfinance.Today(now),
		Month:             monthStr,
		Daily:             daily,
		Monthly:           monthly,
		AverageDailySales: domfinance.AverageDailySales(monthly.Income, monthStr, now).Round(2),
		DaysElapsed:       days,
	}, nil
}

// LogIncome records an auto-generated income entry (bill generation).
func (uc *UseCase) LogIncome(ownerID, createdByID, handlerName, customerName, description, paymentMethod, saleID string, amount decimal.Decimal, when time.Time) error {
	return uc.record(&entity.Transaction{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Description:   description,
		Amount:        amount,
		Type:          entity.TxnIncome,
		CustomerName:  customerName,
		HandlerName:   handlerName,
		PaymentMethod: paymentMethod,
		Category:      "Sales",
		SaleID:        saleID,
		CreatedByID:   createdByID,
		Date:          when,
		CreatedAt:     when,
	})
}

// LogExpense records an auto-generated expense entry (stock purchase).
func (uc *UseCase) LogExpense(ownerID, createdByID, handlerName, description, category string, amount decimal.Decimal, when time.Time) error {
	return uc.record(&entity.Transaction{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Description:   description,
		Amount:        amount,
		Type:          entity.TxnExpense,
		HandlerName:   handlerName,
		PaymentMethod: entity.PaymentCash,
		Category:      category,
		CreatedByID:   createdByID,
		Date:          when,
		CreatedAt:     when,
	})
}

// record persists the entry against the owner's default Cash account,
// creating the account on first use.
func (uc *UseCase) record(txn *entity.Transaction) error {
	account, err := uc.ensureDefaultAccount(txn.OwnerID)
	if err != nil {
		return err
	}
	txn.AccountID = account.ID
	if err := uc.txnRepo.Create(txn); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	delta := txn.Amount
	if txn.Type == entity.TxnExpense {
		delta = txn.Amount.Neg()
	}
	if err := uc.accountRepo.AdjustBalance(account.ID, delta); err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	return nil
}

func (uc *UseCase) ensureDefaultAccount(ownerID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetDefault(ownerID)
	if err == nil && account != nil {
		return account, nil
	}
	now := uc.now().In(uc.loc)
	account = &entity.Account{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      "Cash",
		Type:      entity.AccountCash,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("create default account: %w", err)
	}
	return account, nil
}

func deref(in []*entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(in))
	for _, t := range in {
		out = append(out, *t)
	}
	return out
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            t.ID,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          t.Type,
		CustomerName:  t.CustomerName,
		HandlerName:   t.HandlerName,
		PaymentMethod: t.PaymentMethod,
		Category:      t.Category,
		Notes:         t.Notes,
		Date:          t.Date,
	}
}
