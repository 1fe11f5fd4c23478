package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

// TransactionLogger records auto-generated day-book entries. Implemented by
// the finance use case; failures must never abort the stock update.
type TransactionLogger interface {
	LogExpense(ownerID, createdByID, handlerName, description, category string, amount decimal.Decimal, when time.Time) error
}

// AlertSender delivers low-stock warnings to the owner.
type AlertSender interface {
	SendLowStockAlert(to, productName, companyName string, quantity, threshold int64) error
}

// UseCase inventory operations: add-or-update with auto expense logging and
// low-stock alerts, listing, deletion and suggestions.
type UseCase struct {
	stockRepo repository.StockRepository
	userRepo  repository.UserRepository
	txnLog    TransactionLogger
	alerts    AlertSender
	log       *logger.Logger
	loc       *time.Location
	cooldown  time.Duration
}

// NewUseCase builds the stock use case. loc is the business timezone used to
// stamp auto-logged transactions.
func NewUseCase(
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	txnLog TransactionLogger,
	alerts AlertSender,
	log *logger.Logger,
	loc *time.Location,
	cooldown time.Duration,
) *UseCase {
	return &UseCase{
		stockRepo: stockRepo,
		userRepo:  userRepo,
		txnLog:    txnLog,
		alerts:    alerts,
		log:       log,
		loc:       loc,
		cooldown:  cooldown,
	}
}

// AddOrUpdate merges the request into the owner's inventory. Product
// identity is the (product, company) pair, matched case-insensitively.
// Quantity is a delta and the stored quantity never goes below zero; the
// selling price is overwritten when provided. A positive restock with a cost
// price auto-logs a "Stock Purchase" expense.
func (uc *UseCase) AddOrUpdate(ownerID, actorID string, in dto.AddOrUpdateStockRequest) (*dto.StockResponse, error) {
	if in.ProductName == "" || in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now().In(uc.loc)
	item, err := uc.stockRepo.GetByName(ownerID, in.ProductName, in.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("stock lookup: %w", err)
	}

	if item != nil {
		item.Quantity += in.Quantity
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		item.SellingPrice = in.SellingPrice
		if in.Category != "" {
			item.Category = in.Category
		}
		if in.ThresholdQuantity > 0 {
			item.ThresholdQuantity = in.ThresholdQuantity
		}
		item.LastUpdatedBy = actor.Name
		item.UpdatedAt = now
		if err := uc.stockRepo.Update(item); err != nil {
			return nil, fmt.Errorf("update stock: %w", err)
		}
	} else {
		threshold := in.ThresholdQuantity
		if threshold <= 0 {
			threshold = entity.DefaultThreshold
		}
		qty := in.Quantity
		if qty < 0 {
			qty = 0
		}
		item = &entity.Stock{
			ID:                uuid.New().String(),
			OwnerID:           ownerID,
			ProductName:       in.ProductName,
			CompanyName:       in.CompanyName,
			Category:          in.Category,
			Quantity:          qty,
			SellingPrice:      in.SellingPrice,
			ThresholdQuantity: threshold,
			LastUpdatedBy:     actor.Name,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := uc.stockRepo.Create(item); err != nil {
			return nil, fmt.Errorf("create stock: %w", err)
		}
	}

	uc.maybeAlertLowStock(ownerID, item, now)

	if in.Quantity > 0 && in.CostPrice.IsPositive() {
		total := in.CostPrice.Mul(decimal.NewFromInt(in.Quantity))
		desc := fmt.Sprintf("Stock Purchase: %s x %d", item.ProductName, in.Quantity)
		if err := uc.txnLog.LogExpense(ownerID, actorID, actor.Name, desc, "Stock", total, now); err != nil {
			uc.log.Warn().Err(err).Str("stock_id", item.ID).Msg("auto-log stock purchase failed")
		}
	}

	return toStockResponse(item), nil
}

// maybeAlertLowStock mails the owner when the item is at or below threshold
// and the per-item cooldown has passed.
func (uc *UseCase) maybeAlertLowStock(ownerID string, item *entity.Stock, now time.Time) {
	if !item.LowStock() {
		return
	}
	if item.LastAlertSent != nil && now.Sub(*item.LastAlertSent) < uc.cooldown {
		return
	}
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil || owner == nil || owner.Email == "" {
		return
	}
	if err := uc.alerts.SendLowStockAlert(owner.Email, item.ProductName, item.CompanyName, item.Quantity, item.ThresholdQuantity); err != nil {
		uc.log.Warn().Err(err).Str("stock_id", item.ID).Msg("low stock alert failed")
		return
	}
	if err := uc.stockRepo.MarkAlertSent(item.ID); err != nil {
		uc.log.Warn().Err(err).Str("stock_id", item.ID).Msg("mark alert sent failed")
	}
}

// List returns the owner's inventory, most recently updated first.
func (uc *UseCase) List(ownerID string) ([]*dto.StockResponse, error) {
	items, err := uc.stockRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toStockResponse(s))
	}
	return out, nil
}

// Delete removes an inventory item. Owner only; an item referenced by sales
// history returns ErrConflict.
func (uc *UseCase) Delete(ownerID, role, id string) error {
	if role != entity.RoleOwner {
		return domain.ErrForbidden
	}
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return uc.stockRepo.Delete(id)
}

// Companies merges seed companies with the owner's own, sorted.
func (uc *UseCase) Companies(ownerID, businessType string) ([]string, error) {
	own, err := uc.stockRepo.DistinctCompanies(ownerID)
	if err != nil {
		return nil, err
	}
	return mergeCompanies(seedForBusinessType(businessType), own), nil
}

// Suggestions merges seed products with the owner's stock, optionally
// filtered by company, deduped by product name.
func (uc *UseCase) Suggestions(ownerID, businessType, companyFilter string) ([]dto.ProductSuggestion, error) {
	own, err := uc.stockRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return mergeSuggestions(seedForBusinessType(businessType), own, companyFilter), nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:                s.ID,
		ProductName:       s.ProductName,
		CompanyName:       s.CompanyName,
		Category:          s.Category,
		Quantity:          s.Quantity,
		SellingPrice:      s.SellingPrice,
		ThresholdQuantity: s.ThresholdQuantity,
		LowStock:          s.LowStock(),
		LastUpdatedBy:     s.LastUpdatedBy,
	}
}
