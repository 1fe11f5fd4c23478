package billing

import (
	"fmt"
	"os"
	"time"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/finance"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

const historyDays = 10

// HistoryUseCase read and delete operations over generated bills.
type HistoryUseCase struct {
	saleRepo repository.SaleRepository
	log      *logger.Logger
	loc      *time.Location
}

// NewHistoryUseCase builds the history use case.
func NewHistoryUseCase(saleRepo repository.SaleRepository, log *logger.Logger, loc *time.Location) *HistoryUseCase {
	return &HistoryUseCase{saleRepo: saleRepo, log: log, loc: loc}
}

// Grouped returns the last ten days of bills grouped by local calendar day,
// newest group first, labeled Today / Yesterday / "January 02, 2006".
func (uc *HistoryUseCase) Grouped(ownerID string) ([]dto.BillHistoryGroup, error) {
	now := time.Now().In(uc.loc)
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc).AddDate(0, 0, -(historyDays - 1))

	sales, err := uc.saleRepo.ListSince(ownerID, cutoff)
	if err != nil {
		return nil, err
	}

	groups := make([]dto.BillHistoryGroup, 0, historyDays)
	index := make(map[string]int)
	for _, s := range sales {
		local := s.CreatedAt.In(uc.loc)
		day := finance.Today(local)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, dto.BillHistoryGroup{
				Label: dayLabel(local, now),
				Date:  day,
			})
		}
		groups[i].Bills = append(groups[i].Bills, dto.BillHistoryItem{
			SaleID:        s.ID,
			InvoiceNumber: s.InvoiceNumber,
			CustomerName:  s.CustomerName,
			FinalAmount:   s.FinalAmount,
			PaymentMethod: s.PaymentMethod,
			Time:          local.Format("3:04 PM"),
			PDFReady:      pdfReady(s),
		})
	}
	return groups, nil
}

func dayLabel(day, now time.Time) string {
	today := finance.Today(now)
	yesterday := finance.Today(now.AddDate(0, 0, -1))
	switch finance.Today(day) {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	return day.Format("January 02, 2006")
}

func pdfReady(s *entity.Sale) bool {
	if s.PDFFilePath == "" {
		return false
	}
	_, err := os.Stat(s.PDFFilePath)
	return err == nil
}

// Get returns one stored bill with its items.
func (uc *HistoryUseCase) Get(ownerID, saleID string) (*dto.BillResponse, error) {
	sale, err := uc.ownedSale(ownerID, saleID)
	if err != nil {
		return nil, err
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}

	out := &dto.BillResponse{
		SaleID:         sale.ID,
		InvoiceNumber:  sale.InvoiceNumber,
		CustomerName:   sale.CustomerName,
		CustomerPhone:  sale.CustomerPhone,
		Date:           sale.CreatedAt.In(uc.loc).Format("2006-01-02 15:04"),
		PaymentMethod:  sale.PaymentMethod,
		Subtotal:       sale.TotalAmount,
		DiscountAmount: sale.DiscountAmount,
		FinalAmount:    sale.FinalAmount,
		Items:          make([]dto.BillItem, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.BillItem{
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
			CustomFields: it.CustomFields,
		})
	}
	return out, nil
}

// Download returns the PDF path and download filename of a stored bill.
func (uc *HistoryUseCase) Download(ownerID, saleID string) (path, filename string, err error) {
	sale, err := uc.ownedSale(ownerID, saleID)
	if err != nil {
		return "", "", err
	}
	if !pdfReady(sale) {
		return "", "", fmt.Errorf("%w: invoice PDF not available", domain.ErrNotFound)
	}
	return sale.PDFFilePath, fmt.Sprintf("Invoice_%s.pdf", sale.InvoiceNumber), nil
}

// Delete removes a bill and its PDF file. Owner only.
func (uc *HistoryUseCase) Delete(ownerID, role, saleID string) error {
	if role != entity.RoleOwner {
		return domain.ErrForbidden
	}
	sale, err := uc.ownedSale(ownerID, saleID)
	if err != nil {
		return err
	}
	if sale.PDFFilePath != "" {
		if err := os.Remove(sale.PDFFilePath); err != nil && !os.IsNotExist(err) {
			uc.log.Warn().Err(err).Str("path", sale.PDFFilePath).Msg("remove invoice pdf failed")
		}
	}
	return uc.saleRepo.Delete(saleID)
}

func (uc *HistoryUseCase) ownedSale(ownerID, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}
