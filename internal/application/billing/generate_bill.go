// Package billing contains the bill generation and history use cases.
package billing

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/cart"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/numword"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

// GenerateBillUseCase turns a validated cart into a persisted sale: stock is
// deducted transactionally, the sale is auto-logged as income, the PDF is
// rendered and optionally mailed.
type GenerateBillUseCase struct {
	txRunner     BillingTxRunner
	stockRepo    repository.StockRepository
	saleRepo     repository.SaleRepository
	userRepo     repository.UserRepository
	templateRepo repository.TemplateRepository
	incomeLog    IncomeLogger
	pdfGen       ports.InvoicePDFGenerator
	mailer       ports.Mailer
	log          *logger.Logger
	loc          *time.Location
	invoiceDir   string
}

// NewGenerateBillUseCase wires the bill generation use case.
func NewGenerateBillUseCase(
	txRunner BillingTxRunner,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	templateRepo repository.TemplateRepository,
	incomeLog IncomeLogger,
	pdfGen ports.InvoicePDFGenerator,
	mailer ports.Mailer,
	log *logger.Logger,
	loc *time.Location,
	invoiceDir string,
) *GenerateBillUseCase {
	return &GenerateBillUseCase{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
		userRepo:     userRepo,
		templateRepo: templateRepo,
		incomeLog:    incomeLog,
		pdfGen:       pdfGen,
		mailer:       mailer,
		log:          log,
		loc:          loc,
		invoiceDir:   invoiceDir,
	}
}

// Execute generates a bill. Order of work:
//
//  1. Build the billing session: every line checked against current stock.
//  2. Validate the customer (name/phone, phone format, email when sending).
//  3. Allocate the next invoice number for the owner.
//  4. One transaction: insert sale + items, deduct stock with row locks.
//  5. Auto-log the income entry (non-fatal), render and store the PDF
//     (non-fatal), send the email when requested (non-fatal).
func (uc *GenerateBillUseCase) Execute(ctx context.Context, ownerID, actorID string, in dto.GenerateBillRequest) (*dto.GenerateBillResponse, error) {
	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil || actor == nil {
		return nil, domain.ErrUserNotFound
	}
	owner := actor
	if actor.ID != ownerID {
		if owner, err = uc.userRepo.GetByID(ownerID); err != nil || owner == nil {
			return nil, domain.ErrUserNotFound
		}
	}

	session, err := uc.buildSession(in)
	if err != nil {
		return nil, err
	}
	if err := session.BeginSubmit(in.SendEmail); err != nil {
		return nil, err
	}

	number, err := uc.nextInvoiceNumber(ownerID)
	if err != nil {
		_ = session.FailSubmit()
		return nil, err
	}

	now := time.Now().In(uc.loc)
	bag := session.Cart()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		InvoiceNumber:  number,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		CustomerEmail:  in.CustomerEmail,
		TotalAmount:    bag.Subtotal(),
		DiscountAmount: bag.Discount(),
		FinalAmount:    bag.Total(),
		PaymentMethod:  session.PaymentMethod(),
		Status:         entity.SaleCompleted,
		CreatedByID:    actorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var lowStock []*entity.Stock
	err = uc.txRunner.RunBilling(ctx, func(stockRepo repository.StockRepository, saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		for _, line := range bag.Lines() {
			item, err := stockRepo.GetForUpdate(line.StockID)
			if err != nil {
				return fmt.Errorf("lock stock %s: %w", line.StockID, err)
			}
			if item == nil {
				return fmt.Errorf("%w: product %s", domain.ErrNotFound, line.ProductName)
			}
			if item.Quantity < line.Quantity {
				return fmt.Errorf("%w for %s: only %d available", domain.ErrInsufficientStock, item.ProductName, item.Quantity)
			}
			item.Quantity -= line.Quantity
			item.UpdatedAt = now
			if err := stockRepo.Update(item); err != nil {
				return fmt.Errorf("deduct stock %s: %w", item.ID, err)
			}
			if item.LowStock() {
				lowStock = append(lowStock, item)
			}
			if err := saleRepo.CreateItem(&entity.SaleItem{
				ID:           uuid.New().String(),
				SaleID:       sale.ID,
				StockID:      item.ID,
				ProductName:  line.ProductName,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				TotalPrice:   line.Total(),
				CustomFields: line.CustomFields,
			}); err != nil {
				return fmt.Errorf("insert sale item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		_ = session.FailSubmit()
		return nil, err
	}
	_ = session.CompleteSubmit()

	// Everything below is best effort: the sale is already committed.
	uc.logIncome(actor, sale, now)
	uc.alertLowStock(owner, lowStock)

	pdfBytes := uc.renderPDF(owner, sale, now)

	emailSent := false
	if in.SendEmail && in.CustomerEmail != "" && len(pdfBytes) > 0 {
		if err := uc.mailer.SendInvoice(in.CustomerEmail, in.CustomerName, owner.BusinessName, number, pdfBytes); err != nil {
			uc.log.Warn().Err(err).Str("invoice", number).Msg("invoice email failed")
		} else {
			emailSent = true
		}
	}

	resp := &dto.GenerateBillResponse{
		SaleID:         sale.ID,
		InvoiceNumber:  number,
		Subtotal:       sale.TotalAmount,
		DiscountAmount: sale.DiscountAmount,
		FinalAmount:    sale.FinalAmount,
		AmountInWords:  numword.InWords(sale.FinalAmount),
		EmailSent:      emailSent,
	}
	if len(pdfBytes) > 0 {
		resp.PDFBase64 = base64.StdEncoding.EncodeToString(pdfBytes)
	}
	return resp, nil
}

// buildSession replays the request through the domain session so every stock
// and customer rule runs before anything is persisted.
func (uc *GenerateBillUseCase) buildSession(in dto.GenerateBillRequest) (*cart.Session, error) {
	session := cart.NewSession()
	for _, item := range in.Items {
		stk, err := uc.stockRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("stock lookup: %w", err)
		}
		if stk == nil {
			return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, item.ProductName)
		}
		line := cart.Line{
			StockID:      stk.ID,
			ProductName:  stk.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			CustomFields: item.CustomFields,
		}
		if err := session.Add(line, stk.Quantity); err != nil {
			return nil, err
		}
	}
	if err := session.SetCustomer(cart.Customer{Name: in.CustomerName, Phone: in.CustomerPhone, Email: in.CustomerEmail}); err != nil {
		return nil, err
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	if err := session.SetPaymentMethod(method); err != nil {
		return nil, err
	}
	session.Cart().SetDiscount(in.DiscountAmount)
	return session, nil
}

// nextInvoiceNumber scans the owner's last number with the INV prefix and
// increments the 5-digit sequence.
func (uc *GenerateBillUseCase) nextInvoiceNumber(ownerID string) (string, error) {
	prefix := invoicePrefix(ownerID)
	last, err := uc.saleRepo.LastInvoiceNumber(ownerID, prefix)
	if err != nil {
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	seq := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%05d", prefix, seq), nil
}

// invoicePrefix derives the per-owner invoice prefix, e.g. "INV-1a2b3c4d-".
func invoicePrefix(ownerID string) string {
	short := strings.ReplaceAll(ownerID, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("INV-%s-", short)
}

func (uc *GenerateBillUseCase) logIncome(actor *entity.User, sale *entity.Sale, now time.Time) {
	desc := fmt.Sprintf("Sale: Invoice #%s", sale.InvoiceNumber)
	err := uc.incomeLog.LogIncome(
		sale.OwnerID, actor.ID, actor.Name, sale.CustomerName,
		desc, sale.PaymentMethod, sale.ID, sale.FinalAmount, now,
	)
	if err != nil {
		uc.log.Warn().Err(err).Str("invoice", sale.InvoiceNumber).Msg("auto-log sale income failed")
	}
}

func (uc *GenerateBillUseCase) alertLowStock(owner *entity.User, items []*entity.Stock) {
	if owner.Email == "" {
		return
	}
	for _, item := range items {
		if err := uc.mailer.SendLowStockAlert(owner.Email, item.ProductName, item.CompanyName, item.Quantity, item.ThresholdQuantity); err != nil {
			uc.log.Warn().Err(err).Str("stock_id", item.ID).Msg("low stock alert failed")
			continue
		}
		if err := uc.stockRepo.MarkAlertSent(item.ID); err != nil {
			uc.log.Warn().Err(err).Str("stock_id", item.ID).Msg("mark alert sent failed")
		}
	}
}

// renderPDF builds the invoice PDF with the owner's template labels, writes
// it under the invoice directory and records the path. Returns nil on any
// failure; the bill itself is already committed.
func (uc *GenerateBillUseCase) renderPDF(owner *entity.User, sale *entity.Sale, now time.Time) []byte {
	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice", sale.InvoiceNumber).Msg("load sale items for pdf failed")
		return nil
	}
	deref := make([]entity.SaleItem, 0, len(items))
	for _, it := range items {
		deref = append(deref, *it)
	}

	pdfBytes, err := uc.pdfGen.Generate(ports.BillForPDF{
		BusinessName:    owner.BusinessName,
		BusinessAddress: owner.BusinessAddress,
		BusinessPhone:   owner.BusinessPhone,
		InvoiceNumber:   sale.InvoiceNumber,
		Date:            now.Format("02 Jan 2006"),
		CustomerName:    sale.CustomerName,
		CustomerPhone:   sale.CustomerPhone,
		PaymentMethod:   sale.PaymentMethod,
		Items:           deref,
		Subtotal:        sale.TotalAmount,
		Discount:        sale.DiscountAmount,
		GrandTotal:      sale.FinalAmount,
		AmountInWords:   numword.InWords(sale.FinalAmount),
		Labels:          uc.templateLabels(sale.OwnerID),
	})
	if err != nil {
		uc.log.Error().Err(err).Str("invoice", sale.InvoiceNumber).Msg("render invoice pdf failed")
		return nil
	}

	if err := os.MkdirAll(uc.invoiceDir, 0o755); err != nil {
		uc.log.Error().Err(err).Msg("create invoice directory failed")
		return pdfBytes
	}
	path := filepath.Join(uc.invoiceDir, fmt.Sprintf("Invoice_%s.pdf", sale.InvoiceNumber))
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		uc.log.Error().Err(err).Str("path", path).Msg("write invoice pdf failed")
		return pdfBytes
	}
	if err := uc.saleRepo.UpdatePDFPath(sale.ID, path); err != nil {
		uc.log.Warn().Err(err).Str("path", path).Msg("record pdf path failed")
	}
	return pdfBytes
}

// templateLabels loads the owner's template mapping and derives the item
// table labels. A malformed mapping is logged and ignored.
func (uc *GenerateBillUseCase) templateLabels(ownerID string) template.Labels {
	tpl, err := uc.templateRepo.GetByOwner(ownerID)
	if err != nil || tpl == nil {
		return template.DefaultLabels
	}
	m, err := template.Parse(tpl.Mapping)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedMapping) {
			uc.log.Warn().Err(err).Str("owner_id", ownerID).Msg("template mapping unreadable, using default labels")
		}
		return template.DefaultLabels
	}
	if m == nil || m.ItemTable == nil {
		return template.DefaultLabels
	}
	return template.ClassifyColumns(m.ItemTable.Columns).DisplayLabels()
}
