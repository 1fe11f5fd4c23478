package billing_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/billing"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

const (
	ownerID = "3f2b8c9d-1111-2222-3333-444455556666"
	staffID = "aaaa0000-1111-2222-3333-444455556666"
)

// ── in-memory fakes ──────────────────────────────────────────────────────────

type memStockRepo struct {
	items      map[string]*entity.Stock
	alertsSent []string
}

func (r *memStockRepo) Create(s *entity.Stock) error { r.items[s.ID] = s; return nil }
func (r *memStockRepo) GetByID(id string) (*entity.Stock, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *memStockRepo) GetByName(string, string, string) (*entity.Stock, error) { return nil, nil }
func (r *memStockRepo) Update(s *entity.Stock) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}
func (r *memStockRepo) ListByOwner(string) ([]*entity.Stock, error)  { return nil, nil }
func (r *memStockRepo) DistinctCompanies(string) ([]string, error)   { return nil, nil }
func (r *memStockRepo) Delete(string) error                          { return nil }
func (r *memStockRepo) GetForUpdate(id string) (*entity.Stock, error) { return r.GetByID(id) }
func (r *memStockRepo) MarkAlertSent(id string) error {
	r.alertsSent = append(r.alertsSent, id)
	return nil
}

type memSaleRepo struct {
	sales       map[string]*entity.Sale
	items       []*entity.SaleItem
	lastInvoice string
	itemErr     error
}

func (r *memSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }
func (r *memSaleRepo) CreateItem(it *entity.SaleItem) error {
	if r.itemErr != nil {
		return r.itemErr
	}
	r.items = append(r.items, it)
	return nil
}
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }
func (r *memSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memSaleRepo) LastInvoiceNumber(string, string) (string, error) { return r.lastInvoice, nil }
func (r *memSaleRepo) ListSince(string, time.Time) ([]*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) UpdatePDFPath(id, path string) error {
	if s, ok := r.sales[id]; ok {
		s.PDFFilePath = path
	}
	return nil
}
func (r *memSaleRepo) Delete(id string) error { delete(r.sales, id); return nil }

type memUserRepo struct{ users map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *memUserRepo) GetByEmail(string) (*entity.User, error)   { return nil, nil }
func (r *memUserRepo) Update(*entity.User) error                 { return nil }
func (r *memUserRepo) ListStaff(string) ([]*entity.User, error)  { return nil, nil }

type memTemplateRepo struct{ tpl *entity.InvoiceTemplate }

func (r *memTemplateRepo) GetByOwner(string) (*entity.InvoiceTemplate, error) { return r.tpl, nil }
func (r *memTemplateRepo) Save(t *entity.InvoiceTemplate) error               { r.tpl = t; return nil }

// fakeTxRunner hands the shared fakes to fn and simulates rollback by
// restoring a snapshot when fn fails.
type fakeTxRunner struct {
	stock *memStockRepo
	sale  *memSaleRepo
}

func (r *fakeTxRunner) RunBilling(_ context.Context, fn func(repository.StockRepository, repository.SaleRepository) error) error {
	stockSnap := make(map[string]*entity.Stock, len(r.stock.items))
	for k, v := range r.stock.items {
		cp := *v
		stockSnap[k] = &cp
	}
	saleSnap := make(map[string]*entity.Sale, len(r.sale.sales))
	for k, v := range r.sale.sales {
		cp := *v
		saleSnap[k] = &cp
	}
	itemsSnap := append([]*entity.SaleItem(nil), r.sale.items...)

	if err := fn(r.stock, r.sale); err != nil {
		r.stock.items = stockSnap
		r.sale.sales = saleSnap
		r.sale.items = itemsSnap
		return err
	}
	return nil
}

type incomeCall struct {
	description string
	amount      decimal.Decimal
	saleID      string
}

type incomeRecorder struct{ calls []incomeCall }

func (r *incomeRecorder) LogIncome(_, _, _, _, description, _, saleID string, amount decimal.Decimal, _ time.Time) error {
	r.calls = append(r.calls, incomeCall{description: description, amount: amount, saleID: saleID})
	return nil
}

type pdfStub struct{}

func (pdfStub) Generate(ports.BillForPDF) ([]byte, error) { return []byte("%PDF-1.4 stub"), nil }

type recordingMailer struct {
	invoices  []string
	lowStocks []string
}

func (m *recordingMailer) SendInvoice(to, _, _, invoiceNumber string, _ []byte) error {
	m.invoices = append(m.invoices, invoiceNumber)
	return nil
}
func (m *recordingMailer) SendLowStockAlert(_, productName, _ string, _, _ int64) error {
	m.lowStocks = append(m.lowStocks, productName)
	return nil
}

// ── fixture ──────────────────────────────────────────────────────────────────

type fixture struct {
	uc     *billing.GenerateBillUseCase
	stock  *memStockRepo
	sale   *memSaleRepo
	income *incomeRecorder
	mailer *recordingMailer
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stockRepo := &memStockRepo{items: map[string]*entity.Stock{
		"stk-pen": {
			ID: "stk-pen", OwnerID: ownerID, ProductName: "Pen", CompanyName: "Cello",
			Quantity: 50, SellingPrice: decimal.NewFromInt(25), ThresholdQuantity: 5,
		},
		"stk-book": {
			ID: "stk-book", OwnerID: ownerID, ProductName: "Notebook", CompanyName: "Classmate",
			Quantity: 6, SellingPrice: decimal.NewFromInt(50), ThresholdQuantity: 5,
		},
	}}
	saleRepo := &memSaleRepo{sales: map[string]*entity.Sale{}}
	userRepo := &memUserRepo{users: map[string]*entity.User{
		ownerID: {
			ID: ownerID, Name: "Asha", Email: "asha@example.com", Role: entity.RoleOwner,
			BusinessName: "Asha Stores", BusinessPhone: "9812345678",
		},
		staffID: {ID: staffID, OwnerID: ownerID, Name: "Ravi", Role: entity.RoleStaff},
	}}
	income := &incomeRecorder{}
	mailer := &recordingMailer{}
	dir := t.TempDir()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	uc := billing.NewGenerateBillUseCase(
		&fakeTxRunner{stock: stockRepo, sale: saleRepo},
		stockRepo, saleRepo, userRepo, &memTemplateRepo{},
		income, pdfStub{}, mailer, log, time.UTC, dir,
	)
	return &fixture{uc: uc, stock: stockRepo, sale: saleRepo, income: income, mailer: mailer, dir: dir}
}

func request(items ...dto.BillItemRequest) dto.GenerateBillRequest {
	return dto.GenerateBillRequest{
		CustomerName:  "Meena",
		CustomerPhone: "9876543210",
		Items:         items,
	}
}

func penLine(qty int64) dto.BillItemRequest {
	return dto.BillItemRequest{
		ProductID: "stk-pen", ProductName: "Pen", Quantity: qty, UnitPrice: decimal.NewFromInt(25),
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestGenerateBill_HappyPath(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(4)))
	require.NoError(t, err)

	assert.Equal(t, "INV-3f2b8c9d-00001", resp.InvoiceNumber)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal = 4 x 25")
	assert.True(t, resp.FinalAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Rupees one hundred Only", resp.AmountInWords)
	assert.NotEmpty(t, resp.PDFBase64)

	assert.EqualValues(t, 46, f.stock.items["stk-pen"].Quantity, "stock deducted")

	require.Len(t, f.income.calls, 1, "sale auto-logged as income")
	assert.Equal(t, "Sale: Invoice #INV-3f2b8c9d-00001", f.income.calls[0].description)
	assert.True(t, f.income.calls[0].amount.Equal(decimal.NewFromInt(100)))

	// PDF written and recorded on the sale
	path := filepath.Join(f.dir, "Invoice_INV-3f2b8c9d-00001.pdf")
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "pdf file written")
	assert.Equal(t, path, f.sale.sales[f.income.calls[0].saleID].PDFFilePath)
}

func TestGenerateBill_InvoiceNumberIncrements(t *testing.T) {
	f := newFixture(t)
	f.sale.lastInvoice = "INV-3f2b8c9d-00041"

	resp, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(1)))
	require.NoError(t, err)
	assert.Equal(t, "INV-3f2b8c9d-00042", resp.InvoiceNumber)
}

func TestGenerateBill_DiscountAppliesAndClamps(t *testing.T) {
	f := newFixture(t)
	in := request(penLine(4))
	in.DiscountAmount = decimal.NewFromInt(30)

	resp, err := f.uc.Execute(context.Background(), ownerID, ownerID, in)
	require.NoError(t, err)
	assert.True(t, resp.FinalAmount.Equal(decimal.NewFromInt(70)))

	f2 := newFixture(t)
	in2 := request(penLine(1))
	in2.DiscountAmount = decimal.NewFromInt(500)
	resp2, err := f2.uc.Execute(context.Background(), ownerID, ownerID, in2)
	require.NoError(t, err)
	assert.True(t, resp2.FinalAmount.IsZero(), "total never goes negative")
}

func TestGenerateBill_StaffActsOnOwnersData(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), ownerID, staffID, request(penLine(2)))
	require.NoError(t, err)
	assert.Equal(t, "INV-3f2b8c9d-00001", resp.InvoiceNumber, "invoice sequence belongs to the owner")
}

func TestGenerateBill_InsufficientStockRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(51)))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 50, f.stock.items["stk-pen"].Quantity, "stock untouched")
	assert.Empty(t, f.sale.sales, "no sale persisted")
	assert.Empty(t, f.income.calls)
}

func TestGenerateBill_MergedLinesCheckedAgainstStock(t *testing.T) {
	f := newFixture(t)

	// 30 + 30 of the same product merges to 60, over the 50 available.
	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(30), penLine(30)))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestGenerateBill_TxFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.sale.itemErr = assert.AnError

	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(4)))
	require.Error(t, err)
	assert.EqualValues(t, 50, f.stock.items["stk-pen"].Quantity, "deduction rolled back")
	assert.Empty(t, f.sale.sales, "sale insert rolled back")
	assert.Empty(t, f.income.calls, "no income on failed generation")

	// Retry after the failure succeeds: the session is rebuilt per request.
	f.sale.itemErr = nil
	resp, err := f.uc.Execute(context.Background(), ownerID, ownerID, request(penLine(4)))
	require.NoError(t, err)
	assert.Equal(t, "INV-3f2b8c9d-00001", resp.InvoiceNumber)
}

func TestGenerateBill_CustomerValidation(t *testing.T) {
	f := newFixture(t)

	in := request(penLine(1))
	in.CustomerName = ""
	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, in)
	assert.ErrorIs(t, err, domain.ErrMissingCustomer)

	in = request(penLine(1))
	in.CustomerPhone = "1234567890"
	_, err = f.uc.Execute(context.Background(), ownerID, ownerID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)

	in = request(penLine(1))
	in.SendEmail = true
	_, err = f.uc.Execute(context.Background(), ownerID, ownerID, in)
	assert.ErrorIs(t, err, domain.ErrEmailRequired)

	_, err = f.uc.Execute(context.Background(), ownerID, ownerID, request())
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestGenerateBill_UnknownProductRejected(t *testing.T) {
	f := newFixture(t)

	in := request(dto.BillItemRequest{ProductID: "missing", ProductName: "Ghost", Quantity: 1, UnitPrice: decimal.NewFromInt(10)})
	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateBill_LowStockAlertAfterSale(t *testing.T) {
	f := newFixture(t)

	// Notebook: 6 in stock, threshold 5. Selling 2 leaves 4, below threshold.
	in := request(dto.BillItemRequest{ProductID: "stk-book", ProductName: "Notebook", Quantity: 2, UnitPrice: decimal.NewFromInt(50)})
	_, err := f.uc.Execute(context.Background(), ownerID, ownerID, in)
	require.NoError(t, err)

	assert.Equal(t, []string{"Notebook"}, f.mailer.lowStocks)
	assert.Equal(t, []string{"stk-book"}, f.stock.alertsSent)
}

func TestGenerateBill_EmailSentWhenRequested(t *testing.T) {
	f := newFixture(t)

	in := request(penLine(1))
	in.SendEmail = true
	in.CustomerEmail = "meena@example.com"
	resp, err := f.uc.Execute(context.Background(), ownerID, ownerID, in)
	require.NoError(t, err)

	assert.True(t, resp.EmailSent)
	assert.Equal(t, []string{resp.InvoiceNumber}, f.mailer.invoices)
}
