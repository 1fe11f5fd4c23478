package stock_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/stock"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

const ownerID = "owner-1"

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
	return s, nil
}
func (r *memStockRepo) GetByName(owner, product, company string) (*entity.Stock, error) {
	for _, s := range r.items {
		if s.OwnerID == owner &&
			strings.EqualFold(s.ProductName, product) &&
			strings.EqualFold(s.CompanyName, company) {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memStockRepo) Update(s *entity.Stock) error { r.items[s.ID] = s; return nil }
func (r *memStockRepo) ListByOwner(owner string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.items {
		if s.OwnerID == owner {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memStockRepo) DistinctCompanies(owner string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, s := range r.items {
		if s.OwnerID == owner && !seen[s.CompanyName] {
			seen[s.CompanyName] = true
			out = append(out, s.CompanyName)
		}
	}
	return out, nil
}
func (r *memStockRepo) Delete(id string) error { delete(r.items, id); return nil }
func (r *memStockRepo) GetForUpdate(id string) (*entity.Stock, error) { return r.GetByID(id) }
func (r *memStockRepo) MarkAlertSent(id string) error {
	r.alertsSent = append(r.alertsSent, id)
	if s, ok := r.items[id]; ok {
		now := time.Now()
		s.LastAlertSent = &now
	}
	return nil
}

type memUserRepo struct{ users map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *memUserRepo) GetByEmail(string) (*entity.User, error)  { return nil, nil }
func (r *memUserRepo) Update(*entity.User) error                { return nil }
func (r *memUserRepo) ListStaff(string) ([]*entity.User, error) { return nil, nil }

type expenseCall struct {
	description string
	category    string
	amount      decimal.Decimal
}

type expenseRecorder struct{ calls []expenseCall }

func (r *expenseRecorder) LogExpense(_, _, _, description, category string, amount decimal.Decimal, _ time.Time) error {
	r.calls = append(r.calls, expenseCall{description: description, category: category, amount: amount})
	return nil
}

type alertRecorder struct{ products []string }

func (r *alertRecorder) SendLowStockAlert(_, productName, _ string, _, _ int64) error {
	r.products = append(r.products, productName)
	return nil
}

type fixture struct {
	uc       *stock.UseCase
	repo     *memStockRepo
	expenses *expenseRecorder
	alerts   *alertRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := &memStockRepo{items: map[string]*entity.Stock{}}
	users := &memUserRepo{users: map[string]*entity.User{
		ownerID: {ID: ownerID, Name: "Asha", Email: "asha@example.com", Role: entity.RoleOwner},
	}}
	expenses := &expenseRecorder{}
	alerts := &alertRecorder{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := stock.NewUseCase(repo, users, expenses, alerts, log, time.UTC, 6*time.Hour)
	return &fixture{uc: uc, repo: repo, expenses: expenses, alerts: alerts}
}

func addRequest(product, company string, qty int64) dto.AddOrUpdateStockRequest {
	return dto.AddOrUpdateStockRequest{
		ProductName:  product,
		CompanyName:  company,
		Quantity:     qty,
		SellingPrice: decimal.NewFromInt(20),
	}
}

func TestAddOrUpdate_CreatesNewItem(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Paracetamol", "Cipla", 10))
	require.NoError(t, err)

	assert.EqualValues(t, 10, out.Quantity)
	assert.EqualValues(t, entity.DefaultThreshold, out.ThresholdQuantity)
	assert.Equal(t, "Asha", out.LastUpdatedBy)
	assert.False(t, out.LowStock)
}

func TestAddOrUpdate_MergesCaseInsensitively(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Paracetamol", "Cipla", 10))
	require.NoError(t, err)

	out, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("PARACETAMOL", "cipla", 5))
	require.NoError(t, err)

	assert.EqualValues(t, 15, out.Quantity, "same product merged, quantities summed")
	require.Len(t, f.repo.items, 1, "no duplicate row created")
}

func TestAddOrUpdate_NegativeDeltaClampsAtZero(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Pen", "Cello", 3))
	require.NoError(t, err)

	out, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Pen", "Cello", -10))
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.Quantity)
}

func TestAddOrUpdate_RestockWithCostLogsExpense(t *testing.T) {
	f := newFixture(t)

	in := addRequest("Notebook", "Classmate", 12)
	in.CostPrice = decimal.NewFromInt(30)
	_, err := f.uc.AddOrUpdate(ownerID, ownerID, in)
	require.NoError(t, err)

	require.Len(t, f.expenses.calls, 1)
	assert.Equal(t, "Stock Purchase: Notebook x 12", f.expenses.calls[0].description)
	assert.Equal(t, "Stock", f.expenses.calls[0].category)
	assert.True(t, f.expenses.calls[0].amount.Equal(decimal.NewFromInt(360)))
}

func TestAddOrUpdate_NoExpenseWithoutCostOrRestock(t *testing.T) {
	f := newFixture(t)

	// No cost price
	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Pen", "Cello", 5))
	require.NoError(t, err)

	// Negative delta with cost price
	in := addRequest("Pen", "Cello", -2)
	in.CostPrice = decimal.NewFromInt(10)
	_, err = f.uc.AddOrUpdate(ownerID, ownerID, in)
	require.NoError(t, err)

	assert.Empty(t, f.expenses.calls)
}

func TestAddOrUpdate_LowStockAlertWithCooldown(t *testing.T) {
	f := newFixture(t)

	in := addRequest("Insulin", "Novo", 2)
	in.ThresholdQuantity = 5
	_, err := f.uc.AddOrUpdate(ownerID, ownerID, in)
	require.NoError(t, err)

	assert.Equal(t, []string{"Insulin"}, f.alerts.products, "alert sent at or below threshold")

	// A second update inside the cooldown window stays quiet.
	_, err = f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Insulin", "Novo", 1))
	require.NoError(t, err)
	assert.Len(t, f.alerts.products, 1, "cooldown suppresses the repeat alert")
}

func TestAddOrUpdate_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("", "Cipla", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AddOrUpdate(ownerID, "nobody", addRequest("Pen", "Cello", 1))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDelete_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Pen", "Cello", 5))
	require.NoError(t, err)

	err = f.uc.Delete(ownerID, entity.RoleStaff, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.uc.Delete(ownerID, entity.RoleOwner, out.ID)
	assert.NoError(t, err)

	err = f.uc.Delete(ownerID, entity.RoleOwner, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuggestions_SeedAndOwnMerged(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Custom Tonic", "Local Labs", 5))
	require.NoError(t, err)

	out, err := f.uc.Suggestions(ownerID, "pharmacy", "")
	require.NoError(t, err)

	var names []string
	for _, s := range out {
		names = append(names, s.ProductName)
	}
	assert.Contains(t, names, "Paracetamol", "seed catalog present")
	assert.Contains(t, names, "Custom Tonic", "owner's own products present")
}

func TestSuggestions_CompanyFilter(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Suggestions(ownerID, "pharmacy", "Cipla")
	require.NoError(t, err)
	for _, s := range out {
		assert.Equal(t, "Cipla", s.CompanyName)
	}
}

func TestCompanies_IncludesSeedCompanies(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddOrUpdate(ownerID, ownerID, addRequest("Pen", "Local Stationers", 5))
	require.NoError(t, err)

	out, err := f.uc.Companies(ownerID, "pharmacy")
	require.NoError(t, err)
	assert.Contains(t, out, "Local Stationers")
	assert.Contains(t, out, "Cipla")
}
