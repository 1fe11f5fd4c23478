package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/cart"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

func buildingSession(t *testing.T) *cart.Session {
	t.Helper()
	s := cart.NewSession()
	require.NoError(t, s.Add(line("s1", "Soap", 2, 100), 10))
	require.NoError(t, s.SetCustomer(cart.Customer{Name: "Asha", Phone: "9876543210"}))
	return s
}

func TestSession_EmptyCartCannotSubmit(t *testing.T) {
	s := cart.NewSession()
	assert.Equal(t, cart.StateEmpty, s.State())
	assert.ErrorIs(t, s.BeginSubmit(false), domain.ErrCartEmpty)
}

func TestSession_HappyPath(t *testing.T) {
	s := buildingSession(t)
	assert.Equal(t, cart.StateBuilding, s.State())

	require.NoError(t, s.BeginSubmit(false))
	assert.Equal(t, cart.StateSubmitting, s.State())

	require.NoError(t, s.CompleteSubmit())
	assert.Equal(t, cart.StateGenerated, s.State())

	require.NoError(t, s.Close())
	assert.Equal(t, cart.StateClosed, s.State())
	assert.Equal(t, 0, s.Cart().Len())
	assert.Equal(t, entity.PaymentCash, s.PaymentMethod())

	s.Reset()
	assert.Equal(t, cart.StateEmpty, s.State())
}

func TestSession_OnlyOneGenerationInFlight(t *testing.T) {
	s := buildingSession(t)
	require.NoError(t, s.BeginSubmit(false))

	assert.ErrorIs(t, s.BeginSubmit(false), domain.ErrGenerationInFlight)
}

func TestSession_FailSubmitKeepsCart(t *testing.T) {
	s := buildingSession(t)
	require.NoError(t, s.BeginSubmit(false))
	require.NoError(t, s.FailSubmit())

	assert.Equal(t, cart.StateBuilding, s.State())
	assert.Equal(t, 1, s.Cart().Len())

	// A retry is allowed after the failure.
	require.NoError(t, s.BeginSubmit(false))
}

func TestSession_ValidationRunsAtSubmit(t *testing.T) {
	s := cart.NewSession()
	require.NoError(t, s.Add(line("s1", "Soap", 1, 100), 10))

	assert.ErrorIs(t, s.BeginSubmit(false), domain.ErrMissingCustomer)

	require.NoError(t, s.SetCustomer(cart.Customer{Name: "Asha", Phone: "1234567890"}))
	assert.ErrorIs(t, s.BeginSubmit(false), domain.ErrInvalidPhone)

	require.NoError(t, s.SetCustomer(cart.Customer{Name: "Asha", Phone: "9876543210"}))
	assert.ErrorIs(t, s.BeginSubmit(true), domain.ErrEmailRequired)

	// A failed validation leaves the session in Building.
	assert.Equal(t, cart.StateBuilding, s.State())
}

func TestSession_NoMutationWhileSubmitting(t *testing.T) {
	s := buildingSession(t)
	require.NoError(t, s.BeginSubmit(false))

	assert.ErrorIs(t, s.Add(line("s2", "Shampoo", 1, 50), 10), domain.ErrInvalidSessionState)
	assert.ErrorIs(t, s.Remove(0), domain.ErrInvalidSessionState)
	assert.ErrorIs(t, s.SetCustomer(cart.Customer{}), domain.ErrInvalidSessionState)
	assert.ErrorIs(t, s.SetPaymentMethod(entity.PaymentUPI), domain.ErrInvalidSessionState)
}

func TestSession_RemoveLastLineReturnsToEmpty(t *testing.T) {
	s := cart.NewSession()
	require.NoError(t, s.Add(line("s1", "Soap", 1, 100), 10))
	require.NoError(t, s.Remove(0))
	assert.Equal(t, cart.StateEmpty, s.State())
}

func TestSession_CloseOnlyFromGenerated(t *testing.T) {
	s := buildingSession(t)
	assert.ErrorIs(t, s.Close(), domain.ErrInvalidSessionState)

	s2 := cart.NewSession()
	s2.Cart().SetDiscount(decimal.NewFromInt(10))
	assert.ErrorIs(t, s2.Close(), domain.ErrInvalidSessionState)
}
