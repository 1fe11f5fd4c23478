package cart

import (
	"sync"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// State of a billing session.
type State int

const (
	StateEmpty State = iota
	StateBuilding
	StateSubmitting
	StateGenerated
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateSubmitting:
		return "submitting"
	case StateGenerated:
		return "generated"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Session is one bill in progress at the counter. Transitions:
//
//	Empty -> Building (first line added)
//	Building -> Submitting (BeginSubmit, validation passed)
//	Submitting -> Generated (CompleteSubmit) or back to Building (FailSubmit)
//	Generated -> Closed (Close, cart and customer reset)
//	Closed -> Empty (Reset, ready for the next bill)
//
// At most one generation may be in flight: BeginSubmit on a Submitting
// session fails with ErrGenerationInFlight.
type Session struct {
	mu            sync.Mutex
	cart          *Cart
	customer      Customer
	paymentMethod string
	state         State
}

// NewSession returns an empty session with payment method cash.
func NewSession() *Session {
	return &Session{
		cart:          New(),
		paymentMethod: entity.PaymentCash,
		state:         StateEmpty,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cart exposes the underlying cart for reading totals and lines.
func (s *Session) Cart() *Cart {
	return s.cart
}

// Customer returns the customer entered so far.
func (s *Session) Customer() Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// SetCustomer stores the customer details. Allowed while building.
func (s *Session) SetCustomer(cust Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateClosed {
		return domain.ErrInvalidSessionState
	}
	s.customer = cust
	return nil
}

// PaymentMethod returns the selected payment method.
func (s *Session) PaymentMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

// SetPaymentMethod selects how the bill is paid.
func (s *Session) SetPaymentMethod(m string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateClosed {
		return domain.ErrInvalidSessionState
	}
	s.paymentMethod = m
	return nil
}

// Add puts a line in the cart, moving an empty session to Building.
func (s *Session) Add(line Line, available int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEmpty && s.state != StateBuilding {
		return domain.ErrInvalidSessionState
	}
	if err := s.cart.Add(line, available); err != nil {
		return err
	}
	s.state = StateBuilding
	return nil
}

// Remove drops a cart line; an emptied cart returns the session to Empty.
func (s *Session) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateBuilding {
		return domain.ErrInvalidSessionState
	}
	if err := s.cart.Remove(i); err != nil {
		return err
	}
	if s.cart.Len() == 0 {
		s.state = StateEmpty
	}
	return nil
}

// BeginSubmit validates the session and marks the generation as in flight.
// Validation order: non-empty cart, then customer details.
func (s *Session) BeginSubmit(sendEmail bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return domain.ErrGenerationInFlight
	}
	if s.state != StateBuilding || s.cart.Len() == 0 {
		return domain.ErrCartEmpty
	}
	if err := ValidateCustomer(s.customer, sendEmail); err != nil {
		return err
	}
	s.state = StateSubmitting
	return nil
}

// CompleteSubmit marks the in-flight generation as done.
func (s *Session) CompleteSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return domain.ErrInvalidSessionState
	}
	s.state = StateGenerated
	return nil
}

// FailSubmit returns a failed generation to Building with the cart intact.
func (s *Session) FailSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return domain.ErrInvalidSessionState
	}
	s.state = StateBuilding
	return nil
}

// Close ends a generated bill: cart, customer and discount are reset and the
// payment method returns to cash.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateGenerated {
		return domain.ErrInvalidSessionState
	}
	s.cart.Clear()
	s.customer = Customer{}
	s.paymentMethod = entity.PaymentCash
	s.state = StateClosed
	return nil
}

// Reset readies a closed session for the next bill.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.customer = Customer{}
	s.paymentMethod = entity.PaymentCash
	s.state = StateEmpty
}
