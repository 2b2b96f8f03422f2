package services

import (
	"context"
	"sync"

	"github.com/ayowande/custpay/internal/domain"
	"github.com/google/uuid"
)

// MockCustomerRepository is an in-memory CustomerRepository enforcing the
// same unique-phone-number rule as the real store.
type MockCustomerRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.Customer
	byPhone map[string]*domain.Customer

	InsertFn            func(ctx context.Context, name, phoneNumber string) (*domain.Customer, error)
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	FindByPhoneNumberFn func(ctx context.Context, phoneNumber string) (*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		byID:    make(map[uuid.UUID]*domain.Customer),
		byPhone: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Insert(ctx context.Context, name, phoneNumber string) (*domain.Customer, error) {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, name, phoneNumber)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byPhone[phoneNumber]; ok {
		return nil, domain.ErrPhoneNumberTaken
	}
	c := &domain.Customer{ID: uuid.New(), Name: name, PhoneNumber: phoneNumber}
	m.byID[c.ID] = c
	m.byPhone[c.PhoneNumber] = c
	return c, nil
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Customer, error) {
	if m.FindByPhoneNumberFn != nil {
		return m.FindByPhoneNumberFn(ctx, phoneNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.byPhone[phoneNumber]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

// Count returns the number of stored customers.
func (m *MockCustomerRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// MockPaymentRepository is an in-memory PaymentRepository assigning
// monotonically increasing ids like the BIGSERIAL column does.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	nextID   int64
	payments []domain.Payment

	InsertFn  func(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindAllFn func(ctx context.Context) ([]domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{nextID: 1}
}

func (m *MockPaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *payment
	stored.ID = m.nextID
	m.nextID++
	m.payments = append(m.payments, stored)
	return &stored, nil
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Payment, len(m.payments))
	copy(out, m.payments)
	return out, nil
}

// Count returns the number of stored payments.
func (m *MockPaymentRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}

// MockCardCharger records invocations so tests can assert the gateway was or
// was not called. By default every charge reports the card as debited.
type MockCardCharger struct {
	mu       sync.Mutex
	calls    int
	ChargeFn func(ctx context.Context, paymentMethod string, amountCents int64, currency domain.Currency, description string) (*domain.CardCharge, error)
}

func (m *MockCardCharger) Charge(ctx context.Context, paymentMethod string, amountCents int64, currency domain.Currency, description string) (*domain.CardCharge, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.ChargeFn != nil {
		return m.ChargeFn(ctx, paymentMethod, amountCents, currency, description)
	}
	return &domain.CardCharge{CardDebited: true}, nil
}

// Calls returns how many times Charge was invoked.
func (m *MockCardCharger) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockPhoneValidator accepts everything unless ValidateFn is set.
type MockPhoneValidator struct {
	ValidateFn func(phoneNumber string) error
}

func (m *MockPhoneValidator) Validate(phoneNumber string) error {
	if m.ValidateFn != nil {
		return m.ValidateFn(phoneNumber)
	}
	return nil
}
