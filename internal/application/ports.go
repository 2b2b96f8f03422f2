// Package application holds the orchestration layer: the ports the services
// depend on and the error taxonomy they surface.
package application

import (
	"context"

	"github.com/ayowande/custpay/internal/domain"
	"github.com/google/uuid"
)

// CustomerRepository defines customer persistence. Insert must rely on the
// store's unique phone number constraint and return
// domain.ErrPhoneNumberTaken when it is violated; FindByPhoneNumber and
// FindByID return domain.ErrCustomerNotFound when no row matches.
type CustomerRepository interface {
	Insert(ctx context.Context, name, phoneNumber string) (*domain.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Customer, error)
}

// PaymentRepository defines payment persistence. Insert assigns the id and
// returns the stored payment; FindAll returns payments in id order.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
}

// CardCharger is the abstract card-charging capability. Exactly one
// implementation is active per deployment, selected from configuration at
// process start. A nil error means the gateway reached a decision; whether
// the card was actually debited is carried in the CardCharge.
type CardCharger interface {
	Charge(ctx context.Context, paymentMethod string, amountCents int64, currency domain.Currency, description string) (*domain.CardCharge, error)
}

// PhoneValidator decides whether a raw string is a dialable phone number.
// It returns nil for valid numbers and a descriptive error otherwise.
type PhoneValidator interface {
	Validate(phoneNumber string) error
}
