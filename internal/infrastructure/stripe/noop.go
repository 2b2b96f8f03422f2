package stripe

import (
	"context"

	"github.com/ayowande/custpay/internal/domain"
)

// NoopCharger reports every charge as debited without calling any processor.
// It is selected by configuration for deployments without Stripe credentials.
type NoopCharger struct{}

func NewNoopCharger() *NoopCharger {
	return &NoopCharger{}
}

func (c *NoopCharger) Charge(ctx context.Context, paymentMethod string, amountCents int64, currency domain.Currency, description string) (*domain.CardCharge, error) {
	return &domain.CardCharge{CardDebited: true}, nil
}
