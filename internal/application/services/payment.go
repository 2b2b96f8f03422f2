package services

import (
	"context"
	"errors"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/domain"
	"github.com/google/uuid"
)

// ChargeCommand carries the payment request fields for a single charge.
type ChargeCommand struct {
	PaymentMethod string
	Description   string
	AmountCents   int64
	Currency      domain.Currency
}

// PaymentService validates a payment request against the customer store and
// the currency policy, obtains a charge decision from the gateway, and
// records the payment only when the card was debited.
type PaymentService struct {
	customerRepo application.CustomerRepository
	paymentRepo  application.PaymentRepository
	cardCharger  application.CardCharger
}

func NewPaymentService(
	customerRepo application.CustomerRepository,
	paymentRepo application.PaymentRepository,
	cardCharger application.CardCharger,
) *PaymentService {
	return &PaymentService{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		cardCharger:  cardCharger,
	}
}

// Charge runs the authorization sequence in strict order: customer existence,
// currency allow-list, gateway charge, persist. The first failure
// short-circuits; the gateway is never invoked for an unknown customer or an
// unsupported currency, and nothing is written unless the charge succeeded.
// It returns the store-assigned payment id.
func (s *PaymentService) Charge(ctx context.Context, customerID uuid.UUID, cmd ChargeCommand) (int64, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return 0, application.NewCustomerNotFoundError(customerID.String())
		}
		return 0, application.NewInternalError(err)
	}

	if !cmd.Currency.IsSupported() {
		return 0, application.NewUnsupportedCurrencyError(string(cmd.Currency))
	}

	charge, err := s.cardCharger.Charge(ctx, cmd.PaymentMethod, cmd.AmountCents, cmd.Currency, cmd.Description)
	if err != nil {
		return 0, application.NewGatewayFailureError(err)
	}

	if !charge.CardDebited {
		return 0, application.NewPaymentDeclinedError(customerID.String())
	}

	stored, err := s.paymentRepo.Insert(ctx, &domain.Payment{
		PaymentMethod: cmd.PaymentMethod,
		Description:   cmd.Description,
		AmountCents:   cmd.AmountCents,
		Currency:      cmd.Currency,
		CustomerID:    customerID,
	})
	if err != nil {
		return 0, application.NewInternalError(err)
	}

	return stored.ID, nil
}

// ListAll returns every recorded payment in store order (id ascending).
func (s *PaymentService) ListAll(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return payments, nil
}
