package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/domain"
)

// RegistrationService owns the dedup rule for customer creation: one customer
// per phone number, with idempotent replays for identical requests.
type RegistrationService struct {
	customerRepo   application.CustomerRepository
	phoneValidator application.PhoneValidator
}

func NewRegistrationService(
	customerRepo application.CustomerRepository,
	phoneValidator application.PhoneValidator,
) *RegistrationService {
	return &RegistrationService{
		customerRepo:   customerRepo,
		phoneValidator: phoneValidator,
	}
}

// Register creates a customer for the given name and phone number.
//
// A repeated registration with the same name and phone number succeeds
// without writing anything, so client retries are safe. The same phone number
// under a different name is a conflict. Name comparison is exact and
// case-sensitive.
func (s *RegistrationService) Register(ctx context.Context, name, phoneNumber string) error {
	if name == "" {
		return application.NewInvalidInputError("name must not be empty", nil)
	}
	if phoneNumber == "" {
		return application.NewInvalidInputError("phone number must not be empty", nil)
	}
	if err := s.phoneValidator.Validate(phoneNumber); err != nil {
		return application.NewInvalidInputError(
			fmt.Sprintf("phone number [%s] is not valid", phoneNumber), err)
	}

	existing, err := s.customerRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return application.NewInternalError(err)
	}

	if existing != nil {
		if existing.Name == name {
			// Idempotent replay, nothing to write.
			return nil
		}
		return application.NewConflictError(phoneNumber)
	}

	// The read above and this insert race under concurrent registrations for
	// the same new phone number; the store's unique constraint is the
	// authoritative guard, so a violation here is the same conflict.
	if _, err := s.customerRepo.Insert(ctx, name, phoneNumber); err != nil {
		if errors.Is(err, domain.ErrPhoneNumberTaken) {
			return application.NewConflictError(phoneNumber)
		}
		return application.NewInternalError(err)
	}

	return nil
}
