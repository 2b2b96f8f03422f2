package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/application/services"
	"github.com/ayowande/custpay/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationService() (*services.RegistrationService, *services.MockCustomerRepository) {
	repo := services.NewMockCustomerRepository()
	svc := services.NewRegistrationService(repo, &services.MockPhoneValidator{})
	return svc, repo
}

func TestRegister_NewCustomer_Succeeds(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRegistrationService()

	err := svc.Register(ctx, "Maria Garcia", "+34650555111")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())

	saved, err := repo.FindByPhoneNumber(ctx, "+34650555111")
	require.NoError(t, err)
	assert.Equal(t, "Maria Garcia", saved.Name)
	assert.NotEqual(t, uuid.Nil, saved.ID)
}

func TestRegister_SameNameAndPhone_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRegistrationService()

	require.NoError(t, svc.Register(ctx, "Maria Garcia", "+34650555111"))
	require.NoError(t, svc.Register(ctx, "Maria Garcia", "+34650555111"))

	assert.Equal(t, 1, repo.Count())
}

func TestRegister_SamePhoneDifferentName_Conflicts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRegistrationService()

	require.NoError(t, svc.Register(ctx, "Maria Garcia", "+34650555111"))

	err := svc.Register(ctx, "John Smith", "+34650555111")

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)

	// The first registration must be untouched.
	assert.Equal(t, 1, repo.Count())
	saved, err := repo.FindByPhoneNumber(ctx, "+34650555111")
	require.NoError(t, err)
	assert.Equal(t, "Maria Garcia", saved.Name)
}

func TestRegister_NameComparisonIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRegistrationService()

	require.NoError(t, svc.Register(ctx, "Maria Garcia", "+34650555111"))

	err := svc.Register(ctx, "maria garcia", "+34650555111")

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)
	assert.Equal(t, 1, repo.Count())
}

func TestRegister_EmptyFields_AreRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRegistrationService()

	for _, tc := range []struct {
		name  string
		phone string
	}{
		{"", "+34650555111"},
		{"Maria Garcia", ""},
	} {
		err := svc.Register(ctx, tc.name, tc.phone)
		require.Error(t, err)
		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
	}
	assert.Equal(t, 0, repo.Count())
}

func TestRegister_InvalidPhoneNumber_IsRejected(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockCustomerRepository()
	validator := &services.MockPhoneValidator{
		ValidateFn: func(string) error { return errors.New("not a dialable number") },
	}
	svc := services.NewRegistrationService(repo, validator)

	err := svc.Register(ctx, "Maria Garcia", "1234")

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidInput, svcErr.Code)
	assert.Equal(t, 0, repo.Count())
}

func TestRegister_UniqueViolationOnInsert_BecomesConflict(t *testing.T) {
	// A concurrent registration can slip in between the lookup and the
	// insert; the store's unique constraint fires and must surface as the
	// same conflict, not as a storage failure.
	ctx := context.Background()
	repo := services.NewMockCustomerRepository()
	repo.FindByPhoneNumberFn = func(context.Context, string) (*domain.Customer, error) {
		return nil, domain.ErrCustomerNotFound
	}
	repo.InsertFn = func(context.Context, string, string) (*domain.Customer, error) {
		return nil, domain.ErrPhoneNumberTaken
	}
	svc := services.NewRegistrationService(repo, &services.MockPhoneValidator{})

	err := svc.Register(ctx, "Maria Garcia", "+34650555111")

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)
}

func TestRegister_StorageFailure_IsSurfacedAsInternal(t *testing.T) {
	ctx := context.Background()
	repo := services.NewMockCustomerRepository()
	repo.FindByPhoneNumberFn = func(context.Context, string) (*domain.Customer, error) {
		return nil, errors.New("connection refused")
	}
	svc := services.NewRegistrationService(repo, &services.MockPhoneValidator{})

	err := svc.Register(ctx, "Maria Garcia", "+34650555111")

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
}
