package postgres_test

import (
	"context"
	"testing"

	"github.com/ayowande/custpay/internal/application/services/testhelpers"
	"github.com/ayowande/custpay/internal/domain"
	"github.com/ayowande/custpay/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	customerRepo *postgres.CustomerRepository
	paymentRepo  *postgres.PaymentRepository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.customerRepo = postgres.NewCustomerRepository(suite.testDB.DB)
	suite.paymentRepo = postgres.NewPaymentRepository(suite.testDB.DB)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *RepositoryTestSuite) Test_Customer_InsertAndFind() {
	ctx := context.Background()
	t := suite.T()

	created, err := suite.customerRepo.Insert(ctx, "Maria Garcia", "+34650555111")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	byID, err := suite.customerRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, byID.Name)
	assert.Equal(t, created.PhoneNumber, byID.PhoneNumber)

	byPhone, err := suite.customerRepo.FindByPhoneNumber(ctx, "+34650555111")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPhone.ID)
}

func (suite *RepositoryTestSuite) Test_Customer_NotFound() {
	ctx := context.Background()
	t := suite.T()

	_, err := suite.customerRepo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = suite.customerRepo.FindByPhoneNumber(ctx, "+34999999999")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func (suite *RepositoryTestSuite) Test_Customer_DuplicatePhoneNumber_IsUniqueViolation() {
	ctx := context.Background()
	t := suite.T()

	_, err := suite.customerRepo.Insert(ctx, "Maria Garcia", "+34650555111")
	require.NoError(t, err)

	// Same phone, different name: the constraint fires regardless.
	_, err = suite.customerRepo.Insert(ctx, "John Smith", "+34650555111")
	assert.ErrorIs(t, err, domain.ErrPhoneNumberTaken)
}

func (suite *RepositoryTestSuite) Test_Payment_InsertAssignsMonotonicIDs() {
	ctx := context.Background()
	t := suite.T()

	customer, err := suite.customerRepo.Insert(ctx, "Maria Garcia", "+34650555111")
	require.NoError(t, err)

	var lastID int64
	for i := 0; i < 3; i++ {
		stored, err := suite.paymentRepo.Insert(ctx, &domain.Payment{
			PaymentMethod: "pm_card_visa",
			Description:   "donation",
			AmountCents:   1000,
			Currency:      domain.CurrencyEUR,
			CustomerID:    customer.ID,
		})
		require.NoError(t, err)
		assert.Greater(t, stored.ID, lastID)
		lastID = stored.ID
	}
}

func (suite *RepositoryTestSuite) Test_Payment_FindAllReturnsStoreOrder() {
	ctx := context.Background()
	t := suite.T()

	customer, err := suite.customerRepo.Insert(ctx, "Maria Garcia", "+34650555111")
	require.NoError(t, err)

	for _, amount := range []int64{100, 200, 300} {
		_, err := suite.paymentRepo.Insert(ctx, &domain.Payment{
			PaymentMethod: "pm_card_visa",
			Description:   "donation",
			AmountCents:   amount,
			Currency:      domain.CurrencyUSD,
			CustomerID:    customer.ID,
		})
		require.NoError(t, err)
	}

	payments, err := suite.paymentRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, int64(100), payments[0].AmountCents)
	assert.Equal(t, int64(200), payments[1].AmountCents)
	assert.Equal(t, int64(300), payments[2].AmountCents)
	assert.Equal(t, customer.ID, payments[0].CustomerID)
}
