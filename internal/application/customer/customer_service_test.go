package customer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchByName(ctx context.Context, fragment string, limit int) ([]customer.Customer, error) {
	args := m.Called(ctx, fragment, limit)
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountByTariff(ctx context.Context, tariffID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tariffID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockTariffRepository is a mock implementation of TariffRepository
type MockTariffRepository struct {
	mock.Mock
}

func (m *MockTariffRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TariffTier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.TariffTier), args.Error(1)
}

func (m *MockTariffRepository) FindByCapacity(ctx context.Context, capacity int) (*catalog.TariffTier, error) {
	args := m.Called(ctx, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.TariffTier), args.Error(1)
}

func (m *MockTariffRepository) FindAll(ctx context.Context) ([]catalog.TariffTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.TariffTier), args.Error(1)
}

func (m *MockTariffRepository) Save(ctx context.Context, tier *catalog.TariffTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

func (m *MockTariffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTariffRepository) ExistsByCapacity(ctx context.Context, capacity int, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, capacity, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTariffRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestTier(t *testing.T) *catalog.TariffTier {
	t.Helper()
	tier, err := catalog.NewTariffTier(900, decimal.RequireFromString("1352.00"))
	require.NoError(t, err)
	return tier
}

func newTestCustomer(t *testing.T, tariffID uuid.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("budi", "secret123", "MTR-001", "Budi Santoso", "Jl. Merdeka 1", tariffID)
	require.NoError(t, err)
	return c
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers customer with hashed credential", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		tier := newTestTier(t)
		customerRepo.On("ExistsByUsername", ctx, "budi", uuid.Nil).Return(false, nil)
		tariffRepo.On("FindByID", ctx, tier.ID).Return(tier, nil)
		customerRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{
			Username:    "budi",
			Password:    "secret123",
			MeterNumber: "MTR-001",
			Name:        "Budi Santoso",
			Address:     "Jl. Merdeka 1",
			TariffID:    tier.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "budi", resp.Username)
		assert.Equal(t, tier.ID, resp.TariffID)

		saved := customerRepo.Calls[1].Arguments.Get(1).(*customer.Customer)
		assert.NotEqual(t, "secret123", saved.PasswordHash)
		assert.True(t, saved.VerifyPassword("secret123"))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		customerRepo.On("ExistsByUsername", ctx, "budi", uuid.Nil).Return(true, nil)

		_, err := service.Create(ctx, CreateCustomerRequest{
			Username:    "budi",
			Password:    "secret123",
			MeterNumber: "MTR-001",
			Name:        "Budi Santoso",
			Address:     "Jl. Merdeka 1",
			TariffID:    uuid.New(),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
	})

	t.Run("rejects unknown tariff", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		tariffID := uuid.New()
		customerRepo.On("ExistsByUsername", ctx, "budi", uuid.Nil).Return(false, nil)
		tariffRepo.On("FindByID", ctx, tariffID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateCustomerRequest{
			Username:    "budi",
			Password:    "secret123",
			MeterNumber: "MTR-001",
			Name:        "Budi Santoso",
			Address:     "Jl. Merdeka 1",
			TariffID:    tariffID,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates profile without touching credential", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		tier := newTestTier(t)
		c := newTestCustomer(t, tier.ID)
		originalHash := c.PasswordHash

		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		customerRepo.On("ExistsByUsername", ctx, "budi2", c.ID).Return(false, nil)
		tariffRepo.On("FindByID", ctx, tier.ID).Return(tier, nil)
		customerRepo.On("Save", ctx, c).Return(nil)

		resp, err := service.Update(ctx, c.ID, UpdateCustomerRequest{
			Username:    "budi2",
			MeterNumber: "MTR-002",
			Name:        "Budi Santoso",
			Address:     "Jl. Merdeka 2",
			TariffID:    tier.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "budi2", resp.Username)
		assert.Equal(t, "MTR-002", resp.MeterNumber)
		assert.Equal(t, originalHash, c.PasswordHash)
	})
}

func TestCustomerService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces credential when current matches", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		c := newTestCustomer(t, uuid.New())
		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		customerRepo.On("Save", ctx, c).Return(nil)

		err := service.ChangePassword(ctx, c.ID, ChangePasswordRequest{
			CurrentPassword: "secret123",
			NewPassword:     "newsecret",
		})

		require.NoError(t, err)
		assert.True(t, c.VerifyPassword("newsecret"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		c := newTestCustomer(t, uuid.New())
		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)

		err := service.ChangePassword(ctx, c.ID, ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newsecret",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PASSWORD_MISMATCH", domainErr.Code)
		assert.True(t, c.VerifyPassword("secret123"))
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("short fragments return empty without querying", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		resp, err := service.Search(ctx, "b")

		require.NoError(t, err)
		assert.Empty(t, resp)
		customerRepo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("queries with the result cap", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		c := newTestCustomer(t, uuid.New())
		customerRepo.On("SearchByName", ctx, "budi", 10).Return([]customer.Customer{*c}, nil)

		resp, err := service.Search(ctx, "budi")

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Budi Santoso", resp[0].Name)
	})
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the cascade", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		tariffRepo := new(MockTariffRepository)
		service := NewCustomerService(customerRepo, tariffRepo)

		id := uuid.New()
		customerRepo.On("DeleteCascade", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		customerRepo.AssertExpectations(t)
	})
}
