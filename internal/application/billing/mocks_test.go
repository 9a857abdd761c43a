package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// MockUsageRepository is a mock implementation of UsageRepository
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.UsageRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.UsageRecord), args.Error(1)
}

func (m *MockUsageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.UsageDetail, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.UsageDetail), args.Error(1)
}

func (m *MockUsageRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.UsageRecord, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]billing.UsageRecord), args.Error(1)
}

func (m *MockUsageRepository) FindByPeriod(ctx context.Context, customerID uuid.UUID, month, year int) (*billing.UsageRecord, error) {
	args := m.Called(ctx, customerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.UsageRecord), args.Error(1)
}

func (m *MockUsageRepository) ExistsByPeriod(ctx context.Context, customerID uuid.UUID, month, year int, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customerID, month, year, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsageRepository) CreateWithBill(ctx context.Context, u *billing.UsageRecord, b *billing.Bill) error {
	args := m.Called(ctx, u, b)
	return args.Error(0)
}

func (m *MockUsageRepository) UpdateWithBill(ctx context.Context, u *billing.UsageRecord, b *billing.Bill) error {
	args := m.Called(ctx, u, b)
	return args.Error(0)
}

func (m *MockUsageRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUsageRepository) CountInPeriod(ctx context.Context, month, year int) (int64, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillRepository is a mock implementation of BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByUsageID(ctx context.Context, usageID uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, usageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAllDetailed(ctx context.Context, status billing.BillStatus) ([]billing.BillDetail, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]billing.BillDetail), args.Error(1)
}

func (m *MockBillRepository) FindByCustomerDetailed(ctx context.Context, customerID uuid.UUID, status billing.BillStatus) ([]billing.BillDetail, error) {
	args := m.Called(ctx, customerID, status)
	return args.Get(0).([]billing.BillDetail), args.Error(1)
}

func (m *MockBillRepository) Save(ctx context.Context, b *billing.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) Pay(ctx context.Context, billID uuid.UUID, p *billing.Payment) error {
	args := m.Called(ctx, billID, p)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillRepository) CountByStatus(ctx context.Context) (billing.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(billing.StatusCounts), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.PaymentDetail, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]billing.PaymentDetail), args.Error(1)
}

func (m *MockPaymentRepository) CollectedBetween(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Get(1).(decimal.Decimal), args.Error(2)
}

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
