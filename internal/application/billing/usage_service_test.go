package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

func newPortalCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("budi", "secret123", "MTR-001", "Budi Santoso", "Jl. Merdeka 1", uuid.New())
	require.NoError(t, err)
	return c
}

func TestUsageService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("records usage and derives a bill in one write", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		c := newPortalCustomer(t)
		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		usageRepo.On("ExistsByPeriod", ctx, c.ID, 1, 2024, uuid.Nil).Return(false, nil)
		usageRepo.On("CreateWithBill", ctx, mock.AnythingOfType("*billing.UsageRecord"), mock.AnythingOfType("*billing.Bill")).Return(nil)

		resp, err := service.Record(ctx, RecordUsageRequest{
			CustomerID:   c.ID,
			Month:        1,
			Year:         2024,
			StartReading: 100,
			EndReading:   150,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(50), resp.Consumption)

		bill := usageRepo.Calls[1].Arguments.Get(2).(*billing.Bill)
		assert.Equal(t, int64(50), bill.Consumption)
		assert.Equal(t, billing.BillStatusUnpaid, bill.Status)
		assert.Equal(t, resp.ID, bill.UsageID)
	})

	t.Run("rejects a duplicate period", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		c := newPortalCustomer(t)
		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		usageRepo.On("ExistsByPeriod", ctx, c.ID, 1, 2024, uuid.Nil).Return(true, nil)

		_, err := service.Record(ctx, RecordUsageRequest{
			CustomerID:   c.ID,
			Month:        1,
			Year:         2024,
			StartReading: 100,
			EndReading:   150,
		})

		assert.ErrorIs(t, err, billing.ErrPeriodAlreadyRecorded)
		usageRepo.AssertNotCalled(t, "CreateWithBill", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects end reading not above start", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		c := newPortalCustomer(t)
		customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		usageRepo.On("ExistsByPeriod", ctx, c.ID, 1, 2024, uuid.Nil).Return(false, nil)

		_, err := service.Record(ctx, RecordUsageRequest{
			CustomerID:   c.ID,
			Month:        1,
			Year:         2024,
			StartReading: 150,
			EndReading:   150,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "end reading must exceed start reading")
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		id := uuid.New()
		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Record(ctx, RecordUsageRequest{
			CustomerID:   id,
			Month:        1,
			Year:         2024,
			StartReading: 100,
			EndReading:   150,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUsageService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites the linked bill consumption", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		record, err := billing.NewUsageRecord(uuid.New(), 1, 2024, 100, 150)
		require.NoError(t, err)
		bill := billing.NewBillFromUsage(record)

		usageRepo.On("FindByID", ctx, record.ID).Return(record, nil)
		billRepo.On("FindByUsageID", ctx, record.ID).Return(bill, nil)
		usageRepo.On("UpdateWithBill", ctx, record, bill).Return(nil)

		resp, err := service.Update(ctx, record.ID, UpdateUsageRequest{
			StartReading: 100,
			EndReading:   180,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(80), resp.Consumption)
		assert.Equal(t, int64(80), bill.Consumption)
	})

	t.Run("keeps readings on validation failure", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		record, err := billing.NewUsageRecord(uuid.New(), 1, 2024, 100, 150)
		require.NoError(t, err)
		usageRepo.On("FindByID", ctx, record.ID).Return(record, nil)

		_, err = service.Update(ctx, record.ID, UpdateUsageRequest{
			StartReading: 200,
			EndReading:   150,
		})

		require.Error(t, err)
		assert.Equal(t, int64(150), record.EndReading)
		usageRepo.AssertNotCalled(t, "UpdateWithBill", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUsageService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the cascade", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		billRepo := new(MockBillRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewUsageService(usageRepo, billRepo, customerRepo)

		id := uuid.New()
		usageRepo.On("DeleteCascade", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		usageRepo.AssertExpectations(t)
	})
}
