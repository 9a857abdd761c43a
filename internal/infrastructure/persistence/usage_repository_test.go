package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

func TestGormUsageRepository_CreateWithBill(t *testing.T) {
	db := setupTestDB(t)
	usageRepo := NewGormUsageRepository(db)
	billRepo := NewGormBillRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, NewGormTariffRepository(db).Save(ctx, tier))
	c := mustNewCustomer(t, db, "budi", "Budi Santoso", tier.ID)

	t.Run("creates usage record and unpaid bill together", func(t *testing.T) {
		record, bill := mustNewUsageWithBill(t, c.ID, 1, 2024, 100, 150)
		require.NoError(t, usageRepo.CreateWithBill(ctx, record, bill))

		foundUsage, err := usageRepo.FindByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(50), foundUsage.Consumption())

		foundBill, err := billRepo.FindByUsageID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, foundBill.UsageID)
		assert.Equal(t, int64(50), foundBill.Consumption)
		assert.Equal(t, billing.BillStatusUnpaid, foundBill.Status)
	})

	t.Run("unique index rejects a duplicate period", func(t *testing.T) {
		record, bill := mustNewUsageWithBill(t, c.ID, 1, 2024, 150, 200)
		err := usageRepo.CreateWithBill(ctx, record, bill)
		assert.ErrorIs(t, err, billing.ErrPeriodAlreadyRecorded)

		// the rolled-back insert leaves no orphan bill behind
		_, err = billRepo.FindByUsageID(ctx, record.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUsageRepository_UpdateWithBill(t *testing.T) {
	db := setupTestDB(t)
	usageRepo := NewGormUsageRepository(db)
	billRepo := NewGormBillRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, NewGormTariffRepository(db).Save(ctx, tier))
	c := mustNewCustomer(t, db, "budi", "Budi Santoso", tier.ID)

	t.Run("rewrites the bill consumption with the readings", func(t *testing.T) {
		record, bill := mustNewUsageWithBill(t, c.ID, 1, 2024, 100, 150)
		require.NoError(t, usageRepo.CreateWithBill(ctx, record, bill))

		require.NoError(t, record.UpdateReadings(100, 180))
		bill.SyncConsumption(record)
		require.NoError(t, usageRepo.UpdateWithBill(ctx, record, bill))

		foundBill, err := billRepo.FindByUsageID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(80), foundBill.Consumption)
	})
}

func TestGormUsageRepository_ExistsByPeriod(t *testing.T) {
	db := setupTestDB(t)
	usageRepo := NewGormUsageRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, NewGormTariffRepository(db).Save(ctx, tier))
	c := mustNewCustomer(t, db, "budi", "Budi Santoso", tier.ID)

	record, bill := mustNewUsageWithBill(t, c.ID, 1, 2024, 100, 150)
	require.NoError(t, usageRepo.CreateWithBill(ctx, record, bill))

	t.Run("reports recorded period", func(t *testing.T) {
		exists, err := usageRepo.ExistsByPeriod(ctx, c.ID, 1, 2024, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excludes the record itself", func(t *testing.T) {
		exists, err := usageRepo.ExistsByPeriod(ctx, c.ID, 1, 2024, record.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reports missing period", func(t *testing.T) {
		exists, err := usageRepo.ExistsByPeriod(ctx, c.ID, 2, 2024, uuid.Nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormUsageRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	usageRepo := NewGormUsageRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, NewGormTariffRepository(db).Save(ctx, tier))
	c := mustNewCustomer(t, db, "budi", "Budi Santoso", tier.ID)

	recJan, billJan := mustNewUsageWithBill(t, c.ID, 1, 2024, 100, 150)
	require.NoError(t, usageRepo.CreateWithBill(ctx, recJan, billJan))
	recDec, billDec := mustNewUsageWithBill(t, c.ID, 12, 2023, 50, 100)
	require.NoError(t, usageRepo.CreateWithBill(ctx, recDec, billDec))

	t.Run("joins customer data, newest period first", func(t *testing.T) {
		details, err := usageRepo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, 1, details[0].Month)
		assert.Equal(t, 2024, details[0].Year)
		assert.Equal(t, "Budi Santoso", details[0].CustomerName)
		assert.NotEmpty(t, details[0].MeterNumber)
		assert.Equal(t, 12, details[1].Month)
	})

	t.Run("counts records in a period", func(t *testing.T) {
		count, err := usageRepo.CountInPeriod(ctx, 1, 2024)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormUsageRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	usageRepo := NewGormUsageRepository(db)
	billRepo := NewGormBillRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, NewGormTariffRepository(db).Save(ctx, tier))
	c := mustNewCustomer(t, db, "budi", "Budi Santoso", tier.ID)

	t.Run("removes usage record, bill, and payments", func(t *testing.T) {
		record, bill := mustNewUsageWithBill(t, c.ID, 1, 2024, 100, 150)
		require.NoError(t, usageRepo.CreateWithBill(ctx, record, bill))
		require.NoError(t, billRepo.Pay(ctx, bill.ID, mustNewPayment(t, bill, c.ID)))

		require.NoError(t, usageRepo.DeleteCascade(ctx, record.ID))

		_, err := usageRepo.FindByID(ctx, record.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = billRepo.FindByID(ctx, bill.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		payments, err := NewGormPaymentRepository(db).FindByCustomer(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})

	t.Run("returns ErrNotFound for unknown record", func(t *testing.T) {
		err := usageRepo.DeleteCascade(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
