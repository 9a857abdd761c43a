package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

func mustNewTariff(t *testing.T, capacity int, rate string) *catalog.TariffTier {
	t.Helper()
	tier, err := catalog.NewTariffTier(capacity, decimal.RequireFromString(rate))
	require.NoError(t, err)
	return tier
}

func TestGormTariffRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	t.Run("saves and reloads a tier", func(t *testing.T) {
		tier := mustNewTariff(t, 900, "1352.00")

		require.NoError(t, repo.Save(ctx, tier))

		found, err := repo.FindByID(ctx, tier.ID)
		require.NoError(t, err)
		assert.Equal(t, tier.ID, found.ID)
		assert.Equal(t, 900, found.Capacity)
		assert.True(t, found.RatePerKWH.Equal(decimal.RequireFromString("1352.00")))
	})

	t.Run("updates an existing tier", func(t *testing.T) {
		tier := mustNewTariff(t, 1300, "1444.70")
		require.NoError(t, repo.Save(ctx, tier))

		require.NoError(t, tier.Update(1300, decimal.RequireFromString("1500.00")))
		require.NoError(t, repo.Save(ctx, tier))

		found, err := repo.FindByID(ctx, tier.ID)
		require.NoError(t, err)
		assert.True(t, found.RatePerKWH.Equal(decimal.RequireFromString("1500.00")))
	})
}

func TestGormTariffRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTariffRepository_FindByCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 2200, "1699.53")
	require.NoError(t, repo.Save(ctx, tier))

	t.Run("finds tier by capacity", func(t *testing.T) {
		found, err := repo.FindByCapacity(ctx, 2200)
		require.NoError(t, err)
		assert.Equal(t, tier.ID, found.ID)
	})

	t.Run("returns ErrNotFound for unknown capacity", func(t *testing.T) {
		_, err := repo.FindByCapacity(ctx, 450)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTariffRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustNewTariff(t, 2200, "1699.53")))
	require.NoError(t, repo.Save(ctx, mustNewTariff(t, 900, "1352.00")))
	require.NoError(t, repo.Save(ctx, mustNewTariff(t, 1300, "1444.70")))

	t.Run("orders by capacity ascending", func(t *testing.T) {
		tiers, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, tiers, 3)
		assert.Equal(t, 900, tiers[0].Capacity)
		assert.Equal(t, 1300, tiers[1].Capacity)
		assert.Equal(t, 2200, tiers[2].Capacity)
	})

	t.Run("counts all tiers", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestGormTariffRepository_ExistsByCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	tier := mustNewTariff(t, 900, "1352.00")
	require.NoError(t, repo.Save(ctx, tier))

	t.Run("reports existing capacity", func(t *testing.T) {
		exists, err := repo.ExistsByCapacity(ctx, 900, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excludes the given ID", func(t *testing.T) {
		exists, err := repo.ExistsByCapacity(ctx, 900, tier.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reports missing capacity", func(t *testing.T) {
		exists, err := repo.ExistsByCapacity(ctx, 1300, uuid.Nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormTariffRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTariffRepository(db)
	ctx := context.Background()

	t.Run("deletes existing tier", func(t *testing.T) {
		tier := mustNewTariff(t, 900, "1352.00")
		require.NoError(t, repo.Save(ctx, tier))

		require.NoError(t, repo.Delete(ctx, tier.ID))

		_, err := repo.FindByID(ctx, tier.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown tier", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
