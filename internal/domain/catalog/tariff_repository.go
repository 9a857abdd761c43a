package catalog

import (
	"context"

	"github.com/google/uuid"
)

// TariffRepository defines the interface for tariff tier persistence
type TariffRepository interface {
	// FindByID finds a tariff tier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*TariffTier, error)

	// FindByCapacity finds a tariff tier by its power capacity
	FindByCapacity(ctx context.Context, capacity int) (*TariffTier, error)

	// FindAll returns all tariff tiers ordered by capacity ascending
	FindAll(ctx context.Context) ([]TariffTier, error)

	// Save creates or updates a tariff tier
	Save(ctx context.Context, tier *TariffTier) error

	// Delete deletes a tariff tier
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByCapacity checks if a tier with the given capacity exists,
	// excluding the given ID (uuid.Nil excludes nothing)
	ExistsByCapacity(ctx context.Context, capacity int, excludeID uuid.UUID) (bool, error)

	// Count counts all tariff tiers
	Count(ctx context.Context) (int64, error)
}
