package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByUsername finds a customer by login handle
	FindByUsername(ctx context.Context, username string) (*Customer, error)

	// FindAll finds customers matching the filter, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// SearchByName does a case-insensitive substring match on the display
	// name, returning at most limit rows ordered by name
	SearchByName(ctx context.Context, fragment string, limit int) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, c *Customer) error

	// DeleteCascade removes the customer together with all of its payments,
	// bills, and usage records in one transaction, reverse-dependency order
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByTariff counts customers assigned to a tariff tier
	CountByTariff(ctx context.Context, tariffID uuid.UUID) (int64, error)

	// ExistsByUsername checks if a customer with the given username exists,
	// excluding the given ID (uuid.Nil excludes nothing)
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
}
