package identity

import (
	"context"

	"github.com/google/uuid"
)

// AdminUserRepository defines the interface for administrator persistence
type AdminUserRepository interface {
	// FindByID finds an administrator by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)

	// FindByUsername finds an administrator by login handle
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)

	// Save creates or updates an administrator
	Save(ctx context.Context, u *AdminUser) error
}
