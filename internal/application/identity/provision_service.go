package identity

import (
	"context"
	"errors"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/identity"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// CreateAdminRequest carries the fields for provisioning an administrator
type CreateAdminRequest struct {
	Username string
	Password string
	Name     string
}

// ProvisionService creates administrator accounts. Admins are provisioned
// from the CLI, not over HTTP.
type ProvisionService struct {
	adminRepo identity.AdminUserRepository
}

// NewProvisionService creates a new ProvisionService
func NewProvisionService(adminRepo identity.AdminUserRepository) *ProvisionService {
	return &ProvisionService{adminRepo: adminRepo}
}

// CreateAdmin registers a new administrator account
func (s *ProvisionService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*UserInfo, error) {
	_, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, shared.NewDomainError("CONFLICT", "username is already taken")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	u, err := identity.NewAdminUser(req.Username, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.adminRepo.Save(ctx, u); err != nil {
		return nil, err
	}

	return &UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     identity.RoleAdmin,
	}, nil
}
