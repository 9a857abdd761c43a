package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

const bcryptCost = 10

// Role is the identity space a caller authenticated in
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// AdminUser is a utility-company administrator account.
// Customers carry their own credentials on the customer aggregate.
type AdminUser struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	Name         string
}

// NewAdminUser creates an administrator account
func NewAdminUser(username, password, name string) (*AdminUser, error) {
	if strings.TrimSpace(username) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "username is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "name is required")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "failed to hash password")
	}

	return &AdminUser{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.TrimSpace(username),
		PasswordHash:      string(hash),
		Name:              strings.TrimSpace(name),
	}, nil
}

// VerifyPassword checks a cleartext password against the stored hash
func (u *AdminUser) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
