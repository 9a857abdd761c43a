package customer

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// bcryptCost is the work factor used when hashing customer passwords
const bcryptCost = 10

const minPasswordLength = 6

// Customer is an end-customer of the utility: login identity, meter
// installation data, and the tariff tier the customer bills under.
type Customer struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	MeterNumber  string
	Name         string
	Address      string
	TariffID     uuid.UUID
}

// NewCustomer creates a customer, hashing the supplied cleartext password
func NewCustomer(username, password, meterNumber, name, address string, tariffID uuid.UUID) (*Customer, error) {
	if err := validateRequired(username, meterNumber, name, address, tariffID); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.TrimSpace(username),
		PasswordHash:      hash,
		MeterNumber:       strings.TrimSpace(meterNumber),
		Name:              strings.TrimSpace(name),
		Address:           strings.TrimSpace(address),
		TariffID:          tariffID,
	}, nil
}

// UpdateProfile updates everything except the credential.
// Password changes go through ChangePassword only.
func (c *Customer) UpdateProfile(username, meterNumber, name, address string, tariffID uuid.UUID) error {
	if err := validateRequired(username, meterNumber, name, address, tariffID); err != nil {
		return err
	}

	c.Username = strings.TrimSpace(username)
	c.MeterNumber = strings.TrimSpace(meterNumber)
	c.Name = strings.TrimSpace(name)
	c.Address = strings.TrimSpace(address)
	c.TariffID = tariffID
	c.IncrementVersion()
	return nil
}

// VerifyPassword checks a cleartext password against the stored hash
func (c *Customer) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// ChangePassword verifies the current password before replacing the hash
func (c *Customer) ChangePassword(currentPassword, newPassword string) error {
	if !c.VerifyPassword(currentPassword) {
		return shared.NewDomainError("PASSWORD_MISMATCH", "old password does not match")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	c.IncrementVersion()
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("INTERNAL_ERROR", "failed to hash password")
	}
	return string(hash), nil
}

func validateRequired(username, meterNumber, name, address string, tariffID uuid.UUID) error {
	if strings.TrimSpace(username) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "username is required")
	}
	if strings.TrimSpace(meterNumber) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "meter number is required")
	}
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "name is required")
	}
	if strings.TrimSpace(address) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "address is required")
	}
	if tariffID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_ERROR", "tariff tier is required")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("VALIDATION_ERROR", "password must be at least 6 characters")
	}
	return nil
}
