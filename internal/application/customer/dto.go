package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
)

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	Username    string    `json:"username" binding:"required,min=3,max=64"`
	Password    string    `json:"password" binding:"required,min=6,max=72"`
	MeterNumber string    `json:"meter_number" binding:"required,min=1,max=32"`
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	Address     string    `json:"address" binding:"required,min=1,max=255"`
	TariffID    uuid.UUID `json:"tariff_id" binding:"required"`
}

// UpdateCustomerRequest represents a request to update a customer.
// The credential is never writable through this path.
type UpdateCustomerRequest struct {
	Username    string    `json:"username" binding:"required,min=3,max=64"`
	MeterNumber string    `json:"meter_number" binding:"required,min=1,max=32"`
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	Address     string    `json:"address" binding:"required,min=1,max=255"`
	TariffID    uuid.UUID `json:"tariff_id" binding:"required"`
}

// ChangePasswordRequest represents a self-service password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=72"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	MeterNumber string    `json:"meter_number"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	TariffID    uuid.UUID `json:"tariff_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Username:    c.Username,
		MeterNumber: c.MeterNumber,
		Name:        c.Name,
		Address:     c.Address,
		TariffID:    c.TariffID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
