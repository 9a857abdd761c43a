package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
)

// CreateTariffRequest represents a request to create a tariff tier
type CreateTariffRequest struct {
	Capacity   int             `json:"capacity" binding:"required,gt=0"`
	RatePerKWH decimal.Decimal `json:"rate_per_kwh" binding:"required"`
}

// UpdateTariffRequest represents a request to update a tariff tier
type UpdateTariffRequest struct {
	Capacity   int             `json:"capacity" binding:"required,gt=0"`
	RatePerKWH decimal.Decimal `json:"rate_per_kwh" binding:"required"`
}

// TariffResponse represents a tariff tier in API responses
type TariffResponse struct {
	ID         uuid.UUID       `json:"id"`
	Capacity   int             `json:"capacity"`
	RatePerKWH decimal.Decimal `json:"rate_per_kwh"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToTariffResponse converts a domain tariff tier to a response
func ToTariffResponse(t *catalog.TariffTier) TariffResponse {
	return TariffResponse{
		ID:         t.ID,
		Capacity:   t.Capacity,
		RatePerKWH: t.RatePerKWH,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
