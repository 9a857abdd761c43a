package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// TariffTier maps a power capacity (VA) to a price per kWh.
// Tiers are shared read-only reference data; many customers bill under one tier.
type TariffTier struct {
	shared.BaseAggregateRoot
	Capacity   int             // power capacity in VA, unique across tiers
	RatePerKWH decimal.Decimal // price per kWh in minor currency units
}

// NewTariffTier creates a tariff tier with validation
func NewTariffTier(capacity int, ratePerKWH decimal.Decimal) (*TariffTier, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if err := validateRate(ratePerKWH); err != nil {
		return nil, err
	}

	return &TariffTier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Capacity:          capacity,
		RatePerKWH:        ratePerKWH,
	}, nil
}

// Update replaces capacity and rate after validation
func (t *TariffTier) Update(capacity int, ratePerKWH decimal.Decimal) error {
	if err := validateCapacity(capacity); err != nil {
		return err
	}
	if err := validateRate(ratePerKWH); err != nil {
		return err
	}

	t.Capacity = capacity
	t.RatePerKWH = ratePerKWH
	t.IncrementVersion()
	return nil
}

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "power capacity must be a positive number of VA")
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return shared.NewDomainError("VALIDATION_ERROR", "rate per kWh must be positive")
	}
	return nil
}
