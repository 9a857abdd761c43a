package models

import (
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
)

// TariffTierModel is the persistence model for tariff tiers
type TariffTierModel struct {
	AggregateModel
	Capacity   int             `gorm:"not null;uniqueIndex"`
	RatePerKWH decimal.Decimal `gorm:"type:decimal(18,2);not null;column:rate_per_kwh"`
}

// TableName specifies the table name
func (TariffTierModel) TableName() string {
	return "tariff_tiers"
}

// ToDomain converts the model to a domain tariff tier
func (m *TariffTierModel) ToDomain() *catalog.TariffTier {
	return &catalog.TariffTier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Capacity:          m.Capacity,
		RatePerKWH:        m.RatePerKWH,
	}
}

// TariffTierModelFromDomain creates a model from a domain tariff tier
func TariffTierModelFromDomain(t *catalog.TariffTier) *TariffTierModel {
	m := &TariffTierModel{
		Capacity:   t.Capacity,
		RatePerKWH: t.RatePerKWH,
	}
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	return m
}
