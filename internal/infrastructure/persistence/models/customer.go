package models

import (
	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	AggregateModel
	Username     string    `gorm:"not null;uniqueIndex;size:64"`
	PasswordHash string    `gorm:"not null;size:100"`
	MeterNumber  string    `gorm:"not null;size:32"`
	Name         string    `gorm:"not null;index;size:100"`
	Address      string    `gorm:"not null;size:255"`
	TariffID     uuid.UUID `gorm:"type:uuid;not null;index"`

	Tariff *TariffTierModel `gorm:"foreignKey:TariffID"`
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		MeterNumber:       m.MeterNumber,
		Name:              m.Name,
		Address:           m.Address,
		TariffID:          m.TariffID,
	}
}

// CustomerModelFromDomain creates a model from a domain customer
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		MeterNumber:  c.MeterNumber,
		Name:         c.Name,
		Address:      c.Address,
		TariffID:     c.TariffID,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
