package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
)

// UsageRecordModel is the persistence model for usage records.
// The composite unique index closes the duplicate-period race at the
// storage layer.
type UsageRecordModel struct {
	AggregateModel
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_usage_customer_period"`
	Month        int       `gorm:"not null;uniqueIndex:idx_usage_customer_period"`
	Year         int       `gorm:"not null;uniqueIndex:idx_usage_customer_period"`
	StartReading int64     `gorm:"not null"`
	EndReading   int64     `gorm:"not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name
func (UsageRecordModel) TableName() string {
	return "usage_records"
}

// ToDomain converts the model to a domain usage record
func (m *UsageRecordModel) ToDomain() *billing.UsageRecord {
	return &billing.UsageRecord{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Month:             m.Month,
		Year:              m.Year,
		StartReading:      m.StartReading,
		EndReading:        m.EndReading,
	}
}

// UsageRecordModelFromDomain creates a model from a domain usage record
func UsageRecordModelFromDomain(u *billing.UsageRecord) *UsageRecordModel {
	m := &UsageRecordModel{
		CustomerID:   u.CustomerID,
		Month:        u.Month,
		Year:         u.Year,
		StartReading: u.StartReading,
		EndReading:   u.EndReading,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}

// BillModel is the persistence model for bills
type BillModel struct {
	AggregateModel
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UsageID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Month       int       `gorm:"not null"`
	Year        int       `gorm:"not null"`
	Consumption int64     `gorm:"not null"`
	Status      string    `gorm:"not null;index;size:16"`

	Customer *CustomerModel    `gorm:"foreignKey:CustomerID"`
	Usage    *UsageRecordModel `gorm:"foreignKey:UsageID"`
	Payments []PaymentModel    `gorm:"foreignKey:BillID"`
}

// TableName specifies the table name
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the model to a domain bill
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		UsageID:           m.UsageID,
		Month:             m.Month,
		Year:              m.Year,
		Consumption:       m.Consumption,
		Status:            billing.BillStatus(m.Status),
	}
}

// ToDetail converts the model with preloaded relations to a BillDetail
func (m *BillModel) ToDetail() billing.BillDetail {
	detail := billing.BillDetail{
		Bill:       *m.ToDomain(),
		HasPayment: len(m.Payments) > 0,
	}
	if m.Customer != nil {
		detail.CustomerName = m.Customer.Name
		detail.MeterNumber = m.Customer.MeterNumber
		if m.Customer.Tariff != nil {
			detail.Capacity = m.Customer.Tariff.Capacity
			detail.RatePerKWH = m.Customer.Tariff.RatePerKWH
		}
	}
	if m.Usage != nil {
		detail.StartReading = m.Usage.StartReading
		detail.EndReading = m.Usage.EndReading
	}
	return detail
}

// BillModelFromDomain creates a model from a domain bill
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{
		CustomerID:  b.CustomerID,
		UsageID:     b.UsageID,
		Month:       b.Month,
		Year:        b.Year,
		Consumption: b.Consumption,
		Status:      string(b.Status),
	}
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	return m
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	AggregateModel
	BillID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthPaid   int             `gorm:"not null"`
	AdminFee    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaidAt      time.Time       `gorm:"not null;index"`

	Bill *BillModel `gorm:"foreignKey:BillID"`
}

// TableName specifies the table name
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BillID:            m.BillID,
		CustomerID:        m.CustomerID,
		MonthPaid:         m.MonthPaid,
		AdminFee:          m.AdminFee,
		TotalAmount:       m.TotalAmount,
		PaidAt:            m.PaidAt,
	}
}

// ToDetail converts the model with its preloaded bill to a PaymentDetail
func (m *PaymentModel) ToDetail() billing.PaymentDetail {
	detail := billing.PaymentDetail{Payment: *m.ToDomain()}
	if m.Bill != nil {
		detail.BillMonth = m.Bill.Month
		detail.BillYear = m.Bill.Year
	}
	return detail
}

// PaymentModelFromDomain creates a model from a domain payment
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{
		BillID:      p.BillID,
		CustomerID:  p.CustomerID,
		MonthPaid:   p.MonthPaid,
		AdminFee:    p.AdminFee,
		TotalAmount: p.TotalAmount,
		PaidAt:      p.PaidAt,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
