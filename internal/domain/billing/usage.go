package billing

import (
	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// UsageRecord is one meter-reading pair for one customer for one billing
// period. It is the source of truth for energy consumed; the linked Bill
// snapshots the derived consumption.
type UsageRecord struct {
	shared.BaseAggregateRoot
	CustomerID   uuid.UUID
	Month        int
	Year         int
	StartReading int64
	EndReading   int64
}

// NewUsageRecord creates a usage record with validation
func NewUsageRecord(customerID uuid.UUID, month, year int, startReading, endReading int64) (*UsageRecord, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "customer is required")
	}
	if err := ValidatePeriod(month, year); err != nil {
		return nil, err
	}
	if err := validateReadings(startReading, endReading); err != nil {
		return nil, err
	}

	return &UsageRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Month:             month,
		Year:              year,
		StartReading:      startReading,
		EndReading:        endReading,
	}, nil
}

// UpdateReadings replaces the meter readings after validation.
// The caller must rewrite the linked bill's consumption in the same
// transaction.
func (u *UsageRecord) UpdateReadings(startReading, endReading int64) error {
	if err := validateReadings(startReading, endReading); err != nil {
		return err
	}
	u.StartReading = startReading
	u.EndReading = endReading
	u.IncrementVersion()
	return nil
}

// Consumption returns the energy consumed in kWh
func (u *UsageRecord) Consumption() int64 {
	return u.EndReading - u.StartReading
}

// ValidatePeriod checks a (month, year) billing period
func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return shared.NewDomainError("VALIDATION_ERROR", "month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return shared.NewDomainError("VALIDATION_ERROR", "year is out of range")
	}
	return nil
}

func validateReadings(startReading, endReading int64) error {
	if startReading < 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "start reading must not be negative")
	}
	if endReading <= startReading {
		return shared.NewDomainError("VALIDATION_ERROR", "end reading must exceed start reading")
	}
	return nil
}
