package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// BillStatus is the payment status of a bill
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "unpaid"
	BillStatusPaid   BillStatus = "paid"
)

// IsValid checks whether the status is one of the known values
func (s BillStatus) IsValid() bool {
	return s == BillStatusUnpaid || s == BillStatusPaid
}

// Bill is the payable obligation derived from exactly one usage record.
// Consumption is snapshotted here and is the authoritative value; usage
// updates rewrite it transactionally.
type Bill struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID
	UsageID     uuid.UUID
	Month       int
	Year        int
	Consumption int64
	Status      BillStatus
}

// NewBillFromUsage derives an unpaid bill from a usage record.
// No independent validation: the usage record already guarantees a
// positive consumption and a valid period.
func NewBillFromUsage(u *UsageRecord) *Bill {
	return &Bill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        u.CustomerID,
		UsageID:           u.ID,
		Month:             u.Month,
		Year:              u.Year,
		Consumption:       u.Consumption(),
		Status:            BillStatusUnpaid,
	}
}

// SetStatus is the admin override: it moves the bill between unpaid and
// paid in either direction and never touches payments
func (b *Bill) SetStatus(status BillStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "status must be unpaid or paid")
	}
	b.Status = status
	b.IncrementVersion()
	return nil
}

// SyncConsumption overwrites the snapshotted consumption from the usage
// record, leaving the payment status untouched
func (b *Bill) SyncConsumption(u *UsageRecord) {
	b.Consumption = u.Consumption()
	b.IncrementVersion()
}

// IsPaid reports whether the bill has been settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// AmountOwed computes the payable amount for a bill:
// consumption × rate per kWh + the fixed admin fee.
// Pure derivation, shared by the payment path and the display layers.
func AmountOwed(consumption int64, ratePerKWH, adminFee decimal.Decimal) decimal.Decimal {
	return ratePerKWH.Mul(decimal.NewFromInt(consumption)).Add(adminFee)
}
