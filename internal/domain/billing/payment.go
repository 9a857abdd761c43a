package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// Payment records a bill being settled. Created only inside the pay-bill
// transaction; immutable afterwards, removed only by cascade.
type Payment struct {
	shared.BaseAggregateRoot
	BillID      uuid.UUID
	CustomerID  uuid.UUID
	MonthPaid   int // calendar month the payment occurred, not the billed period
	AdminFee    decimal.Decimal
	TotalAmount decimal.Decimal
	PaidAt      time.Time
}

// NewPayment creates a payment record for a settled bill
func NewPayment(billID, customerID uuid.UUID, monthPaid int, adminFee, totalAmount decimal.Decimal) (*Payment, error) {
	if monthPaid < 1 || monthPaid > 12 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "month paid must be between 1 and 12")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "total amount must not be negative")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BillID:            billID,
		CustomerID:        customerID,
		MonthPaid:         monthPaid,
		AdminFee:          adminFee,
		TotalAmount:       totalAmount,
		PaidAt:            time.Now(),
	}, nil
}
