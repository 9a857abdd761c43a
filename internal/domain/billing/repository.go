package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// Billing-specific domain errors
var (
	ErrPeriodAlreadyRecorded = shared.NewDomainError("PERIOD_ALREADY_RECORDED", "usage for this period has already been recorded")
	ErrBillAlreadyPaid       = shared.NewDomainError("BILL_ALREADY_PAID", "bill has already been paid")
)

// UsageDetail is a usage record joined with its customer for admin listings
type UsageDetail struct {
	UsageRecord
	CustomerName string
	MeterNumber  string
}

// BillDetail is a bill joined with customer, tariff, and usage data.
// All read endpoints share this one join shape.
type BillDetail struct {
	Bill
	CustomerName string
	MeterNumber  string
	Capacity     int
	RatePerKWH   decimal.Decimal
	StartReading int64
	EndReading   int64
	HasPayment   bool
}

// PaymentDetail is a payment joined with its bill's billed period
type PaymentDetail struct {
	Payment
	BillMonth int
	BillYear  int
}

// StatusCounts are aggregate bill counts over the unfiltered full set
type StatusCounts struct {
	Unpaid int64 `json:"unpaid"`
	Paid   int64 `json:"paid"`
	Total  int64 `json:"total"`
}

// UsageRepository defines the interface for usage record persistence.
// Multi-step writes (usage+bill) run inside one storage transaction.
type UsageRepository interface {
	// FindByID finds a usage record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*UsageRecord, error)

	// FindAll finds usage records joined with customer data, ordered by
	// (year desc, month desc)
	FindAll(ctx context.Context, filter shared.Filter) ([]UsageDetail, error)

	// FindByCustomer finds a customer's usage records, newest period first
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]UsageRecord, error)

	// FindByPeriod finds a customer's usage record for one billing period
	FindByPeriod(ctx context.Context, customerID uuid.UUID, month, year int) (*UsageRecord, error)

	// ExistsByPeriod checks for a usage record with the given
	// (customer, month, year), excluding the given ID
	ExistsByPeriod(ctx context.Context, customerID uuid.UUID, month, year int, excludeID uuid.UUID) (bool, error)

	// CreateWithBill inserts the usage record and its derived bill
	// atomically; a failure of either insert rolls back both
	CreateWithBill(ctx context.Context, u *UsageRecord, b *Bill) error

	// UpdateWithBill saves the usage record and rewrites the linked
	// bill's consumption in the same transaction
	UpdateWithBill(ctx context.Context, u *UsageRecord, b *Bill) error

	// DeleteCascade removes the usage record, its bill, and that bill's
	// payments in one transaction, reverse-dependency order
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// CountInPeriod counts usage records recorded for a billing period
	CountInPeriod(ctx context.Context, month, year int) (int64, error)
}

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	// FindByID finds a bill by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)

	// FindByUsageID finds the bill derived from a usage record
	FindByUsageID(ctx context.Context, usageID uuid.UUID) (*Bill, error)

	// FindAllDetailed finds bills joined with customer, tariff, and usage
	// data, ordered by (year desc, month desc). An empty status means all.
	FindAllDetailed(ctx context.Context, status BillStatus) ([]BillDetail, error)

	// FindByCustomerDetailed finds one customer's bills with join data
	FindByCustomerDetailed(ctx context.Context, customerID uuid.UUID, status BillStatus) ([]BillDetail, error)

	// Save creates or updates a bill
	Save(ctx context.Context, b *Bill) error

	// Pay atomically flips the bill to paid and inserts the payment row.
	// The status flip is a conditional update on (id, status=unpaid);
	// losing the race yields ErrBillAlreadyPaid and no payment row.
	Pay(ctx context.Context, billID uuid.UUID, p *Payment) error

	// DeleteCascade removes the bill and its payments in one transaction
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// CountByStatus returns aggregate counts over all bills
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// PaymentRepository defines the interface for payment reads.
// Payments are written only through BillRepository.Pay.
type PaymentRepository interface {
	// FindByCustomer finds a customer's payments, newest first, each
	// joined with its bill's billed period
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]PaymentDetail, error)

	// CollectedBetween returns the count and sum of payments whose
	// timestamp falls within [from, to)
	CollectedBetween(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error)
}
