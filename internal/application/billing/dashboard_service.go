package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// DashboardService computes the aggregate statistics behind the admin
// and customer dashboards
type DashboardService struct {
	customerRepo customer.CustomerRepository
	usageRepo    billing.UsageRepository
	billRepo     billing.BillRepository
	paymentRepo  billing.PaymentRepository
	adminFee     decimal.Decimal
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(customerRepo customer.CustomerRepository, usageRepo billing.UsageRepository, billRepo billing.BillRepository, paymentRepo billing.PaymentRepository, adminFee decimal.Decimal) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		usageRepo:    usageRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		adminFee:     adminFee,
		now:          time.Now,
	}
}

// AdminStats returns the operational counters: customers, unpaid bills,
// this month's usage records, and payments collected today
func (s *DashboardService) AdminStats(ctx context.Context) (*AdminStatsResponse, error) {
	totalCustomers, err := s.customerRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	counts, err := s.billRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	usageThisMonth, err := s.usageRepo.CountInPeriod(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	paymentsToday, collectedToday, err := s.paymentRepo.CollectedBetween(ctx, midnight, midnight.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &AdminStatsResponse{
		TotalCustomers: totalCustomers,
		UnpaidBills:    counts.Unpaid,
		UsageThisMonth: usageThisMonth,
		PaymentsToday:  paymentsToday,
		CollectedToday: collectedToday,
	}, nil
}

// CustomerOverview returns a customer's portal dashboard: usage and
// payment totals, the current month's reading, and the latest unpaid
// bill with its amount owed
func (s *DashboardService) CustomerOverview(ctx context.Context, customerID uuid.UUID) (*CustomerDashboardResponse, error) {
	records, err := s.usageRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	totalPaid := decimal.Zero
	for i := range payments {
		totalPaid = totalPaid.Add(payments[i].TotalAmount)
	}

	unpaid, err := s.billRepo.FindByCustomerDetailed(ctx, customerID, billing.BillStatusUnpaid)
	if err != nil {
		return nil, err
	}

	resp := &CustomerDashboardResponse{
		UsageRecords: int64(len(records)),
		UnpaidBills:  int64(len(unpaid)),
		PaymentCount: int64(len(payments)),
		TotalPaid:    totalPaid,
	}

	now := s.now()
	current, err := s.usageRepo.FindByPeriod(ctx, customerID, int(now.Month()), now.Year())
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if current != nil {
		usage := ToUsageResponse(current)
		resp.CurrentUsage = &usage
	}

	// rows arrive newest period first
	if len(unpaid) > 0 {
		latest := ToBillResponse(&unpaid[0], s.adminFee)
		resp.LatestUnpaidBill = &latest
	}

	return resp, nil
}
