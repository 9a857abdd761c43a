package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/catalog"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// BillService handles the bill ledger and payment recording
type BillService struct {
	billRepo     billing.BillRepository
	customerRepo customer.CustomerRepository
	tariffRepo   catalog.TariffRepository
	adminFee     decimal.Decimal
}

// NewBillService creates a new BillService. adminFee is the configured
// per-bill surcharge.
func NewBillService(billRepo billing.BillRepository, customerRepo customer.CustomerRepository, tariffRepo catalog.TariffRepository, adminFee decimal.Decimal) *BillService {
	return &BillService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		tariffRepo:   tariffRepo,
		adminFee:     adminFee,
	}
}

// List returns bills matching the status filter plus aggregate counts
// computed over the unfiltered full set
func (s *BillService) List(ctx context.Context, status string) (*BillListResponse, error) {
	billStatus, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	details, err := s.billRepo.FindAllDetailed(ctx, billStatus)
	if err != nil {
		return nil, err
	}

	counts, err := s.billRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	bills := make([]BillResponse, len(details))
	for i := range details {
		bills[i] = ToBillResponse(&details[i], s.adminFee)
	}

	return &BillListResponse{Bills: bills, Counts: counts}, nil
}

// ListForCustomer returns one customer's bills with the status filter
func (s *BillService) ListForCustomer(ctx context.Context, customerID uuid.UUID, status string) ([]BillResponse, error) {
	billStatus, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	details, err := s.billRepo.FindByCustomerDetailed(ctx, customerID, billStatus)
	if err != nil {
		return nil, err
	}

	bills := make([]BillResponse, len(details))
	for i := range details {
		bills[i] = ToBillResponse(&details[i], s.adminFee)
	}
	return bills, nil
}

// SetStatus is the admin override on a bill's payment status. It never
// creates or removes a payment row.
func (s *BillService) SetStatus(ctx context.Context, billID uuid.UUID, status string) error {
	billStatus := billing.BillStatus(status)
	if !billStatus.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "status must be unpaid or paid")
	}

	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		return err
	}

	if err := bill.SetStatus(billStatus); err != nil {
		return err
	}

	return s.billRepo.Save(ctx, bill)
}

// Pay settles a bill: computes the amount owed from the customer's
// tariff, flips the status, and records the payment atomically. A bill
// already paid is rejected.
func (s *BillService) Pay(ctx context.Context, billID uuid.UUID, monthPaid int) (*PaymentResponse, error) {
	return s.pay(ctx, billID, monthPaid, uuid.Nil)
}

// PayOwn is the portal path: the caller may only settle a bill they own
func (s *BillService) PayOwn(ctx context.Context, callerID, billID uuid.UUID, monthPaid int) (*PaymentResponse, error) {
	return s.pay(ctx, billID, monthPaid, callerID)
}

func (s *BillService) pay(ctx context.Context, billID uuid.UUID, monthPaid int, callerID uuid.UUID) (*PaymentResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if callerID != uuid.Nil && bill.CustomerID != callerID {
		return nil, shared.ErrForbidden
	}
	if bill.IsPaid() {
		return nil, billing.ErrBillAlreadyPaid
	}

	c, err := s.customerRepo.FindByID(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}
	tier, err := s.tariffRepo.FindByID(ctx, c.TariffID)
	if err != nil {
		return nil, err
	}

	total := billing.AmountOwed(bill.Consumption, tier.RatePerKWH, s.adminFee)
	payment, err := billing.NewPayment(bill.ID, bill.CustomerID, monthPaid, s.adminFee, total)
	if err != nil {
		return nil, err
	}

	if err := s.billRepo.Pay(ctx, bill.ID, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(&billing.PaymentDetail{
		Payment:   *payment,
		BillMonth: bill.Month,
		BillYear:  bill.Year,
	})
	return &response, nil
}

// Delete removes a bill and any linked payment
func (s *BillService) Delete(ctx context.Context, billID uuid.UUID) error {
	return s.billRepo.DeleteCascade(ctx, billID)
}

func parseStatusFilter(status string) (billing.BillStatus, error) {
	switch status {
	case "":
		// the admin ledger opens on the unpaid queue
		return billing.BillStatusUnpaid, nil
	case "all":
		return "", nil
	case string(billing.BillStatusUnpaid), string(billing.BillStatusPaid):
		return billing.BillStatus(status), nil
	default:
		return "", shared.NewDomainError("VALIDATION_ERROR", "status filter must be unpaid, paid, or all")
	}
}
