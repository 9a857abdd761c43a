package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/customer"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/shared"
)

// UsageService handles the usage ledger. Recording a reading always
// derives the bill in the same transaction.
type UsageService struct {
	usageRepo    billing.UsageRepository
	billRepo     billing.BillRepository
	customerRepo customer.CustomerRepository
}

// NewUsageService creates a new UsageService
func NewUsageService(usageRepo billing.UsageRepository, billRepo billing.BillRepository, customerRepo customer.CustomerRepository) *UsageService {
	return &UsageService{
		usageRepo:    usageRepo,
		billRepo:     billRepo,
		customerRepo: customerRepo,
	}
}

// Record validates and inserts a usage record together with its derived
// unpaid bill
func (s *UsageService) Record(ctx context.Context, req RecordUsageRequest) (*UsageResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	exists, err := s.usageRepo.ExistsByPeriod(ctx, req.CustomerID, req.Month, req.Year, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, billing.ErrPeriodAlreadyRecorded
	}

	record, err := billing.NewUsageRecord(req.CustomerID, req.Month, req.Year, req.StartReading, req.EndReading)
	if err != nil {
		return nil, err
	}

	bill := billing.NewBillFromUsage(record)
	if err := s.usageRepo.CreateWithBill(ctx, record, bill); err != nil {
		return nil, err
	}

	response := ToUsageResponse(record)
	return &response, nil
}

// Update corrects the readings and rewrites the linked bill's
// consumption transactionally. Payment status is untouched.
func (s *UsageService) Update(ctx context.Context, id uuid.UUID, req UpdateUsageRequest) (*UsageResponse, error) {
	record, err := s.usageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := record.UpdateReadings(req.StartReading, req.EndReading); err != nil {
		return nil, err
	}

	bill, err := s.billRepo.FindByUsageID(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.SyncConsumption(record)

	if err := s.usageRepo.UpdateWithBill(ctx, record, bill); err != nil {
		return nil, err
	}

	response := ToUsageResponse(record)
	return &response, nil
}

// Delete removes a usage record with its bill and any payment
func (s *UsageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.usageRepo.DeleteCascade(ctx, id)
}

// GetByID retrieves a usage record
func (s *UsageService) GetByID(ctx context.Context, id uuid.UUID) (*UsageResponse, error) {
	record, err := s.usageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUsageResponse(record)
	return &response, nil
}

// List returns usage records joined with customer data
func (s *UsageService) List(ctx context.Context, filter UsageListFilter) ([]UsageResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	details, err := s.usageRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]UsageResponse, len(details))
	for i := range details {
		responses[i] = ToUsageDetailResponse(&details[i])
	}
	return responses, nil
}

// ListForCustomer returns one customer's usage history, newest first
func (s *UsageService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]UsageResponse, error) {
	records, err := s.usageRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]UsageResponse, len(records))
	for i := range records {
		responses[i] = ToUsageResponse(&records[i])
	}
	return responses, nil
}
