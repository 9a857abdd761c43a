package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
)

// PaymentQueryService exposes the read side of the payment ledger.
// Payments are only ever written through BillService.Pay.
type PaymentQueryService struct {
	paymentRepo billing.PaymentRepository
}

// NewPaymentQueryService creates a new PaymentQueryService
func NewPaymentQueryService(paymentRepo billing.PaymentRepository) *PaymentQueryService {
	return &PaymentQueryService{paymentRepo: paymentRepo}
}

// ListForCustomer returns a customer's payment history, newest first,
// with the lifetime total
func (s *PaymentQueryService) ListForCustomer(ctx context.Context, customerID uuid.UUID) (*PaymentHistoryResponse, error) {
	details, err := s.paymentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, len(details))
	total := decimal.Zero
	for i := range details {
		payments[i] = ToPaymentResponse(&details[i])
		total = total.Add(details[i].TotalAmount)
	}

	return &PaymentHistoryResponse{Payments: payments, TotalPaid: total}, nil
}
