package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/domain/billing"
)

// RecordUsageRequest represents a request to record a meter reading
type RecordUsageRequest struct {
	CustomerID   uuid.UUID `json:"customer_id" binding:"required"`
	Month        int       `json:"month" binding:"required,min=1,max=12"`
	Year         int       `json:"year" binding:"required,min=2000,max=2100"`
	StartReading int64     `json:"start_reading" binding:"min=0"`
	EndReading   int64     `json:"end_reading" binding:"required,gt=0"`
}

// UpdateUsageRequest represents a request to correct a meter reading
type UpdateUsageRequest struct {
	StartReading int64 `json:"start_reading" binding:"min=0"`
	EndReading   int64 `json:"end_reading" binding:"required,gt=0"`
}

// UsageListFilter represents filter options for the usage list
type UsageListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SetBillStatusRequest represents an admin status override
type SetBillStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid"`
}

// PayBillRequest represents a request to settle a bill
type PayBillRequest struct {
	MonthPaid int `json:"month_paid" binding:"required,min=1,max=12"`
}

// UsageResponse represents a usage record in API responses
type UsageResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	MeterNumber  string    `json:"meter_number,omitempty"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	StartReading int64     `json:"start_reading"`
	EndReading   int64     `json:"end_reading"`
	Consumption  int64     `json:"consumption"`
	CreatedAt    time.Time `json:"created_at"`
}

// BillResponse represents a bill with its join data and computed amount
type BillResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	UsageID      uuid.UUID       `json:"usage_id"`
	CustomerName string          `json:"customer_name"`
	MeterNumber  string          `json:"meter_number"`
	Capacity     int             `json:"capacity"`
	RatePerKWH   decimal.Decimal `json:"rate_per_kwh"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	StartReading int64           `json:"start_reading"`
	EndReading   int64           `json:"end_reading"`
	Consumption  int64           `json:"consumption"`
	Status       string          `json:"status"`
	AmountOwed   decimal.Decimal `json:"amount_owed"`
	HasPayment   bool            `json:"has_payment"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BillListResponse bundles the filtered list with the unfiltered counts
type BillListResponse struct {
	Bills  []BillResponse       `json:"bills"`
	Counts billing.StatusCounts `json:"counts"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	BillID      uuid.UUID       `json:"bill_id"`
	BillMonth   int             `json:"bill_month"`
	BillYear    int             `json:"bill_year"`
	MonthPaid   int             `json:"month_paid"`
	AdminFee    decimal.Decimal `json:"admin_fee"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAt      time.Time       `json:"paid_at"`
}

// PaymentHistoryResponse bundles payments with their running total
type PaymentHistoryResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPaid decimal.Decimal   `json:"total_paid"`
}

// AdminStatsResponse holds the operational dashboard aggregates
type AdminStatsResponse struct {
	TotalCustomers  int64           `json:"total_customers"`
	UnpaidBills     int64           `json:"unpaid_bills"`
	UsageThisMonth  int64           `json:"usage_this_month"`
	PaymentsToday   int64           `json:"payments_today"`
	CollectedToday  decimal.Decimal `json:"collected_today"`
}

// CustomerDashboardResponse holds a customer's portal overview
type CustomerDashboardResponse struct {
	UsageRecords     int64           `json:"usage_records"`
	UnpaidBills      int64           `json:"unpaid_bills"`
	PaymentCount     int64           `json:"payment_count"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	CurrentUsage     *UsageResponse  `json:"current_usage,omitempty"`
	LatestUnpaidBill *BillResponse   `json:"latest_unpaid_bill,omitempty"`
}

// ToUsageResponse converts a domain usage record to a response
func ToUsageResponse(u *billing.UsageRecord) UsageResponse {
	return UsageResponse{
		ID:           u.ID,
		CustomerID:   u.CustomerID,
		Month:        u.Month,
		Year:         u.Year,
		StartReading: u.StartReading,
		EndReading:   u.EndReading,
		Consumption:  u.Consumption(),
		CreatedAt:    u.CreatedAt,
	}
}

// ToUsageDetailResponse converts a joined usage row to a response
func ToUsageDetailResponse(d *billing.UsageDetail) UsageResponse {
	resp := ToUsageResponse(&d.UsageRecord)
	resp.CustomerName = d.CustomerName
	resp.MeterNumber = d.MeterNumber
	return resp
}

// ToBillResponse converts a joined bill row to a response, computing the
// amount owed from the row's tariff rate and the configured admin fee
func ToBillResponse(d *billing.BillDetail, adminFee decimal.Decimal) BillResponse {
	return BillResponse{
		ID:           d.ID,
		CustomerID:   d.CustomerID,
		UsageID:      d.UsageID,
		CustomerName: d.CustomerName,
		MeterNumber:  d.MeterNumber,
		Capacity:     d.Capacity,
		RatePerKWH:   d.RatePerKWH,
		Month:        d.Month,
		Year:         d.Year,
		StartReading: d.StartReading,
		EndReading:   d.EndReading,
		Consumption:  d.Consumption,
		Status:       string(d.Status),
		AmountOwed:   billing.AmountOwed(d.Consumption, d.RatePerKWH, adminFee),
		HasPayment:   d.HasPayment,
		CreatedAt:    d.CreatedAt,
	}
}

// ToPaymentResponse converts a joined payment row to a response
func ToPaymentResponse(d *billing.PaymentDetail) PaymentResponse {
	return PaymentResponse{
		ID:          d.ID,
		BillID:      d.BillID,
		BillMonth:   d.BillMonth,
		BillYear:    d.BillYear,
		MonthPaid:   d.MonthPaid,
		AdminFee:    d.AdminFee,
		TotalAmount: d.TotalAmount,
		PaidAt:      d.PaidAt,
	}
}
